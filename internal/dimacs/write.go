package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/domset/internal/domgraph"
)

// Write serializes g's solution (g.Solution(): fixed vertices followed by
// the active selection) as a total count on the first line, one vertex id
// per line thereafter — matching the original solver's plain output format.
func Write(w io.Writer, g *domgraph.Graph) error {
	bw := bufio.NewWriter(w)
	sol := g.Solution()

	if _, err := bw.WriteString(strconv.Itoa(len(sol))); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for _, id := range sol {
		if _, err := bw.WriteString(strconv.FormatUint(uint64(id), 10)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
