package iteratedgreedy

// Option configures Run's metaheuristic behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of the iterated-greedy metaheuristic.
type Options struct {
	// Seed initializes the deconstruction RNG. Callers normally derive this
	// from process time; a fixed seed makes a run reproducible.
	Seed uint64

	// LocalDeconstructionCap bounds how many dominating-set vertices a
	// single local (BFS) deconstruction pass may remove.
	LocalDeconstructionCap int

	// RandomRemovalProbability is the per-vertex chance of eviction from
	// the dominating set during a random deconstruction pass.
	RandomRemovalProbability float64

	// MinStrategyProbability floors (and, symmetrically, ceils at
	// 1-MinStrategyProbability) the bandit's selection probability for
	// either strategy, so neither is ever starved out entirely.
	MinStrategyProbability float64

	// ScoreDecay is the exponential decay factor applied to the running
	// score of the strategy used in an iteration before that iteration's
	// reward is added; the other strategy's score is left unchanged.
	// Must be in (0, 1).
	ScoreDecay float64

	// RewardImprovement is the reward credited to a strategy whose
	// iteration strictly improved on the best saved solution.
	RewardImprovement float64

	// RewardEqual is the reward credited to a strategy whose iteration
	// matched (without beating) the best saved solution size.
	RewardEqual float64
}

// DefaultOptions returns the metaheuristic's default tuning, matching the
// original solver's constants: a 40-vertex local deconstruction cap, a
// 0.6% random removal probability, a 0.2 probability floor, 0.9 score
// decay, and rewards of 1.0 / 0.0 for improvement / equality.
func DefaultOptions() Options {
	return Options{
		Seed:                     0,
		LocalDeconstructionCap:   40,
		RandomRemovalProbability: 0.006,
		MinStrategyProbability:   0.2,
		ScoreDecay:               0.9,
		RewardImprovement:        1.0,
		RewardEqual:              0.0,
	}
}

// WithSeed sets the deconstruction RNG's seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLocalDeconstructionCap overrides the local deconstruction removal cap.
func WithLocalDeconstructionCap(k int) Option {
	return func(o *Options) {
		if k > 0 {
			o.LocalDeconstructionCap = k
		}
	}
}

// WithRandomRemovalProbability overrides the random deconstruction's
// per-vertex removal probability.
func WithRandomRemovalProbability(p float64) Option {
	return func(o *Options) {
		if p >= 0 && p <= 1 {
			o.RandomRemovalProbability = p
		}
	}
}

// WithMinStrategyProbability overrides the bandit's probability floor.
func WithMinStrategyProbability(p float64) Option {
	return func(o *Options) {
		if p >= 0 && p <= 0.5 {
			o.MinStrategyProbability = p
		}
	}
}
