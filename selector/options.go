// SPDX-License-Identifier: MIT

package selector

import "math/rand"

// ShuffleOption customizes the generator used by ShuffleGroup.
type ShuffleOption func(*shuffleConfig)

type shuffleConfig struct {
	seed    int64
	hasSeed bool
	rng     *rand.Rand
}

func newShuffleConfig(opts ...ShuffleOption) shuffleConfig {
	var cfg shuffleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed shuffles with a fresh generator seeded with seed.
// It takes precedence over WithRand, whose handle is then left untouched.
func WithSeed(seed int64) ShuffleOption {
	return func(c *shuffleConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithRand draws the permutation from r, advancing it. Panics on nil.
func WithRand(r *rand.Rand) ShuffleOption {
	if r == nil {
		panic("selector: WithRand(nil)")
	}

	return func(c *shuffleConfig) { c.rng = r }
}

// shuffle permutes n elements through swap with the configured generator.
func (c shuffleConfig) shuffle(n int, swap func(i, j int)) {
	switch {
	case c.hasSeed:
		rand.New(rand.NewSource(c.seed)).Shuffle(n, swap)
	case c.rng != nil:
		c.rng.Shuffle(n, swap)
	default:
		rand.Shuffle(n, swap)
	}
}
