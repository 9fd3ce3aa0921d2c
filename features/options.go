// SPDX-License-Identifier: MIT

package features

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

// Option customizes Build by mutating a buildConfig before the pipeline runs.
type Option func(*buildConfig)

// buildConfig is the resolved option set of one Build call.
type buildConfig struct {
	extrapolate bool          // nodewise.Extrapolate instead of nodewise.Interior
	bias        bool          // append a ones column
	logger      log.Interface // diagnostics sink
}

// newBuildConfig applies opts over the defaults:
// interior interpolation, bias column on, logs discarded.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		bias:   true,
		logger: &log.Logger{Handler: discard.New(), Level: log.InfoLevel},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithExtrapolation selects linear extrapolation at series ends instead of
// holding the nearest valid value.
func WithExtrapolation(on bool) Option {
	return func(c *buildConfig) { c.extrapolate = on }
}

// WithBias controls the trailing all-ones column. Default on.
func WithBias(on bool) Option {
	return func(c *buildConfig) { c.bias = on }
}

// WithLogger routes pipeline diagnostics to l. Panics on nil.
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic("features: WithLogger(nil)")
	}

	return func(c *buildConfig) { c.logger = l }
}
