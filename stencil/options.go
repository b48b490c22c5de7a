// SPDX-License-Identifier: MIT

package stencil

import (
	"github.com/katalvlaran/lbmstencil/logging"
)

// DefaultSentinel marks index-table slots whose velocity is absent.
// Positions run up to the number of unique velocities, so with the default a
// Set holds at most 1000 of them; larger sets fail with ErrSentinelCollision
// unless built with WithSentinel(-1).
const DefaultSentinel = 1000

// Option customizes how a Set is built.
// Option constructors panic on nonsensical values (programmer error).
type Option func(*buildConfig)

// buildConfig is the resolved set of knobs for one build.
type buildConfig struct {
	logger   logging.Logger
	sentinel int
}

// newBuildConfig applies opts in order over the defaults; last wins.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		logger:   logging.NoOpLogger{},
		sentinel: DefaultSentinel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("stencil: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}

// WithSentinel replaces DefaultSentinel in every index table.
// A negative sentinel never collides; a non-negative one must not be smaller
// than the number of unique velocities, otherwise the build fails with
// ErrSentinelCollision.
func WithSentinel(s int) Option {
	return func(c *buildConfig) {
		c.sentinel = s
	}
}
