// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options and the resolved build configuration.

package builder

import "fmt"

// DefaultMaxTurn is the turn budget of generated boards unless overridden.
const DefaultMaxTurn = 10

// Option customizes a build before any vertex is created.
type Option func(*builderConfig)

// builderConfig is the resolved, immutable view constructors receive.
type builderConfig struct {
	cops    int
	robbers int
	maxTurn int

	// first invalid option, surfaced by BuildBoard
	err error
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{cops: 1, robbers: 1, maxTurn: DefaultMaxTurn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func nonNegative(c *builderConfig, name string, v int, set func(int)) {
	if v < 0 {
		if c.err == nil {
			c.err = fmt.Errorf("%w: %s cannot be negative (%d)", ErrOptionViolation, name, v)
		}
		return
	}
	set(v)
}

// WithCops sets the number of cop tokens.
func WithCops(n int) Option {
	return func(c *builderConfig) { nonNegative(c, "cops", n, func(v int) { c.cops = v }) }
}

// WithRobbers sets the number of robber tokens.
func WithRobbers(n int) Option {
	return func(c *builderConfig) { nonNegative(c, "robbers", n, func(v int) { c.robbers = v }) }
}

// WithMaxTurn sets the gameplay turn budget.
func WithMaxTurn(n int) Option {
	return func(c *builderConfig) { nonNegative(c, "max turn", n, func(v int) { c.maxTurn = v }) }
}
