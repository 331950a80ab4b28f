// SPDX-License-Identifier: MIT

package convert

import "github.com/katalvlaran/sdpconv/block"

const panicLayoutInvalid = "convert: WithLayout: unknown layout"

// Option configures Matrices.
type Option func(*config)

type config struct {
	layout block.Layout // block.DefaultLayout
}

// WithLayout selects the row encoding of Relaxation.F.
// Panics on an undefined layout (programmer error).
func WithLayout(l block.Layout) Option {
	if !l.Valid() {
		panic(panicLayoutInvalid)
	}

	return func(c *config) { c.layout = l }
}

// newConfig applies opts over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{layout: block.DefaultLayout}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
