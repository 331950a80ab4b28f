// SPDX-License-Identifier: MIT
// Package solver: functional configuration for Load.
//
// Defaults:
//   - log    = no-op sink
//   - layout = block.DefaultLayout (square)
//   - sense  = Minimize
//
// Option constructors panic on nonsensical arguments (nil sink, unknown
// sense); Load itself never panics.

package solver

import (
	"io"
	"strings"

	"github.com/katalvlaran/sdpconv/block"
	"github.com/katalvlaran/sdpconv/convert"
)

const (
	panicNilLogFunc   = "solver: WithLogFunc: fn must be non-nil"
	panicNilLogWriter = "solver: WithLogWriter: w must be non-nil"
	panicSenseInvalid = "solver: WithSense: unknown sense"
)

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	log      func(string)
	convOpts []convert.Option
	sense    Sense
}

// WithLogFunc routes diagnostics to fn, one message per call, no newline.
func WithLogFunc(fn func(string)) Option {
	if fn == nil {
		panic(panicNilLogFunc)
	}

	return func(c *loadConfig) { c.log = fn }
}

// WithLogWriter writes each diagnostic to w as one line. Write errors are
// dropped: diagnostics are fire-and-forget.
func WithLogWriter(w io.Writer) Option {
	if w == nil {
		panic(panicNilLogWriter)
	}

	return WithLogFunc(func(msg string) {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		_, _ = io.WriteString(w, msg)
	})
}

// WithLayout selects the row encoding of the relaxation's F.
// Panics on an unknown layout, like convert.WithLayout.
func WithLayout(l block.Layout) Option {
	co := convert.WithLayout(l)

	return func(c *loadConfig) { c.convOpts = append(c.convOpts, co) }
}

// WithSense overrides the objective sense passed to Finalize.
func WithSense(s Sense) Option {
	if s != Minimize && s != Maximize {
		panic(panicSenseInvalid)
	}

	return func(c *loadConfig) { c.sense = s }
}

func newLoadConfig(opts ...Option) loadConfig {
	cfg := loadConfig{
		log:   func(string) {},
		sense: Minimize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
