// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Shift selects the shift strategy of the real QR iteration.
type Shift int

const (
	// Francis selects the implicit double shift taken from the
	// trailing 2×2 block. This is the default.
	Francis Shift = iota
	// Rayleigh selects the single Rayleigh quotient shift.
	Rayleigh
)

// Option tunes a decomposition.
type Option func(*config)

type config struct {
	wantZ       bool
	scale       bool
	permute     bool
	maxiter     int
	maxiterSet  bool
	maxinner    int
	maxinnerSet bool
	tol         float64
	shift       Shift
	log         logr.Logger
}

// WantVectors controls whether the Schur basis Z is accumulated. It
// defaults to true. Values and ValuesCmplx force it off.
func WantVectors(want bool) Option {
	return func(c *config) { c.wantZ = want }
}

// ScaleInput controls whether the input matrix is scaled into a safe
// magnitude range before the iteration and the results scaled back on
// return. It defaults to true.
func ScaleInput(scale bool) Option {
	return func(c *config) { c.scale = scale }
}

// Permute requests permutation balancing of the input. Balancing is
// not implemented; Permute(true) is rejected with ErrInvalidOption
// rather than silently ignored.
func Permute(permute bool) Option {
	return func(c *config) { c.permute = permute }
}

// MaxIterations caps the total number of QR sweeps. It defaults to
// 100·n. An explicit 0 permits no sweeps, so the decomposition
// succeeds only if the input deflates without iterating.
func MaxIterations(n int) Option {
	return func(c *config) { c.maxiter, c.maxiterSet = n, true }
}

// MaxInner caps the number of sweeps spent on a single deflation
// window of the complex iteration. It defaults to 30·n. The real
// iteration ignores it.
func MaxInner(n int) Option {
	return func(c *config) { c.maxinner, c.maxinnerSet = n, true }
}

// Tolerance sets the relative threshold below which a subdiagonal
// entry of the real iteration is treated as zero. It defaults to the
// machine epsilon. The complex iteration ignores it.
func Tolerance(tol float64) Option {
	return func(c *config) { c.tol = tol }
}

// ShiftPolicy selects the shift strategy of the real iteration. The
// complex iteration ignores it.
func ShiftPolicy(s Shift) Option {
	return func(c *config) { c.shift = s }
}

// Logger installs a sink for the iteration's debug events. Deflation,
// shift and convergence events are emitted at verbosity 2. The default
// discards all events.
func Logger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}

func newConfig(n int, opts []Option) (config, error) {
	c := config{
		wantZ: true,
		scale: true,
		shift: Francis,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	switch {
	case c.permute:
		return c, fmt.Errorf("%w: permutation balancing is not implemented", ErrInvalidOption)
	case c.shift != Francis && c.shift != Rayleigh:
		return c, fmt.Errorf("%w: unknown shift policy %d", ErrInvalidOption, c.shift)
	case c.maxiter < 0 || c.maxinner < 0 || c.tol < 0:
		return c, fmt.Errorf("%w: negative iteration cap or tolerance", ErrInvalidOption)
	}
	if !c.maxiterSet {
		c.maxiter = 100 * n
	}
	if !c.maxinnerSet {
		c.maxinner = 30 * n
	}
	if c.tol == 0 {
		c.tol = 0x1p-53
	}
	return c, nil
}
