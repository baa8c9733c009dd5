// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/plotpca/matrix"
)

// Option configures Project. An invalid Option is recorded and surfaced as
// ErrOptionViolation when Project runs.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	method     Method
	components int  // 0 = min(rows, cols)
	scale      bool // divide by std after centering
	tol        float64
	maxIter    int
	logger     *slog.Logger

	err error
}

// DefaultOptions returns SVD, all components, scaling on, the matrix
// package's Jacobi defaults and a discarding logger.
func DefaultOptions() Options {
	return Options{
		method:  MethodSVD,
		scale:   true,
		tol:     matrix.DefaultEigenTolerance,
		maxIter: matrix.DefaultEigenMaxIter,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithMethod selects the factorization backend. MethodEigen runs Jacobi
// sweeps on a min(r,c)×min(r,c) Gram matrix, each sweep costing O(n³) for
// that side n, so it suits tables with a few hundred observations or
// variables on the smaller axis; MethodSVD has no such limit.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodSVD && m != MethodEigen {
			o.err = fmt.Errorf("%w: method %v", ErrOptionViolation, m)
			return
		}
		o.method = m
	}
}

// WithComponents keeps only the first n components (n ≥ 1). Values above
// min(rows, cols) are clamped when Project runs.
func WithComponents(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: components must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.components = n
	}
}

// WithoutScaling centers columns but skips the division by std.
func WithoutScaling() Option {
	return func(o *Options) { o.scale = false }
}

// WithTolerance sets the relative Jacobi convergence threshold (MethodEigen).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0, got %g", ErrOptionViolation, tol)
			return
		}
		o.tol = tol
	}
}

// WithMaxIter caps Jacobi rotations (MethodEigen).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.maxIter = n
	}
}

// WithLogger routes degenerate-input warnings to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
