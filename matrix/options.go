// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Off: intensity tables carry NaN for missing values and fold-change tables
	// carry ±Inf; sanitization is an explicit step (ReplaceInfNaN).
	DefaultValidateNaNInf = false

	// DefaultCopyData makes NewDenseFrom copy the caller's buffer.
	DefaultCopyData = true

	// DefaultEigenTolerance is the off-diagonal threshold for Jacobi convergence.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 10000
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	copyData       bool // DefaultCopyData
}

// WithStrictFinite makes the constructed Dense reject NaN/±Inf both on
// ingestion (NewDenseFrom/NewDenseRows) and in every later Set call.
func WithStrictFinite() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoCopy lets NewDenseFrom adopt the caller's slice as backing storage.
// Mutations through Set become visible to the caller and vice versa.
func WithNoCopy() Option {
	return func(o *Options) { o.copyData = false }
}

// gatherOptions resolves defaults then applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		copyData:       DefaultCopyData,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
