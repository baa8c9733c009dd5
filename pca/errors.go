// SPDX-License-Identifier: MIT

package pca

import "errors"

var (
	// ErrEmptyInput is returned for matrices with zero rows or zero columns.
	ErrEmptyInput = errors.New("pca: input has no rows or no columns")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("pca: invalid option supplied")

	// ErrFactorization is returned when gonum's SVD fails to converge.
	ErrFactorization = errors.New("pca: singular value decomposition failed")
)
