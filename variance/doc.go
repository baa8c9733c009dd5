// SPDX-License-Identifier: MIT

// Package variance removes uninformative rows before PCA.
//
// What
//
//   - NonConstantRows builds a Mask: true where a row has at least one value
//     that differs from the row's first value.
//   - RemoveConstantRows / Apply keep the masked rows in their original order.
//
// Why
//
//	A feature that is constant across every sample has zero variance. After
//	the driver transposes feature×sample tables, such a feature becomes a
//	zero-std column and standardization divides 0 by 0. Dropping it first
//	keeps the projection finite.
//
// Equality semantics
//
//	A row is constant iff every value v satisfies v == row[0] under Go's ==
//	on float64. No tolerance is applied. Consequences:
//
//	  - single-column (and zero-column) rows are always constant;
//	  - NaN != NaN, so any row containing NaN is non-constant, including an
//	    all-NaN row;
//	  - +0 == -0, so a row of signed zeros is constant.
//
// Complexity
//
//   - NonConstantRows: O(r*c) worst case, early exit per row.
//   - Apply: O(kept*c) copy.
package variance
