// SPDX-License-Identifier: MIT

package variance

import (
	"errors"
	"strings"
)

// ErrMaskLength is returned when a Mask does not match the row count.
var ErrMaskLength = errors.New("variance: mask length does not match row count")

// Mask flags the rows to keep (true) or drop (false).
type Mask []bool

// Count returns the number of kept rows.
func (m Mask) Count() int {
	n := 0
	for _, keep := range m {
		if keep {
			n++
		}
	}

	return n
}

// Indices returns the kept row indices in ascending order.
func (m Mask) Indices() []int {
	idx := make([]int, 0, m.Count())
	for i, keep := range m {
		if keep {
			idx = append(idx, i)
		}
	}

	return idx
}

// Select returns the entries of s at the kept positions. It is used to keep
// row identifiers aligned with a filtered matrix. len(s) must equal len(m).
func Select[T any](m Mask, s []T) ([]T, error) {
	if len(s) != len(m) {
		return nil, ErrMaskLength
	}
	out := make([]T, 0, m.Count())
	for i, keep := range m {
		if keep {
			out = append(out, s[i])
		}
	}

	return out, nil
}

// String renders the mask as a compact T/F string, e.g. "TTF".
func (m Mask) String() string {
	var b strings.Builder
	for _, keep := range m {
		if keep {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	}

	return b.String()
}
