// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/plotpca/matrix"
)

// DefaultLabelPrefix is stripped from column names when deriving labels.
const DefaultLabelPrefix = "Intensity "

// Dataset is a named feature×sample table.
type Dataset struct {
	Name    string
	Data    *matrix.Dense // rows = features, cols = samples
	Columns []string      // len == Data.Cols()
	RowIDs  []string      // len == Data.Rows()
}

// New checks that columns and rowIDs agree with data's shape.
// Nil label slices are filled with positional names ("c0", "r0", ...).
func New(name string, data *matrix.Dense, columns, rowIDs []string) (*Dataset, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	if columns == nil {
		columns = positional("c", data.Cols())
	}
	if rowIDs == nil {
		rowIDs = positional("r", data.Rows())
	}
	if len(columns) != data.Cols() || len(rowIDs) != data.Rows() {
		return nil, fmt.Errorf("%w: %q is %dx%d with %d columns and %d row ids",
			ErrShape, name, data.Rows(), data.Cols(), len(columns), len(rowIDs))
	}

	return &Dataset{Name: name, Data: data, Columns: columns, RowIDs: rowIDs}, nil
}

// Labels returns the column names with prefix trimmed.
func (d *Dataset) Labels(prefix string) []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = TrimLabel(c, prefix)
	}

	return out
}

// TrimLabel removes every occurrence of prefix from col. An empty prefix
// leaves col unchanged.
func TrimLabel(col, prefix string) string {
	if prefix == "" {
		return col
	}

	return strings.ReplaceAll(col, prefix, "")
}

// ConcatColumns joins datasets side by side. Every part must carry the same
// row identifiers in the same order; columns keep part order.
func ConcatColumns(name string, parts ...*Dataset) (*Dataset, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("concat %q: %w", name, ErrNilDataset)
	}
	for i, p := range parts {
		if p == nil || p.Data == nil {
			return nil, fmt.Errorf("concat %q: part %d: %w", name, i, ErrNilDataset)
		}
	}

	rows := parts[0].Data.Rows()
	ids := parts[0].RowIDs
	cols := 0
	for i, p := range parts {
		if p.Data.Rows() != rows || !slices.Equal(p.RowIDs, ids) {
			return nil, fmt.Errorf("%w: %q vs %q (part %d)", ErrRowMismatch, p.Name, parts[0].Name, i)
		}
		cols += p.Data.Cols()
	}

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("concat %q: %w", name, err)
	}
	columns := make([]string, 0, cols)
	for i := 0; i < rows; i++ {
		dst := out.RawRowView(i)
		off := 0
		for _, p := range parts {
			off += copy(dst[off:], p.Data.RawRowView(i))
		}
	}
	for _, p := range parts {
		columns = append(columns, p.Columns...)
	}

	return &Dataset{
		Name:    name,
		Data:    out,
		Columns: columns,
		RowIDs:  append([]string(nil), ids...),
	}, nil
}

func positional(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}
