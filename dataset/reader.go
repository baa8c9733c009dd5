// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/config/csv"
	"github.com/tobgu/qframe/types"

	"github.com/katalvlaran/plotpca/matrix"
)

// ReadOption configures ReadTable.
type ReadOption func(*readOptions)

type readOptions struct {
	name      string
	delimiter byte
	idColumn  string
	prefix    string
	logger    *slog.Logger
}

func defaultReadOptions() readOptions {
	return readOptions{delimiter: '\t', logger: slog.New(slog.DiscardHandler)}
}

// WithLogger receives a warning for every column skipped as non-numeric.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) ReadOption {
	return func(o *readOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName sets Dataset.Name.
func WithName(name string) ReadOption {
	return func(o *readOptions) { o.name = name }
}

// WithDelimiter sets the field separator (default tab).
func WithDelimiter(d byte) ReadOption {
	return func(o *readOptions) { o.delimiter = d }
}

// WithIDColumn names the column holding row identifiers. Without it rows
// are numbered from 0.
func WithIDColumn(col string) ReadOption {
	return func(o *readOptions) { o.idColumn = col }
}

// WithColumnPrefix keeps only value columns whose name starts with prefix.
// A matching column that is not numeric is an error.
func WithColumnPrefix(prefix string) ReadOption {
	return func(o *readOptions) { o.prefix = prefix }
}

// ReadTable parses a delimited table with a header line.
//
// Value columns are, in header order, every numeric column other than the id
// column, or only those starting with the configured prefix. Integer columns
// are widened to float64. Without a prefix, non-numeric columns are skipped
// and each one is logged at warn level.
func ReadTable(r io.Reader, opts ...ReadOption) (*Dataset, error) {
	o := defaultReadOptions()
	for _, fn := range opts {
		fn(&o)
	}

	qf := qframe.ReadCSV(r, csv.Delimiter(o.delimiter))
	if qf.Err != nil {
		return nil, fmt.Errorf("dataset %q: read: %w", o.name, qf.Err)
	}
	kinds := qf.ColumnTypeMap()

	var ids []string
	if o.idColumn != "" {
		kind, ok := kinds[o.idColumn]
		if !ok {
			return nil, fmt.Errorf("%w: id column %q", ErrUnknownColumn, o.idColumn)
		}
		var err error
		if ids, err = stringColumn(qf, o.idColumn, kind); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", o.name, err)
		}
	}

	var names []string
	for _, col := range qf.ColumnNames() {
		if col == o.idColumn {
			continue
		}
		if o.prefix != "" && !strings.HasPrefix(col, o.prefix) {
			continue
		}
		switch kinds[col] {
		case types.Float, types.Int:
			names = append(names, col)
		default:
			if o.prefix != "" {
				return nil, fmt.Errorf("%w: %q is %s", ErrColumnType, col, kinds[col])
			}
			o.logger.Warn("skipping non-numeric column",
				"dataset", o.name, "column", col, "type", kinds[col])
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoValueColumns, o.name)
	}
	rows := qf.Len()
	if rows == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRows, o.name)
	}

	data, err := matrix.NewDense(rows, len(names))
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", o.name, err)
	}
	for j, col := range names {
		if err = fillColumn(qf, col, kinds[col], j, data); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", o.name, err)
		}
	}

	return New(o.name, data, names, ids)
}

// LoadFile opens path and calls ReadTable. Without WithName the dataset is
// named after the file's base name sans extension.
func LoadFile(path string, opts ...ReadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	all := append([]ReadOption{WithName(name)}, opts...)

	return ReadTable(f, all...)
}

func fillColumn(qf qframe.QFrame, col string, kind types.DataType, j int, dst *matrix.Dense) error {
	switch kind {
	case types.Float:
		view, err := qf.FloatView(col)
		if err != nil {
			return err
		}
		for i := 0; i < view.Len(); i++ {
			dst.RawRowView(i)[j] = view.ItemAt(i)
		}
	case types.Int:
		view, err := qf.IntView(col)
		if err != nil {
			return err
		}
		for i := 0; i < view.Len(); i++ {
			dst.RawRowView(i)[j] = float64(view.ItemAt(i))
		}
	default:
		return fmt.Errorf("%w: %q is %s", ErrColumnType, col, kind)
	}

	return nil
}

func stringColumn(qf qframe.QFrame, col string, kind types.DataType) ([]string, error) {
	n := qf.Len()
	out := make([]string, n)
	switch kind {
	case types.String:
		view, err := qf.StringView(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if s := view.ItemAt(i); s != nil {
				out[i] = *s
			}
		}
	case types.Int:
		view, err := qf.IntView(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out[i] = strconv.Itoa(view.ItemAt(i))
		}
	case types.Float:
		view, err := qf.FloatView(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out[i] = strconv.FormatFloat(view.ItemAt(i), 'g', -1, 64)
		}
	default:
		return nil, fmt.Errorf("%w: id column %q is %s", ErrColumnType, col, kind)
	}

	return out, nil
}
