// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/plotpca/dataset"
	"github.com/katalvlaran/plotpca/pca"
	"github.com/katalvlaran/plotpca/pipeline"
)

// ReadOptions maps the table settings onto dataset.ReadOption values.
func (d DatasetConfig) ReadOptions() []dataset.ReadOption {
	opts := []dataset.ReadOption{dataset.WithName(d.Name)}
	if d.Delimiter != "" {
		opts = append(opts, dataset.WithDelimiter(d.Delimiter[0]))
	}
	if d.IDColumn != "" {
		opts = append(opts, dataset.WithIDColumn(d.IDColumn))
	}
	if d.ColumnPrefix != "" {
		opts = append(opts, dataset.WithColumnPrefix(d.ColumnPrefix))
	}

	return opts
}

// PCAOptions maps method and components onto pca options.
func (c Config) PCAOptions() ([]pca.Option, error) {
	m, err := pca.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	opts := []pca.Option{pca.WithMethod(m)}
	if c.Components > 0 {
		opts = append(opts, pca.WithComponents(c.Components))
	}

	return opts, nil
}

// Descriptors loads every table and returns the descriptors in file order,
// followed by the "All Data" descriptor when AllData is set. extra is
// appended to each table's read options.
func (c Config) Descriptors(extra ...dataset.ReadOption) ([]pipeline.Descriptor, error) {
	loaded := make(map[string]*dataset.Dataset, len(c.Datasets))
	out := make([]pipeline.Descriptor, 0, len(c.Datasets)+1)
	for _, dc := range c.Datasets {
		ds, err := dataset.LoadFile(dc.Path, append(dc.ReadOptions(), extra...)...)
		if err != nil {
			return nil, fmt.Errorf("config: dataset %q: %w", dc.Name, err)
		}
		orient, err := pipeline.ParseOrientation(dc.Orientation)
		if err != nil {
			return nil, fmt.Errorf("config: dataset %q: %w", dc.Name, err)
		}
		loaded[dc.Name] = ds
		out = append(out, pipeline.Descriptor{
			Name:              dc.Name,
			Title:             dc.Title,
			Data:              ds,
			SanitizeNonFinite: dc.FoldChange,
			Orientation:       orient,
		})
	}

	if len(c.AllData) > 0 {
		parts := make([]*dataset.Dataset, 0, len(c.AllData))
		for _, n := range c.AllData {
			parts = append(parts, loaded[n])
		}
		all, err := pipeline.AllDataDescriptor(parts...)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, all)
	}

	return out, nil
}
