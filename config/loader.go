// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/plotpca/pipeline"
	"github.com/katalvlaran/plotpca/plot"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path, overlays it on Default, resolves dataset paths relative
// to the file's directory and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range cfg.Datasets {
		if p := cfg.Datasets[i].Path; !filepath.IsAbs(p) {
			cfg.Datasets[i].Path = filepath.Join(base, p)
		}
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags and cross-field references.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	names := make(map[string]bool, len(c.Datasets))
	for _, d := range c.Datasets {
		names[d.Name] = true
	}
	for _, n := range c.AllData {
		if !names[n] {
			return fmt.Errorf("%w: all_data references unknown dataset %q", ErrInvalid, n)
		}
	}

	// Charts are written to <out>/<slug>.<ext>; two titles must not share a file.
	files := make(map[string]string, len(c.Datasets)+1)
	titles := make([]string, 0, len(c.Datasets)+1)
	for _, d := range c.Datasets {
		titles = append(titles, d.ChartTitle())
	}
	if len(c.AllData) > 0 {
		titles = append(titles, pipeline.AllDataTitle)
	}
	for _, t := range titles {
		slug := plot.Slug(t)
		if prev, ok := files[slug]; ok {
			return fmt.Errorf("%w: titles %q and %q both write chart %q", ErrInvalid, prev, t, slug)
		}
		files[slug] = t
	}

	return nil
}

// Save writes c as YAML, creating parent directories.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Example is the template written by `plotpca init`: the eight canonical
// tables of a whole-cell-lysate / ubiquitin-enrichment experiment.
func Example() Config {
	c := Default()
	bases := []struct{ name, title string }{
		{"wcl", "WCL"}, {"wclp", "WCLP"}, {"ub", "Ub"}, {"ubp", "UbP"},
	}
	for _, fc := range []bool{false, true} {
		for _, b := range bases {
			name, title := b.name, b.title
			if fc {
				name, title = name+"_fc", title+" log2 FC"
			}
			c.Datasets = append(c.Datasets, DatasetConfig{
				Name:         name,
				Title:        title,
				Path:         "data/" + name + ".tsv",
				Delimiter:    "\t",
				IDColumn:     "id",
				ColumnPrefix: "Intensity ",
				FoldChange:   fc,
			})
		}
	}

	return c
}
