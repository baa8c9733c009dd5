// SPDX-License-Identifier: MIT

// Package config loads the YAML run description of a plotpca invocation.
package config

import "errors"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level run description.
type Config struct {
	OutputDir   string `yaml:"output_dir" validate:"required"`
	Format      string `yaml:"format" validate:"oneof=png svg"`
	Width       int    `yaml:"width" validate:"gt=0,lte=16384"`
	Height      int    `yaml:"height" validate:"gt=0,lte=16384"`
	LabelPrefix string `yaml:"label_prefix"`
	Method      string `yaml:"method" validate:"oneof=svd eigen"`
	Components  int    `yaml:"components,omitempty" validate:"gte=0"`

	// AllData names datasets to join column-wise into one extra
	// feature-oriented "All Data" analysis. Empty disables it.
	AllData []string `yaml:"all_data,omitempty" validate:"dive,required"`

	Datasets []DatasetConfig `yaml:"datasets" validate:"required,min=1,unique=Name,dive"`
}

// DatasetConfig describes one input table.
type DatasetConfig struct {
	Name         string `yaml:"name" validate:"required"`
	Title        string `yaml:"title,omitempty"`
	Path         string `yaml:"path" validate:"required"`
	Delimiter    string `yaml:"delimiter,omitempty" validate:"omitempty,len=1,ascii"`
	IDColumn     string `yaml:"id_column,omitempty"`
	ColumnPrefix string `yaml:"column_prefix,omitempty"`
	FoldChange   bool   `yaml:"fold_change,omitempty"`
	Orientation  string `yaml:"orientation,omitempty" validate:"omitempty,oneof=samples features"`
}

// ChartTitle is Title, or Name when no title is set.
func (d DatasetConfig) ChartTitle() string {
	if d.Title != "" {
		return d.Title
	}

	return d.Name
}

// Default returns a configuration with every scalar set and no datasets.
func Default() Config {
	return Config{
		OutputDir:   "plots",
		Format:      "png",
		Width:       1024,
		Height:      768,
		LabelPrefix: "Intensity ",
		Method:      "svd",
	}
}
