// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotpca/config"
	"github.com/katalvlaran/plotpca/pipeline"
)

const minimal = `
datasets:
  - name: wcl
    title: WCL
    path: wcl.tsv
    id_column: id
`

func TestParse_DefaultsFillGaps(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal))
	require.NoError(t, err)

	def := config.Default()
	require.Equal(t, def.OutputDir, cfg.OutputDir)
	require.Equal(t, "png", cfg.Format)
	require.Equal(t, 1024, cfg.Width)
	require.Equal(t, "Intensity ", cfg.LabelPrefix)
	require.Equal(t, "svd", cfg.Method)
	require.Len(t, cfg.Datasets, 1)
	require.Equal(t, "id", cfg.Datasets[0].IDColumn)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
output_dir: out
format: svg
method: eigen
components: 2
datasets:
  - {name: a, path: a.csv, delimiter: ",", orientation: features}
`))
	require.NoError(t, err)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, "svg", cfg.Format)
	require.Equal(t, ",", cfg.Datasets[0].Delimiter)

	opts, err := cfg.PCAOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"no datasets":     "format: png\n",
		"bad format":      "format: jpeg\n" + minimal,
		"bad method":      "method: nmf\n" + minimal,
		"zero width":      "width: 0\n" + minimal,
		"long delimiter":  "datasets:\n  - {name: a, path: a, delimiter: '::'}\n",
		"bad orientation": "datasets:\n  - {name: a, path: a, orientation: diagonal}\n",
		"duplicate names": "datasets:\n  - {name: a, path: a}\n  - {name: a, path: b}\n",
		"missing path":    "datasets:\n  - {name: a}\n",
		"unknown all":     "all_data: [zz]\n" + minimal,
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse([]byte("format: jpeg\n" + minimal))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, "Format", verrs[0].Field())
}

func TestValidate_ChartFileCollisions(t *testing.T) {
	cases := map[string]string{
		"case only":     "datasets:\n  - {name: a, title: Ub, path: a}\n  - {name: b, title: UB, path: b}\n",
		"punctuation":   "datasets:\n  - {name: a, title: WCL log2 FC, path: a}\n  - {name: b, title: WCL-log2-FC, path: b}\n",
		"name vs title": "datasets:\n  - {name: wcl, path: a}\n  - {name: b, title: WCL, path: b}\n",
		"all data":      "all_data: [a]\ndatasets:\n  - {name: a, title: all-data, path: a}\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalid, name)
		require.Contains(t, err.Error(), "both write chart", name)
	}

	_, err := config.Parse([]byte("datasets:\n  - {name: a, title: Ub, path: a}\n  - {name: b, title: UbP, path: b}\n"))
	require.NoError(t, err)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("colour: red\n" + minimal))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plotpca.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "wcl.tsv"), cfg.Datasets[0].Path)

	_, err = config.Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveExampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "plotpca.yaml")
	require.NoError(t, config.Save(path, config.Example()))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Datasets, 8)
	require.Equal(t, "UbP log2 FC", cfg.Datasets[7].Title)
	require.True(t, cfg.Datasets[7].FoldChange)
	require.Equal(t, "\t", cfg.Datasets[0].Delimiter)
}

func TestDescriptors(t *testing.T) {
	dir := t.TempDir()
	tsv := "id\tIntensity A\tIntensity B\n" +
		"P1\t1.5\t2.5\n" +
		"P2\t3.5\t1.5\n" +
		"P3\t2.5\t2.5\n"
	for _, n := range []string{"wcl.tsv", "ub.tsv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(tsv), 0o600))
	}
	doc := `
all_data: [wcl, ub]
datasets:
  - {name: wcl, title: WCL, path: wcl.tsv, id_column: id, column_prefix: "Intensity "}
  - {name: ub, path: ub.tsv, id_column: id, fold_change: true, orientation: features}
`
	path := filepath.Join(dir, "plotpca.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	ds, err := cfg.Descriptors()
	require.NoError(t, err)
	require.Len(t, ds, 3)

	require.Equal(t, "WCL", ds[0].Title)
	require.Equal(t, []string{"Intensity A", "Intensity B"}, ds[0].Data.Columns)
	require.Equal(t, pipeline.OrientSamples, ds[0].Orientation)

	require.True(t, ds[1].SanitizeNonFinite)
	require.Equal(t, pipeline.OrientFeatures, ds[1].Orientation)

	require.Equal(t, "All Data", ds[2].Title)
	require.Equal(t, 4, ds[2].Data.Data.Cols())
	require.Equal(t, []string{"P1", "P2", "P3"}, ds[2].Data.RowIDs)
}
