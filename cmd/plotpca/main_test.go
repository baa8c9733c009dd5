// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotpca/config"
)

const table = "id\tIntensity S1\tIntensity S2\tIntensity S3\n" +
	"P1\t1.5\t2.5\t4.5\n" +
	"P2\t3.5\t1.5\t0.5\n" +
	"P3\t5.5\t5.5\t5.5\n" +
	"P4\t2.5\t8.5\t3.5\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wcl.tsv"), []byte(table), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wcl_fc.tsv"), []byte(table), 0o600))

	cfg := config.Default()
	cfg.Datasets = []config.DatasetConfig{
		{Name: "wcl", Title: "WCL", Path: "wcl.tsv", Delimiter: "\t", IDColumn: "id", ColumnPrefix: "Intensity "},
		{Name: "wcl_fc", Title: "WCL log2 FC", Path: "wcl_fc.tsv", IDColumn: "id", FoldChange: true},
	}
	path := filepath.Join(dir, "plotpca.yaml")
	require.NoError(t, config.Save(path, cfg))

	return path
}

func TestRun_WritesChartsAndSummary(t *testing.T) {
	cfgPath := writeProject(t)
	out := filepath.Join(t.TempDir(), "charts")

	stdout, stderr, err := execute(t, "run", "--config", cfgPath, "--out", out, "--format", "svg", "--method", "eigen")
	require.NoError(t, err)

	for _, name := range []string{"wcl.svg", "wcl_log2_fc.svg"} {
		_, statErr := os.Stat(filepath.Join(out, name))
		require.NoError(t, statErr, name)
	}
	require.Contains(t, stdout, "2 chart(s)")
	require.Contains(t, stdout, "WCL log2 FC")
	// Non-terminal writers get JSON records tagged with the run id.
	require.Contains(t, stderr, `"run_id"`)
	require.Contains(t, stderr, `"msg":"run finished"`)
}

func TestRun_EnvironmentOverrides(t *testing.T) {
	cfgPath := writeProject(t)
	out := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("PLOTPCA_OUT", out)
	t.Setenv("PLOTPCA_LOG_LEVEL", "warn")

	_, stderr, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "wcl.png"))
	require.NoError(t, err)
	require.NotContains(t, stderr, "run finished")

	// An explicit flag beats the environment.
	flagOut := filepath.Join(t.TempDir(), "from-flag")
	_, _, err = execute(t, "run", "--config", cfgPath, "-o", flagOut)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(flagOut, "wcl.png"))
	require.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	cfgPath := writeProject(t)

	_, _, err := execute(t, "run", "--config", cfgPath, "--format", "gif")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "--config", cfgPath, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotpca.yaml")
	stdout, _, err := execute(t, "init", path)
	require.NoError(t, err)
	require.Contains(t, stdout, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Datasets, 8)

	_, _, err = execute(t, "init", path)
	require.ErrorContains(t, err, "already exists")
	_, _, err = execute(t, "init", "--force", path)
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "plotpca dev\n", stdout)
}
