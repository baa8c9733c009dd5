// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plotpca/dataset"
	"github.com/katalvlaran/plotpca/matrix"
	"github.com/katalvlaran/plotpca/pca"
	"github.com/katalvlaran/plotpca/pipeline"
	"github.com/katalvlaran/plotpca/plot"
)

// recorder keeps every scatter it is asked to draw.
type recorder struct {
	got  []plot.Scatter
	fail error
}

func (r *recorder) Scatter(_ context.Context, s plot.Scatter) error {
	if r.fail != nil {
		return r.fail
	}
	r.got = append(r.got, s)

	return nil
}

func table(t *testing.T, name string, rows [][]float64, cols []string) *dataset.Dataset {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)
	ids := make([]string, len(rows))
	for i := range ids {
		ids[i] = name + "_P" + string(rune('0'+i))
	}
	ds, err := dataset.New(name, m, cols, ids)
	require.NoError(t, err)

	return ds
}

// intensity is 4 features × 3 samples; feature 2 is constant.
func intensity(t *testing.T, name string) *dataset.Dataset {
	return table(t, name, [][]float64{
		{1, 2, 4},
		{3, 1, 0},
		{5, 5, 5},
		{2, 8, 3},
	}, []string{"Intensity S1", "Intensity S2", "Intensity S3"})
}

type ProcessorSuite struct {
	suite.Suite
	rec  *recorder
	proc *pipeline.Processor
}

func (s *ProcessorSuite) SetupTest() {
	s.rec = &recorder{}
	p, err := pipeline.NewProcessor(s.rec)
	require.NoError(s.T(), err)
	s.proc = p
}

// TestSamplesOrientation: constant feature dropped, samples labeled by
// trimmed column names, scores = r×min(r,c) with r = samples.
func (s *ProcessorSuite) TestSamplesOrientation() {
	t := s.T()
	out, err := s.proc.Process(context.Background(), pipeline.Descriptor{
		Name: "wcl", Title: "WCL", Data: intensity(t, "wcl"),
	})
	require.NoError(t, err)

	require.Equal(t, 3, out.Kept)
	require.Equal(t, 1, out.Dropped)
	require.Equal(t, []string{"S1", "S2", "S3"}, out.Labels)
	require.Equal(t, 3, out.Result.Scores.Rows())
	require.Equal(t, 3, out.Result.Scores.Cols())

	require.Len(t, s.rec.got, 1)
	sc := s.rec.got[0]
	require.Equal(t, "WCL", sc.Title)
	require.Equal(t, out.Labels, sc.Labels)
	pc1, err := out.Result.Component(0)
	require.NoError(t, err)
	require.Equal(t, pc1, sc.X)
	require.Contains(t, sc.XName, "PC1")
	require.Contains(t, sc.YName, "PC2")
}

// TestFeaturesOrientation labels points with the surviving row ids.
func (s *ProcessorSuite) TestFeaturesOrientation() {
	t := s.T()
	out, err := s.proc.Process(context.Background(), pipeline.Descriptor{
		Name: "all", Data: intensity(t, "all"), Orientation: pipeline.OrientFeatures,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"all_P0", "all_P1", "all_P3"}, out.Labels)
	require.Equal(t, 3, out.Result.Scores.Rows())
	require.Equal(t, "all", s.rec.got[0].Title)
}

// TestSanitizeFoldChange: NaN/Inf become 0 before filtering, so a row of
// {NaN, 0, Inf} turns constant and is dropped.
func (s *ProcessorSuite) TestSanitizeFoldChange() {
	t := s.T()
	nan, inf := math.NaN(), math.Inf(1)
	fc := table(t, "fc", [][]float64{
		{0.5, -1, 2},
		{nan, 0, inf},
		{1, 3, -2},
	}, []string{"Intensity A", "Intensity B", "Intensity C"})

	out, err := s.proc.Process(context.Background(), pipeline.Descriptor{
		Name: "fc", Data: fc, SanitizeNonFinite: true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Kept)
	for _, v := range out.Result.Singular {
		require.False(t, math.IsNaN(v))
	}

	// Source table untouched.
	v, err := fc.Data.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestSingleComponentPlotsAgainstZero: with one component the y axis is 0.
func (s *ProcessorSuite) TestSingleComponentPlotsAgainstZero() {
	t := s.T()
	p, err := pipeline.NewProcessor(s.rec, pipeline.WithPCAOptions(pca.WithComponents(1)))
	require.NoError(t, err)

	_, err = p.Process(context.Background(), pipeline.Descriptor{Name: "x", Data: intensity(t, "x")})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, s.rec.got[0].Y)
	require.Equal(t, "PC2", s.rec.got[0].YName)
}

// TestRunStandardOrder: the eight canonical descriptors are plotted in order.
func (s *ProcessorSuite) TestRunStandardOrder() {
	t := s.T()
	ds := make([]*dataset.Dataset, 8)
	for i := range ds {
		ds[i] = intensity(t, "d")
	}
	outs, err := s.proc.Run(context.Background(), pipeline.StandardDescriptors(
		ds[0], ds[1], ds[2], ds[3], ds[4], ds[5], ds[6], ds[7]))
	require.NoError(t, err)
	require.Len(t, outs, 8)

	want := []string{"WCL", "WCLP", "Ub", "UbP", "WCL log2 FC", "WCLP log2 FC", "Ub log2 FC", "UbP log2 FC"}
	for i, sc := range s.rec.got {
		require.Equal(t, want[i], sc.Title)
		require.Equal(t, want[i], outs[i].Title)
	}
}

// TestRunStopsOnCancel: a cancelled context stops before the next dataset.
func (s *ProcessorSuite) TestRunStopsOnCancel() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outs, err := s.proc.Run(ctx, []pipeline.Descriptor{{Name: "a", Data: intensity(t, "a")}})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, outs)
	require.Empty(t, s.rec.got)
}

// TestRunStopsOnError keeps earlier outcomes.
func (s *ProcessorSuite) TestRunStopsOnError() {
	t := s.T()
	outs, err := s.proc.Run(context.Background(), []pipeline.Descriptor{
		{Name: "ok", Data: intensity(t, "ok")},
		{Name: "missing"},
		{Name: "never", Data: intensity(t, "never")},
	})
	require.ErrorIs(t, err, pipeline.ErrNilDataset)
	require.Len(t, outs, 1)
	require.Len(t, s.rec.got, 1)
}

// TestAllRowsConstant records a skipped outcome without drawing.
func (s *ProcessorSuite) TestAllRowsConstant() {
	t := s.T()
	flat := table(t, "flat", [][]float64{{1, 1}, {2, 2}}, []string{"a", "b"})
	out, err := s.proc.Process(context.Background(), pipeline.Descriptor{Name: "flat", Data: flat})
	require.NoError(t, err)
	require.False(t, out.Plotted())
	require.Equal(t, pipeline.SkipNoVariance, out.Skipped)
	require.Zero(t, out.Kept)
	require.Equal(t, 2, out.Dropped)
	require.Nil(t, out.Result)
	require.Empty(t, s.rec.got)
}

// TestMissingCellSkipsDataset: one NaN in an unsanitized table makes every
// score NaN, so nothing is drawn but the outcome keeps the NaN result.
func (s *ProcessorSuite) TestMissingCellSkipsDataset() {
	t := s.T()
	gap := table(t, "gap", [][]float64{
		{1, 2, 4},
		{3, math.NaN(), 0},
		{2, 8, 3},
	}, []string{"Intensity S1", "Intensity S2", "Intensity S3"})

	out, err := s.proc.Process(context.Background(), pipeline.Descriptor{Name: "gap", Data: gap})
	require.NoError(t, err)
	require.Equal(t, pipeline.SkipNonFinite, out.Skipped)
	require.NotNil(t, out.Result)
	require.True(t, math.IsNaN(out.Result.Singular[0]))
	require.Empty(t, s.rec.got)
}

// TestPlotterFailure is wrapped with the dataset name.
func (s *ProcessorSuite) TestPlotterFailure() {
	t := s.T()
	boom := errors.New("disk full")
	p, err := pipeline.NewProcessor(&recorder{fail: boom})
	require.NoError(t, err)
	_, err = p.Process(context.Background(), pipeline.Descriptor{Name: "wcl", Data: intensity(t, "wcl")})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), `"wcl"`)
}

// TestRunContinuesPastDegenerate: degenerate datasets do not stop later ones
// from being written.
func TestRunContinuesPastDegenerate(t *testing.T) {
	dir := t.TempDir()
	r, err := plot.NewChartRenderer(dir, plot.WithFormat(plot.FormatSVG))
	require.NoError(t, err)
	p, err := pipeline.NewProcessor(r)
	require.NoError(t, err)

	gap := table(t, "bad", [][]float64{
		{1, math.NaN(), 4},
		{3, 1, 0},
		{2, 8, 3},
	}, []string{"Intensity S1", "Intensity S2", "Intensity S3"})
	flat := table(t, "flat", [][]float64{{1, 1}, {2, 2}}, []string{"a", "b"})

	outs, err := p.Run(context.Background(), []pipeline.Descriptor{
		{Name: "bad", Data: gap},
		{Name: "flat", Data: flat},
		{Name: "good", Data: intensity(t, "good")},
	})
	require.NoError(t, err)
	require.Len(t, outs, 3)
	require.Equal(t, pipeline.SkipNonFinite, outs[0].Skipped)
	require.Equal(t, pipeline.SkipNoVariance, outs[1].Skipped)
	require.True(t, outs[2].Plotted())

	require.FileExists(t, r.Path("good"))
	require.NoFileExists(t, r.Path("bad"))
	require.NoFileExists(t, r.Path("flat"))
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorSuite))
}

func TestAllDataDescriptor(t *testing.T) {
	a := table(t, "x", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []string{"Intensity A1", "Intensity A2"})
	b := table(t, "x", [][]float64{{7}, {9}, {2}}, []string{"Intensity B1"})

	d, err := pipeline.AllDataDescriptor(a, b)
	require.NoError(t, err)
	require.Equal(t, "All Data", d.Title)
	require.Equal(t, pipeline.OrientFeatures, d.Orientation)
	require.True(t, d.SanitizeNonFinite)
	require.Equal(t, 3, d.Data.Data.Cols())

	rec := &recorder{}
	p, err := pipeline.NewProcessor(rec)
	require.NoError(t, err)
	out, err := p.Process(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, []string{"x_P0", "x_P1", "x_P2"}, out.Labels)

	c := table(t, "other", [][]float64{{1}, {2}, {3}}, []string{"C"})
	_, err = pipeline.AllDataDescriptor(a, c)
	require.ErrorIs(t, err, dataset.ErrRowMismatch)
}

func TestParseOrientation(t *testing.T) {
	o, err := pipeline.ParseOrientation("features")
	require.NoError(t, err)
	require.Equal(t, pipeline.OrientFeatures, o)
	require.Equal(t, "features", o.String())

	_, err = pipeline.ParseOrientation("columns")
	require.ErrorIs(t, err, pipeline.ErrUnknownOrientation)

	_, err = pipeline.NewProcessor(nil)
	require.ErrorIs(t, err, pipeline.ErrNilPlotter)
}
