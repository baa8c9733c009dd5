// SPDX-License-Identifier: MIT

package plot

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	// DefaultWidth is the canvas width in pixels when WithSize is not given.
	DefaultWidth = 1024
	// DefaultHeight is the canvas height in pixels when WithSize is not given.
	DefaultHeight = 768

	dotWidth    = 5
	rangeMargin = 0.08 // fraction of the data span added on each side
)

// RendererOption configures a ChartRenderer.
type RendererOption func(*ChartRenderer)

// WithFormat selects PNG (default) or SVG output.
func WithFormat(f Format) RendererOption {
	return func(r *ChartRenderer) { r.format = f }
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) RendererOption {
	return func(r *ChartRenderer) { r.width, r.height = width, height }
}

// WithLogger routes render logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *ChartRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// ChartRenderer writes one chart file per Scatter call into a directory.
type ChartRenderer struct {
	dir    string
	format Format
	width  int
	height int
	logger *slog.Logger
}

// NewChartRenderer validates options. dir is created on first write.
func NewChartRenderer(dir string, opts ...RendererOption) (*ChartRenderer, error) {
	r := &ChartRenderer{
		dir:    dir,
		format: FormatPNG,
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(r)
	}
	if _, err := ParseFormat(string(r.format)); err != nil {
		return nil, err
	}
	if r.width <= 0 || r.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, r.width, r.height)
	}

	return r, nil
}

// Path returns the file a Scatter titled title is written to.
func (r *ChartRenderer) Path(title string) string {
	return filepath.Join(r.dir, Slug(title)+"."+string(r.format))
}

// Scatter renders s and writes it to r.Path(s.Title).
func (r *ChartRenderer) Scatter(ctx context.Context, s Scatter) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = s.Validate(); err != nil {
		return err
	}

	c, kept := buildChart(s, r.width, r.height)
	if dropped := len(s.X) - kept; dropped > 0 {
		r.logger.Debug("omitting non-finite points", "title", s.Title, "dropped", dropped, "kept", kept)
	}
	if kept == 0 {
		return fmt.Errorf("%w: %q", ErrNoPoints, s.Title)
	}

	if err = os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	path := r.Path(s.Title)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("plot: close %s: %w", path, cerr)
		}
	}()

	provider := chart.PNG
	if r.format == FormatSVG {
		provider = chart.SVG
	}
	if err = c.Render(provider, f); err != nil {
		return fmt.Errorf("plot: render %q: %w", s.Title, err)
	}
	r.logger.Info("chart written", "title", s.Title, "path", path, "points", kept)

	return nil
}

// buildChart lays out the chart and returns it with the number of placed
// points. Series follow the first appearance of each category.
func buildChart(s Scatter, width, height int) (chart.Chart, int) {
	type group struct {
		xs, ys []float64
	}
	var (
		order  []string
		groups = map[string]*group{}
		notes  []chart.Value2
		xs, ys []float64
	)
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		if !finite(x) || !finite(y) {
			continue
		}
		cat := ""
		if s.Categories != nil {
			cat = s.Categories[i]
		}
		g, ok := groups[cat]
		if !ok {
			g = &group{}
			groups[cat] = g
			order = append(order, cat)
		}
		g.xs = append(g.xs, x)
		g.ys = append(g.ys, y)
		notes = append(notes, chart.Value2{XValue: x, YValue: y, Label: s.Labels[i]})
		xs = append(xs, x)
		ys = append(ys, y)
	}

	series := make([]chart.Series, 0, len(order)+1)
	for i, cat := range order {
		g := groups[cat]
		series = append(series, chart.ContinuousSeries{
			Name:    cat,
			XValues: g.xs,
			YValues: g.ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    dotWidth,
				DotColor:    chart.GetDefaultColor(i),
			},
		})
	}
	if len(notes) > 0 {
		series = append(series, chart.AnnotationSeries{Name: "labels", Annotations: notes})
	}

	c := chart.Chart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: s.XName, Range: paddedRange(xs)},
		YAxis:      chart.YAxis{Name: s.YName, Range: paddedRange(ys)},
		Series:     series,
	}
	if len(order) > 1 {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}

	return c, len(notes)
}

// paddedRange widens [min,max] so dots and labels are not clipped at the
// border. A zero span (one point, or a flat component) gets ±1.
func paddedRange(v []float64) *chart.ContinuousRange {
	if len(v) == 0 {
		return &chart.ContinuousRange{Min: -1, Max: 1}
	}
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	pad := (hi - lo) * rangeMargin
	if pad == 0 {
		pad = 1
	}

	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// Slug turns a title into a file name stem: lower case, runs of anything
// but letters and digits collapse to '_'. An empty result becomes "chart".
func Slug(title string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			sep = false
			continue
		}
		sep = true
	}
	if b.Len() == 0 {
		return "chart"
	}

	return b.String()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
