// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/plotpca/dataset"
	"github.com/katalvlaran/plotpca/matrix"
	"github.com/katalvlaran/plotpca/pca"
	"github.com/katalvlaran/plotpca/plot"
	"github.com/katalvlaran/plotpca/variance"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithLabelPrefix sets the text stripped from column names to form sample
// labels (default dataset.DefaultLabelPrefix).
func WithLabelPrefix(prefix string) Option {
	return func(p *Processor) { p.labelPrefix = prefix }
}

// WithPCAOptions forwards options to every pca.Project call.
func WithPCAOptions(opts ...pca.Option) Option {
	return func(p *Processor) { p.pcaOpts = append(p.pcaOpts, opts...) }
}

// Processor runs descriptors through the pipeline.
type Processor struct {
	plotter     plot.Plotter
	logger      *slog.Logger
	labelPrefix string
	pcaOpts     []pca.Option
}

// NewProcessor returns a Processor drawing through p.
func NewProcessor(p plot.Plotter, opts ...Option) (*Processor, error) {
	if p == nil {
		return nil, ErrNilPlotter
	}
	proc := &Processor{
		plotter:     p,
		logger:      slog.New(slog.DiscardHandler),
		labelPrefix: dataset.DefaultLabelPrefix,
	}
	for _, fn := range opts {
		fn(proc)
	}

	return proc, nil
}

// Run processes ds in order. Degenerate datasets are recorded as skipped
// outcomes and do not stop the run. It stops at the first error or when ctx
// is done, returning the outcomes completed so far.
func (p *Processor) Run(ctx context.Context, ds []Descriptor) ([]Outcome, error) {
	out := make([]Outcome, 0, len(ds))
	for _, d := range ds {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		o, err := p.Process(ctx, d)
		if err != nil {
			return out, err
		}
		out = append(out, *o)
	}

	return out, nil
}

// Process runs one descriptor end to end. A dataset with no varying feature,
// or whose projection has no finite point, yields an Outcome with Skipped set
// and a nil error.
func (p *Processor) Process(ctx context.Context, d Descriptor) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.Data == nil || d.Data.Data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilDataset, d.Name)
	}
	log := p.logger.With("dataset", d.Name)

	// 1) Sanitize.
	var m matrix.Matrix = d.Data.Data
	if d.SanitizeNonFinite {
		n, err := matrix.CountNonFinite(m)
		if err != nil {
			return nil, p.wrap(d, err)
		}
		if m, err = matrix.ReplaceInfNaN(m, 0); err != nil {
			return nil, p.wrap(d, err)
		}
		log.Debug("replaced non-finite values", "cells", n)
	}

	// 2) Drop constant features.
	filtered, mask, err := variance.RemoveConstantRows(m)
	if err != nil {
		return nil, p.wrap(d, err)
	}
	kept := mask.Count()
	log.Info("filtered constant features", "kept", kept, "dropped", len(mask)-kept)

	// 3) Orient.
	var (
		x      matrix.Matrix = filtered
		labels []string
	)
	switch d.Orientation {
	case OrientSamples:
		if x, err = matrix.Transpose(filtered); err != nil {
			return nil, p.wrap(d, err)
		}
		labels = d.Data.Labels(p.labelPrefix)
	case OrientFeatures:
		if labels, err = variance.Select(mask, d.Data.RowIDs); err != nil {
			return nil, p.wrap(d, err)
		}
	default:
		return nil, p.wrap(d, fmt.Errorf("%w: %v", ErrUnknownOrientation, d.Orientation))
	}

	// 4) Project.
	opts := append(append([]pca.Option(nil), p.pcaOpts...), pca.WithLogger(log))
	out := &Outcome{
		Name:    d.Name,
		Title:   d.title(),
		Kept:    kept,
		Dropped: len(mask) - kept,
		Labels:  labels,
	}
	res, err := pca.Project(x, opts...)
	if errors.Is(err, pca.ErrEmptyInput) {
		out.Skipped = SkipNoVariance
		log.Warn("skipping dataset", "reason", out.Skipped)

		return out, nil
	}
	if err != nil {
		return nil, p.wrap(d, err)
	}
	out.Result = res
	log.Debug("projected", "observations", x.Rows(), "variables", x.Cols(),
		"components", res.Components(), "method", res.Method.String())

	// 5) Plot.
	s, err := scatterOf(d.title(), res, labels)
	if err != nil {
		return nil, p.wrap(d, err)
	}
	if s.FinitePoints() == 0 {
		out.Skipped = SkipNonFinite
		log.Warn("skipping dataset", "reason", out.Skipped, "points", len(s.X))

		return out, nil
	}
	if err = p.plotter.Scatter(ctx, s); err != nil {
		return nil, p.wrap(d, err)
	}

	return out, nil
}

func (p *Processor) wrap(d Descriptor, err error) error {
	return fmt.Errorf("pipeline: dataset %q: %w", d.Name, err)
}

// scatterOf pairs component 1 with component 2, or with zeros when the
// projection has a single component.
func scatterOf(title string, res *pca.Result, labels []string) (plot.Scatter, error) {
	xs, err := res.Component(0)
	if err != nil {
		return plot.Scatter{}, err
	}
	ys := make([]float64, len(xs))
	if res.Components() > 1 {
		if ys, err = res.Component(1); err != nil {
			return plot.Scatter{}, err
		}
	}
	ev := res.ExplainedVariance()

	return plot.Scatter{
		Title:  title,
		XName:  axisName(1, ev),
		YName:  axisName(2, ev),
		X:      xs,
		Y:      ys,
		Labels: labels,
	}, nil
}

func axisName(pc int, ev []float64) string {
	if pc > len(ev) || math.IsNaN(ev[pc-1]) {
		return fmt.Sprintf("PC%d", pc)
	}

	return fmt.Sprintf("PC%d (%.1f%%)", pc, 100*ev[pc-1])
}
