// SPDX-License-Identifier: MIT

package plot

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned when no point has finite coordinates.
	ErrNoPoints = errors.New("plot: no finite points to draw")

	// ErrLengthMismatch is returned when X, Y, Labels or Categories disagree.
	ErrLengthMismatch = errors.New("plot: coordinate and label lengths differ")

	// ErrUnknownFormat is returned for output formats other than png and svg.
	ErrUnknownFormat = errors.New("plot: unknown output format")

	// ErrBadSize is returned for non-positive canvas dimensions.
	ErrBadSize = errors.New("plot: width and height must be positive")
)

// Format is the output file type.
type Format string

const (
	// FormatPNG writes raster charts through go-chart's PNG renderer.
	FormatPNG Format = "png"
	// FormatSVG writes vector charts; point labels stay searchable text.
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Scatter is one labeled point cloud.
type Scatter struct {
	Title      string
	XName      string
	YName      string
	X          []float64
	Y          []float64
	Labels     []string // one per point
	Categories []string // optional, one per point; groups points into colored series
}

// Validate checks that every per-point slice has len(X) entries.
func (s Scatter) Validate() error {
	n := len(s.X)
	if len(s.Y) != n || len(s.Labels) != n || (s.Categories != nil && len(s.Categories) != n) {
		return fmt.Errorf("%w: %q x=%d y=%d labels=%d categories=%d",
			ErrLengthMismatch, s.Title, n, len(s.Y), len(s.Labels), len(s.Categories))
	}

	return nil
}

// FinitePoints counts the points whose coordinates are both finite. Only
// those are drawn.
func (s Scatter) FinitePoints() int {
	n := 0
	for i := range s.X {
		if i < len(s.Y) && finite(s.X[i]) && finite(s.Y[i]) {
			n++
		}
	}

	return n
}

// Plotter draws scatter plots.
type Plotter interface {
	Scatter(ctx context.Context, s Scatter) error
}
