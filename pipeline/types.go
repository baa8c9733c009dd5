// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/plotpca/dataset"
	"github.com/katalvlaran/plotpca/pca"
)

var (
	// ErrNilPlotter is returned by NewProcessor without a plotter.
	ErrNilPlotter = errors.New("pipeline: nil plotter")

	// ErrNilDataset is returned for a Descriptor without data.
	ErrNilDataset = errors.New("pipeline: descriptor has no dataset")

	// ErrUnknownOrientation is returned by ParseOrientation.
	ErrUnknownOrientation = errors.New("pipeline: unknown orientation")
)

// Reasons recorded in Outcome.Skipped.
const (
	SkipNoVariance = "no varying features"
	SkipNonFinite  = "no finite scores"
)

// Orientation says which axis of a feature×sample table is projected.
type Orientation int

const (
	// OrientSamples projects samples (the table is transposed first).
	OrientSamples Orientation = iota
	// OrientFeatures projects features as they are.
	OrientFeatures
)

func (o Orientation) String() string {
	switch o {
	case OrientSamples:
		return "samples"
	case OrientFeatures:
		return "features"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "samples" (also "") and "features".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "samples":
		return OrientSamples, nil
	case "features":
		return OrientFeatures, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Descriptor names one dataset and how to treat it.
type Descriptor struct {
	Name              string
	Title             string
	Data              *dataset.Dataset
	SanitizeNonFinite bool
	Orientation       Orientation
}

func (d Descriptor) title() string {
	if d.Title != "" {
		return d.Title
	}

	return d.Name
}

// Outcome summarizes one processed dataset.
type Outcome struct {
	Name    string
	Title   string
	Kept    int // features that survived the constant-row filter
	Dropped int
	Labels  []string    // one per projected observation
	Result  *pca.Result // nil when no feature varies

	// Skipped is set when nothing was drawn for the dataset, with the reason.
	Skipped string
}

// Plotted reports whether a chart was written for the outcome.
func (o Outcome) Plotted() bool { return o.Skipped == "" }
