// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/plotpca/dataset"
)

// StandardDescriptors returns the eight canonical analyses in plotting
// order: the four intensity tables followed by their log2 fold-change
// tables, which are sanitized.
func StandardDescriptors(wcl, wclp, ub, ubp, wclFC, wclpFC, ubFC, ubpFC *dataset.Dataset) []Descriptor {
	return []Descriptor{
		{Name: "wcl", Title: "WCL", Data: wcl},
		{Name: "wclp", Title: "WCLP", Data: wclp},
		{Name: "ub", Title: "Ub", Data: ub},
		{Name: "ubp", Title: "UbP", Data: ubp},
		{Name: "wcl_fc", Title: "WCL log2 FC", Data: wclFC, SanitizeNonFinite: true},
		{Name: "wclp_fc", Title: "WCLP log2 FC", Data: wclpFC, SanitizeNonFinite: true},
		{Name: "ub_fc", Title: "Ub log2 FC", Data: ubFC, SanitizeNonFinite: true},
		{Name: "ubp_fc", Title: "UbP log2 FC", Data: ubpFC, SanitizeNonFinite: true},
	}
}

// AllDataTitle is the chart title of the combined analysis.
const AllDataTitle = "All Data"

// AllDataDescriptor joins tables sharing row identifiers into one
// sanitized, feature-oriented analysis titled AllDataTitle.
func AllDataDescriptor(parts ...*dataset.Dataset) (Descriptor, error) {
	all, err := dataset.ConcatColumns("all", parts...)
	if err != nil {
		return Descriptor{}, fmt.Errorf("pipeline: all data: %w", err)
	}

	return Descriptor{
		Name:              "all",
		Title:             AllDataTitle,
		Data:              all,
		SanitizeNonFinite: true,
		Orientation:       OrientFeatures,
	}, nil
}
