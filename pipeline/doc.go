// SPDX-License-Identifier: MIT

// Package pipeline drives filter → orient → project → plot for a list of
// datasets.
//
// Each Descriptor is processed on its own:
//
//  1. optional sanitization: NaN and ±Inf become 0 (fold-change tables);
//  2. rows whose values are all equal are removed (package variance);
//  3. orientation: OrientSamples transposes so that samples become the
//     observations and are labeled by their trimmed column names;
//     OrientFeatures keeps features as observations, labeled by row id;
//  4. PCA (package pca);
//  5. a scatter of component 1 against component 2 (or against 0 when only
//     one component exists) is handed to a plot.Plotter.
//
// Run processes descriptors sequentially in the given order and checks the
// context between datasets.
package pipeline
