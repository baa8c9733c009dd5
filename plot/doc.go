// SPDX-License-Identifier: MIT

// Package plot renders labeled 2-D scatter plots of PCA scores.
//
// Plotter is the seam the pipeline talks to. ChartRenderer implements it
// with go-chart: one dot-only series per category, one annotation per point
// carrying the sample label, and the dataset title on top. Each call writes
// <dir>/<slug(title)>.<png|svg>.
//
// Points with a NaN or infinite coordinate cannot be placed. They are
// dropped from both the dots and the labels and reported at debug level;
// a scatter with no placeable point fails with ErrNoPoints.
package plot
