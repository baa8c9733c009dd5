// Package plotpca turns proteomics intensity and fold-change tables into
// labeled principal-component scatter plots.
//
// What is inside?
//
//	matrix/       dense row-major float64 matrix, products, Gram, Jacobi eigen,
//	              column statistics and a gonum bridge
//	variance/     constant-row detection and removal
//	pca/          standardization + SVD or covariance-eigen projection
//	dataset/      feature×sample tables, label trimming, TSV/CSV loading
//	plot/         scatter plots rendered to PNG/SVG with go-chart
//	pipeline/     filter → orient → project → plot for a list of datasets
//	config/       YAML run description and validation
//	cmd/plotpca/  the command-line driver
//
// Flow for one dataset:
//
//	table (features × samples)
//	  │  sanitize NaN/±Inf → 0 (fold-change tables only)
//	  ▼
//	drop rows whose values are all equal
//	  │  transpose: samples become observations
//	  ▼
//	standardize columns → SVD → scores = Z·Vᵀ
//	  ▼
//	scatter PC1 vs PC2, one label per sample
//
// Quick start:
//
//	plotpca init plotpca.yaml
//	plotpca run --config plotpca.yaml --out plots
//
// See examples/ for a self-contained synthetic run.
package plotpca
