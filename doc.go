// Package gyrostat computes g-factors for branched molecular topologies —
// dimensionless descriptors comparing the compactness of a branched polymer
// ("Alpha") against a tree-like reference of equal mass.
//
// 🚀 What is gyrostat?
//
//	A small, deterministic analysis toolkit that brings together:
//		• timeseries — radius-of-gyration trajectory parsing, equilibration
//		  window selection and moment statistics (mean, population std, ⟨Rg²⟩)
//		• topology   — validated vertex-set/edge-multiset graphs describing
//		  branched-polymer connectivity, with cycle rank and component queries
//		• spectral   — the theoretical g-factor from the normalized graph
//		  Laplacian via an SVD-based Moore–Penrose pseudoinverse
//		• analysis   — the empirical ⟨Rg²⟩ ratio pipeline over two trajectories
//		• report     — plain-text summaries and trajectory/histogram plots
//
// The empirical path runs
//
//	timeseries.Load → timeseries.SelectEquilibration → timeseries.Moments
//
// once per topology, then analysis.Ratio combines the two mean-square values.
// The theoretical path runs topology → spectral.Compute independently and
// serves as the benchmark the empirical ratio's square root is compared with.
//
// ✨ Design guarantees:
//
//   - Deterministic — fixed traversal orders, no global state, no randomness
//   - Sentinel errors everywhere — callers branch with errors.Is
//   - Pure cores — all side effects (files, plots, logs) live at the edges
//
// See cmd/gyrostat for the command-line front end.
package gyrostat
