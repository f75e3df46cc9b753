// Package topology models branched-polymer connectivity as small, immutable,
// validated graphs.
//
// A Graph is a vertex set plus an edge multiset over unordered vertex pairs.
// Construction rejects self-loops and edges referencing unknown vertices, so
// malformed topologies are caught before they reach the spectral calculator.
// Parallel edges are legal — two junctions of a polymer may be joined by more
// than one chain — and degrees count them with multiplicity.
//
// Beyond basic counts the package exposes the quantities the g-factor theory
// needs: per-vertex degree, connected-component count, and the cycle rank
// (first Betti number) edges − vertices + components.
//
// Alpha returns the fixed 6-vertex/9-edge default topology; LoadTopology
// reads alternative topologies from a small YAML document, so an exact edge
// list taken from the literature can be supplied without a rebuild.
package topology
