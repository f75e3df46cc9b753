// SPDX-License-Identifier: MIT
// Package: gyrostat/topology
//
// errors.go — sentinel errors for graph construction and queries.
// Callers branch with errors.Is; context is attached with %w at call sites.

package topology

import "errors"

var (
	// ErrInvalidGraph indicates a malformed topology: a self-loop edge or an
	// edge referencing a vertex outside the vertex set.
	ErrInvalidGraph = errors.New("topology: invalid graph")

	// ErrUnknownVertex indicates a query referenced a vertex that is not in
	// the vertex set.
	ErrUnknownVertex = errors.New("topology: unknown vertex")

	// ErrDisconnected indicates a graph with more than one connected
	// component was passed where the spectral theory requires connectivity.
	ErrDisconnected = errors.New("topology: graph is not connected")
)
