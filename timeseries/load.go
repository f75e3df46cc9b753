// SPDX-License-Identifier: MIT
// Package: gyrostat/timeseries
//
// load.go — trajectory parsing.
//
// Contract:
//   • Lines whose first non-whitespace byte equals the comment marker are
//     skipped entirely (LAMMPS headers/metadata).
//   • Blank lines are skipped.
//   • Every remaining line must tokenize into ≥ 2 whitespace-separated
//     fields: field 0 parses as an int64 timestep, field 1 as a float64
//     value; additional fields are ignored.
//   • < 2 tokens or an unparsable token ⇒ ErrParse (with line context).
//   • < 2 valid records overall ⇒ ErrEmptyData.
//
// Determinism:
//   • Single forward pass; record order is input order.
//
// Complexity:
//   • Time O(bytes), Space O(records).

package timeseries

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultCommentMarker is the comment prefix skipped by Load.
// LAMMPS thermo/fix output prefixes header lines with '#'.
const DefaultCommentMarker = "#"

// minRecords is the smallest series the loader accepts; a single sample
// cannot support window selection or a standard deviation.
const minRecords = 2

// LoadOptions configures trajectory parsing.
type LoadOptions struct {
	// CommentMarker is the prefix identifying comment lines.
	// Empty disables comment skipping.
	CommentMarker string
}

// DefaultLoadOptions returns the canonical parsing configuration.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{CommentMarker: DefaultCommentMarker}
}

// Load parses a two-column record stream into a Series.
// opts may be nil, in which case DefaultLoadOptions applies.
//
// Errors: ErrParse on a malformed data line, ErrEmptyData when fewer than two
// valid records result, or the underlying read error.
func Load(r io.Reader, opts *LoadOptions) (*Series, error) {
	cfg := DefaultLoadOptions()
	if opts != nil {
		cfg = *opts
	}

	var (
		timesteps []int64
		values    []float64
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if cfg.CommentMarker != "" && strings.HasPrefix(line, cfg.CommentMarker) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 fields, got %d: %w",
				lineNo, len(fields), ErrParse)
		}
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: timestep %q: %w", lineNo, fields[0], ErrParse)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", lineNo, fields[1], ErrParse)
		}

		timesteps = append(timesteps, ts)
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("timeseries: read: %w", err)
	}

	if len(values) < minRecords {
		return nil, fmt.Errorf("got %d record(s): %w", len(values), ErrEmptyData)
	}

	return &Series{timesteps: timesteps, values: values}, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts *LoadOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timeseries: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
