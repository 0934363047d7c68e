// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output provides the machine-readable (--json) forms of gapscan
// results.
//
//	rep := output.NewScanReport(999, gap.Scan(999), elapsed)
//	if err := output.JSONTo(os.Stdout, rep); err != nil {
//	    return err
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kraklabs/gapscan/pkg/gap"
)

// ScanReport is the --json form of `gapscan scan`.
type ScanReport struct {
	UpperBound int64  `json:"upper_bound"`
	Value      int64  `json:"value"`
	MaxGap     int    `json:"max_gap"`
	Binary     string `json:"binary,omitempty"`
	Workers    int    `json:"workers,omitempty"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

// NewScanReport builds a ScanReport. Binary is left empty when no gap exists.
func NewScanReport(upperBound int64, r gap.Result, elapsed time.Duration) ScanReport {
	rep := ScanReport{
		UpperBound: upperBound,
		Value:      r.Value,
		MaxGap:     r.MaxGap,
		ElapsedMS:  elapsed.Milliseconds(),
	}
	if r.Value > 0 {
		rep.Binary = gap.Binary(r.Value)
	}
	return rep
}

// GapReport is the --json form of a single integer in `gapscan gap`.
type GapReport struct {
	N      int64  `json:"n"`
	Binary string `json:"binary"`
	Gap    int    `json:"gap"`
	Offset int    `json:"offset,omitempty"`
}

// NewGapReport measures n.
func NewGapReport(n int64) GapReport {
	sp := gap.Locate(uint64(n))
	return GapReport{N: n, Binary: gap.Binary(n), Gap: sp.Length, Offset: sp.Offset}
}

// RecordsReport is the --json form of `gapscan records`.
type RecordsReport struct {
	UpperBound int64        `json:"upper_bound"`
	Records    []gap.Result `json:"records"`
}

// JSONTo writes data as pretty-printed JSON (2-space indent) to w.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONCompactTo writes data as single-line JSON to w, one value per line.
// `gapscan gap` uses it to stream one report per argument.
func JSONCompactTo(w io.Writer, data any) error {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}
