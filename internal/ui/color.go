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

// Package ui provides terminal output helpers for the gapscan CLI.
//
// Colors respect the --no-color flag and the NO_COLOR environment variable,
// and are disabled automatically when stdout is not a TTY.
//
// Color usage guidelines:
//   - Red: the zeros of a binary gap, errors
//   - Yellow: warnings
//   - Cyan: counts
//   - Bold: headers, labels
//   - Dim: bits outside the highlighted gap
package ui

import (
	"io"

	"github.com/fatih/color"

	"github.com/kraklabs/gapscan/pkg/gap"
)

// Pre-configured color instances for consistent CLI output.
var (
	Red    = color.New(color.FgRed, color.Bold)
	Yellow = color.New(color.FgYellow)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// Out is where Warningf writes. The CLI points it at stderr.
var Out io.Writer = color.Error

// InitColors sets the global color state. Call once after flag parsing.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Warningf prints a yellow formatted warning.
func Warningf(format string, args ...any) {
	_, _ = Yellow.Fprintf(Out, "⚠ "+format+"\n", args...)
}

// Label returns text formatted as a bold label.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns text in a faint style.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a number in cyan.
func CountText(count int) string {
	return Cyan.Sprint(count)
}

// Highlight returns the binary digits of n with its longest gap in red and
// the remaining bits dimmed. Integers without a gap are returned plain.
func Highlight(n int64) string {
	digits := gap.Binary(n)
	sp := gap.Locate(uint64(n))
	if n <= 0 || sp.Length == 0 {
		return digits
	}

	// Offsets count from the least significant bit; the string is MSB first.
	end := len(digits) - sp.Offset
	start := end - sp.Length
	return Dim.Sprint(digits[:start]) + Red.Sprint(digits[start:end]) + Dim.Sprint(digits[end:])
}
