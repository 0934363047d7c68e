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

package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Scans below this many candidates finish before a bar would render.
const minProgressCandidates = 1 << 24

// ProgressConfig says whether `scan` draws a bar and where.
type ProgressConfig struct {
	Enabled bool // off for -q, --json and non-TTY stderr
	Writer  io.Writer
	NoColor bool
}

// NewProgressConfig derives the bar settings from the global flags.
func NewProgressConfig(globals GlobalFlags) ProgressConfig {
	return ProgressConfig{
		Enabled: !globals.Quiet && isatty.IsTerminal(os.Stderr.Fd()),
		Writer:  os.Stderr,
		NoColor: globals.NoColor,
	}
}

// newScanBar returns a bar counting candidates of a [1, total] scan, or nil.
func newScanBar(cfg ProgressConfig, total int64) *progressbar.ProgressBar {
	if !cfg.Enabled || total < minProgressCandidates {
		return nil
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionSetWriter(cfg.Writer),
		progressbar.OptionSetItsString("candidates"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionEnableColorCodes(!cfg.NoColor),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
