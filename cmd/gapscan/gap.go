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
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/gapscan/internal/errors"
	"github.com/kraklabs/gapscan/internal/output"
	"github.com/kraklabs/gapscan/internal/ui"
)

// runGap executes the 'gap' command: the longest gap of each argument.
// With --json one compact object is written per line.
//
//	gapscan gap 529 1041
func (a *app) runGap(args []string) error {
	fs := flag.NewFlagSet("gap", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage: gapscan gap <n>...

Prints the binary form of each positive integer with its longest gap.
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}
	if fs.NArg() == 0 {
		return errors.NewInputError(
			"Missing integer",
			"gap needs at least one integer argument",
			"For example: gapscan gap 529",
		)
	}

	nums := make([]int64, 0, fs.NArg())
	for _, s := range fs.Args() {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 {
			return errors.NewInputError(
				"Invalid integer",
				fmt.Sprintf("%q is not a positive 64-bit integer", s),
				"Pass positive base-10 integers, for example: gapscan gap 529 1041",
			)
		}
		nums = append(nums, n)
	}

	for _, n := range nums {
		rep := output.NewGapReport(n)
		if a.globals.JSON {
			if err := output.JSONCompactTo(a.stdout, rep); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(a.stdout, "%d  %s  gap=%d\n", n, ui.Highlight(n), rep.Gap)
	}
	return nil
}
