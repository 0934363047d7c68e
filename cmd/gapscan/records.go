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

	"github.com/kraklabs/gapscan/internal/output"
	"github.com/kraklabs/gapscan/internal/ui"
	"github.com/kraklabs/gapscan/pkg/gap"
)

// runRecords executes the 'records' command: every candidate in [1, N] that
// raised the running maximum, in scan order. The last row is the scan result.
//
//	gapscan records 1041
func (a *app) runRecords(args []string) error {
	fs := flag.NewFlagSet("records", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage: gapscan records [N]

Lists every integer in [1, N] that holds a longer gap than all integers
before it. N defaults to upper_bound from the configuration.
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}

	upperBound, err := a.boundArg(fs.Args())
	if err != nil {
		return err
	}

	a.warnSequential(upperBound, "gapscan scan finds the last record in parallel")
	recs := gap.Records(upperBound)
	a.logger.Debug("records.done", "upper_bound", upperBound, "count", len(recs))

	if a.globals.JSON {
		if recs == nil {
			recs = []gap.Result{}
		}
		return output.JSONTo(a.stdout, output.RecordsReport{UpperBound: upperBound, Records: recs})
	}

	if len(recs) == 0 {
		fmt.Fprintf(a.stdout, "No integer in [1, %d] has a binary gap.\n", upperBound)
		return nil
	}

	width := len(strconv.FormatInt(recs[len(recs)-1].Value, 10))
	fmt.Fprintf(a.stdout, "%s  %s  %s\n", ui.Label(fmt.Sprintf("%3s", "gap")), ui.Label(fmt.Sprintf("%*s", width, "value")), ui.Label("binary"))
	for _, r := range recs {
		fmt.Fprintf(a.stdout, "%3d  %*d  %s\n", r.MaxGap, width, r.Value, ui.Highlight(r.Value))
	}
	return nil
}
