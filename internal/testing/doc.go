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

// Package testing provides brute-force oracles for gapscan tests.
//
// The oracles walk the radix-2 string of each integer digit by digit, with
// no bit tricks, so they share no code with pkg/gap and can check it:
//
//	func TestScan(t *testing.T) {
//	    value, maxGap := gaptesting.OracleScan(999)
//	    r := gap.Scan(999)
//	    require.Equal(t, value, r.Value)
//	    require.Equal(t, maxGap, r.MaxGap)
//	}
//
// The package imports nothing from gapscan so internal tests of pkg/gap can
// use it without an import cycle.
package testing
