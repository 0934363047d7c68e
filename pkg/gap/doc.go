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

// Package gap finds the largest binary gap over a range of integers.
//
// A binary gap is a maximal run of zero bits that has a one-bit immediately
// above and immediately below it. Trailing zeros are never part of a gap:
// 4 (100) has none, 9 (1001) has one of length 2.
//
// # Scanning
//
// Scan examines every candidate in [1, upperBound] and returns the longest
// gap together with the first candidate that reached it:
//
//	r := gap.Scan(999)
//	// r.Value == 513 (1000000001), r.MaxGap == 8
//
// Ranges without any gap (upperBound < 5) and non-positive bounds yield the
// zero Result. Any int64 bound is accepted.
//
// # Parallel scanning
//
// Scanner splits the range into chunks and reduces them across a pool of
// workers. The reduction keeps the larger gap and, on ties, the smaller
// candidate, so ScanContext always agrees with Scan:
//
//	s := gap.NewScanner(gap.ScannerConfig{Workers: 8}, logger)
//	r, err := s.ScanContext(ctx, 1<<32)
//
// # Metrics
//
// Scans are counted in Prometheus metrics registered with the default
// registry on first use (gapscan_scans_total, gapscan_candidates_total,
// gapscan_scan_seconds and friends).
package gap
