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

package gap

// Result is the outcome of a scan over [1, upperBound].
type Result struct {
	// Value is the first candidate whose binary form holds the longest gap,
	// or 0 when no candidate has a gap.
	Value int64 `json:"value"`

	// MaxGap is the length of that gap, 0 when none was found.
	MaxGap int `json:"max_gap"`
}

// better reports whether r should replace cur in a reduction: longer gaps
// win, equal gaps keep the smaller candidate.
func (r Result) better(cur Result) bool {
	if r.MaxGap != cur.MaxGap {
		return r.MaxGap > cur.MaxGap
	}
	return r.MaxGap > 0 && (cur.Value == 0 || r.Value < cur.Value)
}

// Scan returns the longest binary gap over every integer in [1, upperBound]
// and the first integer reaching it. Bounds below 1 yield the zero Result.
func Scan(upperBound int64) Result {
	return scanRange(1, upperBound, nil)
}

// Records returns every candidate in [1, upperBound] that raised the running
// maximum, in scan order. The last record, if any, equals Scan(upperBound).
func Records(upperBound int64) []Result {
	var out []Result
	scanRange(1, upperBound, func(r Result) { out = append(out, r) })
	return out
}

// scanRange scans [lo, hi] and calls onRecord each time the maximum is raised.
func scanRange(lo, hi int64, onRecord func(Result)) Result {
	var res Result
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		return res
	}
	// Stop on i == hi instead of i <= hi so hi == MaxInt64 cannot wrap.
	for i := lo; ; i++ {
		if g := Longest(uint64(i)); g > res.MaxGap {
			res = Result{Value: i, MaxGap: g}
			if onRecord != nil {
				onRecord(res)
			}
		}
		if i == hi {
			break
		}
	}
	return res
}
