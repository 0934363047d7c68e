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

import (
	"math/bits"
	"strconv"
)

// Span locates a run of zero bits inside an integer.
type Span struct {
	// Offset is the bit index (LSB = 0) of the lowest zero in the run.
	Offset int
	// Length is the number of zeros in the run. Zero means no gap.
	Length int
}

// Longest returns the length of the longest enclosed zero run of n.
func Longest(n uint64) int {
	return Locate(n).Length
}

// Locate returns the longest enclosed zero run of n. When several runs share
// the maximal length, the most significant one is returned, which is the one
// a most-significant-first digit scan meets first.
func Locate(n uint64) Span {
	if n == 0 {
		return Span{}
	}

	// Trailing zeros are never closed by a lower one-bit.
	pos := bits.TrailingZeros64(n)
	n >>= uint(pos)

	var best Span
	for {
		// consume the one-bit bounding the run from below
		n >>= 1
		pos++
		if n == 0 {
			return best
		}
		z := bits.TrailingZeros64(n)
		if z > 0 && z >= best.Length {
			best = Span{Offset: pos, Length: z}
		}
		n >>= uint(z)
		pos += z
	}
}

// Binary returns the radix-2 digits of n, most significant first.
func Binary(n int64) string {
	return strconv.FormatInt(n, 2)
}
