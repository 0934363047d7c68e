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

package testing

import (
	"math/rand"
	"strconv"
	"strings"
)

// OracleGap returns the longest run of '0' digits enclosed by '1' digits in
// the binary form of n. Non-positive n has no gap.
func OracleGap(n int64) int {
	if n <= 0 {
		return 0
	}
	digits := strconv.FormatInt(n, 2)
	// Trailing zeros are not enclosed.
	digits = strings.TrimRight(digits, "0")

	best := 0
	for _, run := range strings.Split(digits, "1") {
		if len(run) > best {
			best = len(run)
		}
	}
	return best
}

// OracleScan returns the smallest integer in [1, upperBound] holding the
// longest gap, and that gap. Both are zero when no candidate has a gap.
func OracleScan(upperBound int64) (value int64, maxGap int) {
	for i := int64(1); i <= upperBound; i++ {
		if g := OracleGap(i); g > maxGap {
			value, maxGap = i, g
		}
	}
	return value, maxGap
}

// RandomBounds returns count pseudo-random bounds in [1, max] from a fixed
// seed, so failures reproduce.
func RandomBounds(seed int64, count int, max int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, count)
	for i := range out {
		out[i] = rng.Int63n(max) + 1
	}
	return out
}
