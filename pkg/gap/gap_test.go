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
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gaptesting "github.com/kraklabs/gapscan/internal/testing"
)

// oracleScan adapts the brute-force oracle to Result.
func oracleScan(n int64) Result {
	v, g := gaptesting.OracleScan(n)
	return Result{Value: v, MaxGap: g}
}

func TestLongest(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{1, 0},
		{4, 0},   // 100
		{5, 1},   // 101
		{6, 0},   // 110
		{9, 2},   // 1001
		{20, 1},  // 10100
		{32, 0},  // 100000
		{529, 4}, // 1000010001
		{1041, 5},
		{513, 8}, // 1000000001
		{1<<63 | 1, 62},
		{math.MaxUint64, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.n, 2), func(t *testing.T) {
			assert.Equal(t, tt.want, Longest(tt.n))
		})
	}
}

func TestLongestMatchesOracle(t *testing.T) {
	for i := int64(0); i < 1<<14; i++ {
		require.Equal(t, gaptesting.OracleGap(i), Longest(uint64(i)), "n=%d (%s)", i, Binary(i))
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want Span
	}{
		{"no gap", 6, Span{}},
		{"single", 5, Span{Offset: 1, Length: 1}},
		{"trailing ignored", 0b1001000, Span{Offset: 4, Length: 2}},
		{"longest wins", 0b1000101, Span{Offset: 3, Length: 3}},
		{"tie picks most significant", 0b1001001, Span{Offset: 4, Length: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locate(tt.n))
		})
	}
}

// TestLocateSpanIsEnclosed verifies the located run is zeros bounded by ones.
func TestLocateSpanIsEnclosed(t *testing.T) {
	for n := uint64(1); n < 1<<12; n++ {
		sp := Locate(n)
		if sp.Length == 0 {
			continue
		}
		mask := uint64(1)<<uint(sp.Length) - 1
		require.Zero(t, (n>>uint(sp.Offset))&mask, "n=%b span=%+v", n, sp)
		require.Equal(t, uint64(1), (n>>uint(sp.Offset-1))&1, "n=%b lower bound", n)
		require.Equal(t, uint64(1), (n>>uint(sp.Offset+sp.Length))&1, "n=%b upper bound", n)
	}
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "1", Binary(1))
	assert.Equal(t, "1000000001", Binary(513))
	assert.Equal(t, "0", Binary(0))
}

func TestScan(t *testing.T) {
	tests := []struct {
		upper int64
		want  Result
	}{
		{-7, Result{}},
		{0, Result{}},
		{1, Result{}},
		{4, Result{}},
		{5, Result{Value: 5, MaxGap: 1}},
		{8, Result{Value: 5, MaxGap: 1}},
		{9, Result{Value: 9, MaxGap: 2}},
		{20, Result{Value: 17, MaxGap: 3}},
		{512, Result{Value: 257, MaxGap: 7}},
		{999, Result{Value: 513, MaxGap: 8}},
		{1041, Result{Value: 1025, MaxGap: 9}},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.upper, 10), func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.upper))
		})
	}
}

func TestScanMatchesOracle(t *testing.T) {
	for _, n := range gaptesting.RandomBounds(42, 50, 20000) {
		require.Equal(t, oracleScan(n), Scan(n), "upperBound=%d", n)
	}
}

func TestScanProperties(t *testing.T) {
	prev := 0
	for n := int64(1); n <= 2048; n++ {
		r := Scan(n)

		if r.MaxGap == 0 {
			assert.Zero(t, r.Value)
		} else {
			assert.GreaterOrEqual(t, r.Value, int64(1))
			assert.LessOrEqual(t, r.Value, n)
			assert.Equal(t, r.MaxGap, gaptesting.OracleGap(r.Value))
		}

		// monotonic in the bound
		require.GreaterOrEqual(t, r.MaxGap, prev, "upperBound=%d", n)
		prev = r.MaxGap

		// smallest among candidates sharing the maximum
		for i := int64(1); i < r.Value; i++ {
			require.Less(t, gaptesting.OracleGap(i), r.MaxGap, "upperBound=%d candidate=%d", n, i)
		}
	}
}

func TestScanMaxInt64DoesNotWrap(t *testing.T) {
	r := scanRange(math.MaxInt64-3, math.MaxInt64, nil)
	// ...1100, ...1101, ...1110, ...1111: only ...1101 encloses a zero.
	assert.Equal(t, Result{Value: math.MaxInt64 - 2, MaxGap: 1}, r)
}

func TestRecords(t *testing.T) {
	recs := Records(1041)
	require.NotEmpty(t, recs)

	want := []Result{
		{5, 1}, {9, 2}, {17, 3}, {33, 4}, {65, 5}, {129, 6}, {257, 7}, {513, 8}, {1025, 9},
	}
	assert.Equal(t, want, recs)
	assert.Equal(t, Scan(1041), recs[len(recs)-1])

	for i := 1; i < len(recs); i++ {
		assert.Greater(t, recs[i].Value, recs[i-1].Value)
		assert.Greater(t, recs[i].MaxGap, recs[i-1].MaxGap)
	}

	assert.Empty(t, Records(4))
}

func TestResultBetter(t *testing.T) {
	zero := Result{}
	a := Result{Value: 9, MaxGap: 2}
	b := Result{Value: 5, MaxGap: 1}
	c := Result{Value: 18, MaxGap: 2}

	assert.True(t, a.better(zero))
	assert.False(t, zero.better(a))
	assert.True(t, a.better(b))
	assert.True(t, a.better(c), "equal gaps keep the smaller value")
	assert.False(t, c.better(a))
	assert.False(t, zero.better(zero))
}
