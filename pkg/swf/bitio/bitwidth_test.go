// Copyright 2020-2021 The OS-NVR Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bitio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU32BitCount(t *testing.T) {
	cases := []struct {
		value uint32
		want  uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{0xff, 8},
		{0x100, 9},
		{math.MaxUint32, 32},
	}
	for _, c := range cases {
		require.Equal(t, c.want, U32BitCount(c.value), "value=%d", c.value)
	}
}

func TestI32BitCount(t *testing.T) {
	cases := []struct {
		value int32
		want  uint
	}{
		{0, 0},
		{1, 2},
		{-1, 1},
		{2, 3},
		{-2, 2},
		{math.MaxInt32, 32},
		{math.MinInt32, 32},
	}
	for _, c := range cases {
		require.Equal(t, c.want, I32BitCount(c.value), "value=%d", c.value)
	}
}

func TestU32MinBitCount(t *testing.T) {
	require.Equal(t, uint(0), U32MinBitCount())
	require.Equal(t, uint(8), U32MinBitCount(1, 0xff, 2))
}

func TestI32MinBitCount(t *testing.T) {
	require.Equal(t, uint(0), I32MinBitCount())
	require.Equal(t, uint(2), I32MinBitCount(-2, 1, 0))
}
