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

package swf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func TestEmitRectEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitRect(&buf, swftree.Rect{}))
	require.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestEmitRectNonZero(t *testing.T) {
	var buf bytes.Buffer
	// x_min=0, x_max=20000, y_min=0, y_max=15000 needs 16 bits (20000 < 2^15,
	// signed min bit count for 20000 is 16: sign bit + 15 magnitude bits).
	r := swftree.Rect{XMin: 0, XMax: 20000, YMin: 0, YMax: 15000}
	require.NoError(t, EmitRect(&buf, r))
	require.NotEmpty(t, buf.Bytes())
	// First 5 bits of the first byte hold the field width.
	width := buf.Bytes()[0] >> 3
	require.EqualValues(t, 16, width)
}

func TestEmitMatrixIdentity(t *testing.T) {
	var buf bytes.Buffer
	m := swftree.Matrix{
		ScaleX:      swftree.Sfixed16P16One,
		ScaleY:      swftree.Sfixed16P16One,
		RotateSkew0: swftree.Sfixed16P16Zero,
		RotateSkew1: swftree.Sfixed16P16Zero,
	}
	require.NoError(t, EmitMatrix(&buf, m))
	// has_scale=0, has_rotate_skew=0, translate width=0 (both zero): 7 bits,
	// padded to one zero byte.
	require.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestEmitColorTransformIdentity(t *testing.T) {
	var buf bytes.Buffer
	ct := swftree.ColorTransform{
		RedMult:   swftree.Sfixed8P8One,
		GreenMult: swftree.Sfixed8P8One,
		BlueMult:  swftree.Sfixed8P8One,
	}
	require.NoError(t, EmitColorTransform(&buf, ct))
	require.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestEmitColorTransformWithAlphaAdd(t *testing.T) {
	var buf bytes.Buffer
	ct := swftree.ColorTransformWithAlpha{
		RedMult: swftree.Sfixed8P8One, GreenMult: swftree.Sfixed8P8One,
		BlueMult: swftree.Sfixed8P8One, AlphaMult: swftree.Sfixed8P8One,
		RedAdd: 1,
	}
	require.NoError(t, EmitColorTransformWithAlpha(&buf, ct))
	require.NotEmpty(t, buf.Bytes())
	// has_add bit set.
	require.Equal(t, byte(1), buf.Bytes()[0]>>7)
}
