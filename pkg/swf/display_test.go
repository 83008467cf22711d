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

func TestGetMinPlaceObjectVersionBareCharacter(t *testing.T) {
	id := uint16(1)
	m := identityMatrix()
	p := swftree.PlaceObject{CharacterID: &id, Depth: 1, Matrix: &m}
	require.Equal(t, PlaceObjectVersion1, GetMinPlaceObjectVersion(p))
}

func TestGetMinPlaceObjectVersionNameNeedsV2(t *testing.T) {
	name := "clip"
	p := swftree.PlaceObject{Depth: 1, Name: &name}
	require.Equal(t, PlaceObjectVersion2, GetMinPlaceObjectVersion(p))
}

func TestGetMinPlaceObjectVersionBlendModeNeedsV3(t *testing.T) {
	bm := swftree.BlendModeMultiply
	p := swftree.PlaceObject{Depth: 1, BlendMode: &bm}
	require.Equal(t, PlaceObjectVersion3, GetMinPlaceObjectVersion(p))
}

func TestEmitPlaceObjectVersion1(t *testing.T) {
	id := uint16(7)
	m := identityMatrix()
	p := swftree.PlaceObject{CharacterID: &id, Depth: 1, Matrix: &m}
	var buf bytes.Buffer
	require.NoError(t, EmitPlaceObject(&buf, p, 6))
	require.NotEmpty(t, buf.Bytes())
}

func TestEmitClipActionsStringEmptyHasTerminator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitClipActionsString(&buf, nil, 6))
	// Reserved u16 + a 32-bit zero terminator (SWF6+ uses the wide flag word).
	require.Equal(t, 6, buf.Len())
}

func TestEmitClipActionsStringLegacyIsNarrow(t *testing.T) {
	var buf bytes.Buffer
	action := swftree.ClipAction{Events: swftree.ClipEventFlags{Press: true}, Actions: []byte{0x00}}
	require.NoError(t, EmitClipActionsString(&buf, []swftree.ClipAction{action}, 4))
	require.Greater(t, buf.Len(), 6)
}

func TestEmitFilterBlurRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFilter(&buf, swftree.FilterBlur{BlurX: swftree.Sfixed16P16One * 4, BlurY: swftree.Sfixed16P16One * 4, Passes: 3}))
	require.Equal(t, byte(1), buf.Bytes()[0])
}
