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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func TestEmitMorphShapeEmptyHasStartSizePrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitMorphShape(&buf, swftree.MorphShape{}, MorphShapeVersion1))
	require.GreaterOrEqual(t, buf.Len(), 4)
	startSize := binary.LittleEndian.Uint32(buf.Bytes()[:4])
	require.Less(t, int(startSize), buf.Len())
}

func TestGetMinMorphShapeVersionSolidLine(t *testing.T) {
	ms := swftree.MorphShape{
		InitialStyles: swftree.MorphShapeStyles{
			LineStyles: []swftree.MorphLineStyle{
				{Width: 10, MorphWidth: 10, Fill: swftree.MorphFillStyleSolid{
					Color:      swftree.StraightSRgba8{A: 255},
					MorphColor: swftree.StraightSRgba8{A: 255},
				}},
			},
		},
	}
	require.Equal(t, MorphShapeVersion1, GetMinMorphShapeVersion(ms))
}

func TestGetMinMorphShapeVersionGradientLineNeedsV2(t *testing.T) {
	ms := swftree.MorphShape{
		InitialStyles: swftree.MorphShapeStyles{
			LineStyles: []swftree.MorphLineStyle{
				{Width: 10, MorphWidth: 10, Fill: swftree.MorphFillStyleLinearGradient{}},
			},
		},
	}
	require.Equal(t, MorphShapeVersion2, GetMinMorphShapeVersion(ms))
}
