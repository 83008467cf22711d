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

func TestEmitShapeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitShape(&buf, swftree.Shape{}, ShapeVersion1))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf.Bytes())
}

func TestGetMinShapeVersionOpaqueSolid(t *testing.T) {
	shape := swftree.Shape{
		InitialStyles: swftree.ShapeStyles{
			FillStyles: []swftree.FillStyle{
				swftree.FillStyleSolid{Color: swftree.StraightSRgba8{R: 255, A: 255}},
			},
		},
	}
	require.Equal(t, ShapeVersion1, GetMinShapeVersion(shape))
}

func TestGetMinShapeVersionTranslucentSolidNeedsShape3(t *testing.T) {
	shape := swftree.Shape{
		InitialStyles: swftree.ShapeStyles{
			FillStyles: []swftree.FillStyle{
				swftree.FillStyleSolid{Color: swftree.StraightSRgba8{R: 255, A: 128}},
			},
		},
	}
	require.Equal(t, ShapeVersion3, GetMinShapeVersion(shape))
}

func TestGetMinShapeVersionLineStyle2FeatureNeedsShape4(t *testing.T) {
	shape := swftree.Shape{
		InitialStyles: swftree.ShapeStyles{
			LineStyles: []swftree.LineStyle{
				{Width: 10, Fill: swftree.FillStyleSolid{Color: swftree.StraightSRgba8{A: 255}}, NoClose: true},
			},
		},
	}
	require.Equal(t, ShapeVersion4, GetMinShapeVersion(shape))
}

func TestEmitShapeWithSquareOutline(t *testing.T) {
	shape := swftree.Shape{
		InitialStyles: swftree.ShapeStyles{
			LineStyles: []swftree.LineStyle{
				{Width: 20, Fill: swftree.FillStyleSolid{Color: swftree.StraightSRgba8{A: 255}}},
			},
		},
		Records: []swftree.ShapeRecord{
			swftree.StyleChange{MoveTo: &swftree.Vector2D{X: 0, Y: 0}, LineStyle: ptrU32(1)},
			swftree.Edge{Delta: swftree.Vector2D{X: 100, Y: 0}},
			swftree.Edge{Delta: swftree.Vector2D{X: 0, Y: 100}},
			swftree.Edge{Delta: swftree.Vector2D{X: -100, Y: 0}},
			swftree.Edge{Delta: swftree.Vector2D{X: 0, Y: -100}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, EmitShape(&buf, shape, ShapeVersion1))
	require.NotEmpty(t, buf.Bytes())
}

func ptrU32(v uint32) *uint32 { return &v }
