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
	"io"

	"github.com/open-flash/swf-emitter-go/pkg/swf/bitio"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

// EmitShape packs a Shape's style tables and record stream into a
// self-contained, byte-aligned block, for the given minimum version
// (see GetMinShapeVersion).
func EmitShape(w io.Writer, shape swftree.Shape, version ShapeVersion) error {
	bw := bitio.NewWriter(w)
	fillBits, lineBits := emitShapeStylesBits(bw, shape.InitialStyles, version)
	emitShapeRecordStringBits(bw, shape.Records, fillBits, lineBits, version)
	bw.TryAlign()
	return bw.TryError
}

func emitShapeRecordStringBits(bw *bitio.Writer, records []swftree.ShapeRecord, fillBits, lineBits uint, version ShapeVersion) {
	for _, rec := range records {
		switch r := rec.(type) {
		case swftree.Edge:
			bw.TryWriteBool(true)
			emitEdgeBits(bw, r)
		case swftree.StyleChange:
			bw.TryWriteBool(false)
			fillBits, lineBits = emitStyleChangeBits(bw, r, fillBits, lineBits, version)
		default:
			invariant(false, "unknown shape record %T", rec)
		}
	}
	bw.TryWriteUnsigned(6, 0) // end-of-records sentinel.
}

func emitEdgeBits(bw *bitio.Writer, e swftree.Edge) {
	if e.ControlDelta != nil {
		cx, cy := e.ControlDelta.X, e.ControlDelta.Y
		ax, ay := e.Delta.X-cx, e.Delta.Y-cy
		bits := bitio.I32MinBitCount(cx, cy, ax, ay)
		if bits < 2 {
			bits = 2
		}
		bw.TryWriteUnsigned(4, uint32(bits-2))
		bw.TryWriteBool(false) // straight_flag: curved edge.
		bw.TryWriteSigned(bits, cx)
		bw.TryWriteSigned(bits, cy)
		bw.TryWriteSigned(bits, ax)
		bw.TryWriteSigned(bits, ay)
		return
	}

	dx, dy := e.Delta.X, e.Delta.Y
	isHorizontal := dy == 0
	isVertical := dx == 0
	bits := bitio.I32MinBitCount(dx, dy)
	if bits < 2 {
		bits = 2
	}
	bw.TryWriteUnsigned(4, uint32(bits-2))
	bw.TryWriteBool(true) // straight_flag: straight edge.

	isGeneral := !isHorizontal && !isVertical
	bw.TryWriteBool(isGeneral)
	if isGeneral {
		bw.TryWriteSigned(bits, dx)
		bw.TryWriteSigned(bits, dy)
		return
	}
	bw.TryWriteBool(isVertical)
	if isVertical {
		bw.TryWriteSigned(bits, dy)
	} else {
		bw.TryWriteSigned(bits, dx)
	}
}

// emitStyleChangeBits writes one StyleChange record and returns the
// fill/line field widths in effect for records that follow it (changed
// only when NewStyles replaces the active style tables).
func emitStyleChangeBits(bw *bitio.Writer, sc swftree.StyleChange, fillBits, lineBits uint, version ShapeVersion) (uint, uint) {
	hasNewStyles := sc.NewStyles != nil
	hasLineStyle := sc.LineStyle != nil
	hasFillStyle1 := sc.RightFill != nil
	hasFillStyle0 := sc.LeftFill != nil
	hasMoveTo := sc.MoveTo != nil

	bw.TryWriteBool(hasNewStyles)
	bw.TryWriteBool(hasLineStyle)
	bw.TryWriteBool(hasFillStyle1)
	bw.TryWriteBool(hasFillStyle0)
	bw.TryWriteBool(hasMoveTo)
	invariant(hasNewStyles || hasLineStyle || hasFillStyle1 || hasFillStyle0 || hasMoveTo,
		"style-change record must set at least one flag (an all-zero record is the end-of-shape sentinel)")

	if hasMoveTo {
		bits := bitio.I32MinBitCount(sc.MoveTo.X, sc.MoveTo.Y)
		bw.TryWriteUnsigned(5, uint32(bits))
		bw.TryWriteSigned(bits, sc.MoveTo.X)
		bw.TryWriteSigned(bits, sc.MoveTo.Y)
	}
	if hasFillStyle0 {
		bw.TryWriteUnsigned(fillBits, *sc.LeftFill)
	}
	if hasFillStyle1 {
		bw.TryWriteUnsigned(fillBits, *sc.RightFill)
	}
	if hasLineStyle {
		bw.TryWriteUnsigned(lineBits, *sc.LineStyle)
	}
	if hasNewStyles {
		invariant(version >= ShapeVersion2, "a style-change record with new_styles needs DefineShape2 or later")
		return emitShapeStylesBits(bw, *sc.NewStyles, version)
	}
	return fillBits, lineBits
}

func maxShapeVersion(a, b ShapeVersion) ShapeVersion {
	if b > a {
		return b
	}
	return a
}

func gradientMinShapeVersion(g swftree.Gradient) ShapeVersion {
	for _, stop := range g.Colors {
		if stop.Color.A != 255 {
			return ShapeVersion3
		}
	}
	return ShapeVersion1
}

func fillStyleMinShapeVersion(fs swftree.FillStyle) ShapeVersion {
	switch f := fs.(type) {
	case swftree.FillStyleSolid:
		if f.Color.A != 255 {
			return ShapeVersion3
		}
		return ShapeVersion1
	case swftree.FillStyleLinearGradient:
		return gradientMinShapeVersion(f.Gradient)
	case swftree.FillStyleRadialGradient:
		return gradientMinShapeVersion(f.Gradient)
	case swftree.FillStyleFocalGradient:
		return ShapeVersion4
	case swftree.FillStyleBitmap:
		return ShapeVersion1
	default:
		invariant(false, "unknown fill style %T", fs)
		return ShapeVersion1
	}
}

func lineStyleMinShapeVersion(ls swftree.LineStyle) ShapeVersion {
	needsLineStyle2 := ls.PixelHinting || ls.NoHScale || ls.NoVScale || ls.NoClose ||
		ls.Join != swftree.JoinStyleRound || ls.StartCap != swftree.CapStyleRound || ls.EndCap != swftree.CapStyleRound

	solid, ok := ls.Fill.(swftree.FillStyleSolid)
	if !ok {
		// A gradient or bitmap line fill only exists in the LineStyle2 wire form.
		return ShapeVersion4
	}
	if needsLineStyle2 {
		return ShapeVersion4
	}
	if solid.Color.A != 255 {
		return ShapeVersion3
	}
	return ShapeVersion1
}

func shapeStylesMinShapeVersion(styles swftree.ShapeStyles) ShapeVersion {
	version := ShapeVersion1
	if len(styles.FillStyles) >= extendedListLengthMarker || len(styles.LineStyles) >= extendedListLengthMarker {
		version = ShapeVersion2
	}
	for _, fs := range styles.FillStyles {
		version = maxShapeVersion(version, fillStyleMinShapeVersion(fs))
	}
	for _, ls := range styles.LineStyles {
		version = maxShapeVersion(version, lineStyleMinShapeVersion(ls))
	}
	return version
}

// GetMinShapeVersion returns the lowest DefineShape generation that can
// represent shape without loss: non-opaque fills need Shape3, LineStyle2
// features or non-solid line fills need Shape4, oversized style lists or
// any in-stream restyle need at least Shape2.
func GetMinShapeVersion(shape swftree.Shape) ShapeVersion {
	version := shapeStylesMinShapeVersion(shape.InitialStyles)
	for _, rec := range shape.Records {
		sc, ok := rec.(swftree.StyleChange)
		if !ok || sc.NewStyles == nil {
			continue
		}
		version = maxShapeVersion(version, ShapeVersion2)
		version = maxShapeVersion(version, shapeStylesMinShapeVersion(*sc.NewStyles))
	}
	return version
}
