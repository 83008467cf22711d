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
	"github.com/open-flash/swf-emitter-go/pkg/swf/bitio"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

// ShapeVersion is the minimum DefineShape generation a Shape's contents
// require, derived by GetMinShapeVersion rather than stored on the AST.
type ShapeVersion uint8

// Shape versions, ordered so comparison operators express "at least".
const (
	ShapeVersion1 ShapeVersion = iota + 1
	ShapeVersion2
	ShapeVersion3
	ShapeVersion4
)

const extendedListLengthMarker = 0xff

func emitListLength(bw *bitio.Writer, length int, supportExtended bool) {
	if length < extendedListLengthMarker {
		bw.TryWriteByte(byte(length))
		return
	}
	invariant(supportExtended, "style list with %d entries needs DefineShape2 or later", length)
	bw.TryWriteByte(extendedListLengthMarker)
	bw.TryWriteUint16LE(uint16(length))
}

func bitmapFillCode(repeating, smoothed bool) byte {
	code := byte(0x40)
	if !repeating {
		code |= 0x01
	}
	if !smoothed {
		code |= 0x02
	}
	return code
}

func emitFillStyle(bw *bitio.Writer, style swftree.FillStyle, withAlpha bool) {
	switch v := style.(type) {
	case swftree.FillStyleSolid:
		bw.TryWriteByte(0x00)
		if withAlpha {
			bw.TrySet(EmitStraightSRgba8(bw, v.Color))
		} else {
			invariant(v.Color.A == 255, "solid fill alpha must be opaque outside an alpha-capable shape version")
			bw.TrySet(EmitSRgb8(bw, swftree.SRgb8{R: v.Color.R, G: v.Color.G, B: v.Color.B}))
		}
	case swftree.FillStyleLinearGradient:
		bw.TryWriteByte(0x10)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitGradient(bw, v.Gradient, withAlpha))
	case swftree.FillStyleRadialGradient:
		bw.TryWriteByte(0x12)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitGradient(bw, v.Gradient, withAlpha))
	case swftree.FillStyleFocalGradient:
		bw.TryWriteByte(0x13)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitGradient(bw, v.Gradient, withAlpha))
		bw.TryWriteInt16LE(int16(v.FocalPoint))
	case swftree.FillStyleBitmap:
		bw.TryWriteByte(bitmapFillCode(v.Repeating, v.Smoothed))
		bw.TryWriteUint16LE(v.BitmapID)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
	default:
		invariant(false, "unknown fill style %T", style)
	}
}

func emitMorphFillStyle(bw *bitio.Writer, style swftree.MorphFillStyle) {
	switch v := style.(type) {
	case swftree.MorphFillStyleSolid:
		bw.TryWriteByte(0x00)
		bw.TrySet(EmitStraightSRgba8(bw, v.Color))
		bw.TrySet(EmitStraightSRgba8(bw, v.MorphColor))
	case swftree.MorphFillStyleLinearGradient:
		bw.TryWriteByte(0x10)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitMatrix(bw, v.MorphMatrix))
		bw.TrySet(EmitMorphGradient(bw, v.Gradient))
	case swftree.MorphFillStyleRadialGradient:
		bw.TryWriteByte(0x12)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitMatrix(bw, v.MorphMatrix))
		bw.TrySet(EmitMorphGradient(bw, v.Gradient))
	case swftree.MorphFillStyleFocalGradient:
		bw.TryWriteByte(0x13)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitMatrix(bw, v.MorphMatrix))
		bw.TrySet(EmitMorphGradient(bw, v.Gradient))
		bw.TryWriteInt16LE(int16(v.FocalPoint))
		bw.TryWriteInt16LE(int16(v.MorphFocalPoint))
	case swftree.MorphFillStyleBitmap:
		bw.TryWriteByte(bitmapFillCode(v.Repeating, v.Smoothed))
		bw.TryWriteUint16LE(v.BitmapID)
		bw.TrySet(EmitMatrix(bw, v.Matrix))
		bw.TrySet(EmitMatrix(bw, v.MorphMatrix))
	default:
		invariant(false, "unknown morph fill style %T", style)
	}
}

func joinStyleCode(j swftree.JoinStyleKind) byte {
	switch j {
	case swftree.JoinStyleRound:
		return 0
	case swftree.JoinStyleBevel:
		return 1
	case swftree.JoinStyleMiter:
		return 2
	default:
		invariant(false, "unknown join style %v", j)
		return 0
	}
}

func capStyleCode(c swftree.CapStyle) byte {
	switch c {
	case swftree.CapStyleRound:
		return 0
	case swftree.CapStyleNone:
		return 1
	case swftree.CapStyleSquare:
		return 2
	default:
		invariant(false, "unknown cap style %v", c)
		return 0
	}
}

func emitLineStyle1(bw *bitio.Writer, ls swftree.LineStyle, withAlpha bool) {
	solid, ok := ls.Fill.(swftree.FillStyleSolid)
	invariant(ok, "LineStyle1 only supports a solid color fill")
	bw.TryWriteUint16LE(ls.Width)
	if withAlpha {
		bw.TrySet(EmitStraightSRgba8(bw, solid.Color))
	} else {
		bw.TrySet(EmitSRgb8(bw, swftree.SRgb8{R: solid.Color.R, G: solid.Color.G, B: solid.Color.B}))
	}
}

func emitLineStyle2(bw *bitio.Writer, ls swftree.LineStyle) {
	bw.TryWriteUint16LE(ls.Width)

	_, fillIsSolid := ls.Fill.(swftree.FillStyleSolid)
	hasFill := ls.Fill != nil && !fillIsSolid

	var flags uint16
	if ls.PixelHinting {
		flags |= 1 << 0
	}
	if ls.NoVScale {
		flags |= 1 << 1
	}
	if ls.NoHScale {
		flags |= 1 << 2
	}
	if hasFill {
		flags |= 1 << 3
	}
	flags |= uint16(joinStyleCode(ls.Join)) << 4
	flags |= uint16(capStyleCode(ls.StartCap)) << 6
	flags |= uint16(capStyleCode(ls.EndCap)) << 8
	if ls.NoClose {
		flags |= 1 << 10
	}
	bw.TryWriteUint16LE(flags)

	if ls.Join == swftree.JoinStyleMiter {
		bw.TryWriteInt16LE(int16(ls.MiterLimitFactor))
	}

	if hasFill {
		emitFillStyle(bw, ls.Fill, true)
		return
	}
	color := swftree.StraightSRgba8{A: 255}
	if fillIsSolid {
		color = ls.Fill.(swftree.FillStyleSolid).Color
	}
	bw.TrySet(EmitStraightSRgba8(bw, color))
}

func emitMorphLineStyle1(bw *bitio.Writer, ls swftree.MorphLineStyle) {
	solid, ok := ls.Fill.(swftree.MorphFillStyleSolid)
	invariant(ok, "MorphLineStyle1 only supports a solid color fill")
	bw.TryWriteUint16LE(ls.Width)
	bw.TryWriteUint16LE(ls.MorphWidth)
	bw.TrySet(EmitStraightSRgba8(bw, solid.Color))
	bw.TrySet(EmitStraightSRgba8(bw, solid.MorphColor))
}

func emitMorphLineStyle2(bw *bitio.Writer, ls swftree.MorphLineStyle) {
	bw.TryWriteUint16LE(ls.Width)

	_, fillIsSolid := ls.Fill.(swftree.MorphFillStyleSolid)
	hasFill := ls.Fill != nil && !fillIsSolid

	var flags uint16
	if ls.PixelHinting {
		flags |= 1 << 0
	}
	if ls.NoVScale {
		flags |= 1 << 1
	}
	if ls.NoHScale {
		flags |= 1 << 2
	}
	if hasFill {
		flags |= 1 << 3
	}
	flags |= uint16(joinStyleCode(ls.Join)) << 4
	flags |= uint16(capStyleCode(ls.StartCap)) << 6
	flags |= uint16(capStyleCode(ls.EndCap)) << 8
	if ls.NoClose {
		flags |= 1 << 10
	}
	bw.TryWriteUint16LE(flags)

	if ls.Join == swftree.JoinStyleMiter {
		bw.TryWriteInt16LE(int16(ls.MiterLimitFactor))
	}
	bw.TryWriteUint16LE(ls.MorphWidth)

	if hasFill {
		emitMorphFillStyle(bw, ls.Fill)
		return
	}
	color := swftree.StraightSRgba8{A: 255}
	morphColor := swftree.StraightSRgba8{A: 255}
	if fillIsSolid {
		solid := ls.Fill.(swftree.MorphFillStyleSolid)
		color, morphColor = solid.Color, solid.MorphColor
	}
	bw.TrySet(EmitStraightSRgba8(bw, color))
	bw.TrySet(EmitStraightSRgba8(bw, morphColor))
}

// emitShapeStylesBits writes the fill and line style lists, then the
// 4-bit fill_bits/4-bit line_bits field-width nibbles that every record
// in the following record string is packed with.
func emitShapeStylesBits(bw *bitio.Writer, styles swftree.ShapeStyles, version ShapeVersion) (fillBits, lineBits uint) {
	withAlpha := version >= ShapeVersion3
	supportExtended := version >= ShapeVersion2

	emitListLength(bw, len(styles.FillStyles), supportExtended)
	for _, fs := range styles.FillStyles {
		emitFillStyle(bw, fs, withAlpha)
	}

	emitListLength(bw, len(styles.LineStyles), supportExtended)
	for _, ls := range styles.LineStyles {
		if version >= ShapeVersion4 {
			emitLineStyle2(bw, ls)
		} else {
			emitLineStyle1(bw, ls, withAlpha)
		}
	}

	fillBits = bitio.U32BitCount(uint32(len(styles.FillStyles)))
	lineBits = bitio.U32BitCount(uint32(len(styles.LineStyles)))
	bw.TryWriteUnsigned(4, uint32(fillBits))
	bw.TryWriteUnsigned(4, uint32(lineBits))
	return fillBits, lineBits
}

// emitMorphShapeStylesBits is emitShapeStylesBits for a morph shape's
// fixed style table; morph shapes are always alpha-capable and always
// support extended list lengths (they only exist from DefineMorphShape
// onward, itself a post-Shape2 concept).
func emitMorphShapeStylesBits(bw *bitio.Writer, styles swftree.MorphShapeStyles, hasLineStyle2 bool) (fillBits, lineBits uint) {
	emitListLength(bw, len(styles.FillStyles), true)
	for _, fs := range styles.FillStyles {
		emitMorphFillStyle(bw, fs)
	}

	emitListLength(bw, len(styles.LineStyles), true)
	for _, ls := range styles.LineStyles {
		if hasLineStyle2 {
			emitMorphLineStyle2(bw, ls)
		} else {
			emitMorphLineStyle1(bw, ls)
		}
	}

	fillBits = bitio.U32BitCount(uint32(len(styles.FillStyles)))
	lineBits = bitio.U32BitCount(uint32(len(styles.LineStyles)))
	bw.TryWriteUnsigned(4, uint32(fillBits))
	bw.TryWriteUnsigned(4, uint32(lineBits))
	return fillBits, lineBits
}
