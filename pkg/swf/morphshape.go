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
	"io"

	"github.com/open-flash/swf-emitter-go/pkg/swf/bitio"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

// MorphShapeVersion is the minimum DefineMorphShape generation a
// MorphShape's contents require.
type MorphShapeVersion uint8

// Morph shape versions.
const (
	MorphShapeVersion1 MorphShapeVersion = iota + 1
	MorphShapeVersion2
)

func morphLineStyleNeedsV2(ls swftree.MorphLineStyle) bool {
	if ls.PixelHinting || ls.NoHScale || ls.NoVScale || ls.NoClose ||
		ls.Join != swftree.JoinStyleRound || ls.StartCap != swftree.CapStyleRound || ls.EndCap != swftree.CapStyleRound {
		return true
	}
	_, solid := ls.Fill.(swftree.MorphFillStyleSolid)
	return !solid
}

// GetMinMorphShapeVersion returns the lowest DefineMorphShape generation
// that can represent ms's style table without loss: any LineStyle2
// feature or non-solid line fill forces MorphShape2. The tag-level fields
// (HasScalingStrokes/HasNonScalingStrokes/edge bounds) are not part of
// ms; the DefineMorphShape tag encoder raises the version to MorphShape2
// itself when any of them is set.
func GetMinMorphShapeVersion(ms swftree.MorphShape) MorphShapeVersion {
	for _, ls := range ms.InitialStyles.LineStyles {
		if morphLineStyleNeedsV2(ls) {
			return MorphShapeVersion2
		}
	}
	return MorphShapeVersion1
}

// EmitMorphShape packs a MorphShape into the combined start/end edge
// block DefineMorphShape's Shape field expects: a little-endian u32
// byte offset to the end-edge block, the style tables plus start-edge
// record string, then a duplicated fill_bits/line_bits width pair
// followed by the end-edge record string. The duplicated width nibbles
// are not load-bearing (both blocks share one style table) but are
// preserved because at least one known encoder (and therefore at least
// one decoder relying on its output) emits them; see DESIGN.md.
func EmitMorphShape(w io.Writer, ms swftree.MorphShape, version MorphShapeVersion) error {
	var combined bytes.Buffer

	startWriter := bitio.NewWriter(&combined)
	fillBits, lineBits := emitMorphShapeStylesBits(startWriter, ms.InitialStyles, version >= MorphShapeVersion2)
	emitMorphShapeStartRecordStringBits(startWriter, ms.Records, fillBits, lineBits)
	startWriter.TryAlign()
	if startWriter.TryError != nil {
		return startWriter.TryError
	}
	startSize := combined.Len()

	endWriter := bitio.NewWriter(&combined)
	endWriter.TryWriteUnsigned(4, uint32(fillBits))
	endWriter.TryWriteUnsigned(4, uint32(lineBits))
	emitMorphShapeEndRecordStringBits(endWriter, ms.Records)
	endWriter.TryAlign()
	if endWriter.TryError != nil {
		return endWriter.TryError
	}

	bw := bitio.NewWriter(w)
	bw.TryWriteUint32LE(uint32(startSize))
	bw.TryWrite(combined.Bytes())
	return bw.TryError
}

func emitMorphShapeStartRecordStringBits(bw *bitio.Writer, records []swftree.MorphShapeRecord, fillBits, lineBits uint) {
	for _, rec := range records {
		switch r := rec.(type) {
		case swftree.MorphEdge:
			bw.TryWriteBool(true)
			emitEdgeBits(bw, swftree.Edge{Delta: r.Delta, ControlDelta: r.ControlDelta})
		case swftree.MorphStyleChange:
			bw.TryWriteBool(false)
			emitMorphStyleChangeStartBits(bw, r, fillBits, lineBits)
		default:
			invariant(false, "unknown morph shape record %T", rec)
		}
	}
	bw.TryWriteUnsigned(6, 0)
}

func emitMorphStyleChangeStartBits(bw *bitio.Writer, sc swftree.MorphStyleChange, fillBits, lineBits uint) {
	hasLineStyle := sc.LineStyle != nil
	hasFillStyle1 := sc.RightFill != nil
	hasFillStyle0 := sc.LeftFill != nil
	hasMoveTo := sc.MoveTo != nil

	bw.TryWriteBool(false) // new_styles: illegal in a morph record stream.
	bw.TryWriteBool(hasLineStyle)
	bw.TryWriteBool(hasFillStyle1)
	bw.TryWriteBool(hasFillStyle0)
	bw.TryWriteBool(hasMoveTo)
	invariant(hasMoveTo || hasFillStyle0 || hasFillStyle1 || hasLineStyle,
		"morph style-change record must set at least one flag")

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
}

// emitMorphShapeEndRecordStringBits writes only the geometry the end
// keyframe needs: edges (via their morph delta) and bare move-to
// records. Fill/line style indices never change between keyframes, so a
// style-change record with no end-of-morph position is dropped entirely,
// matching emit_morph_shape_end_record_string_bits.
func emitMorphShapeEndRecordStringBits(bw *bitio.Writer, records []swftree.MorphShapeRecord) {
	for _, rec := range records {
		switch r := rec.(type) {
		case swftree.MorphEdge:
			bw.TryWriteBool(true)
			emitEdgeBits(bw, swftree.Edge{Delta: r.MorphDelta, ControlDelta: r.MorphControlDelta})
		case swftree.MorphStyleChange:
			if r.MorphMoveTo == nil {
				continue
			}
			bw.TryWriteBool(false)
			bw.TryWriteBool(false) // new_styles
			bw.TryWriteBool(false) // line_style
			bw.TryWriteBool(false) // fill_style1
			bw.TryWriteBool(false) // fill_style0
			bw.TryWriteBool(true)  // move_to
			bits := bitio.I32MinBitCount(r.MorphMoveTo.X, r.MorphMoveTo.Y)
			bw.TryWriteUnsigned(5, uint32(bits))
			bw.TryWriteSigned(bits, r.MorphMoveTo.X)
			bw.TryWriteSigned(bits, r.MorphMoveTo.Y)
		default:
			invariant(false, "unknown morph shape record %T", rec)
		}
	}
	bw.TryWriteUnsigned(6, 0)
}
