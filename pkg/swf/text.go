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

// DefineFontVersion is the minimum DefineFont wire generation a Font
// requires. The legacy DefineFont (code 10) carries only unstyled glyph
// outlines; any name, style bit, language hint, or layout metrics needs
// DefineFont2 (code 48) or, when the small-EM-square hint is set,
// DefineFont3 (code 75) — see DESIGN.md for why SmallText is this
// package's chosen discriminator between the two, absent a fuller
// reference for that boundary.
type DefineFontVersion uint8

// DefineFont versions.
const (
	DefineFontVersion1 DefineFontVersion = iota + 1
	DefineFontVersion2
	DefineFontVersion3
)

// GetMinFontVersion returns the lowest DefineFont generation that can
// carry f without loss.
func GetMinFontVersion(f swftree.Font) DefineFontVersion {
	if f.SmallText {
		return DefineFontVersion3
	}
	if f.Name != "" || f.Bold || f.Italic || f.Language != swftree.FontLanguageNone || f.Layout != nil {
		return DefineFontVersion2
	}
	return DefineFontVersion1
}

// emitGlyphShapeBits writes a glyph's outline as a bare record stream:
// DefineFont glyphs have an implicit one-entry fill-style table (every
// edge references fill 1, the "inside" of the glyph) and no line
// styles, so fill_bits is fixed at 1 and line_bits at 0.
func emitGlyphShapeBits(bw *bitio.Writer, shape swftree.Shape) {
	emitShapeRecordStringBits(bw, shape.Records, 1, 0, ShapeVersion1)
}

// EmitDefineFontBody writes a DefineFont (code 10) tag body: an offset
// table (one u16 per glyph, relative to the start of the offset table)
// followed by each glyph's bare shape record stream.
func EmitDefineFontBody(w io.Writer, t swftree.DefineFont) error {
	glyphBytes := make([][]byte, len(t.Font.Glyphs))
	for i, g := range t.Font.Glyphs {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		emitGlyphShapeBits(bw, g.Shape)
		bw.TryAlign()
		if bw.TryError != nil {
			return bw.TryError
		}
		glyphBytes[i] = buf.Bytes()
	}

	offsetTableSize := 2 * len(glyphBytes)
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.ID)
	offset := offsetTableSize
	for _, g := range glyphBytes {
		bw.TryWriteUint16LE(uint16(offset))
		offset += len(g)
	}
	for _, g := range glyphBytes {
		bw.TryWrite(g)
	}
	return bw.TryError
}

func fontLanguageCode(l swftree.FontLanguage) byte { return byte(l) }

// EmitDefineFontBody2Or3 writes a DefineFont2 (code 48) or DefineFont3
// (code 75) tag body: style flags, language, a Pascal-length name, the
// glyph count, an offset table (widened to u32 once the glyph table
// would overflow a u16 offset), the glyph shapes, a matching code table,
// and optional layout metrics.
func EmitDefineFontBody2Or3(w io.Writer, t swftree.DefineFont, version DefineFontVersion) error {
	glyphBytes := make([][]byte, len(t.Font.Glyphs))
	for i, g := range t.Font.Glyphs {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		emitGlyphShapeBits(bw, g.Shape)
		bw.TryAlign()
		if bw.TryError != nil {
			return bw.TryError
		}
		glyphBytes[i] = buf.Bytes()
	}
	invariant(len(t.Font.CodeTable) == len(glyphBytes), "font code table length must match the glyph count")

	wideOffsets := len(glyphBytes) > 0
	var totalGlyphBytes int
	for _, g := range glyphBytes {
		totalGlyphBytes += len(g)
	}
	if totalGlyphBytes+2*(len(glyphBytes)+1) > 0xffff {
		wideOffsets = true
	} else {
		wideOffsets = false
	}

	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.ID)
	bw.TryWriteBool(t.Font.Layout != nil)
	bw.TryWriteBool(false) // reserved (shift-JIS), not modeled.
	bw.TryWriteBool(t.Font.SmallText)
	bw.TryWriteBool(false) // reserved (ANSI), not modeled.
	bw.TryWriteBool(wideOffsets)
	bw.TryWriteBool(true) // wide codes: the code table below is always u16.
	bw.TryWriteBool(t.Font.Italic)
	bw.TryWriteBool(t.Font.Bold)
	bw.TryWriteByte(fontLanguageCode(t.Font.Language))
	invariant(len(t.Font.Name) <= 0xff, "font name longer than 255 bytes")
	bw.TryWriteByte(byte(len(t.Font.Name)))
	bw.TryWrite([]byte(t.Font.Name))
	bw.TryWriteUint16LE(uint16(len(glyphBytes)))
	if bw.TryError != nil {
		return bw.TryError
	}

	offsetEntrySize := 2
	if wideOffsets {
		offsetEntrySize = 4
	}
	offsetTableSize := offsetEntrySize * (len(glyphBytes) + 1)
	offset := offsetTableSize
	for _, g := range glyphBytes {
		if wideOffsets {
			bw.TryWriteUint32LE(uint32(offset))
		} else {
			bw.TryWriteUint16LE(uint16(offset))
		}
		offset += len(g)
	}
	if wideOffsets {
		bw.TryWriteUint32LE(uint32(offset))
	} else {
		bw.TryWriteUint16LE(uint16(offset))
	}
	for _, g := range glyphBytes {
		bw.TryWrite(g)
	}
	for i := range glyphBytes {
		bw.TryWriteUint16LE(t.Font.CodeTable[i])
	}

	if layout := t.Font.Layout; layout != nil {
		bw.TryWriteInt16LE(layout.Ascent)
		bw.TryWriteInt16LE(layout.Descent)
		bw.TryWriteInt16LE(layout.Leading)
		for _, g := range t.Font.Glyphs {
			bw.TryWriteInt16LE(g.AdvanceWidth)
		}
		invariant(len(layout.Bounds) == len(glyphBytes), "font layout bounds length must match the glyph count")
		for _, r := range layout.Bounds {
			bw.TrySet(EmitRect(bw, r))
		}
		bw.TryWriteUint16LE(uint16(len(layout.Kerning)))
		for _, k := range layout.Kerning {
			if version >= DefineFontVersion2 {
				bw.TryWriteUint16LE(k.Left)
				bw.TryWriteUint16LE(k.Right)
			} else {
				bw.TryWriteByte(byte(k.Left))
				bw.TryWriteByte(byte(k.Right))
			}
			bw.TryWriteInt16LE(k.Adjustment)
		}
	}

	return bw.TryError
}

// DefineTextVersion is the minimum DefineText wire generation a set of
// TextRecords requires: DefineText2 (code 33) the moment any record's
// color carries a non-opaque alpha, DefineText (code 11) otherwise.
type DefineTextVersion uint8

// DefineText versions.
const (
	DefineTextVersion1 DefineTextVersion = iota + 1
	DefineTextVersion2
)

// GetMinTextVersion returns the lowest DefineText generation that can
// carry records without loss.
func GetMinTextVersion(records []swftree.TextRecord) DefineTextVersion {
	for _, r := range records {
		if r.Color != nil && r.Color.A != 0xff {
			return DefineTextVersion2
		}
	}
	return DefineTextVersion1
}

// emitTextRecord writes one TextRecord: a flags byte (bit 7 always set,
// marking this as a text record rather than the zero terminator),
// optional font/color/offset fields per the flags, a glyph count, then
// the glyph entries packed at the shared indexBits/advanceBits width.
func emitTextRecord(bw *bitio.Writer, r swftree.TextRecord, indexBits, advanceBits uint, withAlpha bool) {
	hasFont := r.FontID != nil && r.FontSize != nil
	hasColor := r.Color != nil
	hasOffsetX := r.OffsetX != 0
	hasOffsetY := r.OffsetY != 0

	bw.TryWriteBool(true) // TextRecordType: always a glyph record, never the raw style-change-only form.
	bw.TryWriteUnsigned(3, 0) // reserved.
	bw.TryWriteBool(hasFont)
	bw.TryWriteBool(hasColor)
	bw.TryWriteBool(hasOffsetY)
	bw.TryWriteBool(hasOffsetX)

	if hasFont {
		bw.TryWriteUint16LE(*r.FontID)
	}
	if hasColor {
		if withAlpha {
			bw.TryWrite([]byte{r.Color.R, r.Color.G, r.Color.B, r.Color.A})
		} else {
			invariant(r.Color.A == 0xff, "a DefineText1 record's color must be fully opaque")
			bw.TryWrite([]byte{r.Color.R, r.Color.G, r.Color.B})
		}
	}
	if hasOffsetX {
		bw.TryWriteInt16LE(r.OffsetX)
	}
	if hasOffsetY {
		bw.TryWriteInt16LE(r.OffsetY)
	}
	if hasFont {
		bw.TryWriteUint16LE(*r.FontSize)
	}

	invariant(len(r.Entries) <= 0xff, "a text record cannot carry more than 255 glyph entries")
	bw.TryWriteByte(byte(len(r.Entries)))
	for _, e := range r.Entries {
		bw.TryWriteUnsigned(indexBits, e.Index)
		bw.TryWriteSigned(advanceBits, e.Advance)
	}
	bw.TryAlign()
}

// EmitTextRecordString writes records at a shared glyph-index/advance
// bit width, terminated by the single zero byte a text record's flags
// byte can never produce (bit 7 is always set on a real record).
func EmitTextRecordString(w io.Writer, records []swftree.TextRecord, indexBits, advanceBits uint, withAlpha bool) error {
	bw := bitio.NewWriter(w)
	for _, r := range records {
		emitTextRecord(bw, r, indexBits, advanceBits, withAlpha)
	}
	bw.TryWriteByte(0)
	return bw.TryError
}

// EmitDefineTextBody writes a DefineText (code 11) or DefineText2 (code
// 33) tag body: id, bounds, matrix, a shared glyph-index/advance bit
// width computed across every record's entries, then the record string.
func EmitDefineTextBody(w io.Writer, t swftree.DefineText, version DefineTextVersion) error {
	var indices []uint32
	var advances []int32
	for _, r := range t.Records {
		for _, e := range r.Entries {
			indices = append(indices, e.Index)
			advances = append(advances, e.Advance)
		}
	}
	indexBits := bitio.U32MinBitCount(indices...)
	advanceBits := bitio.I32MinBitCount(advances...)

	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.ID)
	bw.TrySet(EmitRect(bw, t.Bounds))
	bw.TrySet(EmitMatrix(bw, t.Matrix))
	bw.TryWriteByte(byte(indexBits))
	bw.TryWriteByte(byte(advanceBits))
	if bw.TryError != nil {
		return bw.TryError
	}
	return EmitTextRecordString(w, t.Records, indexBits, advanceBits, version >= DefineTextVersion2)
}

// DefineFontInfoVersion is the minimum DefineFontInfo wire generation a
// record requires: DefineFontInfo2 (code 62) whenever a language hint
// or the small-text flag is set, DefineFontInfo (code 13) otherwise.
type DefineFontInfoVersion uint8

// DefineFontInfo versions.
const (
	DefineFontInfoVersion1 DefineFontInfoVersion = iota + 1
	DefineFontInfoVersion2
)

// GetMinFontInfoVersion returns the lowest DefineFontInfo generation
// that can carry t without loss.
func GetMinFontInfoVersion(t swftree.DefineFontInfo) DefineFontInfoVersion {
	if t.Language != swftree.FontLanguageNone || t.SmallText {
		return DefineFontInfoVersion2
	}
	return DefineFontInfoVersion1
}

// EmitDefineFontInfoBody writes a DefineFontInfo (code 13) or
// DefineFontInfo2 (code 62) tag body: the target font id, a
// Pascal-length device font name, a style-flags byte, an optional
// language byte (version 2 only), then one character code per glyph
// (u16 when WideCodes, u8 otherwise).
func EmitDefineFontInfoBody(w io.Writer, t swftree.DefineFontInfo, version DefineFontInfoVersion) error {
	invariant(len(t.FontName) <= 0xff, "font name longer than 255 bytes")
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.FontID)
	bw.TryWriteByte(byte(len(t.FontName)))
	bw.TryWrite([]byte(t.FontName))
	bw.TryWriteUnsigned(2, 0) // reserved.
	bw.TryWriteBool(t.SmallText)
	bw.TryWriteBool(t.ShiftJIS)
	bw.TryWriteBool(t.Ansi)
	bw.TryWriteBool(t.Italic)
	bw.TryWriteBool(t.Bold)
	bw.TryWriteBool(t.WideCodes)
	if version >= DefineFontInfoVersion2 {
		bw.TryWriteByte(fontLanguageCode(t.Language))
	}
	for _, code := range t.CodeTable {
		if t.WideCodes {
			bw.TryWriteUint16LE(code)
		} else {
			bw.TryWriteByte(byte(code))
		}
	}
	return bw.TryError
}

func csmTableHintCode(h swftree.CsmTableHint) uint32 { return uint32(h) }

// EmitDefineFontAlignZonesBody writes a DefineFontAlignZones tag body:
// the target font id, a CSM table hint, then one alignment zone per
// glyph of that font.
func EmitDefineFontAlignZonesBody(w io.Writer, t swftree.DefineFontAlignZones) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.FontID)
	bw.TryWriteUnsigned(2, csmTableHintCode(t.CsmTableHint))
	bw.TryWriteUnsigned(6, 0) // reserved.
	for _, z := range t.Zones {
		count := 0
		if z.HasX {
			count++
		}
		if z.HasY {
			count++
		}
		bw.TryWriteByte(byte(count))
		if z.HasX {
			bw.TryWriteFloat32LE(z.X)
			bw.TryWriteFloat32LE(z.XHeight)
		}
		if z.HasY {
			bw.TryWriteFloat32LE(z.Y)
			bw.TryWriteFloat32LE(z.YHeight)
		}
		bw.TryWriteUnsigned(6, 0) // reserved.
		bw.TryWriteBool(z.HasY)
		bw.TryWriteBool(z.HasX)
	}
	return bw.TryError
}
