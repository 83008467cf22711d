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

package swftree

// Glyph is one outline in a font's glyph table, paired with the advance
// width the text engine should use when laying it out.
type Glyph struct {
	Shape         Shape
	AdvanceWidth  int16
}

// KerningRecord adjusts the advance between a specific pair of codes.
type KerningRecord struct {
	Left, Right uint16 // character codes, widths per FontLayout.
	Adjustment  int16
}

// FontLayout carries the metrics DefineFont2/3 emit alongside the glyph
// table: ascent/descent/leading plus per-glyph bounds and kerning pairs.
type FontLayout struct {
	Ascent, Descent, Leading int16
	Bounds                   []Rect
	Kerning                  []KerningRecord
}

// FontLanguage selects the DefineFont3 CSM language hint.
type FontLanguage uint8

// Font languages.
const (
	FontLanguageNone FontLanguage = iota
	FontLanguageLatin
	FontLanguageJapanese
	FontLanguageKorean
	FontLanguageSimplifiedChinese
	FontLanguageTraditionalChinese
)

// Font is a glyph table plus optional layout metrics and code mapping.
// Name/Bold/Italic/Language are absent (zero value) for a legacy
// DefineFont1, which carries no name or style bits.
type Font struct {
	Name      string
	Bold      bool
	Italic    bool
	Language  FontLanguage
	SmallText bool // DefineFont3-only EM-square-at-20px hint.
	Glyphs    []Glyph
	CodeTable []uint16 // one entry per Glyphs[i], empty for DefineFont1.
	Layout    *FontLayout
}

// FontAlignZone is one zoning box used by DefineFontAlignZones to snap
// glyph edges to the pixel grid.
type FontAlignZone struct {
	X, XHeight, Y, YHeight float32
	HasX, HasY             bool
}

// GlyphEntry places one glyph within a TextRecord: the index into the
// record's font's glyph table, and the advance to the next glyph.
type GlyphEntry struct {
	Index   uint32
	Advance int32
}

// TextRecord is one run of glyphs sharing a font, size, color, and
// starting offset within a DefineText/DefineText2 tag. FontID/FontSize
// are nil when the run reuses the previous record's font selection;
// Color is nil when it reuses the previous record's color.
type TextRecord struct {
	FontID      *uint16
	FontSize    *uint16
	Color       *StraightSRgba8
	OffsetX     int16
	OffsetY     int16
	Entries     []GlyphEntry
}
