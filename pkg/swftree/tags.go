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

// Tag is implemented by every record that can appear in a Movie's or
// DefineSprite's tag list. The concrete type selects the wire tag code
// and, for versioned tags, the minimum record form (see pkg/swf/tag.go).
type Tag interface{ isTag() }

// CsmTableHint selects the stroke-weight hint DefineFontAlignZones uses.
type CsmTableHint uint8

// CSM table hints.
const (
	CsmTableHintThin CsmTableHint = iota
	CsmTableHintMedium
	CsmTableHintThick
)

// DefineFontAlignZones attaches CSM pixel-snapping zones to a font
// already declared by a DefineFont2/3 tag.
type DefineFontAlignZones struct {
	FontID       uint16
	CsmTableHint CsmTableHint
	Zones        []FontAlignZone // one entry per glyph in the target font.
}

// DefineFont declares a font's glyph outlines and, for DefineFont2/3,
// its metrics; the encoder derives the wire generation (1/2/3) from
// which optional fields are populated, the same inference style used
// for shape and place-object versions elsewhere in this package.
type DefineFont struct {
	ID   uint16
	Font Font
}

// DefineMorphShape declares a two-keyframe shape tweened by the player.
type DefineMorphShape struct {
	ID                                    uint16
	Bounds, MorphBounds                   Rect
	EdgeBounds, MorphEdgeBounds           *Rect
	HasScalingStrokes, HasNonScalingStrokes bool
	Shape                                 MorphShape
}

// SceneEntry names one scene at a frame offset.
type SceneEntry struct {
	Offset uint32
	Name   string
}

// FrameLabel names a single frame.
type FrameLabel struct {
	Frame uint32
	Name  string
}

// DefineSceneAndFrameLabelData declares scene and frame-label metadata
// for a movie using named-anchor navigation.
type DefineSceneAndFrameLabelData struct {
	Scenes      []SceneEntry
	FrameLabels []FrameLabel
}

// DefineShape declares a single-keyframe vector shape character.
type DefineShape struct {
	ID                                      uint16
	Bounds                                  Rect
	EdgeBounds                              *Rect
	HasScalingStrokes, HasNonScalingStrokes bool
	HasFillWinding                          bool
	Shape                                   Shape
}

// DefineButton declares a four-state button character. TrackAsMenu, any
// ButtonRecord using a color transform, filters, or a non-normal blend
// mode, more than one ButtonCondAction, or an action keyed to a key
// press forces the Button2 wire form (code 34); otherwise the simple
// form (code 7) is used, per §8's minimum-version law. The simple form
// writes a single action's bytes without its condition mask.
type DefineButton struct {
	ID              uint16
	TrackAsMenu     bool
	Records         []ButtonRecord
	Actions         []ButtonCondAction
}

// DefineSound declares a sound character from an already-encoded sample
// stream; the sample payload is opaque to this library.
type DefineSound struct {
	ID             uint16
	Format         AudioCodingFormat
	Rate           SoundRate
	Is16Bit        bool
	IsStereo       bool
	SampleCount    uint32
	Data           []byte
}

// StartSound triggers or stops a previously defined sound.
type StartSound struct {
	SoundID uint16
	Info    SoundInfo
}

// DefineText declares a static text character: a list of glyph runs
// positioned and colored against a font declared elsewhere. The
// encoder emits DefineText2 (code 33) the moment any record's color
// carries a non-opaque alpha, and DefineText (code 11) otherwise.
type DefineText struct {
	ID      uint16
	Bounds  Rect
	Matrix  Matrix
	Records []TextRecord
}

// DefineFontInfo attaches device-font metadata (name, style bits,
// character codes) to a font declared by a DefineFont tag, for players
// falling back to a locally installed font. DefineFontInfo2 (code 62)
// adds a language hint over the legacy DefineFontInfo (code 13); the
// encoder selects it whenever Language or SmallText is set.
type DefineFontInfo struct {
	FontID    uint16
	FontName  string
	SmallText bool
	ShiftJIS  bool
	Ansi      bool
	Italic    bool
	Bold      bool
	WideCodes bool
	Language  FontLanguage
	CodeTable []uint16
}

// DoAbc attaches a compiled ActionScript 3 bytecode block to the
// current frame. An empty Name with zero Flags selects the legacy
// DoABCDefine wire form (code 72, bare bytecode with no header); any
// other value selects DoABC (code 82, Flags + Name + bytecode).
type DoAbc struct {
	Flags uint32
	Name  string
	Data  []byte
}

// DefineSprite declares a nested timeline (a movie clip character).
type DefineSprite struct {
	ID         uint16
	FrameCount uint16
	Tags       []Tag
}

// DoAction attaches opaque ActionScript bytecode to the current frame.
type DoAction struct {
	Actions []byte
}

// FileAttributes declares movie-wide capability flags; SWF8+ players
// require it as the first tag when any of these bits are meaningful.
type FileAttributes struct {
	UseNetwork           bool
	UseRelativeUrls      bool
	NoCrossDomainCaching bool
	UseAs3               bool
	HasMetadata          bool
	UseGpu               bool
	UseDirectBlit        bool
}

// Metadata carries an XMP metadata packet as a plain string.
type Metadata struct {
	Metadata string
}

// PlaceObject places, moves, or updates a character instance on the
// display list. The encoder derives whether the wire form must be
// PlaceObject1, PlaceObject2, or PlaceObject3 from which fields are
// populated (see pkg/swf/display.go's version-selection predicate).
type PlaceObject struct {
	IsUpdate        bool
	Depth           uint16
	CharacterID     *uint16
	Matrix          *Matrix
	ColorTransform  *ColorTransformWithAlpha
	Ratio           *uint16
	Name            *string
	ClassName       *string
	ClipDepth       *uint16
	ClipActions     []ClipAction
	Filters         []Filter
	BlendMode       *BlendMode
	BitmapCache     *bool
	Visible         *bool
	BackgroundColor *StraightSRgba8
}

// RemoveObject removes a character instance from the display list.
// CharacterID non-nil selects the legacy RemoveObject1 wire form
// (id+depth); nil selects RemoveObject2 (depth only).
type RemoveObject struct {
	CharacterID *uint16
	Depth       uint16
}

// SetBackgroundColor sets the stage's background color.
type SetBackgroundColor struct {
	Color SRgb8
}

// ShowFrame advances the player to the next frame; it carries no data.
type ShowFrame struct{}

// RawTag passes an already-encoded tag body through unchanged, used for
// tag kinds this library does not model structurally (e.g. the embedded
// image formats behind DefineBitsJPEG4 — see DESIGN.md).
type RawTag struct {
	Code uint16
	Data []byte
}

func (DefineFontAlignZones) isTag()         {}
func (DefineFont) isTag()                   {}
func (DefineMorphShape) isTag()             {}
func (DefineSceneAndFrameLabelData) isTag() {}
func (DefineShape) isTag()                  {}
func (DefineButton) isTag()                 {}
func (DefineSound) isTag()                  {}
func (StartSound) isTag()                   {}
func (DefineText) isTag()                   {}
func (DefineFontInfo) isTag()               {}
func (DoAbc) isTag()                        {}
func (DefineSprite) isTag()                 {}
func (DoAction) isTag()                     {}
func (FileAttributes) isTag()               {}
func (Metadata) isTag()                     {}
func (PlaceObject) isTag()                  {}
func (RemoveObject) isTag()                 {}
func (SetBackgroundColor) isTag()           {}
func (ShowFrame) isTag()                    {}
func (RawTag) isTag()                       {}
