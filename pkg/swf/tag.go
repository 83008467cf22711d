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

// Tag codes for every tag kind this package emits. Codes not listed
// here (embedded image/action-script-heavy formats the AST does not
// model) only ever reach the wire through swftree.RawTag.
const (
	tagCodeShowFrame                     = 1
	tagCodeDefineShape                   = 2
	tagCodePlaceObject                   = 4
	tagCodeRemoveObject                  = 5
	tagCodeDefineButton                  = 7
	tagCodeSetBackgroundColor            = 9
	tagCodeDefineFont                    = 10
	tagCodeDefineText                    = 11
	tagCodeDoAction                      = 12
	tagCodeDefineFontInfo                = 13
	tagCodeDefineSound                   = 14
	tagCodeStartSound                    = 15
	tagCodeDefineMorphShape              = 46
	tagCodePlaceObject2                  = 26
	tagCodeRemoveObject2                 = 28
	tagCodeDefineShape2                  = 22
	tagCodeDefineButton2                 = 34
	tagCodeDefineText2                   = 33
	tagCodeDefineShape3                  = 32
	tagCodeDefineSprite                  = 39
	tagCodeDefineFont2                   = 48
	tagCodeDefineFontInfo2               = 62
	tagCodeDoAbcDefine                   = 72
	tagCodePlaceObject3                  = 70
	tagCodeFileAttributes                = 69
	tagCodeDefineFontAlignZones          = 73
	tagCodeDefineFont3                   = 75
	tagCodeMetadata                      = 77
	tagCodeDoAbc                         = 82
	tagCodeDefineShape4                  = 83
	tagCodeDefineMorphShape2             = 84
	tagCodeDefineSceneAndFrameLabelData  = 86
)

// DoAbcVersion is the minimum DoAbc wire generation a block requires:
// DoABC (code 82, Flags + Name + bytecode) whenever a name or nonzero
// flags are present, the legacy DoABCDefine (code 72, bare bytecode)
// otherwise.
type DoAbcVersion uint8

// DoAbc versions.
const (
	DoAbcVersion1 DoAbcVersion = iota + 1
	DoAbcVersion2
)

// GetMinDoAbcVersion returns the lowest DoAbc generation that can carry
// t without loss.
func GetMinDoAbcVersion(t swftree.DoAbc) DoAbcVersion {
	if t.Name != "" || t.Flags != 0 {
		return DoAbcVersion2
	}
	return DoAbcVersion1
}

// EmitDoAbcBody writes a DoABCDefine (code 72) or DoABC (code 82) tag
// body per version: the legacy form is the bytecode alone, the named
// form prefixes it with a flags word and a C-string name.
func EmitDoAbcBody(w io.Writer, t swftree.DoAbc, version DoAbcVersion) error {
	if version == DoAbcVersion1 {
		_, err := w.Write(t.Data)
		return err
	}
	bw := bitio.NewWriter(w)
	bw.TryWriteUint32LE(t.Flags)
	bw.TryWriteCString(t.Name)
	bw.TryWrite(t.Data)
	return bw.TryError
}

func tagForcesLongForm(code uint16) bool {
	switch code {
	case 6, 19, 20, 21, 35, 36, 90:
		return true
	}
	return false
}

// emitTagHeader writes a tag's (code, length) header, choosing the short
// 2-byte form or the long 6-byte form per §4.6: a would-be all-zero
// first byte (an empty body on a tag code that is a multiple of 4)
// forces the long form too, so it can never be confused with the
// end-of-tags sentinel.
func emitTagHeader(w io.Writer, code uint16, length int) error {
	bw := bitio.NewWriter(w)
	useShort := length < 63 && !tagForcesLongForm(code) && (length > 0 || code&0b11 != 0)
	if useShort {
		bw.TryWriteUint16LE(code<<6 | uint16(length))
	} else {
		bw.TryWriteUint16LE(code<<6 | 63)
		bw.TryWriteUint32LE(uint32(length))
	}
	return bw.TryError
}

func shapeTagCode(v ShapeVersion) uint16 {
	switch v {
	case ShapeVersion1:
		return tagCodeDefineShape
	case ShapeVersion2:
		return tagCodeDefineShape2
	case ShapeVersion3:
		return tagCodeDefineShape3
	default:
		return tagCodeDefineShape4
	}
}

func morphShapeTagCode(v MorphShapeVersion) uint16 {
	if v >= MorphShapeVersion2 {
		return tagCodeDefineMorphShape2
	}
	return tagCodeDefineMorphShape
}

func fontTagCode(v DefineFontVersion) uint16 {
	switch v {
	case DefineFontVersion1:
		return tagCodeDefineFont
	case DefineFontVersion2:
		return tagCodeDefineFont2
	default:
		return tagCodeDefineFont3
	}
}

func buttonTagCode(v ButtonVersion) uint16 {
	if v >= ButtonVersion2 {
		return tagCodeDefineButton2
	}
	return tagCodeDefineButton
}

func textTagCode(v DefineTextVersion) uint16 {
	if v >= DefineTextVersion2 {
		return tagCodeDefineText2
	}
	return tagCodeDefineText
}

func fontInfoTagCode(v DefineFontInfoVersion) uint16 {
	if v >= DefineFontInfoVersion2 {
		return tagCodeDefineFontInfo2
	}
	return tagCodeDefineFontInfo
}

func doAbcTagCode(v DoAbcVersion) uint16 {
	if v >= DoAbcVersion2 {
		return tagCodeDoAbc
	}
	return tagCodeDoAbcDefine
}

func placeObjectTagCode(v PlaceObjectVersion) uint16 {
	switch v {
	case PlaceObjectVersion1:
		return tagCodePlaceObject
	case PlaceObjectVersion2:
		return tagCodePlaceObject2
	default:
		return tagCodePlaceObject3
	}
}

// emitTagBody writes tag's body to w and returns the resolved wire tag
// code (the minimum version the body's contents require).
func emitTagBody(w io.Writer, tag swftree.Tag, swfVersion uint8) (uint16, error) {
	switch t := tag.(type) {
	case swftree.ShowFrame:
		return tagCodeShowFrame, nil

	case swftree.SetBackgroundColor:
		return tagCodeSetBackgroundColor, EmitSRgb8(w, t.Color)

	case swftree.DoAction:
		_, err := w.Write(t.Actions)
		return tagCodeDoAction, err

	case swftree.FileAttributes:
		bw := bitio.NewWriter(w)
		bw.TryWriteUnsigned(1, 0)
		bw.TryWriteBool(t.UseDirectBlit)
		bw.TryWriteBool(t.UseGpu)
		bw.TryWriteBool(t.HasMetadata)
		bw.TryWriteBool(t.UseAs3)
		bw.TryWriteUnsigned(1, 0)
		bw.TryWriteBool(t.UseRelativeUrls)
		bw.TryWriteBool(t.NoCrossDomainCaching)
		bw.TryWriteBool(t.UseNetwork)
		bw.TryWriteUnsigned(24, 0)
		return tagCodeFileAttributes, bw.TryError

	case swftree.Metadata:
		return tagCodeMetadata, bitio.NewWriter(w).WriteCString(t.Metadata)

	case swftree.DefineSceneAndFrameLabelData:
		bw := bitio.NewWriter(w)
		bw.TryWriteULEB128(uint32(len(t.Scenes)))
		for _, s := range t.Scenes {
			bw.TryWriteULEB128(s.Offset)
			bw.TryWriteCString(s.Name)
		}
		bw.TryWriteULEB128(uint32(len(t.FrameLabels)))
		for _, f := range t.FrameLabels {
			bw.TryWriteULEB128(f.Frame)
			bw.TryWriteCString(f.Name)
		}
		return tagCodeDefineSceneAndFrameLabelData, bw.TryError

	case swftree.DefineShape:
		version := GetMinShapeVersion(t.Shape)
		bw := bitio.NewWriter(w)
		bw.TryWriteUint16LE(t.ID)
		bw.TrySet(EmitRect(bw, t.Bounds))
		if version >= ShapeVersion4 {
			if t.EdgeBounds != nil {
				bw.TrySet(EmitRect(bw, *t.EdgeBounds))
			} else {
				bw.TrySet(EmitRect(bw, t.Bounds))
			}
			bw.TryWriteUnsigned(5, 0)
			bw.TryWriteBool(t.HasFillWinding)
			bw.TryWriteBool(t.HasNonScalingStrokes)
			bw.TryWriteBool(t.HasScalingStrokes)
		}
		if bw.TryError != nil {
			return 0, bw.TryError
		}
		return shapeTagCode(version), EmitShape(w, t.Shape, version)

	case swftree.DefineMorphShape:
		version := GetMinMorphShapeVersion(t.Shape)
		if t.EdgeBounds != nil || t.MorphEdgeBounds != nil || t.HasScalingStrokes || t.HasNonScalingStrokes {
			version = MorphShapeVersion2
		}
		bw := bitio.NewWriter(w)
		bw.TryWriteUint16LE(t.ID)
		bw.TrySet(EmitRect(bw, t.Bounds))
		bw.TrySet(EmitRect(bw, t.MorphBounds))
		if version >= MorphShapeVersion2 {
			if t.EdgeBounds != nil {
				bw.TrySet(EmitRect(bw, *t.EdgeBounds))
			} else {
				bw.TrySet(EmitRect(bw, t.Bounds))
			}
			if t.MorphEdgeBounds != nil {
				bw.TrySet(EmitRect(bw, *t.MorphEdgeBounds))
			} else {
				bw.TrySet(EmitRect(bw, t.MorphBounds))
			}
			bw.TryWriteUnsigned(6, 0)
			bw.TryWriteBool(t.HasNonScalingStrokes)
			bw.TryWriteBool(t.HasScalingStrokes)
		}
		if bw.TryError != nil {
			return 0, bw.TryError
		}
		return morphShapeTagCode(version), EmitMorphShape(w, t.Shape, version)

	case swftree.DefineFont:
		version := GetMinFontVersion(t.Font)
		if version == DefineFontVersion1 {
			return fontTagCode(version), EmitDefineFontBody(w, t)
		}
		return fontTagCode(version), EmitDefineFontBody2Or3(w, t, version)

	case swftree.DefineFontAlignZones:
		return tagCodeDefineFontAlignZones, EmitDefineFontAlignZonesBody(w, t)

	case swftree.DefineButton:
		version := GetMinButtonVersion(t)
		return buttonTagCode(version), EmitDefineButtonBody(w, t, version)

	case swftree.DefineSound:
		return tagCodeDefineSound, EmitDefineSoundBody(w, t)

	case swftree.StartSound:
		return tagCodeStartSound, EmitStartSoundBody(w, t)

	case swftree.DefineText:
		version := GetMinTextVersion(t.Records)
		return textTagCode(version), EmitDefineTextBody(w, t, version)

	case swftree.DefineFontInfo:
		version := GetMinFontInfoVersion(t)
		return fontInfoTagCode(version), EmitDefineFontInfoBody(w, t, version)

	case swftree.DoAbc:
		version := GetMinDoAbcVersion(t)
		return doAbcTagCode(version), EmitDoAbcBody(w, t, version)

	case swftree.PlaceObject:
		version := GetMinPlaceObjectVersion(t)
		return placeObjectTagCode(version), EmitPlaceObject(w, t, swfVersion)

	case swftree.RemoveObject:
		bw := bitio.NewWriter(w)
		if t.CharacterID != nil {
			bw.TryWriteUint16LE(*t.CharacterID)
			bw.TryWriteUint16LE(t.Depth)
			return tagCodeRemoveObject, bw.TryError
		}
		bw.TryWriteUint16LE(t.Depth)
		return tagCodeRemoveObject2, bw.TryError

	case swftree.DefineSprite:
		bw := bitio.NewWriter(w)
		bw.TryWriteUint16LE(t.ID)
		bw.TryWriteUint16LE(t.FrameCount)
		if bw.TryError != nil {
			return 0, bw.TryError
		}
		return tagCodeDefineSprite, EmitTagString(w, t.Tags, swfVersion)

	case swftree.RawTag:
		_, err := w.Write(t.Data)
		return t.Code, err

	default:
		invariant(false, "unknown tag %T", tag)
		return 0, nil
	}
}

// EmitTag frames a single tag: its body is buffered to learn its
// length, then the header (short or long form) and the body are
// written to w.
func EmitTag(w io.Writer, tag swftree.Tag, swfVersion uint8) error {
	var body bytes.Buffer
	code, err := emitTagBody(&body, tag, swfVersion)
	if err != nil {
		return wrapIO(err, "emit tag body")
	}
	invariant(body.Len() <= 0xffffffff, "tag body larger than 4 GiB")
	if err := emitTagHeader(w, code, body.Len()); err != nil {
		return wrapIO(err, "emit tag header")
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return wrapIO(err, "write tag body")
	}
	return nil
}

// EmitTagString frames every tag in tags in order, then writes the
// two-byte end-of-tags sentinel.
func EmitTagString(w io.Writer, tags []swftree.Tag, swfVersion uint8) error {
	for _, tag := range tags {
		if err := EmitTag(w, tag, swfVersion); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{0, 0})
	return wrapIO(err, "write end-of-tags sentinel")
}
