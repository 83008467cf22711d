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

// Blend modes, filters, clip-action flag words, and the PlaceObject
// version-selection predicate, built from the public SWF file format
// field tables rather than adapted from an existing source file. See
// DESIGN.md for the bit-layout decisions this file makes on its own.

package swf

import (
	"bytes"
	"io"

	"github.com/open-flash/swf-emitter-go/pkg/swf/bitio"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func blendModeCode(bm swftree.BlendMode) byte {
	invariant(bm >= swftree.BlendModeNormal && bm <= swftree.BlendModeHardLight, "unknown blend mode %v", bm)
	return byte(bm)
}

// EmitFilter writes one bitmap filter: a 1-byte kind code followed by
// the filter's fixed-layout payload.
func EmitFilter(w io.Writer, f swftree.Filter) error {
	bw := bitio.NewWriter(w)
	switch v := f.(type) {
	case swftree.FilterDropShadow:
		bw.TryWriteByte(0)
		bw.TrySet(EmitStraightSRgba8(bw, v.Color))
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteInt32LE(int32(v.Angle))
		bw.TryWriteInt32LE(int32(v.Distance))
		bw.TryWriteInt16LE(int16(v.Strength))
		bw.TryWriteBool(v.InnerShadow)
		bw.TryWriteBool(v.Knockout)
		bw.TryWriteBool(v.CompositeSource)
		bw.TryWriteUnsigned(5, uint32(v.Passes))
	case swftree.FilterBlur:
		bw.TryWriteByte(1)
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteUnsigned(5, uint32(v.Passes))
		bw.TryWriteUnsigned(3, 0)
	case swftree.FilterGlow:
		bw.TryWriteByte(2)
		bw.TrySet(EmitStraightSRgba8(bw, v.Color))
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteInt16LE(int16(v.Strength))
		bw.TryWriteBool(v.InnerGlow)
		bw.TryWriteBool(v.Knockout)
		bw.TryWriteBool(v.CompositeSource)
		bw.TryWriteUnsigned(5, uint32(v.Passes))
	case swftree.FilterBevel:
		bw.TryWriteByte(3)
		bw.TrySet(EmitStraightSRgba8(bw, v.ShadowColor))
		bw.TrySet(EmitStraightSRgba8(bw, v.HighlightColor))
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteInt32LE(int32(v.Angle))
		bw.TryWriteInt32LE(int32(v.Distance))
		bw.TryWriteInt16LE(int16(v.Strength))
		bw.TryWriteBool(v.InnerShadow)
		bw.TryWriteBool(v.Knockout)
		bw.TryWriteBool(v.CompositeSource)
		bw.TryWriteBool(v.OnTop)
		bw.TryWriteUnsigned(4, uint32(v.Passes))
	case swftree.FilterGradientGlow:
		bw.TryWriteByte(4)
		emitGradientFilterRamp(bw, v.Colors, v.Ratios)
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteInt32LE(int32(v.Angle))
		bw.TryWriteInt32LE(int32(v.Distance))
		bw.TryWriteInt16LE(int16(v.Strength))
		bw.TryWriteBool(v.InnerShadow)
		bw.TryWriteBool(v.Knockout)
		bw.TryWriteBool(v.CompositeSource)
		bw.TryWriteBool(v.OnTop)
		bw.TryWriteUnsigned(4, uint32(v.Passes))
	case swftree.FilterGradientBevel:
		bw.TryWriteByte(7)
		emitGradientFilterRamp(bw, v.Colors, v.Ratios)
		bw.TryWriteInt32LE(int32(v.BlurX))
		bw.TryWriteInt32LE(int32(v.BlurY))
		bw.TryWriteInt32LE(int32(v.Angle))
		bw.TryWriteInt32LE(int32(v.Distance))
		bw.TryWriteInt16LE(int16(v.Strength))
		bw.TryWriteBool(v.InnerShadow)
		bw.TryWriteBool(v.Knockout)
		bw.TryWriteBool(v.CompositeSource)
		bw.TryWriteBool(v.OnTop)
		bw.TryWriteUnsigned(4, uint32(v.Passes))
	case swftree.FilterConvolution:
		bw.TryWriteByte(5)
		bw.TryWriteByte(v.MatrixX)
		bw.TryWriteByte(v.MatrixY)
		bw.TryWriteFloat32LE(v.Divisor)
		bw.TryWriteFloat32LE(v.Bias)
		invariant(len(v.Matrix) == int(v.MatrixX)*int(v.MatrixY), "convolution matrix size mismatch")
		for _, f := range v.Matrix {
			bw.TryWriteFloat32LE(f)
		}
		bw.TrySet(EmitStraightSRgba8(bw, v.DefaultColor))
		bw.TryWriteUnsigned(6, 0)
		bw.TryWriteBool(v.Clamp)
		bw.TryWriteBool(v.PreserveAlpha)
	case swftree.FilterColorMatrix:
		bw.TryWriteByte(6)
		for _, f := range v.Matrix {
			bw.TryWriteFloat32LE(f)
		}
	default:
		invariant(false, "unknown filter %T", f)
	}
	return bw.TryError
}

func emitGradientFilterRamp(bw *bitio.Writer, colors []swftree.StraightSRgba8, ratios []uint8) {
	invariant(len(colors) == len(ratios), "gradient filter color/ratio count mismatch")
	bw.TryWriteByte(byte(len(colors)))
	for _, c := range colors {
		bw.TrySet(EmitStraightSRgba8(bw, c))
	}
	for _, r := range ratios {
		bw.TryWriteByte(r)
	}
}

// EmitFilterList writes a PlaceObject3 filter list: a 1-byte count
// followed by each filter.
func EmitFilterList(w io.Writer, filters []swftree.Filter) error {
	invariant(len(filters) <= 0xff, "filter list has more than 255 entries (%d)", len(filters))
	if _, err := w.Write([]byte{byte(len(filters))}); err != nil {
		return err
	}
	for _, f := range filters {
		if err := EmitFilter(w, f); err != nil {
			return err
		}
	}
	return nil
}

func emitClipActionFlags(bw *bitio.Writer, f swftree.ClipEventFlags, wide bool) {
	bw.TryWriteBool(f.KeyUp)
	bw.TryWriteBool(f.KeyDown)
	bw.TryWriteBool(f.MouseUp)
	bw.TryWriteBool(f.MouseDown)
	bw.TryWriteBool(f.MouseMove)
	bw.TryWriteBool(f.Unload)
	bw.TryWriteBool(f.EnterFrame)
	bw.TryWriteBool(f.Load)
	bw.TryWriteBool(f.DragOver)
	bw.TryWriteBool(f.RollOut)
	bw.TryWriteBool(f.RollOver)
	bw.TryWriteBool(f.ReleaseOutside)
	bw.TryWriteBool(f.Release)
	bw.TryWriteBool(f.Press)
	bw.TryWriteBool(f.Initialize)
	bw.TryWriteBool(f.Data)
	if wide {
		bw.TryWriteBool(f.Construct)
		bw.TryWriteBool(f.KeyPress)
		bw.TryWriteBool(f.DragOut)
		bw.TryWriteUnsigned(13, 0) // reserved, pads the word to 32 bits.
	}
}

func emitClipActionFlagsZero(bw *bitio.Writer, wide bool) {
	if wide {
		bw.TryWriteUnsigned(32, 0)
	} else {
		bw.TryWriteUnsigned(16, 0)
	}
}

func clipActionsNeedWideFlags(actions []swftree.ClipAction) bool {
	for _, a := range actions {
		if a.Events.Construct || a.Events.KeyPress || a.Events.DragOut {
			return true
		}
	}
	return false
}

// EmitClipActionsString writes a PlaceObject2/3 ClipActions block: a
// reserved u16, one record per action (flags, byte length, optional key
// code, action bytes), then a terminating all-zero flags word. The flag
// word widens to 32 bits once the movie's SWF version reaches 6 or any
// action uses a SWF6+-only event, matching §4.9's versioning rule.
func EmitClipActionsString(w io.Writer, actions []swftree.ClipAction, swfVersion uint8) error {
	wide := swfVersion >= 6 || clipActionsNeedWideFlags(actions)
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(0) // reserved.
	for _, a := range actions {
		emitClipActionFlags(bw, a.Events, wide)

		var body bytes.Buffer
		if a.Events.KeyPress {
			invariant(a.KeyCode != nil, "a clip action with the KeyPress event needs a key code")
			body.WriteByte(*a.KeyCode)
		}
		body.Write(a.Actions)

		bw.TryWriteUint32LE(uint32(body.Len()))
		bw.TryWrite(body.Bytes())
	}
	emitClipActionFlagsZero(bw, wide)
	return bw.TryError
}

// PlaceObjectVersion is the minimum PlaceObject wire generation a
// PlaceObject record requires.
type PlaceObjectVersion uint8

// PlaceObject versions.
const (
	PlaceObjectVersion1 PlaceObjectVersion = iota + 1
	PlaceObjectVersion2
	PlaceObjectVersion3
)

// GetMinPlaceObjectVersion derives the minimum wire generation a
// PlaceObject record needs: PlaceObject3-only fields (filters, blend
// mode, cache hint, class name, background color, bitmap visibility)
// force version 3; a missing character id or matrix, an update, an
// alpha color transform, a name, a ratio, a clip depth or clip actions
// force at least version 2; otherwise version 1 suffices.
func GetMinPlaceObjectVersion(p swftree.PlaceObject) PlaceObjectVersion {
	if p.Filters != nil || p.BlendMode != nil || p.BitmapCache != nil ||
		p.ClassName != nil || p.BackgroundColor != nil || p.Visible != nil {
		return PlaceObjectVersion3
	}
	hasAlphaColorTransform := p.ColorTransform != nil &&
		(p.ColorTransform.AlphaMult != swftree.Sfixed8P8One || p.ColorTransform.AlphaAdd != 0)
	if p.CharacterID == nil || p.Matrix == nil || hasAlphaColorTransform ||
		p.IsUpdate || p.Name != nil || p.Ratio != nil || p.ClipDepth != nil || p.ClipActions != nil {
		return PlaceObjectVersion2
	}
	return PlaceObjectVersion1
}

// EmitPlaceObject writes a PlaceObject record at the version returned by
// GetMinPlaceObjectVersion; swfVersion only selects the clip-action
// flag word width.
func EmitPlaceObject(w io.Writer, p swftree.PlaceObject, swfVersion uint8) error {
	version := GetMinPlaceObjectVersion(p)
	switch version {
	case PlaceObjectVersion1:
		return emitPlaceObject1(w, p)
	default:
		return emitPlaceObject2Or3(w, p, version, swfVersion)
	}
}

func emitPlaceObject1(w io.Writer, p swftree.PlaceObject) error {
	invariant(p.CharacterID != nil, "PlaceObject1 requires a character id")
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(*p.CharacterID)
	bw.TryWriteUint16LE(p.Depth)
	if p.Matrix != nil {
		bw.TrySet(EmitMatrix(bw, *p.Matrix))
	} else {
		bw.TrySet(EmitMatrix(bw, identityMatrix()))
	}
	if p.ColorTransform != nil {
		bw.TrySet(EmitColorTransform(bw, swftree.ColorTransform{
			RedMult: p.ColorTransform.RedMult, GreenMult: p.ColorTransform.GreenMult, BlueMult: p.ColorTransform.BlueMult,
			RedAdd: p.ColorTransform.RedAdd, GreenAdd: p.ColorTransform.GreenAdd, BlueAdd: p.ColorTransform.BlueAdd,
		}))
	}
	return bw.TryError
}

func identityMatrix() swftree.Matrix {
	return swftree.Matrix{ScaleX: swftree.Sfixed16P16One, ScaleY: swftree.Sfixed16P16One}
}

// emitPlaceObject2Or3 lays out the shared PlaceObject2/3 flag word and
// field order; PlaceObject3 simply adds more optional flag bits and
// fields above the PlaceObject2 set.
func emitPlaceObject2Or3(w io.Writer, p swftree.PlaceObject, version PlaceObjectVersion, swfVersion uint8) error {
	bw := bitio.NewWriter(w)

	hasClipActions := len(p.ClipActions) > 0
	hasClipDepth := p.ClipDepth != nil
	hasName := p.Name != nil
	hasRatio := p.Ratio != nil
	hasColorTransform := p.ColorTransform != nil
	hasMatrix := p.Matrix != nil
	hasCharacterID := p.CharacterID != nil

	bw.TryWriteBool(hasClipActions)
	bw.TryWriteBool(hasClipDepth)
	bw.TryWriteBool(hasName)
	bw.TryWriteBool(hasRatio)
	bw.TryWriteBool(hasColorTransform)
	bw.TryWriteBool(hasMatrix)
	bw.TryWriteBool(hasCharacterID)
	bw.TryWriteBool(p.IsUpdate)

	if version >= PlaceObjectVersion3 {
		hasClassName := p.ClassName != nil
		hasVisible := p.Visible != nil
		hasBackgroundColor := p.BackgroundColor != nil

		bw.TryWriteUnsigned(1, 0) // reserved.
		bw.TryWriteBool(hasBackgroundColor)
		bw.TryWriteBool(hasVisible)
		bw.TryWriteBool(hasClassName)
		bw.TryWriteBool(p.BitmapCache != nil)
		bw.TryWriteBool(p.BlendMode != nil)
		bw.TryWriteBool(p.Filters != nil)
		bw.TryWriteUnsigned(1, 0) // reserved.

		if hasClassName {
			bw.TryWriteCString(*p.ClassName)
		}
	}

	if hasCharacterID {
		bw.TryWriteUint16LE(*p.CharacterID)
	}
	if hasMatrix {
		bw.TrySet(EmitMatrix(bw, *p.Matrix))
	}
	if hasColorTransform {
		bw.TrySet(EmitColorTransformWithAlpha(bw, *p.ColorTransform))
	}
	if hasRatio {
		bw.TryWriteUint16LE(*p.Ratio)
	}
	if hasName {
		bw.TryWriteCString(*p.Name)
	}
	if hasClipDepth {
		bw.TryWriteUint16LE(*p.ClipDepth)
	}

	if version >= PlaceObjectVersion3 {
		if p.Filters != nil {
			bw.TrySet(EmitFilterList(bw, p.Filters))
		}
		if p.BlendMode != nil {
			bw.TryWriteByte(blendModeCode(*p.BlendMode))
		}
		if p.BitmapCache != nil {
			if *p.BitmapCache {
				bw.TryWriteByte(1)
			} else {
				bw.TryWriteByte(0)
			}
		}
		if p.Visible != nil {
			bw.TryWriteBool(*p.Visible)
		}
		if p.BackgroundColor != nil {
			bw.TrySet(EmitStraightSRgba8(bw, *p.BackgroundColor))
		}
	}

	if hasClipActions {
		bw.TryAlign()
		if bw.TryError == nil {
			bw.TrySet(EmitClipActionsString(bw, p.ClipActions, swfVersion))
		}
	}

	return bw.TryError
}
