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

// ButtonVersion is the minimum DefineButton wire generation a button
// record set requires.
type ButtonVersion uint8

// Button versions.
const (
	ButtonVersion1 ButtonVersion = iota + 1
	ButtonVersion2
)

func buttonRecordNeedsV2(r swftree.ButtonRecord) bool {
	return r.ColorTransform != nil || len(r.Filters) > 0 || (r.BlendMode != 0 && r.BlendMode != swftree.BlendModeNormal)
}

// GetMinButtonVersion returns Button2 when the button uses a feature the
// legacy DefineButton (code 7) form cannot carry: track-as-menu, a
// record-level color transform/filter list/blend mode, more than one
// conditional action handler, or any action keyed to a specific key
// press — matching §8's minimum-version law for DefineButton.
func GetMinButtonVersion(t swftree.DefineButton) ButtonVersion {
	if t.TrackAsMenu || len(t.Actions) > 1 {
		return ButtonVersion2
	}
	for _, r := range t.Records {
		if buttonRecordNeedsV2(r) {
			return ButtonVersion2
		}
	}
	for _, a := range t.Actions {
		if a.Conditions.KeyPress != nil {
			return ButtonVersion2
		}
	}
	return ButtonVersion1
}

func emitButtonRecord(bw *bitio.Writer, r swftree.ButtonRecord, version ButtonVersion) {
	if version >= ButtonVersion2 {
		bw.TryWriteUnsigned(2, 0) // reserved.
		bw.TryWriteBool(r.BlendMode != 0 && r.BlendMode != swftree.BlendModeNormal)
		bw.TryWriteBool(len(r.Filters) > 0)
	} else {
		bw.TryWriteUnsigned(4, 0) // reserved.
	}
	bw.TryWriteBool(r.StateHitTest)
	bw.TryWriteBool(r.StateDown)
	bw.TryWriteBool(r.StateOver)
	bw.TryWriteBool(r.StateUp)
	bw.TryWriteUint16LE(r.CharacterID)
	bw.TryWriteUint16LE(r.Depth)
	bw.TrySet(EmitMatrix(bw, r.Matrix))
	if version >= ButtonVersion2 {
		if r.ColorTransform != nil {
			bw.TrySet(EmitColorTransformWithAlpha(bw, *r.ColorTransform))
		} else {
			bw.TrySet(EmitColorTransformWithAlpha(bw, swftree.ColorTransformWithAlpha{
				RedMult: swftree.Sfixed8P8One, GreenMult: swftree.Sfixed8P8One,
				BlueMult: swftree.Sfixed8P8One, AlphaMult: swftree.Sfixed8P8One,
			}))
		}
		if len(r.Filters) > 0 {
			bw.TrySet(EmitFilterList(bw, r.Filters))
		}
		if r.BlendMode != 0 && r.BlendMode != swftree.BlendModeNormal {
			bw.TryWriteByte(blendModeCode(r.BlendMode))
		}
	}
}

// EmitButtonRecordsString writes a button's record list (one
// ButtonRecord per entry) terminated by a single zero byte, the shared
// wire form for both DefineButton generations.
func EmitButtonRecordsString(w io.Writer, records []swftree.ButtonRecord, version ButtonVersion) error {
	for _, r := range records {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		emitButtonRecord(bw, r, version)
		bw.TryAlign()
		if bw.TryError != nil {
			return bw.TryError
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{0})
	return err
}

func emitButtonCondBits(bw *bitio.Writer, c swftree.ButtonCond) {
	var keyCode uint8
	if c.KeyPress != nil {
		keyCode = *c.KeyPress
	}
	bw.TryWriteUnsigned(7, uint32(keyCode))
	bw.TryWriteBool(c.OverDownToIdle)
	bw.TryWriteBool(c.IdleToOverDown)
	bw.TryWriteBool(c.OutDownToIdle)
	bw.TryWriteBool(c.OutDownToOverDown)
	bw.TryWriteBool(c.OverDownToOutDown)
	bw.TryWriteBool(c.OverDownToOverUp)
	bw.TryWriteBool(c.OverUpToOverDown)
	bw.TryWriteBool(c.OverUpToIdle)
	bw.TryWriteBool(c.IdleToOverUp)
}

// EmitButtonCondActionString writes a Button2 ButtonCondActions list:
// each entry prefixed by its own byte length (0 for the last entry,
// per the SWF convention), terminated implicitly by running out of
// input — the caller frames the whole tag body length separately.
func EmitButtonCondActionString(w io.Writer, actions []swftree.ButtonCondAction) error {
	for i, a := range actions {
		var body bytes.Buffer
		bw := bitio.NewWriter(&body)
		emitButtonCondBits(bw, a.Conditions)
		bw.TryAlign()
		if bw.TryError != nil {
			return bw.TryError
		}
		body.Write(a.Actions)

		isLast := i == len(actions)-1
		size := uint16(0)
		if !isLast {
			size = uint16(2 + body.Len())
		}
		var head bytes.Buffer
		hw := bitio.NewWriter(&head)
		hw.TryWriteUint16LE(size)
		if hw.TryError != nil {
			return hw.TryError
		}
		if _, err := w.Write(head.Bytes()); err != nil {
			return err
		}
		if _, err := w.Write(body.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// EmitDefineButtonBody writes a DefineButton/DefineButton2 tag body at
// the version returned by GetMinButtonVersion.
func EmitDefineButtonBody(w io.Writer, t swftree.DefineButton, version ButtonVersion) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.ID)
	if bw.TryError != nil {
		return bw.TryError
	}

	if version == ButtonVersion1 {
		if err := EmitButtonRecordsString(w, t.Records, version); err != nil {
			return err
		}
		if len(t.Actions) == 1 {
			if _, err := w.Write(t.Actions[0].Actions); err != nil {
				return err
			}
		}
		return nil
	}

	if t.TrackAsMenu {
		bw.TryWriteUnsigned(7, 0)
		bw.TryWriteBool(true)
	} else {
		bw.TryWriteByte(0)
	}
	if bw.TryError != nil {
		return bw.TryError
	}

	var recordsAndActions bytes.Buffer
	if err := EmitButtonRecordsString(&recordsAndActions, t.Records, version); err != nil {
		return err
	}
	if len(t.Actions) > 0 {
		if err := EmitButtonCondActionString(&recordsAndActions, t.Actions); err != nil {
			return err
		}
	}

	offsetToActions := uint16(0)
	if len(t.Actions) > 0 {
		var records bytes.Buffer
		if err := EmitButtonRecordsString(&records, t.Records, version); err != nil {
			return err
		}
		offsetToActions = uint16(2 + records.Len())
	}
	bw.TryWriteUint16LE(offsetToActions)
	if bw.TryError != nil {
		return bw.TryError
	}
	_, err := w.Write(recordsAndActions.Bytes())
	return err
}
