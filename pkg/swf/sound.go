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

func soundRateCode(r swftree.SoundRate) uint32 {
	switch r {
	case swftree.SoundRate5500:
		return 0
	case swftree.SoundRate11000:
		return 1
	case swftree.SoundRate22000:
		return 2
	case swftree.SoundRate44000:
		return 3
	default:
		invariant(false, "unsupported sound rate %v", r)
		return 0
	}
}

// EmitDefineSoundBody writes a DefineSound tag body: character id, a
// packed format/rate/size/channels byte, the sample count, then the
// opaque encoded sample stream.
func EmitDefineSoundBody(w io.Writer, t swftree.DefineSound) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.ID)
	bw.TryWriteUnsigned(4, uint32(t.Format))
	bw.TryWriteUnsigned(2, soundRateCode(t.Rate))
	bw.TryWriteBool(t.Is16Bit)
	bw.TryWriteBool(t.IsStereo)
	bw.TryWriteUint32LE(t.SampleCount)
	bw.TryWrite(t.Data)
	return bw.TryError
}

// EmitSoundInfo packs a SoundInfo's flag byte and optional fields.
func EmitSoundInfo(w io.Writer, info swftree.SoundInfo) error {
	bw := bitio.NewWriter(w)
	hasEnvelope := len(info.Envelope) > 0
	hasLoops := info.LoopCount != nil
	hasOutPoint := info.OutPoint != nil
	hasInPoint := info.InPoint != nil

	bw.TryWriteUnsigned(2, 0) // reserved.
	bw.TryWriteBool(info.SyncStop)
	bw.TryWriteBool(info.SyncNoMultiple)
	bw.TryWriteBool(hasEnvelope)
	bw.TryWriteBool(hasLoops)
	bw.TryWriteBool(hasOutPoint)
	bw.TryWriteBool(hasInPoint)

	if hasInPoint {
		bw.TryWriteUint32LE(*info.InPoint)
	}
	if hasOutPoint {
		bw.TryWriteUint32LE(*info.OutPoint)
	}
	if hasLoops {
		bw.TryWriteUint16LE(*info.LoopCount)
	}
	if hasEnvelope {
		invariant(len(info.Envelope) <= 0xff, "sound envelope has more than 255 points (%d)", len(info.Envelope))
		bw.TryWriteByte(byte(len(info.Envelope)))
		for _, pt := range info.Envelope {
			bw.TryWriteUint32LE(pt.Pos44)
			bw.TryWriteUint16LE(pt.LeftLevel)
			bw.TryWriteUint16LE(pt.RightLevel)
		}
	}
	return bw.TryError
}

// EmitStartSoundBody writes a StartSound tag body: the target sound id
// followed by its SoundInfo.
func EmitStartSoundBody(w io.Writer, t swftree.StartSound) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteUint16LE(t.SoundID)
	bw.TrySet(EmitSoundInfo(bw, t.Info))
	return bw.TryError
}
