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

// EmitRect packs a Rect into its own byte-aligned bit-packed block: a
// 5-bit field width followed by four signed fields of that width, in
// XMin/XMax/YMin/YMax order.
func EmitRect(w io.Writer, r swftree.Rect) error {
	bw := bitio.NewWriter(w)
	emitRectBits(bw, r)
	bw.TryAlign()
	return bw.TryError
}

func emitRectBits(bw *bitio.Writer, r swftree.Rect) {
	bits := bitio.I32MinBitCount(r.XMin, r.XMax, r.YMin, r.YMax)
	bw.TryWriteUnsigned(5, uint32(bits))
	bw.TryWriteSigned(bits, r.XMin)
	bw.TryWriteSigned(bits, r.XMax)
	bw.TryWriteSigned(bits, r.YMin)
	bw.TryWriteSigned(bits, r.YMax)
}

// EmitMatrix packs a Matrix: independent presence bits for the scale and
// rotate/skew blocks (each only written when it differs from identity),
// then an unconditional translate block, each preceded by its own 5-bit
// field width.
func EmitMatrix(w io.Writer, m swftree.Matrix) error {
	bw := bitio.NewWriter(w)
	emitMatrixBits(bw, m)
	bw.TryAlign()
	return bw.TryError
}

func emitMatrixBits(bw *bitio.Writer, m swftree.Matrix) {
	hasScale := m.ScaleX != swftree.Sfixed16P16One || m.ScaleY != swftree.Sfixed16P16One
	bw.TryWriteBool(hasScale)
	if hasScale {
		bits := bitio.I32MinBitCount(int32(m.ScaleX), int32(m.ScaleY))
		bw.TryWriteUnsigned(5, uint32(bits))
		bw.TryWriteSigned(bits, int32(m.ScaleX))
		bw.TryWriteSigned(bits, int32(m.ScaleY))
	}

	hasRotateSkew := m.RotateSkew0 != swftree.Sfixed16P16Zero || m.RotateSkew1 != swftree.Sfixed16P16Zero
	bw.TryWriteBool(hasRotateSkew)
	if hasRotateSkew {
		bits := bitio.I32MinBitCount(int32(m.RotateSkew0), int32(m.RotateSkew1))
		bw.TryWriteUnsigned(5, uint32(bits))
		bw.TryWriteSigned(bits, int32(m.RotateSkew0))
		bw.TryWriteSigned(bits, int32(m.RotateSkew1))
	}

	translateBits := bitio.I32MinBitCount(m.TranslateX, m.TranslateY)
	bw.TryWriteUnsigned(5, uint32(translateBits))
	bw.TryWriteSigned(translateBits, m.TranslateX)
	bw.TryWriteSigned(translateBits, m.TranslateY)
}

// EmitColorTransform packs a ColorTransform: HasAddTerms, HasMultTerms,
// a shared 4-bit field width, then the present mult and add triples.
func EmitColorTransform(w io.Writer, ct swftree.ColorTransform) error {
	bw := bitio.NewWriter(w)
	emitColorTransformBits(bw, ct)
	bw.TryAlign()
	return bw.TryError
}

func emitColorTransformBits(bw *bitio.Writer, ct swftree.ColorTransform) {
	hasAdd := ct.RedAdd != 0 || ct.GreenAdd != 0 || ct.BlueAdd != 0
	hasMult := ct.RedMult != swftree.Sfixed8P8One || ct.GreenMult != swftree.Sfixed8P8One || ct.BlueMult != swftree.Sfixed8P8One

	bw.TryWriteBool(hasAdd)
	bw.TryWriteBool(hasMult)

	var values []int32
	if hasMult {
		values = append(values, int32(ct.RedMult), int32(ct.GreenMult), int32(ct.BlueMult))
	}
	if hasAdd {
		values = append(values, int32(ct.RedAdd), int32(ct.GreenAdd), int32(ct.BlueAdd))
	}
	bits := bitio.I32MinBitCount(values...)
	bw.TryWriteUnsigned(4, uint32(bits))

	if hasMult {
		bw.TryWriteSigned(bits, int32(ct.RedMult))
		bw.TryWriteSigned(bits, int32(ct.GreenMult))
		bw.TryWriteSigned(bits, int32(ct.BlueMult))
	}
	if hasAdd {
		bw.TryWriteSigned(bits, int32(ct.RedAdd))
		bw.TryWriteSigned(bits, int32(ct.GreenAdd))
		bw.TryWriteSigned(bits, int32(ct.BlueAdd))
	}
}

// EmitColorTransformWithAlpha is EmitColorTransform extended with a
// fourth (alpha) channel in both the mult and add triples.
func EmitColorTransformWithAlpha(w io.Writer, ct swftree.ColorTransformWithAlpha) error {
	bw := bitio.NewWriter(w)
	emitColorTransformWithAlphaBits(bw, ct)
	bw.TryAlign()
	return bw.TryError
}

func emitColorTransformWithAlphaBits(bw *bitio.Writer, ct swftree.ColorTransformWithAlpha) {
	hasAdd := ct.RedAdd != 0 || ct.GreenAdd != 0 || ct.BlueAdd != 0 || ct.AlphaAdd != 0
	hasMult := ct.RedMult != swftree.Sfixed8P8One || ct.GreenMult != swftree.Sfixed8P8One ||
		ct.BlueMult != swftree.Sfixed8P8One || ct.AlphaMult != swftree.Sfixed8P8One

	bw.TryWriteBool(hasAdd)
	bw.TryWriteBool(hasMult)

	var values []int32
	if hasMult {
		values = append(values, int32(ct.RedMult), int32(ct.GreenMult), int32(ct.BlueMult), int32(ct.AlphaMult))
	}
	if hasAdd {
		values = append(values, int32(ct.RedAdd), int32(ct.GreenAdd), int32(ct.BlueAdd), int32(ct.AlphaAdd))
	}
	bits := bitio.I32MinBitCount(values...)
	bw.TryWriteUnsigned(4, uint32(bits))

	if hasMult {
		bw.TryWriteSigned(bits, int32(ct.RedMult))
		bw.TryWriteSigned(bits, int32(ct.GreenMult))
		bw.TryWriteSigned(bits, int32(ct.BlueMult))
		bw.TryWriteSigned(bits, int32(ct.AlphaMult))
	}
	if hasAdd {
		bw.TryWriteSigned(bits, int32(ct.RedAdd))
		bw.TryWriteSigned(bits, int32(ct.GreenAdd))
		bw.TryWriteSigned(bits, int32(ct.BlueAdd))
		bw.TryWriteSigned(bits, int32(ct.AlphaAdd))
	}
}

// EmitSRgb8 writes a plain 24-bit opaque color.
func EmitSRgb8(w io.Writer, c swftree.SRgb8) error {
	_, err := w.Write([]byte{c.R, c.G, c.B})
	return err
}

// EmitStraightSRgba8 writes a plain 32-bit straight-alpha color.
func EmitStraightSRgba8(w io.Writer, c swftree.StraightSRgba8) error {
	_, err := w.Write([]byte{c.R, c.G, c.B, c.A})
	return err
}
