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

// Package bitio provides the MSB-first bit packer and the little-endian
// byte primitives the SWF format is built on, wrapping
// github.com/icza/bitio with sticky-error ergonomics so callers check
// one error at the end of a record instead of after every field.
package bitio

import (
	"io"
	"math"

	"github.com/icza/bitio"
)

// Writer packs bits MSB-first within each byte and exposes little-endian
// byte-level primitives once the cursor is byte-aligned. It follows the
// teacher's TryXxx convention (pkg/video/mp4/bitio.Writer): a TryXxx
// method is a no-op once TryError is set, so a long chain of field
// writes can skip per-call error checks and be checked once at the end.
type Writer struct {
	w *bitio.Writer

	// TryError holds the first error that occurred in a TryXxx call.
	TryError error
}

// NewWriter returns a Writer that packs bits into out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(out)}
}

// Write implements io.Writer. The cursor must be byte-aligned.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// WriteByte implements io.ByteWriter. The cursor must be byte-aligned.
func (w *Writer) WriteByte(b byte) error {
	return w.w.WriteByte(b)
}

// WriteBool writes a single flag bit.
func (w *Writer) WriteBool(v bool) error {
	return w.w.WriteBool(v)
}

// WriteUnsigned writes the low `bits` bits of v, MSB first. bits must be
// in [0, 32]; bits == 0 writes nothing.
func (w *Writer) WriteUnsigned(bits uint, v uint32) error {
	if bits == 0 {
		return nil
	}
	return w.w.WriteBits(uint64(v), uint8(bits))
}

// WriteSigned writes v as a two's-complement value using `bits` bits
// (negative values first shifted into [0, 2^bits) then packed unsigned).
func (w *Writer) WriteSigned(bits uint, v int32) error {
	if bits == 0 {
		return nil
	}
	var u uint32
	if bits >= 32 {
		u = uint32(v)
	} else {
		u = uint32(v) & (uint32(1)<<bits - 1)
	}
	return w.WriteUnsigned(bits, u)
}

// Align pads the current byte with zero bits up to the next byte
// boundary.
func (w *Writer) Align() error {
	_, err := w.w.Align()
	return err
}

// WriteUint16LE writes a little-endian 16-bit unsigned integer.
func (w *Writer) WriteUint16LE(v uint16) error {
	_, err := w.Write([]byte{byte(v), byte(v >> 8)})
	return err
}

// WriteInt16LE writes a little-endian 16-bit signed integer.
func (w *Writer) WriteInt16LE(v int16) error {
	return w.WriteUint16LE(uint16(v))
}

// WriteUint32LE writes a little-endian 32-bit unsigned integer.
func (w *Writer) WriteUint32LE(v uint32) error {
	_, err := w.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	return err
}

// WriteInt32LE writes a little-endian 32-bit signed integer.
func (w *Writer) WriteInt32LE(v int32) error {
	return w.WriteUint32LE(uint32(v))
}

// WriteFloat32LE writes an IEEE-754 single-precision little-endian float.
func (w *Writer) WriteFloat32LE(v float32) error {
	return w.WriteUint32LE(math.Float32bits(v))
}

// WriteFloat16LE writes the half-precision float used by a handful of
// morph-shape and text fields, as a raw little-endian 16-bit word.
func (w *Writer) WriteFloat16LE(bits uint16) error {
	return w.WriteUint16LE(bits)
}

// WriteULEB128 writes v as an unsigned LEB128: 7 bits per byte,
// little-endian group order, continuation flag in the high bit.
func (w *Writer) WriteULEB128(v uint32) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// WriteCString writes s's UTF-8 bytes followed by a single NUL byte.
func (w *Writer) WriteCString(s string) error {
	if _, err := w.Write([]byte(s)); err != nil {
		return err
	}
	return w.WriteByte(0)
}

// TryWrite tries to write p.
func (w *Writer) TryWrite(p []byte) {
	if w.TryError == nil {
		_, w.TryError = w.Write(p)
	}
}

// TryWriteByte tries to write one byte.
func (w *Writer) TryWriteByte(b byte) {
	if w.TryError == nil {
		w.TryError = w.WriteByte(b)
	}
}

// TryWriteBool tries to write one flag bit.
func (w *Writer) TryWriteBool(v bool) {
	if w.TryError == nil {
		w.TryError = w.WriteBool(v)
	}
}

// TryWriteUnsigned tries to write an unsigned bit field.
func (w *Writer) TryWriteUnsigned(bits uint, v uint32) {
	if w.TryError == nil {
		w.TryError = w.WriteUnsigned(bits, v)
	}
}

// TryWriteSigned tries to write a signed bit field.
func (w *Writer) TryWriteSigned(bits uint, v int32) {
	if w.TryError == nil {
		w.TryError = w.WriteSigned(bits, v)
	}
}

// TryAlign tries to pad to the next byte boundary.
func (w *Writer) TryAlign() {
	if w.TryError == nil {
		w.TryError = w.Align()
	}
}

// TryWriteUint16LE tries to write a little-endian uint16.
func (w *Writer) TryWriteUint16LE(v uint16) {
	if w.TryError == nil {
		w.TryError = w.WriteUint16LE(v)
	}
}

// TryWriteInt16LE tries to write a little-endian int16.
func (w *Writer) TryWriteInt16LE(v int16) {
	if w.TryError == nil {
		w.TryError = w.WriteInt16LE(v)
	}
}

// TryWriteUint32LE tries to write a little-endian uint32.
func (w *Writer) TryWriteUint32LE(v uint32) {
	if w.TryError == nil {
		w.TryError = w.WriteUint32LE(v)
	}
}

// TryWriteInt32LE tries to write a little-endian int32.
func (w *Writer) TryWriteInt32LE(v int32) {
	if w.TryError == nil {
		w.TryError = w.WriteInt32LE(v)
	}
}

// TryWriteFloat32LE tries to write a little-endian float32.
func (w *Writer) TryWriteFloat32LE(v float32) {
	if w.TryError == nil {
		w.TryError = w.WriteFloat32LE(v)
	}
}

// TryWriteULEB128 tries to write an unsigned LEB128 value.
func (w *Writer) TryWriteULEB128(v uint32) {
	if w.TryError == nil {
		w.TryError = w.WriteULEB128(v)
	}
}

// TryWriteCString tries to write a NUL-terminated string.
func (w *Writer) TryWriteCString(s string) {
	if w.TryError == nil {
		w.TryError = w.WriteCString(s)
	}
}

// TrySet records err as the sticky error if none has been recorded yet.
// It lets callers fold the result of a helper that returns its own error
// (rather than using the TryXxx convention) into the same chain.
func (w *Writer) TrySet(err error) {
	if w.TryError == nil && err != nil {
		w.TryError = err
	}
}
