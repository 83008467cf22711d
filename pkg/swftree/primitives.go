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

// Package swftree defines the in-memory movie model consumed by pkg/swf:
// a plain collection of typed records with no marshaling logic of their
// own. pkg/swf owns every encoding decision.
package swftree

// Sfixed8P8 is a signed 8.8 fixed-point value, stored as its epsilon
// (value * 256) representation.
type Sfixed8P8 int16

// Sfixed8P8One is the fixed-point representation of 1.0.
const Sfixed8P8One Sfixed8P8 = 256

// Sfixed16P16 is a signed 16.16 fixed-point value, stored as its epsilon
// (value * 65536) representation.
type Sfixed16P16 int32

// Sfixed16P16One and Sfixed16P16Zero are the fixed-point representations
// of 1.0 and 0.0, used to detect the matrix identity blocks in §4.3.
const (
	Sfixed16P16One  Sfixed16P16 = 1 << 16
	Sfixed16P16Zero Sfixed16P16 = 0
)

// SRgb8 is an opaque 24-bit color.
type SRgb8 struct {
	R, G, B uint8
}

// StraightSRgba8 is a straight-alpha 32-bit color.
type StraightSRgba8 struct {
	R, G, B, A uint8
}

// Vector2D is a pair of twips, used for shape record deltas and moves.
type Vector2D struct {
	X, Y int32
}
