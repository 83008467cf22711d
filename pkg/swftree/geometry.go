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

// Rect is an axis-aligned rectangle in twips.
type Rect struct {
	XMin, XMax, YMin, YMax int32
}

// Matrix is a 2D affine transform. Scale and rotate/skew fields are
// Sfixed16P16 epsilons; translate fields are plain twips.
type Matrix struct {
	ScaleX, ScaleY             Sfixed16P16
	RotateSkew0, RotateSkew1   Sfixed16P16
	TranslateX, TranslateY     int32
}

// ColorTransform scales and offsets RGB channels.
type ColorTransform struct {
	RedMult, GreenMult, BlueMult Sfixed8P8
	RedAdd, GreenAdd, BlueAdd    int16
}

// ColorTransformWithAlpha is a ColorTransform extended with an alpha
// channel, used by PlaceObject2/3 and button color transforms.
type ColorTransformWithAlpha struct {
	RedMult, GreenMult, BlueMult, AlphaMult Sfixed8P8
	RedAdd, GreenAdd, BlueAdd, AlphaAdd     int16
}
