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

	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func gradientSpreadCode(s swftree.GradientSpread) byte {
	switch s {
	case swftree.GradientSpreadPad:
		return 0
	case swftree.GradientSpreadReflect:
		return 1
	case swftree.GradientSpreadRepeat:
		return 2
	default:
		invariant(false, "unknown gradient spread %v", s)
		return 0
	}
}

func colorSpaceCode(c swftree.GradientColorSpace) byte {
	switch c {
	case swftree.GradientColorSpaceSRgb:
		return 0
	case swftree.GradientColorSpaceLinearRgb:
		return 1
	default:
		invariant(false, "unknown gradient color space %v", c)
		return 0
	}
}

// EmitGradient writes a gradient's stop count/spread/color-space flag
// byte followed by each color stop. withAlpha selects whether stops
// carry an alpha channel (Shape3+/FillStyle with_alpha contexts).
func EmitGradient(w io.Writer, g swftree.Gradient, withAlpha bool) error {
	invariant(len(g.Colors) <= 0x0f, "gradient has more than 15 color stops (%d)", len(g.Colors))
	flags := byte(len(g.Colors)) | gradientSpreadCode(g.Spread)<<4 | colorSpaceCode(g.ColorSpace)<<6
	if _, err := w.Write([]byte{flags}); err != nil {
		return err
	}
	for _, stop := range g.Colors {
		if err := EmitColorStop(w, stop, withAlpha); err != nil {
			return err
		}
	}
	return nil
}

// EmitColorStop writes one gradient stop's ratio and color.
func EmitColorStop(w io.Writer, stop swftree.ColorStop, withAlpha bool) error {
	if _, err := w.Write([]byte{stop.Ratio}); err != nil {
		return err
	}
	if withAlpha {
		return EmitStraightSRgba8(w, stop.Color)
	}
	return EmitSRgb8(w, swftree.SRgb8{R: stop.Color.R, G: stop.Color.G, B: stop.Color.B})
}

// EmitMorphGradient writes a morph gradient's stop list; every stop is
// always RGBA since morph fills always carry alpha.
func EmitMorphGradient(w io.Writer, g swftree.MorphGradient) error {
	invariant(len(g.Colors) <= 0x0f, "morph gradient has more than 15 color stops (%d)", len(g.Colors))
	flags := byte(len(g.Colors)) | gradientSpreadCode(g.Spread)<<4 | colorSpaceCode(g.ColorSpace)<<6
	if _, err := w.Write([]byte{flags}); err != nil {
		return err
	}
	for _, stop := range g.Colors {
		if err := EmitMorphColorStop(w, stop); err != nil {
			return err
		}
	}
	return nil
}

// EmitMorphColorStop writes a morph gradient stop as a start ColorStop
// immediately followed by its end-of-morph ColorStop counterpart.
func EmitMorphColorStop(w io.Writer, stop swftree.MorphColorStop) error {
	if err := EmitColorStop(w, swftree.ColorStop{Ratio: stop.Ratio, Color: stop.Color}, true); err != nil {
		return err
	}
	return EmitColorStop(w, swftree.ColorStop{Ratio: stop.MorphRatio, Color: stop.MorphColor}, true)
}
