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

// BlendMode selects how a display object composites over its background.
type BlendMode uint8

// Blend modes, matching the PlaceObject3 BlendMode byte table.
const (
	BlendModeNormal BlendMode = iota + 1
	BlendModeLayer
	BlendModeMultiply
	BlendModeScreen
	BlendModeLighten
	BlendModeDarken
	BlendModeDifference
	BlendModeAdd
	BlendModeSubtract
	BlendModeInvert
	BlendModeAlpha
	BlendModeErase
	BlendModeOverlay
	BlendModeHardLight
)

// Filter is implemented by every bitmap filter variant.
type Filter interface{ isFilter() }

// FilterDropShadow casts an offset, blurred shadow.
type FilterDropShadow struct {
	Color                                StraightSRgba8
	BlurX, BlurY                         Sfixed16P16
	Angle, Distance                      Sfixed16P16
	Strength                             Sfixed8P8
	InnerShadow, Knockout, CompositeSource bool
	Passes                               uint8
}

// FilterBlur softens the source by a Gaussian-style blur.
type FilterBlur struct {
	BlurX, BlurY Sfixed16P16
	Passes       uint8
}

// FilterGlow adds a blurred halo in a single color.
type FilterGlow struct {
	Color                                StraightSRgba8
	BlurX, BlurY                         Sfixed16P16
	Strength                             Sfixed8P8
	InnerGlow, Knockout, CompositeSource bool
	Passes                               uint8
}

// FilterBevel adds a highlight/shadow pair along the source's edge.
type FilterBevel struct {
	ShadowColor, HighlightColor            StraightSRgba8
	BlurX, BlurY, Angle, Distance          Sfixed16P16
	Strength                               Sfixed8P8
	InnerShadow, Knockout, CompositeSource bool
	OnTop                                  bool
	Passes                                 uint8
}

// FilterGradientGlow is a Glow whose color ramps across a Gradient.
type FilterGradientGlow struct {
	Colors                                  []StraightSRgba8
	Ratios                                  []uint8
	BlurX, BlurY, Angle, Distance           Sfixed16P16
	Strength                                Sfixed8P8
	InnerShadow, Knockout, CompositeSource bool
	OnTop                                   bool
	Passes                                  uint8
}

// FilterGradientBevel is a Bevel whose color ramps across a Gradient.
type FilterGradientBevel struct {
	Colors                                  []StraightSRgba8
	Ratios                                  []uint8
	BlurX, BlurY, Angle, Distance           Sfixed16P16
	Strength                                Sfixed8P8
	InnerShadow, Knockout, CompositeSource bool
	OnTop                                   bool
	Passes                                  uint8
}

// FilterConvolution applies an arbitrary MatrixX*MatrixY kernel.
type FilterConvolution struct {
	MatrixX, MatrixY       uint8
	Matrix                 []float32
	Divisor, Bias          float32
	DefaultColor           StraightSRgba8
	Clamp, PreserveAlpha   bool
}

// FilterColorMatrix applies a 4x5 color transform matrix.
type FilterColorMatrix struct {
	Matrix [20]float32
}

func (FilterDropShadow) isFilter()    {}
func (FilterBlur) isFilter()          {}
func (FilterGlow) isFilter()          {}
func (FilterBevel) isFilter()         {}
func (FilterGradientGlow) isFilter()  {}
func (FilterGradientBevel) isFilter() {}
func (FilterConvolution) isFilter()   {}
func (FilterColorMatrix) isFilter()   {}

// ClipEventFlags is the bitset of movie-clip events a ClipAction
// responds to. KeyPress, Construct and DragOut only exist in SWF6+, which
// is why the encoder widens the flag word to 32 bits once any of them is
// set (or the movie's SWF version is 6 or higher) instead of the legacy
// 16-bit word.
type ClipEventFlags struct {
	Load            bool
	EnterFrame      bool
	Unload          bool
	MouseMove       bool
	MouseDown       bool
	MouseUp         bool
	KeyDown         bool
	KeyUp           bool
	Data            bool
	Initialize      bool
	Press           bool
	Release         bool
	ReleaseOutside  bool
	RollOver        bool
	RollOut         bool
	DragOver        bool
	DragOut         bool
	KeyPress        bool
	Construct       bool
}

// ClipAction pairs an event mask with the action bytecode to run.
type ClipAction struct {
	Events  ClipEventFlags
	KeyCode *uint8 // only meaningful when Events.KeyPress is set.
	Actions []byte
}
