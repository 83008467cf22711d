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

// GradientSpread selects how a gradient repeats past its ratio range.
type GradientSpread uint8

// Gradient spread modes.
const (
	GradientSpreadPad GradientSpread = iota
	GradientSpreadReflect
	GradientSpreadRepeat
)

// GradientColorSpace selects the interpolation space of a gradient.
type GradientColorSpace uint8

// Gradient color spaces.
const (
	GradientColorSpaceSRgb GradientColorSpace = iota
	GradientColorSpaceLinearRgb
)

// ColorStop is one ratio/color pair in a Gradient.
type ColorStop struct {
	Ratio uint8
	Color StraightSRgba8
}

// MorphColorStop is a ColorStop with a paired end-of-morph ratio/color.
type MorphColorStop struct {
	Ratio      uint8
	Color      StraightSRgba8
	MorphRatio uint8
	MorphColor StraightSRgba8
}

// Gradient is an ordered, at-most-15-stop color ramp.
type Gradient struct {
	Spread     GradientSpread
	ColorSpace GradientColorSpace
	Colors     []ColorStop
}

// MorphGradient is a Gradient whose stops additionally carry end shapes.
type MorphGradient struct {
	Spread     GradientSpread
	ColorSpace GradientColorSpace
	Colors     []MorphColorStop
}

// FillStyle is implemented by every fill variant a shape can use.
type FillStyle interface{ isFillStyle() }

// FillStyleSolid is an opaque or translucent flat fill.
type FillStyleSolid struct{ Color StraightSRgba8 }

// FillStyleLinearGradient paints along the gradient's matrix-mapped axis.
type FillStyleLinearGradient struct {
	Matrix   Matrix
	Gradient Gradient
}

// FillStyleRadialGradient paints outward from the matrix-mapped center.
type FillStyleRadialGradient struct {
	Matrix   Matrix
	Gradient Gradient
}

// FillStyleFocalGradient is a RadialGradient with an off-center focus.
type FillStyleFocalGradient struct {
	Matrix     Matrix
	Gradient   Gradient
	FocalPoint Sfixed8P8
}

// FillStyleBitmap tiles or clips a referenced bitmap character.
type FillStyleBitmap struct {
	BitmapID  uint16
	Matrix    Matrix
	Repeating bool
	Smoothed  bool
}

func (FillStyleSolid) isFillStyle()          {}
func (FillStyleLinearGradient) isFillStyle() {}
func (FillStyleRadialGradient) isFillStyle() {}
func (FillStyleFocalGradient) isFillStyle()  {}
func (FillStyleBitmap) isFillStyle()         {}

// MorphFillStyle is implemented by every fill variant a morph shape
// can use; each carries both the start and end state.
type MorphFillStyle interface{ isMorphFillStyle() }

// MorphFillStyleSolid interpolates between two flat colors.
type MorphFillStyleSolid struct{ Color, MorphColor StraightSRgba8 }

// MorphFillStyleLinearGradient interpolates a linear gradient.
type MorphFillStyleLinearGradient struct {
	Matrix, MorphMatrix Matrix
	Gradient            MorphGradient
}

// MorphFillStyleRadialGradient interpolates a radial gradient.
type MorphFillStyleRadialGradient struct {
	Matrix, MorphMatrix Matrix
	Gradient            MorphGradient
}

// MorphFillStyleFocalGradient interpolates a focal gradient.
type MorphFillStyleFocalGradient struct {
	Matrix, MorphMatrix         Matrix
	Gradient                    MorphGradient
	FocalPoint, MorphFocalPoint Sfixed8P8
}

// MorphFillStyleBitmap interpolates a tiled/clipped bitmap fill.
type MorphFillStyleBitmap struct {
	BitmapID            uint16
	Matrix, MorphMatrix Matrix
	Repeating, Smoothed bool
}

func (MorphFillStyleSolid) isMorphFillStyle()          {}
func (MorphFillStyleLinearGradient) isMorphFillStyle() {}
func (MorphFillStyleRadialGradient) isMorphFillStyle() {}
func (MorphFillStyleFocalGradient) isMorphFillStyle()  {}
func (MorphFillStyleBitmap) isMorphFillStyle()         {}

// CapStyle selects the stroke endpoint decoration.
type CapStyle uint8

// Cap styles.
const (
	CapStyleRound CapStyle = iota
	CapStyleNone
	CapStyleSquare
)

// JoinStyleKind selects the stroke corner decoration.
type JoinStyleKind uint8

// Join styles. Miter additionally consults LineStyle.MiterLimitFactor.
const (
	JoinStyleRound JoinStyleKind = iota
	JoinStyleBevel
	JoinStyleMiter
)

// LineStyle is a stroke description. The encoder infers whether it must
// be emitted as the wire's LineStyle1 or LineStyle2 record from which
// fields are populated: a plain solid color with every LineStyle2-only
// field at its default emits as LineStyle1.
type LineStyle struct {
	Width            uint16
	Fill             FillStyle // nil forces Shape4 and emits an opaque black LineStyle2 color.
	PixelHinting     bool
	NoHScale         bool
	NoVScale         bool
	NoClose          bool
	StartCap, EndCap CapStyle
	Join             JoinStyleKind
	MiterLimitFactor Sfixed8P8 // only meaningful when Join == JoinStyleMiter.
}

// MorphLineStyle is a LineStyle with interpolated color or fill.
type MorphLineStyle struct {
	Width, MorphWidth uint16
	Fill              MorphFillStyle
	PixelHinting      bool
	NoHScale          bool
	NoVScale          bool
	NoClose           bool
	StartCap, EndCap  CapStyle
	Join              JoinStyleKind
	MiterLimitFactor  Sfixed8P8
}

// ShapeStyles is the fill/line style tables in effect at a point in the
// shape's record stream.
type ShapeStyles struct {
	FillStyles []FillStyle
	LineStyles []LineStyle
}

// MorphShapeStyles is the ShapeStyles equivalent for morph shapes.
type MorphShapeStyles struct {
	FillStyles []MorphFillStyle
	LineStyles []MorphLineStyle
}

// ShapeRecord is implemented by Edge and StyleChange.
type ShapeRecord interface{ isShapeRecord() }

// Edge is a straight or quadratic-curved line segment. ControlDelta nil
// means a straight edge; non-nil means a curved one.
type Edge struct {
	Delta        Vector2D
	ControlDelta *Vector2D
}

// StyleChange updates the pen position and/or the active fill/line
// style indices (1-based, 0 means "no style"); NewStyles replaces the
// active style tables outright (illegal inside a morph record stream,
// see MorphStyleChange).
type StyleChange struct {
	MoveTo     *Vector2D
	LeftFill   *uint32
	RightFill  *uint32
	LineStyle  *uint32
	NewStyles  *ShapeStyles
}

func (Edge) isShapeRecord()        {}
func (StyleChange) isShapeRecord() {}

// MorphShapeRecord is implemented by MorphEdge and MorphStyleChange.
type MorphShapeRecord interface{ isMorphShapeRecord() }

// MorphEdge is an Edge with a paired end-of-morph delta.
type MorphEdge struct {
	Delta, MorphDelta               Vector2D
	ControlDelta, MorphControlDelta *Vector2D
}

// MorphStyleChange is a StyleChange restricted to the morph record
// stream: NewStyles must be nil (morph shapes use one fixed style table
// declared once, see DESIGN.md), and MoveTo/MorphMoveTo pair a start and
// end position instead of a single one.
type MorphStyleChange struct {
	MoveTo      *Vector2D
	MorphMoveTo *Vector2D
	LeftFill    *uint32
	RightFill   *uint32
	LineStyle   *uint32
}

func (MorphEdge) isMorphShapeRecord()        {}
func (MorphStyleChange) isMorphShapeRecord() {}

// Shape is a style table plus its record stream.
type Shape struct {
	InitialStyles ShapeStyles
	Records       []ShapeRecord
}

// MorphShape is the MorphShapeStyles equivalent of Shape.
type MorphShape struct {
	InitialStyles MorphShapeStyles
	Records       []MorphShapeRecord
}
