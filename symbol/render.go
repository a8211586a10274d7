// seehuhn.de/go/audiogram - vector symbols for audiogram reports
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package symbol

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/units"
)

// ErrInvalidSize is returned when a symbol is requested with a size which
// is not a positive, finite number.
var ErrInvalidSize = errors.New("invalid symbol size")

// StrokeRatio is the line width of synthesized symbols, as a fraction of
// the symbol size.
const StrokeRatio = 0.08

// Color is one of the two symbol colors.
type Color int

// These are the available symbol colors.
const (
	Red Color = iota
	Blue
)

// RGB returns the color value used for both filling and stroking.
func (c Color) RGB() canvas.RGB {
	switch c {
	case Blue:
		return canvas.RGB{B: 1}
	default:
		return canvas.RGB{R: 1}
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Alternating returns [Red] for even i and [Blue] for odd i.
func Alternating(i int) Color {
	if i%2 == 0 {
		return Red
	}
	return Blue
}

// Render draws a single symbol.
//
// For synthesized symbols, origin is the lower-left corner of the square
// box occupied by the symbol, and the side length of this box is sizePt
// points.  For text symbols, origin is the start of the baseline and
// sizePt is the font size.
//
// The style registers of c are set for the duration of the call and are
// restored before Render returns.  Every successful call issues exactly
// one drawing operation.
func Render(c canvas.Canvas, font canvas.FontID, id Identity, origin vec.Vec2, sizePt float64, color Color) error {
	if !(sizePt > 0) || math.IsInf(sizePt, 0) {
		return fmt.Errorf("symbol: %s: size %g: %w", id, sizePt, ErrInvalidSize)
	}
	strategy, err := StrategyFor(id)
	if err != nil {
		return err
	}

	rgb := color.RGB()
	style := canvas.Style{Fill: rgb, Stroke: rgb}

	switch s := strategy.(type) {
	case GlyphText:
		return canvas.WithStyle(c, style, func() error {
			c.AddText(s.Text, font, sizePt, origin)
			return nil
		})

	case Polygon:
		p, err := s.Shape(origin, units.PtToMm(sizePt))
		if err != nil {
			return fmt.Errorf("symbol: %s: %w", id, err)
		}
		p.Mode = shape.Stroke
		if id.Filled() {
			p.Mode = shape.FillStroke
		}
		style.StrokeWidth = sizePt * StrokeRatio
		return canvas.WithStyle(c, style, func() error {
			c.AddPath(p)
			return nil
		})

	case OpenStroke:
		p, err := s.Shape(origin, units.PtToMm(sizePt))
		if err != nil {
			return fmt.Errorf("symbol: %s: %w", id, err)
		}
		p.Mode = shape.Stroke
		style.StrokeWidth = sizePt * StrokeRatio
		if s.Heavy {
			style.StrokeWidth *= 2
		}
		return canvas.WithStyle(c, style, func() error {
			c.AddPath(p)
			return nil
		})

	default:
		panic("unreachable")
	}
}

// RenderRow draws a horizontal row of symbols, starting at origin and
// advancing by step millimetres after each symbol.  The color of the
// symbol at index i is colorFor(i); if colorFor is nil, [Alternating] is
// used.
func RenderRow(c canvas.Canvas, font canvas.FontID, ids []Identity, origin vec.Vec2, step, sizePt float64, colorFor func(int) Color) error {
	if colorFor == nil {
		colorFor = Alternating
	}
	pos := origin
	for i, id := range ids {
		err := Render(c, font, id, pos, sizePt, colorFor(i))
		if err != nil {
			return err
		}
		pos.X += step
	}
	return nil
}

// LegendGap is the distance between a legend symbol and its label, in mm.
const LegendGap = 5.0

// RenderLegend draws a legend entry: the symbol at origin, and the label in
// black, starting [LegendGap] millimetres to the right on the baseline
// through origin.
func RenderLegend(c canvas.Canvas, font canvas.FontID, id Identity, origin vec.Vec2, sizePt float64, color Color, label string, labelSizePt float64) error {
	if !(labelSizePt > 0) || math.IsInf(labelSizePt, 0) {
		return fmt.Errorf("symbol: legend %q: size %g: %w", label, labelSizePt, ErrInvalidSize)
	}
	err := Render(c, font, id, origin, sizePt, color)
	if err != nil {
		return err
	}

	style := c.Style()
	style.Fill = canvas.Black
	return canvas.WithStyle(c, style, func() error {
		c.AddText(label, font, labelSizePt, vec.Vec2{X: origin.X + LegendGap, Y: origin.Y})
		return nil
	})
}
