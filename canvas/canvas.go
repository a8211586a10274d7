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

// Package canvas defines the drawing surface used by the symbol renderer.
//
// A [Canvas] receives paths and text in page coordinates, measured in
// millimetres from the lower-left corner of the page.  Colors and the line
// width are kept in style registers which persist until they are changed.
// [WithStyle] sets the registers for one drawing operation and restores
// them afterwards.
//
// Implementations of Canvas in this module are [Recorder], the PDF writer
// in package pdfcanvas and the image renderer in package raster.
package canvas

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/textmetrics"
)

// ErrUnknownFont is returned when text is drawn with a font which has not
// been registered with the canvas.
var ErrUnknownFont = errors.New("unknown font")

// FontID identifies a font registered with a canvas.
type FontID string

// RGB is a color in the RGB color space.
// All components are in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Black is the initial fill and stroke color.
var Black = RGB{}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.3g,%.3g,%.3g)", c.R, c.G, c.B)
}

// Style holds the values of the style registers.
//
// The PDF and image backends start out with [DefaultStyle].  A [Recorder]
// starts with the zero Style.
type Style struct {
	Fill        RGB
	Stroke      RGB
	StrokeWidth float64 // in points, 0 means the thinnest visible line
}

// DefaultStyle is the initial style of a page: black, with a line width of
// one point.  These are the initial values of the PDF graphics state.
var DefaultStyle = Style{StrokeWidth: 1}

// Canvas is a page to draw on.
type Canvas interface {
	// AddPath paints the path, using p.Mode to decide between stroking and
	// filling.
	AddPath(p *shape.Path)

	// AddText draws text with its baseline origin at pos, using the
	// current fill color.
	AddText(text string, font FontID, sizePt float64, pos vec.Vec2)

	SetFillColor(c RGB)
	SetStrokeColor(c RGB)
	SetStrokeWidth(w float64)

	// Style returns the current values of the style registers.
	Style() Style

	// FontMetrics returns the glyph metrics of a registered font.
	FontMetrics(font FontID) (*textmetrics.GlyphMetrics, error)
}

// SetStyle sets all style registers of c.
func SetStyle(c Canvas, s Style) {
	c.SetFillColor(s.Fill)
	c.SetStrokeColor(s.Stroke)
	c.SetStrokeWidth(s.StrokeWidth)
}

// WithStyle sets the style registers of c to s, calls draw, and then
// restores the previous register values.  The registers are restored even
// if draw returns an error or panics.
func WithStyle(c Canvas, s Style, draw func() error) error {
	saved := c.Style()
	defer SetStyle(c, saved)

	SetStyle(c, s)
	return draw()
}
