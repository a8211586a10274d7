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

package audiogram

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/symbol"
)

// Letter paper, in millimetres.
const (
	LetterWidth  = 215.9
	LetterHeight = 279.4
)

// SpecimenOptions controls the contents of the specimen sheet.
type SpecimenOptions struct {
	// Caption is the text centered in the rounded box.
	Caption string

	// CaptionSize is the font size of the caption, in points.
	CaptionSize float64

	// Symbols lists the symbols to draw.  If this is nil, the complete
	// catalog is drawn.
	Symbols []symbol.Identity

	// SymbolSize is the size of the symbols, in points.
	SymbolSize float64

	// SymbolStep is the horizontal distance between symbols, in mm.
	SymbolStep float64

	// OutlineWidth is the line width of the form fields, in points.
	OutlineWidth float64
}

var defaultSpecimenOptions = SpecimenOptions{
	Caption:      "Jane Doe",
	CaptionSize:  10,
	SymbolSize:   10,
	SymbolStep:   6,
	OutlineWidth: 1,
}

// Geometry of the specimen sheet, in millimetres.
var (
	specimenOrigin = vec.Vec2{X: 65, Y: 140}
	fieldWidth     = 80.0
	pillHeight     = 15.0
	boxHeight      = 20.0
	boxRadius      = 4.0
	boxOffset      = 25.0 // from the pill down to the box
	symbolOffset   = 50.0 // from the pill down to the symbol row
)

// DrawSpecimen draws a sample sheet onto a Letter sized page: a text
// input field with round ends, a box with rounded corners holding a
// centered caption, and a row of audiogram symbols in alternating colors.
//
// If opt is nil, default options are used.  Zero fields in opt are
// replaced by their default values.
func DrawSpecimen(c canvas.Canvas, font canvas.FontID, opt *SpecimenOptions) error {
	o := defaultSpecimenOptions
	if opt != nil {
		if opt.Caption != "" {
			o.Caption = opt.Caption
		}
		if opt.CaptionSize > 0 {
			o.CaptionSize = opt.CaptionSize
		}
		if opt.Symbols != nil {
			o.Symbols = opt.Symbols
		}
		if opt.SymbolSize > 0 {
			o.SymbolSize = opt.SymbolSize
		}
		if opt.SymbolStep > 0 {
			o.SymbolStep = opt.SymbolStep
		}
		if opt.OutlineWidth > 0 {
			o.OutlineWidth = opt.OutlineWidth
		}
	}
	if o.Symbols == nil {
		o.Symbols = symbol.All
	}

	// check the font before anything is drawn
	if _, err := c.FontMetrics(font); err != nil {
		return err
	}

	pill, err := shape.Capsule(specimenOrigin, fieldWidth, pillHeight)
	if err != nil {
		return err
	}
	boxOrigin := vec.Vec2{X: specimenOrigin.X, Y: specimenOrigin.Y - boxOffset}
	box, err := shape.RoundedRect(boxOrigin, fieldWidth, boxHeight, boxRadius)
	if err != nil {
		return err
	}

	outline := canvas.Style{StrokeWidth: o.OutlineWidth}
	err = canvas.WithStyle(c, outline, func() error {
		c.AddPath(pill)
		c.AddPath(box)
		captionBox := rect.Rect{
			LLx: boxOrigin.X,
			LLy: boxOrigin.Y,
			URx: boxOrigin.X + fieldWidth,
			URy: boxOrigin.Y + boxHeight,
		}
		_, err := DrawCaption(c, font, o.Caption, o.CaptionSize, captionBox)
		return err
	})
	if err != nil {
		return err
	}

	row := vec.Vec2{X: specimenOrigin.X, Y: specimenOrigin.Y - symbolOffset}
	return symbol.RenderRow(c, font, o.Symbols, row, o.SymbolStep, o.SymbolSize, symbol.Alternating)
}
