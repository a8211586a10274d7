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

package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram"
	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/symbol"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Width  float64 // page width in mm
	Height float64 // page height in mm
	Item   Item    // what to draw
}

// Item is the element drawn by a test case.
// This must be one of [Shapes], [Symbol] or [Caption].
type Item interface {
	isItem()
}

// Shapes draws one or more paths with a common style.
type Shapes struct {
	Paths []*shape.Path
	Style canvas.Style
}

// Symbol draws a symbol from the catalog.
type Symbol struct {
	ID     symbol.Identity
	Origin vec.Vec2
	SizePt float64
	Color  symbol.Color
}

// Caption draws the outline of a box and a caption centered inside.
type Caption struct {
	Text   string
	SizePt float64
	Box    rect.Rect
}

func (Shapes) isItem()  {}
func (Symbol) isItem()  {}
func (Caption) isItem() {}

// Draw draws the test case onto c.  The font is used for text.
func (tc TestCase) Draw(c canvas.Canvas, font canvas.FontID) error {
	switch item := tc.Item.(type) {
	case Shapes:
		return canvas.WithStyle(c, item.Style, func() error {
			for _, p := range item.Paths {
				c.AddPath(p)
			}
			return nil
		})
	case Symbol:
		return symbol.Render(c, font, item.ID, item.Origin, item.SizePt, item.Color)
	case Caption:
		b := item.Box
		outline, err := shape.RoundedRect(vec.Vec2{X: b.LLx, Y: b.LLy}, b.URx-b.LLx, b.URy-b.LLy, 0)
		if err != nil {
			return err
		}
		return canvas.WithStyle(c, canvas.Style{StrokeWidth: 0.5}, func() error {
			c.AddPath(outline)
			_, err := audiogram.DrawCaption(c, font, item.Text, item.SizePt, b)
			return err
		})
	default:
		return fmt.Errorf("test case %q: unexpected item %T", tc.Name, tc.Item)
	}
}

// must panics if err is not nil.
func must(p *shape.Path, err error) *shape.Path {
	if err != nil {
		panic(err)
	}
	return p
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
