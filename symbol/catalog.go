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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/shape"
)

// ErrUnknownSymbol is returned when a symbol identity is not in the catalog.
var ErrUnknownSymbol = errors.New("unknown symbol")

// A ShapeFunc builds the outline of a symbol.  The origin is the lower-left
// corner of the size×size box the symbol occupies, in millimetres.
type ShapeFunc func(origin vec.Vec2, size float64) (*shape.Path, error)

// Strategy describes how a symbol is drawn.
// This must be one of [Polygon], [OpenStroke] or [GlyphText].
type Strategy interface {
	isStrategy()
}

// Polygon draws a synthesized closed outline.  The outline is only stroked
// for unfilled symbols, and filled and stroked for filled symbols.
type Polygon struct {
	Shape ShapeFunc
}

// OpenStroke draws a synthesized line figure, which is never filled.
// If Heavy is set, the line is drawn with twice the normal width.
type OpenStroke struct {
	Shape ShapeFunc
	Heavy bool
}

// GlyphText draws a short text using the symbol font.
type GlyphText struct {
	Text string
}

func (Polygon) isStrategy()    {}
func (OpenStroke) isStrategy() {}
func (GlyphText) isStrategy()  {}

type entry struct {
	id       Identity
	strategy Strategy
}

func directed(f func(vec.Vec2, float64, shape.Direction) (*shape.Path, error), d shape.Direction) ShapeFunc {
	return func(origin vec.Vec2, size float64) (*shape.Path, error) {
		return f(origin, size, d)
	}
}

var upTriangle = directed(shape.Triangle, shape.Up)

var entries = []entry{
	{Square, Polygon{shape.Square}},
	{SquareFilled, Polygon{shape.Square}},
	{Triangle, Polygon{upTriangle}},
	{TriangleFilled, Polygon{upTriangle}},
	{Circle, Polygon{shape.Circle}},
	{CircleFilled, Polygon{shape.Circle}},
	{S, GlyphText{"S"}},
	{SFilled, GlyphText{"S"}},
	{U, GlyphText{"U"}},
	{UFilled, GlyphText{"U"}},
	{X, OpenStroke{Shape: shape.Cross}},
	{XFilled, Polygon{shape.HeavyCross}},
	{A, GlyphText{"A"}},
	{AFilled, GlyphText{"A"}},
	{Greater, OpenStroke{Shape: directed(shape.Chevron, shape.Right)}},
	{GreaterFilled, Polygon{directed(shape.Triangle, shape.Right)}},
	{Less, OpenStroke{Shape: directed(shape.Chevron, shape.Left)}},
	{LessFilled, Polygon{directed(shape.Triangle, shape.Left)}},
	{LeftBracket, OpenStroke{Shape: directed(shape.Bracket, shape.Left)}},
	{LeftBracketFilled, OpenStroke{Shape: directed(shape.Bracket, shape.Left), Heavy: true}},
	{RightBracket, OpenStroke{Shape: directed(shape.Bracket, shape.Right)}},
	{RightBracketFilled, OpenStroke{Shape: directed(shape.Bracket, shape.Right), Heavy: true}},
	{Star, Polygon{shape.Star}},
	{StarFilled, Polygon{shape.Star}},
	{ArrowDownRight, OpenStroke{Shape: directed(shape.Arrow, shape.DownRight)}},
	{ArrowDownRightFilled, Polygon{directed(shape.BlockArrow, shape.DownRight)}},
	{ArrowDownLeft, OpenStroke{Shape: directed(shape.Arrow, shape.DownLeft)}},
	{ArrowDownLeftFilled, Polygon{directed(shape.BlockArrow, shape.DownLeft)}},
	{VT, GlyphText{"VT"}},
	{VTFilled, GlyphText{"VT"}},
}

var catalog [numIdentities]Strategy

func init() {
	for _, e := range entries {
		if !e.id.IsValid() || catalog[e.id] != nil {
			panic(fmt.Sprintf("symbol: bad catalog entry for %s", e.id))
		}
		catalog[e.id] = e.strategy
	}
	for id, s := range catalog {
		if s == nil {
			panic(fmt.Sprintf("symbol: no strategy for %s", Identity(id)))
		}
	}
}

// StrategyFor returns the rendering strategy for a symbol.
func StrategyFor(id Identity) (Strategy, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("symbol: %s: %w", id, ErrUnknownSymbol)
	}
	return catalog[id], nil
}
