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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
)

const symFont canvas.FontID = "sym"

func TestCatalogIsTotal(t *testing.T) {
	if len(All) != 30 {
		t.Fatalf("expected 30 symbols, got %d", len(All))
	}
	for _, id := range All {
		s, err := StrategyFor(id)
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		switch s := s.(type) {
		case Polygon:
			if s.Shape == nil {
				t.Errorf("%s: polygon without shape", id)
			}
		case OpenStroke:
			if s.Shape == nil {
				t.Errorf("%s: open stroke without shape", id)
			}
		case GlyphText:
			if s.Text == "" {
				t.Errorf("%s: empty glyph text", id)
			}
		default:
			t.Errorf("%s: unexpected strategy %T", id, s)
		}
	}
}

func TestUnknownSymbol(t *testing.T) {
	for _, id := range []Identity{-1, numIdentities, 100} {
		_, err := StrategyFor(id)
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("%d: expected ErrUnknownSymbol, got %v", id, err)
		}
		r := &canvas.Recorder{}
		err = Render(r, symFont, id, vec.Vec2{}, 10, Red)
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("%d: expected ErrUnknownSymbol, got %v", id, err)
		}
		if len(r.Ops) != 0 {
			t.Errorf("%d: unexpected drawing operations", id)
		}
	}
}

func TestIdentity(t *testing.T) {
	if len(identityNames) != int(numIdentities) {
		t.Fatal("wrong number of identity names")
	}
	for _, id := range All {
		if id.Base().Filled() {
			t.Errorf("%s: base is filled", id)
		}
		if got := id.WithFill(true); !got.Filled() || got.Base() != id.Base() {
			t.Errorf("%s: wrong filled variant %s", id, got)
		}
		if got := id.WithFill(false); got != id.Base() {
			t.Errorf("%s: wrong unfilled variant %s", id, got)
		}
	}
	if StarFilled.Base() != Star || !VTFilled.Filled() || VT.Filled() {
		t.Error("unexpected filled/unfilled pairing")
	}
	if VTFilled.String() != "VTFilled" {
		t.Errorf("unexpected name %q", VTFilled.String())
	}
}

func TestStrategyKinds(t *testing.T) {
	type kind int
	const (
		poly kind = iota
		open
		text
	)
	cases := []struct {
		id   Identity
		want kind
	}{
		{Square, poly}, {SquareFilled, poly},
		{Circle, poly}, {CircleFilled, poly},
		{X, open}, {XFilled, poly},
		{Greater, open}, {GreaterFilled, poly},
		{Less, open}, {LessFilled, poly},
		{LeftBracket, open}, {RightBracketFilled, open},
		{ArrowDownLeft, open}, {ArrowDownRightFilled, poly},
		{S, text}, {UFilled, text}, {A, text}, {VTFilled, text},
	}
	for _, c := range cases {
		s, _ := StrategyFor(c.id)
		var got kind
		switch s.(type) {
		case Polygon:
			got = poly
		case OpenStroke:
			got = open
		case GlyphText:
			got = text
		}
		if got != c.want {
			t.Errorf("%s: unexpected strategy %T", c.id, s)
		}
	}
}

func TestColorAlternation(t *testing.T) {
	r := &canvas.Recorder{}
	origin := vec.Vec2{X: 65, Y: 90}
	err := RenderRow(r, symFont, All, origin, 6, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Ops) != len(All) {
		t.Fatalf("expected %d operations, got %d", len(All), len(r.Ops))
	}

	var nRed, nBlue int
	for i, op := range r.Ops {
		want := Alternating(i).RGB()
		if op.Style.Fill != want || op.Style.Stroke != want {
			t.Errorf("symbol %d (%s): wrong color %v", i, All[i], op.Style.Fill)
		}
		switch op.Style.Fill {
		case Red.RGB():
			nRed++
		case Blue.RGB():
			nBlue++
		}
	}
	if nRed != 15 || nBlue != 15 {
		t.Errorf("expected 15 red and 15 blue symbols, got %d and %d", nRed, nBlue)
	}

	// order is preserved: symbols advance from left to right
	for i, op := range r.Ops {
		var x float64
		switch op.Kind {
		case canvas.OpText:
			x = op.Pos.X
		case canvas.OpPath:
			x = op.Path.Bounds().LLx
		}
		lo := origin.X + 6*float64(i) - 1e-9
		if x < lo || x > lo+6 {
			t.Errorf("symbol %d (%s) at x=%g, outside its slot", i, All[i], x)
		}
	}
}

func TestStyleRestored(t *testing.T) {
	r := &canvas.Recorder{}
	before := canvas.Style{Fill: canvas.RGB{G: 1}, Stroke: canvas.RGB{R: 0.5}, StrokeWidth: 0.3}
	canvas.SetStyle(r, before)
	for _, id := range All {
		err := Render(r, symFont, id, vec.Vec2{}, 12, Blue)
		if err != nil {
			t.Fatal(err)
		}
		if got := r.Style(); got != before {
			t.Errorf("%s: style not restored: %v", id, got)
		}
	}
}

func TestPaintModeAndWidth(t *testing.T) {
	const size = 10.0
	for _, id := range All {
		r := &canvas.Recorder{}
		if err := Render(r, symFont, id, vec.Vec2{X: 5, Y: 7}, size, Red); err != nil {
			t.Fatal(err)
		}
		if len(r.Ops) != 1 {
			t.Fatalf("%s: expected one operation, got %d", id, len(r.Ops))
		}
		op := r.Ops[0]

		s, _ := StrategyFor(id)
		switch s := s.(type) {
		case GlyphText:
			if op.Kind != canvas.OpText || op.Text != s.Text {
				t.Errorf("%s: expected text %q, got %v", id, s.Text, op)
			}
			if op.Pos != (vec.Vec2{X: 5, Y: 7}) || op.SizePt != size || op.Font != symFont {
				t.Errorf("%s: wrong text placement %v", id, op)
			}
		case Polygon:
			want := shape.Stroke
			if id.Filled() {
				want = shape.FillStroke
			}
			if op.Kind != canvas.OpPath || op.Path.Mode != want || !op.Path.Closed {
				t.Errorf("%s: wrong path %v", id, op.Path)
			}
			if math.Abs(op.Style.StrokeWidth-size*StrokeRatio) > 1e-12 {
				t.Errorf("%s: wrong stroke width %g", id, op.Style.StrokeWidth)
			}
		case OpenStroke:
			if op.Kind != canvas.OpPath || op.Path.Mode != shape.Stroke || op.Path.Closed {
				t.Errorf("%s: wrong path %v", id, op.Path)
			}
			want := size * StrokeRatio
			if s.Heavy {
				want *= 2
			}
			if math.Abs(op.Style.StrokeWidth-want) > 1e-12 {
				t.Errorf("%s: wrong stroke width %g", id, op.Style.StrokeWidth)
			}
		}
		if op.Kind == canvas.OpPath {
			if err := op.Path.Validate(); err != nil {
				t.Errorf("%s: %v", id, err)
			}
		}
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		r := &canvas.Recorder{}
		err := Render(r, symFont, Circle, vec.Vec2{}, size, Red)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %g: expected ErrInvalidSize, got %v", size, err)
		}
		if len(r.Ops) != 0 || r.StyleChanges != 0 {
			t.Errorf("size %g: canvas was modified", size)
		}
	}
}

func TestRenderLegend(t *testing.T) {
	r := &canvas.Recorder{}
	before := canvas.Style{Fill: canvas.RGB{G: 1}, StrokeWidth: 0.3}
	canvas.SetStyle(r, before)

	origin := vec.Vec2{X: 20, Y: 40}
	err := RenderLegend(r, symFont, Circle, origin, 10, Red, "Air conduction", 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Ops) != 2 {
		t.Fatalf("expected two operations, got %d", len(r.Ops))
	}
	if r.Ops[0].Kind != canvas.OpPath || r.Ops[0].Style.Stroke != Red.RGB() {
		t.Errorf("unexpected symbol operation %v", r.Ops[0])
	}
	label := r.Ops[1]
	if label.Kind != canvas.OpText || label.Text != "Air conduction" || label.SizePt != 8 {
		t.Errorf("unexpected label operation %v", label)
	}
	if label.Pos != (vec.Vec2{X: 20 + LegendGap, Y: 40}) {
		t.Errorf("label at %v", label.Pos)
	}
	if label.Style.Fill != canvas.Black {
		t.Errorf("label color %v, expected black", label.Style.Fill)
	}
	if got := r.Style(); got != before {
		t.Errorf("style not restored: %v", got)
	}

	err = RenderLegend(r, symFont, Circle, origin, 10, Red, "x", 0)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}
