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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/symbol"
	"seehuhn.de/go/audiogram/textmetrics"
)

const testFont canvas.FontID = "test"

func newRecorder(t *testing.T) *canvas.Recorder {
	t.Helper()
	m, err := textmetrics.Load(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return &canvas.Recorder{
		Fonts: map[canvas.FontID]*textmetrics.GlyphMetrics{testFont: m},
	}
}

func TestDrawCaption(t *testing.T) {
	r := &canvas.Recorder{
		Fonts: map[canvas.FontID]*textmetrics.GlyphMetrics{
			testFont: {
				UnitsPerEm: 2048,
				Ascender:   1900,
				Descender:  -500,
				Advances: textmetrics.AdvanceMap{
					'J': 500, 'a': 600, 'n': 600, 'e': 550,
					' ': 300, 'D': 800, 'o': 600,
				},
			},
		},
	}
	box := rect.Rect{LLx: 65, LLy: 140, URx: 145, URy: 160}
	e, err := DrawCaption(r, testFont, "Jane Doe", 10, box)
	if err != nil {
		t.Fatal(err)
	}
	if e.Missing != 0 {
		t.Errorf("unexpected missing glyphs: %d", e.Missing)
	}
	if len(r.Ops) != 1 || r.Ops[0].Kind != canvas.OpText {
		t.Fatalf("expected a single text operation, got %v", r.Ops)
	}
	pos := r.Ops[0].Pos
	if math.Abs(pos.X-101.1) > 0.05 || math.Abs(pos.Y-148.8) > 0.05 {
		t.Errorf("caption placed at %v, expected (101.1, 148.8)", pos)
	}
}

func TestDrawCaptionErrors(t *testing.T) {
	r := newRecorder(t)
	box := rect.Rect{URx: 10, URy: 10}
	if _, err := DrawCaption(r, "missing", "x", 10, box); !errors.Is(err, canvas.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := DrawCaption(r, testFont, "x", size, box); !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("size %g: expected ErrInvalidFontSize, got %v", size, err)
		}
	}
	r.Fonts["broken"] = &textmetrics.GlyphMetrics{Advances: textmetrics.AdvanceMap{}}
	if _, err := DrawCaption(r, "broken", "x", 10, box); !errors.Is(err, textmetrics.ErrInvalidMetrics) {
		t.Errorf("expected ErrInvalidMetrics, got %v", err)
	}
	if len(r.Ops) != 0 {
		t.Error("failed captions were drawn")
	}
}

func TestSpecimenMissingFont(t *testing.T) {
	r := newRecorder(t)
	err := DrawSpecimen(r, "missing", nil)
	if !errors.Is(err, canvas.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
	if len(r.Ops) != 0 {
		t.Errorf("%d operations drawn before the error", len(r.Ops))
	}
}

func TestSpecimen(t *testing.T) {
	r := newRecorder(t)
	err := DrawSpecimen(r, testFont, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Ops) != 3+len(symbol.All) {
		t.Fatalf("expected %d operations, got %d", 3+len(symbol.All), len(r.Ops))
	}
	if r.Style() != (canvas.Style{}) {
		t.Errorf("style not restored: %v", r.Style())
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	pill := r.Ops[0].Path.Bounds()
	if d := cmp.Diff(rect.Rect{LLx: 65, LLy: 140, URx: 145, URy: 155}, pill, approx); d != "" {
		t.Errorf("pill bounds (-want +got):\n%s", d)
	}
	box := r.Ops[1].Path.Bounds()
	if d := cmp.Diff(rect.Rect{LLx: 65, LLy: 115, URx: 145, URy: 135}, box, approx); d != "" {
		t.Errorf("box bounds (-want +got):\n%s", d)
	}
	for _, op := range r.Ops[:2] {
		if op.Style.StrokeWidth != 1 {
			t.Errorf("outline drawn with width %g", op.Style.StrokeWidth)
		}
	}

	caption := r.Ops[2]
	if caption.Kind != canvas.OpText || caption.Text != "Jane Doe" || caption.SizePt != 10 {
		t.Fatalf("unexpected caption %v", caption)
	}
	e := textmetrics.Measure("Jane Doe", r.Fonts[testFont], 10)
	want := vec.Vec2{X: 65 + (80-e.Width)/2, Y: 115 + (20-e.Height)/2 + e.Descent}
	if d := cmp.Diff(want, caption.Pos, approx); d != "" {
		t.Errorf("caption position (-want +got):\n%s", d)
	}

	var red, blue int
	for i, op := range r.Ops[3:] {
		want := symbol.Alternating(i).RGB()
		if op.Style.Fill != want {
			t.Errorf("symbol %d has color %v", i, op.Style.Fill)
		}
		if op.Style.Fill == symbol.Red.RGB() {
			red++
		} else {
			blue++
		}
	}
	if red != 15 || blue != 15 {
		t.Errorf("expected 15 red and 15 blue symbols, got %d and %d", red, blue)
	}
}

func TestSpecimenOptions(t *testing.T) {
	r := newRecorder(t)
	opt := &SpecimenOptions{
		Caption:    "Max Mustermann",
		Symbols:    []symbol.Identity{symbol.Circle, symbol.XFilled},
		SymbolStep: 10,
	}
	if err := DrawSpecimen(r, testFont, opt); err != nil {
		t.Fatal(err)
	}
	if len(r.Ops) != 5 {
		t.Fatalf("expected 5 operations, got %d", len(r.Ops))
	}
	if r.Ops[2].Text != "Max Mustermann" {
		t.Errorf("unexpected caption %q", r.Ops[2].Text)
	}
	dx := r.Ops[4].Path.Bounds().LLx - r.Ops[3].Path.Bounds().LLx
	if dx < 9 || dx > 11 {
		t.Errorf("symbols %.2fmm apart, expected about 10mm", dx)
	}

	if err := DrawSpecimen(r, "missing", nil); !errors.Is(err, canvas.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
}
