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

package canvas

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/shape"
)

var red = RGB{R: 1}

func TestWithStyleRestores(t *testing.T) {
	r := &Recorder{}
	before := Style{Fill: RGB{G: 0.5}, StrokeWidth: 0.25}
	SetStyle(r, before)

	s := Style{Fill: red, Stroke: red, StrokeWidth: 2}
	err := WithStyle(r, s, func() error {
		if got := r.Style(); got != s {
			t.Errorf("inside: expected %v, got %v", s, got)
		}
		r.AddText("x", "F", 10, vec.Vec2{})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Style(); got != before {
		t.Errorf("after: expected %v, got %v", before, got)
	}
	if len(r.Ops) != 1 || r.Ops[0].Style != s {
		t.Errorf("operation recorded with wrong style: %v", r.Ops)
	}
}

func TestWithStyleRestoresOnError(t *testing.T) {
	r := &Recorder{}
	errTest := errors.New("test")
	err := WithStyle(r, Style{Fill: red, StrokeWidth: 3}, func() error {
		return errTest
	})
	if err != errTest {
		t.Errorf("expected test error, got %v", err)
	}
	if got := r.Style(); got != (Style{}) {
		t.Errorf("style not restored: %v", got)
	}
}

func TestWithStyleRestoresOnPanic(t *testing.T) {
	r := &Recorder{}
	func() {
		defer func() { _ = recover() }()
		_ = WithStyle(r, Style{Stroke: red}, func() error {
			panic("boom")
		})
	}()
	if got := r.Style(); got != (Style{}) {
		t.Errorf("style not restored: %v", got)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	p, err := shape.Square(vec.Vec2{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	r.SetStrokeWidth(0.5)
	r.AddPath(p)
	r.AddText("VT", "sym", 10, vec.Vec2{X: 1, Y: 2})

	want := []Op{
		{Kind: OpPath, Style: Style{StrokeWidth: 0.5}, Path: p},
		{Kind: OpText, Style: Style{StrokeWidth: 0.5}, Text: "VT", Font: "sym", SizePt: 10, Pos: vec.Vec2{X: 1, Y: 2}},
	}
	if d := cmp.Diff(want, r.Ops); d != "" {
		t.Errorf("recorded operations differ (-want +got):\n%s", d)
	}

	if _, err := r.FontMetrics("sym"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}

	r.Reset()
	if len(r.Ops) != 0 || r.Style() != (Style{}) {
		t.Error("reset did not clear the recorder")
	}
}
