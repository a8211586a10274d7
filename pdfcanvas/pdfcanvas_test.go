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

package pdfcanvas

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/content"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/symbol"
)

const regular canvas.FontID = "regular"

func TestWritePage(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := Write(buf, 215.9, 279.4, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = c.RegisterFont(regular, goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	pill, err := shape.Capsule(vec.Vec2{X: 65, Y: 140}, 80, 15)
	if err != nil {
		t.Fatal(err)
	}
	c.SetStrokeWidth(0.5)
	c.AddPath(pill)

	err = symbol.RenderRow(c, regular, symbol.All, vec.Vec2{X: 65, Y: 90}, 6, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Style().StrokeWidth; got != 0.5 {
		t.Errorf("stroke width not restored: %g", got)
	}
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	err = c.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7")) {
		t.Error("output is not a PDF file")
	}

	if err := c.Close(); err == nil {
		t.Error("second Close succeeded")
	}
}

// strokeWidths returns the line width in effect for every stroking
// operator in the content stream.
func strokeWidths(stream content.Stream) []float64 {
	width := 1.0
	var res []float64
	for _, op := range stream {
		switch op.Name {
		case content.OpSetLineWidth:
			switch w := op.Args[0].(type) {
			case pdf.Number:
				width = float64(w)
			case pdf.Real:
				width = float64(w)
			case pdf.Integer:
				width = float64(w)
			}
		case content.OpStroke, content.OpFillAndStroke, "s", "b", "B*", "b*":
			res = append(res, width)
		}
	}
	return res
}

func TestSymbolStyleDoesNotLeak(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := Write(buf, 100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.RegisterFont(regular, goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if got := c.Style(); got != canvas.DefaultStyle {
		t.Errorf("initial style %v, expected %v", got, canvas.DefaultStyle)
	}

	box, err := shape.Square(vec.Vec2{X: 10, Y: 10}, 20)
	if err != nil {
		t.Fatal(err)
	}
	c.AddPath(box)
	err = symbol.Render(c, regular, symbol.Square, vec.Vec2{X: 50, Y: 50}, 10, symbol.Blue)
	if err != nil {
		t.Fatal(err)
	}
	c.AddPath(box)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	got := strokeWidths(c.page.Stream)
	want := []float64{1, 10 * symbol.StrokeRatio, 1}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("line widths (-want +got):\n%s", d)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestUnknownFont(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := Write(buf, 100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.FontMetrics("missing")
	if !errors.Is(err, canvas.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}

	c.AddText("hello", "missing", 10, vec.Vec2{X: 10, Y: 10})
	if !errors.Is(c.Err(), canvas.ErrUnknownFont) {
		t.Errorf("expected sticky ErrUnknownFont, got %v", c.Err())
	}
	if !errors.Is(c.Close(), canvas.ErrUnknownFont) {
		t.Error("Close did not report the drawing error")
	}
}

func TestFontMetrics(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := Write(buf, 100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.RegisterFont(regular, goregular.TTF); err != nil {
		t.Fatal(err)
	}
	m, err := c.FontMetrics(regular)
	if err != nil {
		t.Fatal(err)
	}
	if m.UnitsPerEm == 0 || m.Ascender <= 0 || m.Descender >= 0 {
		t.Errorf("implausible metrics: %+v", m)
	}

	if err := c.RegisterFont("bad", []byte("not a font")); err == nil {
		t.Error("garbage font was accepted")
	}
}
