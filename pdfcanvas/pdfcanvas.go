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

// Package pdfcanvas implements a drawing canvas which writes a single PDF
// page.
//
// Coordinates passed to the canvas are in millimetres and are converted to
// PDF points when the page content stream is written.  Fonts must be
// registered with [Canvas.RegisterFont] before they are used for text.
package pdfcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/textmetrics"
	"seehuhn.de/go/audiogram/units"
)

var errClosed = errors.New("pdfcanvas: canvas already closed")

// Canvas draws onto a PDF page.
//
// A Canvas is not safe for concurrent use.  Drawing errors are sticky:
// once an error has occurred, all further drawing operations are ignored
// and the error is reported by [Canvas.Err] and [Canvas.Close].
type Canvas struct {
	page  *document.Page
	fonts map[canvas.FontID]*pdfFont
	style canvas.Style
	err   error
}

type pdfFont struct {
	inst    *truetype.Instance
	metrics *textmetrics.GlyphMetrics
}

// Create writes a new single-page PDF file.  The page size is given in
// millimetres.
func Create(fileName string, widthMM, heightMM float64, opt *pdf.WriterOptions) (*Canvas, error) {
	page, err := document.CreateSinglePage(fileName, pageSize(widthMM, heightMM), pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}
	return New(page), nil
}

// Write writes a single-page PDF file to w.  The page size is given in
// millimetres.
func Write(w io.Writer, widthMM, heightMM float64, opt *pdf.WriterOptions) (*Canvas, error) {
	page, err := document.WriteSinglePage(w, pageSize(widthMM, heightMM), pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}
	return New(page), nil
}

func pageSize(widthMM, heightMM float64) *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: units.MmToPt(widthMM),
		URy: units.MmToPt(heightMM),
	}
}

// New returns a canvas which draws onto the given page.
// The page must still be in its initial graphics state, so that
// [canvas.DefaultStyle] describes it.
func New(page *document.Page) *Canvas {
	return &Canvas{
		page:  page,
		fonts: make(map[canvas.FontID]*pdfFont),
		style: canvas.DefaultStyle,
	}
}

// RegisterFont makes a TrueType font available under the given name.
func (c *Canvas) RegisterFont(id canvas.FontID, ttf []byte) error {
	info, err := sfnt.Read(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("pdfcanvas: font %q: %w", id, err)
	}
	inst, err := truetype.New(info, nil)
	if err != nil {
		return fmt.Errorf("pdfcanvas: font %q: %w", id, err)
	}
	m, err := textmetrics.FromFont(info)
	if err != nil {
		return fmt.Errorf("pdfcanvas: font %q: %w", id, err)
	}
	c.fonts[id] = &pdfFont{inst: inst, metrics: m}
	return nil
}

// AddPath implements the [canvas.Canvas] interface.
func (c *Canvas) AddPath(p *shape.Path) {
	if c.Err() != nil {
		return
	}
	if err := p.Validate(); err != nil {
		c.err = fmt.Errorf("pdfcanvas: %w", err)
		return
	}

	pts := p.Points
	for i := 0; i < len(pts); i++ {
		x, y := toPt(pts[i].Pt)
		switch {
		case i == 0:
			c.page.MoveTo(x, y)
		case pts[i].Control:
			x2, y2 := toPt(pts[i+1].Pt)
			x3, y3 := toPt(pts[i+2].Pt)
			c.page.CurveTo(x, y, x2, y2, x3, y3)
			i += 2
		default:
			c.page.LineTo(x, y)
		}
	}
	if p.Closed {
		c.page.ClosePath()
	}

	switch p.Mode {
	case shape.Fill:
		c.page.Fill()
	case shape.FillStroke:
		c.page.FillAndStroke()
	default:
		c.page.Stroke()
	}
}

// AddText implements the [canvas.Canvas] interface.
func (c *Canvas) AddText(text string, font canvas.FontID, sizePt float64, pos vec.Vec2) {
	if c.Err() != nil {
		return
	}
	F, ok := c.fonts[font]
	if !ok {
		c.err = fmt.Errorf("pdfcanvas: font %q: %w", font, canvas.ErrUnknownFont)
		return
	}

	x, y := toPt(pos)
	c.page.TextBegin()
	c.page.TextSetFont(F.inst, sizePt)
	c.page.TextFirstLine(x, y)
	c.page.TextShow(text)
	c.page.TextEnd()
}

// SetFillColor implements the [canvas.Canvas] interface.
func (c *Canvas) SetFillColor(col canvas.RGB) {
	c.style.Fill = col
	if c.Err() == nil {
		c.page.SetFillColor(color.DeviceRGB(col.R, col.G, col.B))
	}
}

// SetStrokeColor implements the [canvas.Canvas] interface.
func (c *Canvas) SetStrokeColor(col canvas.RGB) {
	c.style.Stroke = col
	if c.Err() == nil {
		c.page.SetStrokeColor(color.DeviceRGB(col.R, col.G, col.B))
	}
}

// SetStrokeWidth implements the [canvas.Canvas] interface.
func (c *Canvas) SetStrokeWidth(w float64) {
	c.style.StrokeWidth = w
	if c.Err() == nil {
		c.page.SetLineWidth(w)
	}
}

// Style implements the [canvas.Canvas] interface.
func (c *Canvas) Style() canvas.Style {
	return c.style
}

// FontMetrics implements the [canvas.Canvas] interface.
func (c *Canvas) FontMetrics(font canvas.FontID) (*textmetrics.GlyphMetrics, error) {
	F, ok := c.fonts[font]
	if !ok {
		return nil, fmt.Errorf("pdfcanvas: font %q: %w", font, canvas.ErrUnknownFont)
	}
	return F.metrics, nil
}

// Err returns the first error which occurred while drawing.
func (c *Canvas) Err() error {
	if c.err != nil {
		return c.err
	}
	if c.page.Builder == nil {
		return errClosed
	}
	return c.page.Err
}

// Close finishes the page and, for canvases created by [Create] or
// [Write], the PDF file.
func (c *Canvas) Close() error {
	if c.page.Builder == nil {
		return errClosed
	}
	err := c.page.Close()
	if c.err != nil {
		return c.err
	}
	return err
}

func toPt(p vec.Vec2) (float64, float64) {
	return units.MmToPt(p.X), units.MmToPt(p.Y)
}
