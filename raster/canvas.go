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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/textmetrics"
	"seehuhn.de/go/audiogram/units"
)

// Canvas paints onto an RGB image.  Page coordinates are in millimetres,
// with the origin in the lower-left corner of the image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Image holds the rendered page.
	Image *image.RGBA

	dpi   float64
	scale float64 // pixels per millimetre
	r     *Rasterizer
	fonts map[canvas.FontID]*rasterFont
	style canvas.Style
	err   error
}

type rasterFont struct {
	otf     *opentype.Font
	metrics *textmetrics.GlyphMetrics
	faces   map[float64]font.Face
}

// NewCanvas allocates a white page of the given size in millimetres, at
// the given resolution in pixels per inch.  The style registers start out
// as [canvas.DefaultStyle].
func NewCanvas(widthMM, heightMM, dpi float64) *Canvas {
	scale := dpi / units.MmPerInch
	w := int(math.Ceil(widthMM * scale))
	h := int(math.Ceil(heightMM * scale))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Matrix{scale, 0, 0, -scale, 0, float64(h)}

	return &Canvas{
		Image: img,
		dpi:   dpi,
		scale: scale,
		r:     r,
		fonts: make(map[canvas.FontID]*rasterFont),
		style: canvas.DefaultStyle,
	}
}

// RegisterFont makes a TrueType or OpenType font available under the given
// name.
func (c *Canvas) RegisterFont(id canvas.FontID, ttf []byte) error {
	otf, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("raster: font %q: %w", id, err)
	}
	m, err := textmetrics.Load(ttf)
	if err != nil {
		return fmt.Errorf("raster: font %q: %w", id, err)
	}
	c.fonts[id] = &rasterFont{
		otf:     otf,
		metrics: m,
		faces:   make(map[float64]font.Face),
	}
	return nil
}

// AddPath implements the [canvas.Canvas] interface.
func (c *Canvas) AddPath(p *shape.Path) {
	if c.err != nil {
		return
	}
	if err := p.Validate(); err != nil {
		c.err = fmt.Errorf("raster: %w", err)
		return
	}

	data := p.Data()
	if p.Mode == shape.Fill || p.Mode == shape.FillStroke {
		c.r.FillNonZero(data, c.painter(c.style.Fill))
	}
	if p.Mode == shape.Stroke || p.Mode == shape.FillStroke {
		// zero width means the thinnest visible line
		c.r.Width = max(units.PtToMm(c.style.StrokeWidth), 1/c.scale)
		c.r.Stroke(data, c.painter(c.style.Stroke))
	}
}

// AddText implements the [canvas.Canvas] interface.
func (c *Canvas) AddText(text string, id canvas.FontID, sizePt float64, pos vec.Vec2) {
	if c.err != nil {
		return
	}
	F, ok := c.fonts[id]
	if !ok {
		c.err = fmt.Errorf("raster: font %q: %w", id, canvas.ErrUnknownFont)
		return
	}
	face, ok := F.faces[sizePt]
	if !ok {
		var err error
		face, err = opentype.NewFace(F.otf, &opentype.FaceOptions{
			Size:    sizePt,
			DPI:     c.dpi,
			Hinting: font.HintingNone,
		})
		if err != nil {
			c.err = fmt.Errorf("raster: font %q: %w", id, err)
			return
		}
		F.faces[sizePt] = face
	}

	dev := c.r.device(pos)
	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(toRGBA(c.style.Fill)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(dev.X * 64)),
			Y: fixed.Int26_6(math.Round(dev.Y * 64)),
		},
	}
	d.DrawString(text)
}

// SetFillColor implements the [canvas.Canvas] interface.
func (c *Canvas) SetFillColor(col canvas.RGB) {
	c.style.Fill = col
}

// SetStrokeColor implements the [canvas.Canvas] interface.
func (c *Canvas) SetStrokeColor(col canvas.RGB) {
	c.style.Stroke = col
}

// SetStrokeWidth implements the [canvas.Canvas] interface.
func (c *Canvas) SetStrokeWidth(w float64) {
	c.style.StrokeWidth = w
}

// Style implements the [canvas.Canvas] interface.
func (c *Canvas) Style() canvas.Style {
	return c.style
}

// FontMetrics implements the [canvas.Canvas] interface.
func (c *Canvas) FontMetrics(id canvas.FontID) (*textmetrics.GlyphMetrics, error) {
	F, ok := c.fonts[id]
	if !ok {
		return nil, fmt.Errorf("raster: font %q: %w", id, canvas.ErrUnknownFont)
	}
	return F.metrics, nil
}

// Err returns the first error which occurred while drawing.
func (c *Canvas) Err() error {
	return c.err
}

// WritePNG encodes the page as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return png.Encode(w, c.Image)
}

// painter returns an emit function which blends col into the image,
// using the coverage values as alpha.
func (c *Canvas) painter(col canvas.RGB) func(y, xMin int, coverage []float32) {
	src := [3]float32{
		float32(clamp01(col.R)) * 255,
		float32(clamp01(col.G)) * 255,
		float32(clamp01(col.B)) * 255,
	}
	return func(y, xMin int, coverage []float32) {
		i := c.Image.PixOffset(xMin, y)
		for _, a := range coverage {
			px := c.Image.Pix[i : i+4 : i+4]
			for k := range 3 {
				dst := float32(px[k])
				px[k] = uint8(dst + (src[k]-dst)*a + 0.5)
			}
			px[3] = 0xFF
			i += 4
		}
	}
}

func toRGBA(col canvas.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(col.R)*255 + 0.5),
		G: uint8(clamp01(col.G)*255 + 0.5),
		B: uint8(clamp01(col.B)*255 + 0.5),
		A: 0xFF,
	}
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
