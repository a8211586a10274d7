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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasterizer converts paths to anti-aliased coverage values.  The coverage
// of a pixel is the fraction of its area covered by the painted region, in
// the range 0 to 1.  Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Strokes are only exact for
	// transformations which preserve angles.
	CTM matrix.Matrix

	// Clip limits the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, between a curve
	// and the polyline used to approximate it.
	Flatness float64

	// Width is the line width for strokes, in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two segments of a stroke meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the line
	// width.  Longer miters are drawn as bevels.
	MiterLimit float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	// scratch space for strokes
	line []vec.Vec2
	poly []vec.Vec2

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, using
// the PDF default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// edges with a smaller vertical extent do not contribute coverage
	horizontalEdgeThreshold = 1e-10
)

// FillNonZero fills p using the nonzero winding rule.  The coverage slice
// passed to emit is only valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.walk(p, r.addEdge, nil)
	r.scan(integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  The coverage slice passed
// to emit is only valid during the call.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.walk(p, r.addEdge, nil)
	r.scan(integrateEvenOdd, emit)
}

// walk traverses p, flattening curves.  Every line segment is passed to
// segment; closing segments are included.  If endSubpath is not nil, it is
// called at the end of every subpath.
func (r *Rasterizer) walk(p *path.Data, segment func(a, b vec.Vec2), endSubpath func(closed bool)) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && endSubpath != nil {
				endSubpath(false)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			open = true
			segment(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			open = true
			// degree elevation
			c := p.Coords[k]
			end := p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			r.flattenCubic(cur, c1, c2, end, segment)
			cur = end
			k += 2
		case path.CmdCubeTo:
			open = true
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], segment)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				segment(cur, start)
			}
			cur = start
			if endSubpath != nil {
				endSubpath(true)
			}
			open = false
		}
	}
	if open && endSubpath != nil {
		endSubpath(false)
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.  The
// number of segments is found using Wang's formula, with the tolerance
// measured in device space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, segment func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
		segment(prev, q)
		prev = q
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// device maps a point from user space to device space.
func (r *Rasterizer) device(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge adds the user space segment from a to b to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p := r.device(a)
	q := r.device(b)

	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = p.X, p.X
		r.bboxYMin, r.bboxYMax = p.Y, p.Y
		r.bboxEmpty = false
	}
	r.bboxXMin = min(r.bboxXMin, p.X, q.X)
	r.bboxXMax = max(r.bboxXMax, p.X, q.X)
	r.bboxYMin = min(r.bboxYMin, p.Y, q.Y)
	r.bboxYMax = max(r.bboxYMax, p.Y, q.Y)
}

// scan converts the current edge list into coverage values, one scanline
// at a time, using an active edge list.
func (r *Rasterizer) scan(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < top+1 {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed by x-xMin.  Contributions left of the
// buffer are folded into the first column.
//
// For every pixel, cover holds the signed height of the edge pieces inside
// the pixel column and area holds the same quantity weighted by the
// fraction of the pixel to the right of the piece.  Summing cover from the
// left and adding area gives the signed covered area of each pixel.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))
	if left >= xMax {
		return false
	}

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		if pix < xMin {
			cover[0] += c
			area[0] += c
			return
		}
		if pix >= xMax {
			return
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := xMid - float64(pix)
		cover[pix-xMin] += c
		area[pix-xMin] += c * float32(1-frac)
	}

	if left == right {
		add(left, top, bot)
		return true
	}

	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrateNonZero turns accumulated cover and area values into coverage
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover and area values into coverage
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips leading and trailing zeros.  If all values are zero,
// nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}
