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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/audiogram/shape"
)

// Stroke paints the outline of p, using the current line width, cap and
// join styles.  The coverage slice passed to emit is only valid during the
// call.
//
// The stroke is built as the union of one quadrilateral per segment
// together with the caps and joins.  All pieces are added with the same
// orientation, so that the nonzero rule fills their union.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	if !(r.Width > 0) {
		return
	}

	r.line = r.line[:0]
	segment := func(a, b vec.Vec2) {
		if len(r.line) == 0 {
			r.line = append(r.line, a)
		}
		if b != r.line[len(r.line)-1] {
			r.line = append(r.line, b)
		}
	}
	endSubpath := func(closed bool) {
		r.strokePolyline(r.line, closed)
		r.line = r.line[:0]
	}
	r.walk(p, segment, endSubpath)

	r.scan(integrateNonZero, emit)
}

func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	n := len(pts)
	if closed && n > 1 && pts[0] == pts[n-1] {
		n--
		pts = pts[:n]
	}
	switch {
	case n == 0:
		return
	case n == 1:
		// a dot, only visible with round or square caps
		r.addCap(pts[0], vec.Vec2{X: 1}, d)
		r.addCap(pts[0], vec.Vec2{X: -1}, d)
		return
	case n == 2:
		closed = false
	}

	numSegs := n - 1
	if closed {
		numSegs = n
	}
	for i := range numSegs {
		a, b := pts[i], pts[(i+1)%n]
		o := leftNormal(b.Sub(a).Normalize()).Mul(d)
		r.addPolygon(a.Add(o), b.Add(o), b.Sub(o), a.Sub(o))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		u1 := pts[i].Sub(prev).Normalize()
		u2 := next.Sub(pts[i]).Normalize()
		r.addJoin(pts[i], u1, u2, d)
	}

	if !closed {
		r.addCap(pts[0], pts[0].Sub(pts[1]).Normalize(), d)
		r.addCap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize(), d)
	}
}

// addJoin adds the join between a segment arriving at P in direction u1
// and a segment leaving P in direction u2.
func (r *Rasterizer) addJoin(P, u1, u2 vec.Vec2, d float64) {
	cross := u1.X*u2.Y - u1.Y*u2.X
	if math.Abs(cross) < 1e-9 && u1.Dot(u2) > 0 {
		return // collinear
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// offsets towards the outer side of the corner
	s := d
	if cross > 0 {
		s = -d
	}
	o1 := leftNormal(u1).Mul(s)
	o2 := leftNormal(u2).Mul(s)

	if r.Join == graphics.LineJoinMiter {
		c := o1.Dot(o2) / (d * d)
		if 1+c > 1e-12 && math.Sqrt(2/(1+c)) <= r.MiterLimit {
			tip := P.Add(o1.Add(o2).Mul(1 / (1 + c)))
			r.addPolygon(P, P.Add(o1), tip, P.Add(o2))
			return
		}
	}
	r.addPolygon(P, P.Add(o1), P.Add(o2))
}

// addCap adds the line cap at the end point P of an open subpath.  The
// vector u points away from the line.
func (r *Rasterizer) addCap(P, u vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		o := leftNormal(u).Mul(d)
		ext := u.Mul(d)
		r.addPolygon(P.Add(o), P.Add(o).Add(ext), P.Sub(o).Add(ext), P.Sub(o))
	}
}

// addCircle adds a disk of the given radius.  The outline uses the same
// four-arc construction as the circles drawn by package shape.
func (r *Rasterizer) addCircle(center vec.Vec2, radius float64) {
	r.poly = r.poly[:0]
	cur := shape.BottomRight.Start(center, radius)
	r.poly = append(r.poly, cur)
	for q := shape.BottomRight; q <= shape.BottomLeft; q++ {
		arc := shape.QuarterArc(center, radius, q)
		r.flattenCubic(cur, arc[0].Pt, arc[1].Pt, arc[2].Pt, func(_, b vec.Vec2) {
			r.poly = append(r.poly, b)
		})
		cur = arc[2].Pt
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds the edges of a closed polygon, oriented counter-clockwise
// in user space.  Degenerate polygons are ignored.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	n := len(pts)
	var area float64
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) < 1e-12 {
		return
	}
	if area > 0 {
		for i := range n {
			r.addEdge(pts[i], pts[(i+1)%n])
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			r.addEdge(pts[(i+1)%n], pts[i])
		}
	}
}

func leftNormal(u vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -u.Y, Y: u.X}
}
