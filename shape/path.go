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

// Package shape synthesizes the vector outlines used on audiogram forms.
//
// All coordinates are in millimetres, with the y-axis pointing up.  Rounded
// outlines are built from cubic Bézier quarter arcs, see [QuarterArc].
// The functions in this package are pure: they return a [Path] which the
// caller hands to a canvas for painting.
package shape

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidGeometry is returned (wrapped) when a shape is requested with
// parameters which do not describe a valid outline, for example a corner
// radius larger than half the rectangle height.
var ErrInvalidGeometry = errors.New("invalid geometry")

// PaintMode describes how a path is painted.
type PaintMode int

// These are the supported paint modes.
const (
	Stroke PaintMode = iota
	Fill
	FillStroke
)

func (m PaintMode) String() string {
	switch m {
	case Stroke:
		return "stroke"
	case Fill:
		return "fill"
	case FillStroke:
		return "fill+stroke"
	default:
		return fmt.Sprintf("PaintMode(%d)", int(m))
	}
}

// PathPoint is a point on a path.
// Control is true for off-curve Bézier control points.
type PathPoint struct {
	Pt      vec.Vec2
	Control bool
}

// Path is a single subpath together with the information how to paint it.
//
// The first point is an anchor.  A cubic Bézier segment is encoded as two
// control points followed by the anchor where the segment ends.  All other
// anchors are connected by straight lines.
type Path struct {
	Points []PathPoint
	Closed bool
	Mode   PaintMode
}

// Validate checks the structural invariants of the path.
func (p *Path) Validate() error {
	if len(p.Points) == 0 {
		return fmt.Errorf("shape: empty path: %w", ErrInvalidGeometry)
	}
	if p.Points[0].Control {
		return fmt.Errorf("shape: path starts with a control point: %w", ErrInvalidGeometry)
	}
	for i := 1; i < len(p.Points); i++ {
		if !p.Points[i].Control {
			continue
		}
		if i+2 >= len(p.Points) || !p.Points[i+1].Control || p.Points[i+2].Control {
			return fmt.Errorf("shape: malformed curve segment at point %d: %w", i, ErrInvalidGeometry)
		}
		i += 2
	}
	if p.Mode != Stroke && !p.Closed {
		return fmt.Errorf("shape: cannot %s an open path: %w", p.Mode, ErrInvalidGeometry)
	}
	return nil
}

// Anchors returns the on-curve points of the path, in order.
func (p *Path) Anchors() []vec.Vec2 {
	var res []vec.Vec2
	for _, q := range p.Points {
		if !q.Control {
			res = append(res, q.Pt)
		}
	}
	return res
}

// Bounds returns the bounding box of all points, including control points.
// For the shapes constructed in this package the control points never lie
// outside the outline, so this is the tight bounding box.
func (p *Path) Bounds() rect.Rect {
	if len(p.Points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, q := range p.Points {
		b.LLx = min(b.LLx, q.Pt.X)
		b.LLy = min(b.LLy, q.Pt.Y)
		b.URx = max(b.URx, q.Pt.X)
		b.URy = max(b.URy, q.Pt.Y)
	}
	return b
}

// Data converts the path into the representation used by
// seehuhn.de/go/geom.  The path must be valid.
func (p *Path) Data() *path.Data {
	res := &path.Data{}
	if len(p.Points) == 0 {
		return res
	}
	res.MoveTo(p.Points[0].Pt)
	for i := 1; i < len(p.Points); i++ {
		q := p.Points[i]
		if q.Control {
			res.CubeTo(q.Pt, p.Points[i+1].Pt, p.Points[i+2].Pt)
			i += 2
		} else {
			res.LineTo(q.Pt)
		}
	}
	if p.Closed {
		res.Close()
	}
	return res
}

// samePoint reports whether two anchors coincide, up to rounding.
func samePoint(a, b vec.Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// builder accumulates the points of a path.
type builder struct {
	pts []PathPoint
}

func (b *builder) moveTo(p vec.Vec2) {
	b.pts = append(b.pts, PathPoint{Pt: p})
}

// lineTo adds a straight edge.  Zero-length edges are dropped.
func (b *builder) lineTo(p vec.Vec2) {
	if n := len(b.pts); n > 0 && samePoint(b.pts[n-1].Pt, p) {
		return
	}
	b.pts = append(b.pts, PathPoint{Pt: p})
}

// arc turns the corner q of a circle with the given center and radius.
// The current point must be the start of the arc.
func (b *builder) arc(center vec.Vec2, r float64, q Quadrant) {
	seg := QuarterArc(center, r, q)
	b.pts = append(b.pts, seg[:]...)
}

func (b *builder) path(closed bool, mode PaintMode) *Path {
	return &Path{Points: b.pts, Closed: closed, Mode: mode}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// checkPositive returns an error unless all values are finite and positive.
func checkPositive(shape string, vals ...float64) error {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("shape: %s: size %g must be positive: %w",
				shape, v, ErrInvalidGeometry)
		}
	}
	return nil
}
