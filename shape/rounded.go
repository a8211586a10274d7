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

package shape

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// RoundedRect returns the outline of a w×h rectangle with lower-left corner
// origin, whose corners are rounded with radius r.  For r == 0 the result is
// a plain rectangle with four anchors.  The radius must satisfy
// 0 <= 2r <= min(w, h).  The path is closed and stroked.
func RoundedRect(origin vec.Vec2, w, h, r float64) (*Path, error) {
	if err := checkPositive("rounded rectangle", w, h); err != nil {
		return nil, err
	}
	if !(r >= 0) || 2*r > min(w, h) {
		return nil, fmt.Errorf("shape: rounded rectangle: radius %g outside [0, %g]: %w",
			r, min(w, h)/2, ErrInvalidGeometry)
	}

	x0, y0 := origin.X, origin.Y
	x1, y1 := x0+w, y0+h

	b := &builder{}
	if r == 0 {
		b.moveTo(pt(x0, y0))
		b.lineTo(pt(x1, y0))
		b.lineTo(pt(x1, y1))
		b.lineTo(pt(x0, y1))
		return b.path(true, Stroke), nil
	}

	b.moveTo(pt(x0+r, y0))
	b.lineTo(pt(x1-r, y0))
	b.arc(pt(x1-r, y0+r), r, BottomRight)
	b.lineTo(pt(x1, y1-r))
	b.arc(pt(x1-r, y1-r), r, TopRight)
	b.lineTo(pt(x0+r, y1))
	b.arc(pt(x0+r, y1-r), r, TopLeft)
	b.lineTo(pt(x0, y0+r))
	b.arc(pt(x0+r, y0+r), r, BottomLeft)
	return b.path(true, Stroke), nil
}

// Capsule returns a pill-shaped outline: a w×h rectangle whose left and
// right sides are replaced by half circles of radius h/2.  The width must be
// at least the height; for w == h the result is the same sequence of points
// as Circle(origin, h).  The path is closed and stroked.
func Capsule(origin vec.Vec2, w, h float64) (*Path, error) {
	if err := checkPositive("capsule", w, h); err != nil {
		return nil, err
	}
	if w < h {
		return nil, fmt.Errorf("shape: capsule: width %g less than height %g: %w",
			w, h, ErrInvalidGeometry)
	}

	r := h / 2
	x0, y0 := origin.X, origin.Y
	left := pt(x0+r, y0+r)
	right := left
	right.X += w - h

	b := &builder{}
	b.moveTo(pt(left.X, y0))
	b.lineTo(pt(right.X, y0))
	b.arc(right, r, BottomRight)
	b.arc(right, r, TopRight)
	b.lineTo(pt(left.X, y0+h))
	b.arc(left, r, TopLeft)
	b.arc(left, r, BottomLeft)
	return b.path(true, Stroke), nil
}

// Circle returns a circle of diameter d which touches the bottom and left
// sides of the d×d square with lower-left corner origin.  The path starts
// at the bottom of the circle, is closed and stroked.
func Circle(origin vec.Vec2, d float64) (*Path, error) {
	if err := checkPositive("circle", d); err != nil {
		return nil, err
	}

	r := d / 2
	center := pt(origin.X+r, origin.Y+r)

	b := &builder{}
	b.moveTo(BottomRight.Start(center, r))
	for _, q := range []Quadrant{BottomRight, TopRight, TopLeft, BottomLeft} {
		b.arc(center, r, q)
	}
	return b.path(true, Stroke), nil
}
