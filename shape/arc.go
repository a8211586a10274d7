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

// Kappa is the relative distance of the control points from the end points
// when approximating a quarter circle by a single cubic Bézier curve.  This
// value keeps the maximal radial error at about 0.02%.
const Kappa = 0.55191505

// Quadrant identifies one corner of a circle.  Arcs are always traversed
// counter-clockwise, so for example the BottomRight quadrant runs from the
// bottom of the circle to its right-most point.
type Quadrant int

// The four quadrants, in counter-clockwise order.
const (
	BottomRight Quadrant = iota
	TopRight
	TopLeft
	BottomLeft
)

func (q Quadrant) String() string {
	switch q {
	case BottomRight:
		return "bottom-right"
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// directions returns the unit vectors from the center to the start and to
// the end of the arc.
func (q Quadrant) directions() (start, end vec.Vec2) {
	switch q & 3 {
	case BottomRight:
		return vec.Vec2{X: 0, Y: -1}, vec.Vec2{X: 1, Y: 0}
	case TopRight:
		return vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}
	case TopLeft:
		return vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: -1, Y: 0}
	default: // BottomLeft
		return vec.Vec2{X: -1, Y: 0}, vec.Vec2{X: 0, Y: -1}
	}
}

// Start returns the point where the arc for quadrant q begins.
func (q Quadrant) Start(center vec.Vec2, r float64) vec.Vec2 {
	s, _ := q.directions()
	return center.Add(s.Mul(r))
}

// QuarterArc approximates a quarter circle of radius r around center by a
// cubic Bézier curve.  The result continues a path whose current point is
// q.Start(center, r): two control points followed by the end anchor.
//
// Both control points are at distance r*Kappa from the adjacent anchor,
// along the tangent of the circle.
func QuarterArc(center vec.Vec2, r float64, q Quadrant) [3]PathPoint {
	s, e := q.directions()
	start := center.Add(s.Mul(r))
	end := center.Add(e.Mul(r))
	k := r * Kappa
	return [3]PathPoint{
		{Pt: start.Add(e.Mul(k)), Control: true},
		{Pt: end.Add(s.Mul(k)), Control: true},
		{Pt: end},
	}
}
