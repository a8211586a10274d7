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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Direction gives the orientation of an asymmetric shape.
type Direction int

// These are the supported directions.
const (
	Up Direction = iota
	Down
	Left
	Right
	DownLeft
	DownRight
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// vector returns the (not normalized) direction vector for d.
func (d Direction) vector() (vec.Vec2, bool) {
	switch d {
	case Up:
		return vec.Vec2{X: 0, Y: 1}, true
	case Down:
		return vec.Vec2{X: 0, Y: -1}, true
	case Left:
		return vec.Vec2{X: -1, Y: 0}, true
	case Right:
		return vec.Vec2{X: 1, Y: 0}, true
	case DownLeft:
		return vec.Vec2{X: -1, Y: -1}, true
	case DownRight:
		return vec.Vec2{X: 1, Y: -1}, true
	default:
		return vec.Vec2{}, false
	}
}

// starInnerRatio is the ratio of inner to outer radius of a regular
// five-pointed star.
const starInnerRatio = 0.381966

// polygon builds a path through the given points, which are relative to
// the lower-left corner of a size×size box at origin and given in units of
// size.
func polygon(origin vec.Vec2, size float64, closed bool, coords ...float64) *Path {
	b := &builder{}
	for i := 0; i+1 < len(coords); i += 2 {
		p := pt(origin.X+coords[i]*size, origin.Y+coords[i+1]*size)
		if i == 0 {
			b.moveTo(p)
		} else {
			b.pts = append(b.pts, PathPoint{Pt: p})
		}
	}
	return b.path(closed, Stroke)
}

// Square returns the outline of the size×size square at origin.
func Square(origin vec.Vec2, size float64) (*Path, error) {
	if err := checkPositive("square", size); err != nil {
		return nil, err
	}
	return polygon(origin, size, true, 0, 0, 1, 0, 1, 1, 0, 1), nil
}

// Triangle returns a triangle filling the size×size box at origin, with
// its apex pointing in direction dir (Up, Down, Left or Right).
func Triangle(origin vec.Vec2, size float64, dir Direction) (*Path, error) {
	if err := checkPositive("triangle", size); err != nil {
		return nil, err
	}
	switch dir {
	case Up:
		return polygon(origin, size, true, 0, 0, 1, 0, 0.5, 1), nil
	case Down:
		return polygon(origin, size, true, 0, 1, 0.5, 0, 1, 1), nil
	case Left:
		return polygon(origin, size, true, 1, 0, 1, 1, 0, 0.5), nil
	case Right:
		return polygon(origin, size, true, 0, 0, 1, 0.5, 0, 1), nil
	}
	return nil, fmt.Errorf("shape: triangle: unsupported direction %s: %w", dir, ErrInvalidGeometry)
}

// Chevron returns an open angle bracket, like the characters "<" and ">",
// with the tip pointing in direction dir (Up, Down, Left or Right).
func Chevron(origin vec.Vec2, size float64, dir Direction) (*Path, error) {
	if err := checkPositive("chevron", size); err != nil {
		return nil, err
	}
	switch dir {
	case Up:
		return polygon(origin, size, false, 0, 0.25, 0.5, 0.75, 1, 0.25), nil
	case Down:
		return polygon(origin, size, false, 0, 0.75, 0.5, 0.25, 1, 0.75), nil
	case Left:
		return polygon(origin, size, false, 0.75, 1, 0.25, 0.5, 0.75, 0), nil
	case Right:
		return polygon(origin, size, false, 0.25, 1, 0.75, 0.5, 0.25, 0), nil
	}
	return nil, fmt.Errorf("shape: chevron: unsupported direction %s: %w", dir, ErrInvalidGeometry)
}

// Bracket returns an open square bracket.  Side Left gives "[" and side
// Right gives "]".
func Bracket(origin vec.Vec2, size float64, side Direction) (*Path, error) {
	if err := checkPositive("bracket", size); err != nil {
		return nil, err
	}
	switch side {
	case Left:
		return polygon(origin, size, false, 0.625, 1, 0.375, 1, 0.375, 0, 0.625, 0), nil
	case Right:
		return polygon(origin, size, false, 0.375, 1, 0.625, 1, 0.625, 0, 0.375, 0), nil
	}
	return nil, fmt.Errorf("shape: bracket: unsupported side %s: %w", side, ErrInvalidGeometry)
}

// Star returns the outline of a five-pointed star inscribed in the circle
// of diameter size, with one point up.  The outline has ten vertices and
// does not intersect itself.
func Star(origin vec.Vec2, size float64) (*Path, error) {
	if err := checkPositive("star", size); err != nil {
		return nil, err
	}
	R := size / 2
	center := pt(origin.X+R, origin.Y+R)
	b := &builder{}
	for i := range 10 {
		r := R
		if i%2 == 1 {
			r = R * starInnerRatio
		}
		phi := math.Pi/2 + float64(i)*math.Pi/5
		p := pt(center.X+r*math.Cos(phi), center.Y+r*math.Sin(phi))
		if i == 0 {
			b.moveTo(p)
		} else {
			b.lineTo(p)
		}
	}
	return b.path(true, Stroke), nil
}

// Cross returns the two diagonals of the size×size box at origin, as a
// single open path.  The path passes through the center twice.
func Cross(origin vec.Vec2, size float64) (*Path, error) {
	if err := checkPositive("cross", size); err != nil {
		return nil, err
	}
	return polygon(origin, size, false, 0, 0, 1, 1, 0.5, 0.5, 0, 1, 1, 0), nil
}

// HeavyCross returns the outline of a bold diagonal cross, like the
// character "✖", fitting into the size×size box at origin.
func HeavyCross(origin vec.Vec2, size float64) (*Path, error) {
	if err := checkPositive("heavy cross", size); err != nil {
		return nil, err
	}

	// Build a plus sign and rotate it by 45 degrees.
	t := size / 10           // half the stroke thickness
	a := size/math.Sqrt2 - t // reach of the arms
	plus := []float64{
		t, a, t, t, a, t, a, -t, t, -t, t, -a,
		-t, -a, -t, -t, -a, -t, -a, t, -t, t, -t, a,
	}
	cx, cy := origin.X+size/2, origin.Y+size/2
	b := &builder{}
	for i := 0; i < len(plus); i += 2 {
		x, y := plus[i], plus[i+1]
		p := pt(cx+(x-y)/math.Sqrt2, cy+(x+y)/math.Sqrt2)
		if i == 0 {
			b.moveTo(p)
		} else {
			b.lineTo(p)
		}
	}
	return b.path(true, Stroke), nil
}

// arrowGeometry computes the key points of an arrow in direction dir,
// centered in the size×size box at origin.
func arrowGeometry(origin vec.Vec2, size float64, dir Direction) (tail, tip, base, n vec.Vec2, err error) {
	d, ok := dir.vector()
	if !ok {
		err = fmt.Errorf("shape: arrow: unsupported direction %s: %w", dir, ErrInvalidGeometry)
		return
	}
	center := pt(origin.X+size/2, origin.Y+size/2)
	tip = center.Add(d.Mul(0.35 * size))
	tail = center.Sub(d.Mul(0.35 * size))
	u := tip.Sub(tail).Normalize()
	base = tip.Sub(u.Mul(0.3 * size))
	n = u.Rot90()
	return
}

// Arrow returns an open arrow pointing in direction dir: the shaft and the
// two strokes of the arrow head, traced as one path.
func Arrow(origin vec.Vec2, size float64, dir Direction) (*Path, error) {
	if err := checkPositive("arrow", size); err != nil {
		return nil, err
	}
	tail, tip, base, n, err := arrowGeometry(origin, size, dir)
	if err != nil {
		return nil, err
	}
	w := 0.18 * size
	b := &builder{}
	b.moveTo(tail)
	b.lineTo(tip)
	b.lineTo(base.Add(n.Mul(w)))
	b.lineTo(tip)
	b.lineTo(base.Sub(n.Mul(w)))
	return b.path(false, Stroke), nil
}

// BlockArrow returns the closed outline of a solid arrow pointing in
// direction dir.
func BlockArrow(origin vec.Vec2, size float64, dir Direction) (*Path, error) {
	if err := checkPositive("block arrow", size); err != nil {
		return nil, err
	}
	tail, tip, base, n, err := arrowGeometry(origin, size, dir)
	if err != nil {
		return nil, err
	}
	shaft := 0.07 * size
	head := 0.18 * size
	b := &builder{}
	b.moveTo(tail.Add(n.Mul(shaft)))
	b.lineTo(base.Add(n.Mul(shaft)))
	b.lineTo(base.Add(n.Mul(head)))
	b.lineTo(tip)
	b.lineTo(base.Sub(n.Mul(head)))
	b.lineTo(base.Sub(n.Mul(shaft)))
	b.lineTo(tail.Sub(n.Mul(shaft)))
	return b.path(true, Stroke), nil
}

// Checkbox returns the paths for a form checkbox: the square outline and,
// if checked is set, a cross inside the box.
func Checkbox(origin vec.Vec2, size float64, checked bool) ([]*Path, error) {
	box, err := Square(origin, size)
	if err != nil {
		return nil, err
	}
	res := []*Path{box}
	if checked {
		x, err := Cross(origin, size)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}
