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

// Grid returns the paths of a chart grid: the w×h boundary rectangle at
// origin, followed by cols-1 vertical and rows-1 horizontal lines which
// divide it into cols×rows equal cells.
func Grid(origin vec.Vec2, w, h float64, cols, rows int) ([]*Path, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("shape: grid: %d×%d cells: %w", cols, rows, ErrInvalidGeometry)
	}
	boundary, err := RoundedRect(origin, w, h, 0)
	if err != nil {
		return nil, err
	}

	res := make([]*Path, 0, cols+rows-1)
	res = append(res, boundary)
	for i := 1; i < cols; i++ {
		x := origin.X + float64(i)*w/float64(cols)
		res = append(res, line(pt(x, origin.Y), pt(x, origin.Y+h)))
	}
	for i := 1; i < rows; i++ {
		y := origin.Y + float64(i)*h/float64(rows)
		res = append(res, line(pt(origin.X, y), pt(origin.X+w, y)))
	}
	return res, nil
}

func line(a, b vec.Vec2) *Path {
	return &Path{
		Points: []PathPoint{{Pt: a}, {Pt: b}},
		Mode:   Stroke,
	}
}
