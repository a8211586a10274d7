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

package testcases

import (
	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/shape"
)

var outline = canvas.Style{StrokeWidth: 1}

var shapeCases = []TestCase{
	{
		Name:   "pill",
		Width:  90,
		Height: 25,
		Item: Shapes{
			Paths: []*shape.Path{must(shape.Capsule(pt(5, 5), 80, 15))},
			Style: outline,
		},
	},
	{
		Name:   "pill_circle",
		Width:  25,
		Height: 25,
		Item: Shapes{
			Paths: []*shape.Path{must(shape.Capsule(pt(5, 5), 15, 15))},
			Style: outline,
		},
	},
	{
		Name:   "rounded_rect",
		Width:  90,
		Height: 30,
		Item: Shapes{
			Paths: []*shape.Path{must(shape.RoundedRect(pt(5, 5), 80, 20, 4))},
			Style: outline,
		},
	},
	{
		Name:   "rounded_rect_sharp",
		Width:  90,
		Height: 30,
		Item: Shapes{
			Paths: []*shape.Path{must(shape.RoundedRect(pt(5, 5), 80, 20, 0))},
			Style: outline,
		},
	},
	{
		Name:   "rounded_rect_full",
		Width:  90,
		Height: 30,
		Item: Shapes{
			Paths: []*shape.Path{must(shape.RoundedRect(pt(5, 5), 80, 20, 10))},
			Style: outline,
		},
	},
	{
		Name:   "circle_filled",
		Width:  30,
		Height: 30,
		Item: Shapes{
			Paths: []*shape.Path{fill(must(shape.Circle(pt(5, 5), 20)))},
			Style: canvas.Style{Fill: canvas.RGB{B: 1}},
		},
	},
	{
		Name:   "star_filled",
		Width:  30,
		Height: 30,
		Item: Shapes{
			Paths: []*shape.Path{fill(must(shape.Star(pt(5, 5), 20)))},
			Style: canvas.Style{Fill: canvas.RGB{R: 1}},
		},
	},
	{
		Name:   "checkbox",
		Width:  20,
		Height: 20,
		Item: Shapes{
			Paths: checkbox(true),
			Style: canvas.Style{StrokeWidth: 0.75},
		},
	},
	{
		Name:   "checkbox_empty",
		Width:  20,
		Height: 20,
		Item: Shapes{
			Paths: checkbox(false),
			Style: canvas.Style{StrokeWidth: 0.75},
		},
	},
	{
		Name:   "grid",
		Width:  80,
		Height: 60,
		Item: Shapes{
			Paths: grid(),
			Style: canvas.Style{StrokeWidth: 0.5},
		},
	},
}

func fill(p *shape.Path) *shape.Path {
	p.Mode = shape.Fill
	return p
}

func checkbox(checked bool) []*shape.Path {
	paths, err := shape.Checkbox(pt(5, 5), 10, checked)
	if err != nil {
		panic(err)
	}
	return paths
}

func grid() []*shape.Path {
	paths, err := shape.Grid(pt(5, 5), 70, 50, 7, 5)
	if err != nil {
		panic(err)
	}
	return paths
}
