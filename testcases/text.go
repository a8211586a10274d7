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

import "seehuhn.de/go/geom/rect"

var captionBox = rect.Rect{LLx: 5, LLy: 5, URx: 85, URy: 25}

var textCases = []TestCase{
	{
		Name:   "caption",
		Width:  90,
		Height: 30,
		Item:   Caption{Text: "Jane Doe", SizePt: 10, Box: captionBox},
	},
	{
		Name:   "caption_large",
		Width:  90,
		Height: 30,
		Item:   Caption{Text: "Jane Doe", SizePt: 24, Box: captionBox},
	},
	{
		Name:   "caption_descenders",
		Width:  90,
		Height: 30,
		Item:   Caption{Text: "Hygienic typography", SizePt: 12, Box: captionBox},
	},
	{
		Name:   "caption_missing_glyph",
		Width:  90,
		Height: 30,
		Item:   Caption{Text: "Jane ☃ Doe", SizePt: 10, Box: captionBox},
	},
}
