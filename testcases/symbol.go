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
	"strings"
	"unicode"

	"seehuhn.de/go/audiogram/symbol"
)

const (
	symbolPage = 12.0 // page size for symbol tests, in mm
	symbolSize = 20.0 // symbol size, in points
)

// symbolCases has one test case for every symbol in the catalog, drawn in
// alternating colors.
var symbolCases = func() []TestCase {
	var res []TestCase
	for i, id := range symbol.All {
		res = append(res, TestCase{
			Name:   snakeCase(id.String()),
			Width:  symbolPage,
			Height: symbolPage,
			Item: Symbol{
				ID:     id,
				Origin: pt(2.5, 2.5),
				SizePt: symbolSize,
				Color:  symbol.Alternating(i),
			},
		})
	}
	return res
}()

// snakeCase converts a name like "ArrowDownLeft" into "arrow_down_left".
// Runs of capitals, like in "VTFilled", are kept together.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
