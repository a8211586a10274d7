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

package symbol

import "fmt"

// Identity identifies one of the audiometric symbols.
//
// Every symbol exists in an unfilled and a filled variant.  The filled
// variant of a symbol immediately follows the unfilled one, so that
// Identity values can be converted to a base symbol and a filled flag
// by [Identity.Base] and [Identity.Filled].
type Identity int

// These are the symbols known to the catalog.
const (
	Square Identity = iota
	SquareFilled
	Triangle
	TriangleFilled
	Circle
	CircleFilled
	S
	SFilled
	U
	UFilled
	X
	XFilled
	A
	AFilled
	Greater
	GreaterFilled
	Less
	LessFilled
	LeftBracket
	LeftBracketFilled
	RightBracket
	RightBracketFilled
	Star
	StarFilled
	ArrowDownRight
	ArrowDownRightFilled
	ArrowDownLeft
	ArrowDownLeftFilled
	VT
	VTFilled

	numIdentities
)

// All lists every symbol identity, in catalog order.
var All = func() []Identity {
	res := make([]Identity, numIdentities)
	for i := range res {
		res[i] = Identity(i)
	}
	return res
}()

var identityNames = [numIdentities]string{
	"Square", "SquareFilled",
	"Triangle", "TriangleFilled",
	"Circle", "CircleFilled",
	"S", "SFilled",
	"U", "UFilled",
	"X", "XFilled",
	"A", "AFilled",
	"Greater", "GreaterFilled",
	"Less", "LessFilled",
	"LeftBracket", "LeftBracketFilled",
	"RightBracket", "RightBracketFilled",
	"Star", "StarFilled",
	"ArrowDownRight", "ArrowDownRightFilled",
	"ArrowDownLeft", "ArrowDownLeftFilled",
	"VT", "VTFilled",
}

// IsValid reports whether id is one of the defined symbols.
func (id Identity) IsValid() bool {
	return id >= 0 && id < numIdentities
}

func (id Identity) String() string {
	if !id.IsValid() {
		return fmt.Sprintf("Identity(%d)", int(id))
	}
	return identityNames[id]
}

// Base returns the unfilled variant of the symbol.
func (id Identity) Base() Identity {
	return id &^ 1
}

// Filled reports whether id is the filled variant of a symbol.
func (id Identity) Filled() bool {
	return id&1 != 0
}

// WithFill returns the filled or unfilled variant of the symbol.
func (id Identity) WithFill(filled bool) Identity {
	if filled {
		return id.Base() + 1
	}
	return id.Base()
}
