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

// Package units converts between PDF points and millimetres.
//
// Page geometry in this module is given in millimetres, while font sizes
// and line widths are given in points (1/72 inch).
package units

// MmPerInch is the number of millimetres in one inch.
const MmPerInch = 25.4

// PtPerInch is the number of PDF points in one inch.
const PtPerInch = 72

// MmToPt converts a length in millimetres to PDF points.
func MmToPt(mm float64) float64 {
	return mm * PtPerInch / MmPerInch
}

// PtToMm converts a length in PDF points to millimetres.
func PtToMm(pt float64) float64 {
	return pt * MmPerInch / PtPerInch
}
