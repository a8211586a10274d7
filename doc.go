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

// Package audiogram draws the vector elements of audiogram reports.
//
// The geometry of the individual elements is provided by the sub-packages:
// package shape builds rounded rectangles, capsules, circles and the
// polygons used for symbols, package symbol maps the audiometric symbols
// to drawing strategies, and package textmetrics measures captions from
// the glyph advances of a font.  All drawing goes through the
// [canvas.Canvas] interface, which is implemented for PDF output by package
// pdfcanvas and for image previews by package raster.
//
// This package combines the pieces: [DrawCaption] centers a caption inside
// a box, and [DrawSpecimen] draws a sample sheet with form fields, a
// caption and the complete symbol catalog.
package audiogram
