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

// Package textmetrics computes the extent of a text caption from the glyph
// advance widths of a font, so that text can be centered exactly inside a
// box.
//
// Widths are computed on a best-effort basis: characters which the font
// cannot display contribute no width.  [Extent.Missing] counts these
// characters, so that callers who need exact widths can detect the
// situation.
package textmetrics

import (
	"errors"
	"math"
	"unicode/utf8"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/units"
)

// AdvanceTable maps characters to horizontal glyph advances, in font
// design units.  The second return value is false if the font has no glyph
// for r.
type AdvanceTable interface {
	Advance(r rune) (float64, bool)
}

// AdvanceMap is an AdvanceTable stored in memory.
type AdvanceMap map[rune]float64

// Advance implements the [AdvanceTable] interface.
func (m AdvanceMap) Advance(r rune) (float64, bool) {
	w, ok := m[r]
	return w, ok
}

// AdvanceFunc adapts an ordinary function to the [AdvanceTable] interface.
type AdvanceFunc func(r rune) (float64, bool)

// Advance implements the [AdvanceTable] interface.
func (f AdvanceFunc) Advance(r rune) (float64, bool) {
	return f(r)
}

// ErrInvalidMetrics is returned for glyph metrics which cannot be used to
// measure text.
var ErrInvalidMetrics = errors.New("invalid glyph metrics")

// GlyphMetrics describes the horizontal metrics of a font.
// All values are in font design units.
type GlyphMetrics struct {
	UnitsPerEm float64
	Ascender   float64
	Descender  float64 // negative
	Advances   AdvanceTable
}

// Check returns [ErrInvalidMetrics] unless UnitsPerEm is positive and
// finite and an advance table is present.
func (m *GlyphMetrics) Check() error {
	if !(m.UnitsPerEm > 0) || math.IsInf(m.UnitsPerEm, 0) || m.Advances == nil {
		return ErrInvalidMetrics
	}
	return nil
}

// Width returns the sum of the glyph advances of all characters in s, in
// design units, together with the number of characters not present in the
// font.
func (m *GlyphMetrics) Width(s string) (width float64, missing int) {
	for _, r := range s {
		w, ok := m.Advances.Advance(r)
		if !ok {
			missing++
			continue
		}
		width += w
	}
	return width, missing
}

// Extent is the size of a caption, in millimetres.
type Extent struct {
	Width   float64 // sum of the glyph advances
	Height  float64 // ascender minus descender
	Descent float64 // distance of the descender below the baseline (positive)

	// Missing is the number of characters not found in the font.
	// These characters contribute zero width.
	Missing int
}

// Measure computes the extent of caption when set in a font with metrics m
// at the given size (in points).  The height does not depend on the
// caption, so the result has a non-zero height even for empty captions.
//
// If m fails [GlyphMetrics.Check], all characters count as missing and the
// extent is zero.
func Measure(caption string, m *GlyphMetrics, sizePt float64) Extent {
	if m.Check() != nil {
		return Extent{Missing: utf8.RuneCountInString(caption)}
	}
	w, missing := m.Width(caption)
	scale := sizePt / m.UnitsPerEm
	return Extent{
		Width:   units.PtToMm(w * scale),
		Height:  units.PtToMm((m.Ascender - m.Descender) * scale),
		Descent: units.PtToMm(-m.Descender * scale),
		Missing: missing,
	}
}

// Center returns the baseline origin which centers text of extent e inside
// box.  Vertically, the box between descender and ascender is centered,
// not the baseline.
func Center(box rect.Rect, e Extent) vec.Vec2 {
	return vec.Vec2{
		X: box.LLx + (box.URx-box.LLx-e.Width)/2,
		Y: box.LLy + (box.URy-box.LLy-e.Height)/2 + e.Descent,
	}
}
