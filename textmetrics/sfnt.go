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

package textmetrics

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
)

// Load reads the metrics of a TrueType or OpenType font.
func Load(data []byte) (*GlyphMetrics, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmetrics: %w", err)
	}
	return FromFont(info)
}

// FromFont extracts the metrics of an already parsed font.  Characters are
// mapped to glyphs using the best available cmap subtable.  Characters
// which map to glyph 0 (.notdef) count as missing.
func FromFont(info *sfnt.Font) (*GlyphMetrics, error) {
	if info.UnitsPerEm == 0 {
		return nil, fmt.Errorf("textmetrics: font has no units per em: %w", ErrInvalidMetrics)
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("textmetrics: %w", err)
	}

	advance := func(r rune) (float64, bool) {
		gid := subtable.Lookup(r)
		if gid == 0 {
			return 0, false
		}
		return float64(info.GlyphWidth(gid)), true
	}

	return &GlyphMetrics{
		UnitsPerEm: float64(info.UnitsPerEm),
		Ascender:   float64(info.Ascent),
		Descender:  float64(info.Descent),
		Advances:   AdvanceFunc(advance),
	}, nil
}
