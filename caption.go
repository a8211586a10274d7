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

package audiogram

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/textmetrics"
)

// ErrInvalidFontSize is returned when a caption is requested with a font
// size which is not a positive, finite number.
var ErrInvalidFontSize = errors.New("invalid font size")

// DrawCaption draws text centered inside box, using the glyph metrics of
// the font to find the extent of the text.  The box is given in
// millimetres, the font size in points.
//
// Characters not present in the font do not contribute to the width of the
// caption.  The returned extent reports how many characters were missing.
func DrawCaption(c canvas.Canvas, font canvas.FontID, text string, sizePt float64, box rect.Rect) (textmetrics.Extent, error) {
	if !(sizePt > 0) || math.IsInf(sizePt, 0) {
		return textmetrics.Extent{}, fmt.Errorf("caption %q: size %g: %w", text, sizePt, ErrInvalidFontSize)
	}
	m, err := c.FontMetrics(font)
	if err != nil {
		return textmetrics.Extent{}, err
	}
	if err := m.Check(); err != nil {
		return textmetrics.Extent{}, fmt.Errorf("caption %q: font %q: %w", text, font, err)
	}
	e := textmetrics.Measure(text, m, sizePt)
	c.AddText(text, font, sizePt, textmetrics.Center(box, e))
	return e, nil
}
