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

package canvas

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/audiogram/shape"
	"seehuhn.de/go/audiogram/textmetrics"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

// These are the operations recorded by a [Recorder].
const (
	OpPath OpKind = iota
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpPath:
		return "path"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a recorded drawing operation, together with the style which was
// in effect when the operation was issued.
type Op struct {
	Kind  OpKind
	Style Style

	Path *shape.Path // for OpPath

	Text   string // for OpText
	Font   FontID
	SizePt float64
	Pos    vec.Vec2
}

// A Recorder is a Canvas which records all drawing operations.
// The zero value is ready to use and has no fonts.
type Recorder struct {
	Ops   []Op
	Fonts map[FontID]*textmetrics.GlyphMetrics

	// StyleChanges counts the calls to the style setters.
	StyleChanges int

	style Style
}

// AddPath implements the [Canvas] interface.
func (r *Recorder) AddPath(p *shape.Path) {
	r.Ops = append(r.Ops, Op{Kind: OpPath, Style: r.style, Path: p})
}

// AddText implements the [Canvas] interface.
func (r *Recorder) AddText(text string, font FontID, sizePt float64, pos vec.Vec2) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpText,
		Style:  r.style,
		Text:   text,
		Font:   font,
		SizePt: sizePt,
		Pos:    pos,
	})
}

// SetFillColor implements the [Canvas] interface.
func (r *Recorder) SetFillColor(c RGB) {
	r.style.Fill = c
	r.StyleChanges++
}

// SetStrokeColor implements the [Canvas] interface.
func (r *Recorder) SetStrokeColor(c RGB) {
	r.style.Stroke = c
	r.StyleChanges++
}

// SetStrokeWidth implements the [Canvas] interface.
func (r *Recorder) SetStrokeWidth(w float64) {
	r.style.StrokeWidth = w
	r.StyleChanges++
}

// Style implements the [Canvas] interface.
func (r *Recorder) Style() Style {
	return r.style
}

// FontMetrics implements the [Canvas] interface.
func (r *Recorder) FontMetrics(font FontID) (*textmetrics.GlyphMetrics, error) {
	m, ok := r.Fonts[font]
	if !ok {
		return nil, fmt.Errorf("canvas: font %q: %w", font, ErrUnknownFont)
	}
	return m, nil
}

// Reset discards all recorded operations and resets the style registers.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.StyleChanges = 0
	r.style = Style{}
}
