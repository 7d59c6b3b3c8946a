// seehuhn.de/go/outline - a data model for glyph outlines
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

package outline

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
)

// A PointPen incrementally constructs the contours and components of a
// Drawing.  Pens are created using [Drawing.PointPen].
//
// At any time at most one contour is under construction.  BeginPath opens
// a new contour, AddPoint appends points to it, and EndPath moves the
// finished contour into the drawing.  Violating this protocol is a bug in
// the caller and makes the pen panic.  Invalid component names, by
// contrast, are a data error and are reported through an error return.
//
// The .Close method must be called when the caller is done with the pen.
type PointPen struct {
	drawing *Drawing
	current *Contour
	closed  bool
}

// PointPen starts a pen session on the drawing.
//
// While the session is live the pen has exclusive access to the drawing:
// calls to ApplyAffine, AddAnchor, Clone or PointPen panic until the pen
// is closed.  This guards against code observing or changing the drawing
// while a contour is under construction.
func (d *Drawing) PointPen() *PointPen {
	d.checkUnlocked()
	pen := &PointPen{drawing: d}
	d.pen = pen
	return pen
}

// BeginPath opens a new, empty contour.  It panics if a contour is
// already open.
func (pen *PointPen) BeginPath() {
	pen.checkLive()
	if pen.current != nil {
		panic("point pen: BeginPath while a contour is open")
	}
	pen.current = &Contour{}
}

// AddPoint appends a node to the contour under construction.  It panics
// if no contour is open.
func (pen *PointPen) AddPoint(x, y float64, typ PointType) {
	pen.checkLive()
	if pen.current == nil {
		panic("point pen: AddPoint without an open contour")
	}
	pen.current.Nodes = append(pen.current.Nodes, NewNode(x, y, typ))
}

// EndPath closes the contour under construction and appends it to the
// drawing.  It panics if no contour is open.
func (pen *PointPen) EndPath() {
	pen.checkLive()
	if pen.current == nil {
		panic("point pen: EndPath without an open contour")
	}
	pen.drawing.Contours = append(pen.drawing.Contours, *pen.current)
	pen.current = nil
}

// AddComponent appends a component referencing the glyph base to the
// drawing.  The call is allowed whether or not a contour is open.  The
// drawing is left unchanged if base is not a valid glyph name.
func (pen *PointPen) AddComponent(base string, transform matrix.Matrix) error {
	pen.checkLive()
	c, err := NewComponent(base, transform)
	if err != nil {
		return err
	}
	pen.drawing.Components = append(pen.drawing.Components, c)
	return nil
}

// Close ends the pen session and releases the drawing.
//
// If a contour is still open, the partial contour is discarded and Close
// returns an error.  Using the pen after Close panics.
func (pen *PointPen) Close() error {
	pen.checkLive()
	pen.closed = true
	pen.drawing.pen = nil
	pen.drawing = nil
	if pen.current != nil {
		pen.current = nil
		return errors.New("point pen closed with an open contour")
	}
	return nil
}

func (pen *PointPen) checkLive() {
	if pen.closed {
		panic("point pen: use after Close")
	}
}
