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

// Package outline provides an in-memory representation of a single glyph's
// vector outline.
//
// A [Drawing] holds the anchors, component references and contours of one
// glyph.  Contours are sequences of on- and off-curve points; components
// place the outline of another glyph via an affine transform.  The whole
// drawing can be moved, scaled or rotated in one step using
// [Drawing.ApplyAffine].
//
// A Drawing can be populated directly, by appending to its fields, or
// incrementally through a [PointPen]:
//
//	d := outline.NewDrawing()
//	pen := d.PointPen()
//	pen.BeginPath()
//	pen.AddPoint(0, 0, outline.Move)
//	pen.AddPoint(100, 0, outline.Line)
//	pen.AddPoint(100, 100, outline.Line)
//	pen.EndPath()
//	err := pen.Close()
//	...
//
// While a pen session is live it has exclusive access to the drawing;
// see [Drawing.PointPen] for details.
//
// Geometry uses the types from seehuhn.de/go/geom: points are
// [seehuhn.de/go/geom/vec.Vec2] values and transforms are
// [seehuhn.de/go/geom/matrix.Matrix] values.
package outline
