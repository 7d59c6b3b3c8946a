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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/glyphname"
	"seehuhn.de/go/outline/optional"
)

// A Drawing is the outline of a single glyph: a set of anchors, component
// references and contours.  The order of the elements in each slice is
// meaningful and is preserved by all operations.
//
// The zero value is an empty drawing, ready to use.  A Drawing can be
// populated by appending to the exported fields, or incrementally via
// [Drawing.PointPen].
type Drawing struct {
	// HeightAndOrigin is the glyph height together with the y-coordinate
	// of the vertical origin.  It is only set when an external layout
	// source provides these values.
	HeightAndOrigin optional.Pair

	// Width is the advance width of the glyph.
	Width float64

	Anchors    []Anchor
	Components []Component
	Contours   []Contour

	pen *PointPen
}

// NewDrawing returns a new, empty Drawing.
func NewDrawing() *Drawing {
	return &Drawing{}
}

// ApplyAffine transforms the whole drawing in place: every anchor point,
// every component transform and every contour node is mapped through m.
// Anchors are processed first, then components, then contours.
//
// ApplyAffine panics if a pen session is live on the drawing.
func (d *Drawing) ApplyAffine(m matrix.Matrix) {
	d.checkUnlocked()
	for i := range d.Anchors {
		d.Anchors[i].ApplyAffine(m)
	}
	for i := range d.Components {
		d.Components[i].ApplyAffine(m)
	}
	for i := range d.Contours {
		d.Contours[i].ApplyAffine(m)
	}
}

// AddAnchor appends a new anchor to the drawing.  The drawing is left
// unchanged if name is not a valid glyph name.
//
// AddAnchor panics if a pen session is live on the drawing.
func (d *Drawing) AddAnchor(x, y float64, name string) error {
	d.checkUnlocked()
	a, err := NewAnchor(x, y, name)
	if err != nil {
		return err
	}
	d.Anchors = append(d.Anchors, a)
	return nil
}

// Clone returns a deep copy of the drawing.
//
// Clone panics if a pen session is live on the drawing.
func (d *Drawing) Clone() *Drawing {
	d.checkUnlocked()
	clone := &Drawing{
		HeightAndOrigin: d.HeightAndOrigin,
		Width:           d.Width,
		Anchors:         slices.Clone(d.Anchors),
		Components:      slices.Clone(d.Components),
		Contours:        make([]Contour, len(d.Contours)),
	}
	for i, c := range d.Contours {
		clone.Contours[i] = Contour{Nodes: slices.Clone(c.Nodes)}
	}
	return clone
}

// Equal reports whether two drawings have the same contents.
func (d *Drawing) Equal(other *Drawing) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.HeightAndOrigin.Equal(other.HeightAndOrigin) &&
		d.Width == other.Width &&
		slices.Equal(d.Anchors, other.Anchors) &&
		slices.Equal(d.Components, other.Components) &&
		slices.EqualFunc(d.Contours, other.Contours, Contour.Equal)
}

func (d *Drawing) checkUnlocked() {
	if d.pen != nil {
		panic("drawing is locked by a point pen")
	}
}

// An Anchor is a named point of interest on a glyph, for example an
// attachment point for diacritical marks.
type Anchor struct {
	Pt   vec.Vec2
	Name glyphname.Name
}

// NewAnchor returns a new anchor at the given coordinates.  The call
// fails if name is not a valid glyph name.
func NewAnchor(x, y float64, name string) (Anchor, error) {
	n, err := glyphname.New(name)
	if err != nil {
		return Anchor{}, err
	}
	return Anchor{Pt: vec.Vec2{X: x, Y: y}, Name: n}, nil
}

// ApplyAffine maps the anchor point through m.  The name is unchanged.
func (a *Anchor) ApplyAffine(m matrix.Matrix) {
	x, y := m.Apply(a.Pt.X, a.Pt.Y)
	a.Pt = vec.Vec2{X: x, Y: y}
}

// A Component places the outline of another glyph inside this glyph.
// Base names the referenced glyph, Transform describes the placement of
// its outline.
type Component struct {
	Base      glyphname.Name
	Transform matrix.Matrix
}

// NewComponent returns a new component referencing the glyph base.  The
// call fails if base is not a valid glyph name.
func NewComponent(base string, transform matrix.Matrix) (Component, error) {
	n, err := glyphname.New(base)
	if err != nil {
		return Component{}, err
	}
	return Component{Base: n, Transform: transform}, nil
}

// ApplyAffine repositions the component by m.  The component's own
// placement still applies first, so the new transform maps a point p to
// m(Transform(p)).
func (c *Component) ApplyAffine(m matrix.Matrix) {
	c.Transform = c.Transform.Mul(m)
}
