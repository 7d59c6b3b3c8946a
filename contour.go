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
)

// A Contour is one sub-path of a glyph outline, described by an ordered
// sequence of nodes.  An empty contour is legal.
type Contour struct {
	Nodes []Node
}

// ApplyAffine maps every node point through m.  Node types are unchanged.
func (c *Contour) ApplyAffine(m matrix.Matrix) {
	for i := range c.Nodes {
		x, y := m.Apply(c.Nodes[i].Pt.X, c.Nodes[i].Pt.Y)
		c.Nodes[i].Pt = vec.Vec2{X: x, Y: y}
	}
}

// IsClosed reports whether the contour is closed.  A non-empty contour is
// open if and only if its first node is a move point.
func (c Contour) IsClosed() bool {
	if len(c.Nodes) == 0 {
		return false
	}
	t := c.Nodes[0].Type
	return t != Move && t != SmoothMove
}

// Equal reports whether two contours have the same nodes.
func (c Contour) Equal(other Contour) bool {
	return slices.Equal(c.Nodes, other.Nodes)
}

// A Node is one point on a contour.
type Node struct {
	Pt   vec.Vec2
	Type PointType
}

// NewNode returns a new node at the given coordinates.
func NewNode(x, y float64, typ PointType) Node {
	return Node{Pt: vec.Vec2{X: x, Y: y}, Type: typ}
}

// PointType describes the role of a node on a contour.
type PointType int

// The possible node types.  OffCurve marks a control point which does not
// lie on the outline itself; all other types are on-curve and name the
// kind of segment which ends at the node.  The Smooth variants additionally
// record that the outline keeps tangent continuity through the point.
const (
	OffCurve PointType = iota
	Move
	SmoothMove
	Line
	SmoothLine
	Curve
	SmoothCurve
	QCurve
	SmoothQCurve
)

// OnCurve reports whether nodes of this type lie on the outline.
func (t PointType) OnCurve() bool {
	return t != OffCurve
}

// Smooth reports whether the outline keeps tangent continuity through
// nodes of this type.
func (t PointType) Smooth() bool {
	switch t {
	case SmoothMove, SmoothLine, SmoothCurve, SmoothQCurve:
		return true
	case OffCurve, Move, Line, Curve, QCurve:
		return false
	default:
		panic("invalid point type")
	}
}

func (t PointType) String() string {
	switch t {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case SmoothMove:
		return "move (smooth)"
	case Line:
		return "line"
	case SmoothLine:
		return "line (smooth)"
	case Curve:
		return "curve"
	case SmoothCurve:
		return "curve (smooth)"
	case QCurve:
		return "qcurve"
	case SmoothQCurve:
		return "qcurve (smooth)"
	default:
		panic("invalid point type")
	}
}
