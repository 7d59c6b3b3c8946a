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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Errors returned by the point-to-segment conversion.
var (
	errMoveInContour = errors.New("move point inside a contour")
	errOffBeforeLine = errors.New("off-curve points before a line point")
	errTooManyOff    = errors.New("too many off-curve points before a curve point")
	errTrailingOff   = errors.New("open contour ends with off-curve points")
)

// Path converts the contours of the drawing to a sequence of path
// commands.  The contours are converted in order, each as described for
// [Contour.Path].  Components are not resolved, since the drawing has no
// way to look up the referenced glyphs.
func (d *Drawing) Path() (path.Path, error) {
	var segs []pathSeg
	for i := range d.Contours {
		ss, err := d.Contours[i].segments()
		if err != nil {
			return nil, err
		}
		segs = append(segs, ss...)
	}
	return makePath(segs), nil
}

// Path converts the contour's point sequence to path commands.
//
// An open contour yields a CmdMoveTo at its move point followed by one
// segment per on-curve node.  A closed contour starts at its first
// on-curve node, wraps around, and ends with CmdClose; if the contour
// consists of off-curve points only, the start point is the midpoint of
// the last and first node and all segments are quadratic.
//
// Off-curve runs are grouped by the on-curve node which ends them: a
// curve point takes up to two off-curve points (cubic, or quadratic with
// one), a qcurve point takes any number, with on-curve points implied at
// the midpoints between consecutive off-curve points.  No curve
// evaluation is performed.
//
// Path returns an error if the point sequence cannot be grouped into
// segments, for example when off-curve points precede a line point.
func (c *Contour) Path() (path.Path, error) {
	segs, err := c.segments()
	if err != nil {
		return nil, err
	}
	return makePath(segs), nil
}

// ControlBox returns the bounding box of all contour node points of the
// drawing, including off-curve points.  The box can be larger than the
// tight bounds of the rendered outline.  The zero Rect is returned if the
// drawing has no contour points.
func (d *Drawing) ControlBox() rect.Rect {
	var box rect.Rect
	first := true
	for _, c := range d.Contours {
		for _, n := range c.Nodes {
			if first {
				box = rect.Rect{LLx: n.Pt.X, LLy: n.Pt.Y, URx: n.Pt.X, URy: n.Pt.Y}
				first = false
				continue
			}
			box.LLx = min(box.LLx, n.Pt.X)
			box.LLy = min(box.LLy, n.Pt.Y)
			box.URx = max(box.URx, n.Pt.X)
			box.URy = max(box.URy, n.Pt.Y)
		}
	}
	return box
}

type pathSeg struct {
	cmd path.Command
	pts []vec.Vec2
}

func makePath(segs []pathSeg) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range segs {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	}
}

func (c *Contour) segments() ([]pathSeg, error) {
	if len(c.Nodes) == 0 {
		return nil, nil
	}
	if c.IsClosed() {
		return c.closedSegments()
	}
	return c.openSegments()
}

func (c *Contour) openSegments() ([]pathSeg, error) {
	segs := []pathSeg{
		{path.CmdMoveTo, []vec.Vec2{c.Nodes[0].Pt}},
	}
	var pending []vec.Vec2
	for _, n := range c.Nodes[1:] {
		switch n.Type {
		case OffCurve:
			pending = append(pending, n.Pt)
		case Move, SmoothMove:
			return nil, errMoveInContour
		default:
			ss, err := onCurveSegment(n, pending)
			if err != nil {
				return nil, err
			}
			segs = append(segs, ss...)
			pending = nil
		}
	}
	if len(pending) > 0 {
		return nil, errTrailingOff
	}
	return segs, nil
}

func (c *Contour) closedSegments() ([]pathSeg, error) {
	nodes := c.Nodes
	start := -1
	for i, n := range nodes {
		if n.Type.OnCurve() {
			start = i
			break
		}
	}

	if start < 0 {
		// A contour of off-curve points only is the TrueType way of
		// writing a closed quadratic curve: the start point is implied
		// halfway between the last and the first point.
		pts := make([]vec.Vec2, len(nodes))
		for i, n := range nodes {
			pts[i] = n.Pt
		}
		startPt := midpoint(pts[len(pts)-1], pts[0])
		segs := []pathSeg{{path.CmdMoveTo, []vec.Vec2{startPt}}}
		segs = append(segs, quadRun(pts, startPt)...)
		segs = append(segs, pathSeg{path.CmdClose, nil})
		return segs, nil
	}

	segs := []pathSeg{
		{path.CmdMoveTo, []vec.Vec2{nodes[start].Pt}},
	}
	var pending []vec.Vec2
	for k := 1; k <= len(nodes); k++ {
		n := nodes[(start+k)%len(nodes)]
		switch n.Type {
		case OffCurve:
			pending = append(pending, n.Pt)
		case Move, SmoothMove:
			return nil, errMoveInContour
		default:
			ss, err := onCurveSegment(n, pending)
			if err != nil {
				return nil, err
			}
			segs = append(segs, ss...)
			pending = nil
		}
	}
	segs = append(segs, pathSeg{path.CmdClose, nil})
	return segs, nil
}

// onCurveSegment returns the path commands for the segment which ends at
// the on-curve node n, consuming the preceding run of off-curve points.
func onCurveSegment(n Node, pending []vec.Vec2) ([]pathSeg, error) {
	switch n.Type {
	case Line, SmoothLine:
		if len(pending) > 0 {
			return nil, errOffBeforeLine
		}
		return []pathSeg{{path.CmdLineTo, []vec.Vec2{n.Pt}}}, nil
	case Curve, SmoothCurve:
		switch len(pending) {
		case 0:
			return []pathSeg{{path.CmdLineTo, []vec.Vec2{n.Pt}}}, nil
		case 1:
			return []pathSeg{{path.CmdQuadTo, []vec.Vec2{pending[0], n.Pt}}}, nil
		case 2:
			return []pathSeg{{path.CmdCubeTo, []vec.Vec2{pending[0], pending[1], n.Pt}}}, nil
		default:
			return nil, errTooManyOff
		}
	case QCurve, SmoothQCurve:
		return quadRun(pending, n.Pt), nil
	default:
		panic("not on curve")
	}
}

// quadRun returns a run of quadratic segments through the off-curve
// points offs, ending at end.  On-curve points are implied at the
// midpoints between consecutive off-curve points.
func quadRun(offs []vec.Vec2, end vec.Vec2) []pathSeg {
	if len(offs) == 0 {
		return []pathSeg{{path.CmdLineTo, []vec.Vec2{end}}}
	}
	segs := make([]pathSeg, len(offs))
	for i, off := range offs {
		to := end
		if i < len(offs)-1 {
			to = midpoint(off, offs[i+1])
		}
		segs[i] = pathSeg{path.CmdQuadTo, []vec.Vec2{off, to}}
	}
	return segs
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
