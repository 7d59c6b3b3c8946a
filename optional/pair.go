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

// Package optional provides types for values which may be unset.
package optional

// A Pair represents an optional pair of numbers.
//
// This is used for fields which an external source may or may not
// provide, for example the glyph height together with the y-coordinate of
// the vertical origin.  The zero value is unset.
type Pair struct {
	isSet bool
	a, b  float64
}

// NewPair creates a new Pair holding the given values.
func NewPair(a, b float64) Pair {
	var p Pair
	p.Set(a, b)
	return p
}

// Get returns the two values and whether they are set.
func (p Pair) Get() (a, b float64, ok bool) {
	return p.a, p.b, p.isSet
}

// Set sets the values.
func (p *Pair) Set(a, b float64) {
	p.isSet = true
	p.a = a
	p.b = b
}

// Clear clears the values.
func (p *Pair) Clear() {
	p.isSet = false
	p.a = 0
	p.b = 0
}

// Equal compares two Pairs for equality.
func (p Pair) Equal(other Pair) bool {
	return p == other
}
