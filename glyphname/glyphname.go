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

// Package glyphname implements validated glyph and anchor names.
//
// Names follow the UFO conventions: a name is any non-empty string which
// does not contain control characters.
package glyphname

import (
	"strconv"
	"unicode"
)

// A Name is a validated glyph or anchor name.
type Name string

// New validates s and returns it as a Name.  The error is of type
// [*InvalidNameError] if s violates the name restrictions.
func New(s string) (Name, error) {
	if s == "" {
		return "", &InvalidNameError{Name: s, Reason: "empty name"}
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", &InvalidNameError{Name: s, Reason: "control character"}
		}
	}
	return Name(s), nil
}

// IsValid reports whether s is a valid glyph name.
func IsValid(s string) bool {
	_, err := New(s)
	return err == nil
}

// InvalidNameError indicates that a string cannot be used as a glyph or
// anchor name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (err *InvalidNameError) Error() string {
	return "invalid glyph name " + strconv.Quote(err.Name) + ": " + err.Reason
}
