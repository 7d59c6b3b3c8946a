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

package glyphname

import (
	"errors"
	"testing"
)

var testCases = []struct {
	in    string
	valid bool
}{
	{"a", true},
	{"A.sc", true},
	{"dieresiscomb", true},
	{".notdef", true},
	{"uni00E9", true},
	{"name with spaces", true},
	{"äöü", true},
	{"", false},
	{"a\x00b", false},
	{"a\tb", false},
	{"a\nb", false},
	{"\x7f", false},
}

func TestNew(t *testing.T) {
	for _, test := range testCases {
		name, err := New(test.in)
		if test.valid {
			if err != nil {
				t.Errorf("New(%q) failed: %v", test.in, err)
			} else if string(name) != test.in {
				t.Errorf("New(%q) = %q", test.in, name)
			}
		} else {
			if err == nil {
				t.Errorf("New(%q) did not fail", test.in)
			}
			var nameErr *InvalidNameError
			if !errors.As(err, &nameErr) {
				t.Errorf("New(%q): error has type %T", test.in, err)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, test := range testCases {
		if got := IsValid(test.in); got != test.valid {
			t.Errorf("IsValid(%q) = %t, want %t", test.in, got, test.valid)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid glyph name "": empty name`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
