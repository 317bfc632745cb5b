// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/quarthex/gopherboy/test"
)

func TestCollapsedEntries(t *testing.T) {
	l := newLogger(10)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "hello")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: hello\n")

	// a repeated entry is collapsed rather than appended
	l.log("test", "hello")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: hello (repeat x2)\n")
	test.Equate(t, len(l.entries), 1)

	// a different detail breaks the repeat run
	l.log("test", "world")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: hello (repeat x2)\ntest: world\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(3)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")
	l.log("test", "d")
	test.Equate(t, len(l.entries), 3)

	// oldest entry is dropped first
	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "test: b\ntest: c\ntest: d\n")
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	b := &strings.Builder{}
	l.tail(b, 2)
	test.Equate(t, b.String(), "test: b\ntest: c\n")

	// asking for more entries than exist is not an error
	b.Reset()
	l.tail(b, 100)
	test.Equate(t, b.String(), "test: a\ntest: b\ntest: c\n")
}
