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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like Errorf() in the fmt
// package, and returns an error.
//
// The pattern string doubles as the identity of the error. The Is() function
// checks whether an error is a curated error with a specific pattern:
//
//	e := curated.Errorf("bus: %s: unmapped access (%#04x)", area, address)
//
//	if curated.Is(e, "bus: %s: unmapped access (%#04x)") {
//		// handle unmapped access
//	}
//
// The Has() function is similar but searches the whole error chain for the
// pattern. IsAny() reports whether the error is curated at all; uncurated
// errors can be thought of as unexpected errors.
//
// Error kind patterns used throughout the project are stored as const
// strings, named and commented, next to the code that returns them. Tests
// assert on failure kind with Is() and Has() rather than on message text.
//
// The Error() function normalises the message chain so that adjacent
// duplicate parts are removed. This alleviates the problem of when and how
// to wrap errors as they travel up the call stack.
package curated
