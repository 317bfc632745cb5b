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

package registers

import (
	"strings"
)

// Status is the special purpose register that stores the flags of the CPU.
// It is the F half of the AF pair the push and pop instructions see.
type Status struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewStatus is the preferred method of initialisation for the status
// register.
func NewStatus() Status {
	return Status{}
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "F"
}

func (sr Status) String() string {
	s := strings.Builder{}

	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *Status) Reset() {
	sr.FromValue(0)
}

// Value converts the Status struct into a value suitable for pushing onto
// the stack. The low nibble of the value is always zero.
func (sr Status) Value() uint8 {
	var v uint8

	if sr.Zero {
		v |= 0x80
	}
	if sr.Subtract {
		v |= 0x40
	}
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Carry {
		v |= 0x10
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example)
// to the Status struct receiver. The low nibble of the value is discarded;
// there is no storage behind it on this CPU.
func (sr *Status) FromValue(v uint8) {
	sr.Zero = v&0x80 == 0x80
	sr.Subtract = v&0x40 == 0x40
	sr.HalfCarry = v&0x20 == 0x20
	sr.Carry = v&0x10 == 0x10
}
