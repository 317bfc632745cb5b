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

import "fmt"

// Pair is one of the 16bit register pairs of the CPU (BC, DE, HL and the
// stack pointer). The pair is stored as a single 16bit value; the Hi and Lo
// accessors expose the halves the instruction set addresses individually.
type Pair struct {
	label string
	value uint16
}

// NewPair is the preferred method of initialisation for the Pair type. The
// label names the pair, eg. "BC".
func NewPair(val uint16, label string) *Pair {
	return &Pair{
		value: val,
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.value)
}

// Label returns the canonical name for the pair.
func (p Pair) Label() string {
	return p.label
}

// Value returns the current value of the pair.
func (p Pair) Value() uint16 {
	return p.value
}

// Address returns the current value of the pair for use in an address
// context. Identical to Value() but the call site reads better.
func (p Pair) Address() uint16 {
	return p.value
}

// Load value into the pair.
func (p *Pair) Load(val uint16) {
	p.value = val
}

// Hi returns the high byte of the pair.
func (p Pair) Hi() uint8 {
	return uint8(p.value >> 8)
}

// Lo returns the low byte of the pair.
func (p Pair) Lo() uint8 {
	return uint8(p.value)
}

// SetHi replaces the high byte of the pair.
func (p *Pair) SetHi(val uint8) {
	p.value = (p.value & 0x00ff) | (uint16(val) << 8)
}

// SetLo replaces the low byte of the pair.
func (p *Pair) SetLo(val uint8) {
	p.value = (p.value & 0xff00) | uint16(val)
}

// Add a value to the pair. Returns the carry out of bit 15 and the carry
// out of bit 11, which is what the 16bit arithmetic instructions report in
// the flags.
func (p *Pair) Add(val uint16) (carry, halfCarry bool) {
	v := p.value
	p.value += val
	carry = p.value < v
	halfCarry = (v&0x0fff)+(val&0x0fff) > 0x0fff
	return carry, halfCarry
}
