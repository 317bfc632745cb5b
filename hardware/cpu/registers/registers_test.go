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

package registers_test

import (
	"testing"

	"github.com/quarthex/gopherboy/hardware/cpu/registers"
	"github.com/quarthex/gopherboy/test"
)

func TestPairHalves(t *testing.T) {
	p := registers.NewPair(0x1234, "BC")

	test.Equate(t, p.Value(), 0x1234)
	test.Equate(t, p.Hi(), 0x12)
	test.Equate(t, p.Lo(), 0x34)

	p.SetHi(0xab)
	test.Equate(t, p.Value(), 0xab34)
	test.Equate(t, p.Lo(), 0x34)

	p.SetLo(0xcd)
	test.Equate(t, p.Value(), 0xabcd)
	test.Equate(t, p.Hi(), 0xab)

	p.Load(0xbeef)
	test.Equate(t, p.Hi(), 0xbe)
	test.Equate(t, p.Lo(), 0xef)
	test.Equate(t, p.String(), "BC=0xbeef")
}

func TestPairAdd(t *testing.T) {
	p := registers.NewPair(0x0fff, "HL")

	// carry out of bit 11 but not bit 15
	carry, halfCarry := p.Add(0x0001)
	test.Equate(t, carry, false)
	test.Equate(t, halfCarry, true)
	test.Equate(t, p.Value(), 0x1000)

	// no carry at all
	carry, halfCarry = p.Add(0x0123)
	test.Equate(t, carry, false)
	test.Equate(t, halfCarry, false)

	// carry out of bit 15, wrapping the pair
	p.Load(0xffff)
	carry, halfCarry = p.Add(0x0001)
	test.Equate(t, carry, true)
	test.Equate(t, halfCarry, true)
	test.Equate(t, p.Value(), 0x0000)
}

func TestStatusValue(t *testing.T) {
	sr := registers.NewStatus()
	test.Equate(t, sr.Value(), 0x00)
	test.Equate(t, sr.String(), "znhc")

	sr.Zero = true
	test.Equate(t, sr.Value(), 0x80)
	sr.Subtract = true
	test.Equate(t, sr.Value(), 0xc0)
	sr.HalfCarry = true
	test.Equate(t, sr.Value(), 0xe0)
	sr.Carry = true
	test.Equate(t, sr.Value(), 0xf0)
	test.Equate(t, sr.String(), "ZNHC")

	sr.Reset()
	test.Equate(t, sr.Value(), 0x00)
}

func TestStatusFromValue(t *testing.T) {
	sr := registers.NewStatus()

	// the low nibble has no storage behind it
	sr.FromValue(0xff)
	test.Equate(t, sr.Value(), 0xf0)

	sr.FromValue(0x50)
	test.Equate(t, sr.Zero, false)
	test.Equate(t, sr.Subtract, true)
	test.Equate(t, sr.HalfCarry, false)
	test.Equate(t, sr.Carry, true)
}

func TestStatusFlagIsolation(t *testing.T) {
	// setting one flag never disturbs the others, whatever state they
	// start in
	for i := uint8(0); i < 16; i++ {
		sr := registers.NewStatus()
		sr.FromValue(i << 4)

		before := sr.Value()
		sr.Zero = true
		test.Equate(t, sr.Value()&0x70, before&0x70)

		sr.FromValue(i << 4)
		before = sr.Value()
		sr.Subtract = true
		test.Equate(t, sr.Value()&0xb0, before&0xb0)

		sr.FromValue(i << 4)
		before = sr.Value()
		sr.HalfCarry = true
		test.Equate(t, sr.Value()&0xd0, before&0xd0)

		sr.FromValue(i << 4)
		before = sr.Value()
		sr.Carry = true
		test.Equate(t, sr.Value()&0xe0, before&0xe0)
	}
}

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0x00, "A")
	test.Equate(t, r.IsZero(), true)

	r.Load(0x80)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, r.String(), "A=0x80")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x0100)
	test.Equate(t, pc.Address(), 0x0100)

	pc.Add(2)
	test.Equate(t, pc.Address(), 0x0102)

	// wraps around the top of memory
	pc.Load(0xffff)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}
