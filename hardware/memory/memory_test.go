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

package memory_test

import (
	"testing"

	"github.com/quarthex/gopherboy/curated"
	"github.com/quarthex/gopherboy/hardware/memory"
	"github.com/quarthex/gopherboy/hardware/memory/cartridge"
	"github.com/quarthex/gopherboy/test"
)

// newTestMemory attaches a bus to a 64KB image (four banks) with a marker
// byte at the start of every bank.
func newTestMemory(t *testing.T) *memory.Memory {
	t.Helper()

	data := make([]uint8, 0x10000)
	for b := 0; b < 4; b++ {
		data[b*cartridge.BankSize] = uint8(0x10 * (b + 1))
	}
	data[0x0150] = 0x42

	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)

	return memory.NewMemory(cart)
}

func TestReadWriteRoundTrip(t *testing.T) {
	mem := newTestMemory(t)

	for _, a := range []uint16{
		0x8000, 0x8fff, 0x9000, 0x97ff, 0x9800, 0x9bff, 0x9c00, 0x9fff,
		0xa000, 0xbfff, 0xc000, 0xcfff, 0xd000, 0xdfff,
		0xfe00, 0xfe9f, 0xff80, 0xfffe, 0xffff,
	} {
		err := mem.Write(a, 0x5a)
		test.ExpectedSuccess(t, err)

		v, err := mem.Read(a)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, 0x5a)
	}
}

func TestROMIsReadOnly(t *testing.T) {
	mem := newTestMemory(t)

	// writes to ROM are discarded without complaint
	err := mem.Write(0x0150, 0x99)
	test.ExpectedSuccess(t, err)

	v, err := mem.Read(0x0150)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x42)
}

func TestROMXBankSwitch(t *testing.T) {
	mem := newTestMemory(t)

	v, _ := mem.Read(0x0000)
	test.Equate(t, v, 0x10)

	// ROMX defaults to bank 1
	v, _ = mem.Read(0x4000)
	test.Equate(t, v, 0x20)

	mem.SelectROMBank(3)
	v, _ = mem.Read(0x4000)
	test.Equate(t, v, 0x40)

	// bank 0 is never visible through ROMX
	mem.SelectROMBank(0)
	v, _ = mem.Read(0x4000)
	test.Equate(t, v, 0x20)
}

func TestEchoMirrorsWRAM(t *testing.T) {
	mem := newTestMemory(t)

	test.ExpectedSuccess(t, mem.Write(0xc123, 0xab))
	v, err := mem.Read(0xe123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xab)

	// and the mirror works in the other direction
	test.ExpectedSuccess(t, mem.Write(0xfdff, 0xcd))
	v, err = mem.Read(0xddff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xcd)
}

func TestLittleEndian16Bit(t *testing.T) {
	mem := newTestMemory(t)

	test.ExpectedSuccess(t, mem.Write16(0xc000, 0xbeef))

	v, err := mem.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xef)
	v, err = mem.Read(0xc001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xbe)

	w, err := mem.Read16(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xbeef)
}

func TestStraddlingWrite(t *testing.T) {
	mem := newTestMemory(t)

	// low byte falls in ROM and is discarded, high byte lands in VRAM
	test.ExpectedSuccess(t, mem.Write16(0x7fff, 0xbeef))

	v, err := mem.Read(0x7fff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, err = mem.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xbe)
}

func TestWRAMBankSelect(t *testing.T) {
	mem := newTestMemory(t)

	test.ExpectedSuccess(t, mem.Write(0xd000, 0x11))

	// retarget slot 1 to bank 2. the fresh bank reads as zero
	test.ExpectedSuccess(t, mem.Write(0xff70, 0x02))
	v, _ := mem.Read(0xd000)
	test.Equate(t, v, 0x00)
	test.ExpectedSuccess(t, mem.Write(0xd000, 0x22))

	// back to bank 1. the earlier contents survived the retargeting
	test.ExpectedSuccess(t, mem.Write(0xff70, 0x01))
	v, _ = mem.Read(0xd000)
	test.Equate(t, v, 0x11)

	// selecting bank 0 selects bank 1
	test.ExpectedSuccess(t, mem.Write(0xff70, 0x00))
	v, _ = mem.Read(0xff70)
	test.Equate(t, v, 0xf9)

	// slot 0 was never affected
	test.ExpectedSuccess(t, mem.Write(0xc500, 0x33))
	test.ExpectedSuccess(t, mem.Write(0xff70, 0x05))
	v, _ = mem.Read(0xc500)
	test.Equate(t, v, 0x33)
}

func TestUnmappedAccess(t *testing.T) {
	mem := newTestMemory(t)

	// the not usable area and unimplemented IO registers read as 0xff
	// alongside an error
	for _, a := range []uint16{0xfea0, 0xfeff, 0xff00, 0xff41, 0xff7f} {
		v, err := mem.Read(a)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, memory.UnmappedAccess), true)
		test.Equate(t, v, 0xff)

		err = mem.Write(a, 0x00)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, memory.UnmappedAccess), true)
	}
}

func TestInterruptRegisters(t *testing.T) {
	mem := newTestMemory(t)

	// the upper three bits of IF always read as set
	v, err := mem.Read(0xff0f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xe0)

	test.ExpectedSuccess(t, mem.Write(0xff0f, 0x01))
	v, _ = mem.Read(0xff0f)
	test.Equate(t, v, 0xe1)

	test.ExpectedSuccess(t, mem.Write(0xffff, 0xaa))
	v, _ = mem.Read(0xffff)
	test.Equate(t, v, 0xaa)
}

func TestReset(t *testing.T) {
	mem := newTestMemory(t)

	test.ExpectedSuccess(t, mem.Write(0xc000, 0x77))
	test.ExpectedSuccess(t, mem.Write(0xff70, 0x03))
	mem.SelectROMBank(2)
	mem.Reset()

	v, _ := mem.Read(0xc000)
	test.Equate(t, v, 0x00)
	v, _ = mem.Read(0xff70)
	test.Equate(t, v, 0xf9)
	v, _ = mem.Read(0x4000)
	test.Equate(t, v, 0x20)

	// the cartridge image is untouched by a reset
	v, _ = mem.Read(0x0150)
	test.Equate(t, v, 0x42)
}
