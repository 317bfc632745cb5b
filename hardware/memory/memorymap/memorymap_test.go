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

package memorymap_test

import (
	"testing"

	"github.com/quarthex/gopherboy/hardware/memory/memorymap"
	"github.com/quarthex/gopherboy/test"
)

func TestTotality(t *testing.T) {
	// every address must resolve to a defined area. note the loop condition:
	// Memtop is at the very edge of uint16 so a simple <= would never end
	a := uint32(0)
	for ; a <= uint32(memorymap.Memtop); a++ {
		m := memorymap.MapAddress(uint16(a))
		if m.Area == memorymap.Undefined {
			t.Fatalf("address %#04x does not resolve to a defined area", a)
		}
		if m.Area == memorymap.Echo {
			t.Fatalf("address %#04x resolved to the echo area rather than its target", a)
		}
	}
}

func TestMapAddress(t *testing.T) {
	m := memorymap.MapAddress(0x0000)
	test.Equate(t, m.Area == memorymap.ROM0, true)
	test.Equate(t, m.Offset, 0)
	test.Equate(t, m.Permission == memorymap.ReadOnly, true)

	m = memorymap.MapAddress(0x3fff)
	test.Equate(t, m.Area == memorymap.ROM0, true)
	test.Equate(t, m.Offset, 0x3fff)

	m = memorymap.MapAddress(0x4000)
	test.Equate(t, m.Area == memorymap.ROMX, true)
	test.Equate(t, m.Offset, 0)
	test.Equate(t, m.Permission == memorymap.ReadOnly, true)

	m = memorymap.MapAddress(0x8800)
	test.Equate(t, m.Area == memorymap.TileData0, true)
	test.Equate(t, m.Offset, 0x0800)
	test.Equate(t, m.Permission == memorymap.Writable, true)

	m = memorymap.MapAddress(0x9000)
	test.Equate(t, m.Area == memorymap.TileData1, true)
	test.Equate(t, m.Offset, 0)

	m = memorymap.MapAddress(0x9800)
	test.Equate(t, m.Area == memorymap.TileMap0, true)

	m = memorymap.MapAddress(0x9fff)
	test.Equate(t, m.Area == memorymap.TileMap1, true)
	test.Equate(t, m.Offset, 0x03ff)

	m = memorymap.MapAddress(0xa000)
	test.Equate(t, m.Area == memorymap.CartRAM, true)

	m = memorymap.MapAddress(0xc123)
	test.Equate(t, m.Area == memorymap.WRAM0, true)
	test.Equate(t, m.Offset, 0x0123)

	m = memorymap.MapAddress(0xd000)
	test.Equate(t, m.Area == memorymap.WRAMX, true)
	test.Equate(t, m.Offset, 0)

	m = memorymap.MapAddress(0xfe00)
	test.Equate(t, m.Area == memorymap.OAM, true)

	m = memorymap.MapAddress(0xfea0)
	test.Equate(t, m.Area == memorymap.NotUsable, true)
	test.Equate(t, m.Permission == memorymap.Unmapped, true)

	m = memorymap.MapAddress(0xff00)
	test.Equate(t, m.Area == memorymap.IO, true)
	test.Equate(t, m.Permission == memorymap.Unmapped, true)

	m = memorymap.MapAddress(0xff80)
	test.Equate(t, m.Area == memorymap.HRAM, true)
	test.Equate(t, m.Permission == memorymap.Writable, true)

	m = memorymap.MapAddress(0xffff)
	test.Equate(t, m.Area == memorymap.IE, true)
	test.Equate(t, m.Offset, 0)
}

func TestEchoResolution(t *testing.T) {
	// every echo address must resolve to the same mapping as the address
	// 0x2000 below it
	for a := memorymap.OriginEcho; a <= memorymap.MemtopEcho; a++ {
		m := memorymap.MapAddress(a)
		n := memorymap.MapAddress(a - memorymap.EchoAdjust)
		test.Equate(t, m.Area == n.Area, true)
		test.Equate(t, m.Offset, n.Offset)
		test.Equate(t, m.Permission == n.Permission, true)
	}

	// the bottom of the echo area mirrors the bottom of WRAM0
	m := memorymap.MapAddress(0xe000)
	test.Equate(t, m.Area == memorymap.WRAM0, true)
	test.Equate(t, m.Offset, 0)

	// the top of the echo area mirrors into WRAMX
	m = memorymap.MapAddress(0xfdff)
	test.Equate(t, m.Area == memorymap.WRAMX, true)
	test.Equate(t, m.Offset, 0x0dff)
}

func TestIsArea(t *testing.T) {
	test.Equate(t, memorymap.IsArea(0x0100, memorymap.ROM0), true)
	test.Equate(t, memorymap.IsArea(0xe000, memorymap.WRAM0), true)
	test.Equate(t, memorymap.IsArea(0xe000, memorymap.Echo), false)
}
