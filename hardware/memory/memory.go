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

package memory

import (
	"github.com/quarthex/gopherboy/curated"
	"github.com/quarthex/gopherboy/hardware/memory/cartridge"
	"github.com/quarthex/gopherboy/hardware/memory/memorymap"
	"github.com/quarthex/gopherboy/logger"
)

// Sentinal error returned for accesses to addresses with no storage behind
// them. The value read in this situation is always 0xff so emulation can
// continue if the embedder decides the error is tolerable.
const UnmappedAccess = "bus: %s: unmapped access (%#04x)"

// offsets into the IO area of the registers the bus implements itself.
const (
	regIntFlag    = uint16(0x0f)
	regBankSelect = uint16(0x70)
)

// sizes of the flat storage areas.
const (
	vramSize    = 0x2000
	cartRAMSize = 0x2000
	oamSize     = 0x00a0
	hramSize    = 0x007f
)

// base offsets of the video areas within the flat VRAM storage. the map
// divides VRAM into four areas but the storage behind them is one buffer.
const (
	vramTileData0 = uint16(0x0000)
	vramTileData1 = uint16(0x1000)
	vramTileMap0  = uint16(0x1800)
	vramTileMap1  = uint16(0x1c00)
)

// Memory is the monolithic representation of the memory in the DMG. Every
// address the CPU can name resolves here, through memorymap.MapAddress(), to
// storage or to a register the bus implements itself.
type Memory struct {
	cart *cartridge.Cartridge

	// physical cartridge bank currently exposed by the ROMX area. ROM0
	// always exposes bank zero
	romBank int

	vram    [vramSize]uint8
	cartRAM [cartRAMSize]uint8
	wram    *WRAM
	oam     [oamSize]uint8
	hram    [hramSize]uint8

	// the two registers of the interrupt system. intFlag is the low five
	// bits of the IF register (0xff0f); the upper bits read as set
	intFlag   uint8
	intEnable uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge) *Memory {
	mem := &Memory{
		cart: cart,
	}
	mem.Reset()
	return mem
}

// Reset contents of memory to the post switch-on state. The cartridge image
// is untouched.
func (mem *Memory) Reset() {
	mem.romBank = 1
	mem.vram = [vramSize]uint8{}
	mem.cartRAM = [cartRAMSize]uint8{}
	mem.wram = newWRAM()
	mem.oam = [oamSize]uint8{}
	mem.hram = [hramSize]uint8{}
	mem.intFlag = 0
	mem.intEnable = 0
}

// Cartridge returns the cartridge attached to the bus.
func (mem *Memory) Cartridge() *cartridge.Cartridge {
	return mem.cart
}

// SelectROMBank changes which physical cartridge bank the ROMX area exposes.
// As with WRAM slot 1, bank zero is never visible through ROMX.
func (mem *Memory) SelectROMBank(bank int) {
	if bank == 0 {
		bank = 1
	}
	mem.romBank = bank
	logger.Logf("bus", "ROMX -> bank %d", bank)
}

// Read is an implementation of the cpubus.Memory interface. Addresses with
// no storage behind them read as 0xff alongside the returned error.
func (mem *Memory) Read(address uint16) (uint8, error) {
	m := memorymap.MapAddress(address)

	switch m.Area {
	case memorymap.ROM0:
		return mem.cart.Read(0, m.Offset), nil
	case memorymap.ROMX:
		return mem.cart.Read(mem.romBank, m.Offset), nil
	case memorymap.TileData0:
		return mem.vram[vramTileData0+m.Offset], nil
	case memorymap.TileData1:
		return mem.vram[vramTileData1+m.Offset], nil
	case memorymap.TileMap0:
		return mem.vram[vramTileMap0+m.Offset], nil
	case memorymap.TileMap1:
		return mem.vram[vramTileMap1+m.Offset], nil
	case memorymap.CartRAM:
		return mem.cartRAM[m.Offset], nil
	case memorymap.WRAM0:
		return mem.wram.Read(0, m.Offset), nil
	case memorymap.WRAMX:
		return mem.wram.Read(1, m.Offset), nil
	case memorymap.OAM:
		return mem.oam[m.Offset], nil
	case memorymap.IO:
		switch m.Offset {
		case regIntFlag:
			return 0xe0 | mem.intFlag, nil
		case regBankSelect:
			return 0xf8 | uint8(mem.wram.Bank()), nil
		}
	case memorymap.HRAM:
		return mem.hram[m.Offset], nil
	case memorymap.IE:
		return mem.intEnable, nil
	}

	return 0xff, curated.Errorf(UnmappedAccess, m.Area.String(), address)
}

// Write is an implementation of the cpubus.Memory interface. Writes to
// read-only areas are discarded without comment, matching the real console
// where ROM simply ignores the write line.
func (mem *Memory) Write(address uint16, data uint8) error {
	m := memorymap.MapAddress(address)

	if m.Permission == memorymap.ReadOnly {
		return nil
	}

	switch m.Area {
	case memorymap.TileData0:
		mem.vram[vramTileData0+m.Offset] = data
	case memorymap.TileData1:
		mem.vram[vramTileData1+m.Offset] = data
	case memorymap.TileMap0:
		mem.vram[vramTileMap0+m.Offset] = data
	case memorymap.TileMap1:
		mem.vram[vramTileMap1+m.Offset] = data
	case memorymap.CartRAM:
		mem.cartRAM[m.Offset] = data
	case memorymap.WRAM0:
		mem.wram.Write(0, m.Offset, data)
	case memorymap.WRAMX:
		mem.wram.Write(1, m.Offset, data)
	case memorymap.OAM:
		mem.oam[m.Offset] = data
	case memorymap.IO:
		switch m.Offset {
		case regIntFlag:
			mem.intFlag = data & 0x1f
		case regBankSelect:
			mem.wram.SelectBank(data)
			logger.Logf("bus", "WRAM slot 1 -> bank %d", mem.wram.Bank())
		default:
			return curated.Errorf(UnmappedAccess, m.Area.String(), address)
		}
	case memorymap.HRAM:
		mem.hram[m.Offset] = data
	case memorymap.IE:
		mem.intEnable = data
	default:
		return curated.Errorf(UnmappedAccess, m.Area.String(), address)
	}

	return nil
}

// Read16 returns the 16bit value at the address, low byte first. The two
// bytes are resolved independently so a value straddling two areas reads
// each byte according to that byte's area. The error from the first failing
// byte is returned; the failing byte contributes 0xff to the value.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	hi, err2 := mem.Read(address + 1)
	if err == nil {
		err = err2
	}
	return uint16(lo) | (uint16(hi) << 8), err
}

// Write16 stores the 16bit value at the address, low byte first. As with
// Read16() the two bytes are resolved independently. A value straddling a
// read-only and a writable area lands only the byte that fell in the
// writable one.
func (mem *Memory) Write16(address uint16, data uint16) error {
	err := mem.Write(address, uint8(data))
	err2 := mem.Write(address+1, uint8(data>>8))
	if err == nil {
		err = err2
	}
	return err
}
