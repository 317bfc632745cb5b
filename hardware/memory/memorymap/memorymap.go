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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM0:
		return "ROM0"
	case ROMX:
		return "ROMX"
	case TileData0:
		return "TileData0"
	case TileData1:
		return "TileData1"
	case TileMap0:
		return "TileMap0"
	case TileMap1:
		return "TileMap1"
	case CartRAM:
		return "CartRAM"
	case WRAM0:
		return "WRAM0"
	case WRAMX:
		return "WRAMX"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case NotUsable:
		return "NotUsable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the DMG. Every address in the 16bit address
// space maps to exactly one of these (the Echo area is never returned by
// MapAddress, it is resolved to its WRAM target).
const (
	Undefined Area = iota
	ROM0
	ROMX
	TileData0
	TileData1
	TileMap0
	TileMap1
	CartRAM
	WRAM0
	WRAMX
	Echo
	OAM
	NotUsable
	IO
	HRAM
	IE
)

// Permission indicates what the CPU is allowed to do with an address.
// Writes to ReadOnly addresses are discarded without complaint, matching
// the real console where the ROM simply ignores the write line. Unmapped
// addresses have no storage behind them at all (yet).
type Permission int

func (p Permission) String() string {
	switch p {
	case ReadOnly:
		return "read-only"
	case Writable:
		return "writable"
	}

	return "unmapped"
}

// List of valid permissions.
const (
	Unmapped Permission = iota
	ReadOnly
	Writable
)

// The origin and memory top for each area of memory.
const (
	OriginROM0      = uint16(0x0000)
	MemtopROM0      = uint16(0x3fff)
	OriginROMX      = uint16(0x4000)
	MemtopROMX      = uint16(0x7fff)
	OriginTileData0 = uint16(0x8000)
	MemtopTileData0 = uint16(0x8fff)
	OriginTileData1 = uint16(0x9000)
	MemtopTileData1 = uint16(0x97ff)
	OriginTileMap0  = uint16(0x9800)
	MemtopTileMap0  = uint16(0x9bff)
	OriginTileMap1  = uint16(0x9c00)
	MemtopTileMap1  = uint16(0x9fff)
	OriginCartRAM   = uint16(0xa000)
	MemtopCartRAM   = uint16(0xbfff)
	OriginWRAM0     = uint16(0xc000)
	MemtopWRAM0     = uint16(0xcfff)
	OriginWRAMX     = uint16(0xd000)
	MemtopWRAMX     = uint16(0xdfff)
	OriginEcho      = uint16(0xe000)
	MemtopEcho      = uint16(0xfdff)
	OriginOAM       = uint16(0xfe00)
	MemtopOAM       = uint16(0xfe9f)
	OriginNotUsable = uint16(0xfea0)
	MemtopNotUsable = uint16(0xfeff)
	OriginIO        = uint16(0xff00)
	MemtopIO        = uint16(0xff7f)
	OriginHRAM      = uint16(0xff80)
	MemtopHRAM      = uint16(0xfffe)
	AddressIE       = uint16(0xffff)
)

// EchoAdjust is the distance between an address in the echo area and the
// WRAM address it mirrors.
const EchoAdjust = uint16(0x2000)

// Memtop is the top most address of memory in the DMG.
const Memtop = uint16(0xffff)

// Mapping is the result of MapAddress. Every address resolves to exactly
// one Mapping: the area the address falls in, the offset of the address
// from the area's origin, and what the CPU may do with it.
type Mapping struct {
	Area       Area
	Offset     uint16
	Permission Permission
}

// MapAddress translates an address to the area of memory that implements
// it. Addresses in the echo area are translated to their WRAM target before
// final resolution; the translation recurses at most once.
//
// MapAddress is a pure function of the address. Which physical bank a
// banked area (ROMX, WRAMX) currently exposes is the concern of the memory
// implementation, not the map.
func MapAddress(address uint16) Mapping {
	// echo area mirrors WRAM. translate and resolve the mirrored address
	if address >= OriginEcho && address <= MemtopEcho {
		return MapAddress(address - EchoAdjust)
	}

	switch {
	case address <= MemtopROM0:
		return Mapping{Area: ROM0, Offset: address, Permission: ReadOnly}
	case address <= MemtopROMX:
		return Mapping{Area: ROMX, Offset: address - OriginROMX, Permission: ReadOnly}
	case address <= MemtopTileData0:
		return Mapping{Area: TileData0, Offset: address - OriginTileData0, Permission: Writable}
	case address <= MemtopTileData1:
		return Mapping{Area: TileData1, Offset: address - OriginTileData1, Permission: Writable}
	case address <= MemtopTileMap0:
		return Mapping{Area: TileMap0, Offset: address - OriginTileMap0, Permission: Writable}
	case address <= MemtopTileMap1:
		return Mapping{Area: TileMap1, Offset: address - OriginTileMap1, Permission: Writable}
	case address <= MemtopCartRAM:
		return Mapping{Area: CartRAM, Offset: address - OriginCartRAM, Permission: Writable}
	case address <= MemtopWRAM0:
		return Mapping{Area: WRAM0, Offset: address - OriginWRAM0, Permission: Writable}
	case address <= MemtopWRAMX:
		return Mapping{Area: WRAMX, Offset: address - OriginWRAMX, Permission: Writable}
	case address <= MemtopOAM:
		return Mapping{Area: OAM, Offset: address - OriginOAM, Permission: Writable}
	case address <= MemtopNotUsable:
		return Mapping{Area: NotUsable, Offset: address - OriginNotUsable, Permission: Unmapped}
	case address <= MemtopIO:
		return Mapping{Area: IO, Offset: address - OriginIO, Permission: Unmapped}
	case address <= MemtopHRAM:
		return Mapping{Area: HRAM, Offset: address - OriginHRAM, Permission: Writable}
	}

	return Mapping{Area: IE, Offset: 0, Permission: Writable}
}

// IsArea returns true if the address resolves to the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address).Area == area
}
