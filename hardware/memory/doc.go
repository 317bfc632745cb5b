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

// Package memory implements the storage behind the 16bit address space of
// the DMG. The Memory type gathers the cartridge image, video RAM, working
// RAM, OAM, HRAM and the handful of registers the bus implements itself,
// and routes every access through the memorymap package.
//
// The memory sub-packages are:
//
//	cpubus     the operations available to the CPU
//	memorymap  pure translation of addresses to areas
//	cartridge  the ROM image and its parsed header
//
// Sixteen bit accesses resolve each byte independently. There is no such
// thing as an atomic 16bit access on this bus; a value straddling two areas
// is split between them, which is observable when one half lands in ROM.
package memory
