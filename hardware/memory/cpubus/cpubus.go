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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU. The memory.Memory type implements this interface and maps
// the read/write address to the correct memory area - meaning that CPU
// access need not care which part of memory it is touching.
package cpubus

// Memory defines the operations for the memory system when accessed from
// the CPU.
//
// Sixteen bit accesses are not part of this interface. The CPU performs
// them as two independent eight bit accesses so that each byte is subject
// to its own address resolution.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
