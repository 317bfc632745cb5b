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

// Package cpu emulates the Sharp LR35902, the processor at the heart of
// the DMG. The CPU is driven one instruction at a time with
// ExecuteInstruction(), or with Step() when the caller wants to name the
// address explicitly. Timing is counted in machine cycles, each of which is
// four clock ticks on the real hardware.
//
// The CPU knows nothing about what is on the other side of the memory bus
// it is given; anything implementing the cpubus.Memory interface will do.
package cpu
