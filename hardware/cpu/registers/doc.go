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

// Package registers implements the registers of the CPU. The accumulator is
// a Register, the flags are a Status, and the remaining registers are Pairs
// that can be accessed as one 16bit value or as two 8bit halves. The AF
// pair only exists on the stack - it is composed from the accumulator and
// the flags at the moment it is pushed.
package registers
