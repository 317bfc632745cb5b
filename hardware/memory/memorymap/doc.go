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

// Package memorymap is the single source of truth for how the DMG's 64KB
// address space is carved up. The MapAddress() function translates any
// 16bit address into an area, an offset within that area and a write
// permission. The memory package uses it to route every CPU access to the
// correct storage; nothing else in the project should do address
// arithmetic of its own.
package memorymap
