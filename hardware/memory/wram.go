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

import "encoding/hex"

// number and size of the physical working RAM banks.
const (
	numWRAMBanks = 8
	wramBankSize = 0x1000
)

// WRAM is the console's working RAM: eight physical 4KB banks behind two
// addressable slots. Slot 0 is always physical bank 0. Slot 1 is retargeted
// among banks 1 to 7 by the bank select register - an indirection table
// rather than a swap of buffers, so bank contents survive retargeting.
type WRAM struct {
	banks [numWRAMBanks][wramBankSize]uint8

	// physical bank currently exposed by slot 1
	slot1 int
}

// newWRAM is the preferred method of initialisation for the WRAM type.
func newWRAM() *WRAM {
	return &WRAM{slot1: 1}
}

func (w WRAM) String() string {
	return hex.Dump(w.banks[0][:])
}

// SelectBank retargets slot 1 to the specified physical bank. Only the low
// three bits of the value are significant and, as on real hardware, a value
// of zero selects bank 1 (bank 0 is never visible through slot 1).
func (w *WRAM) SelectBank(value uint8) {
	b := int(value & 0x07)
	if b == 0 {
		b = 1
	}
	w.slot1 = b
}

// Bank returns the physical bank currently exposed by slot 1.
func (w WRAM) Bank() int {
	return w.slot1
}

// Read returns the byte at the offset of the specified slot.
func (w WRAM) Read(slot int, offset uint16) uint8 {
	if slot == 0 {
		return w.banks[0][offset]
	}
	return w.banks[w.slot1][offset]
}

// Write replaces the byte at the offset of the specified slot.
func (w *WRAM) Write(slot int, offset uint16, data uint8) {
	if slot == 0 {
		w.banks[0][offset] = data
		return
	}
	w.banks[w.slot1][offset] = data
}
