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

package cartridge

import (
	"fmt"

	"github.com/quarthex/gopherboy/curated"
)

// Sentinal error returned by NewCartridge() for an image that cannot hold a
// complete header.
const ImageTooSmall = "cartridge: image too small (%d bytes)"

// BankSize is the size of one addressable ROM bank.
const BankSize = 0x4000

// the smallest image that contains a complete header.
const minImageSize = headerMemtop + 1

// Cartridge is an immutable image of cartridge ROM plus the header fields
// parsed from it. The image is supplied at construction and is never
// written through this type - the memory bus holds a read-only view of it.
type Cartridge struct {
	data   []uint8
	header Header
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data slice is copied so later changes to the argument cannot
// reach the stored image.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) < minImageSize {
		return nil, curated.Errorf(ImageTooSmall, len(data))
	}

	cart := &Cartridge{
		data: make([]uint8, len(data)),
	}
	copy(cart.data, data)
	cart.header = parseHeader(cart.data)

	return cart, nil
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s (%dKB in %d banks)", cart.header.Title, len(cart.data)/1024, cart.NumBanks())
}

// Header returns the parsed header fields.
func (cart Cartridge) Header() Header {
	return cart.header
}

// Size returns the length of the cartridge image in bytes.
func (cart Cartridge) Size() int {
	return len(cart.data)
}

// NumBanks returns the number of 16KB banks in the image. Images that are
// not a multiple of the bank size report the partial bank as a whole one.
func (cart Cartridge) NumBanks() int {
	return (len(cart.data) + BankSize - 1) / BankSize
}

// Read returns the byte at the specified offset of the specified bank.
// Offsets beyond the end of the image read as 0xff, matching the open bus
// of a real cartridge edge connector.
func (cart Cartridge) Read(bank int, offset uint16) uint8 {
	idx := bank*BankSize + int(offset)
	if idx < 0 || idx >= len(cart.data) {
		return 0xff
	}
	return cart.data[idx]
}
