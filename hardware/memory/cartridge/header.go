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

import "strings"

// offsets of the header fields in the cartridge image.
const (
	offsetEntryPoint   = 0x0100
	offsetLogo         = 0x0104
	offsetTitle        = 0x0134
	offsetColorFlag    = 0x0143
	offsetManufacturer = 0x0144
	offsetConsoleFlag  = 0x0146
	offsetCartType     = 0x0147
	offsetROMSizeCode  = 0x0148
	offsetRAMSizeCode  = 0x0149
	offsetDestination  = 0x014a
	offsetLicensee     = 0x014b
	offsetMaskROMVer   = 0x014c
	offsetHeaderChksum = 0x014d
	offsetGlobalChksum = 0x014e

	headerMemtop = 0x014f
)

// lengths of the multi-byte header fields.
const (
	lenEntryPoint = 4
	lenLogo       = 48
	lenTitle      = 15
)

// Header holds the fields parsed from the cartridge header area
// (0x0100 to 0x014f). The fields are exposed raw - validating the
// checksums and acting on the cartridge type is the responsibility of
// whatever loaded the image.
type Header struct {
	EntryPoint [lenEntryPoint]uint8
	Logo       [lenLogo]uint8

	// title is zero-padded ASCII in the image. the padding is stripped
	Title string

	ColorFlag        uint8
	ManufacturerCode uint16
	ConsoleFlag      uint8
	CartridgeType    uint8
	ROMSizeCode      uint8
	RAMSizeCode      uint8
	DestinationCode  uint8
	LicenseeCode     uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16
}

// ROMSize returns the size in bytes implied by the ROM size code.
func (hdr Header) ROMSize() int {
	return (int(hdr.ROMSizeCode) + 1) * 32768
}

// RAMSize returns the size in bytes implied by the RAM size code. Codes
// outside the documented range report zero.
func (hdr Header) RAMSize() int {
	switch hdr.RAMSizeCode {
	case 1:
		return 2048
	case 2:
		return 8192
	case 3:
		return 32768
	}
	return 0
}

// parseHeader extracts the header fields from a cartridge image. The image
// must be at least minImageSize bytes; NewCartridge() guarantees that.
func parseHeader(data []uint8) Header {
	hdr := Header{}

	copy(hdr.EntryPoint[:], data[offsetEntryPoint:])
	copy(hdr.Logo[:], data[offsetLogo:])

	hdr.Title = strings.TrimRight(string(data[offsetTitle:offsetTitle+lenTitle]), "\x00")

	hdr.ColorFlag = data[offsetColorFlag]
	hdr.ManufacturerCode = uint16(data[offsetManufacturer]) | (uint16(data[offsetManufacturer+1]) << 8)
	hdr.ConsoleFlag = data[offsetConsoleFlag]
	hdr.CartridgeType = data[offsetCartType]
	hdr.ROMSizeCode = data[offsetROMSizeCode]
	hdr.RAMSizeCode = data[offsetRAMSizeCode]
	hdr.DestinationCode = data[offsetDestination]
	hdr.LicenseeCode = data[offsetLicensee]
	hdr.MaskROMVersion = data[offsetMaskROMVer]
	hdr.HeaderChecksum = data[offsetHeaderChksum]
	hdr.GlobalChecksum = uint16(data[offsetGlobalChksum]) | (uint16(data[offsetGlobalChksum+1]) << 8)

	return hdr
}
