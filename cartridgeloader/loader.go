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

// Package cartridgeloader is used to specify the cartridge image to attach
// to the emulated console. Loading is separated from the cartridge package
// so that the hardware never touches the filesystem.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarthex/gopherboy/curated"
)

// Sentinal errors returned by the Load() function.
const (
	UnrecognisedExtension = "cartridgeloader: unrecognised file extension (%s)"
	ImageTooLarge         = "cartridgeloader: image too large (%d bytes)"
	HashMismatch          = "cartridgeloader: hash mismatch"
)

// maximum size of a cartridge image. the largest mapper chip addresses
// 512 banks of 16KB.
const maxImageSize = 512 * 0x4000

// Loader is used to specify the cartridge image to load into the emulated
// console.
type Loader struct {
	// filename of cartridge image to load
	Filename string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return a
	// copy of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

func (ld Loader) String() string {
	return ld.Filename
}

// ShortName returns the filename without path or extension.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// HasLoaded returns true if Load() has been called successfully.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the cartridge image, filling the Data field. The file extension
// must be one of the recognised image extensions (.gb, .bin, .rom).
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(ld.Filename))
	switch ext {
	case ".gb", ".bin", ".rom":
	default:
		return curated.Errorf(UnrecognisedExtension, ext)
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	if len(data) > maxImageSize {
		return curated.Errorf(ImageTooLarge, len(data))
	}
	ld.Data = data

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch)
	}
	ld.Hash = hash

	return nil
}
