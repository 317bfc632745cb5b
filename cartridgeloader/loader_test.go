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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quarthex/gopherboy/cartridgeloader"
	"github.com/quarthex/gopherboy/curated"
	"github.com/quarthex/gopherboy/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.gb")
	err := os.WriteFile(fn, []byte{0x01, 0x02, 0x03}, 0o644)
	test.ExpectedSuccess(t, err)

	ld := cartridgeloader.NewLoader(fn)
	test.Equate(t, ld.HasLoaded(), false)
	test.Equate(t, ld.ShortName(), "image")

	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, ld.HasLoaded(), true)
	test.Equate(t, len(ld.Data), 3)
	test.Equate(t, len(ld.Hash), 40)

	// loading again is a no-op
	test.ExpectedSuccess(t, ld.Load())
}

func TestUnrecognisedExtension(t *testing.T) {
	ld := cartridgeloader.NewLoader("image.wav")
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridgeloader.UnrecognisedExtension), true)
}

func TestImageTooLarge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.gb")
	err := os.WriteFile(fn, make([]byte, 512*0x4000+1), 0o644)
	test.ExpectedSuccess(t, err)

	ld := cartridgeloader.NewLoader(fn)
	err = ld.Load()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridgeloader.ImageTooLarge), true)
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.gb")
	err := os.WriteFile(fn, []byte{0x01, 0x02, 0x03}, 0o644)
	test.ExpectedSuccess(t, err)

	ld := cartridgeloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err = ld.Load()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridgeloader.HashMismatch), true)
}
