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

// Package hardware is the container for the emulated components of the
// DMG, the original Game Boy. The DMG type gathers the CPU and the memory
// bus; creating one and calling Step() in a loop is all an embedder needs
// to run cartridge code.
package hardware

import (
	"github.com/quarthex/gopherboy/hardware/cpu"
	"github.com/quarthex/gopherboy/hardware/memory"
	"github.com/quarthex/gopherboy/hardware/memory/cartridge"
	"github.com/quarthex/gopherboy/logger"
)

// DMG is the main container for the emulated components of the console.
type DMG struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewDMG creates a new console around the supplied cartridge image.
func NewDMG(image []uint8) (*DMG, error) {
	cart, err := cartridge.NewCartridge(image)
	if err != nil {
		return nil, err
	}

	dmg := &DMG{}
	dmg.Mem = memory.NewMemory(cart)
	dmg.CPU = cpu.NewCPU(dmg.Mem)

	logger.Logf("dmg", "cartridge: %s", cart)

	return dmg, nil
}

// Reset emulates the effect of a power cycle. The cartridge image is
// untouched.
func (dmg *DMG) Reset() {
	dmg.Mem.Reset()
	dmg.CPU.Reset()
}

// Step executes the instruction at the current program counter, returning
// the number of machine cycles consumed.
func (dmg *DMG) Step() (int, error) {
	return dmg.CPU.ExecuteInstruction()
}

// Run the console until the continueCheck callback returns false. A nil
// continueCheck runs the console forever, or until an execution error.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		cont, err := continueCheck()
		if err != nil || !cont {
			return err
		}

		if _, err := dmg.Step(); err != nil {
			return err
		}
	}
}
