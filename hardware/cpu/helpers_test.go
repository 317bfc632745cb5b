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

package cpu_test

import (
	"testing"

	"github.com/quarthex/gopherboy/hardware/cpu"
	"github.com/quarthex/gopherboy/test"
)

// mockMem is a flat 64KB memory satisfying the cpubus.Memory interface.
// Every address is readable and writable, there are no areas and no
// registers, which keeps the CPU tests about the CPU.
type mockMem struct {
	data []uint8
}

func newMockMem() *mockMem {
	return &mockMem{data: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

// putInstructions places a sequence of bytes into memory, returning the
// address after the last byte. Useful for laying down a program one
// instruction at a time.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.data[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x)", mem.data[address], value, address)
	}
}

// step executes a single instruction, failing the test on an execution
// error or an inconsistent result.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()

	cycles, err := mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
	if mc.LastResult.Final {
		test.ExpectedSuccess(t, mc.LastResult.IsValid())
	}

	return cycles
}
