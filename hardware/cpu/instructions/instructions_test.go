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

package instructions_test

import (
	"testing"

	"github.com/quarthex/gopherboy/hardware/cpu/instructions"
	"github.com/quarthex/gopherboy/test"
)

func TestTableTotality(t *testing.T) {
	// every opcode of both tables has a well formed entry
	for op := 0; op <= 0xff; op++ {
		defn := instructions.Primary[op]
		test.Equate(t, int(defn.OpCode), op)
		test.Equate(t, defn.Prefixed, false)
		test.Equate(t, defn.Bytes >= 1 && defn.Bytes <= 3, true)
		test.Equate(t, defn.Cycles >= 1, true)
		if defn.CyclesTaken != 0 {
			test.Equate(t, defn.IsConditional(), true)
			test.Equate(t, defn.CyclesTaken > defn.Cycles, true)
		}

		defn = instructions.Extended[op]
		test.Equate(t, int(defn.OpCode), op)
		test.Equate(t, defn.Prefixed, true)
		test.Equate(t, defn.Bytes, 2)
		test.Equate(t, defn.Cycles >= 2, true)
		test.Equate(t, defn.Illegal, false)
	}
}

func TestIllegalOpcodes(t *testing.T) {
	illegal := map[uint8]bool{
		0xd3: true, 0xdb: true, 0xdd: true, 0xe3: true, 0xe4: true, 0xeb: true,
		0xec: true, 0xed: true, 0xf4: true, 0xfc: true, 0xfd: true,
	}

	n := 0
	for op := 0; op <= 0xff; op++ {
		if instructions.Primary[op].Illegal {
			test.Equate(t, illegal[uint8(op)], true)
			n++
		}
	}
	test.Equate(t, n, len(illegal))
}

func TestKnownOpcodes(t *testing.T) {
	for _, c := range []struct {
		op       uint8
		mnemonic string
		bytes    int
		cycles   int
	}{
		{0x00, "NOP", 1, 1},
		{0x08, "LD (a16),SP", 3, 5},
		{0x18, "JR r8", 2, 3},
		{0x22, "LD (HL+),A", 1, 2},
		{0x31, "LD SP,d16", 3, 3},
		{0x34, "INC (HL)", 1, 3},
		{0x36, "LD (HL),d8", 2, 3},
		{0x3e, "LD A,d8", 2, 2},
		{0x41, "LD B,C", 1, 1},
		{0x46, "LD B,(HL)", 1, 2},
		{0x70, "LD (HL),B", 1, 2},
		{0x76, "HALT", 1, 1},
		{0x86, "ADD A,(HL)", 1, 2},
		{0x97, "SUB A", 1, 1},
		{0xaf, "XOR A", 1, 1},
		{0xc3, "JP a16", 3, 4},
		{0xc9, "RET", 1, 4},
		{0xcd, "CALL a16", 3, 6},
		{0xd9, "RETI", 1, 4},
		{0xe0, "LDH (a8),A", 2, 3},
		{0xe8, "ADD SP,r8", 2, 4},
		{0xe9, "JP HL", 1, 1},
		{0xea, "LD (a16),A", 3, 4},
		{0xf0, "LDH A,(a8)", 2, 3},
		{0xf8, "LD HL,SP+r8", 2, 3},
		{0xfe, "CP d8", 2, 2},
		{0xff, "RST 38H", 1, 4},
	} {
		defn := instructions.Primary[c.op]
		test.Equate(t, defn.Mnemonic(), c.mnemonic)
		test.Equate(t, defn.Bytes, c.bytes)
		test.Equate(t, defn.Cycles, c.cycles)
	}
}

func TestConditionalCycles(t *testing.T) {
	for _, c := range []struct {
		op          uint8
		mnemonic    string
		cycles      int
		cyclesTaken int
	}{
		{0x20, "JR NZ,r8", 2, 3},
		{0x38, "JR C,r8", 2, 3},
		{0xc0, "RET NZ", 2, 5},
		{0xca, "JP Z,a16", 3, 4},
		{0xd4, "CALL NC,a16", 3, 6},
	} {
		defn := instructions.Primary[c.op]
		test.Equate(t, defn.Mnemonic(), c.mnemonic)
		test.Equate(t, defn.Cycles, c.cycles)
		test.Equate(t, defn.CyclesTaken, c.cyclesTaken)
	}
}

func TestExtendedTable(t *testing.T) {
	for _, c := range []struct {
		op       uint8
		mnemonic string
		cycles   int
	}{
		{0x00, "RLC B", 2},
		{0x16, "RL (HL)", 4},
		{0x37, "SWAP A", 2},
		{0x46, "BIT 0,(HL)", 3},
		{0x7f, "BIT 7,A", 2},
		{0x87, "RES 0,A", 2},
		{0xde, "SET 3,(HL)", 4},
		{0xff, "SET 7,A", 2},
	} {
		defn := instructions.Extended[c.op]
		test.Equate(t, defn.Mnemonic(), c.mnemonic)
		test.Equate(t, defn.Cycles, c.cycles)
	}
}
