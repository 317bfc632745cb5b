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

package instructions

// Primary is the instruction table indexed by the first byte of the
// instruction. Every opcode has an entry; the eleven opcodes the CPU traps
// on are marked Illegal.
var Primary [256]Definition

// Extended is the instruction table behind the 0xcb prefix, indexed by the
// byte following the prefix. Every opcode has an entry; there are no
// illegal opcodes in the extended table.
var Extended [256]Definition

// the register operand encoded by the low three bits of much of the
// instruction set. index six is the memory location addressed by HL.
var regOperands = [8]Operand{B, C, D, E, H, L, InHL, A}

// the 8bit arithmetic operation encoded by bits three to five of the
// opcode rows 0x80 to 0xbf (and the corresponding immediate forms).
var aluOperations = [8]Operation{Add8, Adc8, Sub8, Sbc8, And8, Xor8, Or8, Cp8}

// the condition encoded by bits three and four of the conditional flow
// opcodes.
var flowConditions = [4]Condition{NotZero, IsZero, NotCarry, IsCarry}

// opcodes with no instruction behind them. fetching one locks up the
// hardware.
var illegalOpcodes = []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

func init() {
	Primary = newPrimaryTable()
	Extended = newExtendedTable()
}

// newPrimaryTable builds the primary instruction table. The table is built
// rather than listed: the instruction set is regular enough that the
// encoding patterns are fewer and easier to audit than 256 literals.
func newPrimaryTable() [256]Definition {
	var tbl [256]Definition

	def := func(op uint8, d Definition) {
		d.OpCode = op
		if d.Bytes == 0 {
			d.Bytes = 1
		}
		tbl[op] = d
	}

	// LD r,r' block. the odd man out at 0x76, where LD (HL),(HL) would
	// be, is HALT
	for op := 0x40; op <= 0x7f; op++ {
		dst := regOperands[(op>>3)&0x07]
		src := regOperands[op&0x07]
		c := 1
		if dst == InHL || src == InHL {
			c = 2
		}
		def(uint8(op), Definition{Operation: Ld8, Dest: dst, Source: src, Cycles: c})
	}
	def(0x76, Definition{Operation: Halt, Cycles: 1})

	// arithmetic block
	for op := 0x80; op <= 0xbf; op++ {
		src := regOperands[op&0x07]
		c := 1
		if src == InHL {
			c = 2
		}
		def(uint8(op), Definition{Operation: aluOperations[(op>>3)&0x07], Dest: A, Source: src, Cycles: c})
	}

	// the immediate forms of the arithmetic block
	for i, alu := range aluOperations {
		def(0xc6|uint8(i)<<3, Definition{Operation: alu, Dest: A, Source: Data8, Bytes: 2, Cycles: 2})
	}

	// the 16bit pair rows
	pairs := [4]Operand{BC, DE, HL, SP}
	stackPairs := [4]Operand{BC, DE, HL, AF}
	indirects := [4]Operand{InBC, InDE, InHLInc, InHLDec}
	for x := uint8(0); x < 4; x++ {
		def(0x01|x<<4, Definition{Operation: Ld16, Dest: pairs[x], Source: Data16, Bytes: 3, Cycles: 3})
		def(0x02|x<<4, Definition{Operation: Ld8, Dest: indirects[x], Source: A, Cycles: 2})
		def(0x03|x<<4, Definition{Operation: Inc16, Dest: pairs[x], Cycles: 2})
		def(0x09|x<<4, Definition{Operation: AddHL, Dest: HL, Source: pairs[x], Cycles: 2})
		def(0x0a|x<<4, Definition{Operation: Ld8, Dest: A, Source: indirects[x], Cycles: 2})
		def(0x0b|x<<4, Definition{Operation: Dec16, Dest: pairs[x], Cycles: 2})
		def(0xc1|x<<4, Definition{Operation: Pop, Dest: stackPairs[x], Cycles: 3})
		def(0xc5|x<<4, Definition{Operation: Push, Source: stackPairs[x], Cycles: 4})
	}

	// the 8bit register rows
	for i, r := range regOperands {
		c := 1
		if r == InHL {
			c = 3
		}
		def(0x04|uint8(i)<<3, Definition{Operation: Inc8, Dest: r, Cycles: c})
		def(0x05|uint8(i)<<3, Definition{Operation: Dec8, Dest: r, Cycles: c})

		c = 2
		if r == InHL {
			c = 3
		}
		def(0x06|uint8(i)<<3, Definition{Operation: Ld8, Dest: r, Source: Data8, Bytes: 2, Cycles: c})
	}

	// conditional flow
	for x := uint8(0); x < 4; x++ {
		cond := flowConditions[x]
		def(0x20|x<<3, Definition{Operation: Jr, Source: Data8, Condition: cond, Bytes: 2, Cycles: 2, CyclesTaken: 3})
		def(0xc0|x<<3, Definition{Operation: Ret, Condition: cond, Cycles: 2, CyclesTaken: 5})
		def(0xc2|x<<3, Definition{Operation: Jp, Source: Addr16, Condition: cond, Bytes: 3, Cycles: 3, CyclesTaken: 4})
		def(0xc4|x<<3, Definition{Operation: Call, Source: Addr16, Condition: cond, Bytes: 3, Cycles: 3, CyclesTaken: 6})
	}

	// restarts
	for x := uint8(0); x < 8; x++ {
		def(0xc7|x<<3, Definition{Operation: Rst, Value: x << 3, Cycles: 4})
	}

	// everything else is an individual
	def(0x00, Definition{Operation: Nop, Cycles: 1})
	def(0x07, Definition{Operation: Rlca, Cycles: 1})
	def(0x08, Definition{Operation: Ld16, Dest: Addr16, Source: SP, Bytes: 3, Cycles: 5})
	def(0x0f, Definition{Operation: Rrca, Cycles: 1})
	def(0x10, Definition{Operation: Stop, Bytes: 2, Cycles: 1})
	def(0x17, Definition{Operation: Rla, Cycles: 1})
	def(0x18, Definition{Operation: Jr, Source: Data8, Bytes: 2, Cycles: 3})
	def(0x1f, Definition{Operation: Rra, Cycles: 1})
	def(0x27, Definition{Operation: Daa, Cycles: 1})
	def(0x2f, Definition{Operation: Cpl, Cycles: 1})
	def(0x37, Definition{Operation: Scf, Cycles: 1})
	def(0x3f, Definition{Operation: Ccf, Cycles: 1})
	def(0xc3, Definition{Operation: Jp, Source: Addr16, Bytes: 3, Cycles: 4})
	def(0xc9, Definition{Operation: Ret, Cycles: 4})
	def(0xcb, Definition{Operation: Prefix, Cycles: 1})
	def(0xcd, Definition{Operation: Call, Source: Addr16, Bytes: 3, Cycles: 6})
	def(0xd9, Definition{Operation: Reti, Cycles: 4})
	def(0xe0, Definition{Operation: Ld8, Dest: Addr8, Source: A, Bytes: 2, Cycles: 3})
	def(0xe2, Definition{Operation: Ld8, Dest: InC, Source: A, Cycles: 2})
	def(0xe8, Definition{Operation: AddSP, Dest: SP, Source: Data8, Bytes: 2, Cycles: 4})
	def(0xe9, Definition{Operation: Jp, Source: HL, Cycles: 1})
	def(0xea, Definition{Operation: Ld8, Dest: Addr16, Source: A, Bytes: 3, Cycles: 4})
	def(0xf0, Definition{Operation: Ld8, Dest: A, Source: Addr8, Bytes: 2, Cycles: 3})
	def(0xf2, Definition{Operation: Ld8, Dest: A, Source: InC, Cycles: 2})
	def(0xf3, Definition{Operation: Di, Cycles: 1})
	def(0xf8, Definition{Operation: LdHLSP, Dest: HL, Source: SPRel8, Bytes: 2, Cycles: 3})
	def(0xf9, Definition{Operation: Ld16, Dest: SP, Source: HL, Cycles: 2})
	def(0xfa, Definition{Operation: Ld8, Dest: A, Source: Addr16, Bytes: 3, Cycles: 4})
	def(0xfb, Definition{Operation: Ei, Cycles: 1})

	for _, op := range illegalOpcodes {
		def(op, Definition{Illegal: true, Cycles: 1})
	}

	return tbl
}

// newExtendedTable builds the instruction table behind the 0xcb prefix.
// The extended table is perfectly regular: two bits select the operation
// group, three bits the operand and, for the bit operations, three bits
// the bit number.
func newExtendedTable() [256]Definition {
	var tbl [256]Definition

	shifts := [8]Operation{Rlc, Rrc, Rl, Rr, Sla, Sra, Swap, Srl}

	for op := 0; op <= 0xff; op++ {
		src := regOperands[op&0x07]

		d := Definition{
			OpCode:   uint8(op),
			Prefixed: true,
			Bytes:    2,
			Source:   src,
		}

		switch op >> 6 {
		case 0:
			d.Operation = shifts[(op>>3)&0x07]
			d.Dest = src
		case 1:
			d.Operation = Bit
			d.Value = uint8(op>>3) & 0x07
		case 2:
			d.Operation = Res
			d.Dest = src
			d.Value = uint8(op>>3) & 0x07
		case 3:
			d.Operation = Set
			d.Dest = src
			d.Value = uint8(op>>3) & 0x07
		}

		d.Cycles = 2
		if src == InHL {
			// BIT only reads the memory location, the others write it back
			if d.Operation == Bit {
				d.Cycles = 3
			} else {
				d.Cycles = 4
			}
		}

		tbl[op] = d
	}

	return tbl
}
