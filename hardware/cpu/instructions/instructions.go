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

import (
	"fmt"
	"strings"
)

// Operation is what an instruction does, separated from where its operands
// come from. Operations with the same mnemonic but different flag behaviour
// (eg. ADD HL,rr against ADD A,r) are distinct operations.
type Operation int

// List of operations implemented by the CPU.
const (
	Nop Operation = iota
	Stop
	Halt
	Ld8
	Ld16
	LdHLSP
	Inc8
	Dec8
	Inc16
	Dec16
	Add8
	Adc8
	Sub8
	Sbc8
	And8
	Xor8
	Or8
	Cp8
	AddHL
	AddSP
	Daa
	Cpl
	Scf
	Ccf
	Rlca
	Rla
	Rrca
	Rra
	Jp
	Jr
	Call
	Ret
	Reti
	Rst
	Push
	Pop
	Di
	Ei
	Prefix

	// operations reached through the 0xcb prefix
	Rlc
	Rrc
	Rl
	Rr
	Sla
	Sra
	Swap
	Srl
	Bit
	Res
	Set
)

func (op Operation) String() string {
	switch op {
	case Nop:
		return "NOP"
	case Stop:
		return "STOP"
	case Halt:
		return "HALT"
	case Ld8, Ld16, LdHLSP:
		return "LD"
	case Inc8, Inc16:
		return "INC"
	case Dec8, Dec16:
		return "DEC"
	case Add8, AddHL, AddSP:
		return "ADD"
	case Adc8:
		return "ADC"
	case Sub8:
		return "SUB"
	case Sbc8:
		return "SBC"
	case And8:
		return "AND"
	case Xor8:
		return "XOR"
	case Or8:
		return "OR"
	case Cp8:
		return "CP"
	case Daa:
		return "DAA"
	case Cpl:
		return "CPL"
	case Scf:
		return "SCF"
	case Ccf:
		return "CCF"
	case Rlca:
		return "RLCA"
	case Rla:
		return "RLA"
	case Rrca:
		return "RRCA"
	case Rra:
		return "RRA"
	case Jp:
		return "JP"
	case Jr:
		return "JR"
	case Call:
		return "CALL"
	case Ret:
		return "RET"
	case Reti:
		return "RETI"
	case Rst:
		return "RST"
	case Push:
		return "PUSH"
	case Pop:
		return "POP"
	case Di:
		return "DI"
	case Ei:
		return "EI"
	case Prefix:
		return "PREFIX"
	case Rlc:
		return "RLC"
	case Rrc:
		return "RRC"
	case Rl:
		return "RL"
	case Rr:
		return "RR"
	case Sla:
		return "SLA"
	case Sra:
		return "SRA"
	case Swap:
		return "SWAP"
	case Srl:
		return "SRL"
	case Bit:
		return "BIT"
	case Res:
		return "RES"
	case Set:
		return "SET"
	}

	return "undecoded operation"
}

// Operand describes where an instruction reads a value from or writes a
// value to.
type Operand int

// List of operands. The In* operands are indirect: the named pair holds the
// address of the value. InHLInc and InHLDec additionally step the HL pair
// after the access.
const (
	None Operand = iota
	A
	B
	C
	D
	E
	H
	L
	AF
	BC
	DE
	HL
	SP
	InBC
	InDE
	InHL
	InHLInc
	InHLDec
	InC    // 0xff00 + C
	Data8  // immediate byte
	Data16 // immediate 16bit value, low byte first
	Addr8  // 0xff00 + immediate byte, as an address
	Addr16 // immediate 16bit value, as an address
	SPRel8 // SP + signed immediate byte
)

func (o Operand) String() string {
	switch o {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case InBC:
		return "(BC)"
	case InDE:
		return "(DE)"
	case InHL:
		return "(HL)"
	case InHLInc:
		return "(HL+)"
	case InHLDec:
		return "(HL-)"
	case InC:
		return "(C)"
	case Data8:
		return "d8"
	case Data16:
		return "d16"
	case Addr8:
		return "(a8)"
	case Addr16:
		return "(a16)"
	case SPRel8:
		return "SP+r8"
	}

	return ""
}

// IsIndirect returns true for operands that are resolved through memory.
func (o Operand) IsIndirect() bool {
	switch o {
	case InBC, InDE, InHL, InHLInc, InHLDec, InC, Addr8, Addr16:
		return true
	}
	return false
}

// Condition gates the flow instructions (JR, JP, CALL, RET) on the state of
// a flag.
type Condition int

// List of conditions. Always is the absence of a condition.
const (
	Always Condition = iota
	IsZero
	NotZero
	IsCarry
	NotCarry
)

func (c Condition) String() string {
	switch c {
	case IsZero:
		return "Z"
	case NotZero:
		return "NZ"
	case IsCarry:
		return "C"
	case NotCarry:
		return "NC"
	}

	return ""
}

// Definition defines each instruction in the instruction set; one per
// opcode of the primary table and one per opcode of the table behind the
// 0xcb prefix.
type Definition struct {
	OpCode   uint8
	Prefixed bool

	// total length of the instruction in bytes, opcode (and prefix)
	// included
	Bytes int

	// duration in machine cycles. for conditional flow instructions Cycles
	// is the duration when the condition fails and CyclesTaken the duration
	// when it succeeds; CyclesTaken is zero everywhere else
	Cycles      int
	CyclesTaken int

	Operation Operation
	Dest      Operand
	Source    Operand
	Condition Condition

	// bit number for BIT/RES/SET; call address for RST
	Value uint8

	// opcodes the CPU traps on. the hardware locks up if one is fetched
	Illegal bool
}

// Mnemonic returns the canonical assembly form of the instruction, with
// immediate operands written as placeholder tokens (d8, d16, a8, a16, r8).
func (defn Definition) Mnemonic() string {
	if defn.Illegal {
		return fmt.Sprintf("ILLEGAL (%#02x)", defn.OpCode)
	}

	s := strings.Builder{}

	switch defn.Operation {
	case LdHLSP:
		return "LD HL,SP+r8"
	case AddSP:
		return "ADD SP,r8"
	case Jr:
		s.WriteString("JR ")
		if defn.Condition != Always {
			s.WriteString(defn.Condition.String())
			s.WriteRune(',')
		}
		s.WriteString("r8")
		return s.String()
	case Rst:
		return fmt.Sprintf("RST %02XH", defn.Value)
	case Bit, Res, Set:
		return fmt.Sprintf("%s %d,%s", defn.Operation, defn.Value, defn.Source)
	case Jp, Call:
		// the jump target is written without the indirection brackets of
		// the canonical Addr16 form. the target is the operand, not the
		// value stored at the operand
		if defn.Source == Addr16 {
			s.WriteString(defn.Operation.String())
			s.WriteRune(' ')
			if defn.Condition != Always {
				s.WriteString(defn.Condition.String())
				s.WriteRune(',')
			}
			s.WriteString("a16")
			return s.String()
		}
	case Sub8, And8, Xor8, Or8, Cp8:
		// the accumulator is implied in the canonical form of these
		return fmt.Sprintf("%s %s", defn.Operation, defn.Source)
	case Rlc, Rrc, Rl, Rr, Sla, Sra, Swap, Srl:
		// destination and source are the same operand. written once
		return fmt.Sprintf("%s %s", defn.Operation, defn.Source)
	case Ld8:
		// accesses through the 0xff00 page have their own mnemonic
		if defn.Dest == Addr8 || defn.Source == Addr8 {
			s.WriteString("LDH ")
			s.WriteString(defn.Dest.String())
			s.WriteRune(',')
			s.WriteString(defn.Source.String())
			return s.String()
		}
	}

	s.WriteString(defn.Operation.String())

	if defn.Condition != Always {
		s.WriteRune(' ')
		s.WriteString(defn.Condition.String())
		if defn.Dest != None || defn.Source != None {
			s.WriteRune(',')
		}
	} else if defn.Dest != None || defn.Source != None {
		s.WriteRune(' ')
	}

	if defn.Dest != None {
		s.WriteString(defn.Dest.String())
		if defn.Source != None {
			s.WriteRune(',')
		}
	}
	if defn.Source != None {
		s.WriteString(defn.Source.String())
	}

	return s.String()
}

// Render returns the mnemonic with the placeholder tokens replaced by the
// actual immediate operand. Execution and disassembly both render through
// this function so the two views of an opcode can never diverge.
func (defn Definition) Render(data uint16) string {
	m := defn.Mnemonic()

	switch defn.Bytes {
	case 2:
		if defn.Prefixed {
			break
		}
		v := uint8(data)
		m = strings.Replace(m, "(a8)", fmt.Sprintf("($ff%02x)", v), 1)
		m = strings.Replace(m, "d8", fmt.Sprintf("$%02x", v), 1)
		m = strings.Replace(m, "r8", fmt.Sprintf("%+d", int8(v)), 1)
	case 3:
		m = strings.Replace(m, "a16", fmt.Sprintf("$%04x", data), 1)
		m = strings.Replace(m, "d16", fmt.Sprintf("$%04x", data), 1)
	}

	return m
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	p := ""
	if defn.Prefixed {
		p = "cb "
	}
	if defn.CyclesTaken > 0 {
		return fmt.Sprintf("%s%02x %s +%dbytes (%d/%d cycles)", p, defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.CyclesTaken)
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles)", p, defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the instruction is gated on a flag.
func (defn Definition) IsConditional() bool {
	return defn.Condition != Always
}
