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

// Package disassembly renders machine code into assembly. Decoding works
// from the same instruction tables the CPU executes from, so the
// disassembly and the execution can never disagree about what an opcode
// means.
//
// Decoding reads through the cpubus.Memory interface and has no side
// effects on the memory it reads.
package disassembly

import (
	"fmt"
	"io"

	"github.com/quarthex/gopherboy/hardware/cpu/instructions"
	"github.com/quarthex/gopherboy/hardware/memory/cpubus"
	"github.com/quarthex/gopherboy/hardware/memory/memorymap"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// the immediate operand, if the instruction has one
	Data uint16
}

// String returns the disassembled instruction with the operand tokens of
// the canonical mnemonic replaced by the instruction's actual operand.
func (e Entry) String() string {
	return fmt.Sprintf("%#04x\t%s", e.Address, e.Operand())
}

// Operand returns the mnemonic with operand tokens substituted, without
// the address prefix of String().
func (e Entry) Operand() string {
	return e.Defn.Render(e.Data)
}

// Next returns the address of the instruction following this one.
func (e Entry) Next() uint16 {
	return e.Address + uint16(e.Defn.Bytes)
}

// Decode disassembles the single instruction at the specified address.
// Illegal opcodes decode to an entry rather than an error; data and code
// are indistinguishable to a disassembler and an illegal opcode is most
// likely data.
func Decode(mem cpubus.Memory, address uint16) (Entry, error) {
	e := Entry{Address: address}

	opcode, err := mem.Read(address)
	if err != nil {
		return e, err
	}

	e.Defn = &instructions.Primary[opcode]
	operand := address + 1

	if e.Defn.Operation == instructions.Prefix {
		cb, err := mem.Read(operand)
		if err != nil {
			return e, err
		}
		e.Defn = &instructions.Extended[cb]
		operand++
	}

	switch e.Defn.Bytes - int(operand-address) {
	case 1:
		v, err := mem.Read(operand)
		if err != nil {
			return e, err
		}
		e.Data = uint16(v)
	case 2:
		lo, err := mem.Read(operand)
		if err != nil {
			return e, err
		}
		hi, err := mem.Read(operand + 1)
		if err != nil {
			return e, err
		}
		e.Data = (uint16(hi) << 8) | uint16(lo)
	}

	return e, nil
}

// Disassembly is a linear disassembly of a block of memory.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles n instructions starting from the origin address.
// Disassembly stops early rather than wrapping around the top of memory.
func FromMemory(mem cpubus.Memory, origin uint16, n int) (*Disassembly, error) {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, n),
	}

	address := origin
	for i := 0; i < n; i++ {
		e, err := Decode(mem, address)
		if err != nil {
			return dsm, err
		}
		dsm.Entries = append(dsm.Entries, e)

		if e.Next() < address {
			break
		}
		address = e.Next()

		if address == memorymap.Memtop {
			break
		}
	}

	return dsm, nil
}

// Write the disassembly to the io.Writer, one instruction per line.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(w, e.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
