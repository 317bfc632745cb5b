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

package execution

import (
	"fmt"

	"github.com/quarthex/gopherboy/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// address the opcode was fetched from
	Address uint16

	// the instruction definition the opcode decoded to. nil until the
	// opcode byte (and prefix, where there is one) has been fetched
	Defn *instructions.Definition

	// the value of the immediate operand, if the instruction has one. the
	// width of the operand is described by the definition
	Data uint16

	// number of bytes fetched during decoding, opcode and prefix included
	ByteCount int

	// machine cycles consumed so far
	Cycles int

	// whether the condition of a conditional instruction succeeded
	BranchTaken bool

	// whether execution of the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Data = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.BranchTaken = false
	r.Final = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return "undecoded instruction"
	}

	data := ""
	switch r.Defn.Bytes {
	case 2:
		if !r.Defn.Prefixed {
			data = fmt.Sprintf(" $%02x", r.Data)
		}
	case 3:
		data = fmt.Sprintf(" $%04x", r.Data)
	}

	cycles := "[v]"
	if r.Final {
		cycles = fmt.Sprintf("[%d]", r.Cycles)
	}

	return fmt.Sprintf("%#04x\t%s%s\t%s", r.Address, r.Defn.Mnemonic(), data, cycles)
}
