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

package cpu

import (
	"fmt"

	"github.com/quarthex/gopherboy/curated"
	"github.com/quarthex/gopherboy/hardware/cpu/execution"
	"github.com/quarthex/gopherboy/hardware/cpu/instructions"
	"github.com/quarthex/gopherboy/hardware/cpu/registers"
	"github.com/quarthex/gopherboy/hardware/memory/cpubus"
)

// Sentinal error returned when the CPU fetches an opcode with no
// instruction behind it. The real hardware locks up when this happens.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at pc (%#04x)"

// the addresses of the two registers of the interrupt system.
const (
	addrIntFlag   = uint16(0xff0f)
	addrIntEnable = uint16(0xffff)
)

// the address the first interrupt vector; each subsequent vector is eight
// bytes further on.
const intVectorBase = uint16(0x0040)

// machine cycles consumed by an interrupt dispatch.
const intDispatchCycles = 5

// CPU implements the Sharp LR35902 found in the DMG.
type CPU struct {
	A  *registers.Register
	F  registers.Status
	BC *registers.Pair
	DE *registers.Pair
	HL *registers.Pair
	SP *registers.Pair
	PC *registers.ProgramCounter

	mem cpubus.Memory

	// interrupt master enable. imePending implements the one instruction
	// delay of the EI instruction
	ime        bool
	imePending bool

	// Halted is true when the CPU is sleeping until the next interrupt
	// request
	Halted bool

	// last result. the result of the last execution on the CPU. a
	// convenient way to get the disassembly of the most recent instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem: mem,
		A:   registers.NewRegister(0, "A"),
		F:   registers.NewStatus(),
		BC:  registers.NewPair(0, "BC"),
		DE:  registers.NewPair(0, "DE"),
		HL:  registers.NewPair(0, "HL"),
		SP:  registers.NewPair(0, "SP"),
		PC:  registers.NewProgramCounter(0),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s F=%s %s %s %s %s PC=%s", mc.A, mc.F, mc.BC, mc.DE, mc.HL, mc.SP, mc.PC)
}

// Reset CPU registers to the state they are in when the boot ROM hands
// over to the cartridge.
func (mc *CPU) Reset() {
	mc.A.Load(0x01)
	mc.F.FromValue(0xb0)
	mc.BC.Load(0x0013)
	mc.DE.Load(0x00d8)
	mc.HL.Load(0x014d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
	mc.ime = false
	mc.imePending = false
	mc.Halted = false
	mc.LastResult.Reset()
}

// IME returns the state of the interrupt master enable.
func (mc *CPU) IME() bool {
	return mc.ime
}

// Step loads the program counter with the supplied address and executes
// from there, as ExecuteInstruction() does.
func (mc *CPU) Step(address uint16) (int, error) {
	mc.PC.Load(address)
	return mc.ExecuteInstruction()
}

// Mnemonic returns the disassembly of the instruction at the supplied
// address. The decode runs through the same tables and the same renderer as
// ExecuteInstruction() but mutates no register or memory state and does not
// advance the program counter.
func (mc *CPU) Mnemonic(address uint16) (string, error) {
	opcode, err := mc.mem.Read(address)
	if err != nil {
		return "", err
	}

	defn := &instructions.Primary[opcode]
	operand := address + 1

	if defn.Operation == instructions.Prefix {
		cb, err := mc.mem.Read(operand)
		if err != nil {
			return "", err
		}
		defn = &instructions.Extended[cb]
		operand++
	}

	var data uint16
	switch defn.Bytes - int(operand-address) {
	case 1:
		v, err := mc.mem.Read(operand)
		if err != nil {
			return "", err
		}
		data = uint16(v)
	case 2:
		lo, err := mc.mem.Read(operand)
		if err != nil {
			return "", err
		}
		hi, err := mc.mem.Read(operand + 1)
		if err != nil {
			return "", err
		}
		data = (uint16(hi) << 8) | uint16(lo)
	}

	return defn.Render(data), nil
}

// ExecuteInstruction executes the instruction at the current program
// counter, first dispatching any interrupt that is both requested and
// enabled. Returns the number of machine cycles consumed.
func (mc *CPU) ExecuteInstruction() (int, error) {
	pending, err := mc.pendingInterrupts()
	if err != nil {
		return 0, err
	}

	if mc.ime && pending != 0 {
		mc.Halted = false
		return intDispatchCycles, mc.dispatchInterrupt(pending)
	}

	if mc.Halted {
		if pending == 0 {
			// nothing to wake up for. the CPU idles for a cycle
			return 1, nil
		}
		mc.Halted = false
	}

	// the effect of a previous EI lands after the next instruction has
	// executed. note the pending enable now and commit it at the end
	enableIME := mc.imePending
	mc.imePending = false

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.fetch8()
	if err != nil {
		return 0, err
	}

	defn := &instructions.Primary[opcode]
	if defn.Illegal {
		return 0, curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}
	if defn.Operation == instructions.Prefix {
		cb, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		defn = &instructions.Extended[cb]
	}
	mc.LastResult.Defn = defn

	// fetch the immediate operand, if there is one
	switch defn.Bytes - mc.LastResult.ByteCount {
	case 1:
		v, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		mc.LastResult.Data = uint16(v)
	case 2:
		lo, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		hi, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		mc.LastResult.Data = (uint16(hi) << 8) | uint16(lo)
	}

	cycles := defn.Cycles

	switch defn.Operation {
	case instructions.Nop:
		// does what it says on the tin

	case instructions.Stop:
		// without a display or a speed switch to worry about, STOP behaves
		// like HALT
		mc.Halted = true

	case instructions.Halt:
		mc.Halted = true

	case instructions.Ld8:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.store8(defn.Dest, v); err != nil {
			return 0, err
		}

	case instructions.Ld16:
		v, err := mc.value16(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.store16(defn.Dest, v); err != nil {
			return 0, err
		}

	case instructions.LdHLSP:
		mc.HL.Load(mc.spRel8())

	case instructions.AddSP:
		mc.SP.Load(mc.spRel8())

	case instructions.Inc8:
		v, err := mc.value8(defn.Dest)
		if err != nil {
			return 0, err
		}
		r := v + 1
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = v&0x0f == 0x0f
		if err := mc.store8(defn.Dest, r); err != nil {
			return 0, err
		}

	case instructions.Dec8:
		v, err := mc.value8(defn.Dest)
		if err != nil {
			return 0, err
		}
		r := v - 1
		mc.F.Zero = r == 0
		mc.F.Subtract = true
		mc.F.HalfCarry = v&0x0f == 0x00
		if err := mc.store8(defn.Dest, r); err != nil {
			return 0, err
		}

	case instructions.Inc16:
		v, err := mc.value16(defn.Dest)
		if err != nil {
			return 0, err
		}
		if err := mc.store16(defn.Dest, v+1); err != nil {
			return 0, err
		}

	case instructions.Dec16:
		v, err := mc.value16(defn.Dest)
		if err != nil {
			return 0, err
		}
		if err := mc.store16(defn.Dest, v-1); err != nil {
			return 0, err
		}

	case instructions.Add8, instructions.Adc8, instructions.Sub8, instructions.Sbc8,
		instructions.And8, instructions.Xor8, instructions.Or8, instructions.Cp8:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		mc.arithmetic8(defn.Operation, v)

	case instructions.AddHL:
		v, err := mc.value16(defn.Source)
		if err != nil {
			return 0, err
		}
		carry, halfCarry := mc.HL.Add(v)
		mc.F.Subtract = false
		mc.F.HalfCarry = halfCarry
		mc.F.Carry = carry

	case instructions.Daa:
		mc.daa()

	case instructions.Cpl:
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true

	case instructions.Scf:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true

	case instructions.Ccf:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry

	case instructions.Rlca:
		mc.A.Load(mc.rlc(mc.A.Value()))
		mc.F.Zero = false

	case instructions.Rla:
		mc.A.Load(mc.rl(mc.A.Value()))
		mc.F.Zero = false

	case instructions.Rrca:
		mc.A.Load(mc.rrc(mc.A.Value()))
		mc.F.Zero = false

	case instructions.Rra:
		mc.A.Load(mc.rr(mc.A.Value()))
		mc.F.Zero = false

	case instructions.Jp:
		target := mc.LastResult.Data
		if defn.Source == instructions.HL {
			target = mc.HL.Address()
		}
		if mc.condition(defn.Condition) {
			mc.PC.Load(target)
			cycles = mc.branchTaken(defn, cycles)
		}

	case instructions.Jr:
		if mc.condition(defn.Condition) {
			offset := int8(uint8(mc.LastResult.Data))
			mc.PC.Add(uint16(int16(offset)))
			cycles = mc.branchTaken(defn, cycles)
		}

	case instructions.Call:
		if mc.condition(defn.Condition) {
			if err := mc.push16(mc.PC.Address()); err != nil {
				return 0, err
			}
			mc.PC.Load(mc.LastResult.Data)
			cycles = mc.branchTaken(defn, cycles)
		}

	case instructions.Ret:
		if mc.condition(defn.Condition) {
			addr, err := mc.pop16()
			if err != nil {
				return 0, err
			}
			mc.PC.Load(addr)
			cycles = mc.branchTaken(defn, cycles)
		}

	case instructions.Reti:
		addr, err := mc.pop16()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(addr)

		// unlike EI, the enable takes effect immediately
		mc.ime = true

	case instructions.Rst:
		if err := mc.push16(mc.PC.Address()); err != nil {
			return 0, err
		}
		mc.PC.Load(uint16(defn.Value))

	case instructions.Push:
		v, err := mc.value16(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.push16(v); err != nil {
			return 0, err
		}

	case instructions.Pop:
		v, err := mc.pop16()
		if err != nil {
			return 0, err
		}
		if err := mc.store16(defn.Dest, v); err != nil {
			return 0, err
		}

	case instructions.Di:
		mc.ime = false
		mc.imePending = false
		enableIME = false

	case instructions.Ei:
		mc.imePending = true

	case instructions.Rlc, instructions.Rrc, instructions.Rl, instructions.Rr,
		instructions.Sla, instructions.Sra, instructions.Swap, instructions.Srl:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.store8(defn.Dest, mc.shift(defn.Operation, v)); err != nil {
			return 0, err
		}

	case instructions.Bit:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		mc.F.Zero = v&(0x01<<defn.Value) == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true

	case instructions.Res:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.store8(defn.Dest, v&^(0x01<<defn.Value)); err != nil {
			return 0, err
		}

	case instructions.Set:
		v, err := mc.value8(defn.Source)
		if err != nil {
			return 0, err
		}
		if err := mc.store8(defn.Dest, v|(0x01<<defn.Value)); err != nil {
			return 0, err
		}

	default:
		return 0, curated.Errorf("cpu: unhandled operation (%s)", defn.Operation)
	}

	if enableIME {
		mc.ime = true
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	return cycles, nil
}

// fetch8 reads the byte at the program counter and advances past it.
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// pendingInterrupts returns the set of interrupts that are both requested
// and enabled.
func (mc *CPU) pendingInterrupts() (uint8, error) {
	ie, err := mc.mem.Read(addrIntEnable)
	if err != nil {
		return 0, err
	}
	rf, err := mc.mem.Read(addrIntFlag)
	if err != nil {
		return 0, err
	}
	return ie & rf & 0x1f, nil
}

// dispatchInterrupt acknowledges the highest priority pending interrupt:
// the request bit is cleared, the master enable dropped and control
// transferred to the interrupt's vector.
func (mc *CPU) dispatchInterrupt(pending uint8) error {
	var bit uint8
	for pending&0x01 == 0 {
		pending >>= 1
		bit++
	}

	rf, err := mc.mem.Read(addrIntFlag)
	if err != nil {
		return err
	}
	if err := mc.mem.Write(addrIntFlag, rf&^(0x01<<bit)); err != nil {
		return err
	}

	mc.ime = false
	if err := mc.push16(mc.PC.Address()); err != nil {
		return err
	}
	mc.PC.Load(intVectorBase + uint16(bit)*8)

	return nil
}

// branchTaken records that a conditional instruction took its branch and
// returns the corrected cycle count. Unconditional flow instructions pass
// through here too; their cycle count is unchanged.
func (mc *CPU) branchTaken(defn *instructions.Definition, cycles int) int {
	if !defn.IsConditional() {
		return cycles
	}
	mc.LastResult.BranchTaken = true
	return defn.CyclesTaken
}

// condition tests the flag named by a flow instruction. Always is true.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.IsZero:
		return mc.F.Zero
	case instructions.NotZero:
		return !mc.F.Zero
	case instructions.IsCarry:
		return mc.F.Carry
	case instructions.NotCarry:
		return !mc.F.Carry
	}
	return true
}

// value8 resolves an operand to the 8bit value it names.
func (mc *CPU) value8(op instructions.Operand) (uint8, error) {
	switch op {
	case instructions.A:
		return mc.A.Value(), nil
	case instructions.B:
		return mc.BC.Hi(), nil
	case instructions.C:
		return mc.BC.Lo(), nil
	case instructions.D:
		return mc.DE.Hi(), nil
	case instructions.E:
		return mc.DE.Lo(), nil
	case instructions.H:
		return mc.HL.Hi(), nil
	case instructions.L:
		return mc.HL.Lo(), nil
	case instructions.InBC:
		return mc.mem.Read(mc.BC.Address())
	case instructions.InDE:
		return mc.mem.Read(mc.DE.Address())
	case instructions.InHL:
		return mc.mem.Read(mc.HL.Address())
	case instructions.InHLInc:
		v, err := mc.mem.Read(mc.HL.Address())
		mc.HL.Load(mc.HL.Value() + 1)
		return v, err
	case instructions.InHLDec:
		v, err := mc.mem.Read(mc.HL.Address())
		mc.HL.Load(mc.HL.Value() - 1)
		return v, err
	case instructions.InC:
		return mc.mem.Read(0xff00 + uint16(mc.BC.Lo()))
	case instructions.Data8:
		return uint8(mc.LastResult.Data), nil
	case instructions.Addr8:
		return mc.mem.Read(0xff00 + mc.LastResult.Data)
	case instructions.Addr16:
		return mc.mem.Read(mc.LastResult.Data)
	}

	return 0, curated.Errorf("cpu: %s is not an 8bit value", op)
}

// store8 resolves an operand to the 8bit location it names and stores a
// value there.
func (mc *CPU) store8(op instructions.Operand, v uint8) error {
	switch op {
	case instructions.A:
		mc.A.Load(v)
	case instructions.B:
		mc.BC.SetHi(v)
	case instructions.C:
		mc.BC.SetLo(v)
	case instructions.D:
		mc.DE.SetHi(v)
	case instructions.E:
		mc.DE.SetLo(v)
	case instructions.H:
		mc.HL.SetHi(v)
	case instructions.L:
		mc.HL.SetLo(v)
	case instructions.InBC:
		return mc.mem.Write(mc.BC.Address(), v)
	case instructions.InDE:
		return mc.mem.Write(mc.DE.Address(), v)
	case instructions.InHL:
		return mc.mem.Write(mc.HL.Address(), v)
	case instructions.InHLInc:
		err := mc.mem.Write(mc.HL.Address(), v)
		mc.HL.Load(mc.HL.Value() + 1)
		return err
	case instructions.InHLDec:
		err := mc.mem.Write(mc.HL.Address(), v)
		mc.HL.Load(mc.HL.Value() - 1)
		return err
	case instructions.InC:
		return mc.mem.Write(0xff00+uint16(mc.BC.Lo()), v)
	case instructions.Addr8:
		return mc.mem.Write(0xff00+mc.LastResult.Data, v)
	case instructions.Addr16:
		return mc.mem.Write(mc.LastResult.Data, v)
	default:
		return curated.Errorf("cpu: %s is not an 8bit location", op)
	}

	return nil
}

// value16 resolves an operand to the 16bit value it names.
func (mc *CPU) value16(op instructions.Operand) (uint16, error) {
	switch op {
	case instructions.AF:
		return (uint16(mc.A.Value()) << 8) | uint16(mc.F.Value()), nil
	case instructions.BC:
		return mc.BC.Value(), nil
	case instructions.DE:
		return mc.DE.Value(), nil
	case instructions.HL:
		return mc.HL.Value(), nil
	case instructions.SP:
		return mc.SP.Value(), nil
	case instructions.Data16:
		return mc.LastResult.Data, nil
	}

	return 0, curated.Errorf("cpu: %s is not a 16bit value", op)
}

// store16 resolves an operand to the 16bit location it names and stores a
// value there. The AF pair is composed from the accumulator and the flags;
// the low nibble of a value stored to it vanishes because the flags have no
// storage behind it.
func (mc *CPU) store16(op instructions.Operand, v uint16) error {
	switch op {
	case instructions.AF:
		mc.A.Load(uint8(v >> 8))
		mc.F.FromValue(uint8(v))
	case instructions.BC:
		mc.BC.Load(v)
	case instructions.DE:
		mc.DE.Load(v)
	case instructions.HL:
		mc.HL.Load(v)
	case instructions.SP:
		mc.SP.Load(v)
	case instructions.Addr16:
		if err := mc.mem.Write(mc.LastResult.Data, uint8(v)); err != nil {
			return err
		}
		return mc.mem.Write(mc.LastResult.Data+1, uint8(v>>8))
	default:
		return curated.Errorf("cpu: %s is not a 16bit location", op)
	}

	return nil
}

// push16 stores a 16bit value on the stack, high byte first.
func (mc *CPU) push16(v uint16) error {
	mc.SP.Load(mc.SP.Value() - 1)
	if err := mc.mem.Write(mc.SP.Address(), uint8(v>>8)); err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return mc.mem.Write(mc.SP.Address(), uint8(v))
}

// pop16 retrieves a 16bit value from the stack.
func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.mem.Read(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Load(mc.SP.Value() + 1)

	hi, err := mc.mem.Read(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Load(mc.SP.Value() + 1)

	return (uint16(hi) << 8) | uint16(lo), nil
}

// spRel8 computes SP plus the signed immediate operand, setting the flags
// from the unsigned byte arithmetic as the hardware does.
func (mc *CPU) spRel8() uint16 {
	sp := mc.SP.Value()
	d := uint16(int16(int8(uint8(mc.LastResult.Data))))

	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = (sp&0x000f)+(d&0x000f) > 0x000f
	mc.F.Carry = (sp&0x00ff)+(d&0x00ff) > 0x00ff

	return sp + d
}

// arithmetic8 performs an 8bit arithmetic or logic operation on the
// accumulator.
func (mc *CPU) arithmetic8(op instructions.Operation, v uint8) {
	a := mc.A.Value()

	var carry uint8
	if mc.F.Carry {
		carry = 1
	}

	switch op {
	case instructions.Add8:
		carry = 0
		fallthrough
	case instructions.Adc8:
		r := a + v + carry
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = (a&0x0f)+(v&0x0f)+carry > 0x0f
		mc.F.Carry = uint16(a)+uint16(v)+uint16(carry) > 0x00ff
		mc.A.Load(r)

	case instructions.Sub8:
		carry = 0
		fallthrough
	case instructions.Sbc8:
		r := a - v - carry
		mc.F.Zero = r == 0
		mc.F.Subtract = true
		mc.F.HalfCarry = a&0x0f < (v&0x0f)+carry
		mc.F.Carry = uint16(a) < uint16(v)+uint16(carry)
		mc.A.Load(r)

	case instructions.And8:
		r := a & v
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true
		mc.F.Carry = false
		mc.A.Load(r)

	case instructions.Xor8:
		r := a ^ v
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false
		mc.A.Load(r)

	case instructions.Or8:
		r := a | v
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false
		mc.A.Load(r)

	case instructions.Cp8:
		// a subtraction that throws away the result
		r := a - v
		mc.F.Zero = r == 0
		mc.F.Subtract = true
		mc.F.HalfCarry = a&0x0f < v&0x0f
		mc.F.Carry = a < v
	}
}

// daa adjusts the accumulator after a round of BCD arithmetic. The
// adjustment depends on the subtract and carry flags left by the preceding
// instruction.
func (mc *CPU) daa() {
	a := int(mc.A.Value())

	if !mc.F.Subtract {
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
		if mc.F.Carry || a > 0x9f {
			a += 0x60
		}
	} else {
		if mc.F.HalfCarry {
			a = (a - 0x06) & 0xff
		}
		if mc.F.Carry {
			a -= 0x60
		}
	}

	// the carry flag is sticky. it is set by the adjustment but never
	// cleared by it
	if a&0x100 == 0x100 {
		mc.F.Carry = true
	}

	mc.A.Load(uint8(a))
	mc.F.Zero = mc.A.IsZero()
	mc.F.HalfCarry = false
}

// the rotate and shift primitives shared by the accumulator rotates and
// the extended instructions. All of them leave the shifted out bit in the
// carry flag and clear subtract and half carry. The accumulator forms
// additionally clear the zero flag after calling these.

func (mc *CPU) rlc(v uint8) uint8 {
	r := (v << 1) | (v >> 7)
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x80 == 0x80
	return r
}

func (mc *CPU) rrc(v uint8) uint8 {
	r := (v >> 1) | (v << 7)
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 == 0x01
	return r
}

func (mc *CPU) rl(v uint8) uint8 {
	r := v << 1
	if mc.F.Carry {
		r |= 0x01
	}
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x80 == 0x80
	return r
}

func (mc *CPU) rr(v uint8) uint8 {
	r := v >> 1
	if mc.F.Carry {
		r |= 0x80
	}
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 == 0x01
	return r
}

// shift performs one of the extended rotate/shift operations.
func (mc *CPU) shift(op instructions.Operation, v uint8) uint8 {
	switch op {
	case instructions.Rlc:
		return mc.rlc(v)
	case instructions.Rrc:
		return mc.rrc(v)
	case instructions.Rl:
		return mc.rl(v)
	case instructions.Rr:
		return mc.rr(v)

	case instructions.Sla:
		r := v << 1
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = v&0x80 == 0x80
		return r

	case instructions.Sra:
		// the sign bit is preserved
		r := (v >> 1) | (v & 0x80)
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = v&0x01 == 0x01
		return r

	case instructions.Swap:
		r := (v << 4) | (v >> 4)
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false
		return r

	case instructions.Srl:
		r := v >> 1
		mc.F.Zero = r == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = v&0x01 == 0x01
		return r
	}

	return v
}
