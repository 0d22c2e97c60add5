// This file is part of Gopherdmg.
//
// Gopherdmg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdmg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdmg.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// CPU implements the LR35902. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences
	mem   cpubus.Memory

	PC registers.ProgramCounter
	SP registers.StackPointer
	A  registers.Register
	F  registers.Flags
	B  registers.Register
	C  registers.Register
	D  registers.Register
	E  registers.Register
	H  registers.Register
	L  registers.Register

	// interrupt master enable
	IME bool

	// read-modify-write instructions on memory use the accumulator register
	acc8 registers.Register

	primary  []*definitions.Definition
	prefixed []*definitions.Definition

	// the result of the most recent call to Step()
	LastResult execution.Result

	// number of instructions completed since the last reset
	Instructions uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is reset before returning.
//
// Changes to the cpu.romwindow preference take effect immediately. Only the
// most recently created CPU follows the preference.
func NewCPU(p *preferences.Preferences, mem cpubus.Memory) *CPU {
	mc := &CPU{
		prefs:    p,
		mem:      mem,
		primary:  definitions.GetDefinitions(),
		prefixed: definitions.GetPrefixedDefinitions(),
	}
	p.ROMWindow.SetHookPost(mc.applyROMWindow)
	mc.Reset()
	return mc
}

func (mc *CPU) applyROMWindow(v prefs.Value) error {
	mc.PC.SetWindow(uint16(v.(int)))
	return nil
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s A=%s %s=%s %s=%s %s=%s %s=%s IME=%v",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP, mc.A,
		mc.F.Label(), mc.F, mc.BC().Label(), mc.BC(),
		mc.DE().Label(), mc.DE(), mc.HL().Label(), mc.HL(), mc.IME)
}

// Reset reinitialises all registers. The PC is set to zero and interrupts are
// enabled.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Instructions = 0

	mc.PC.Load(0)
	mc.PC.SetWindow(uint16(mc.prefs.ROMWindow.Get().(int)))
	mc.SP = registers.NewStackPointer(0)
	mc.A = registers.NewRegister(0, "A")
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.F.Reset()
	mc.acc8 = registers.NewRegister(0, "acc")

	mc.IME = true
}

// BC returns the B and C registers as a pair.
func (mc *CPU) BC() registers.RegisterPair {
	return registers.NewRegisterPair(&mc.B, &mc.C)
}

// DE returns the D and E registers as a pair.
func (mc *CPU) DE() registers.RegisterPair {
	return registers.NewRegisterPair(&mc.D, &mc.E)
}

// HL returns the H and L registers as a pair.
func (mc *CPU) HL() registers.RegisterPair {
	return registers.NewRegisterPair(&mc.H, &mc.L)
}

// AF returns the value of the accumulator and flags as a 16 bit value.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

// LoadAF sets the accumulator and flags from a 16 bit value. The lower nibble
// of the flags is always zero.
func (mc *CPU) LoadAF(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.F.Load(uint8(v))
}

// fault creates a new fault for the current instruction.
func (mc *CPU) fault(kind error) *faults.Fault {
	r := mc.LastResult
	if r.Prefixed {
		return faults.New(kind, r.PrefixedOpcode, true, r.Address, mc.String())
	}
	return faults.New(kind, r.Opcode, false, r.Address, mc.String())
}

// read8BitPC reads the byte at the PC and advances the PC.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// Step executes the next instruction. The process is:
//
//  1. read opcode and look up the definition. if the opcode is the prefix then
//     read the next byte and look up the definition in the prefixed table
//  2. read the immediate operand bytes, if any
//  3. perform the operation described by the definition
//  4. report the number of cycles to the memory bus
//
// Any error is a *faults.Fault.
func (mc *CPU) Step() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	mc.LastResult.Opcode = opcode

	defn := mc.primary[opcode]
	if defn == nil {
		mc.LastResult.Final = true
		return mc.fault(faults.ErrUnknownOpcode)
	}
	cycles := defn.Cycles

	if defn.Operator == definitions.Prefix {
		mc.LastResult.Prefixed = true
		mc.LastResult.PrefixedOpcode = mc.read8BitPC()
		defn = mc.prefixed[mc.LastResult.PrefixedOpcode]
		if defn == nil {
			mc.LastResult.Final = true
			return mc.fault(faults.ErrUnknownPrefixedOpcode)
		}
		cycles += defn.Cycles
	}

	mc.LastResult.Defn = defn

	// immediate data is always consumed, even if a conditional instruction
	// does not use it
	switch defn.OperandBytes() {
	case 1:
		mc.LastResult.InstructionData = uint16(mc.read8BitPC())
	case 2:
		lo := mc.read8BitPC()
		hi := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)
	}

	f := operators[defn.Operator]
	if f == nil {
		mc.LastResult.Final = true
		return mc.fault(faults.ErrUnknownOpcode)
	}

	taken, err := f(mc, defn)
	if err != nil {
		mc.LastResult.Final = true
		return err
	}

	if taken {
		mc.LastResult.BranchSuccess = true
		cycles += defn.ExtraCycles
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
	mc.Instructions++

	mc.mem.ReportCycles(cycles)

	return nil
}
