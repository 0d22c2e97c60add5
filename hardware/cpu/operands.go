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
	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// reg8 returns the register for an 8 bit register operand. returns nil for
// any other operand.
func (mc *CPU) reg8(o definitions.Operand) *registers.Register {
	switch o {
	case definitions.A:
		return &mc.A
	case definitions.B:
		return &mc.B
	case definitions.C:
		return &mc.C
	case definitions.D:
		return &mc.D
	case definitions.E:
		return &mc.E
	case definitions.H:
		return &mc.H
	case definitions.L:
		return &mc.L
	}
	return nil
}

// address resolves a memory operand. the HL increment and decrement variants
// update HL as a side effect and will fault if HL would wrap.
func (mc *CPU) address(o definitions.Operand) (uint16, error) {
	switch o {
	case definitions.IndBC:
		return mc.BC().Value(), nil
	case definitions.IndDE:
		return mc.DE().Value(), nil
	case definitions.IndHL:
		return mc.HL().Value(), nil
	case definitions.IndHLInc:
		hl := mc.HL()
		addr := hl.Value()
		if addr == 0xffff {
			return 0, mc.fault(faults.ErrAddressRegisterBounds).WithDetail("HL+ with HL=0x%04x", addr)
		}
		hl.Inc()
		return addr, nil
	case definitions.IndHLDec:
		hl := mc.HL()
		addr := hl.Value()
		if addr == 0x0000 {
			return 0, mc.fault(faults.ErrAddressRegisterBounds).WithDetail("HL- with HL=0x%04x", addr)
		}
		hl.Dec()
		return addr, nil
	case definitions.IndC:
		return 0xff00 | uint16(mc.C.Value()), nil
	case definitions.IndA8:
		return 0xff00 | (mc.LastResult.InstructionData & 0xff), nil
	case definitions.IndA16:
		return mc.LastResult.InstructionData, nil
	}
	return 0, mc.fault(faults.ErrUnknownOpcode).WithDetail("%s is not a memory operand", o)
}

func (mc *CPU) read8(o definitions.Operand) (uint8, error) {
	if r := mc.reg8(o); r != nil {
		return r.Value(), nil
	}

	switch o {
	case definitions.D8, definitions.E8:
		return uint8(mc.LastResult.InstructionData), nil
	}

	addr, err := mc.address(o)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(addr), nil
}

func (mc *CPU) write8(o definitions.Operand, v uint8) error {
	if r := mc.reg8(o); r != nil {
		r.Load(v)
		return nil
	}

	addr, err := mc.address(o)
	if err != nil {
		return err
	}
	mc.mem.Write(addr, v)
	return nil
}

// modify8 applies f to an 8 bit operand. memory operands are copied into the
// internal accumulator, modified and written back.
func (mc *CPU) modify8(o definitions.Operand, f func(r *registers.Register)) error {
	if r := mc.reg8(o); r != nil {
		f(r)
		return nil
	}

	addr, err := mc.address(o)
	if err != nil {
		return err
	}
	mc.acc8.Load(mc.mem.Read(addr))
	f(&mc.acc8)
	mc.mem.Write(addr, mc.acc8.Value())
	return nil
}

func (mc *CPU) read16(o definitions.Operand) uint16 {
	switch o {
	case definitions.AF:
		return mc.AF()
	case definitions.BC:
		return mc.BC().Value()
	case definitions.DE:
		return mc.DE().Value()
	case definitions.HL:
		return mc.HL().Value()
	case definitions.SP:
		return mc.SP.Address()
	case definitions.D16, definitions.A16:
		return mc.LastResult.InstructionData
	case definitions.SPE8:
		return mc.addSPSigned()
	}
	return 0
}

func (mc *CPU) write16(o definitions.Operand, v uint16) {
	switch o {
	case definitions.AF:
		mc.LoadAF(v)
	case definitions.BC:
		mc.BC().Load(v)
	case definitions.DE:
		mc.DE().Load(v)
	case definitions.HL:
		mc.HL().Load(v)
	case definitions.SP:
		mc.SP.Load(v)
	case definitions.IndA16:
		addr := mc.LastResult.InstructionData
		mc.mem.Write(addr, uint8(v))
		mc.mem.Write(addr+1, uint8(v>>8))
	}
}

// addSPSigned returns SP plus the signed immediate value. flags are set
// according to an unsigned addition of the lower byte.
func (mc *CPU) addSPSigned() uint16 {
	sp := mc.SP.Address()
	e := uint16(uint8(mc.LastResult.InstructionData))
	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = (sp&0x0f)+(e&0x0f) > 0x0f
	mc.F.Carry = (sp&0xff)+e > 0xff
	return sp + uint16(int16(int8(e)))
}

// push16 pushes a value onto the stack, high byte first. the stack pointer is
// not changed if the push would leave the stack window.
func (mc *CPU) push16(v uint16) error {
	low, high := mc.prefs.StackWindow()
	sp := mc.SP.Address()
	if sp < 2 || sp-2 < low || sp > high {
		return mc.fault(faults.ErrStackViolation).WithDetail("push with SP=0x%04x outside 0x%04x-0x%04x", sp, low, high)
	}
	mc.mem.Write(sp-1, uint8(v>>8))
	mc.mem.Write(sp-2, uint8(v))
	mc.SP.Load(sp - 2)
	return nil
}

// pop16 pops a value from the stack, low byte first.
func (mc *CPU) pop16() (uint16, error) {
	low, high := mc.prefs.StackWindow()
	sp := mc.SP.Address()
	if sp < low || uint32(sp)+2 > uint32(high) {
		return 0, mc.fault(faults.ErrStackViolation).WithDetail("pop with SP=0x%04x outside 0x%04x-0x%04x", sp, low, high)
	}
	lo := mc.mem.Read(sp)
	hi := mc.mem.Read(sp + 1)
	mc.SP.Load(sp + 2)
	return uint16(hi)<<8 | uint16(lo), nil
}

// condition returns true if the branch condition holds. the absence of a
// condition always holds.
func (mc *CPU) condition(o definitions.Operand) bool {
	switch o {
	case definitions.CondNZ:
		return !mc.F.Zero
	case definitions.CondZ:
		return mc.F.Zero
	case definitions.CondNC:
		return !mc.F.Carry
	case definitions.CondC:
		return mc.F.Carry
	}
	return true
}
