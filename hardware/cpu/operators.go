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

// operator implements a single instruction type. the returned boolean
// indicates that a conditional instruction took its branch.
type operator func(mc *CPU, defn *definitions.Definition) (bool, error)

var operators [definitions.NumOperators]operator

func init() {
	operators = [definitions.NumOperators]operator{
		definitions.Nop:  func(_ *CPU, _ *definitions.Definition) (bool, error) { return false, nil },
		definitions.Ld:   opLd,
		definitions.Inc:  opInc,
		definitions.Dec:  opDec,
		definitions.Add:  opAdd,
		definitions.Adc:  opAdc,
		definitions.Sub:  opSub,
		definitions.Sbc:  opSbc,
		definitions.And:  opAnd,
		definitions.Xor:  opXor,
		definitions.Or:   opOr,
		definitions.Cp:   opCp,
		definitions.Push: opPush,
		definitions.Pop:  opPop,
		definitions.Jr:   opJr,
		definitions.Jp:   opJp,
		definitions.Call: opCall,
		definitions.Ret:  opRet,
		definitions.Reti: opReti,
		definitions.Rst:  opRst,
		definitions.Rlca: opRlca,
		definitions.Rrca: opRrca,
		definitions.Rla:  opRla,
		definitions.Rra:  opRra,
		definitions.Daa:  opDaa,
		definitions.Cpl:  opCpl,
		definitions.Scf:  opScf,
		definitions.Ccf:  opCcf,
		definitions.Di:   opDi,
		definitions.Ei:   opEi,
		definitions.Halt: opUnimplemented,
		definitions.Stop: opUnimplemented,
		definitions.Rlc:  rotate(func(mc *CPU, r *registers.Register) bool { return r.RLC() }),
		definitions.Rrc:  rotate(func(mc *CPU, r *registers.Register) bool { return r.RRC() }),
		definitions.Rl:   rotate(func(mc *CPU, r *registers.Register) bool { return r.RL(mc.F.Carry) }),
		definitions.Rr:   rotate(func(mc *CPU, r *registers.Register) bool { return r.RR(mc.F.Carry) }),
		definitions.Sla:  rotate(func(mc *CPU, r *registers.Register) bool { return r.SLA() }),
		definitions.Sra:  rotate(func(mc *CPU, r *registers.Register) bool { return r.SRA() }),
		definitions.Srl:  rotate(func(mc *CPU, r *registers.Register) bool { return r.SRL() }),
		definitions.Swap: rotate(func(mc *CPU, r *registers.Register) bool { r.Swap(); return false }),
		definitions.Bit:  opBit,
		definitions.Res:  opRes,
		definitions.Set:  opSet,
	}
}

func opLd(mc *CPU, defn *definitions.Definition) (bool, error) {
	if defn.Dst.IsWide() || defn.Src.IsWide() {
		mc.write16(defn.Dst, mc.read16(defn.Src))
		return false, nil
	}
	v, err := mc.read8(defn.Src)
	if err != nil {
		return false, err
	}
	return false, mc.write8(defn.Dst, v)
}

// step16 handles INC and DEC of the 16 bit registers. flags are unaffected.
// returns false if the operand is not a 16 bit register.
func (mc *CPU) step16(o definitions.Operand, delta uint16) bool {
	switch o {
	case definitions.BC, definitions.DE, definitions.HL, definitions.SP:
		mc.write16(o, mc.read16(o)+delta)
		return true
	}
	return false
}

func opInc(mc *CPU, defn *definitions.Definition) (bool, error) {
	if mc.step16(defn.Dst, 1) {
		return false, nil
	}
	return false, mc.modify8(defn.Dst, func(r *registers.Register) {
		mc.F.HalfCarry = r.Inc()
		mc.F.Zero = r.IsZero()
		mc.F.Subtract = false
	})
}

func opDec(mc *CPU, defn *definitions.Definition) (bool, error) {
	if mc.step16(defn.Dst, 0xffff) {
		return false, nil
	}
	return false, mc.modify8(defn.Dst, func(r *registers.Register) {
		mc.F.HalfCarry = r.Dec()
		mc.F.Zero = r.IsZero()
		mc.F.Subtract = true
	})
}

// alu performs an operation on the accumulator with the value of the source
// operand.
func (mc *CPU) alu(defn *definitions.Definition, f func(v uint8)) error {
	v, err := mc.read8(defn.Src)
	if err != nil {
		return err
	}
	f(v)
	mc.F.Zero = mc.A.IsZero()
	return nil
}

func opAdd(mc *CPU, defn *definitions.Definition) (bool, error) {
	switch defn.Dst {
	case definitions.HL:
		mc.F.Carry, mc.F.HalfCarry = mc.HL().Add(mc.read16(defn.Src))
		mc.F.Subtract = false
		return false, nil
	case definitions.SP:
		mc.SP.Load(mc.addSPSigned())
		return false, nil
	}

	return false, mc.alu(defn, func(v uint8) {
		mc.F.Carry, mc.F.HalfCarry = mc.A.Add(v, false)
		mc.F.Subtract = false
	})
}

func opAdc(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.F.Carry, mc.F.HalfCarry = mc.A.Add(v, mc.F.Carry)
		mc.F.Subtract = false
	})
}

func opSub(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.F.Carry, mc.F.HalfCarry = mc.A.Subtract(v, false)
		mc.F.Subtract = true
	})
}

func opSbc(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.F.Carry, mc.F.HalfCarry = mc.A.Subtract(v, mc.F.Carry)
		mc.F.Subtract = true
	})
}

func opAnd(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.A.AND(v)
		mc.F.Subtract = false
		mc.F.HalfCarry = true
		mc.F.Carry = false
	})
}

func opXor(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.A.XOR(v)
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false
	})
}

func opOr(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.alu(defn, func(v uint8) {
		mc.A.OR(v)
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false
	})
}

// compare is a subtraction that discards the result.
func opCp(mc *CPU, defn *definitions.Definition) (bool, error) {
	v, err := mc.read8(defn.Src)
	if err != nil {
		return false, err
	}
	mc.acc8.Load(mc.A.Value())
	mc.F.Carry, mc.F.HalfCarry = mc.acc8.Subtract(v, false)
	mc.F.Zero = mc.acc8.IsZero()
	mc.F.Subtract = true
	return false, nil
}

func opPush(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.push16(mc.read16(defn.Src))
}

func opPop(mc *CPU, defn *definitions.Definition) (bool, error) {
	v, err := mc.pop16()
	if err != nil {
		return false, err
	}
	mc.write16(defn.Dst, v)
	return false, nil
}

func opJr(mc *CPU, defn *definitions.Definition) (bool, error) {
	if !mc.condition(defn.Dst) {
		return false, nil
	}
	e := int8(uint8(mc.LastResult.InstructionData))
	mc.PC.Load(mc.PC.Address() + uint16(int16(e)))
	return defn.IsConditional(), nil
}

func opJp(mc *CPU, defn *definitions.Definition) (bool, error) {
	if !mc.condition(defn.Dst) {
		return false, nil
	}
	mc.PC.Load(mc.read16(defn.Src))
	return defn.IsConditional(), nil
}

func opCall(mc *CPU, defn *definitions.Definition) (bool, error) {
	if !mc.condition(defn.Dst) {
		return false, nil
	}
	if err := mc.push16(mc.PC.Address()); err != nil {
		return false, err
	}
	mc.PC.Load(mc.LastResult.InstructionData)
	return defn.IsConditional(), nil
}

func opRet(mc *CPU, defn *definitions.Definition) (bool, error) {
	if !mc.condition(defn.Dst) {
		return false, nil
	}
	v, err := mc.pop16()
	if err != nil {
		return false, err
	}
	mc.PC.Load(v)
	return defn.IsConditional(), nil
}

func opReti(mc *CPU, _ *definitions.Definition) (bool, error) {
	v, err := mc.pop16()
	if err != nil {
		return false, err
	}
	mc.PC.Load(v)
	mc.IME = true
	return false, nil
}

func opRst(mc *CPU, defn *definitions.Definition) (bool, error) {
	if err := mc.push16(mc.PC.Address()); err != nil {
		return false, err
	}
	mc.PC.Load(uint16(defn.Param))
	return false, nil
}

// the accumulator rotates always clear the zero flag
func (mc *CPU) rotateA(carry bool) {
	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = carry
}

func opRlca(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.rotateA(mc.A.RLC())
	return false, nil
}

func opRrca(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.rotateA(mc.A.RRC())
	return false, nil
}

func opRla(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.rotateA(mc.A.RL(mc.F.Carry))
	return false, nil
}

func opRra(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.rotateA(mc.A.RR(mc.F.Carry))
	return false, nil
}

// decimal adjust the accumulator after a BCD addition or subtraction.
func opDaa(mc *CPU, _ *definitions.Definition) (bool, error) {
	a := mc.A.Value()
	carry := mc.F.Carry

	var adj uint8
	if mc.F.Subtract {
		if mc.F.Carry {
			adj |= 0x60
		}
		if mc.F.HalfCarry {
			adj |= 0x06
		}
		a -= adj
	} else {
		if mc.F.Carry || a > 0x99 {
			adj |= 0x60
			carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			adj |= 0x06
		}
		a += adj
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.F.Carry = carry
	return false, nil
}

func opCpl(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.A.XOR(0xff)
	mc.F.Subtract = true
	mc.F.HalfCarry = true
	return false, nil
}

func opScf(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = true
	return false, nil
}

func opCcf(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = !mc.F.Carry
	return false, nil
}

func opDi(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.IME = false
	return false, nil
}

func opEi(mc *CPU, _ *definitions.Definition) (bool, error) {
	mc.IME = true
	return false, nil
}

func opUnimplemented(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.fault(faults.ErrUnimplemented).WithDetail("%s", defn.Mnemonic)
}

// rotate creates an operator for the prefixed rotate and shift instructions.
// the function returns the bit shifted out.
func rotate(f func(mc *CPU, r *registers.Register) bool) operator {
	return func(mc *CPU, defn *definitions.Definition) (bool, error) {
		return false, mc.modify8(defn.Dst, func(r *registers.Register) {
			mc.F.Carry = f(mc, r)
			mc.F.Zero = r.IsZero()
			mc.F.Subtract = false
			mc.F.HalfCarry = false
		})
	}
}

func opBit(mc *CPU, defn *definitions.Definition) (bool, error) {
	v, err := mc.read8(defn.Dst)
	if err != nil {
		return false, err
	}
	mc.F.Zero = v&(1<<defn.Param) == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = true
	return false, nil
}

func opRes(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.modify8(defn.Dst, func(r *registers.Register) {
		r.Res(defn.Param)
	})
}

func opSet(mc *CPU, defn *definitions.Definition) (bool, error) {
	return false, mc.modify8(defn.Dst, func(r *registers.Register) {
		r.Set(defn.Param)
	})
}
