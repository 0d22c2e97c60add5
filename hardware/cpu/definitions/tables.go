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

package definitions

// PrefixOpcode is the opcode that selects the prefixed table.
const PrefixOpcode = uint8(0xcb)

// PrefixCycles is the cost of the prefix byte.
const PrefixCycles = 4

// register operands in opcode order. bits 0 to 2 of an opcode often select the
// source operand and bits 3 to 5 the destination
var regs8 = [8]Operand{B, C, D, E, H, L, IndHL, A}

// 16 bit operands selected by bits 4 and 5
var regs16 = [4]Operand{BC, DE, HL, SP}
var stack16 = [4]Operand{BC, DE, HL, AF}
var conditions = [4]Operand{CondNZ, CondZ, CondNC, CondC}

// 8 bit arithmetic operators selected by bits 3 to 5
var alu = [8]Operator{Add, Adc, Sub, Sbc, And, Xor, Or, Cp}

// prefixed rotate and shift operators selected by bits 3 to 5
var rotates = [8]Operator{Rlc, Rrc, Rl, Rr, Sla, Sra, Swap, Srl}

type table struct {
	defns    []*Definition
	prefixed bool
}

func (t *table) add(opcode uint8, op Operator, dst Operand, src Operand, cycles int) *Definition {
	defn := &Definition{
		OpCode:   opcode,
		Prefixed: t.prefixed,
		Mnemonic: mnemonic(op, dst, src, 0),
		Operator: op,
		Dst:      dst,
		Src:      src,
		Bytes:    1 + dst.Width() + src.Width(),
		Cycles:   cycles,
	}
	t.defns[opcode] = defn
	return defn
}

func (t *table) addConditional(opcode uint8, op Operator, cond Operand, src Operand, cycles int, extra int) {
	defn := t.add(opcode, op, cond, src, cycles)
	defn.ExtraCycles = extra
}

func (t *table) addParam(opcode uint8, op Operator, dst Operand, param uint8, cycles int) {
	defn := t.add(opcode, op, dst, None, cycles)
	defn.Param = param
	defn.Mnemonic = mnemonic(op, dst, None, param)
}

// memory operands cost more than register operands
func cost(o Operand, reg int, mem int) int {
	if o.IsMemory() {
		return mem
	}
	return reg
}

// GetDefinitions returns the primary table. Undefined opcodes are nil.
func GetDefinitions() []*Definition {
	t := &table{defns: make([]*Definition, 256)}

	// 0x00 to 0x3f. the first four columns follow a pattern for each row
	for row := uint8(0); row < 4; row++ {
		base := row << 4
		rr := regs16[row]

		t.add(base|0x01, Ld, rr, D16, 12)
		t.add(base|0x03, Inc, rr, None, 8)
		t.add(base|0x09, Add, HL, rr, 8)
		t.add(base|0x0b, Dec, rr, None, 8)
	}

	t.add(0x02, Ld, IndBC, A, 8)
	t.add(0x12, Ld, IndDE, A, 8)
	t.add(0x22, Ld, IndHLInc, A, 8)
	t.add(0x32, Ld, IndHLDec, A, 8)
	t.add(0x0a, Ld, A, IndBC, 8)
	t.add(0x1a, Ld, A, IndDE, 8)
	t.add(0x2a, Ld, A, IndHLInc, 8)
	t.add(0x3a, Ld, A, IndHLDec, 8)

	// INC r, DEC r and LD r,d8 for every register in the 8 bit set
	for i := uint8(0); i < 8; i++ {
		r := regs8[i]
		t.add(i<<3|0x04, Inc, r, None, cost(r, 4, 12))
		t.add(i<<3|0x05, Dec, r, None, cost(r, 4, 12))
		t.add(i<<3|0x06, Ld, r, D8, cost(r, 8, 12))
	}

	t.add(0x00, Nop, None, None, 4)
	t.add(0x10, Stop, None, D8, 4)
	t.add(0x18, Jr, None, E8, 12)
	t.addConditional(0x20, Jr, CondNZ, E8, 8, 4)
	t.addConditional(0x28, Jr, CondZ, E8, 8, 4)
	t.addConditional(0x30, Jr, CondNC, E8, 8, 4)
	t.addConditional(0x38, Jr, CondC, E8, 8, 4)
	t.add(0x08, Ld, IndA16, SP, 20)

	t.add(0x07, Rlca, None, None, 4)
	t.add(0x0f, Rrca, None, None, 4)
	t.add(0x17, Rla, None, None, 4)
	t.add(0x1f, Rra, None, None, 4)
	t.add(0x27, Daa, None, None, 4)
	t.add(0x2f, Cpl, None, None, 4)
	t.add(0x37, Scf, None, None, 4)
	t.add(0x3f, Ccf, None, None, 4)

	// 0x40 to 0x7f. register to register loads. the slot for LD (HL),(HL) is
	// taken by HALT
	for op := 0x40; op <= 0x7f; op++ {
		dst := regs8[(op>>3)&0x07]
		src := regs8[op&0x07]
		if dst == IndHL && src == IndHL {
			t.add(uint8(op), Halt, None, None, 4)
			continue
		}
		cycles := 4
		if dst == IndHL || src == IndHL {
			cycles = 8
		}
		t.add(uint8(op), Ld, dst, src, cycles)
	}

	// 0x80 to 0xbf. 8 bit arithmetic with the accumulator
	for op := 0x80; op <= 0xbf; op++ {
		src := regs8[op&0x07]
		t.add(uint8(op), alu[(op>>3)&0x07], A, src, cost(src, 4, 8))
	}

	// 0xc0 to 0xff
	for i := uint8(0); i < 4; i++ {
		cond := conditions[i]
		t.addConditional(0xc0|i<<3, Ret, cond, None, 8, 12)
		t.add(0xc1|i<<4, Pop, stack16[i], None, 12)
		t.add(0xc5|i<<4, Push, None, stack16[i], 16)
	}

	// conditional JP and CALL only exist for the first four slots of each row
	for i := uint8(0); i < 4; i++ {
		t.addConditional(0xc2|i<<3, Jp, conditions[i], A16, 12, 4)
		t.addConditional(0xc4|i<<3, Call, conditions[i], A16, 12, 12)
	}

	// immediate arithmetic
	for i := uint8(0); i < 8; i++ {
		t.add(0xc6|i<<3, alu[i], A, D8, 8)
		t.addParam(0xc7|i<<3, Rst, None, i<<3, 16)
	}

	t.add(0xc3, Jp, None, A16, 16)
	t.add(0xc9, Ret, None, None, 16)
	t.add(PrefixOpcode, Prefix, None, None, PrefixCycles)
	t.add(0xcd, Call, None, A16, 24)
	t.add(0xd9, Reti, None, None, 16)

	t.add(0xe0, Ld, IndA8, A, 12)
	t.add(0xf0, Ld, A, IndA8, 12)
	t.add(0xe2, Ld, IndC, A, 8)
	t.add(0xf2, Ld, A, IndC, 8)
	t.add(0xea, Ld, IndA16, A, 16)
	t.add(0xfa, Ld, A, IndA16, 16)

	t.add(0xe8, Add, SP, E8, 16)
	t.add(0xf8, Ld, HL, SPE8, 12)
	t.add(0xe9, Jp, None, HL, 4)
	t.add(0xf9, Ld, SP, HL, 8)

	t.add(0xf3, Di, None, None, 4)
	t.add(0xfb, Ei, None, None, 4)

	return t.defns
}

// GetPrefixedDefinitions returns the table of instructions following the
// prefix opcode. Every entry is defined.
func GetPrefixedDefinitions() []*Definition {
	t := &table{defns: make([]*Definition, 256), prefixed: true}

	for op := 0; op <= 0xff; op++ {
		r := regs8[op&0x07]
		b := uint8(op>>3) & 0x07

		switch op >> 6 {
		case 0:
			t.add(uint8(op), rotates[b], r, None, cost(r, 4, 12))
		case 1:
			t.addParam(uint8(op), Bit, r, b, cost(r, 4, 8))
		case 2:
			t.addParam(uint8(op), Res, r, b, cost(r, 4, 12))
		case 3:
			t.addParam(uint8(op), Set, r, b, cost(r, 4, 12))
		}
	}

	return t.defns
}
