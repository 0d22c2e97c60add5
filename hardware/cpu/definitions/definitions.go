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

import (
	"fmt"
	"strings"
)

// Operator is the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Ld
	Inc
	Dec
	Add
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
	Push
	Pop
	Jr
	Jp
	Call
	Ret
	Reti
	Rst
	Rlca
	Rrca
	Rla
	Rra
	Daa
	Cpl
	Scf
	Ccf
	Di
	Ei
	Halt
	Stop
	Prefix
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

	NumOperators
)

var operatorNames = [NumOperators]string{
	"NOP", "LD", "INC", "DEC", "ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR",
	"CP", "PUSH", "POP", "JR", "JP", "CALL", "RET", "RETI", "RST", "RLCA",
	"RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF", "DI", "EI", "HALT",
	"STOP", "PREFIX", "RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL",
	"BIT", "RES", "SET",
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "???"
	}
	return operatorNames[op]
}

// Operand describes where an instruction takes its data from or puts its
// result.
type Operand int

// List of operands.
const (
	None Operand = iota

	// 8 bit registers
	A
	B
	C
	D
	E
	H
	L

	// 16 bit registers
	AF
	BC
	DE
	HL
	SP

	// memory addressed by a register. the HL variants increment or decrement
	// HL after the access. IndC addresses the IO area
	IndBC
	IndDE
	IndHL
	IndHLInc
	IndHLDec
	IndC

	// immediate values following the opcode
	D8
	D16
	E8
	A16

	// memory addressed by an immediate value. IndA8 addresses the IO area
	IndA8
	IndA16

	// stack pointer plus signed immediate
	SPE8

	// branch conditions
	CondNZ
	CondZ
	CondNC
	CondC
)

var operandNames = map[Operand]string{
	A: "A", B: "B", C: "C", D: "D", E: "E", H: "H", L: "L",
	AF: "AF", BC: "BC", DE: "DE", HL: "HL", SP: "SP",
	IndBC: "(BC)", IndDE: "(DE)", IndHL: "(HL)", IndHLInc: "(HL+)",
	IndHLDec: "(HL-)", IndC: "(C)",
	D8: "d8", D16: "d16", E8: "e8", A16: "a16",
	IndA8: "(a8)", IndA16: "(a16)", SPE8: "SP+e8",
	CondNZ: "NZ", CondZ: "Z", CondNC: "NC", CondC: "C",
}

func (o Operand) String() string {
	return operandNames[o]
}

// Width returns the number of immediate bytes that follow the opcode for the
// operand.
func (o Operand) Width() int {
	switch o {
	case D8, E8, IndA8, SPE8:
		return 1
	case D16, A16, IndA16:
		return 2
	}
	return 0
}

// IsWide returns true if the operand is a 16 bit value.
func (o Operand) IsWide() bool {
	switch o {
	case AF, BC, DE, HL, SP, D16, SPE8:
		return true
	}
	return false
}

// IsMemory returns true if the operand refers to memory.
func (o Operand) IsMemory() bool {
	switch o {
	case IndBC, IndDE, IndHL, IndHLInc, IndHLDec, IndC, IndA8, IndA16:
		return true
	}
	return false
}

// IsCondition returns true if the operand is a branch condition.
func (o Operand) IsCondition() bool {
	return o >= CondNZ && o <= CondC
}

// Definition describes a single instruction.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string
	Operator Operator
	Dst      Operand
	Src      Operand

	// bit number for BIT, RES and SET. vector for RST
	Param uint8

	Bytes       int
	Cycles      int
	ExtraCycles int
}

func (defn Definition) String() string {
	if defn.Prefixed {
		return fmt.Sprintf("cb %02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
	}
	if defn.ExtraCycles > 0 {
		return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Cycles+defn.ExtraCycles)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// OperandBytes returns the number of immediate bytes the instruction reads
// after the opcode.
func (defn Definition) OperandBytes() int {
	return defn.Dst.Width() + defn.Src.Width()
}

// IsConditional returns true if the instruction branches only when a
// condition holds.
func (defn Definition) IsConditional() bool {
	return defn.Dst.IsCondition()
}

// the accumulator is implied for these operators and is not shown in the
// mnemonic
func impliedAccumulator(op Operator) bool {
	switch op {
	case Sub, And, Xor, Or, Cp:
		return true
	}
	return false
}

func mnemonic(op Operator, dst Operand, src Operand, param uint8) string {
	s := strings.Builder{}

	switch op {
	case Ld:
		if dst == IndA8 || src == IndA8 {
			s.WriteString("LDH")
		} else {
			s.WriteString(op.String())
		}
	case Bit, Res, Set:
		return fmt.Sprintf("%s %d,%s", op, param, dst)
	case Rst:
		return fmt.Sprintf("%s %02XH", op, param)
	default:
		s.WriteString(op.String())
	}

	var operands []string
	if dst != None && !(dst == A && impliedAccumulator(op)) {
		operands = append(operands, dst.String())
	}
	if src != None {
		operands = append(operands, src.String())
	}
	if len(operands) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(operands, ","))
	}

	return s.String()
}
