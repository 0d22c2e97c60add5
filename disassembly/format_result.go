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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
)

// FormatResult creates an Entry for the result. The level should be
// EntryLevelExecuted if the result came from the CPU.
func FormatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Level:  level,
		Result: result,
	}

	// address of instruction
	e.Address = fmt.Sprintf("$%04x", result.Address)

	// bytecode always includes the opcode and the prefixed opcode if present
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%02x", result.Opcode))
	if result.Prefixed {
		b.WriteString(fmt.Sprintf(" %02x", result.PrefixedOpcode))
	}

	// if definition is nil then set the operator field to ??? and return with
	// no further formatting
	if result.Defn == nil {
		e.Bytecode = b.String()
		e.Operator = "???"
		return e
	}

	switch result.Defn.OperandBytes() {
	case 1:
		b.WriteString(fmt.Sprintf(" %02x", uint8(result.InstructionData)))
	case 2:
		b.WriteString(fmt.Sprintf(" %02x %02x", uint8(result.InstructionData), uint8(result.InstructionData>>8)))
	}
	e.Bytecode = b.String()

	var operand string
	e.Operator, operand = splitMnemonic(result.Defn.Mnemonic)
	e.Operand = formatOperand(operand, result)

	return e
}

// formatOperand replaces the placeholder in the operand with the immediate
// value. an operand never has more than one placeholder.
func formatOperand(operand string, result execution.Result) string {
	data := result.InstructionData

	for _, p := range placeholders {
		if !strings.Contains(operand, p) {
			continue
		}

		var v string
		switch p {
		case "SP+e8":
			v = fmt.Sprintf("SP%+d", int8(uint8(data)))
		case "(a8)":
			v = fmt.Sprintf("($%04x)", 0xff00|data&0x00ff)
		case "a16", "d16":
			v = fmt.Sprintf("$%04x", data)
		case "d8":
			v = fmt.Sprintf("$%02x", uint8(data))
		case "e8":
			if result.Defn.Operator == definitions.Jr {
				// relative jumps are shown as the absolute target address
				next := result.Address + uint16(result.Defn.Bytes)
				v = fmt.Sprintf("$%04x", next+uint16(int16(int8(uint8(data)))))
			} else {
				v = fmt.Sprintf("%+d", int8(uint8(data)))
			}
		}

		return strings.Replace(operand, p, v, 1)
	}

	return operand
}
