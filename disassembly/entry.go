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

// EntryLevel indicates the reliability of the information in an Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the entry was decoded from memory but not executed
	EntryLevelDecoded EntryLevel = iota

	// the entry is the result of executing the instruction
	EntryLevelExecuted
)

// Entry is the disassembly of a single instruction.
type Entry struct {
	Level EntryLevel

	// copy of the CPU execution or decode
	Result execution.Result

	// string representations of the information in Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Cycles returns the number of cycles for the instruction. For executed
// entries this is the actual number of cycles. For decoded entries of
// conditional instructions both possibilities are shown.
func (e *Entry) Cycles() string {
	// the Defn field may be unassigned
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level == EntryLevelExecuted && e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	cycles := e.Result.Defn.Cycles
	if e.Result.Prefixed {
		cycles += definitions.PrefixCycles
	}
	if e.Result.Defn.ExtraCycles > 0 {
		return fmt.Sprintf("%d/%d", cycles, cycles+e.Result.Defn.ExtraCycles)
	}
	return fmt.Sprintf("%d", cycles)
}

// Notes returns additional information about an executed entry.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted || !e.Result.Final || e.Result.Defn == nil {
		return ""
	}

	if !e.Result.Defn.IsConditional() {
		return ""
	}

	if e.Result.BranchSuccess {
		return "branch taken"
	}
	return "branch not taken"
}

// operand placeholders in the definition mnemonics and the order in which
// they should be substituted
var placeholders = []string{"SP+e8", "(a8)", "a16", "d16", "d8", "e8"}

func splitMnemonic(mnemonic string) (string, string) {
	operator, operand, _ := strings.Cut(mnemonic, " ")
	return operator, operand
}
