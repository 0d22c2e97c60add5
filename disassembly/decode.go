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
	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
)

// Memory is the interface required to decode instructions. Reading memory for
// disassembly must not have side effects.
type Memory interface {
	Peek(address uint16) uint8
}

var (
	primary  = definitions.GetDefinitions()
	prefixed = definitions.GetPrefixedDefinitions()
)

// Decode the instruction at the address without executing it. The Final
// field of the result is always false.
func Decode(mem Memory, address uint16) execution.Result {
	r := execution.Result{
		Address:   address,
		Opcode:    mem.Peek(address),
		ByteCount: 1,
	}

	defn := primary[r.Opcode]
	if defn != nil && defn.Operator == definitions.Prefix {
		r.Prefixed = true
		r.PrefixedOpcode = mem.Peek(address + 1)
		r.ByteCount++
		defn = prefixed[r.PrefixedOpcode]
	}

	r.Defn = defn
	if defn == nil {
		return r
	}

	a := address + uint16(r.ByteCount)
	switch defn.OperandBytes() {
	case 1:
		r.InstructionData = uint16(mem.Peek(a))
	case 2:
		r.InstructionData = uint16(mem.Peek(a)) | uint16(mem.Peek(a+1))<<8
	}
	r.ByteCount += defn.OperandBytes()

	return r
}

// Disassemble count instructions starting at origin. Decoding continues past
// unknown opcodes, treating them as single byte instructions.
func Disassemble(mem Memory, origin uint16, count int) []*Entry {
	entries := make([]*Entry, 0, count)

	address := origin
	for i := 0; i < count; i++ {
		r := Decode(mem, address)
		entries = append(entries, FormatResult(r, EntryLevelDecoded))
		address += uint16(r.ByteCount)
	}

	return entries
}
