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

package execution

import (
	"errors"
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
)

// Result records the execution of a single instruction.
type Result struct {
	// address of the first byte of the instruction
	Address uint16

	// the first byte of the instruction. if Prefixed is true then
	// PrefixedOpcode is the second byte
	Opcode         uint8
	Prefixed       bool
	PrefixedOpcode uint8

	// the definition of the executed instruction. nil if the opcode is
	// undefined
	Defn *definitions.Definition

	// number of bytes read during decode, including any prefix
	ByteCount int

	// the immediate value that followed the opcode
	InstructionData uint16

	// total number of cycles including any prefix and conditional extra
	Cycles int

	// whether a conditional instruction took its branch
	BranchSuccess bool

	// whether the instruction has completed. a result that is not final
	// should not be used
	Final bool
}

// Reset nullifies all members of the result.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("0x%04x: 0x%02x undecoded instruction", r.Address, r.Opcode)
	}
	return fmt.Sprintf("0x%04x: %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}

// Sentinel errors returned by IsValid().
var (
	ErrNotFinal  = errors.New("execution: not finalised")
	ErrByteCount = errors.New("execution: unexpected number of bytes")
	ErrCycles    = errors.New("execution: unexpected number of cycles")
)

// IsValid checks whether the result is consistent with the instruction
// definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return ErrNotFinal
	}

	bytes := r.Defn.Bytes
	cycles := r.Defn.Cycles
	if r.Prefixed {
		// the prefix is one byte and costs the same as a NOP
		bytes++
		cycles += definitions.PrefixCycles
	}

	if r.ByteCount != bytes {
		return fmt.Errorf("%w: %d instead of %d for %s", ErrByteCount, r.ByteCount, bytes, r.Defn.Mnemonic)
	}

	if r.BranchSuccess {
		cycles += r.Defn.ExtraCycles
	}
	if r.Cycles != cycles {
		return fmt.Errorf("%w: %d instead of %d for %s", ErrCycles, r.Cycles, cycles, r.Defn.Mnemonic)
	}

	return nil
}
