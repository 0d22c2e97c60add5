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

// Package faults defines the fatal conditions that stop the CPU. A Fault
// records where the condition happened and the state of the registers at the
// time. Faults wrap one of the sentinel errors in this package so that the
// kind of fault can be tested with errors.Is():
//
//	if errors.Is(err, faults.ErrStackViolation) {
//		...
//	}
package faults

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the kind of fault.
var (
	ErrUnknownOpcode         = errors.New("unknown opcode")
	ErrUnknownPrefixedOpcode = errors.New("unknown prefixed opcode")
	ErrStackViolation        = errors.New("stack pointer outside of reserved window")
	ErrUnimplemented         = errors.New("unimplemented instruction")
	ErrInterruptPending      = errors.New("interrupt must be serviced")
	ErrAddressRegisterBounds = errors.New("address register out of bounds")
)

// Fault is a fatal condition raised by the CPU.
type Fault struct {
	Kind error

	// the opcode of the instruction being executed. if Prefixed is true then
	// Opcode is the byte following the prefix
	Opcode   uint8
	Prefixed bool

	// the address of the first byte of the instruction
	PC uint16

	// additional information about the fault. can be empty
	Detail string

	// the state of the CPU registers when the fault was raised
	Registers string
}

// New is the preferred method of initialisation for the Fault type.
func New(kind error, opcode uint8, prefixed bool, pc uint16, registers string) *Fault {
	return &Fault{
		Kind:      kind,
		Opcode:    opcode,
		Prefixed:  prefixed,
		PC:        pc,
		Registers: registers,
	}
}

// WithDetail adds additional information to the fault and returns it.
func (f *Fault) WithDetail(detail string, args ...any) *Fault {
	f.Detail = fmt.Sprintf(detail, args...)
	return f
}

func (f *Fault) Error() string {
	opcode := fmt.Sprintf("0x%02x", f.Opcode)
	if f.Prefixed {
		opcode = fmt.Sprintf("0xcb 0x%02x", f.Opcode)
	}
	s := fmt.Sprintf("cpu: %v: opcode %s at 0x%04x", f.Kind, opcode, f.PC)
	if f.Detail != "" {
		s = fmt.Sprintf("%s (%s)", s, f.Detail)
	}
	if f.Registers != "" {
		s = fmt.Sprintf("%s [%s]", s, f.Registers)
	}
	return s
}

// Unwrap returns the kind of fault.
func (f *Fault) Unwrap() error {
	return f.Kind
}
