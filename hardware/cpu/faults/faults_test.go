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

package faults_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestFault(t *testing.T) {
	f := faults.New(faults.ErrUnknownOpcode, 0xd3, false, 0x0150, "A=0x00")
	test.ExpectEquality(t, f.Error(), "cpu: unknown opcode: opcode 0xd3 at 0x0150 [A=0x00]")
	test.ExpectEquality(t, errors.Is(f, faults.ErrUnknownOpcode), true)
	test.ExpectEquality(t, errors.Is(f, faults.ErrStackViolation), false)

	f = faults.New(faults.ErrAddressRegisterBounds, 0x32, false, 0x000b, "").WithDetail("HL is 0x%04x", 0)
	test.ExpectEquality(t, f.Error(), "cpu: address register out of bounds: opcode 0x32 at 0x000b (HL is 0x0000)")

	f = faults.New(faults.ErrUnknownPrefixedOpcode, 0x7c, true, 0x0010, "")
	test.ExpectEquality(t, f.Error(), "cpu: unknown prefixed opcode: opcode 0xcb 0x7c at 0x0010")

	// wrapped faults can still be recovered
	err := fmt.Errorf("dmg: %w", f)
	var ft *faults.Fault
	test.ExpectEquality(t, errors.As(err, &ft), true)
	test.ExpectEquality(t, ft.PC, uint16(0x0010))
}
