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

package addresses_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestInterrupts(t *testing.T) {
	vectors := []uint16{0x40, 0x48, 0x50, 0x58, 0x60}
	for i := addresses.VBlank; i < addresses.NumInterrupts; i++ {
		test.ExpectEquality(t, i.Vector(), vectors[i], i)
		test.ExpectEquality(t, i.Bit(), uint8(1)<<i, i)
		test.ExpectEquality(t, i.Bit()&addresses.InterruptMask, i.Bit(), i)
	}
	test.ExpectEquality(t, addresses.Joypad.String(), "Joypad")
}
