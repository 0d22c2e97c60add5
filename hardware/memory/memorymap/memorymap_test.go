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

package memorymap_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestMapAddress(t *testing.T) {
	tests := []struct {
		address uint16
		mapped  uint16
		area    memorymap.Area
	}{
		{0x0000, 0x0000, memorymap.ROM},
		{0x7fff, 0x7fff, memorymap.ROM},
		{0x8000, 0x8000, memorymap.VRAM},
		{0xa000, 0xa000, memorymap.ExternalRAM},
		{0xc000, 0xc000, memorymap.InternalRAM},
		{0xdfff, 0xdfff, memorymap.InternalRAM},
		{0xe000, 0xc000, memorymap.Echo},
		{0xfdff, 0xddff, memorymap.Echo},
		{0xfe00, 0xfe00, memorymap.OAM},
		{0xfea0, 0xfea0, memorymap.Unusable},
		{0xff0f, 0xff0f, memorymap.IO},
		{0xff80, 0xff80, memorymap.HRAM},
		{0xfffe, 0xfffe, memorymap.HRAM},
		{0xffff, 0xffff, memorymap.InterruptEnable},
	}

	for _, tt := range tests {
		mapped, area := memorymap.MapAddress(tt.address)
		test.ExpectEquality(t, mapped, tt.mapped, tt.address)
		test.ExpectEquality(t, area, tt.area, tt.address)
	}
}

func TestMirror(t *testing.T) {
	m, ok := memorymap.Mirror(0xc000)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, uint16(0xe000))

	m, ok = memorymap.Mirror(0xfdff)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, uint16(0xddff))

	// the top of internal ram has no echo
	_, ok = memorymap.Mirror(0xde00)
	test.ExpectEquality(t, ok, false)

	_, ok = memorymap.Mirror(0xbfff)
	test.ExpectEquality(t, ok, false)
	_, ok = memorymap.Mirror(0xfe00)
	test.ExpectEquality(t, ok, false)
}
