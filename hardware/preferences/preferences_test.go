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

package preferences_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	low, high := p.StackWindow()
	test.ExpectEquality(t, low, uint16(0xff80))
	test.ExpectEquality(t, high, uint16(0xfffe))
	test.ExpectEquality(t, p.ServiceInterrupts(), false)
	test.ExpectEquality(t, p.ROMWindow.Get().(int), 0x8000)
	test.ExpectEquality(t, len(p.Keys()), 6)
}

func TestSet(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Set("cpu.interrupts", " Service"))
	test.ExpectEquality(t, p.ServiceInterrupts(), true)
	test.ExpectFailure(t, p.Set("cpu.interrupts", "ignore"))
	test.ExpectEquality(t, p.ServiceInterrupts(), true)

	test.ExpectFailure(t, p.Set("cpu.stack.low", 0x10000))
	test.ExpectFailure(t, p.Set("timer.div", 0))
	test.ExpectFailure(t, p.Set("cpu.unknown", 0))

	p.SetDefaults()
	test.ExpectEquality(t, p.ServiceInterrupts(), false)
}

func TestPrefsString(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	unused, err := p.ApplyPrefsString("cpu.stack.low::0xc000; cpu.interrupts::SERVICE; foo::bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, unused, "foo::bar")

	low, _ := p.StackWindow()
	test.ExpectEquality(t, low, uint16(0xc000))
	test.ExpectEquality(t, p.ServiceInterrupts(), true)

	_, err = p.ApplyPrefsString("timer.vblank::-1")
	test.ExpectFailure(t, err)
}
