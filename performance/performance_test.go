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

package performance_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(performance.ClockSpeed, time.Second)
	test.ExpectEquality(t, mhz, 4.194304)
	test.ExpectEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

// a machine that runs forever without faulting
func loopingDMG(t *testing.T) *hardware.DMG {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Set("cpu.interrupts", "service"))

	dmg, err := hardware.NewDMG(prefs)
	test.DemandSuccess(t, err)

	// JR -2
	test.DemandSuccess(t, dmg.LoadBootROM(bytes.NewReader([]byte{0x18, 0xfe})))
	return dmg
}

func TestCheck(t *testing.T) {
	dmg := loopingDMG(t)

	out := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(out, dmg, 50*time.Millisecond, false))
	test.ExpectEquality(t, strings.Contains(out.String(), " MHz ("), true)
	test.ExpectInequality(t, dmg.Timer.Cycles, uint64(0))
}

func TestCheckProfile(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dmg := loopingDMG(t)
	test.ExpectSuccess(t, performance.Check(&strings.Builder{}, dmg, 50*time.Millisecond, true))

	_, err = os.Stat("cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("mem.profile")
	test.ExpectSuccess(t, err)
}

func TestCheckFault(t *testing.T) {
	dmg, err := hardware.NewDMG(nil)
	test.DemandSuccess(t, err)

	// unknown opcode
	test.DemandSuccess(t, dmg.LoadBootROM(bytes.NewReader([]byte{0xd3})))

	out := &strings.Builder{}
	err = performance.Check(out, dmg, time.Second, false)
	test.ExpectEquality(t, errors.Is(err, faults.ErrUnknownOpcode), true)
	test.ExpectEquality(t, strings.Contains(out.String(), " MHz ("), true)
}
