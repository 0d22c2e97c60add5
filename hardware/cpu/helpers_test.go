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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/test"
)

type mockMem struct {
	internal [0x10000]uint8
	cycles   int
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.internal[address]; d != value {
		t.Errorf("memory assertion failed (0x%02x - wanted 0x%02x at address 0x%04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	mem.internal = [0x10000]uint8{}
	mem.cycles = 0
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) ReportCycles(cycles int) {
	mem.cycles += cycles
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem, *preferences.Preferences) {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	mem := &mockMem{}
	return cpu.NewCPU(prefs, mem), mem, prefs
}

// step executes one instruction and checks the result for consistency.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// stepFault executes one instruction that is expected to fault with the
// specified kind.
func stepFault(t *testing.T, mc *cpu.CPU, kind error) *faults.Fault {
	t.Helper()
	err := mc.Step()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v but got %v", kind, err)
	}
	var f *faults.Fault
	if !errors.As(err, &f) {
		t.Fatalf("error is not a fault: %v", err)
	}
	return f
}
