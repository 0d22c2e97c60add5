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

package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/snapshot"
	"github.com/gopherdmg/gopherdmg/test"
)

func newDMG(t *testing.T) *hardware.DMG {
	t.Helper()
	dmg, err := hardware.NewDMG(nil)
	test.DemandSuccess(t, err)

	// LD SP,0xfffe; LD A,0x42; LD (0xc123),A
	rom := []byte{0x31, 0xfe, 0xff, 0x3e, 0x42, 0xea, 0x23, 0xc1}
	test.DemandSuccess(t, dmg.LoadBootROM(bytes.NewReader(rom)))
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, dmg.Step())
	}
	return dmg
}

func TestWriteMemory(t *testing.T) {
	dmg := newDMG(t)

	path := filepath.Join(t.TempDir(), "memory.bin")
	test.ExpectSuccess(t, snapshot.WriteMemory(path, dmg.Mem))

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 0x10000)
	test.ExpectEquality(t, data[0x0000], uint8(0x31))
	test.ExpectEquality(t, data[0xc123], uint8(0x42))
	test.ExpectEquality(t, data[0xe123], uint8(0x42))
}

func TestWriteMemoryBadPath(t *testing.T) {
	dmg := newDMG(t)
	path := filepath.Join(t.TempDir(), "missing", "memory.bin")
	test.ExpectFailure(t, snapshot.WriteMemory(path, dmg.Mem))
}

func TestState(t *testing.T) {
	dmg := newDMG(t)

	s := snapshot.NewState(dmg)
	test.ExpectEquality(t, s.Registers.PC, uint16(0x0008))
	test.ExpectEquality(t, s.Registers.SP, uint16(0xfffe))
	test.ExpectEquality(t, s.Registers.A, uint8(0x42))
	test.ExpectEquality(t, s.Timer.Cycles, uint64(12+8+16))
	test.ExpectEquality(t, len(s.Timer.Tickers), 2)
	test.ExpectEquality(t, len(s.Timer.Sequencers), 2)
	test.ExpectEquality(t, s.Instructions, uint64(3))
}

func TestWriteStateGraph(t *testing.T) {
	dmg := newDMG(t)

	w := &strings.Builder{}
	test.ExpectSuccess(t, snapshot.WriteStateGraph(w, dmg))
	test.ExpectEquality(t, strings.Contains(w.String(), "digraph"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "Registers"), true)
}
