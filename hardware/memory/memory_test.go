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

package memory_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

type countingTimer struct {
	cycles int
}

func (tmr *countingTimer) Advance(cycles int) {
	tmr.cycles += cycles
}

func TestMirroring(t *testing.T) {
	bus := memory.NewBus(nil)

	// writes to internal ram are visible in the echo
	for a := int(memorymap.OriginInternalRAM); a <= int(memorymap.MemtopMirrored); a++ {
		v := uint8(a)
		bus.Write(uint16(a), v)
		if !test.ExpectEquality(t, bus.Read(uint16(a)+memorymap.EchoDelta), v, a) {
			return
		}
	}

	// and vice versa
	for a := int(memorymap.OriginEcho); a <= int(memorymap.MemtopEcho); a++ {
		v := ^uint8(a)
		bus.Write(uint16(a), v)
		if !test.ExpectEquality(t, bus.Read(uint16(a)-memorymap.EchoDelta), v, a) {
			return
		}
	}

	// top of internal ram is not mirrored
	bus.Write(0xde00, 0x55)
	test.ExpectEquality(t, bus.Read(0xfe00), uint8(0x00))
}

func TestPoke(t *testing.T) {
	bus := memory.NewBus(nil)
	bus.Poke(0xc123, 0x42)
	test.ExpectEquality(t, bus.Peek(0xe123), uint8(0x42))
	test.ExpectEquality(t, bus.LastWriteValid, false)

	bus.Write(0xff80, 0x01)
	test.ExpectEquality(t, bus.LastWriteValid, true)
	test.ExpectEquality(t, bus.LastWrite, uint16(0xff80))

	bus.ResetLastAccess()
	test.ExpectEquality(t, bus.LastWriteValid, false)
}

func TestReportCycles(t *testing.T) {
	tmr := &countingTimer{}
	bus := memory.NewBus(tmr)
	bus.ReportCycles(12)
	bus.ReportCycles(4)
	test.ExpectEquality(t, tmr.cycles, 16)

	// no timer is fine
	bus = memory.NewBus(nil)
	bus.ReportCycles(4)
}

func TestLoad(t *testing.T) {
	bus := memory.NewBus(nil)

	test.ExpectSuccess(t, bus.Load(0x0000, []uint8{0x31, 0xfe, 0xff}))
	test.ExpectEquality(t, bus.Read(0x0001), uint8(0xfe))

	test.ExpectSuccess(t, bus.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, bus.Read(0xffff), uint8(0x02))

	err := bus.Load(0xffff, []uint8{0x01, 0x02})
	test.ExpectEquality(t, errors.Is(err, memory.ErrLoadOverflow), true)

	// loading into internal ram maintains the mirror
	test.ExpectSuccess(t, bus.Load(0xc000, []uint8{0xaa}))
	test.ExpectEquality(t, bus.Read(0xe000), uint8(0xaa))

	bus.Clear()
	test.ExpectEquality(t, bus.Read(0x0001), uint8(0x00))
}

func TestDump(t *testing.T) {
	bus := memory.NewBus(nil)
	bus.Write(0x1234, 0x56)

	var b bytes.Buffer
	test.ExpectSuccess(t, bus.Dump(&b))
	test.ExpectEquality(t, b.Len(), memory.Size)
	test.ExpectEquality(t, b.Bytes()[0x1234], uint8(0x56))

	test.ExpectEquality(t, bus.HexDump(0x1230, 8), "1230  00 00 00 00 56 00 00 00")
}
