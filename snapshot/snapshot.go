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

package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/logger"
)

// WriteMemory writes all 65536 bytes of the address space to the file at
// path. Any existing file is replaced.
func WriteMemory(path string, bus *memory.Bus) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("snapshot: %w", err)
		}
	}()

	if err := bus.Dump(f); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	logger.Logf(logger.Allow, "snapshot", "memory written to %s", path)

	return nil
}

// Registers is a copy of the CPU registers.
type Registers struct {
	PC  uint16
	SP  uint16
	A   uint8
	F   registers.Flags
	BC  uint16
	DE  uint16
	HL  uint16
	IME bool
}

// Timer is a copy of the timer state.
type Timer struct {
	Cycles     uint64
	Tickers    []timer.Ticker
	Sequencers []timer.Sequencer
}

// State is the structure rendered by WriteStateGraph().
type State struct {
	Registers    *Registers
	Timer        *Timer
	Instructions uint64
}

// NewState copies the current state of the emulation.
func NewState(dmg *hardware.DMG) *State {
	mc := dmg.CPU
	return &State{
		Registers: &Registers{
			PC:  mc.PC.Address(),
			SP:  mc.SP.Address(),
			A:   mc.A.Value(),
			F:   mc.F,
			BC:  mc.BC().Value(),
			DE:  mc.DE().Value(),
			HL:  mc.HL().Value(),
			IME: mc.IME,
		},
		Timer: &Timer{
			Cycles:     dmg.Timer.Cycles,
			Tickers:    dmg.Timer.Tickers(),
			Sequencers: dmg.Timer.Sequencers(),
		},
		Instructions: mc.Instructions,
	}
}

// WriteStateGraph writes a graphviz rendering of the state of the CPU and
// timer.
func WriteStateGraph(w io.Writer, dmg *hardware.DMG) error {
	memviz.Map(w, NewState(dmg))
	logger.Log(logger.Allow, "snapshot", "state graph written")
	return nil
}
