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

package hardware

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/peripherals"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/logger"
)

// ErrBootROMSize is returned by LoadBootROM() if the data does not fit in the
// ROM window.
var ErrBootROMSize = errors.New("dmg: boot ROM larger than ROM window")

// DMG is the main container for the emulated components.
type DMG struct {
	Prefs *preferences.Preferences

	Timer       *timer.Timer
	Mem         *memory.Bus
	CPU         *cpu.CPU
	Peripherals *peripherals.Peripherals
}

// NewDMG creates a new DMG and everything associated with the hardware. If
// prefs is nil then the default preferences are used.
func NewDMG(prefs *preferences.Preferences) (*DMG, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("dmg: %w", err)
		}
	}

	dmg := &DMG{Prefs: prefs}

	dmg.Timer = timer.NewTimer()
	dmg.Mem = memory.NewBus(dmg.Timer)
	dmg.CPU = cpu.NewCPU(prefs, dmg.Mem)

	dmg.Peripherals, err = peripherals.NewPeripherals(prefs, dmg.Timer)
	if err != nil {
		return nil, fmt.Errorf("dmg: %w", err)
	}

	return dmg, nil
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("%s\n%s\n%s", dmg.CPU, dmg.Mem, dmg.Timer)
}

// LoadBootROM reads the boot ROM and loads it at address zero. The CPU is
// reset.
func (dmg *DMG) LoadBootROM(r io.Reader) error {
	window := dmg.CPU.PC.Window()

	// read one more byte than the window allows so we can detect data that is
	// too large
	data, err := io.ReadAll(io.LimitReader(r, int64(window)+1))
	if err != nil {
		return fmt.Errorf("dmg: %w", err)
	}
	if len(data) > int(window) {
		return fmt.Errorf("%w: window is 0x%04x bytes", ErrBootROMSize, window)
	}

	err = dmg.Mem.Load(0, data)
	if err != nil {
		return fmt.Errorf("dmg: %w", err)
	}

	dmg.CPU.Reset()
	logger.Logf(logger.Allow, "dmg", "boot ROM loaded (%d bytes)", len(data))

	return nil
}

// Step the emulation by a single CPU instruction.
func (dmg *DMG) Step() error {
	if err := dmg.CPU.Step(); err != nil {
		return err
	}
	if err := dmg.Peripherals.Update(dmg.Mem); err != nil {
		return err
	}
	return dmg.CPU.CheckInterrupt()
}
