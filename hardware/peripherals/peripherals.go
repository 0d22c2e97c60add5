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

package peripherals

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
)

// Names of the sequences registered with the timer.
const (
	DisplayModeSequence = "lcd"
	ScanlineSequence    = "ly"
)

// Display timing in cycles.
const (
	ScanlineCycles = 456
	NumScanlines   = 154
)

// the length of each display mode within a scanline and the corresponding
// value for the mode bits of the STAT register
var (
	displayModePhases = []int{80, 172, 204}
	displayModes      = []uint8{2, 3, 0}
)

const statModeMask = uint8(0x03)

// Bus is the interface to memory used by the peripherals. The peripherals
// update registers without being treated as a CPU access.
type Bus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Peripherals ties the timer to the IO registers.
type Peripherals struct {
	tmr *timer.Timer

	divPeriod    int
	vblankPeriod int

	// number of times each ticker has fired
	DIVCount    uint64
	VBlankCount uint64

	// whether each ticker fired during the most recent Update()
	divFired    bool
	vblankFired bool
}

// NewPeripherals registers the tickers and sequencers with the timer. The
// periods of the tickers are taken from the preferences.
func NewPeripherals(prefs *preferences.Preferences, tmr *timer.Timer) (*Peripherals, error) {
	p := &Peripherals{
		tmr:          tmr,
		divPeriod:    prefs.DIVPeriod.Get().(int),
		vblankPeriod: prefs.VBlankPeriod.Get().(int),
	}

	if err := tmr.RegisterPeriodic(p.divPeriod); err != nil {
		return nil, fmt.Errorf("peripherals: DIV: %w", err)
	}
	if err := tmr.RegisterPeriodic(p.vblankPeriod); err != nil {
		return nil, fmt.Errorf("peripherals: V-Blank: %w", err)
	}

	if err := tmr.RegisterSequence(DisplayModeSequence, displayModePhases); err != nil {
		return nil, fmt.Errorf("peripherals: %w", err)
	}

	scanlines := make([]int, NumScanlines)
	for i := range scanlines {
		scanlines[i] = ScanlineCycles
	}
	if err := tmr.RegisterSequence(ScanlineSequence, scanlines); err != nil {
		return nil, fmt.Errorf("peripherals: %w", err)
	}

	return p, nil
}

func (p *Peripherals) String() string {
	return fmt.Sprintf("DIV=%d VBlank=%d", p.DIVCount, p.VBlankCount)
}

// Fired returns true if the ticker with the period fired during the most
// recent call to Update(). The second return value is false if the period
// does not belong to a peripheral.
func (p *Peripherals) Fired(period int) (bool, bool) {
	switch period {
	case p.divPeriod:
		return p.divFired, true
	case p.vblankPeriod:
		return p.vblankFired, true
	}
	return false, false
}

// Update should be called after every CPU instruction.
func (p *Peripherals) Update(bus Bus) error {
	fired, err := p.tmr.DidFire(p.divPeriod)
	if err != nil {
		return fmt.Errorf("peripherals: %w", err)
	}
	p.divFired = fired
	if fired {
		p.DIVCount++
		bus.Poke(addresses.DIV, bus.Peek(addresses.DIV)+1)
	}

	fired, err = p.tmr.DidFire(p.vblankPeriod)
	if err != nil {
		return fmt.Errorf("peripherals: %w", err)
	}
	p.vblankFired = fired
	if fired {
		p.VBlankCount++
		bus.Poke(addresses.IF, bus.Peek(addresses.IF)|addresses.VBlank.Bit())
	}

	phase, err := p.tmr.CurrentPhase(DisplayModeSequence)
	if err != nil {
		return fmt.Errorf("peripherals: %w", err)
	}
	stat := bus.Peek(addresses.STAT) &^ statModeMask
	bus.Poke(addresses.STAT, stat|displayModes[phase])

	line, err := p.tmr.CurrentPhase(ScanlineSequence)
	if err != nil {
		return fmt.Errorf("peripherals: %w", err)
	}
	bus.Poke(addresses.LY, uint8(line))

	return nil
}
