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

package preferences

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/prefs"
)

// Values for the Interrupts preference.
const (
	// an enabled and requested interrupt stops the CPU with a fault
	InterruptAbort = "abort"

	// an enabled and requested interrupt is serviced
	InterruptService = "service"
)

// Default values for the preferences.
const (
	DefaultStackLow     = 0xff80
	DefaultStackHigh    = 0xfffe
	DefaultROMWindow    = 0x8000
	DefaultInterrupts   = InterruptAbort
	DefaultDIVPeriod    = 256
	DefaultVBlankPeriod = 70224
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	c prefs.Collection

	// the bounds of the stack, inclusive. the stack pointer must stay inside
	// these bounds for PUSH, POP, CALL, RET and RST
	StackLow  prefs.Int
	StackHigh prefs.Int

	// size of the ROM window in which the program counter wraps. a value of
	// zero means the counter wraps only at 16 bits
	ROMWindow prefs.Int

	// InterruptAbort or InterruptService
	Interrupts prefs.String

	// cycle counts of the periodic events driven by the peripherals
	DIVPeriod    prefs.Int
	VBlankPeriod prefs.Int
}

func (p *Preferences) String() string {
	return p.c.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.StackLow.SetHookPre(isAddress)
	p.StackHigh.SetHookPre(isAddress)
	p.ROMWindow.SetHookPre(isAddress)
	p.DIVPeriod.SetHookPre(isPositive)
	p.VBlankPeriod.SetHookPre(isPositive)
	p.Interrupts.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case InterruptAbort, InterruptService:
			return nil
		}
		return fmt.Errorf("preferences: interrupt mode must be %q or %q", InterruptAbort, InterruptService)
	})

	for _, k := range []struct {
		key string
		p   prefs.Pref
	}{
		{"cpu.stack.low", &p.StackLow},
		{"cpu.stack.high", &p.StackHigh},
		{"cpu.romwindow", &p.ROMWindow},
		{"cpu.interrupts", &p.Interrupts},
		{"timer.div", &p.DIVPeriod},
		{"timer.vblank", &p.VBlankPeriod},
	} {
		if err := p.c.Add(k.key, k.p); err != nil {
			return nil, err
		}
	}

	p.SetDefaults()

	return p, nil
}

func isAddress(v prefs.Value) error {
	if a := v.(int); a < 0 || a > 0xffff {
		return fmt.Errorf("preferences: %#x is not a 16 bit value", a)
	}
	return nil
}

func isPositive(v prefs.Value) error {
	if n := v.(int); n <= 0 {
		return fmt.Errorf("preferences: %d is not a positive value", n)
	}
	return nil
}

// SetDefaults resets all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the default values are always valid
	_ = p.StackLow.Set(DefaultStackLow)
	_ = p.StackHigh.Set(DefaultStackHigh)
	_ = p.ROMWindow.Set(DefaultROMWindow)
	_ = p.Interrupts.Set(DefaultInterrupts)
	_ = p.DIVPeriod.Set(DefaultDIVPeriod)
	_ = p.VBlankPeriod.Set(DefaultVBlankPeriod)
}

// Set the preference named by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	if s, ok := v.(string); ok && key == "cpu.interrupts" {
		v = strings.ToLower(strings.TrimSpace(s))
	}
	return p.c.Set(key, v)
}

// Keys returns the names of every preference.
func (p *Preferences) Keys() []string {
	return p.c.Keys()
}

// ApplyPrefsString applies a prefs string of the form "key::value; key::value"
// to the preferences. The entries that do not name a preference are returned.
func (p *Preferences) ApplyPrefsString(s string) (string, error) {
	prefs.PushCommandLineStack(strings.ToLower(s))
	err := p.c.ApplyCommandLine()
	unused := prefs.PopCommandLineStack()
	return unused, err
}

// StackWindow returns the bounds of the stack.
func (p *Preferences) StackWindow() (uint16, uint16) {
	return uint16(p.StackLow.Get().(int)), uint16(p.StackHigh.Get().(int))
}

// ServiceInterrupts returns true if interrupts should be serviced rather than
// stopping the CPU.
func (p *Preferences) ServiceInterrupts() bool {
	return p.Interrupts.String() == InterruptService
}
