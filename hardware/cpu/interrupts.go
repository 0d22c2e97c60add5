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

package cpu

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu/faults"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
)

// InterruptCycles is the number of cycles taken to dispatch an interrupt.
const InterruptCycles = 20

// CheckInterrupt should be called after every Step(). It does nothing if the
// interrupt master enable flag is not set.
//
// If interrupts are being serviced then the highest priority interrupt that
// is both requested and enabled is dispatched. Otherwise any requested
// interrupt results in a fault.
func (mc *CPU) CheckInterrupt() error {
	if !mc.IME {
		return nil
	}

	req := mc.mem.Read(addresses.IF) & addresses.InterruptMask
	if req == 0 {
		return nil
	}

	if mc.prefs.ServiceInterrupts() {
		req &= mc.mem.Read(addresses.IE)
		for i := addresses.Interrupt(0); i < addresses.NumInterrupts; i++ {
			if req&i.Bit() != 0 {
				return mc.service(i)
			}
		}
		return nil
	}

	for i := addresses.Interrupt(0); i < addresses.NumInterrupts; i++ {
		if req&i.Bit() != 0 {
			return mc.fault(faults.ErrInterruptPending).WithDetail("%s requested", i)
		}
	}

	return nil
}

// service dispatches the interrupt. the request is acknowledged by clearing
// the bit in the IF register. if the return address cannot be pushed then
// the request and IME are left as they were.
func (mc *CPU) service(i addresses.Interrupt) error {
	if err := mc.push16(mc.PC.Address()); err != nil {
		return err
	}

	mc.mem.Write(addresses.IF, mc.mem.Read(addresses.IF)&^i.Bit())
	mc.IME = false
	mc.PC.Load(i.Vector())

	mc.mem.ReportCycles(InterruptCycles)

	return nil
}
