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

// Package cpu emulates the Sharp LR35902 found in the DMG.
//
// Instructions are decoded with the descriptor tables in the definitions
// package. The Step() function executes exactly one instruction and reports
// the number of cycles it took to the memory bus, which forwards the count to
// the timer:
//
//	mc := cpu.NewCPU(prefs, bus)
//	mc.Reset()
//	for {
//		if err := mc.Step(); err != nil {
//			return err
//		}
//		if err := mc.CheckInterrupt(); err != nil {
//			return err
//		}
//	}
//
// Errors returned by Step() and CheckInterrupt() are faults.Fault values and
// are always fatal. The CPU state after a fault is undefined and Reset() should
// be called before further execution.
//
// Interrupts are either serviced or treated as faults, depending on the
// Interrupts preference. In the latter case any requested interrupt causes a
// fault if the interrupt master enable flag is set, regardless of the IE
// register.
package cpu
