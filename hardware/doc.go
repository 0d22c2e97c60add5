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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The DMG type is the root of the emulation and contains references to all
// the sub-systems. From here, the emulation can either be started to run
// continuously (with optional callback to check for continuation) or it can
// be stepped one instruction at a time.
//
// The order of operation for every step is:
//
//	CPU.Step()
//	Peripherals.Update()
//	CPU.CheckInterrupt()
//
// The CPU reports the number of cycles for each instruction to the memory
// bus, which advances the timer. The peripherals then reflect the state of
// the timer into the IO registers before any interrupt is checked.
package hardware
