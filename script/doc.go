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

// Package script runs Lua programs against the emulation. The program has
// access to the following functions:
//
//	step([n])          execute n instructions (default 1)
//	peek(addr)         read memory without side effects
//	poke(addr, v)      write memory
//	reg(name)          value of a CPU register
//	setreg(name, v)    set the value of a CPU register
//	flag(name)         state of a CPU flag
//	cycles()           number of cycles since the emulation started
//	register(period)   add a ticker with the period to the timer
//	fired(period)      true if the ticker has fired since the last call. the
//	                   period must belong to a peripheral or be registered
//	phase(name)        current phase of the named sequencer
//	log(msg)           add an entry to the central log
//
// Register and flag names are case insensitive and can be abbreviated to any
// unique prefix. The print function writes to the output supplied to Run().
//
// Faults raised by the emulation during step() are Lua errors and can be
// caught with pcall(). The error message contains the fault.
package script
