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

// Package registers implements the registers of the LR35902. The 8 bit
// registers can be paired to form the 16 bit BC, DE and HL registers. The
// program counter and stack pointer are 16 bit registers in their own right.
//
// Arithmetic functions return the carry and half-carry conditions of the
// operation but never alter the flags directly. It is the responsibility of
// the CPU to decide which flags an instruction affects. For instance:
//
//	carry, half := a.Add(v, false)
//	flags.Zero = a.IsZero()
//	flags.Subtract = false
//	flags.HalfCarry = half
//	flags.Carry = carry
package registers
