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

// Package memory implements the DMG address space and the bus through which
// the CPU and the peripherals access it.
//
// The AddressSpace is a flat array covering every address from 0x0000 to
// 0xffff. It is owned by the Bus and no other component holds a reference to
// it. All access goes through the Bus, which maintains the internal RAM/echo
// mirror: a write to either range is also made to the other range so that
// both copies are always identical.
//
// The Bus also forwards the cycle count of each completed instruction to the
// attached timer.
package memory
