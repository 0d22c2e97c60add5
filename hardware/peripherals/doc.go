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

// Package peripherals implements the memory mapped hardware that is driven
// by the timer rather than by the CPU. Each peripheral registers a ticker or
// sequencer with the timer and Update() reflects the timer state into the
// IO registers.
//
// The peripherals are:
//
//	DIV      incremented every 256 cycles (configurable)
//	V-Blank  requests the V-Blank interrupt every 70224 cycles (configurable)
//	STAT     display mode cycles through OAM scan, drawing and H-Blank
//	LY       current scanline
package peripherals
