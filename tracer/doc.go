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

// Package tracer writes a line of text for every instruction executed by the
// emulation. Each line shows the instruction, the state of the CPU registers
// and the state of the DIV, IF, LCDC, STAT and LY registers after the
// instruction. Memory writes made by the instruction are optionally shown.
//
// The tracer drives the emulation itself:
//
//	trc := tracer.NewTracer(os.Stdout, dmg)
//	trc.Writes = true
//	err := trc.Run(ctx, 1000)
package tracer
