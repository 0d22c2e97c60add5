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

// Package disassembly formats LR35902 instructions for presentation.
//
// Instructions can be formatted from an execution.Result, for example the
// LastResult field of the CPU after a call to Step(). Alternatively, the
// Disassemble() function decodes instructions directly from memory without
// executing them.
//
// Immediate operands are shown with their actual values. Relative jumps show
// the absolute address of the target.
package disassembly
