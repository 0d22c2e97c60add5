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

// Package definitions contains the descriptor tables for the LR35902
// instruction set. There are two tables of 256 entries: the primary table and
// the table for opcodes following the 0xcb prefix. Undefined opcodes in the
// primary table are nil.
//
// Each Definition describes the operation and its operands, the number of
// bytes in the instruction and the number of cycles (T-cycles) it takes. The
// CPU uses the operands to decide how to fetch and store data so that a single
// decode path serves both tables.
//
// Conditional branch instructions have an ExtraCycles value which is added to
// the Cycles value when the branch is taken.
//
// For prefixed instructions, the Bytes and Cycles values are in addition to
// those of the prefix entry in the primary table.
package definitions
