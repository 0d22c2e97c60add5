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

// Package snapshot writes the state of the emulation to files for offline
// inspection.
//
// WriteMemory() writes the entire address space as raw bytes. WriteStateGraph()
// writes a graphviz description of the CPU registers and the timer, suitable
// for rendering with the dot tool:
//
//	dot -Tpng state.dot > state.png
package snapshot
