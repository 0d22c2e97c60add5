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

package registers

import "fmt"

// ProgramCounter is the 16 bit program counter. The counter is aware of the
// size of the ROM window it starts in. An increment that takes the counter out
// of the window wraps it to the start of the window.
type ProgramCounter struct {
	value uint16

	// a window of zero means no window
	window uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16, window uint16) ProgramCounter {
	return ProgramCounter{value: val, window: window}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("0x%04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// SetWindow changes the size of the ROM window.
func (pc *ProgramCounter) SetWindow(window uint16) {
	pc.window = window
}

// Window returns the size of the ROM window.
func (pc ProgramCounter) Window() uint16 {
	return pc.window
}

// Add a value to the PC. The value is the number of bytes consumed and is
// never used for jumps. Use Load() for that.
func (pc *ProgramCounter) Add(val uint16) {
	v := pc.value
	pc.value += val
	if pc.window > 0 && v < pc.window && (pc.value >= pc.window || pc.value < v) {
		pc.value = uint16((uint32(v) + uint32(val)) % uint32(pc.window))
	}
}

// StackPointer is the 16 bit stack pointer.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("0x%04x", sp.value)
}

// Address returns the current value of the SP.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}
