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

package memory

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Size of the address space in bytes.
const Size = int(memorymap.Memtop) + 1

// AddressSpace is the backing store for all memory.
type AddressSpace [Size]uint8

// Timer is notified of elapsed cycles by the Bus.
type Timer interface {
	Advance(cycles int)
}

// ErrLoadOverflow is returned by Load() when the data does not fit.
var ErrLoadOverflow = errors.New("memory: data exceeds address space")

// Bus is the only means of accessing the AddressSpace. It implements the
// cpubus.Memory interface.
type Bus struct {
	space AddressSpace
	timer Timer

	// the most recent address written by the CPU. LastWriteValid is false if
	// there has been no write since the last call to ResetLastAccess()
	LastWrite      uint16
	LastWriteValid bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// timer can be nil in which case cycle reports are discarded.
func NewBus(timer Timer) *Bus {
	return &Bus{timer: timer}
}

func (bus *Bus) String() string {
	return fmt.Sprintf("DIV=0x%02x IF=0x%02x LCDC=0x%02x STAT=0x%02x LY=0x%02x",
		bus.space[addresses.DIV], bus.space[addresses.IF],
		bus.space[addresses.LCDC], bus.space[addresses.STAT],
		bus.space[addresses.LY])
}

// Read returns the byte at address. Reading has no side effects.
func (bus *Bus) Read(address uint16) uint8 {
	return bus.space[address]
}

// Write stores data at address. Writes to internal RAM or its echo are made to
// both copies.
func (bus *Bus) Write(address uint16, data uint8) {
	bus.poke(address, data)
	bus.LastWrite = address
	bus.LastWriteValid = true
}

// ReportCycles forwards the number of elapsed cycles to the timer.
func (bus *Bus) ReportCycles(cycles int) {
	if bus.timer != nil {
		bus.timer.Advance(cycles)
	}
}

// ResetLastAccess forgets the most recent write.
func (bus *Bus) ResetLastAccess() {
	bus.LastWriteValid = false
}

// Peek returns the byte at address. Peek is for use by tools and peripherals
// and is equivalent to Read().
func (bus *Bus) Peek(address uint16) uint8 {
	return bus.space[address]
}

// Poke stores data at address without recording the access. The mirror is
// maintained in the same way as for Write().
func (bus *Bus) Poke(address uint16, data uint8) {
	bus.poke(address, data)
}

func (bus *Bus) poke(address uint16, data uint8) {
	bus.space[address] = data
	if m, ok := memorymap.Mirror(address); ok {
		bus.space[m] = data
	}
}

// Load copies data into memory starting at origin. Mirroring is applied to
// every byte.
func (bus *Bus) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("%w: %d bytes at 0x%04x", ErrLoadOverflow, len(data), origin)
	}
	for i, d := range data {
		bus.poke(origin+uint16(i), d)
	}
	logger.Logf(logger.Allow, "bus", "loaded %d bytes at 0x%04x", len(data), origin)
	return nil
}

// Clear sets every byte to zero.
func (bus *Bus) Clear() {
	clear(bus.space[:])
	bus.LastWriteValid = false
}

// Dump writes the entire address space to w.
func (bus *Bus) Dump(w io.Writer) error {
	_, err := w.Write(bus.space[:])
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	return nil
}

// HexDump returns a formatted view of length bytes starting at origin. Lines
// are sixteen bytes wide.
func (bus *Bus) HexDump(origin uint16, length int) string {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := int(origin) + i
		if a >= Size {
			break
		}
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x ", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", bus.space[a]))
	}
	return s.String()
}
