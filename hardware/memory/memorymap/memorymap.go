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

package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas in the DMG.
const (
	Undefined Area = iota
	ROM
	VRAM
	ExternalRAM
	InternalRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	InterruptEnable
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case InternalRAM:
		return "Internal RAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	}
	return "undefined"
}

// The origin and memory top for each area of memory.
const (
	OriginROM         = uint16(0x0000)
	MemtopROM         = uint16(0x7fff)
	OriginVRAM        = uint16(0x8000)
	MemtopVRAM        = uint16(0x9fff)
	OriginExternalRAM = uint16(0xa000)
	MemtopExternalRAM = uint16(0xbfff)
	OriginInternalRAM = uint16(0xc000)
	MemtopInternalRAM = uint16(0xdfff)
	OriginEcho        = uint16(0xe000)
	MemtopEcho        = uint16(0xfdff)
	OriginOAM         = uint16(0xfe00)
	MemtopOAM         = uint16(0xfe9f)
	OriginUnusable    = uint16(0xfea0)
	MemtopUnusable    = uint16(0xfeff)
	OriginIO          = uint16(0xff00)
	MemtopIO          = uint16(0xff7f)
	OriginHRAM        = uint16(0xff80)
	MemtopHRAM        = uint16(0xfffe)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// The echo area only covers the first 0x1e00 bytes of internal RAM. The last
// 512 bytes of internal RAM have no mirror.
const (
	MemtopMirrored = uint16(0xddff)
	EchoDelta      = OriginEcho - OriginInternalRAM
)

// MapAddress returns the area the address belongs to. Echo addresses are
// translated to their primary location in internal RAM but the area is
// reported as Echo.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these cases is important
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address, VRAM
	case address <= MemtopExternalRAM:
		return address, ExternalRAM
	case address <= MemtopInternalRAM:
		return address, InternalRAM
	case address <= MemtopEcho:
		return address - EchoDelta, Echo
	case address <= MemtopOAM:
		return address, OAM
	case address <= MemtopUnusable:
		return address, Unusable
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopHRAM:
		return address, HRAM
	}
	return address, InterruptEnable
}

// Mirror returns the address that always holds the same value as the
// argument. The boolean is false if the address is not mirrored.
func Mirror(address uint16) (uint16, bool) {
	if address >= OriginInternalRAM && address <= MemtopMirrored {
		return address + EchoDelta, true
	}
	if address >= OriginEcho && address <= MemtopEcho {
		return address - EchoDelta, true
	}
	return 0, false
}
