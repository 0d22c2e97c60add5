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

package addresses

// Memory mapped registers. Only DIV, IF, STAT and LY are driven by the
// emulation. The others are named for presentation.
const (
	JOYP = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	BGP  = uint16(0xff47)
	BOOT = uint16(0xff50)
	IE   = uint16(0xffff)
)

// IOBase is the base address for the LDH and LD (C) instructions.
const IOBase = uint16(0xff00)

// Interrupt identifies one of the five interrupt sources. The value is the bit
// number in the IF and IE registers and also indicates priority, with zero
// being the highest.
type Interrupt int

// List of interrupt sources in priority order.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumInterrupts
)

// InterruptMask covers the bits of IF and IE that correspond to a source.
const InterruptMask = uint8(0x1f)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "V-Blank"
	case LCDStat:
		return "LCD STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Bit returns the mask for the interrupt in the IF and IE registers.
func (i Interrupt) Bit() uint8 {
	return 1 << uint8(i)
}

// Vector returns the address of the interrupt service routine.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Symbols maps register addresses to their canonical names.
var Symbols = map[uint16]string{
	JOYP: "JOYP",
	SB:   "SB",
	SC:   "SC",
	DIV:  "DIV",
	TIMA: "TIMA",
	TMA:  "TMA",
	TAC:  "TAC",
	IF:   "IF",
	LCDC: "LCDC",
	STAT: "STAT",
	SCY:  "SCY",
	SCX:  "SCX",
	LY:   "LY",
	LYC:  "LYC",
	BGP:  "BGP",
	BOOT: "BOOT",
	IE:   "IE",
}
