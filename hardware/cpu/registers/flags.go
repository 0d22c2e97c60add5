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

// Flags is the LR35902 flag register. In value context the flags occupy the
// upper nibble and the lower nibble is always zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flag register.
func (fl Flags) Label() string {
	return "F"
}

// String returns the flags as four characters. Upper case indicates a set
// flag.
func (fl Flags) String() string {
	b := []byte("znhc")
	if fl.Zero {
		b[0] = 'Z'
	}
	if fl.Subtract {
		b[1] = 'N'
	}
	if fl.HalfCarry {
		b[2] = 'H'
	}
	if fl.Carry {
		b[3] = 'C'
	}
	return string(b)
}

// Reset all flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// Value converts the flags into a value suitable for pushing onto the stack.
func (fl Flags) Value() uint8 {
	var v uint8
	if fl.Zero {
		v |= 0x80
	}
	if fl.Subtract {
		v |= 0x40
	}
	if fl.HalfCarry {
		v |= 0x20
	}
	if fl.Carry {
		v |= 0x10
	}
	return v
}

// Load flags from an 8 bit value. The lower nibble is ignored.
func (fl *Flags) Load(v uint8) {
	fl.Zero = v&0x80 == 0x80
	fl.Subtract = v&0x40 == 0x40
	fl.HalfCarry = v&0x20 == 0x20
	fl.Carry = v&0x10 == 0x10
}
