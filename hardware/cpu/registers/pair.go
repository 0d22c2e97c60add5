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

// RegisterPair joins two 8 bit registers into a 16 bit register. The pair
// does not own the registers.
type RegisterPair struct {
	hi *Register
	lo *Register
}

// NewRegisterPair is the preferred method of initialisation for RegisterPair.
func NewRegisterPair(hi *Register, lo *Register) RegisterPair {
	return RegisterPair{hi: hi, lo: lo}
}

func (rp RegisterPair) String() string {
	return fmt.Sprintf("0x%04x", rp.Value())
}

// Label returns the canonical name of the pair. For example, "BC".
func (rp RegisterPair) Label() string {
	return rp.hi.label + rp.lo.label
}

// Value returns the 16 bit value of the pair.
func (rp RegisterPair) Value() uint16 {
	return uint16(rp.hi.value)<<8 | uint16(rp.lo.value)
}

// Load a 16 bit value into the pair.
func (rp RegisterPair) Load(val uint16) {
	rp.hi.value = uint8(val >> 8)
	rp.lo.value = uint8(val)
}

// Inc adds one to the pair with wraparound.
func (rp RegisterPair) Inc() {
	rp.Load(rp.Value() + 1)
}

// Dec subtracts one from the pair with wraparound.
func (rp RegisterPair) Dec() {
	rp.Load(rp.Value() - 1)
}

// Add a 16 bit value to the pair. Returns the carry out of bit 15 and the
// carry out of bit 11.
func (rp RegisterPair) Add(val uint16) (carry bool, half bool) {
	v := rp.Value()
	sum := uint32(v) + uint32(val)
	rp.Load(uint16(sum))
	return sum > 0xffff, (v&0x0fff)+(val&0x0fff) > 0x0fff
}
