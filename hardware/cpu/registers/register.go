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

import (
	"fmt"
)

// Register is an 8 bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("0x%02x", r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns the carry out of bit 7 and the carry out of
// bit 3.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, half bool) {
	var c uint8
	if carry {
		c = 1
	}
	v := r.value
	sum := uint16(v) + uint16(val) + uint16(c)
	r.value = uint8(sum)
	return sum > 0xff, (v&0x0f)+(val&0x0f)+c > 0x0f
}

// Subtract value from register. Returns the borrow into bit 7 and the borrow
// into bit 3.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, half bool) {
	var b uint8
	if borrow {
		b = 1
	}
	v := r.value
	r.value = v - val - b
	return uint16(v) < uint16(val)+uint16(b), v&0x0f < (val&0x0f)+b
}

// Inc adds one to the register. Returns true if there was a carry out of bit 3.
func (r *Register) Inc() (half bool) {
	half = r.value&0x0f == 0x0f
	r.value++
	return half
}

// Dec subtracts one from the register. Returns true if there was a borrow into
// bit 3.
func (r *Register) Dec() (half bool) {
	half = r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// RLC rotates the register left. Bit 7 is copied to bit 0 and returned.
func (r *Register) RLC() bool {
	out := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return out
}

// RRC rotates the register right. Bit 0 is copied to bit 7 and returned.
func (r *Register) RRC() bool {
	out := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return out
}

// RL rotates the register left through the carry. Returns the new carry.
func (r *Register) RL(carry bool) bool {
	out := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return out
}

// RR rotates the register right through the carry. Returns the new carry.
func (r *Register) RR(carry bool) bool {
	out := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return out
}

// SLA shifts the register left. Returns the bit shifted out.
func (r *Register) SLA() bool {
	out := r.value&0x80 == 0x80
	r.value <<= 1
	return out
}

// SRA shifts the register right preserving bit 7. Returns the bit shifted out.
func (r *Register) SRA() bool {
	out := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return out
}

// SRL shifts the register right. Returns the bit shifted out.
func (r *Register) SRL() bool {
	out := r.value&0x01 == 0x01
	r.value >>= 1
	return out
}

// Swap exchanges the upper and lower nibbles.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}

// Bit returns the state of bit b.
func (r Register) Bit(b uint8) bool {
	return r.value&(1<<(b&0x07)) != 0
}

// Set bit b.
func (r *Register) Set(b uint8) {
	r.value |= 1 << (b & 0x07)
}

// Res clears bit b.
func (r *Register) Res(b uint8) {
	r.value &^= 1 << (b & 0x07)
}
