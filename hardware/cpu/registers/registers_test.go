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

package registers_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestRegister(t *testing.T) {
	var carry, half bool

	r := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r.IsZero(), true)
	test.ExpectEquality(t, r.Label(), "A")

	// addition
	r.Load(0x0f)
	carry, half = r.Add(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, half, true)

	r.Load(0xff)
	carry, half = r.Add(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, half, true)

	// carry in
	r.Load(0xfe)
	carry, half = r.Add(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, half, true)

	r.Load(0x01)
	carry, half = r.Add(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0x03))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, half, false)

	// subtraction
	r.Load(0x10)
	carry, half = r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x0f))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, half, true)

	r.Load(0x00)
	carry, half = r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, half, true)

	r.Load(0x01)
	carry, half = r.Subtract(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, half, true)

	r.Load(0x3e)
	carry, half = r.Subtract(0x0f, false)
	test.ExpectEquality(t, r.Value(), uint8(0x2f))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, half, true)

	// logical
	r.Load(0x21)
	r.AND(0x01)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
	r.XOR(0xff)
	test.ExpectEquality(t, r.Value(), uint8(0xfe))
	r.OR(0x01)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
}

func TestIncDec(t *testing.T) {
	r := registers.NewRegister(0, "B")

	for i := 0; i <= 0xff; i++ {
		r.Load(uint8(i))
		r.Inc()
		r.Dec()
		test.ExpectEquality(t, r.Value(), uint8(i), "inc/dec")
		r.Dec()
		r.Inc()
		test.ExpectEquality(t, r.Value(), uint8(i), "dec/inc")
	}

	r.Load(0xff)
	test.ExpectEquality(t, r.Inc(), true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, r.Dec(), true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))

	r.Load(0x0e)
	test.ExpectEquality(t, r.Inc(), false)
	r.Load(0x01)
	test.ExpectEquality(t, r.Dec(), false)
}

func TestRotatesAndShifts(t *testing.T) {
	r := registers.NewRegister(0, "C")

	r.Load(0x85)
	test.ExpectEquality(t, r.RLC(), true)
	test.ExpectEquality(t, r.Value(), uint8(0x0b))
	test.ExpectEquality(t, r.RRC(), true)
	test.ExpectEquality(t, r.Value(), uint8(0x85))

	r.Load(0x80)
	test.ExpectEquality(t, r.RL(false), true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, r.RL(true), false)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
	test.ExpectEquality(t, r.RR(false), true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, r.RR(true), false)
	test.ExpectEquality(t, r.Value(), uint8(0x80))

	r.Load(0x81)
	test.ExpectEquality(t, r.SRA(), true)
	test.ExpectEquality(t, r.Value(), uint8(0xc0))
	test.ExpectEquality(t, r.SLA(), true)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectEquality(t, r.SRL(), false)
	test.ExpectEquality(t, r.Value(), uint8(0x40))

	r.Load(0xf1)
	r.Swap()
	test.ExpectEquality(t, r.Value(), uint8(0x1f))
}

func TestBits(t *testing.T) {
	r := registers.NewRegister(0, "H")
	r.Set(7)
	test.ExpectEquality(t, r.Bit(7), true)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	r.Set(0)
	r.Res(7)
	test.ExpectEquality(t, r.Bit(7), false)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
}

func TestRegisterPair(t *testing.T) {
	b := registers.NewRegister(0, "B")
	c := registers.NewRegister(0, "C")
	bc := registers.NewRegisterPair(&b, &c)
	test.ExpectEquality(t, bc.Label(), "BC")

	bc.Load(0x1234)
	test.ExpectEquality(t, b.Value(), uint8(0x12))
	test.ExpectEquality(t, c.Value(), uint8(0x34))

	bc.Load(0xffff)
	bc.Inc()
	test.ExpectEquality(t, bc.Value(), uint16(0x0000))
	bc.Dec()
	test.ExpectEquality(t, bc.Value(), uint16(0xffff))

	bc.Load(0x0fff)
	carry, half := bc.Add(0x0001)
	test.ExpectEquality(t, bc.Value(), uint16(0x1000))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, half, true)

	bc.Load(0x8000)
	carry, half = bc.Add(0x8000)
	test.ExpectEquality(t, bc.Value(), uint16(0x0000))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, half, false)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x7ffe, 0x8000)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0x7fff))
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))

	pc.Load(0x7fff)
	pc.Add(3)
	test.ExpectEquality(t, pc.Address(), uint16(0x0002))

	// outside the window the counter wraps at 16 bits
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))

	pc.Load(0xc000)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(0xc002))

	// no window
	pc = registers.NewProgramCounter(0x7fff, 0)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0x8000))
}

func TestFlags(t *testing.T) {
	var fl registers.Flags
	test.ExpectEquality(t, fl.String(), "znhc")

	fl.Load(0xff)
	test.ExpectEquality(t, fl.String(), "ZNHC")
	test.ExpectEquality(t, fl.Value(), uint8(0xf0))

	fl.Load(0xa0)
	test.ExpectEquality(t, fl.String(), "ZnHc")

	fl.Reset()
	test.ExpectEquality(t, fl.Value(), uint8(0x00))
}
