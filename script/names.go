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

package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
)

// register gives access to a single CPU register.
type register struct {
	name  string
	width int
	get   func(mc *cpu.CPU) uint16
	set   func(mc *cpu.CPU, v uint16)
}

var registers = []register{
	{"a", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.A.Value()) }, func(mc *cpu.CPU, v uint16) { mc.A.Load(uint8(v)) }},
	{"f", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.F.Value()) }, func(mc *cpu.CPU, v uint16) { mc.F.Load(uint8(v)) }},
	{"b", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.B.Value()) }, func(mc *cpu.CPU, v uint16) { mc.B.Load(uint8(v)) }},
	{"c", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.C.Value()) }, func(mc *cpu.CPU, v uint16) { mc.C.Load(uint8(v)) }},
	{"d", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.D.Value()) }, func(mc *cpu.CPU, v uint16) { mc.D.Load(uint8(v)) }},
	{"e", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.E.Value()) }, func(mc *cpu.CPU, v uint16) { mc.E.Load(uint8(v)) }},
	{"h", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.H.Value()) }, func(mc *cpu.CPU, v uint16) { mc.H.Load(uint8(v)) }},
	{"l", 8, func(mc *cpu.CPU) uint16 { return uint16(mc.L.Value()) }, func(mc *cpu.CPU, v uint16) { mc.L.Load(uint8(v)) }},
	{"af", 16, func(mc *cpu.CPU) uint16 { return mc.AF() }, func(mc *cpu.CPU, v uint16) { mc.LoadAF(v) }},
	{"bc", 16, func(mc *cpu.CPU) uint16 { return mc.BC().Value() }, func(mc *cpu.CPU, v uint16) { mc.BC().Load(v) }},
	{"de", 16, func(mc *cpu.CPU) uint16 { return mc.DE().Value() }, func(mc *cpu.CPU, v uint16) { mc.DE().Load(v) }},
	{"hl", 16, func(mc *cpu.CPU) uint16 { return mc.HL().Value() }, func(mc *cpu.CPU, v uint16) { mc.HL().Load(v) }},
	{"sp", 16, func(mc *cpu.CPU) uint16 { return mc.SP.Address() }, func(mc *cpu.CPU, v uint16) { mc.SP.Load(v) }},
	{"pc", 16, func(mc *cpu.CPU) uint16 { return mc.PC.Address() }, func(mc *cpu.CPU, v uint16) { mc.PC.Load(v) }},
}

// flag gives access to a single CPU flag.
type flag struct {
	name string
	get  func(mc *cpu.CPU) bool
}

var flags = []flag{
	{"zero", func(mc *cpu.CPU) bool { return mc.F.Zero }},
	{"subtract", func(mc *cpu.CPU) bool { return mc.F.Subtract }},
	{"halfcarry", func(mc *cpu.CPU) bool { return mc.F.HalfCarry }},
	{"carry", func(mc *cpu.CPU) bool { return mc.F.Carry }},
	{"ime", func(mc *cpu.CPU) bool { return mc.IME }},
}

// single letter flag names as they appear in the F register
var flagLetters = map[string]string{
	"z": "zero",
	"n": "subtract",
	"h": "halfcarry",
	"c": "carry",
}

// names is a lookup of names by unique prefix. exact matches always win so
// that a name that is also a prefix of another name ("a" and "af") can be
// found.
type names[T any] struct {
	exact map[string]T
	tree  *prefixtree.Tree[T]
}

func newNames[T any]() *names[T] {
	return &names[T]{
		exact: make(map[string]T),
		tree:  prefixtree.New[T](),
	}
}

func (n *names[T]) add(name string, v T) {
	n.exact[name] = v
	n.tree.Add(name, v)
}

func (n *names[T]) find(name string) (T, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if v, ok := n.exact[name]; ok {
		return v, nil
	}
	v, err := n.tree.FindValue(name)
	if err != nil {
		switch {
		case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
			return v, fmt.Errorf("ambiguous name: %s", name)
		case errors.Is(err, prefixtree.ErrPrefixNotFound):
			return v, fmt.Errorf("unknown name: %s", name)
		}
		return v, err
	}
	return v, nil
}

var (
	registerNames = newNames[*register]()
	flagNames     = newNames[*flag]()
)

func init() {
	for i := range registers {
		registerNames.add(registers[i].name, &registers[i])
	}
	for i := range flags {
		flagNames.add(flags[i].name, &flags[i])
	}
	for l, n := range flagLetters {
		f, _ := flagNames.find(n)
		flagNames.exact[l] = f
	}
}
