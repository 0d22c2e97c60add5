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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/logger"
	lua "github.com/yuin/gopher-lua"
)

// Run the Lua program in source. Output from the print function is written
// to out.
func Run(dmg *hardware.DMG, source string, out io.Writer) error {
	return RunContext(context.Background(), dmg, source, out)
}

// RunContext is the same as Run() but the program is stopped if the context
// is cancelled.
func RunContext(ctx context.Context, dmg *hardware.DMG, source string, out io.Writer) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	scr := &scripting{dmg: dmg, out: out}
	scr.install(L)

	if err := L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	return nil
}

type scripting struct {
	dmg *hardware.DMG
	out io.Writer
}

func (scr *scripting) install(L *lua.LState) {
	for name, f := range map[string]lua.LGFunction{
		"step":     scr.step,
		"peek":     scr.peek,
		"poke":     scr.poke,
		"reg":      scr.reg,
		"setreg":   scr.setreg,
		"flag":     scr.flag,
		"cycles":   scr.cycles,
		"register": scr.register,
		"fired":    scr.fired,
		"phase":    scr.phase,
		"log":      scr.log,
		"print":    scr.print,
	} {
		L.SetGlobal(name, L.NewFunction(f))
	}
}

// checkAddress returns the argument at n as a 16 bit value.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range: %#x", v))
	}
	return uint16(v)
}

func (scr *scripting) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		if err := scr.dmg.Step(); err != nil {
			L.RaiseError("%v", err)
			return 0
		}
	}
	return 0
}

func (scr *scripting) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.Mem.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *scripting) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range: %#x", v))
		return 0
	}
	scr.dmg.Mem.Poke(address, uint8(v))
	return 0
}

func (scr *scripting) reg(L *lua.LState) int {
	r, err := registerNames.find(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LNumber(r.get(scr.dmg.CPU)))
	return 1
}

func (scr *scripting) setreg(L *lua.LState) int {
	r, err := registerNames.find(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	v := L.CheckInt(2)
	if v < 0 || v >= 1<<r.width {
		L.ArgError(2, fmt.Sprintf("value out of range for %s: %#x", r.name, v))
		return 0
	}
	r.set(scr.dmg.CPU, uint16(v))
	return 0
}

func (scr *scripting) flag(L *lua.LState) int {
	f, err := flagNames.find(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LBool(f.get(scr.dmg.CPU)))
	return 1
}

func (scr *scripting) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.Timer.Cycles))
	return 1
}

// register adds a ticker to the timer for use with fired().
func (scr *scripting) register(L *lua.LState) int {
	if err := scr.dmg.Timer.RegisterPeriodic(L.CheckInt(1)); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

// fired reports whether a ticker fired. the tickers belonging to the
// peripherals are consumed on every step so their state is taken from the
// most recent update. any other period must have been registered.
func (scr *scripting) fired(L *lua.LState) int {
	period := L.CheckInt(1)

	if fired, ok := scr.dmg.Peripherals.Fired(period); ok {
		L.Push(lua.LBool(fired))
		return 1
	}

	fired, err := scr.dmg.Timer.DidFire(period)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LBool(fired))
	return 1
}

func (scr *scripting) phase(L *lua.LState) int {
	phase, err := scr.dmg.Timer.CurrentPhase(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LNumber(phase))
	return 1
}

func (scr *scripting) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

// print replaces the Lua print function so that output goes to the writer
// supplied to Run().
func (scr *scripting) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	if _, err := io.WriteString(scr.out, strings.Join(s, "\t")+"\n"); err != nil {
		L.RaiseError("print: %v", err)
	}
	return 0
}
