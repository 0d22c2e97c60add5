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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/test"
)

// writeFile creates a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(path, data, 0o644))
	return path
}

func launchArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()
	out := &strings.Builder{}
	v := launch(context.Background(), out, &strings.Builder{}, args)
	return v, out.String()
}

func TestHelp(t *testing.T) {
	v, out := launchArgs(t, "-help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.Contains(out, "TRACE"), true)
}

func TestMissingBootROM(t *testing.T) {
	v, out := launchArgs(t, "RUN")
	test.ExpectEquality(t, v, exitArguments)
	test.ExpectEquality(t, strings.HasPrefix(out, "* error in RUN mode: "), true)

	v, _ = launchArgs(t, "TRACE", filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectEquality(t, v, exitArguments)
}

func TestBadPreferences(t *testing.T) {
	rom := writeFile(t, "boot.bin", []byte{0x00})

	v, out := launchArgs(t, "TRACE", "-prefs", "cpu.nosuch::1", rom)
	test.ExpectEquality(t, v, exitArguments)
	test.ExpectEquality(t, strings.Contains(out, "unrecognised preferences"), true)
}

func TestRunFault(t *testing.T) {
	// LD A,$42; unknown opcode
	rom := writeFile(t, "boot.bin", []byte{0x3e, 0x42, 0xd3})

	// RUN is the default mode
	v, out := launchArgs(t, rom)
	test.ExpectEquality(t, v, exitError)
	test.ExpectEquality(t, strings.Contains(out, "A=0x42"), true)
	test.ExpectEquality(t, strings.Contains(out, "* error in RUN mode: "), true)
	test.ExpectEquality(t, strings.Contains(out, "unknown opcode"), true)
}

func TestRunSnapshot(t *testing.T) {
	rom := writeFile(t, "boot.bin", []byte{0xd3})
	mem := filepath.Join(t.TempDir(), "memory.dump")

	v, _ := launchArgs(t, "RUN", "-snapshot", mem, rom)
	test.ExpectEquality(t, v, exitError)

	info, err := os.Stat(mem)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(0x10000))
}

func TestTrace(t *testing.T) {
	rom := writeFile(t, "boot.bin", []byte{0x00, 0x00, 0x00, 0x00})

	v, out := launchArgs(t, "TRACE", "-limit", "3", rom)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.Count(out, "\n"), 3)
	test.ExpectEquality(t, strings.Contains(out, "NOP"), true)
}

func TestScriptMode(t *testing.T) {
	rom := writeFile(t, "boot.bin", []byte{0x3e, 0x42})
	lua := writeFile(t, "test.lua", []byte("step()\nprint(reg(\"a\"))\n"))

	v, out := launchArgs(t, "SCRIPT", rom, lua)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, out, "66\n")

	v, _ = launchArgs(t, "SCRIPT", rom)
	test.ExpectEquality(t, v, exitArguments)
}

func TestPerformanceMode(t *testing.T) {
	// JR -2
	rom := writeFile(t, "boot.bin", []byte{0x18, 0xfe})

	v, out := launchArgs(t, "PERFORMANCE", "-duration", "20ms", "-prefs", "cpu.interrupts::service", rom)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.Contains(out, " MHz ("), true)

	v, _ = launchArgs(t, "PERFORMANCE", "-duration", "0s", rom)
	test.ExpectEquality(t, v, exitArguments)
}

func TestDump(t *testing.T) {
	// LD B,$01; INC B
	rom := writeFile(t, "boot.bin", []byte{0x06, 0x01, 0x04})
	dir := t.TempDir()
	mem := filepath.Join(dir, "memory.dump")
	graph := filepath.Join(dir, "state.dot")

	v, out := launchArgs(t, "DUMP", "-steps", "2", "-memory", mem, "-graph", graph, "-disasm", "2", rom)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.Contains(out, "BC=0x0200"), true)
	test.ExpectEquality(t, strings.Contains(out, "INC"), true)

	_, err := os.Stat(mem)
	test.ExpectSuccess(t, err)

	g, err := os.ReadFile(graph)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(g), "digraph"), true)
}

func TestVersion(t *testing.T) {
	v, out := launchArgs(t, "-version")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.HasPrefix(out, "Gopherdmg "), true)
}
