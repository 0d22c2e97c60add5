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

package tracer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware"
)

// Tracer steps the emulation and writes a trace line for each instruction.
type Tracer struct {
	output io.Writer
	dmg    *hardware.DMG

	// include the most recent memory write in the trace line
	Writes bool

	// number of lines written
	Lines uint64
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(output io.Writer, dmg *hardware.DMG) *Tracer {
	return &Tracer{
		output: output,
		dmg:    dmg,
	}
}

// Step the emulation by one instruction and write the trace line. If the
// emulation fails the line for the failing instruction is still written,
// marked as a fault, and the emulation error is returned.
func (trc *Tracer) Step() error {
	trc.dmg.Mem.ResetLastAccess()

	stepErr := trc.dmg.Step()

	s := strings.Builder{}
	s.WriteString(trc.line())
	if stepErr != nil {
		s.WriteString(" FAULT")
	}
	s.WriteString("\n")

	if _, err := io.WriteString(trc.output, s.String()); err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	trc.Lines++

	return stepErr
}

// Run the emulation for the number of instructions. A limit of zero means no
// limit. Context cancellation is not an error.
func (trc *Tracer) Run(ctx context.Context, limit uint64) error {
	var brake int
	for n := uint64(0); limit == 0 || n < limit; n++ {
		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			if ctx.Err() != nil {
				return nil
			}
		}

		if err := trc.Step(); err != nil {
			return err
		}
	}
	return nil
}

// line formats the most recent instruction.
func (trc *Tracer) line() string {
	e := disassembly.FormatResult(trc.dmg.CPU.LastResult, disassembly.EntryLevelExecuted)

	s := fmt.Sprintf("%s %-9s %-18s %s %s", e.Address, e.Bytecode, e.String(), trc.dmg.CPU, trc.dmg.Mem)

	if trc.Writes && trc.dmg.Mem.LastWriteValid {
		a := trc.dmg.Mem.LastWrite
		s = fmt.Sprintf("%s write $%04x=$%02x", s, a, trc.dmg.Mem.Peek(a))
	}

	return s
}
