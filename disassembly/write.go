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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is written by Write() and WriteLine().
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write all entries to output, one entry per line.
func Write(output io.Writer, entries []*Entry, attr WriteAttr) error {
	for _, e := range entries {
		if err := WriteLine(output, e, attr); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry followed by a newline.
func WriteLine(output io.Writer, e *Entry, attr WriteAttr) error {
	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%-9s ", e.Bytecode)
	}

	s = fmt.Sprintf("%s%s %-5s %-12s", s, e.Address, e.Operator, e.Operand)

	if attr.Cycles {
		s = fmt.Sprintf("%s %5s", s, e.Cycles())
		if n := e.Notes(); n != "" {
			s = fmt.Sprintf("%s %s", s, n)
		}
	}

	_, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " ")))
	return err
}
