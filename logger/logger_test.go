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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", errors.New("this is another test"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// tail larger than the number of entries
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	log.Clear()
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "timer", "ticker %d fired", 256)
	log.Logf(logger.Allow, "timer", "ticker %d fired", 256)
	log.Logf(logger.Allow, "timer", "ticker %d fired", 256)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "timer: ticker 256 fired (repeat x3)\n")

	var n int
	log.BorrowLog(func(e []logger.Entry) {
		n = len(e)
	})
	test.ExpectEquality(t, n, 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibit struct{}

func (prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibit{}, "test", "should not appear")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "before", "echo")
	log.SetEcho(w, false)
	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, w.String(), "after: echo\n")

	// writeRecent includes everything not yet seen
	w.Reset()
	log.SetEcho(w, true)
	log.Log(logger.Allow, "again", "echo")
	test.ExpectEquality(t, w.String(), "before: echo\nafter: echo\nagain: echo\n")

	w.Reset()
	log.Log(logger.Allow, "last", "echo")
	test.ExpectEquality(t, w.String(), "last: echo\n")

	w.Reset()
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "quiet", "echo")
	test.ExpectEquality(t, w.String(), "")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)
	n, err := c.Write([]byte("cpu: reset\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("cpu: reset\n"))
	test.ExpectEquality(t, strings.Contains(w.String(), "cpu"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), ": reset\n"), true)
}
