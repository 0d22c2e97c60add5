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

// Package logger is the central log for the emulator. Log entries are kept in
// a bounded list and can be written out, tailed or echoed as they arrive.
//
// Entries are made with the Log() and Logf() functions. The first argument is
// an implementation of the Permission interface. Use logger.Allow when an
// entry should always be made.
//
//	logger.Log(logger.Allow, "timer", "registered ticker")
//	logger.Logf(logger.Allow, "cpu", "servicing interrupt %s", src)
//
// The detail argument to Log() can be a string, an error, a fmt.Stringer or
// any other value, in which case it is formatted with the %v verb.
//
// Adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// The emulation loop should never log on every instruction. Per-instruction
// output is the job of the tracer package.
package logger
