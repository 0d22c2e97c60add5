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

// Package test contains helper functions to remove common boilerplate from
// the tests throughout the emulator.
//
// The Expect*() functions record a test failure and allow the test to
// continue. The Demand*() functions are the same except that the failure is
// fatal to the test. Use Demand*() when later parts of the test depend on the
// value being correct. For example, a CPU step that returns an error makes all
// further register checks meaningless.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but follows from how errors are usually
// returned in Go.
//
// The RingWriter type implements io.Writer and keeps only the most recent
// bytes written to it. Useful for capturing the tail of a long trace.
package test
