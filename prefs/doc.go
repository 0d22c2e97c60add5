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

// Package prefs implements the live preference values used throughout the
// emulator. The Bool, Int and String types can be read and set safely from
// any goroutine. Values are grouped with a Collection, which associates each
// value with a key:
//
//	var c prefs.Collection
//	var limit prefs.Int
//	c.Add("cpu.limit", &limit)
//
// Values in a collection can be overridden by a prefs string given on the
// command line. The string is a semi-colon separated list of key/value pairs,
// each pair separated by a double colon:
//
//	"cpu.limit::1000; cpu.interrupts::service"
//
// Command line groups are pushed onto a stack with PushCommandLineStack() and
// applied to a collection with Collection.ApplyCommandLine(). Any entries not
// consumed are returned by PopCommandLineStack().
package prefs
