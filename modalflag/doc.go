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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a bare word on the command line that selects a
// different set of flags and arguments, in the way that "go build" and "go
// test" differ.
//
// Arguments are given once with NewArgs() and then consumed by successive
// calls to Parse(). Each call to Parse() works with the flags and sub-modes
// added since the most recent call to NewMode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "instruction limit")
//		...
//	}
//
// The first sub-mode in the list is the default and is chosen if the next
// argument is not a recognised mode. Mode comparisons are case insensitive.
//
// Non-flag arguments remaining after a Parse() are available through the
// RemainingArgs() and GetArg() functions.
package modalflag
