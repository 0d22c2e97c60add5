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

package execution_test

import (
	"errors"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/definitions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestIsValid(t *testing.T) {
	defns := definitions.GetDefinitions()
	prefixed := definitions.GetPrefixedDefinitions()

	var r execution.Result
	test.ExpectEquality(t, errors.Is(r.IsValid(), execution.ErrNotFinal), true)

	r = execution.Result{Defn: defns[0x20], ByteCount: 2, Cycles: 8, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectEquality(t, errors.Is(r.IsValid(), execution.ErrCycles), true)
	r.Cycles = 12
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 3
	test.ExpectEquality(t, errors.Is(r.IsValid(), execution.ErrByteCount), true)

	r = execution.Result{Defn: prefixed[0x7c], Prefixed: true, ByteCount: 2, Cycles: 8, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.Reset()
	test.ExpectEquality(t, r.Final, false)
	test.ExpectEquality(t, r.Defn == nil, true)
}
