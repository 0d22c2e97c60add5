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

package hardware

import (
	"context"

	"github.com/gopherdmg/gopherdmg/logger"
)

// The continueCheck() function runs at the end of every instruction and it
// can be expensive to do a full continue check every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
//
// Run() uses the same value to limit how often the context is checked.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. It returns when an
// error occurs, when the context is cancelled or when continueCheck returns
// false. A nil continueCheck is the same as one that always returns true.
//
// Context cancellation is not an error and Run() returns nil in that case.
func (dmg *DMG) Run(ctx context.Context, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	var brake int

	for {
		brake++
		if brake >= PerformanceBrake {
			brake = 0
			if err := ctx.Err(); err != nil {
				logger.Logf(logger.Allow, "dmg", "run ended: %v", err)
				return nil
			}
		}

		if err := dmg.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
