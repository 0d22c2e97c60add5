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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gopherdmg/gopherdmg/hardware"
)

// DefaultDuration is the length of a performance run when none is specified.
const DefaultDuration = 5 * time.Second

// ClockSpeed is the clock speed of the DMG in Hz.
const ClockSpeed = 4194304

// CalcMHz returns the effective clock speed in MHz for the number of cycles
// emulated in the duration. The accuracy is the percentage of the speed of
// the real hardware.
func CalcMHz(cycles uint64, duration time.Duration) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration.Seconds()
	return hz / 1000000, 100 * hz / ClockSpeed
}

// Check runs the emulation for the duration and writes the effective clock
// speed to output. The emulation may end early if it faults, in which case
// the speed is still reported and the fault is returned.
func Check(output io.Writer, dmg *hardware.DMG, duration time.Duration, profile bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startCycles := dmg.Timer.Cycles
	startTime := time.Now()

	var runErr error
	err := cpuProfile(profile, "cpu.profile", func() error {
		runErr = dmg.Run(ctx, nil)
		return nil
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	cycles := dmg.Timer.Cycles - startCycles
	mhz, accuracy := CalcMHz(cycles, elapsed)

	_, err = io.WriteString(output, fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy))
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("performance: %w", runErr)
	}

	return memProfile(profile, "mem.profile")
}
