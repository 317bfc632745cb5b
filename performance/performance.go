// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation for a fixed duration of
// time. It will optionally generate profiling information.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/quarthex/gopherboy/curated"
	"github.com/quarthex/gopherboy/hardware"
	"github.com/quarthex/gopherboy/statsview"
)

// the machine cycle rate of the real console, in cycles per second.
const dmgCycleRate = 1048576.0

// number of instructions to execute between deadline checks. reading the
// clock is expensive compared to an emulated instruction.
const performanceBrake = 1000

// Check the performance of the emulation using the supplied console.
//
// Emulation will run for the specified duration and will create a cpu and
// memory profile if the profile argument is true.
func Check(output io.Writer, profile bool, dmg *hardware.DMG, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if statsview.Available() {
		statsview.Launch(output)
	}

	instructions := 0
	cycles := 0

	runner := func() error {
		deadline := time.Now().Add(dur)
		brake := 0

		for {
			c, err := dmg.Step()
			if err != nil {
				return err
			}
			cycles += c
			instructions++

			brake++
			if brake >= performanceBrake {
				brake = 0
				if !time.Now().Before(deadline) {
					return nil
				}
			}
		}
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	secs := dur.Seconds()
	speed := float64(cycles) / secs / dmgCycleRate
	output.Write([]byte(fmt.Sprintf("%d instructions (%d machine cycles) in %.2f seconds\n", instructions, cycles, secs)))
	output.Write([]byte(fmt.Sprintf("%.2fx the speed of a real DMG\n", speed)))

	return nil
}
