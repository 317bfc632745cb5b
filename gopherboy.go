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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/quarthex/gopherboy/cartridgeloader"
	"github.com/quarthex/gopherboy/disassembly"
	"github.com/quarthex/gopherboy/hardware"
	"github.com/quarthex/gopherboy/hardware/memory"
	"github.com/quarthex/gopherboy/hardware/memory/cartridge"
	"github.com/quarthex/gopherboy/logger"
	"github.com/quarthex/gopherboy/modalflag"
	"github.com/quarthex/gopherboy/performance"
	"github.com/quarthex/gopherboy/version"
)

const defaultInitialAddress = 0x0100

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.SubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")
	md.AdditionalHelp("The RUN mode is assumed if no mode is explicitly given.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}

	mode := md.Mode()
	if mode == "" {
		mode = "RUN"
	}

	switch mode {
	case "RUN":
		os.Exit(emulate(md))
	case "DISASM":
		os.Exit(disasm(md))
	case "PERFORMANCE":
		os.Exit(perform(md))
	case "VERSION":
		fmt.Println(version.Version)
		os.Exit(0)
	}
}

// loadCartridge handles the one positional argument common to all modes that
// work on a cartridge image.
func loadCartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	args := md.RemainingArgs()
	if len(args) != 1 {
		return cartridgeloader.Loader{}, fmt.Errorf("one cartridge image required")
	}

	ld := cartridgeloader.NewLoader(args[0])
	if err := ld.Load(); err != nil {
		return cartridgeloader.Loader{}, err
	}

	return ld, nil
}

func emulate(md *modalflag.Modes) int {
	md.NewMode()
	log := md.AddBool("log", false, "echo log entries to stderr as they arrive")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	ld, err := loadCartridge(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	dmg, err := hardware.NewDMG(ld.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	// interrupt the emulation on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = dmg.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		logger.Tail(os.Stderr, 10)
		return 10
	}

	return 0
}

func disasm(md *modalflag.Modes) int {
	md.NewMode()
	origin := md.AddString("origin", fmt.Sprintf("%#04x", defaultInitialAddress), "address to disassemble from")
	numInstructions := md.AddInt("n", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	address, err := strconv.ParseUint(*origin, 0, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* origin: %s\n", err)
		return 10
	}

	ld, err := loadCartridge(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	cart, err := cartridge.NewCartridge(ld.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	dsm, err := disassembly.FromMemory(memory.NewMemory(cart), uint16(address), *numInstructions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	err = dsm.Write(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	return 0
}

func perform(md *modalflag.Modes) int {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration (with an additional short settling period)")
	profile := md.AddBool("profile", false, "write cpu and mem profiles")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	ld, err := loadCartridge(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	dmg, err := hardware.NewDMG(ld.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	err = performance.Check(os.Stdout, *profile, dmg, *duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	return 0
}
