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

// Package modalflag is a wrapper of the flag package in the Go standard
// library. It provides command line handling for programs that divide
// their functionality into sub-modes, each with their own flags, eg.
//
//	gopherboy [flags] [mode] [mode specific flags] file
//
// The idiomatic usage is to call NewArgs() once with the command line
// arguments, Parse() to discover the mode, and then NewMode() followed by
// another Parse() for the flags of the chosen mode.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quarthex/gopherboy/curated"
)

const modeSeparator = "/"

// Modes provides command line parsing in layers of sub-modes.
type Modes struct {
	// where to print output (help messages etc). defaults to os.Stdout
	Output io.Writer

	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx
	// advances past consumed arguments on every call to Parse()
	args    []string
	argsIdx int

	// the sub-modes valid for the next call to Parse()
	subModes []string

	// the series of sub-modes encountered during subsequent calls to
	// Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// SubModes names the modes recognised by the next call to Parse().
func (md *Modes) SubModes(modes ...string) {
	md.subModes = modes
}

// AdditionalHelp adds help text to be displayed in addition to the
// regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// RemainingArgs returns the arguments not yet consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified
	// then the Mode() function says which one was encountered
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments, consuming flags and at most one
// sub-mode.
func (md *Modes) Parse() (ParseResult, error) {
	if md.Output == nil {
		md.Output = os.Stdout
	}
	md.flags.SetOutput(md.Output)
	md.flags.Usage = md.usage

	err := md.flags.Parse(md.RemainingArgs())
	if err != nil {
		if err == flag.ErrHelp {
			return ParseHelp, nil
		}
		return ParseError, curated.Errorf("modalflag: %v", err)
	}

	remaining := md.flags.Args()
	md.argsIdx = len(md.args) - len(remaining)

	if len(md.subModes) > 0 && len(remaining) > 0 {
		for _, sm := range md.subModes {
			if strings.EqualFold(remaining[0], sm) {
				md.path = append(md.path, strings.ToUpper(sm))
				md.argsIdx++
				return ParseContinue, nil
			}
		}
		return ParseError, curated.Errorf("modalflag: unrecognised mode (%s)", remaining[0])
	}

	return ParseContinue, nil
}

func (md *Modes) usage() {
	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
	}
	md.flags.PrintDefaults()
	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
