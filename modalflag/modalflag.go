// This file is part of softgfx.
//
// softgfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// softgfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with softgfx.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const pathSeparator = "/"

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing was successful. the caller should check Mode() if sub-modes were
	// added before the call to Parse()
	ParseContinue ParseResult = iota

	// the help flag was seen and help has been written to the Output writer
	ParseHelp

	// parsing failed. the error is returned alongside the result
	ParseError
)

// Modes handles the command line for programs with more than one mode of
// operation.
type Modes struct {
	// destination for help messages. if this is nil help is discarded
	Output io.Writer

	args []string
	idx  int

	flags    *flag.FlagSet
	subModes []string
	help     string
	parsed   bool

	// modes selected so far. this is never reset
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to be parsed and starts the first layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer of parsing. Flags and sub-modes added before the
// previous call to Parse() are forgotten.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.help = ""
	md.parsed = false
}

// Parsed returns true if Parse() has been called since the most recent call to
// NewArgs() or NewMode(). A failed Parse() still counts.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, in order, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// AdditionalHelp sets text to be printed after the list of flags and
// sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode ever added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list, making it the
// default.
func (md *Modes) AddDefaultSubMode(subMode string) {
	md.subModes = append([]string{strings.ToUpper(subMode)}, md.subModes...)
}

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.help)
			}
			return ParseHelp, nil
		}

		// an unknown flag at this layer is assumed to belong to the default
		// sub-mode. arguments are not consumed so that the next layer sees
		// the flag
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, s := range md.subModes {
		if s == arg {
			mode = s

			// skip past flags parsed at this layer and the sub-mode itself
			md.idx = len(md.args) - md.flags.NArg() + 1
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after the most recent call to
// Parse(). Flags and a selected sub-mode are not included.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn with the name of every flag that was set on the command line,
// in lexicographical order.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
