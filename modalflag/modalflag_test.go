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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/softgfx/modalflag"
	"github.com/jetsetilly/softgfx/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-foo"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"sprite", "-width", "320", "tux.png"})
	md.AddSubModes("NOISE", "PLASMA", "SPRITE")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SPRITE")

	md.NewMode()
	test.ExpectFailure(t, md.Parsed())
	width := md.AddInt("width", 640, "")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *width, 320)
	test.ExpectEquality(t, md.GetArg(0), "tux.png")
	test.ExpectEquality(t, md.Path(), "SPRITE")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"foo"})
	md.AddSubModes("A", "B")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "A")
	test.ExpectEquality(t, md.GetArg(0), "foo")

	md.NewArgs([]string{})
	md.AddSubModes("A", "B")
	md.AddDefaultSubMode("c")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "C")
}

func TestDefaultSubModeWithFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-frames", "10"})
	md.AddSubModes("A", "B")

	// the flag is not known at the top layer so the default mode is selected
	// and the flag is left for the next layer
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "A")

	md.NewMode()
	frames := md.AddInt("frames", 0, "")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)

	var visited []string
	md.Visit(func(name string) {
		visited = append(visited, name)
	})
	test.DemandEquality(t, len(visited), 1)
	test.ExpectEquality(t, visited[0], "frames")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"b", "y"})
	md.AddSubModes("A", "B")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddSubModes("X", "Y")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, md.Mode(), "Y")
	test.ExpectEquality(t, md.Path(), "B/Y")
	test.ExpectEquality(t, md.String(), "B/Y")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n" +
		"\n" +
		"more\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
