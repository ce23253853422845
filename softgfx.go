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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/demos"
	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/display/headless"
	"github.com/jetsetilly/softgfx/display/sdldisplay"
	"github.com/jetsetilly/softgfx/gfx"
	"github.com/jetsetilly/softgfx/limiter"
	"github.com/jetsetilly/softgfx/logger"
	"github.com/jetsetilly/softgfx/modalflag"
	"github.com/jetsetilly/softgfx/paths"
	"github.com/jetsetilly/softgfx/plasma"
	"github.com/jetsetilly/softgfx/statsview"
	"github.com/jetsetilly/softgfx/version"
)

const (
	defaultWidth  = 640
	defaultHeight = 480

	// number of frames to run in headless mode if -frames is not set
	defaultHeadlessFrames = 100

	// polling rate of the mouse demo in Hz
	defaultMouseRate = 300

	defaultSprite = "tux_jedi.png"

	// number of log entries to show when exiting with an error
	logTail = 10

	errorExit = 10
)

const (
	MemvizError = "memviz: %v"
	ArgsError   = "too many arguments for %s mode"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the exit value
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("NOISE", "PLASMA", "SPRITE", "MOUSE", "DRIVERS")
	md.AdditionalHelp("the default mode runs until the Escape key is pressed or the window is closed")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return errorExit
	}

	var echo bool

	switch md.Mode() {
	case "DRIVERS":
		echo, err = drivers(md, output)
	default:
		echo, err = demo(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if !echo {
			logger.Tail(output, logTail)
		}
		return errorExit
	}

	return 0
}

// options common to all modes
type options struct {
	headless *bool
	log      *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		headless: md.AddBool("headless", false, "run without a display"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

func (opts options) driver() display.Driver {
	if *opts.headless {
		return headless.NewDriver()
	}
	return sdldisplay.NewDriver()
}

func (opts options) echo(output io.Writer) {
	if *opts.log {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

func drivers(md *modalflag.Modes, output io.Writer) (bool, error) {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}
	opts.echo(output)

	return *opts.log, demos.ListDrivers(output, opts.driver())
}

func demo(md *modalflag.Modes, output io.Writer) (echo bool, rerr error) {
	md.NewMode()
	opts := addOptions(md)
	width := md.AddInt("width", defaultWidth, "width of pixel buffer and window")
	height := md.AddInt("height", defaultHeight, "height of pixel buffer and window")
	title := md.AddString("title", version.ApplicationName, "window title")
	frames := md.AddInt("frames", 0, fmt.Sprintf("stop after number of frames. headless default is %d", defaultHeadlessFrames))
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write graph of graphics context to file")

	var rate *int
	var delay *int
	switch md.Mode() {
	case "MOUSE":
		rate = md.AddInt("rate", defaultMouseRate, "mouse polling rate (Hz)")
	case "PLASMA", "SPRITE":
		delay = md.AddInt("delay", plasma.DefaultDelay, "frames between plasma phase changes")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}
	opts.echo(output)
	echo = *opts.log

	maxArgs := 0
	if md.Mode() == "SPRITE" {
		maxArgs = 1
	}
	if len(md.RemainingArgs()) > maxArgs {
		return echo, curated.Errorf(ArgsError, md)
	}

	if *stats {
		statsview.Launch(output)
	}

	logger.Log(logger.Allow, "demo", version.String())

	ctx, err := gfx.Create(opts.driver(), *title, *width, *height)
	if err != nil {
		return echo, err
	}
	defer func() {
		err := ctx.Destroy()
		if rerr == nil {
			rerr = err
		}
	}()

	if *memvizFile != "" {
		err = dumpContext(*memvizFile, ctx)
		if err != nil {
			return echo, err
		}
	}

	runOpts := demos.Options{MaxFrames: *frames}
	if *opts.headless && runOpts.MaxFrames <= 0 {
		runOpts.MaxFrames = defaultHeadlessFrames
	}

	var scene demos.Scene

	switch md.Mode() {
	case "NOISE":
		scene = demos.NewNoise(nil)

	case "PLASMA":
		scene = demos.NewPlasma(*delay)

	case "SPRITE":
		pth, ok := paths.FirstExisting(md.GetArg(0), paths.ResourcePath(defaultSprite), "examples/"+defaultSprite)
		if !ok {
			pth = md.GetArg(0)
			if pth == "" {
				pth = paths.ResourcePath(defaultSprite)
			}
		}

		s, err := ctx.LoadSpriteScaled(pth, demos.SpriteSize, demos.SpriteSize)
		if err != nil {
			return echo, err
		}

		pl := demos.NewPlasma(*delay)
		pl.AttachSprite(s)
		scene = pl

	case "MOUSE":
		err = ctx.SetCrosshairCursor()
		if err != nil {
			return echo, err
		}

		lim, err := limiter.NewLimiter(*rate)
		if err != nil {
			return echo, err
		}
		defer lim.Stop()
		runOpts.Pacer = lim

		scene = demos.NewMouse()
	}

	n, err := demos.Run(ctx, scene, runOpts)
	logger.Logf(logger.Allow, "demo", "%s finished after %d frames", md, n)

	return echo, err
}

// write a graph of the graphics context to the named file
func dumpContext(pth string, ctx *gfx.Context) error {
	f, err := os.Create(pth)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}
	defer f.Close()

	memviz.Map(f, ctx)
	logger.Logf(logger.Allow, "demo", "graphics context written to %s", pth)

	return nil
}
