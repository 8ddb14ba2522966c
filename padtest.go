// This file is part of PadTest.
//
// PadTest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PadTest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PadTest.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/padtest/curated"
	"github.com/jetsetilly/padtest/gui/sdlpad"
	"github.com/jetsetilly/padtest/logger"
	"github.com/jetsetilly/padtest/modalflag"
	"github.com/jetsetilly/padtest/performance/limiter"
	"github.com/jetsetilly/padtest/version"
)

// exit values handed to os.Exit(). which one is used depends on the stage of
// the startup sequence that failed
const (
	exitSuccess    = 0
	exitInit       = 1
	exitVideo      = 2
	exitTexture    = 3
	exitParseError = 10
)

// unlike most GUI programs there is no launch goroutine communicating with a
// main thread loop. the event loop is the entire program so everything,
// including command line parsing, happens on the #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitSuccess)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	switch md.Mode() {
	case "RUN":
		os.Exit(run(md))

	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
		os.Exit(exitSuccess)
	}
}

func run(md *modalflag.Modes) int {
	md.NewMode()

	mappings := md.AddBool("mappings", false, "list installed controller mappings on startup")
	log := md.AddBool("log", true, "echo debugging log to stdout")
	fps := md.AddInt("fps", 60, "frame rate of the visualizer")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		if err != nil {
			fmt.Printf("* error: %v\n", err)
			return exitParseError
		}
		return exitSuccess
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	lim, err := limiter.NewFPSLimiter(*fps)
	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		return exitParseError
	}

	scr, err := sdlpad.NewSdlPad(*mappings)
	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		switch {
		case curated.Has(err, sdlpad.InitError):
			return exitInit
		case curated.Has(err, sdlpad.VideoError):
			return exitVideo
		case curated.Has(err, sdlpad.TextureError):
			return exitTexture
		}
		return exitInit
	}
	defer scr.Destroy()

	// #ctrlc is treated the same as closing the window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !scr.Done() {
		select {
		case <-intChan:
			fmt.Println("\r")
			return exitSuccess
		default:
		}

		lim.Wait()
		scr.Service()
	}

	return exitSuccess
}
