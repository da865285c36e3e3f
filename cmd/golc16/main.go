// Copyright (C) 2026 The golc16 Authors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golc16/pkg/machine"
)

var helpvar bool

const usage = "golc16 image [image ...]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.Parse()
}

func golc16() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) == 0 {
		log.Println(usage)
		return 1
	}

	var mc machine.Machine
	mc.State.Reset()

	// Every image loads independently; a bad file is reported and the
	// rest still run. The first loaded origin becomes the entry point.
	loaded := false

	for _, path := range args {
		file, err := os.Open(path)

		if err != nil {
			log.Printf("failed to load image: %s: %v", path, err)
			continue
		}

		origin, err := mc.LoadImage(file)
		file.Close()

		if err != nil {
			log.Printf("failed to load image: %s: %v", path, err)
			continue
		}

		if !loaded {
			mc.State.Program = origin
			loaded = true
		}
	}

	var dh machine.DeviceHandler
	dh.Keyboard = &consoleKeyboard{fd: int(os.Stdin.Fd())}
	dh.Display = bufio.NewWriter(os.Stdout)
	mc.Devices = &dh

	enterRawTerm()
	defer exitRawTerm()

	c := make(chan os.Signal, 1)
	defer close(c)

	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			exitRawTerm()
			os.Exit(1)
		}
	}()

	if err := mc.Run(); err != nil {
		exitRawTerm()
		log.Println(err)
		return 2
	}

	return 0
}

func main() {
	os.Exit(golc16())
}
