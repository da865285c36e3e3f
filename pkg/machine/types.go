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

package machine

import (
	"bufio"
)

type MachineStatus int

const (
	STATUS_RUNNING MachineStatus = iota
	STATUS_HALTED
)

// Keyboard is the input capability backing the memory-mapped keyboard
// device and the character-input traps. Ready must not consume input or
// block; ReadKey consumes exactly one character and may block until one
// arrives.
type Keyboard interface {
	Ready() bool
	ReadKey() (byte, error)
}

type DeviceHandler struct {
	Keyboard Keyboard
	Display  *bufio.Writer
}

type MachineState struct {
	// R0-R7
	Registers [8]uint16

	// Program counter; always the address of the next fetch
	Program uint16

	// Condition flags; exactly one of FLAG_POS/FLAG_ZERO/FLAG_NEG
	Condition uint16

	Status MachineStatus

	Memory [1 << 16]uint16
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
}
