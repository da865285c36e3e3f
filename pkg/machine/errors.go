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
	"errors"
	"fmt"
)

var (
	ErrNoKeyboard = errors.New("no keyboard device attached")
	ErrNoDisplay  = errors.New("no display device attached")
	ErrHalted     = errors.New("machine is halted")
)

// ErrOpcode is the fatal fault raised when RTI, the reserved encoding,
// or any other undefined opcode is dispatched.
type ErrOpcode uint16

func (e ErrOpcode) Error() string {
	return fmt.Sprintf("illegal opcode %d (%#04x)", uint16(e), uint16(e))
}

func (e ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrTrap is the fatal fault raised for a trap code outside the six
// defined routines.
type ErrTrap uint16

func (e ErrTrap) Error() string {
	return fmt.Sprintf("unknown trap code %#02x", uint16(e))
}

func (e ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
