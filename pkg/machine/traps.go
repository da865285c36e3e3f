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

// trap services the routine selected by the low byte of a TRAP
// instruction. The returned bool asks the dispatch loop to transition
// to STATUS_HALTED; the handler itself never touches machine status or
// the host process.
func (mc *Machine) trap(call uint16) (bool, error) {
	switch call {
	case TRAP_GETC:
		key, err := mc.readKey()

		if err != nil {
			return false, err
		}

		mc.State.Registers[0] = uint16(key)

	case TRAP_OUT:
		if err := mc.putString(
			[]byte{byte(mc.State.Registers[0] & 0xFF)},
		); err != nil {
			return false, err
		}

	case TRAP_PUTS:
		var chars []byte

		// One character per word, zero terminated
		for addr := mc.State.Registers[0]; ; addr++ {
			word := mc.read(addr)

			if word == 0 {
				break
			}

			chars = append(chars, byte(word&0xFF))
		}

		if err := mc.putString(chars); err != nil {
			return false, err
		}

	case TRAP_IN:
		if err := mc.putString([]byte("Enter a character: ")); err != nil {
			return false, err
		}

		key, err := mc.readKey()

		if err != nil {
			return false, err
		}

		// Echo before storing
		if err := mc.putString([]byte{key}); err != nil {
			return false, err
		}

		mc.State.Registers[0] = uint16(key)

	case TRAP_PUTSP:
		var chars []byte

		// Two characters per word, low byte first, zero terminated; an
		// odd-length string leaves the final high byte zero
		for addr := mc.State.Registers[0]; ; addr++ {
			word := mc.read(addr)

			if word == 0 {
				break
			}

			chars = append(chars, byte(word&0xFF))

			if high := byte(word >> 8); high != 0 {
				chars = append(chars, high)
			}
		}

		if err := mc.putString(chars); err != nil {
			return false, err
		}

	case TRAP_HALT:
		if err := mc.putString([]byte("\nHALT\n")); err != nil {
			return false, err
		}

		return true, nil

	default:
		return false, ErrTrap(call)
	}

	return false, nil
}

// readKey consumes one character from the keyboard, waiting for it if
// necessary
func (mc *Machine) readKey() (byte, error) {
	kb := mc.keyboard()

	if kb == nil {
		return 0, ErrNoKeyboard
	}

	return kb.ReadKey()
}

// putString writes to the display and flushes, so trap output is
// visible before the next fetch
func (mc *Machine) putString(chars []byte) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return ErrNoDisplay
	}

	if _, err := mc.Devices.Display.Write(chars); err != nil {
		return err
	}

	return mc.Devices.Display.Flush()
}
