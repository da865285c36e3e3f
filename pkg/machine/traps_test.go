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

package machine_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golc16/pkg/machine"
)

func newTrapMachine(keys string) (*machine.Machine, *bytes.Buffer) {
	var mc machine.Machine
	var displayBuf bytes.Buffer

	mc.Devices = &machine.DeviceHandler{
		Keyboard: &testKeyboard{keys: []byte(keys)},
		Display:  bufio.NewWriter(&displayBuf),
	}

	mc.State.Reset()

	return &mc, &displayBuf
}

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("x")
	mc.State.Memory[0x3000] = 0xF020

	require.NoError(t, mc.Step())

	assert.Equal(uint16('x'), mc.State.Registers[0])
	assert.Equal(machine.STATUS_RUNNING, mc.State.Status)

	// GETC must not echo
	assert.Empty(display.String())
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF021
	mc.State.Registers[0] = uint16('A')

	require.NoError(t, mc.Step())

	assert.Equal("A", display.String())
}

func TestTrapOutLowByteOnly(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF021
	mc.State.Registers[0] = 0xFF00 | uint16('B')

	require.NoError(t, mc.Step())

	assert.Equal("B", display.String())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF022
	mc.State.Registers[0] = 0x4000

	// One character per word, zero terminated
	for i, c := range "Hello" {
		mc.State.Memory[0x4000+uint16(i)] = uint16(c)
	}

	require.NoError(t, mc.Step())

	assert.Equal("Hello", display.String())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("z")
	mc.State.Memory[0x3000] = 0xF023

	require.NoError(t, mc.Step())

	assert.Equal(uint16('z'), mc.State.Registers[0])
	assert.Equal("Enter a character: z", display.String())
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF024
	mc.State.Registers[0] = 0x4000

	// Two characters per word, low byte first; "Go!" leaves the final
	// high byte empty
	mc.State.Memory[0x4000] = uint16('G') | uint16('o')<<8
	mc.State.Memory[0x4001] = uint16('!')
	mc.State.Memory[0x4002] = 0x0000

	require.NoError(t, mc.Step())

	assert.Equal("Go!", display.String())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF025

	require.NoError(t, mc.Step())

	assert.Equal(machine.STATUS_HALTED, mc.State.Status)
	assert.Contains(display.String(), "HALT")

	// No further fetch happens once halted
	assert.Equal(uint16(0x3001), mc.State.Program)
	assert.NoError(mc.Run())
	assert.Equal(uint16(0x3001), mc.State.Program)
	assert.ErrorIs(mc.Step(), machine.ErrHalted)
}

func TestTrapUnknownCode(t *testing.T) {
	mc, _ := newTrapMachine("")
	mc.State.Memory[0x3000] = 0xF026

	err := mc.Step()

	require.Error(t, err)
	assert.ErrorIs(t, err, machine.ErrTrap(0))
	assert.Contains(t, err.Error(), "26")
}

func TestTrapGetcNoKeyboard(t *testing.T) {
	var mc machine.Machine
	mc.Devices = &machine.DeviceHandler{
		Display: bufio.NewWriter(&bytes.Buffer{}),
	}

	mc.State.Reset()
	mc.State.Memory[0x3000] = 0xF020

	assert.ErrorIs(t, mc.Step(), machine.ErrNoKeyboard)
}

// A minimal image that only halts runs to completion with the halt
// notice and a clean stop
func TestRunHaltImage(t *testing.T) {
	assert := assert.New(t)

	mc, display := newTrapMachine("")

	origin, err := mc.LoadImage(bytes.NewReader(
		[]byte{0x30, 0x00, 0xF0, 0x25},
	))

	require.NoError(t, err)
	require.Equal(t, uint16(0x3000), origin)

	mc.State.Program = origin

	assert.NoError(mc.Run())
	assert.Equal(machine.STATUS_HALTED, mc.State.Status)
	assert.Contains(display.String(), "HALT")
}
