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
	"encoding/binary"
	"errors"
	"io"
)

// LoadImage copies a program image into memory. The first big-endian
// word of the stream is the load origin; the remaining words land at
// consecutive addresses starting there. A stream reaching the top of
// the address space is truncated. The origin is returned so the caller
// can start the program counter at it.
func (mc *Machine) LoadImage(reader io.Reader) (uint16, error) {
	scratch := make([]byte, 2)

	if _, err := io.ReadFull(reader, scratch); err != nil {
		return 0, err
	}

	origin := binary.BigEndian.Uint16(scratch)
	addr := uint32(origin)

	for addr <= 0xFFFF {
		_, err := io.ReadFull(reader, scratch)

		if err == io.EOF {
			return origin, nil
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return origin, errors.New("image truncated mid-word")
		} else if err != nil {
			return origin, err
		}

		mc.State.Memory[addr] = binary.BigEndian.Uint16(scratch)
		addr++
	}

	return origin, nil
}
