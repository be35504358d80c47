/*
Copyright (c) 2025-2026 The VirtualGT Authors

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package rom

import (
	"fmt"
	"io"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

// Device is the program store: 64K words of opcode and operand byte.
// Immutable after install; a wrong-size image is the one setup error this
// machine can have, reported here and never mid-execution.
type Device struct {
	mem []byte

	RomName string
	Reader  io.Reader
}

func (m *Device) Install(p processor.Processor) error {
	var err error
	if m.mem, err = io.ReadAll(m.Reader); err != nil {
		return err
	}
	if len(m.mem) != memory.ROMImageSize {
		return fmt.Errorf("ROM image must be exactly %d bytes, got %d", memory.ROMImageSize, len(m.mem))
	}
	if m.RomName == "" {
		m.RomName = "ROM"
	}
	return p.InstallProgramDevice(m)
}

func (m *Device) Name() string {
	return m.RomName
}

func (m *Device) Reset() {
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) FetchWord(addr uint16) (byte, byte) {
	i := int(addr) * 2
	return m.mem[i], m.mem[i+1]
}
