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

package ram

import (
	"crypto/rand"
	"io"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

const Size = memory.RAMSize // 32KB

type Device struct {
	// Garble scrambles memory at install and reset, like real SRAM
	// coming out of power-on. Leave off for deterministic runs.
	Garble bool

	mem [Size]byte
}

func (m *Device) Install(p processor.Processor) error {
	if m.Garble {
		rand.Read(m.mem[:])
	}
	return p.InstallMemoryDevice(m, 0x0, Size-1)
}

func (m *Device) Name() string {
	return "RAM"
}

func (m *Device) Reset() {
	if m.Garble {
		rand.Read(m.mem[:])
		return
	}
	m.mem = [Size]byte{}
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) ReadByte(addr memory.Pointer) byte {
	return m.mem[addr]
}

func (m *Device) WriteByte(addr memory.Pointer, data byte) {
	m.mem[addr] = data
}

func (m *Device) SaveState(w io.Writer) error {
	_, err := w.Write(m.mem[:])
	return err
}

func (m *Device) LoadState(r io.Reader) error {
	_, err := io.ReadFull(r, m.mem[:])
	return err
}
