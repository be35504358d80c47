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

package processor

import (
	"github.com/virtualgt/virtualgt/emulator/memory"
)

type Stats struct {
	NumTicks uint64
	RX, TX   uint64
}

type Debug interface {
	Break()
	GetStats() Stats
}

type Processor interface {
	Debug

	InByte(port memory.Port) byte
	OutByte(port memory.Port, data byte)

	ReadByte(addr memory.Pointer) byte
	WriteByte(addr memory.Pointer, data byte)
	FetchWord(addr uint16) (byte, byte)

	GetRegisters() *Registers
	Cycles() uint64
	GetMappedMemoryDevice(addr memory.Pointer) memory.Memory
	GetMappedIODevice(port memory.Port) memory.IO

	InstallMemoryDevice(device memory.Memory, from, to memory.Pointer) error
	InstallIODevice(device memory.IO, ports ...memory.Port) error
	InstallProgramDevice(device memory.Program) error
}
