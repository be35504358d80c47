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

package memory

import (
	"fmt"
	"log"
)

const (
	// RAMSize is the data store capacity. The address decoder only looks
	// at 15 bits so everything above wraps back into this range.
	RAMSize = 0x8000
	RAMMask = RAMSize - 1

	// ROMWords is the number of 16-bit program words. The program counter
	// is 16 bits wide and wraps with it.
	ROMWords = 0x10000

	// ROMImageSize is the size of a raw ROM file: opcode and operand byte
	// per program word.
	ROMImageSize = ROMWords * 2
)

// Address is a 16-bit page:offset value as formed on the address bus from
// the Y register (or zero) and the X register or operand byte.
type Address uint16

func NewAddress(page, offset byte) Address {
	return (Address(page) << 8) | Address(offset)
}

func (a Address) String() string {
	return fmt.Sprintf("0x%02X:0x%02X", a.Page(), a.Offset())
}

func (a Address) Page() byte {
	return byte(a >> 8)
}

func (a Address) Offset() byte {
	return byte(a & 0xFF)
}

func (a Address) Pointer() Pointer {
	return Pointer(a) & RAMMask
}

// Pointer is a decoded data store location, always within RAMSize.
type Pointer uint16

func (p Pointer) String() string {
	return fmt.Sprintf("0x%04X", uint16(p))
}

// Port identifies one of the machine's I/O latches.
type Port byte

const (
	// PortOutput is the OUT register: the VGA signal level, one per cycle.
	PortOutput Port = iota

	// PortExtended is the XOUT register behind the 74HCT595, latched from
	// AC on the rising edge of hsync. High nibble audio, low nibble LEDs.
	PortExtended

	// PortInput is the IN register: game controller and serial keyboard.
	PortInput

	MaxPort Port = 8
)

type Memory interface {
	ReadByte(addr Pointer) byte
	WriteByte(addr Pointer, data byte)
}

type IO interface {
	In(port Port) byte
	Out(port Port, data byte)
}

// Program is the read-only instruction store. FetchWord returns the
// opcode and operand byte of one program word.
type Program interface {
	FetchWord(addr uint16) (byte, byte)
}

// DummyIO absorbs traffic on unmapped ports. The output stage drives its
// port on every single cycle, so this one does not log.
type DummyIO struct{}

func (m *DummyIO) In(port Port) byte {
	return 0xFF
}

func (m *DummyIO) Out(port Port, data byte) {
}

type DummyMemory struct{}

func (m *DummyMemory) ReadByte(addr Pointer) byte {
	log.Printf("reading unmapped memory: %v", addr)
	return 0xFF
}

func (m *DummyMemory) WriteByte(addr Pointer, data byte) {
	log.Printf("writing unmapped memory: %v", addr)
}

type DummyProgram struct{}

func (m *DummyProgram) FetchWord(addr uint16) (byte, byte) {
	log.Printf("fetching without a program store: 0x%04X", addr)
	return 0, 0
}
