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

package cpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/virtualgt/virtualgt/emulator/peripheral"
)

var stateMagic = [4]byte{'V', 'G', 'T', '1'}

// stateHeader is the register file, the pipeline slot and the cycle
// counter. Everything is fixed size; peripherals with state append their
// own fixed-size blocks after it in wiring order.
type stateHeader struct {
	PC                               uint16
	IR, D, AC, X, Y, OUT, XOUT, Undef byte
	Cycles                           uint64
}

// SaveState serializes the machine: registers, pipeline slot, cycle
// counter and every stateful peripheral. The program store is not part of
// a snapshot; it is immutable after load.
func (p *CPU) SaveState(w io.Writer) error {
	if _, err := w.Write(stateMagic[:]); err != nil {
		return err
	}

	r := &p.Registers
	hdr := stateHeader{
		PC: r.PC, IR: r.IR, D: r.D, AC: r.AC, X: r.X, Y: r.Y,
		OUT: r.OUT, XOUT: r.XOUT, Undef: r.Undef, Cycles: p.cycles,
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	for _, d := range p.peripherals {
		if s, ok := d.(peripheral.Stater); ok {
			if err := s.SaveState(w); err != nil {
				return fmt.Errorf("%s: %w", d.Name(), err)
			}
		}
	}
	return nil
}

// LoadState restores a snapshot taken with SaveState on an identically
// wired machine.
func (p *CPU) LoadState(r io.Reader) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return err
	}
	if !bytes.Equal(magic[:], stateMagic[:]) {
		return fmt.Errorf("not a machine state image")
	}

	var hdr stateHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	reg := &p.Registers
	reg.PC, reg.IR, reg.D = hdr.PC, hdr.IR, hdr.D
	reg.AC, reg.X, reg.Y = hdr.AC, hdr.X, hdr.Y
	reg.OUT, reg.XOUT, reg.Undef = hdr.OUT, hdr.XOUT, hdr.Undef
	p.cycles = hdr.Cycles

	for _, d := range p.peripherals {
		if s, ok := d.(peripheral.Stater); ok {
			if err := s.LoadState(r); err != nil {
				return fmt.Errorf("%s: %w", d.Name(), err)
			}
		}
	}
	return nil
}
