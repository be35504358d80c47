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
	"errors"
	"log"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/peripheral"
	"github.com/virtualgt/virtualgt/emulator/processor"
	"github.com/virtualgt/virtualgt/emulator/processor/validator"
)

const MaxPeripherals = 16

const hsyncBit = 0x40

type CPU struct {
	processor.Registers

	cycles uint64
	stats  processor.Stats

	peripherals []peripheral.Peripheral
	prog        memory.Program

	iomap         [memory.MaxPort]byte
	ioPeripherals [MaxPeripherals]memory.IO

	mmap           [memory.RAMSize]byte
	memPeripherals [MaxPeripherals]memory.Memory
}

func NewCPU(peripherals []peripheral.Peripheral) (*CPU, []error) {
	p := &CPU{peripherals: peripherals, prog: &memory.DummyProgram{}}

	dummyIO := &memory.DummyIO{}
	for i := range p.ioPeripherals[:] {
		p.ioPeripherals[i] = dummyIO
	}

	dummyMem := &memory.DummyMemory{}
	for i := range p.memPeripherals[:] {
		p.memPeripherals[i] = dummyMem
	}

	for i := 1; i <= len(peripherals); i++ {
		if dev, ok := peripherals[i-1].(memory.IO); ok {
			p.ioPeripherals[i] = dev
		}
		if dev, ok := peripherals[i-1].(memory.Memory); ok {
			p.memPeripherals[i] = dev
		}
	}

	var errs []error
	for _, d := range p.peripherals {
		if err := d.Install(p); err != nil {
			log.Printf("Failed to install peripheral %s: %v", d.Name(), err)
			errs = append(errs, err)
		}
	}
	return p, errs
}

func (p *CPU) Close() {
	for _, d := range p.peripherals {
		if cd, b := d.(peripheral.PeripheralCloser); b {
			if err := cd.Close(); err != nil {
				log.Print("Failed to close peripheral: ", err)
			}
		}
	}
}

func (p *CPU) Break() {
	p.Registers.Debug = true
}

func (p *CPU) GetStats() processor.Stats {
	s := p.stats
	p.stats = processor.Stats{}
	return s
}

func (p *CPU) Reset() {
	p.Registers.Reset()
	p.cycles = 0
	for _, d := range p.peripherals {
		d.Reset()
	}
}

func (p *CPU) Cycles() uint64 {
	return p.cycles
}

func (p *CPU) GetRegisters() *processor.Registers {
	return &p.Registers
}

func (p *CPU) GetMappedMemoryDevice(addr memory.Pointer) memory.Memory {
	return p.memPeripherals[p.mmap[addr]]
}

func (p *CPU) GetMappedIODevice(port memory.Port) memory.IO {
	return p.ioPeripherals[p.iomap[port]]
}

func (p *CPU) InByte(port memory.Port) byte {
	p.stats.RX++
	return p.GetMappedIODevice(port).In(port)
}

func (p *CPU) OutByte(port memory.Port, data byte) {
	p.stats.TX++
	p.GetMappedIODevice(port).Out(port, data)
}

func (p *CPU) ReadByte(addr memory.Pointer) byte {
	p.stats.RX++
	addr &= memory.RAMMask
	return p.GetMappedMemoryDevice(addr).ReadByte(addr)
}

func (p *CPU) WriteByte(addr memory.Pointer, data byte) {
	p.stats.TX++
	addr &= memory.RAMMask
	p.GetMappedMemoryDevice(addr).WriteByte(addr, data)
}

func (p *CPU) FetchWord(addr uint16) (byte, byte) {
	return p.prog.FetchWord(addr)
}

// Tick advances the machine by exactly one clock cycle and is the sole
// mutator of registers, data store and output ports. It never fails:
// every instruction byte decodes to some defined state transition.
func (p *CPU) Tick() {
	r := &p.Registers
	s := *r // state latched at the start of the cycle

	// Fetch runs one cycle ahead of execute. The word read here executes
	// on the next tick; the word fetched last tick executes now. Folding
	// the two together would make every control transfer land one cycle
	// early and desync the video signal.
	r.IR, r.D = p.FetchWord(s.PC)

	inst := decodeTable[s.IR]
	store := inst.Operation == OpStore

	lo, hi := s.D, byte(0)
	if inst.LowX {
		lo = s.X
	}
	if inst.HighY {
		hi = s.Y
	}
	addr := memory.NewAddress(hi, lo)

	b := s.Undef // bus floats unless something drives it
	switch inst.Bus {
	case BusData:
		b = s.D
	case BusRAM:
		if !store {
			b = p.ReadByte(addr.Pointer())
		}
	case BusAC:
		b = s.AC
	case BusIN:
		b = p.InByte(memory.PortInput)
	}

	if store {
		p.WriteByte(addr.Pointer(), b)
	}

	var alu byte
	switch inst.Operation {
	case OpLoad:
		alu = b
	case OpAnd:
		alu = s.AC & b
	case OpOr:
		alu = s.AC | b
	case OpXor:
		alu = s.AC ^ b
	case OpAdd:
		alu = s.AC + b
	case OpSub:
		alu = s.AC - b
	case OpStore:
		alu = s.AC
	case OpJump:
		// The ALU presents negated AC during jumps but no register
		// load gate is open, so it goes nowhere.
	}

	switch inst.Target {
	case TargetAC:
		r.AC = alu
	case TargetX:
		r.X = alu
	case TargetY:
		r.Y = alu
	case TargetOUT:
		r.OUT = alu
	}
	if inst.IncX {
		r.X = s.X + 1
	}

	r.PC = s.PC + 1
	if inst.Operation == OpJump {
		if inst.Condition == JumpFar {
			r.PC = uint16(memory.NewAddress(s.Y, b))
		} else if inst.Condition.Taken(s.AC) {
			r.PC = s.PC&0xFF00 | uint16(b)
		}
	}

	// The 74HCT595 extended output register latches AC on the rising
	// edge of hsync, once per scanline.
	if r.OUT&hsyncBit != 0 && s.OUT&hsyncBit == 0 {
		r.XOUT = r.AC
		p.OutByte(memory.PortExtended, r.XOUT)
	}

	// The OUT level of this cycle is the video signal; one sample per
	// executed cycle, no more and no fewer.
	p.OutByte(memory.PortOutput, r.OUT)

	p.cycles++
	p.stats.NumTicks++

	if validator.Enabled {
		validator.Record(validator.Event{
			Cycle: p.cycles,
			PC:    r.PC,
			IR:    r.IR,
			D:     r.D,
			AC:    r.AC,
			X:     r.X,
			Y:     r.Y,
			OUT:   r.OUT,
			XOUT:  r.XOUT,
		})
	}

	for _, d := range p.peripherals {
		if err := d.Step(1); err != nil {
			log.Print(err)
		}
	}
}

// TickN advances the machine by count cycles.
func (p *CPU) TickN(count int) {
	for i := 0; i < count; i++ {
		p.Tick()
	}
}

func (p *CPU) InstallProgramDevice(device memory.Program) error {
	if device == nil {
		return errors.New("no program store")
	}
	p.prog = device
	return nil
}

func (p *CPU) InstallMemoryDevice(device memory.Memory, from, to memory.Pointer) error {
	for i, d := range p.memPeripherals[:] {
		if d == device {
			for from <= to {
				p.mmap[from&memory.RAMMask] = byte(i)
				if from == to {
					break
				}
				from++
			}
			return nil
		}
	}
	return errors.New("could not find peripheral")
}

func (p *CPU) InstallIODevice(device memory.IO, ports ...memory.Port) error {
	for i, d := range p.ioPeripherals[:] {
		if d == device {
			for _, port := range ports {
				if port >= memory.MaxPort {
					return errors.New("port out of range")
				}
				p.iomap[port] = byte(i)
			}
			return nil
		}
	}
	return errors.New("could not find peripheral")
}
