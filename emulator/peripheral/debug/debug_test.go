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

package debug

import (
	"testing"

	"github.com/virtualgt/virtualgt/emulator/processor"
)

type stubProcessor struct {
	processor.Processor

	regs   processor.Registers
	stats  processor.Stats
	drains int
	broke  bool
}

func (m *stubProcessor) GetRegisters() *processor.Registers {
	return &m.regs
}

func (m *stubProcessor) GetStats() processor.Stats {
	m.drains++
	s := m.stats
	m.stats = processor.Stats{}
	return s
}

func (m *stubProcessor) Break() {
	m.broke = true
}

func TestStatsDrain(t *testing.T) {
	MuteLogging(true)
	defer MuteLogging(false)

	p := &stubProcessor{stats: processor.Stats{NumTicks: 6250000, RX: 10, TX: 20}}
	d := &Device{}
	if err := d.Install(p); err != nil {
		t.Fatal(err)
	}

	if err := d.Step(1); err != nil {
		t.Fatal(err)
	}
	if p.drains != 1 {
		t.Fatalf("got %d stat drains, want 1", p.drains)
	}
	if d.mhz != 6.25 {
		t.Errorf("got %.2f MHz, want 6.25", d.mhz)
	}

	// The counters reset on drain and refill over the next second.
	if err := d.Step(1); err != nil {
		t.Fatal(err)
	}
	if p.drains != 1 {
		t.Errorf("drained again within the same second, %d times", p.drains)
	}
}

func TestBreakpoint(t *testing.T) {
	MuteLogging(true)
	defer MuteLogging(false)

	p := &stubProcessor{}
	d := &Device{}
	if err := d.Install(p); err != nil {
		t.Fatal(err)
	}
	d.breakpoints[0x0100] = true

	// The pipeline slot was fetched at the previous PC, so the first step
	// attributes to address 0.
	p.regs.PC = 0x0100
	if err := d.Step(1); err != nil {
		t.Fatal(err)
	}
	if p.broke {
		t.Fatal("broke one cycle early")
	}

	p.regs.PC = 0x0101
	if err := d.Step(1); err != nil {
		t.Fatal(err)
	}
	if !p.broke {
		t.Error("breakpoint did not halt the processor")
	}
}
