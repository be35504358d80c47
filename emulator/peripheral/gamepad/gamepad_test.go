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

package gamepad

import (
	"testing"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

type stubProcessor struct {
	processor.Processor
}

func (stubProcessor) InstallIODevice(memory.IO, ...memory.Port) error {
	return nil
}

func installed(t *testing.T) *Device {
	t.Helper()
	m := &Device{}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestButtonsAreActiveLow(t *testing.T) {
	m := installed(t)

	if m.In(memory.PortInput) != Idle {
		t.Fatal("lines must idle high")
	}

	m.Press(ButtonA)
	m.Press(ButtonUp)
	if got := m.In(memory.PortInput); got != 0x77 {
		t.Errorf("got 0x%02X, want 0x77", got)
	}

	m.Release(ButtonA)
	if got := m.In(memory.PortInput); got != 0xF7 {
		t.Errorf("got 0x%02X, want 0xF7", got)
	}

	m.Release(ButtonUp)
	if m.In(memory.PortInput) != Idle {
		t.Error("lines must float back to idle")
	}
}

func TestSerialCharacterHold(t *testing.T) {
	m := installed(t)

	if err := m.Type('G'); err != nil {
		t.Fatal(err)
	}

	m.Step(1)
	if got := m.In(memory.PortInput); got != 'G' {
		t.Fatalf("got 0x%02X, want the typed character", got)
	}

	// Held for the full hold time, then released.
	m.Step(charHoldCycles / 2)
	if m.In(memory.PortInput) != 'G' {
		t.Error("character released too early")
	}
	m.Step(charHoldCycles / 2)
	if m.In(memory.PortInput) != Idle {
		t.Error("character held past the hold time")
	}
}

func TestSerialCharacterGap(t *testing.T) {
	m := installed(t)

	if err := m.Type('A'); err != nil {
		t.Fatal(err)
	}
	if err := m.Type('B'); err != nil {
		t.Fatal(err)
	}

	m.Step(1)
	m.Step(charHoldCycles)

	// The second character waits out the idle gap first.
	m.Step(1)
	if m.In(memory.PortInput) != Idle {
		t.Error("no idle gap between characters")
	}
	m.Step(charGapCycles)
	m.Step(1)
	if got := m.In(memory.PortInput); got != 'B' {
		t.Errorf("got 0x%02X, want the second character", got)
	}
}

func TestEventQueueOverflow(t *testing.T) {
	m := installed(t)

	for i := 0; i < MaxEvents; i++ {
		if err := m.Type('x'); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Type('x'); err == nil {
		t.Error("expected an error on a full queue")
	}
}

func TestReset(t *testing.T) {
	m := installed(t)

	m.Press(ButtonStart)
	m.Type('A')
	m.Reset()

	if m.In(memory.PortInput) != Idle {
		t.Error("buttons not released")
	}
	m.Step(1)
	if m.In(memory.PortInput) != Idle {
		t.Error("event queue not drained")
	}
}
