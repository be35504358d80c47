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
	"bytes"
	"testing"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

type stubProcessor struct {
	processor.Processor
}

func (stubProcessor) InstallMemoryDevice(memory.Memory, memory.Pointer, memory.Pointer) error {
	return nil
}

func TestReadWrite(t *testing.T) {
	m := &Device{}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}

	m.WriteByte(0x1234, 0x42)
	if got := m.ReadByte(0x1234); got != 0x42 {
		t.Errorf("got 0x%02X, want 0x42", got)
	}
	if got := m.ReadByte(0x1235); got != 0 {
		t.Errorf("got 0x%02X, want clear memory", got)
	}
}

func TestReset(t *testing.T) {
	m := &Device{}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}

	m.WriteByte(0, 0xFF)
	m.Reset()
	if m.ReadByte(0) != 0 {
		t.Error("reset must clear memory")
	}
}

func TestGarble(t *testing.T) {
	m := &Device{Garble: true}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}

	clear := true
	for i := 0; i < Size; i++ {
		if m.ReadByte(memory.Pointer(i)) != 0 {
			clear = false
			break
		}
	}
	if clear {
		t.Error("garbled memory should not power up clear")
	}
}

func TestStateRoundtrip(t *testing.T) {
	m := &Device{}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}
	m.WriteByte(0x0100, 0xAB)

	var state bytes.Buffer
	if err := m.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored := &Device{}
	if err := restored.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}
	if err := restored.LoadState(&state); err != nil {
		t.Fatal(err)
	}
	if got := restored.ReadByte(0x0100); got != 0xAB {
		t.Errorf("got 0x%02X, want 0xAB", got)
	}
}
