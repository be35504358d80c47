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

package video

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

const syncIdle = hsyncBit | vsyncBit

func installed(t *testing.T) *Device {
	t.Helper()
	m := &Device{}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSignalCapture(t *testing.T) {
	m := installed(t)

	for i := 0; i < 10; i++ {
		m.Out(memory.PortOutput, syncIdle)
	}
	if got := len(m.Peek()); got != 10 {
		t.Errorf("got %d captured samples, want 10", got)
	}
	if got := len(m.Drain()); got != 10 {
		t.Errorf("got %d drained samples, want 10", got)
	}
	if len(m.Peek()) != 0 {
		t.Error("drain must reset the capture")
	}
}

func TestRasterReconstruction(t *testing.T) {
	m := installed(t)

	// Start of frame: vsync falls while hsync stays high.
	m.Out(memory.PortOutput, hsyncBit)
	m.Out(memory.PortOutput, syncIdle)
	if m.Frames() != 1 {
		t.Fatalf("got %d frames, want 1", m.Frames())
	}

	// Vertical blank: the beam reaches line 0 after the blank lines.
	for i := 0; i < verticalBlank; i++ {
		m.Out(memory.PortOutput, vsyncBit)
		m.Out(memory.PortOutput, syncIdle)
	}

	// Horizontal blank, then one full red pixel at the top left corner.
	// The idle cycle after the last sync pulse already covered one cycle
	// of the blank.
	for i := 1; i < horizontalBlank/DotsPerCycle; i++ {
		m.Out(memory.PortOutput, syncIdle)
	}
	m.Out(memory.PortOutput, syncIdle|0x03)

	frame := m.Frame()
	if frame[0] != 0xFF || frame[1] != 0 || frame[2] != 0 || frame[3] != 0xFF {
		t.Errorf("got top left pixel %v, want opaque red", frame[:4])
	}
	// All four dots of the cycle carry the same color.
	if frame[12] != 0xFF {
		t.Error("pixel cycle must cover four dots")
	}
	if frame[16] != 0 {
		t.Error("color bleeds past the pixel cycle")
	}
}

type countingRenderer struct {
	frames int
	size   int
}

func (r *countingRenderer) RenderGraphics(backBuffer []byte) {
	r.frames++
	r.size = len(backBuffer)
}

func TestRendererCallback(t *testing.T) {
	m := installed(t)
	r := &countingRenderer{}
	m.Renderer = r

	for i := 0; i < 3; i++ {
		m.Out(memory.PortOutput, hsyncBit)
		m.Out(memory.PortOutput, syncIdle)
	}

	if r.frames != 3 {
		t.Errorf("got %d rendered frames, want 3", r.frames)
	}
	if r.size != Width*Height*4 {
		t.Errorf("got back buffer size %d", r.size)
	}
}

func TestColorChannels(t *testing.T) {
	m := installed(t)

	// Put the beam at a visible position.
	m.Out(memory.PortOutput, hsyncBit)
	m.Out(memory.PortOutput, syncIdle)
	for i := 0; i < verticalBlank; i++ {
		m.Out(memory.PortOutput, vsyncBit)
		m.Out(memory.PortOutput, syncIdle)
	}
	for i := 1; i < horizontalBlank/DotsPerCycle; i++ {
		m.Out(memory.PortOutput, syncIdle)
	}

	m.Out(memory.PortOutput, syncIdle|0x01|0x08|0x30) // R=1 G=2 B=3

	frame := m.Frame()
	if frame[0] != 0x55 || frame[1] != 0xAA || frame[2] != 0xFF {
		t.Errorf("got %v, want 2-bit channels scaled to 8 bits", frame[:3])
	}
}

func TestReset(t *testing.T) {
	m := installed(t)

	m.Out(memory.PortOutput, hsyncBit)
	m.Out(memory.PortOutput, syncIdle)
	m.Reset()

	if m.Frames() != 0 || len(m.Peek()) != 0 {
		t.Error("reset must clear the frame counter and capture")
	}
}
