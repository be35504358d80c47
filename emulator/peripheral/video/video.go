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
	"log"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

// The machine bit-bangs a 640x480@60 VGA signal: 200 cycles per scanline,
// 521 lines per frame, four VGA dots per cycle. Sync pulses are active
// low: bit 6 hsync, bit 7 vsync. Bits 0..5 carry 2:2:2 RGB.
const (
	Width  = 640
	Height = 480

	DotsPerCycle      = 4
	CyclesPerScanline = 200
	ScanlinesPerFrame = 521
	FrameCycles       = CyclesPerScanline * ScanlinesPerFrame

	hsyncBit = 0x40
	vsyncBit = 0x80

	// Dots from hsync start to first visible pixel (sync pulse plus back
	// porch) and lines from vsync start to the first visible scanline.
	horizontalBlank = 144
	verticalBlank   = 35
)

// maxCapture bounds the signal capture when nothing drains it.
const maxCapture = 1 << 24

// Renderer is where finished frames go. The host platform implements it;
// leaving it nil runs headless.
type Renderer interface {
	RenderGraphics(backBuffer []byte)
}

// Device is the monitor on the OUT port. It captures the raw signal level
// of every cycle (the I/O sink, drained by whoever wants the stream) and
// reconstructs the VGA raster from the sync edges.
type Device struct {
	Renderer Renderer

	sink    []byte
	lastOut byte

	beamX, beamY int
	frame        []byte
	frames       uint64
}

func (m *Device) Install(p processor.Processor) error {
	m.frame = make([]byte, Width*Height*4)
	m.lastOut = hsyncBit | vsyncBit // syncs idle high
	m.beamX = Width                 // off screen until the first sync
	m.beamY = Height
	return p.InstallIODevice(m, memory.PortOutput)
}

func (m *Device) Name() string {
	return "VGA Monitor"
}

func (m *Device) Reset() {
	m.sink = m.sink[:0]
	m.lastOut = hsyncBit | vsyncBit
	m.beamX = Width
	m.beamY = Height
	m.frames = 0
	for i := range m.frame {
		m.frame[i] = 0
	}
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) In(port memory.Port) byte {
	return m.lastOut
}

// Out receives the signal level of one cycle.
func (m *Device) Out(port memory.Port, data byte) {
	if len(m.sink) >= maxCapture {
		log.Print("signal capture overflow, dropping buffer")
		m.sink = m.sink[:0]
	}
	m.sink = append(m.sink, data)

	if m.beamX >= 0 && m.beamX < Width && m.beamY >= 0 && m.beamY < Height {
		r := (data & 0x03) * 0x55
		g := ((data >> 2) & 0x03) * 0x55
		b := ((data >> 4) & 0x03) * 0x55
		i := (m.beamY*Width + m.beamX) * 4
		for n := 0; n < DotsPerCycle; n++ {
			m.frame[i] = r
			m.frame[i+1] = g
			m.frame[i+2] = b
			m.frame[i+3] = 0xFF
			i += 4
		}
	}
	m.beamX += DotsPerCycle

	if m.lastOut&hsyncBit != 0 && data&hsyncBit == 0 {
		m.beamX = -horizontalBlank
		m.beamY++
	}
	if m.lastOut&vsyncBit != 0 && data&vsyncBit == 0 {
		m.beamY = -verticalBlank
		m.frames++
		if m.Renderer != nil {
			m.Renderer.RenderGraphics(m.frame)
		}
	}
	m.lastOut = data
}

// Drain hands over the captured signal, one byte per executed cycle since
// the last call, and resets the capture. Single-threaded with the engine.
func (m *Device) Drain() []byte {
	s := m.sink
	m.sink = nil
	return s
}

// Peek returns the capture without consuming it.
func (m *Device) Peek() []byte {
	return m.sink
}

// Frame is the last reconstructed raster in RGBA order.
func (m *Device) Frame() []byte {
	return m.frame
}

// Frames counts completed vsyncs since reset.
func (m *Device) Frames() uint64 {
	return m.frames
}
