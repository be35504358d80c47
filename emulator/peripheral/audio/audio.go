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

package audio

import (
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

// SampleRate is the scanline rate: XOUT is latched once per hsync, so the
// 4-bit DAC naturally produces 31250 samples per second.
const SampleRate = 31250

const batchSamples = 512

// Output is where sample batches go. The host platform implements it;
// leaving it nil mutes the machine.
type Output interface {
	QueueAudio(soundBuffer []byte)
}

// Device sits on the extended output port. The high nibble of every XOUT
// latch is one audio sample, the low nibble drives the blinkenlights.
type Device struct {
	Output Output

	samples []byte
	leds    byte

	enc     *wav.Encoder
	capture *gaudio.IntBuffer
}

func (m *Device) Install(p processor.Processor) error {
	m.samples = make([]byte, 0, batchSamples)
	return p.InstallIODevice(m, memory.PortExtended)
}

func (m *Device) Name() string {
	return "Audio DAC"
}

func (m *Device) Reset() {
	m.samples = m.samples[:0]
	m.leds = 0
}

func (m *Device) Step(int) error {
	if len(m.samples) >= batchSamples {
		return m.flush()
	}
	return nil
}

func (m *Device) In(port memory.Port) byte {
	return m.leds
}

// Out receives one XOUT latch, once per scanline.
func (m *Device) Out(port memory.Port, data byte) {
	sample := (data >> 4) * 17 // 4-bit DAC to unsigned 8-bit
	m.samples = append(m.samples, sample)
	m.leds = data & 0x0F

	if m.capture != nil {
		m.capture.Data = append(m.capture.Data, int(sample))
	}
}

func (m *Device) flush() error {
	if m.Output != nil && len(m.samples) > 0 {
		m.Output.QueueAudio(m.samples)
	}
	m.samples = m.samples[:0]

	if m.enc != nil && len(m.capture.Data) > 0 {
		if err := m.enc.Write(m.capture); err != nil {
			return err
		}
		m.capture.Data = m.capture.Data[:0]
	}
	return nil
}

// Leds is the current blinkenlights state, bit 0 leftmost.
func (m *Device) Leds() byte {
	return m.leds
}

// StartCapture records the sample stream as an 8-bit mono WAV.
func (m *Device) StartCapture(ws io.WriteSeeker) {
	m.enc = wav.NewEncoder(ws, SampleRate, 8, 1, 1)
	m.capture = &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           make([]int, 0, batchSamples),
		SourceBitDepth: 8,
	}
}

func (m *Device) Close() error {
	if err := m.flush(); err != nil {
		return err
	}
	if m.enc == nil {
		return nil
	}
	err := m.enc.Close()
	m.enc = nil
	m.capture = nil
	return err
}
