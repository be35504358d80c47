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
	"testing"

	"github.com/go-audio/wav"
	"github.com/spf13/afero"

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

func TestDAC(t *testing.T) {
	m := installed(t)

	m.Out(memory.PortExtended, 0xF5)
	if m.samples[0] != 0xFF {
		t.Errorf("got sample 0x%02X, want full scale", m.samples[0])
	}
	if m.Leds() != 0x05 {
		t.Errorf("got leds 0x%02X, want 0x05", m.Leds())
	}

	m.Out(memory.PortExtended, 0x00)
	if m.samples[1] != 0 {
		t.Errorf("got sample 0x%02X, want 0", m.samples[1])
	}
}

type collector struct {
	batches int
	samples int
}

func (c *collector) QueueAudio(soundBuffer []byte) {
	c.batches++
	c.samples += len(soundBuffer)
}

func TestBatching(t *testing.T) {
	m := installed(t)
	out := &collector{}
	m.Output = out

	for i := 0; i < batchSamples; i++ {
		m.Out(memory.PortExtended, 0x80)
		if err := m.Step(1); err != nil {
			t.Fatal(err)
		}
	}

	if out.batches != 1 {
		t.Fatalf("got %d batches, want 1", out.batches)
	}
	if out.samples != batchSamples {
		t.Errorf("got %d samples, want %d", out.samples, batchSamples)
	}
}

func TestWAVCapture(t *testing.T) {
	fs := afero.NewMemMapFs()
	fp, err := fs.Create("capture.wav")
	if err != nil {
		t.Fatal(err)
	}

	m := installed(t)
	m.StartCapture(fp)

	const numSamples = 100
	for i := 0; i < numSamples; i++ {
		m.Out(memory.PortExtended, byte(i)<<4)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := fp.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	dec := wav.NewDecoder(fp)
	if !dec.IsValidFile() {
		t.Fatal("not a valid WAV file")
	}
	if dec.SampleRate != SampleRate {
		t.Errorf("got sample rate %d, want %d", dec.SampleRate, SampleRate)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf.Data) != numSamples {
		t.Errorf("got %d samples, want %d", len(buf.Data), numSamples)
	}
}
