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

package rom

import (
	"bytes"
	"testing"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

type stubProcessor struct {
	processor.Processor
}

func (stubProcessor) InstallProgramDevice(memory.Program) error {
	return nil
}

func TestFetchWord(t *testing.T) {
	img := make([]byte, memory.ROMImageSize)
	img[0], img[1] = 0xAA, 0xBB
	img[len(img)-2], img[len(img)-1] = 0xCC, 0xDD

	m := &Device{Reader: bytes.NewReader(img)}
	if err := m.Install(stubProcessor{}); err != nil {
		t.Fatal(err)
	}

	if ir, d := m.FetchWord(0); ir != 0xAA || d != 0xBB {
		t.Errorf("got 0x%02X 0x%02X, want 0xAA 0xBB", ir, d)
	}
	if ir, d := m.FetchWord(0xFFFF); ir != 0xCC || d != 0xDD {
		t.Errorf("got 0x%02X 0x%02X, want 0xCC 0xDD", ir, d)
	}
}

func TestImageSizeCheck(t *testing.T) {
	m := &Device{Reader: bytes.NewReader(make([]byte, 1000))}
	if err := m.Install(stubProcessor{}); err == nil {
		t.Error("expected an error for a truncated image")
	}

	m = &Device{Reader: bytes.NewReader(make([]byte, memory.ROMImageSize+1))}
	if err := m.Install(stubProcessor{}); err == nil {
		t.Error("expected an error for an oversized image")
	}
}
