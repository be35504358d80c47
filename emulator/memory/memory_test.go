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

package memory

import (
	"testing"
)

func TestAddress(t *testing.T) {
	a := NewAddress(0x12, 0x34)
	if uint16(a) != 0x1234 {
		t.Errorf("got 0x%04X, want 0x1234", uint16(a))
	}
	if a.Page() != 0x12 || a.Offset() != 0x34 {
		t.Errorf("got page 0x%02X offset 0x%02X", a.Page(), a.Offset())
	}
}

func TestPointerMasking(t *testing.T) {
	a := NewAddress(0x80, 0x10)
	if a.Pointer() != 0x0010 {
		t.Errorf("got 0x%04X, want the address mirrored into 32K", a.Pointer())
	}

	a = NewAddress(0x7F, 0xFF)
	if a.Pointer() != 0x7FFF {
		t.Errorf("got 0x%04X, want 0x7FFF", a.Pointer())
	}
}
