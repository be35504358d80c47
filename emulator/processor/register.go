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

package processor

import (
	"fmt"
)

// Registers is the full architectural state of the machine. IR and D form
// the one-slot pipeline: they hold the program word fetched last cycle,
// which executes this cycle. Undef is the value left floating on the data
// bus when a store strobes RAM during a RAM-bus read.
type Registers struct {
	AC, X, Y byte

	OUT  byte
	XOUT byte

	PC uint16

	IR, D byte

	Undef byte

	Debug bool
}

// Reset restores the documented power-on state. The MCP100 supervisor
// holds PC at zero out of reset; everything else starts cleared.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Page is the high byte of the program counter.
func (r *Registers) Page() byte {
	return byte(r.PC >> 8)
}

// Offset is the low byte of the program counter.
func (r *Registers) Offset() byte {
	return byte(r.PC & 0xFF)
}

func (r *Registers) String() string {
	return fmt.Sprintf("PC=0x%04X IR=0x%02X D=0x%02X AC=0x%02X X=0x%02X Y=0x%02X OUT=0x%02X XOUT=0x%02X",
		r.PC, r.IR, r.D, r.AC, r.X, r.Y, r.OUT, r.XOUT)
}
