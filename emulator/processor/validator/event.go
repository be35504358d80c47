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

package validator

// Event is the machine state after one cycle, as written to the trace
// stream. Traces from different emulators of the same ROM can be diffed
// line by line.
type Event struct {
	Cycle uint64 `json:"t"`
	PC    uint16 `json:"pc"`
	IR    byte   `json:"ir"`
	D     byte   `json:"d"`
	AC    byte   `json:"ac"`
	X     byte   `json:"x"`
	Y     byte   `json:"y"`
	OUT   byte   `json:"out"`
	XOUT  byte   `json:"xout"`
}
