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

package cpu

import (
	"fmt"
)

// Disassemble renders one program word in the native assembler syntax.
// Degenerate encodings still produce a line; the hardware executes them
// all the same.
func Disassemble(ir, d byte) string {
	inst := Decode(ir)

	if inst.Operation == OpJump {
		if inst.Condition == JumpFar {
			return fmt.Sprintf("jmp y,%s", busText(inst, d))
		}
		return fmt.Sprintf("%v %s", inst.Condition, busText(inst, d))
	}

	if inst.Operation == OpStore {
		if inst.Bus == BusAC {
			return fmt.Sprintf("st %s%s", addressText(inst, d), targetText(inst))
		}
		return fmt.Sprintf("st %s,%s%s", busText(inst, d), addressText(inst, d), targetText(inst))
	}

	return fmt.Sprintf("%v %s%s", inst.Operation, busText(inst, d), targetText(inst))
}

func busText(inst Instruction, d byte) string {
	switch inst.Bus {
	case BusData:
		return fmt.Sprintf("$%02x", d)
	case BusRAM:
		return addressText(inst, d)
	case BusAC:
		return "ac"
	default:
		return "in"
	}
}

func addressText(inst Instruction, d byte) string {
	switch {
	case inst.LowX && inst.HighY && inst.IncX:
		return "[y,x++]"
	case inst.LowX && inst.HighY:
		return "[y,x]"
	case inst.LowX:
		return "[x]"
	case inst.HighY:
		return fmt.Sprintf("[y,$%02x]", d)
	default:
		return fmt.Sprintf("[$%02x]", d)
	}
}

func targetText(inst Instruction) string {
	switch inst.Target {
	case TargetX:
		return ",x"
	case TargetY:
		return ",y"
	case TargetOUT:
		return ",out"
	default:
		return ""
	}
}
