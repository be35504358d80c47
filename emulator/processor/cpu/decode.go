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

// The instruction byte packs three fields:
//
//	7 6 5 | 4 3 2 | 1 0
//	 ins  | mode  | bus
//
// ins selects the ALU operation (or the jump class), mode selects the
// addressing mode (or the branch condition for jumps) and bus selects the
// operand source. Every one of the 256 combinations decodes to a defined,
// if sometimes degenerate, operation. The control unit has no trap for
// anything.

type Operation byte

const (
	OpLoad Operation = iota
	OpAnd
	OpOr
	OpXor
	OpAdd
	OpSub
	OpStore
	OpJump
)

func (o Operation) String() string {
	switch o {
	case OpLoad:
		return "ld"
	case OpAnd:
		return "anda"
	case OpOr:
		return "ora"
	case OpXor:
		return "xora"
	case OpAdd:
		return "adda"
	case OpSub:
		return "suba"
	case OpStore:
		return "st"
	case OpJump:
		return "j"
	}
	return "?"
}

type BusSource byte

const (
	BusData BusSource = iota // operand byte from the instruction stream
	BusRAM                   // data store cell at the effective address
	BusAC                    // accumulator
	BusIN                    // input latch
)

type Target byte

const (
	TargetNone Target = iota
	TargetAC
	TargetX
	TargetY
	TargetOUT
)

// Condition is the mode field of a jump-class instruction. Zero is the
// unconditional far jump through Y; the others are page-local branches
// selected by a 74153 multiplexer on the accumulator's sign and zero
// lines.
type Condition byte

const (
	JumpFar Condition = iota
	BranchGT
	BranchLT
	BranchNE
	BranchEQ
	BranchGE
	BranchLE
	BranchAlways
)

func (c Condition) String() string {
	switch c {
	case JumpFar:
		return "jmp"
	case BranchGT:
		return "bgt"
	case BranchLT:
		return "blt"
	case BranchNE:
		return "bne"
	case BranchEQ:
		return "beq"
	case BranchGE:
		return "bge"
	case BranchLE:
		return "ble"
	case BranchAlways:
		return "bra"
	}
	return "?"
}

// Taken reports whether a page-local branch fires for the given
// accumulator value. The selector input is sign in bit 0 and zero in
// bit 1, exactly as wired into the 74153.
func (c Condition) Taken(ac byte) bool {
	sel := ac >> 7
	if ac == 0 {
		sel += 2
	}
	return byte(c)&(1<<sel) != 0
}

// Instruction is one fully decoded program byte. It is a plain value:
// decoding has no side effects and no dependency on machine state.
type Instruction struct {
	Operation Operation
	Bus       BusSource
	Target    Target

	// Effective address selectors: low byte from X instead of the operand
	// byte, high byte from Y instead of zero.
	LowX, HighY bool

	// IncX post-increments X, used by the [y,x++] burst mode.
	IncX bool

	// Condition is only meaningful for the jump class.
	Condition Condition
}

var decodeTable [256]Instruction

func init() {
	for i := 0; i < 256; i++ {
		decodeTable[i] = decode(byte(i))
	}
}

// Decode maps an instruction byte to its decoded form. Total over all 256
// values and referentially transparent: the result only depends on ir.
func Decode(ir byte) Instruction {
	return decodeTable[ir]
}

// loadTarget mirrors the hardware's register-load gate: AC and OUT loads
// are disabled while the RAM write strobe is active. X and Y are not
// gated, which is why a store can still update them.
func loadTarget(store bool, target Target) Target {
	if store {
		return TargetNone
	}
	return target
}

func decode(ir byte) Instruction {
	ins := ir >> 5
	mode := (ir >> 2) & 7
	bus := ir & 3

	inst := Instruction{Operation: Operation(ins), Bus: BusSource(bus)}
	if inst.Operation == OpJump {
		inst.Condition = Condition(mode)
		return inst
	}

	store := inst.Operation == OpStore
	switch mode {
	case 0:
		inst.Target = loadTarget(store, TargetAC)
	case 1:
		inst.Target = loadTarget(store, TargetAC)
		inst.LowX = true
	case 2:
		inst.Target = loadTarget(store, TargetAC)
		inst.HighY = true
	case 3:
		inst.Target = loadTarget(store, TargetAC)
		inst.LowX = true
		inst.HighY = true
	case 4:
		inst.Target = TargetX
	case 5:
		inst.Target = TargetY
	case 6:
		inst.Target = loadTarget(store, TargetOUT)
	case 7:
		inst.Target = loadTarget(store, TargetOUT)
		inst.LowX = true
		inst.HighY = true
		inst.IncX = true
	}
	return inst
}
