package cpu

import "fmt"

// Instruction is a single opcode: its mnemonic, its base duration
// in machine cycles, and the function implementing it. Conditional
// instructions add their extra cycles at execution time when the
// branch is taken.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the base duration of the instruction in machine
// cycles, not counting extra cycles added by taken branches.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// disallowedOpcode returns an Instruction that panics when
// executed. The hardware permanently locks up when it fetches one
// of these opcodes, so hitting one always indicates a broken ROM
// or an emulation bug.
func disallowedOpcode(opcode uint8) Instruction {
	return Instruction{
		name:   fmt.Sprintf("ILLEGAL(0x%02X)", opcode),
		cycles: 1,
		fn: func(c *CPU) {
			panic(fmt.Sprintf("cpu: disallowed opcode 0x%02X at 0x%04X", opcode, c.PC-1))
		},
	}
}
