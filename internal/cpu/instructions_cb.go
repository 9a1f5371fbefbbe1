package cpu

import "fmt"

// InstructionSetCB is the table of CB-prefixed opcodes, indexed by
// the byte following the prefix. Every entry carries its full
// duration, prefix fetch included: 2 machine cycles on a register,
// 4 on (HL), except BIT n, (HL) which only reads and takes 3.
//
// The layout is perfectly regular, so the table is generated
// rather than written out: rows of eight single-bit operations,
// then the BIT, RES and SET quadrants.
var InstructionSetCB [256]Instruction

func init() {
	ops := [8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{"RLC", (*CPU).rotateLeftCarry},
		{"RRC", (*CPU).rotateRightCarry},
		{"RL", (*CPU).rotateLeftThroughCarry},
		{"RR", (*CPU).rotateRightThroughCarry},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}
	for i, op := range ops {
		fn := op.fn
		for r := uint8(0); r < 8; r++ {
			opcode := uint8(i)*8 + r
			if r == 6 {
				InstructionSetCB[opcode] = Instruction{op.name + " (HL)", 4, func(c *CPU) {
					address := c.HL.Uint16()
					c.writeByte(address, fn(c, c.readByte(address)))
				}}
				continue
			}
			reg := r
			InstructionSetCB[opcode] = Instruction{op.name + " " + registerNames[reg], 2, func(c *CPU) {
				p := c.registerIndex(reg)
				*p = fn(c, *p)
			}}
		}
	}

	for b := uint8(0); b < 8; b++ {
		mask := uint8(1) << b
		for r := uint8(0); r < 8; r++ {
			if r == 6 {
				InstructionSetCB[0x40+b*8+r] = Instruction{fmt.Sprintf("BIT %d, (HL)", b), 3, func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), mask)
				}}
				InstructionSetCB[0x80+b*8+r] = Instruction{fmt.Sprintf("RES %d, (HL)", b), 4, func(c *CPU) {
					address := c.HL.Uint16()
					c.writeByte(address, c.readByte(address)&^mask)
				}}
				InstructionSetCB[0xC0+b*8+r] = Instruction{fmt.Sprintf("SET %d, (HL)", b), 4, func(c *CPU) {
					address := c.HL.Uint16()
					c.writeByte(address, c.readByte(address)|mask)
				}}
				continue
			}
			reg := r
			InstructionSetCB[0x40+b*8+r] = Instruction{fmt.Sprintf("BIT %d, %s", b, registerNames[reg]), 2, func(c *CPU) {
				c.testBit(*c.registerIndex(reg), mask)
			}}
			InstructionSetCB[0x80+b*8+r] = Instruction{fmt.Sprintf("RES %d, %s", b, registerNames[reg]), 2, func(c *CPU) {
				*c.registerIndex(reg) &^= mask
			}}
			InstructionSetCB[0xC0+b*8+r] = Instruction{fmt.Sprintf("SET %d, %s", b, registerNames[reg]), 2, func(c *CPU) {
				*c.registerIndex(reg) |= mask
			}}
		}
	}
}
