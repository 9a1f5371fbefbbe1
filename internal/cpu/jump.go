package cpu

// push pushes a 16 bit value onto the stack.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	lower := uint16(c.readByte(c.SP))
	c.SP++
	upper := uint16(c.readByte(c.SP)) << 8
	c.SP++
	return lower | upper
}

// pushNN pushes the two registers onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) pushNN(h, l Register) {
	c.push(uint16(h)<<8 | uint16(l))
}

// popNN pops the two registers off the stack.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) popNN(h, l *Register) {
	*l = c.readByte(c.SP)
	c.SP++
	*h = c.readByte(c.SP)
	c.SP++
}

// jumpRelative reads the signed offset operand and adjusts the PC
// by it.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative() {
	offset := c.readOperand()
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional reads the signed offset operand and, if the given
// condition is true, adjusts the PC by it. A taken branch costs one extra
// machine cycle.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool) {
	offset := c.readOperand()
	if condition {
		c.PC = uint16(int32(c.PC) + int32(int8(offset)))
		c.cycles++
	}
}

// jumpAbsolute reads a 16-bit address operand and jumps to it.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute() {
	c.PC = c.readOperand16()
}

// jumpAbsoluteConditional reads a 16-bit address operand and jumps to it if
// the given condition is true. A taken branch costs one extra machine cycle.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.cycles++
	}
}

// call reads a 16-bit address operand, pushes the address of the next
// instruction onto the stack, and jumps to the read address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call() {
	address := c.readOperand16()
	c.push(c.PC)
	c.PC = address
}

// callConditional reads a 16-bit address operand and, if the given condition
// is true, pushes the address of the next instruction onto the stack and
// jumps to the read address. A taken call costs three extra machine cycles.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool) {
	address := c.readOperand16()
	if condition {
		c.push(c.PC)
		c.PC = address
		c.cycles += 3
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

// retConditional pops the top two bytes off the stack and jumps to that
// address if the given condition is true. A taken return costs three extra
// machine cycles.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.PC = c.pop()
		c.cycles += 3
	}
}

// rst pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(address uint16) {
	c.push(c.PC)
	c.PC = address
}
