package cpu

// InstructionSet is the table of base (non-CB) opcodes, indexed by
// opcode. Conditional instructions carry their not-taken duration;
// the extra cycles of a taken branch are added by the helpers in
// jump.go.
var InstructionSet = [256]Instruction{
	0x00: {"NOP", 1, func(c *CPU) {}},
	0x01: {"LD BC, d16", 3, func(c *CPU) { c.loadRegister16(c.BC) }},
	0x02: {"LD (BC), A", 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) }},
	0x03: {"INC BC", 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1) }},
	0x04: {"INC B", 1, func(c *CPU) { c.B = c.increment(c.B) }},
	0x05: {"DEC B", 1, func(c *CPU) { c.B = c.decrement(c.B) }},
	0x06: {"LD B, d8", 2, func(c *CPU) { c.loadRegister8(&c.B) }},
	0x07: {"RLCA", 1, func(c *CPU) { c.rotateLeftCarryAccumulator() }},
	0x08: {"LD (a16), SP", 5, func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
	}},
	0x09: {"ADD HL, BC", 2, func(c *CPU) { c.addHLRR(c.BC) }},
	0x0A: {"LD A, (BC)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) }},
	0x0B: {"DEC BC", 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1) }},
	0x0C: {"INC C", 1, func(c *CPU) { c.C = c.increment(c.C) }},
	0x0D: {"DEC C", 1, func(c *CPU) { c.C = c.decrement(c.C) }},
	0x0E: {"LD C, d8", 2, func(c *CPU) { c.loadRegister8(&c.C) }},
	0x0F: {"RRCA", 1, func(c *CPU) { c.rotateRightAccumulator() }},
	0x10: {"STOP", 1, func(c *CPU) {
		c.skipOperand()
		c.mode = ModeStop
	}},
	0x11: {"LD DE, d16", 3, func(c *CPU) { c.loadRegister16(c.DE) }},
	0x12: {"LD (DE), A", 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) }},
	0x13: {"INC DE", 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1) }},
	0x14: {"INC D", 1, func(c *CPU) { c.D = c.increment(c.D) }},
	0x15: {"DEC D", 1, func(c *CPU) { c.D = c.decrement(c.D) }},
	0x16: {"LD D, d8", 2, func(c *CPU) { c.loadRegister8(&c.D) }},
	0x17: {"RLA", 1, func(c *CPU) { c.rotateLeftAccumulatorThroughCarry() }},
	0x18: {"JR r8", 3, func(c *CPU) { c.jumpRelative() }},
	0x19: {"ADD HL, DE", 2, func(c *CPU) { c.addHLRR(c.DE) }},
	0x1A: {"LD A, (DE)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) }},
	0x1B: {"DEC DE", 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1) }},
	0x1C: {"INC E", 1, func(c *CPU) { c.E = c.increment(c.E) }},
	0x1D: {"DEC E", 1, func(c *CPU) { c.E = c.decrement(c.E) }},
	0x1E: {"LD E, d8", 2, func(c *CPU) { c.loadRegister8(&c.E) }},
	0x1F: {"RRA", 1, func(c *CPU) { c.rotateRightAccumulatorThroughCarry() }},
	0x20: {"JR NZ, r8", 2, func(c *CPU) { c.jumpRelativeConditional(!c.isFlagSet(FlagZero)) }},
	0x21: {"LD HL, d16", 3, func(c *CPU) { c.loadRegister16(c.HL) }},
	0x22: {"LD (HL+), A", 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}},
	0x23: {"INC HL", 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1) }},
	0x24: {"INC H", 1, func(c *CPU) { c.H = c.increment(c.H) }},
	0x25: {"DEC H", 1, func(c *CPU) { c.H = c.decrement(c.H) }},
	0x26: {"LD H, d8", 2, func(c *CPU) { c.loadRegister8(&c.H) }},
	0x27: {"DAA", 1, func(c *CPU) { c.decimalAdjust() }},
	0x28: {"JR Z, r8", 2, func(c *CPU) { c.jumpRelativeConditional(c.isFlagSet(FlagZero)) }},
	0x29: {"ADD HL, HL", 2, func(c *CPU) { c.addHLRR(c.HL) }},
	0x2A: {"LD A, (HL+)", 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}},
	0x2B: {"DEC HL", 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1) }},
	0x2C: {"INC L", 1, func(c *CPU) { c.L = c.increment(c.L) }},
	0x2D: {"DEC L", 1, func(c *CPU) { c.L = c.decrement(c.L) }},
	0x2E: {"LD L, d8", 2, func(c *CPU) { c.loadRegister8(&c.L) }},
	0x2F: {"CPL", 1, func(c *CPU) {
		c.A = ^c.A
		c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
	}},
	0x30: {"JR NC, r8", 2, func(c *CPU) { c.jumpRelativeConditional(!c.isFlagSet(FlagCarry)) }},
	0x31: {"LD SP, d16", 3, func(c *CPU) { c.SP = c.readOperand16() }},
	0x32: {"LD (HL-), A", 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}},
	0x33: {"INC SP", 2, func(c *CPU) { c.SP++ }},
	0x34: {"INC (HL)", 3, func(c *CPU) {
		address := c.HL.Uint16()
		c.writeByte(address, c.increment(c.readByte(address)))
	}},
	0x35: {"DEC (HL)", 3, func(c *CPU) {
		address := c.HL.Uint16()
		c.writeByte(address, c.decrement(c.readByte(address)))
	}},
	0x36: {"LD (HL), d8", 3, func(c *CPU) { c.writeByte(c.HL.Uint16(), c.readOperand()) }},
	0x37: {"SCF", 1, func(c *CPU) { c.setFlags(c.isFlagSet(FlagZero), false, false, true) }},
	0x38: {"JR C, r8", 2, func(c *CPU) { c.jumpRelativeConditional(c.isFlagSet(FlagCarry)) }},
	0x39: {"ADD HL, SP", 2, func(c *CPU) { c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP)) }},
	0x3A: {"LD A, (HL-)", 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}},
	0x3B: {"DEC SP", 2, func(c *CPU) { c.SP-- }},
	0x3C: {"INC A", 1, func(c *CPU) { c.A = c.increment(c.A) }},
	0x3D: {"DEC A", 1, func(c *CPU) { c.A = c.decrement(c.A) }},
	0x3E: {"LD A, d8", 2, func(c *CPU) { c.loadRegister8(&c.A) }},
	0x3F: {"CCF", 1, func(c *CPU) { c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry)) }},
	0x40: {"LD B, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.B) }},
	0x41: {"LD B, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.C) }},
	0x42: {"LD B, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.D) }},
	0x43: {"LD B, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.E) }},
	0x44: {"LD B, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.H) }},
	0x45: {"LD B, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.L) }},
	0x46: {"LD B, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.B, c.HL.Uint16()) }},
	0x47: {"LD B, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.A) }},
	0x48: {"LD C, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.B) }},
	0x49: {"LD C, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.C) }},
	0x4A: {"LD C, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.D) }},
	0x4B: {"LD C, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.E) }},
	0x4C: {"LD C, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.H) }},
	0x4D: {"LD C, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.L) }},
	0x4E: {"LD C, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.C, c.HL.Uint16()) }},
	0x4F: {"LD C, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.A) }},
	0x50: {"LD D, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.B) }},
	0x51: {"LD D, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.C) }},
	0x52: {"LD D, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.D) }},
	0x53: {"LD D, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.E) }},
	0x54: {"LD D, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.H) }},
	0x55: {"LD D, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.L) }},
	0x56: {"LD D, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.D, c.HL.Uint16()) }},
	0x57: {"LD D, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.A) }},
	0x58: {"LD E, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.B) }},
	0x59: {"LD E, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.C) }},
	0x5A: {"LD E, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.D) }},
	0x5B: {"LD E, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.E) }},
	0x5C: {"LD E, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.H) }},
	0x5D: {"LD E, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.L) }},
	0x5E: {"LD E, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.E, c.HL.Uint16()) }},
	0x5F: {"LD E, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.A) }},
	0x60: {"LD H, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.B) }},
	0x61: {"LD H, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.C) }},
	0x62: {"LD H, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.D) }},
	0x63: {"LD H, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.E) }},
	0x64: {"LD H, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.H) }},
	0x65: {"LD H, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.L) }},
	0x66: {"LD H, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.H, c.HL.Uint16()) }},
	0x67: {"LD H, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.A) }},
	0x68: {"LD L, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.B) }},
	0x69: {"LD L, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.C) }},
	0x6A: {"LD L, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.D) }},
	0x6B: {"LD L, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.E) }},
	0x6C: {"LD L, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.H) }},
	0x6D: {"LD L, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.L) }},
	0x6E: {"LD L, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.L, c.HL.Uint16()) }},
	0x6F: {"LD L, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.A) }},
	0x70: {"LD (HL), B", 2, func(c *CPU) { c.loadRegisterToMemory(c.B, c.HL.Uint16()) }},
	0x71: {"LD (HL), C", 2, func(c *CPU) { c.loadRegisterToMemory(c.C, c.HL.Uint16()) }},
	0x72: {"LD (HL), D", 2, func(c *CPU) { c.loadRegisterToMemory(c.D, c.HL.Uint16()) }},
	0x73: {"LD (HL), E", 2, func(c *CPU) { c.loadRegisterToMemory(c.E, c.HL.Uint16()) }},
	0x74: {"LD (HL), H", 2, func(c *CPU) { c.loadRegisterToMemory(c.H, c.HL.Uint16()) }},
	0x75: {"LD (HL), L", 2, func(c *CPU) { c.loadRegisterToMemory(c.L, c.HL.Uint16()) }},
	0x76: {"HALT", 1, func(c *CPU) {
		if c.irq.IME {
			c.mode = ModeHalt
		} else if c.irq.HasInterrupts() {
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHaltDI
		}
	}},
	0x77: {"LD (HL), A", 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.HL.Uint16()) }},
	0x78: {"LD A, B", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.B) }},
	0x79: {"LD A, C", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.C) }},
	0x7A: {"LD A, D", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.D) }},
	0x7B: {"LD A, E", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.E) }},
	0x7C: {"LD A, H", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.H) }},
	0x7D: {"LD A, L", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.L) }},
	0x7E: {"LD A, (HL)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.HL.Uint16()) }},
	0x7F: {"LD A, A", 1, func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.A) }},
	0x80: {"ADD A, B", 1, func(c *CPU) { c.add(c.B, false) }},
	0x81: {"ADD A, C", 1, func(c *CPU) { c.add(c.C, false) }},
	0x82: {"ADD A, D", 1, func(c *CPU) { c.add(c.D, false) }},
	0x83: {"ADD A, E", 1, func(c *CPU) { c.add(c.E, false) }},
	0x84: {"ADD A, H", 1, func(c *CPU) { c.add(c.H, false) }},
	0x85: {"ADD A, L", 1, func(c *CPU) { c.add(c.L, false) }},
	0x86: {"ADD A, (HL)", 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), false) }},
	0x87: {"ADD A, A", 1, func(c *CPU) { c.add(c.A, false) }},
	0x88: {"ADC A, B", 1, func(c *CPU) { c.add(c.B, true) }},
	0x89: {"ADC A, C", 1, func(c *CPU) { c.add(c.C, true) }},
	0x8A: {"ADC A, D", 1, func(c *CPU) { c.add(c.D, true) }},
	0x8B: {"ADC A, E", 1, func(c *CPU) { c.add(c.E, true) }},
	0x8C: {"ADC A, H", 1, func(c *CPU) { c.add(c.H, true) }},
	0x8D: {"ADC A, L", 1, func(c *CPU) { c.add(c.L, true) }},
	0x8E: {"ADC A, (HL)", 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), true) }},
	0x8F: {"ADC A, A", 1, func(c *CPU) { c.add(c.A, true) }},
	0x90: {"SUB B", 1, func(c *CPU) { c.sub(c.B, false) }},
	0x91: {"SUB C", 1, func(c *CPU) { c.sub(c.C, false) }},
	0x92: {"SUB D", 1, func(c *CPU) { c.sub(c.D, false) }},
	0x93: {"SUB E", 1, func(c *CPU) { c.sub(c.E, false) }},
	0x94: {"SUB H", 1, func(c *CPU) { c.sub(c.H, false) }},
	0x95: {"SUB L", 1, func(c *CPU) { c.sub(c.L, false) }},
	0x96: {"SUB (HL)", 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), false) }},
	0x97: {"SUB A", 1, func(c *CPU) { c.sub(c.A, false) }},
	0x98: {"SBC A, B", 1, func(c *CPU) { c.sub(c.B, true) }},
	0x99: {"SBC A, C", 1, func(c *CPU) { c.sub(c.C, true) }},
	0x9A: {"SBC A, D", 1, func(c *CPU) { c.sub(c.D, true) }},
	0x9B: {"SBC A, E", 1, func(c *CPU) { c.sub(c.E, true) }},
	0x9C: {"SBC A, H", 1, func(c *CPU) { c.sub(c.H, true) }},
	0x9D: {"SBC A, L", 1, func(c *CPU) { c.sub(c.L, true) }},
	0x9E: {"SBC A, (HL)", 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), true) }},
	0x9F: {"SBC A, A", 1, func(c *CPU) { c.sub(c.A, true) }},
	0xA0: {"AND B", 1, func(c *CPU) { c.and(c.B) }},
	0xA1: {"AND C", 1, func(c *CPU) { c.and(c.C) }},
	0xA2: {"AND D", 1, func(c *CPU) { c.and(c.D) }},
	0xA3: {"AND E", 1, func(c *CPU) { c.and(c.E) }},
	0xA4: {"AND H", 1, func(c *CPU) { c.and(c.H) }},
	0xA5: {"AND L", 1, func(c *CPU) { c.and(c.L) }},
	0xA6: {"AND (HL)", 2, func(c *CPU) { c.and(c.readByte(c.HL.Uint16())) }},
	0xA7: {"AND A", 1, func(c *CPU) { c.and(c.A) }},
	0xA8: {"XOR B", 1, func(c *CPU) { c.xor(c.B) }},
	0xA9: {"XOR C", 1, func(c *CPU) { c.xor(c.C) }},
	0xAA: {"XOR D", 1, func(c *CPU) { c.xor(c.D) }},
	0xAB: {"XOR E", 1, func(c *CPU) { c.xor(c.E) }},
	0xAC: {"XOR H", 1, func(c *CPU) { c.xor(c.H) }},
	0xAD: {"XOR L", 1, func(c *CPU) { c.xor(c.L) }},
	0xAE: {"XOR (HL)", 2, func(c *CPU) { c.xor(c.readByte(c.HL.Uint16())) }},
	0xAF: {"XOR A", 1, func(c *CPU) { c.xor(c.A) }},
	0xB0: {"OR B", 1, func(c *CPU) { c.or(c.B) }},
	0xB1: {"OR C", 1, func(c *CPU) { c.or(c.C) }},
	0xB2: {"OR D", 1, func(c *CPU) { c.or(c.D) }},
	0xB3: {"OR E", 1, func(c *CPU) { c.or(c.E) }},
	0xB4: {"OR H", 1, func(c *CPU) { c.or(c.H) }},
	0xB5: {"OR L", 1, func(c *CPU) { c.or(c.L) }},
	0xB6: {"OR (HL)", 2, func(c *CPU) { c.or(c.readByte(c.HL.Uint16())) }},
	0xB7: {"OR A", 1, func(c *CPU) { c.or(c.A) }},
	0xB8: {"CP B", 1, func(c *CPU) { c.compare(c.B) }},
	0xB9: {"CP C", 1, func(c *CPU) { c.compare(c.C) }},
	0xBA: {"CP D", 1, func(c *CPU) { c.compare(c.D) }},
	0xBB: {"CP E", 1, func(c *CPU) { c.compare(c.E) }},
	0xBC: {"CP H", 1, func(c *CPU) { c.compare(c.H) }},
	0xBD: {"CP L", 1, func(c *CPU) { c.compare(c.L) }},
	0xBE: {"CP (HL)", 2, func(c *CPU) { c.compare(c.readByte(c.HL.Uint16())) }},
	0xBF: {"CP A", 1, func(c *CPU) { c.compare(c.A) }},
	0xC0: {"RET NZ", 2, func(c *CPU) { c.retConditional(!c.isFlagSet(FlagZero)) }},
	0xC1: {"POP BC", 3, func(c *CPU) { c.popNN(&c.B, &c.C) }},
	0xC2: {"JP NZ, a16", 3, func(c *CPU) { c.jumpAbsoluteConditional(!c.isFlagSet(FlagZero)) }},
	0xC3: {"JP a16", 4, func(c *CPU) { c.jumpAbsolute() }},
	0xC4: {"CALL NZ, a16", 3, func(c *CPU) { c.callConditional(!c.isFlagSet(FlagZero)) }},
	0xC5: {"PUSH BC", 4, func(c *CPU) { c.pushNN(c.B, c.C) }},
	0xC6: {"ADD A, d8", 2, func(c *CPU) { c.add(c.readOperand(), false) }},
	0xC7: {"RST 00h", 4, func(c *CPU) { c.rst(0x00) }},
	0xC8: {"RET Z", 2, func(c *CPU) { c.retConditional(c.isFlagSet(FlagZero)) }},
	0xC9: {"RET", 4, func(c *CPU) { c.ret() }},
	0xCA: {"JP Z, a16", 3, func(c *CPU) { c.jumpAbsoluteConditional(c.isFlagSet(FlagZero)) }},
	// 0xCB is intercepted before dispatch; see runInstruction
	0xCB: {"PREFIX CB", 1, func(c *CPU) {}},
	0xCC: {"CALL Z, a16", 3, func(c *CPU) { c.callConditional(c.isFlagSet(FlagZero)) }},
	0xCD: {"CALL a16", 6, func(c *CPU) { c.call() }},
	0xCE: {"ADC A, d8", 2, func(c *CPU) { c.add(c.readOperand(), true) }},
	0xCF: {"RST 08h", 4, func(c *CPU) { c.rst(0x08) }},
	0xD0: {"RET NC", 2, func(c *CPU) { c.retConditional(!c.isFlagSet(FlagCarry)) }},
	0xD1: {"POP DE", 3, func(c *CPU) { c.popNN(&c.D, &c.E) }},
	0xD2: {"JP NC, a16", 3, func(c *CPU) { c.jumpAbsoluteConditional(!c.isFlagSet(FlagCarry)) }},
	0xD3: disallowedOpcode(0xD3),
	0xD4: {"CALL NC, a16", 3, func(c *CPU) { c.callConditional(!c.isFlagSet(FlagCarry)) }},
	0xD5: {"PUSH DE", 4, func(c *CPU) { c.pushNN(c.D, c.E) }},
	0xD6: {"SUB d8", 2, func(c *CPU) { c.sub(c.readOperand(), false) }},
	0xD7: {"RST 10h", 4, func(c *CPU) { c.rst(0x10) }},
	0xD8: {"RET C", 2, func(c *CPU) { c.retConditional(c.isFlagSet(FlagCarry)) }},
	0xD9: {"RETI", 4, func(c *CPU) {
		c.ret()
		c.irq.IME = true
	}},
	0xDA: {"JP C, a16", 3, func(c *CPU) { c.jumpAbsoluteConditional(c.isFlagSet(FlagCarry)) }},
	0xDB: disallowedOpcode(0xDB),
	0xDC: {"CALL C, a16", 3, func(c *CPU) { c.callConditional(c.isFlagSet(FlagCarry)) }},
	0xDD: disallowedOpcode(0xDD),
	0xDE: {"SBC A, d8", 2, func(c *CPU) { c.sub(c.readOperand(), true) }},
	0xDF: {"RST 18h", 4, func(c *CPU) { c.rst(0x18) }},
	0xE0: {"LDH (a8), A", 3, func(c *CPU) { c.loadRegisterToHardware(&c.A, c.readOperand()) }},
	0xE1: {"POP HL", 3, func(c *CPU) { c.popNN(&c.H, &c.L) }},
	0xE2: {"LD (C), A", 2, func(c *CPU) { c.loadRegisterToHardware(&c.A, c.C) }},
	0xE3: disallowedOpcode(0xE3),
	0xE4: disallowedOpcode(0xE4),
	0xE5: {"PUSH HL", 4, func(c *CPU) { c.pushNN(c.H, c.L) }},
	0xE6: {"AND d8", 2, func(c *CPU) { c.and(c.readOperand()) }},
	0xE7: {"RST 20h", 4, func(c *CPU) { c.rst(0x20) }},
	0xE8: {"ADD SP, r8", 4, func(c *CPU) { c.SP = c.addSPSigned() }},
	0xE9: {"JP HL", 1, func(c *CPU) { c.PC = c.HL.Uint16() }},
	0xEA: {"LD (a16), A", 4, func(c *CPU) { c.loadRegisterToMemory(c.A, c.readOperand16()) }},
	0xEB: disallowedOpcode(0xEB),
	0xEC: disallowedOpcode(0xEC),
	0xED: disallowedOpcode(0xED),
	0xEE: {"XOR d8", 2, func(c *CPU) { c.xor(c.readOperand()) }},
	0xEF: {"RST 28h", 4, func(c *CPU) { c.rst(0x28) }},
	0xF0: {"LDH A, (a8)", 3, func(c *CPU) { c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.readOperand())) }},
	0xF1: {"POP AF", 3, func(c *CPU) {
		c.popNN(&c.A, &c.F)
		// the lower nibble of F is hardwired to zero
		c.F &= 0xF0
	}},
	0xF2: {"LD A, (C)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C)) }},
	0xF3: {"DI", 1, func(c *CPU) { c.irq.IME = false }},
	0xF4: disallowedOpcode(0xF4),
	0xF5: {"PUSH AF", 4, func(c *CPU) { c.pushNN(c.A, c.F) }},
	0xF6: {"OR d8", 2, func(c *CPU) { c.or(c.readOperand()) }},
	0xF7: {"RST 30h", 4, func(c *CPU) { c.rst(0x30) }},
	0xF8: {"LD HL, SP+r8", 3, func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) }},
	0xF9: {"LD SP, HL", 2, func(c *CPU) { c.SP = c.HL.Uint16() }},
	0xFA: {"LD A, (a16)", 4, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.readOperand16()) }},
	0xFB: {"EI", 1, func(c *CPU) { c.mode = ModeEnableIME }},
	0xFC: disallowedOpcode(0xFC),
	0xFD: disallowedOpcode(0xFD),
	0xFE: {"CP d8", 2, func(c *CPU) { c.compare(c.readOperand()) }},
	0xFF: {"RST 38h", 4, func(c *CPU) { c.rst(0x38) }},
}
