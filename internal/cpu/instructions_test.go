package cpu

import (
	"fmt"
	"testing"
)

// baseCycles holds the expected duration of every base opcode in
// machine cycles, conditional instructions counted as not taken.
var baseCycles = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x00
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x10
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x20
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x40
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x50
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x60
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 0x70
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x80
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x90
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xA0
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xB0
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 1, 3, 6, 2, 4, // 0xC0
	2, 3, 3, 1, 3, 4, 2, 4, 2, 4, 3, 1, 3, 1, 2, 4, // 0xD0
	3, 3, 2, 1, 1, 4, 2, 4, 4, 1, 4, 1, 1, 1, 2, 4, // 0xE0
	3, 3, 2, 1, 1, 4, 2, 4, 3, 2, 4, 1, 1, 1, 2, 4, // 0xF0
}

func TestInstructionCycles(t *testing.T) {
	for i := 0; i < 256; i++ {
		if got := InstructionSet[i].Cycles(); got != baseCycles[i] {
			t.Errorf("opcode 0x%02X (%s): expected %d cycles, got %d",
				i, InstructionSet[i].Name(), baseCycles[i], got)
		}
	}
}

func TestInstructionCyclesCB(t *testing.T) {
	for i := 0; i < 256; i++ {
		expected := uint8(2)
		if i&0x07 == 6 {
			expected = 4
			if i >= 0x40 && i < 0x80 {
				expected = 3 // BIT only reads (HL)
			}
		}
		if got := InstructionSetCB[i].Cycles(); got != expected {
			t.Errorf("opcode 0xCB 0x%02X (%s): expected %d cycles, got %d",
				i, InstructionSetCB[i].Name(), expected, got)
		}
	}
}

func TestInstructionNames(t *testing.T) {
	checks := map[string]string{
		InstructionSet[0x00].Name():   "NOP",
		InstructionSet[0x76].Name():   "HALT",
		InstructionSet[0xC3].Name():   "JP a16",
		InstructionSet[0xD3].Name():   "ILLEGAL(0xD3)",
		InstructionSetCB[0x00].Name(): "RLC B",
		InstructionSetCB[0x36].Name(): "SWAP (HL)",
		InstructionSetCB[0x7E].Name(): "BIT 7, (HL)",
		InstructionSetCB[0x87].Name(): "RES 0, A",
		InstructionSetCB[0xFF].Name(): "SET 7, A",
	}
	for got, expected := range checks {
		if got != expected {
			t.Errorf("expected mnemonic %q, got %q", expected, got)
		}
	}
}

func TestAdd(t *testing.T) {
	c, _ := newTestCPU(t)

	c.A = 0x3A
	c.add(0xC6, false)
	if c.A != 0x00 {
		t.Errorf("expected A=0x00, got 0x%02X", c.A)
	}
	if c.F != 0xB0 {
		t.Errorf("expected Z, H and C set, got F=0x%02X", c.F)
	}

	// ADC consumes the carry left by the previous add
	c.A = 0xE1
	c.add(0x0F, true)
	if c.A != 0xF1 {
		t.Errorf("expected A=0xF1, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("expected H set and C clear, got F=0x%02X", c.F)
	}
}

func TestSub(t *testing.T) {
	c, _ := newTestCPU(t)

	c.A = 0x3E
	c.sub(0x3E, false)
	if c.A != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) {
		t.Errorf("expected A=0x00 with Z and N set, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0x3E
	c.sub(0x40, false)
	if c.A != 0xFE {
		t.Errorf("expected A=0xFE, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagCarry) || c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected C set and H clear, got F=0x%02X", c.F)
	}

	// SBC consumes the borrow left by the previous sub
	c.A = 0x3B
	c.sub(0x2A, true)
	if c.A != 0x10 {
		t.Errorf("expected A=0x10, got 0x%02X", c.A)
	}
	if c.isFlagSet(FlagCarry) || c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected C and H clear, got F=0x%02X", c.F)
	}
}

func TestCompare(t *testing.T) {
	c, _ := newTestCPU(t)

	c.A = 0x3C
	c.compare(0x2F)
	if c.A != 0x3C {
		t.Errorf("expected A unchanged, got 0x%02X", c.A)
	}
	if c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("expected N and H set, got F=0x%02X", c.F)
	}

	c.compare(0x40)
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("expected C set when comparing against a larger value, got F=0x%02X", c.F)
	}
}

func TestIncrementDecrementPreserveCarry(t *testing.T) {
	c, _ := newTestCPU(t)

	c.setFlags(false, false, false, true)
	if v := c.increment(0x0F); v != 0x10 {
		t.Errorf("expected 0x10, got 0x%02X", v)
	}
	if !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected H set and C preserved, got F=0x%02X", c.F)
	}

	if v := c.decrement(0x10); v != 0x0F {
		t.Errorf("expected 0x0F, got 0x%02X", v)
	}
	if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected N and H set and C preserved, got F=0x%02X", c.F)
	}
}

func TestAddHL(t *testing.T) {
	c, _ := newTestCPU(t)

	c.setFlag(FlagZero)
	c.HL.SetUint16(0x8A23)
	c.BC.SetUint16(0x0605)
	c.addHLRR(c.BC)
	if c.HL.Uint16() != 0x9028 {
		t.Errorf("expected HL=0x9028, got 0x%04X", c.HL.Uint16())
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("expected H set and C clear, got F=0x%02X", c.F)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("expected Z unaffected by ADD HL")
	}
}

func TestAddSPSigned(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0xE8, 0xFE) // ADD SP, -2
	c.SP = 0xFFF8
	c.Step()
	if c.SP != 0xFFF6 {
		t.Errorf("expected SP=0xFFF6, got 0x%04X", c.SP)
	}
	if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
		t.Errorf("expected Z and N clear, got F=0x%02X", c.F)
	}

	loadProgram(c, 0xF8, 0x02) // LD HL, SP+2
	c.SP = 0xFFFD
	c.Step()
	if c.HL.Uint16() != 0xFFFF {
		t.Errorf("expected HL=0xFFFF, got 0x%04X", c.HL.Uint16())
	}
}

func TestDecimalAdjust(t *testing.T) {
	c, _ := newTestCPU(t)

	// 0x45 + 0x38 = 0x7D, adjusted to BCD 83
	c.A = 0x45
	c.add(0x38, false)
	c.decimalAdjust()
	if c.A != 0x83 {
		t.Errorf("expected A=0x83, got 0x%02X", c.A)
	}
	if c.isFlagSet(FlagCarry) {
		t.Errorf("expected C clear, got F=0x%02X", c.F)
	}

	// 0x83 - 0x38 = 0x4B, adjusted back to BCD 45
	c.sub(0x38, false)
	c.decimalAdjust()
	if c.A != 0x45 {
		t.Errorf("expected A=0x45, got 0x%02X", c.A)
	}

	// wrap past 99 sets the carry
	c.A = 0x9A
	c.setFlags(false, false, false, false)
	c.decimalAdjust()
	if c.A != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected A=0x00 with Z and C set, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func TestLogicalOps(t *testing.T) {
	c, _ := newTestCPU(t)

	c.A = 0x5A
	c.and(0x3F)
	if c.A != 0x1A || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected A=0x1A with H set, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0x5A
	c.xor(0x5A)
	if c.A != 0x00 || !c.isFlagSet(FlagZero) {
		t.Errorf("expected A=0x00 with Z set, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.or(0x0F)
	if c.A != 0x0F || c.F != 0x00 {
		t.Errorf("expected A=0x0F with all flags clear, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func TestAccumulatorRotates(t *testing.T) {
	c, _ := newTestCPU(t)

	c.A = 0x85
	c.F = 0
	c.rotateLeftCarryAccumulator()
	if c.A != 0x0B || !c.isFlagSet(FlagCarry) {
		t.Errorf("RLCA: expected A=0x0B with C set, got A=0x%02X F=0x%02X", c.A, c.F)
	}
	if c.isFlagSet(FlagZero) {
		t.Error("RLCA: expected Z always clear")
	}

	c.A = 0x95
	c.setFlags(false, false, false, true)
	c.rotateLeftAccumulatorThroughCarry()
	if c.A != 0x2B || !c.isFlagSet(FlagCarry) {
		t.Errorf("RLA: expected A=0x2B with C set, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0x3B
	c.F = 0
	c.rotateRightAccumulator()
	if c.A != 0x9D || !c.isFlagSet(FlagCarry) {
		t.Errorf("RRCA: expected A=0x9D with C set, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0x81
	c.setFlags(false, false, false, false)
	c.rotateRightAccumulatorThroughCarry()
	if c.A != 0x40 || !c.isFlagSet(FlagCarry) {
		t.Errorf("RRA: expected A=0x40 with C set, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func TestCBRotatesAndShifts(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0xCB, 0x00) // RLC B
	c.B = 0x80
	c.F = 0
	c.Step()
	if c.B != 0x01 || !c.isFlagSet(FlagCarry) {
		t.Errorf("RLC B: expected B=0x01 with C set, got B=0x%02X F=0x%02X", c.B, c.F)
	}

	if v := c.shiftLeftArithmetic(0x80); v != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
		t.Errorf("SLA: expected 0x00 with Z and C set, got 0x%02X F=0x%02X", v, c.F)
	}
	if v := c.shiftRightArithmetic(0x8A); v != 0xC5 {
		t.Errorf("SRA: expected sign preserved, got 0x%02X", v)
	}
	if v := c.shiftRightLogical(0x01); v != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
		t.Errorf("SRL: expected 0x00 with Z and C set, got 0x%02X F=0x%02X", v, c.F)
	}
}

func TestSwap(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0xCB, 0x37) // SWAP A
	c.A = 0xF0
	c.Step()
	if c.A != 0x0F {
		t.Errorf("expected A=0x0F, got 0x%02X", c.A)
	}
	if c.F != 0x00 {
		t.Errorf("expected all flags clear, got F=0x%02X", c.F)
	}
}

func TestBitResSet(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0xCB, 0x7C) // BIT 7, H
	c.H = 0x80
	c.setFlags(false, false, false, true)
	c.Step()
	if c.isFlagSet(FlagZero) {
		t.Errorf("BIT 7, H: expected Z clear, got F=0x%02X", c.F)
	}
	if !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Errorf("BIT 7, H: expected H set and C preserved, got F=0x%02X", c.F)
	}

	loadProgram(c, 0xCB, 0xBC) // RES 7, H
	c.Step()
	if c.H != 0x00 {
		t.Errorf("RES 7, H: expected H=0x00, got 0x%02X", c.H)
	}

	loadProgram(c, 0xCB, 0xC7) // SET 0, A
	c.A = 0x00
	c.Step()
	if c.A != 0x01 {
		t.Errorf("SET 0, A: expected A=0x01, got 0x%02X", c.A)
	}
}

func TestLoadRegisterGrid(t *testing.T) {
	// every LD r, r' copies the source into the destination
	sources := [8]uint8{0: 0x11, 1: 0x22, 2: 0x33, 3: 0x44, 4: 0x55, 5: 0x66, 7: 0x88}
	for dst := uint8(0); dst < 8; dst++ {
		if dst == 6 {
			continue
		}
		for src := uint8(0); src < 8; src++ {
			if src == 6 {
				continue
			}
			opcode := 0x40 + dst*8 + src
			t.Run(fmt.Sprintf("%02X", opcode), func(t *testing.T) {
				c, _ := newTestCPU(t)
				loadProgram(c, opcode)
				*c.registerIndex(src) = sources[src]
				c.Step()
				if got := *c.registerIndex(dst); got != sources[src] {
					t.Errorf("%s: expected 0x%02X, got 0x%02X",
						InstructionSet[opcode].Name(), sources[src], got)
				}
			})
		}
	}
}

func TestMemoryIncrement(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0x34) // INC (HL)
	c.HL.SetUint16(0xC100)
	c.mmu.Write(0xC100, 0xFF)
	c.Step()
	if v := c.mmu.Read(0xC100); v != 0x00 {
		t.Errorf("expected 0x00, got 0x%02X", v)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected Z and H set, got F=0x%02X", c.F)
	}
}

func TestLoadIncrementDecrement(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0x22, 0x3A) // LD (HL+), A; LD A, (HL-)
	c.A = 0x42
	c.HL.SetUint16(0xC100)
	c.Step()
	if v := c.mmu.Read(0xC100); v != 0x42 {
		t.Errorf("expected 0x42 written, got 0x%02X", v)
	}
	if c.HL.Uint16() != 0xC101 {
		t.Errorf("expected HL=0xC101, got 0x%04X", c.HL.Uint16())
	}

	c.mmu.Write(0xC101, 0x99)
	c.Step()
	if c.A != 0x99 {
		t.Errorf("expected A=0x99, got 0x%02X", c.A)
	}
	if c.HL.Uint16() != 0xC100 {
		t.Errorf("expected HL=0xC100, got 0x%04X", c.HL.Uint16())
	}
}

func TestCarryFlagOps(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0x37, 0x3F, 0x2F) // SCF; CCF; CPL
	c.F = 0
	c.Step()
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("SCF: expected C set, got F=0x%02X", c.F)
	}
	c.Step()
	if c.isFlagSet(FlagCarry) {
		t.Errorf("CCF: expected C cleared, got F=0x%02X", c.F)
	}

	c.A = 0x35
	c.Step()
	if c.A != 0xCA {
		t.Errorf("CPL: expected A=0xCA, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("CPL: expected N and H set, got F=0x%02X", c.F)
	}
}

func TestStoreSP(t *testing.T) {
	c, _ := newTestCPU(t)

	loadProgram(c, 0x08, 0x00, 0xC1) // LD (0xC100), SP
	c.SP = 0xFFF8
	c.Step()
	if lo := c.mmu.Read(0xC100); lo != 0xF8 {
		t.Errorf("expected low byte 0xF8, got 0x%02X", lo)
	}
	if hi := c.mmu.Read(0xC101); hi != 0xFF {
		t.Errorf("expected high byte 0xFF, got 0x%02X", hi)
	}
}
