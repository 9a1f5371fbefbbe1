package cpu

import (
	"testing"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

func newTestCPU(t *testing.T) (*CPU, *interrupts.Service) {
	t.Helper()

	rom := make([]byte, 0x8000)
	sum := uint8(0)
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		t.Fatal(err)
	}
	registry := types.NewRegistry()
	irq := interrupts.NewService(registry)
	video := ppu.New(irq, registry)
	m := mmu.NewMMU(cart, registry, log.NewNullLogger())
	m.AttachVideo(video)

	return NewCPU(m, irq), irq
}

// loadProgram writes the given bytes into WRAM and points the PC
// at them.
func loadProgram(c *CPU, code ...uint8) {
	for i, b := range code {
		c.mmu.Write(0xC000+uint16(i), b)
	}
	c.PC = 0xC000
}

func TestPostBootRegisters(t *testing.T) {
	c, _ := newTestCPU(t)

	if c.A != 0x01 || c.F != 0xB0 {
		t.Errorf("expected AF=0x01B0, got 0x%04X", c.AF.Uint16())
	}
	if c.BC.Uint16() != 0x0013 {
		t.Errorf("expected BC=0x0013, got 0x%04X", c.BC.Uint16())
	}
	if c.DE.Uint16() != 0x00D8 {
		t.Errorf("expected DE=0x00D8, got 0x%04X", c.DE.Uint16())
	}
	if c.HL.Uint16() != 0x014D {
		t.Errorf("expected HL=0x014D, got 0x%04X", c.HL.Uint16())
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP=0xFFFE, got 0x%04X", c.SP)
	}
	if c.PC != 0x0100 {
		t.Errorf("expected PC=0x0100, got 0x%04X", c.PC)
	}
}

func TestRegisterPairsAlias(t *testing.T) {
	c, _ := newTestCPU(t)

	c.HL.SetUint16(0x8123)
	if c.H != 0x81 || c.L != 0x23 {
		t.Errorf("expected H=0x81 L=0x23, got H=0x%02X L=0x%02X", c.H, c.L)
	}
	c.B, c.C = 0xAB, 0xCD
	if c.BC.Uint16() != 0xABCD {
		t.Errorf("expected BC=0xABCD, got 0x%04X", c.BC.Uint16())
	}
}

func TestStepTiming(t *testing.T) {
	t.Run("NOP", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0x00)
		if ticks := c.Step(); ticks != 4 {
			t.Errorf("expected 4 ticks, got %d", ticks)
		}
	})
	t.Run("JR NZ taken", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0x20, 0x02)
		c.F = 0
		if ticks := c.Step(); ticks != 12 {
			t.Errorf("expected 12 ticks, got %d", ticks)
		}
		if c.PC != 0xC004 {
			t.Errorf("expected PC=0xC004, got 0x%04X", c.PC)
		}
	})
	t.Run("JR NZ not taken", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0x20, 0x02)
		c.setFlag(FlagZero)
		if ticks := c.Step(); ticks != 8 {
			t.Errorf("expected 8 ticks, got %d", ticks)
		}
		if c.PC != 0xC002 {
			t.Errorf("expected PC=0xC002, got 0x%04X", c.PC)
		}
	})
	t.Run("CALL", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0xCD, 0x34, 0x12)
		if ticks := c.Step(); ticks != 24 {
			t.Errorf("expected 24 ticks, got %d", ticks)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC=0x1234, got 0x%04X", c.PC)
		}
		if c.SP != 0xFFFC {
			t.Errorf("expected SP=0xFFFC, got 0x%04X", c.SP)
		}
	})
	t.Run("RET Z taken", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0xC8)
		c.setFlag(FlagZero)
		c.SP = 0xFFFC
		c.mmu.Write(0xFFFC, 0x00)
		c.mmu.Write(0xFFFD, 0xD0)
		if ticks := c.Step(); ticks != 20 {
			t.Errorf("expected 20 ticks, got %d", ticks)
		}
		if c.PC != 0xD000 {
			t.Errorf("expected PC=0xD000, got 0x%04X", c.PC)
		}
	})
	t.Run("SET 7, (HL)", func(t *testing.T) {
		c, _ := newTestCPU(t)
		loadProgram(c, 0xCB, 0xFE)
		c.HL.SetUint16(0xC100)
		if ticks := c.Step(); ticks != 16 {
			t.Errorf("expected 16 ticks, got %d", ticks)
		}
		if v := c.mmu.Read(0xC100); v != 0x80 {
			t.Errorf("expected 0x80 at 0xC100, got 0x%02X", v)
		}
	})
}

func TestCallReturn(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0xCD, 0x00, 0xC1) // CALL 0xC100
	c.mmu.Write(0xC100, 0xC9)        // RET

	c.Step()
	if c.PC != 0xC100 {
		t.Fatalf("expected PC=0xC100, got 0x%04X", c.PC)
	}
	c.Step()
	if c.PC != 0xC003 {
		t.Errorf("expected PC=0xC003 after return, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP restored to 0xFFFE, got 0x%04X", c.SP)
	}
}

func TestRST(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0xEF) // RST 28h

	if ticks := c.Step(); ticks != 16 {
		t.Errorf("expected 16 ticks, got %d", ticks)
	}
	if c.PC != 0x0028 {
		t.Errorf("expected PC=0x0028, got 0x%04X", c.PC)
	}
	ret := uint16(c.mmu.Read(0xFFFC)) | uint16(c.mmu.Read(0xFFFD))<<8
	if ret != 0xC001 {
		t.Errorf("expected return address 0xC001 on stack, got 0x%04X", ret)
	}
}

func TestPushPop(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0xC5, 0xD1) // PUSH BC; POP DE
	c.BC.SetUint16(0x1234)

	c.Step()
	c.Step()
	if c.DE.Uint16() != 0x1234 {
		t.Errorf("expected DE=0x1234, got 0x%04X", c.DE.Uint16())
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP=0xFFFE, got 0x%04X", c.SP)
	}
}

func TestPopAFMasksLowerNibble(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0xF1) // POP AF
	c.SP = 0xFFFC
	c.mmu.Write(0xFFFC, 0xFF)
	c.mmu.Write(0xFFFD, 0x55)

	c.Step()
	if c.A != 0x55 {
		t.Errorf("expected A=0x55, got 0x%02X", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("expected F=0xF0, got 0x%02X", c.F)
	}
}

func TestHighRAMLoads(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c,
		0x3E, 0x42, // LD A, 0x42
		0xE0, 0x80, // LDH (0x80), A
		0x3E, 0x00, // LD A, 0x00
		0xF0, 0x80, // LDH A, (0x80)
	)

	for i := 0; i < 4; i++ {
		c.Step()
	}
	if c.A != 0x42 {
		t.Errorf("expected A=0x42 after high RAM round trip, got 0x%02X", c.A)
	}
}

func TestInterruptDispatch(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0x00) // NOP
	irq.IME = true
	irq.Enable = interrupts.TimerFlag
	irq.Request(interrupts.TimerFlag)

	if ticks := c.Step(); ticks != 24 {
		t.Errorf("expected 24 ticks (instruction + dispatch), got %d", ticks)
	}
	if c.PC != 0x0050 {
		t.Errorf("expected PC at timer vector 0x0050, got 0x%04X", c.PC)
	}
	if irq.IME {
		t.Error("expected IME cleared by dispatch")
	}
	if irq.Flag&interrupts.TimerFlag != 0 {
		t.Error("expected timer flag cleared by dispatch")
	}
	ret := uint16(c.mmu.Read(0xFFFC)) | uint16(c.mmu.Read(0xFFFD))<<8
	if ret != 0xC001 {
		t.Errorf("expected return address 0xC001 on stack, got 0x%04X", ret)
	}
}

func TestEIDelay(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0xFB, 0x3C) // EI; INC A
	irq.Enable = interrupts.VBlankFlag
	irq.Request(interrupts.VBlankFlag)
	c.A = 0

	// EI itself must not open the interrupt window
	if ticks := c.Step(); ticks != 4 {
		t.Errorf("expected 4 ticks for EI, got %d", ticks)
	}
	if irq.IME {
		t.Fatal("expected IME still clear directly after EI")
	}

	// the following instruction executes, then the interrupt is taken
	if ticks := c.Step(); ticks != 24 {
		t.Errorf("expected 24 ticks, got %d", ticks)
	}
	if c.A != 1 {
		t.Errorf("expected INC A to have executed, got A=0x%02X", c.A)
	}
	if c.PC != 0x0040 {
		t.Errorf("expected PC at vblank vector 0x0040, got 0x%04X", c.PC)
	}
}

func TestHaltWakes(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0x76, 0x00) // HALT; NOP
	irq.IME = true

	c.Step()
	if c.mode != ModeHalt {
		t.Fatalf("expected halt mode, got %d", c.mode)
	}

	// nothing pending, the CPU idles in place
	if ticks := c.Step(); ticks != 4 {
		t.Errorf("expected 4 ticks while halted, got %d", ticks)
	}
	if c.PC != 0xC001 {
		t.Errorf("expected PC unchanged at 0xC001, got 0x%04X", c.PC)
	}

	irq.Enable = interrupts.VBlankFlag
	irq.Request(interrupts.VBlankFlag)

	if ticks := c.Step(); ticks != 24 {
		t.Errorf("expected 24 ticks for wake and dispatch, got %d", ticks)
	}
	if c.PC != 0x0040 {
		t.Errorf("expected PC at vblank vector, got 0x%04X", c.PC)
	}
	if c.mode != ModeNormal {
		t.Errorf("expected normal mode after wake, got %d", c.mode)
	}
}

func TestHaltWithoutIMEResumes(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0x76, 0x3C) // HALT; INC A
	c.A = 0

	c.Step()
	if c.mode != ModeHaltDI {
		t.Fatalf("expected halt DI mode, got %d", c.mode)
	}
	c.Step()
	if c.PC != 0xC001 {
		t.Fatalf("expected PC unchanged at 0xC001, got 0x%04X", c.PC)
	}

	irq.Enable = interrupts.JoypadFlag
	irq.Request(interrupts.JoypadFlag)

	// the pending interrupt resumes execution but is not serviced
	c.Step()
	if c.mode != ModeNormal {
		t.Fatalf("expected normal mode, got %d", c.mode)
	}
	c.Step()
	if c.A != 1 {
		t.Errorf("expected INC A to have executed, got A=0x%02X", c.A)
	}
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Error("expected joypad flag still pending")
	}
}

func TestHaltBug(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0x76, 0x3C) // HALT; INC A
	c.A = 0
	irq.Enable = interrupts.VBlankFlag
	irq.Request(interrupts.VBlankFlag)

	c.Step()
	if c.mode != ModeHaltBug {
		t.Fatalf("expected halt bug mode, got %d", c.mode)
	}

	// the byte after HALT executes twice
	c.Step()
	c.Step()
	if c.A != 2 {
		t.Errorf("expected INC A to have executed twice, got A=0x%02X", c.A)
	}
	if c.PC != 0xC002 {
		t.Errorf("expected PC=0xC002, got 0x%04X", c.PC)
	}
}

func TestDIBlocksInterrupts(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0xF3, 0x00) // DI; NOP
	irq.IME = true
	irq.Enable = interrupts.VBlankFlag
	irq.Request(interrupts.VBlankFlag)

	c.Step()
	if irq.IME {
		t.Fatal("expected IME cleared by DI")
	}
	c.Step()
	if c.PC != 0xC002 {
		t.Errorf("expected no dispatch, PC=0xC002, got 0x%04X", c.PC)
	}
}

func TestRETI(t *testing.T) {
	c, irq := newTestCPU(t)
	loadProgram(c, 0xD9) // RETI
	c.SP = 0xFFFC
	c.mmu.Write(0xFFFC, 0x00)
	c.mmu.Write(0xFFFD, 0xC1)

	if ticks := c.Step(); ticks != 16 {
		t.Errorf("expected 16 ticks, got %d", ticks)
	}
	if c.PC != 0xC100 {
		t.Errorf("expected PC=0xC100, got 0x%04X", c.PC)
	}
	if !irq.IME {
		t.Error("expected IME set by RETI")
	}
}

func TestDisallowedOpcodePanics(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0xD3)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on disallowed opcode")
		}
	}()
	c.Step()
}

func TestDebugBreakpoint(t *testing.T) {
	c, _ := newTestCPU(t)
	loadProgram(c, 0x40) // LD B, B
	c.Debug = true

	c.Step()
	if !c.DebugBreakpoint {
		t.Error("expected LD B, B to raise the debug breakpoint")
	}
}
