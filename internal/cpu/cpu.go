package cpu

import (
	"fmt"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
	// ModeHaltBug is the halt bug CPU mode.
	ModeHaltBug
	// ModeHaltDI is the halt CPU mode entered with interrupts disabled.
	ModeHaltDI
	// ModeEnableIME is the mode EI leaves the CPU in until the
	// following instruction has executed.
	ModeEnableIME
)

// CPU is the SM83 core. It executes one instruction per Step and
// reports the time it consumed, leaving it to the caller to run
// the other components for the same duration.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	mmu *mmu.MMU
	irq *interrupts.Service

	Debug           bool
	DebugBreakpoint bool

	cycles uint8 // machine cycles consumed by the current Step
	mode   mode
}

// NewCPU creates a new CPU instance with the given MMU. The
// registers hold the state the DMG boot ROM leaves them in, with
// the PC at the cartridge entry point.
func NewCPU(mmu *mmu.MMU, irq *interrupts.Service) *CPU {
	c := &CPU{
		mmu: mmu,
		irq: irq,
		PC:  0x0100,
		SP:  0xFFFE,
	}

	// create register pairs
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	c.AF = &RegisterPair{&c.A, &c.F}

	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D

	return c
}

// registerIndex returns a Register pointer for the given index.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// registerNames maps a register index to its mnemonic.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Step executes a single instruction, or idles for one machine
// cycle in halt or stop mode, and returns the number of T-cycles
// consumed, including any interrupt dispatch that followed.
func (c *CPU) Step() uint8 {
	c.cycles = 0

	reqInt := false
	switch c.mode {
	case ModeNormal:
		c.runInstruction(c.readInstruction())

		reqInt = c.irq.IME && c.irq.HasInterrupts()
	case ModeHalt, ModeStop:
		// the CPU idles for a machine cycle, but executes nothing
		c.cycles++

		// the IME is ignored here, so that an interrupt can wake
		// the CPU from halt, stop mode
		reqInt = c.irq.HasInterrupts()
	case ModeHaltDI:
		c.cycles++

		// a pending interrupt resumes execution without being serviced
		if c.irq.HasInterrupts() {
			c.mode = ModeNormal
		}
	case ModeEnableIME:
		// EI takes effect after the following instruction
		c.irq.IME = true
		c.mode = ModeNormal

		c.runInstruction(c.readInstruction())

		reqInt = c.irq.IME && c.irq.HasInterrupts()
	case ModeHaltBug:
		// the opcode after HALT is fetched without the PC
		// incrementing, so the byte gets executed twice
		instr := c.readInstruction()
		c.PC--
		c.runInstruction(instr)
		c.mode = ModeNormal

		reqInt = c.irq.IME && c.irq.HasInterrupts()
	}

	if reqInt {
		c.executeInterrupt()
	}

	return c.cycles * 4
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but will allow future optimizations.
func (c *CPU) readOperand() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operands from memory, low
// byte first.
func (c *CPU) readOperand16() uint16 {
	low := uint16(c.readOperand())
	high := uint16(c.readOperand())
	return high<<8 | low
}

func (c *CPU) skipOperand() {
	c.PC++
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.mmu.Write(addr, val)
}

func (c *CPU) runInstruction(opcode uint8) {
	var instruction Instruction
	if opcode == 0xCB {
		// the CB table carries the full duration, prefix fetch included
		instruction = InstructionSetCB[c.readOperand()]
	} else {
		instruction = InstructionSet[opcode]
	}

	c.cycles += instruction.cycles
	instruction.fn(c)

	// LD B, B is the conventional software breakpoint
	if c.Debug && opcode == 0x40 {
		c.DebugBreakpoint = true
	}
}

// executeInterrupt services the highest-priority pending
// interrupt. The dispatch sequence costs 5 machine cycles.
func (c *CPU) executeInterrupt() {
	if c.irq.IME {
		// save the high byte of the PC
		c.SP--
		c.writeByte(c.SP, uint8(c.PC>>8))

		vector := c.irq.Vector()

		// save the low byte of the PC
		c.SP--
		c.writeByte(c.SP, uint8(c.PC&0xFF))

		// jump to the interrupt vector and disable the IME
		c.PC = vector
		c.irq.IME = false

		c.cycles += 5
	}

	c.mode = ModeNormal
}
