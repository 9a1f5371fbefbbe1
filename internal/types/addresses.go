package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the joypad register. Writing to bits 4 and 5 selects
	// the button group to be read back from bits 0 - 3.
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register. It holds the byte
	// being shifted out (and in) during a serial transfer.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register. Bit 7 starts a
	// transfer, bit 0 selects the internal clock.
	SC HardwareAddress = 0xFF02
	// DIV is the divider register. Internally it is a 16-bit counter
	// incremented every T-cycle, but only the upper 8 bits may be
	// read. Writing any value resets the internal counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter register. It is incremented at the
	// rate selected by TAC, and reloaded from TMA when it overflows,
	// requesting a timer interrupt.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo register, loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//	Bit 2   - Timer Enable
	//	Bit 1-0 - Input Clock Select (4096, 262144, 65536, 16384 Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register.
	//
	//	Bit 0: V-Blank Interrupt Request (INT 40h)
	//	Bit 1: LCD STAT Interrupt Request (INT 48h)
	//	Bit 2: Timer Interrupt Request (INT 50h)
	//	Bit 3: Serial Interrupt Request (INT 58h)
	//	Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC is the LCD control register.
	//
	//	Bit 7 - LCD Enable             (0=Off, 1=On)
	//	Bit 6 - Window Tile Map Select (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window Display Enable  (0=Off, 1=On)
	//	Bit 4 - BG & Window Tile Data  (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG Tile Map Select     (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ Size               (0=8x8, 1=8x16)
	//	Bit 1 - OBJ Display Enable     (0=Off, 1=On)
	//	Bit 0 - BG & Window Display    (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register.
	//
	//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable)
	//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable)
	//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable)
	//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable)
	//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//	Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the background vertical scroll register.
	SCY HardwareAddress = 0xFF42
	// SCX is the background horizontal scroll register.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline (0-153). Writing any value resets
	// it to 0.
	LY HardwareAddress = 0xFF44
	// LYC is the scanline compare register. When LY matches LYC, the
	// coincidence flag in STAT is set and a STAT interrupt is
	// requested if the coincidence interrupt is enabled.
	LYC HardwareAddress = 0xFF45
	// DMA starts an OAM DMA transfer. Writing a value transfers the
	// 160 bytes at value<<8 into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette register.
	//
	//	Bit 7-6 - Shade for Color Number 3
	//	Bit 5-4 - Shade for Color Number 2
	//	Bit 3-2 - Shade for Color Number 1
	//	Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first object palette register. Color number 0 is
	// transparent for objects.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second object palette register.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position register.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position register (WX=7 places the window
	// at the left edge of the screen).
	WX HardwareAddress = 0xFF4B
	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

// Address represents a region of the Game Boy's memory map,
// holding the functions used to read from and write to it.
type Address struct {
	// Read is called when the CPU reads from an address in the region.
	Read func(address uint16) uint8
	// Write is called when the CPU writes to an address in the region.
	Write func(address uint16, value uint8)
}
