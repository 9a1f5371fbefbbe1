package interrupts

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), which is
	// requested every time the PPU enters VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which is
	// requested by the LCD STAT register (types.STAT) when one of
	// its enabled conditions is met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), which is
	// requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), which is
	// requested when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), which is
	// requested when a selected button line goes low.
	JoypadFlag = types.Bit4
)

// Service is the interrupt service, used to request interrupts
// and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit in the
// Flag register is set. When an interrupt is enabled, the
// corresponding bit in the Enable register is set. When an
// interrupt is both requested and enabled, and the IME is set,
// the CPU jumps to the interrupt vector and the corresponding
// bit in the Flag register is cleared.
type Service struct {
	Flag   uint8 // interrupt flag (types.IF)
	Enable uint8 // interrupt enable (types.IE)

	// IME is the master interrupt switch. It is not addressable;
	// only EI, DI, RETI and the dispatch sequence touch it.
	IME bool
}

// NewService returns a new Service with its IF and IE registers
// attached to the given registry.
func NewService(registry *types.Registry) *Service {
	s := &Service{}
	registry.RegisterHardware(
		types.IF,
		func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		}, func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		},
	)
	registry.RegisterHardware(
		types.IE,
		func(v uint8) {
			s.Enable = v
		}, func() uint8 {
			return s.Enable
		},
	)

	return s
}

// HasInterrupts returns true if any interrupt is both requested
// and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag != 0
}

// Request requests the specified interrupt by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the vector of the highest-priority interrupt
// that is both requested and enabled, clearing its bit in the
// Flag register, or 0 if no interrupt is pending.
func (s *Service) Vector() uint16 {
	if s.Enable&s.Flag == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)

		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}
