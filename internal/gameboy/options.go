package gameboy

import (
	"strings"

	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// Opt is a function that modifies a GameBoy instance.
type Opt func(gb *GameBoy)

// Debug enables the LD B, B software breakpoint.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// WithLogger sets the logger used by the emulator.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
		gb.MMU.Log = l
	}
}

// SerialDebugger intercepts serial output and appends it to the
// given string. Test ROMs report their results over the link port,
// so the breakpoint is raised once a verdict has been printed.
func SerialDebugger(output *string) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(func(b uint8) {
			*output += string(rune(b))
			if strings.Contains(*output, "Passed") || strings.Contains(*output, "Failed") {
				gb.CPU.DebugBreakpoint = true
			}
		})
	}
}

// Speed sets the emulation speed multiplier.
func Speed(speed float64) Opt {
	return func(gb *GameBoy) {
		gb.speed = speed
	}
}
