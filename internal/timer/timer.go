// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a configurable
// frequency, selected with the types.TAC register.
package timer

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// bits holds the divider bit selected by the two low bits of TAC,
// expressed as a mask over the internal 16-bit divider.
//
//	00 = bit 9 (4096Hz), 01 = bit 3 (262144Hz)
//	10 = bit 5 (65536Hz), 11 = bit 7 (16384Hz)
var bits = [4]uint16{512, 8, 32, 128}

// Controller is the timer controller. TIMA increments on a
// falling edge of the selected divider bit ANDed with the enable
// bit, which reproduces the DIV-write and TAC-write glitches of
// the hardware.
type Controller struct {
	currentBit  uint16
	internalDiv uint16

	tima               uint8
	tma                uint8
	tac                uint8
	ticksSinceOverflow uint8

	enabled  bool
	lastBit  bool
	overflow bool

	irq *interrupts.Service
}

// NewController returns a new timer controller with its DIV,
// TIMA, TMA and TAC registers attached to the given registry.
func NewController(irq *interrupts.Service, registry *types.Registry) *Controller {
	c := &Controller{
		irq:        irq,
		currentBit: bits[0],
		tac:        0xF8,
	}
	registry.RegisterHardware(
		types.DIV,
		func(v uint8) {
			// resetting the divider can drop the selected bit from
			// high to low, which the edge detector counts
			c.internalDiv = 0
			c.fallingEdge(false)
		}, func() uint8 {
			return uint8(c.internalDiv >> 8)
		},
	)
	registry.RegisterHardware(
		types.TIMA,
		func(v uint8) {
			// writes to TIMA are ignored on the tick it reloads
			if c.ticksSinceOverflow != 5 {
				c.tima = v
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		}, func() uint8 {
			return c.tima
		},
	)
	registry.RegisterHardware(
		types.TMA,
		func(v uint8) {
			c.tma = v
			// writing TMA on the tick TIMA reloads forwards the new
			// value into TIMA
			if c.ticksSinceOverflow == 5 {
				c.tima = v
			}
		}, func() uint8 {
			return c.tma
		},
	)
	registry.RegisterHardware(
		types.TAC,
		func(v uint8) {
			c.tac = v & 0x07
			c.currentBit = bits[v&0b11]
			c.enabled = v&types.Bit2 == types.Bit2

			// re-evaluate the edge detector against the new selection
			c.fallingEdge(c.enabled && c.internalDiv&c.currentBit != 0)
		}, func() uint8 {
			return c.tac | 0b11111000
		},
	)

	return c
}

// Tick advances the timer by the given number of T-cycles.
func (c *Controller) Tick(cycles uint8) {
	for i := uint8(0); i < cycles; i++ {
		c.internalDiv++

		c.fallingEdge(c.enabled && c.internalDiv&c.currentBit != 0)

		if c.overflow {
			c.ticksSinceOverflow++

			switch c.ticksSinceOverflow {
			case 4:
				c.irq.Request(interrupts.TimerFlag)
			case 5:
				c.tima = c.tma
			case 6:
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		}
	}
}

// fallingEdge feeds the edge detector with the new state of the
// selected bit, incrementing TIMA on a high to low transition.
func (c *Controller) fallingEdge(newBit bool) {
	if !newBit && c.lastBit {
		c.tima++

		if c.tima == 0 {
			c.overflow = true
			c.ticksSinceOverflow = 0
		}
	}
	c.lastBit = newBit
}
