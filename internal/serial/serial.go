// Package serial provides an implementation of the Game Boy
// serial port. With no link cable peer attached, a transfer
// driven by the internal clock shifts in all ones, so SB reads
// 0xFF once the transfer completes.
package serial

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// ticksPerBit is the number of T-cycles per transferred bit when
// driven by the internal 8192Hz clock.
const ticksPerBit = 512

// Controller is the serial controller. Before a transfer, data
// holds the byte to be sent; during a transfer one bit is shifted
// out (and an incoming 1 shifted in) every ticksPerBit cycles.
type Controller struct {
	data    uint8 // types.SB
	control uint8 // types.SC

	internalClock   bool
	transferRequest bool
	bitTicks        uint16
	count           uint8

	// onTransfer is called with the outgoing byte when a transfer
	// completes, used to capture test ROM output.
	onTransfer func(b uint8)

	irq *interrupts.Service
}

// NewController returns a new serial controller with its SB and
// SC registers attached to the given registry.
func NewController(irq *interrupts.Service, registry *types.Registry) *Controller {
	c := &Controller{
		control: 0x7E, // bits 1-6 are unused and read set
		irq:     irq,
	}
	registry.RegisterHardware(
		types.SB,
		func(v uint8) {
			c.data = v
		}, func() uint8 {
			return c.data
		},
	)
	registry.RegisterHardware(
		types.SC,
		func(v uint8) {
			c.control = v | 0x7E
			c.internalClock = v&types.Bit0 == types.Bit0
			if v&types.Bit7 == types.Bit7 && !c.transferRequest {
				c.transferRequest = true
				c.bitTicks = 0
				c.count = 0
			}
		}, func() uint8 {
			return c.control
		},
	)

	return c
}

// Attach sets the function called with the outgoing byte each
// time a transfer completes.
func (c *Controller) Attach(fn func(b uint8)) {
	c.onTransfer = fn
}

// Tick advances an in-progress transfer by the given number of
// T-cycles. Transfers waiting on an external clock never advance,
// as there is no peer to drive them.
func (c *Controller) Tick(cycles uint8) {
	if !c.transferRequest || !c.internalClock {
		return
	}

	c.bitTicks += uint16(cycles)
	for c.bitTicks >= ticksPerBit {
		c.bitTicks -= ticksPerBit
		c.shiftBit()
		if !c.transferRequest {
			return
		}
	}
}

// shiftBit shifts the leftmost bit of data out and an incoming 1
// in. After 8 bits the transfer is complete: the transfer bit of
// SC is cleared and the serial interrupt is requested.
func (c *Controller) shiftBit() {
	if c.count == 0 && c.onTransfer != nil {
		c.onTransfer(c.data)
	}
	c.data = c.data<<1 | 1

	c.count++
	if c.count == 8 {
		c.count = 0
		c.transferRequest = false
		c.control &^= types.Bit7
		c.irq.Request(interrupts.SerialFlag)
	}
}
