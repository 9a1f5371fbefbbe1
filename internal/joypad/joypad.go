// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either the
// action or direction group by writing bit 5 or 4 of types.P1
// low, then read bits 0-3 for the state of the selected group.
//
//	Bit 5 - P15 Select Action Buttons    (0=Select)
//	Bit 4 - P14 Select Direction Keys    (0=Select)
//	Bit 3 - P13 Input Down  or Start     (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select    (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B  (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A  (0=Pressed) (Read Only)
type State struct {
	// State holds the pressed buttons, the lower 4 bits for the
	// action buttons and the upper 4 bits for the direction keys.
	// A 1 in a bit indicates the button is held; the polarity is
	// inverted when read back through types.P1.
	State Button

	selected uint8

	irq *interrupts.Service
}

// New returns a new joypad with its P1 register attached to the
// given registry.
func New(irq *interrupts.Service, registry *types.Registry) *State {
	s := &State{
		selected: types.Bit4 | types.Bit5,
		irq:      irq,
	}
	registry.RegisterHardware(
		types.P1,
		func(v uint8) {
			// only the group select bits are writable
			s.selected = v & (types.Bit4 | types.Bit5)
		}, func() uint8 {
			pressed := uint8(0)
			if s.selected&types.Bit4 == 0 {
				pressed |= s.State >> 4
			}
			if s.selected&types.Bit5 == 0 {
				pressed |= s.State & 0x0F
			}
			return 0xC0 | s.selected | (^pressed & 0x0F)
		},
	)

	return s
}

// Press presses a button. A joypad interrupt is requested only
// when the button was released and its group is selected through
// types.P1.
func (s *State) Press(button Button) {
	bit := uint8(1) << button
	if s.State&bit != 0 {
		return
	}
	s.State |= bit

	selected := s.selected&types.Bit5 == 0
	if button >= ButtonRight {
		selected = s.selected&types.Bit4 == 0
	}
	if selected {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State &^= 1 << button
}
