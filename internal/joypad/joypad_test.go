package joypad

import (
	"testing"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

func newTestJoypad() (*State, *interrupts.Service, *types.Registry) {
	registry := types.NewRegistry()
	irq := interrupts.NewService(registry)
	return New(irq, registry), irq, registry
}

func TestNothingSelected(t *testing.T) {
	j, _, registry := newTestJoypad()
	j.Press(ButtonA)

	if v := registry.Read(types.P1); v != 0xFF {
		t.Errorf("expected P1 to read 0xFF with no group selected, got 0x%02X", v)
	}
}

func TestActionButtons(t *testing.T) {
	j, _, registry := newTestJoypad()
	registry.Write(types.P1, 0x10) // bit 5 low selects the action group

	j.Press(ButtonA)
	j.Press(ButtonStart)
	if v := registry.Read(types.P1); v != 0xD6 {
		t.Errorf("expected P1 to read 0xD6, got 0x%02X", v)
	}

	j.Release(ButtonA)
	if v := registry.Read(types.P1); v != 0xD7 {
		t.Errorf("expected P1 to read 0xD7 after releasing A, got 0x%02X", v)
	}
}

func TestDirectionKeys(t *testing.T) {
	j, _, registry := newTestJoypad()
	registry.Write(types.P1, 0x20) // bit 4 low selects the direction group

	j.Press(ButtonLeft)
	if v := registry.Read(types.P1); v != 0xED {
		t.Errorf("expected P1 to read 0xED, got 0x%02X", v)
	}

	// action presses are invisible to the direction group
	j.Press(ButtonB)
	if v := registry.Read(types.P1); v != 0xED {
		t.Errorf("expected P1 unchanged by action press, got 0x%02X", v)
	}
}

func TestPressRequestsInterrupt(t *testing.T) {
	j, irq, registry := newTestJoypad()
	registry.Write(types.P1, 0x20) // direction group selected

	j.Press(ButtonUp)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Error("expected joypad interrupt requested on press")
	}

	// re-pressing a held button is not a transition
	irq.Flag = 0
	j.Press(ButtonUp)
	if irq.Flag&interrupts.JoypadFlag != 0 {
		t.Error("expected no interrupt for a held button")
	}
}

func TestPressUnselectedGroup(t *testing.T) {
	j, irq, registry := newTestJoypad()
	registry.Write(types.P1, 0x10) // only the action group selected

	j.Press(ButtonDown)
	if irq.Flag&interrupts.JoypadFlag != 0 {
		t.Error("expected no interrupt for a direction press with the action group selected")
	}

	j.Press(ButtonA)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Error("expected an interrupt for an action press with the action group selected")
	}
}
