// Package gameboy wires the individual components into a complete
// DMG and drives them in lockstep with the CPU.
package gameboy

import (
	"fmt"
	"time"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/internal/serial"
	"github.com/dotmatrix-emu/dotmatrix/internal/timer"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
)

// GameBoy represents a Game Boy. It contains all the components of
// the Game Boy. It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	speed  float64
	paused bool
}

// NewGameBoy returns a new GameBoy running the given ROM, with the
// components in the state the boot ROM leaves them in.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	registry := types.NewRegistry()
	irq := interrupts.NewService(registry)
	pad := joypad.New(irq, registry)
	serialCtl := serial.NewController(irq, registry)
	timerCtl := timer.NewController(irq, registry)
	video := ppu.New(irq, registry)
	memBus := mmu.NewMMU(cart, registry, log.NewNullLogger())
	memBus.AttachVideo(video)

	g := &GameBoy{
		CPU: cpu.NewCPU(memBus, irq),
		MMU: memBus,
		PPU: video,

		Joypad:     pad,
		Interrupts: irq,
		Timer:      timerCtl,
		Serial:     serialCtl,

		Logger: log.NewNullLogger(),
		speed:  1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Frame steps the emulation until the PPU has finished rendering
// the current frame, then returns it. With the LCD switched off no
// frame is ever produced, so the loop is additionally capped at a
// frame's worth of cycles and the previous frame is returned.
func (g *GameBoy) Frame() [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8 {
	g.PPU.ClearRefresh()

	cycles := uint(0)
	for !g.PPU.HasFrame() && cycles < CyclesPerFrame {
		ticks := g.CPU.Step()

		g.PPU.Tick(ticks)
		g.Timer.Tick(ticks)
		g.Serial.Tick(ticks)

		cycles += uint(ticks)

		if g.CPU.DebugBreakpoint {
			break
		}
	}

	return g.PPU.PreparedFrame
}

// Start starts the Game Boy emulation, rendering frames to the
// given display until its window is closed.
func (g *GameBoy) Start(mon *display.Display) {
	g.Infof("starting emulation: %s", g.MMU.Cart.Header().String())

	interval := time.Duration(float64(time.Second) * CyclesPerFrame / ClockSpeed / g.speed)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frames := 0
	start := time.Now()
	for !mon.IsClosed() {
		<-ticker.C
		frames++

		g.ProcessInputs(mon.PollKeys())
		if !g.paused {
			mon.Render(g.Frame())
		}

		if time.Since(start) > time.Second {
			mon.SetTitle(fmt.Sprintf("%s | FPS: %v", g.MMU.Cart.Title(), frames))

			frames = 0
			start = time.Now()
		}
	}
}

// TogglePause pauses or resumes the emulation loop.
func (g *GameBoy) TogglePause() {
	g.paused = !g.paused
}

// ProcessInputs presses and releases the joypad buttons reported
// by the display since the last poll.
func (g *GameBoy) ProcessInputs(inputs display.Inputs) {
	for _, button := range inputs.Pressed {
		g.Joypad.Press(button)
	}
	for _, button := range inputs.Released {
		g.Joypad.Release(button)
	}
}
