// Package ppu provides an implementation of the Game Boy PPU,
// stepped by the cycle counts the CPU reports. Each visible
// scanline passes through OAM scan (80 dots), pixel transfer
// (172) and H-blank (204), and the whole line is rendered in one
// shot on entry to H-blank. Because of that, VRAM and OAM
// accesses always pass through, even in modes where the hardware
// would block them.
package ppu

import (
	"sort"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu/lcd"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu/palette"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// dot counts per mode within a 456-dot scanline
const (
	oamScanDots       = 80
	pixelTransferDots = 172
	hblankDots        = 204
	scanlineDots      = 456
)

// PPU is the picture processing unit.
type PPU struct {
	Controller *lcd.Controller
	Status     *lcd.Status

	vRAM    [0x2000]uint8
	oam     [0xA0]uint8
	sprites [40]Sprite

	scrollY     uint8
	scrollX     uint8
	currentLine uint8
	lyCompare   uint8
	windowY     uint8
	windowX     uint8

	bgp  uint8
	obp0 uint8
	obp1 uint8

	backgroundPalette palette.Palette
	spritePalettes    [2]palette.Palette

	currentCycle uint16
	windowLine   uint8

	// PreparedFrame is the rendered frame, handed to the display
	// once HasFrame reports true.
	PreparedFrame [ScreenHeight][ScreenWidth][3]uint8

	// scanline holds the raw background colour numbers of the
	// line being drawn, consulted for sprite priority.
	scanline [ScreenWidth]uint8

	hasFrame bool

	irq *interrupts.Service
}

// New returns a new PPU with its registers attached to the given
// registry, in the state the boot ROM leaves it in.
func New(irq *interrupts.Service, registry *types.Registry) *PPU {
	p := &PPU{
		Controller: lcd.NewController(),
		Status:     lcd.NewStatus(),
		irq:        irq,
	}

	registry.RegisterHardware(
		types.LCDC,
		func(v uint8) {
			wasEnabled := p.Controller.Enabled
			p.Controller.Write(v)
			if wasEnabled && !p.Controller.Enabled {
				// turning the LCD off resets the scan position
				p.currentLine = 0
				p.currentCycle = 0
				p.windowLine = 0
				p.Status.Mode = lcd.HBlank
			} else if !wasEnabled && p.Controller.Enabled {
				p.currentCycle = 0
				p.Status.Mode = lcd.OAM
				p.checkCoincidence()
			}
		}, func() uint8 {
			return p.Controller.Read()
		},
	)
	registry.RegisterHardware(
		types.STAT,
		func(v uint8) {
			p.Status.Write(v)
		}, func() uint8 {
			return p.Status.Read()
		},
	)
	registry.RegisterHardware(
		types.SCY,
		func(v uint8) { p.scrollY = v },
		func() uint8 { return p.scrollY },
	)
	registry.RegisterHardware(
		types.SCX,
		func(v uint8) { p.scrollX = v },
		func() uint8 { return p.scrollX },
	)
	registry.RegisterHardware(
		types.LY,
		func(v uint8) {
			// writing LY resets the scanline counter
			p.currentLine = 0
			p.checkCoincidence()
		}, func() uint8 {
			return p.currentLine
		},
	)
	registry.RegisterHardware(
		types.LYC,
		func(v uint8) {
			p.lyCompare = v
			if p.Controller.Enabled {
				p.checkCoincidence()
			}
		}, func() uint8 {
			return p.lyCompare
		},
	)
	registry.RegisterHardware(
		types.BGP,
		func(v uint8) {
			p.bgp = v
			p.backgroundPalette = palette.ByteToPalette(v)
		}, func() uint8 {
			return p.bgp
		},
	)
	registry.RegisterHardware(
		types.OBP0,
		func(v uint8) {
			p.obp0 = v
			p.spritePalettes[0] = palette.ByteToPalette(v)
		}, func() uint8 {
			return p.obp0
		},
	)
	registry.RegisterHardware(
		types.OBP1,
		func(v uint8) {
			p.obp1 = v
			p.spritePalettes[1] = palette.ByteToPalette(v)
		}, func() uint8 {
			return p.obp1
		},
	)
	registry.RegisterHardware(
		types.WY,
		func(v uint8) { p.windowY = v },
		func() uint8 { return p.windowY },
	)
	registry.RegisterHardware(
		types.WX,
		func(v uint8) { p.windowX = v },
		func() uint8 { return p.windowX },
	)

	// post-boot register state
	registry.Write(types.LCDC, 0x91)
	registry.Write(types.BGP, 0xFC)
	registry.Write(types.OBP0, 0xFF)
	registry.Write(types.OBP1, 0xFF)

	return p
}

// Read returns the value at the given VRAM or OAM address.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vRAM[address-0x8000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.oam[address-0xFE00]
	}
	return 0xFF
}

// Write writes the value to the given VRAM or OAM address.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.vRAM[address-0x8000] = value
	case address >= 0xFE00 && address <= 0xFE9F:
		p.oam[address-0xFE00] = value
		p.sprites[(address-0xFE00)/4].Update(address, value)
	}
}

// HasFrame reports whether a frame has been rendered since the
// last call to ClearRefresh.
func (p *PPU) HasFrame() bool {
	return p.hasFrame
}

// ClearRefresh acknowledges the prepared frame.
func (p *PPU) ClearRefresh() {
	p.hasFrame = false
}

// Tick advances the PPU by the given number of T-cycles.
func (p *PPU) Tick(cycles uint8) {
	if !p.Controller.Enabled {
		return
	}

	p.currentCycle += uint16(cycles)

	for {
		switch p.Status.Mode {
		case lcd.OAM:
			if p.currentCycle < oamScanDots {
				return
			}
			p.currentCycle -= oamScanDots
			p.Status.Mode = lcd.VRAM
		case lcd.VRAM:
			if p.currentCycle < pixelTransferDots {
				return
			}
			p.currentCycle -= pixelTransferDots
			p.renderScanline()
			p.Status.Mode = lcd.HBlank
			if p.Status.HBlankInterrupt {
				p.irq.Request(interrupts.LCDFlag)
			}
		case lcd.HBlank:
			if p.currentCycle < hblankDots {
				return
			}
			p.currentCycle -= hblankDots
			p.currentLine++
			p.checkCoincidence()

			if p.currentLine == ScreenHeight {
				p.Status.Mode = lcd.VBlank
				p.irq.Request(interrupts.VBlankFlag)
				if p.Status.VBlankInterrupt {
					p.irq.Request(interrupts.LCDFlag)
				}
				p.hasFrame = true
			} else {
				p.Status.Mode = lcd.OAM
				if p.Status.OAMInterrupt {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
		case lcd.VBlank:
			if p.currentCycle < scanlineDots {
				return
			}
			p.currentCycle -= scanlineDots
			p.currentLine++

			if p.currentLine > 153 {
				p.currentLine = 0
				p.windowLine = 0
				p.Status.Mode = lcd.OAM
				if p.Status.OAMInterrupt {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
			p.checkCoincidence()
		}
	}
}

// checkCoincidence compares LY against LYC, raising a STAT
// interrupt when they match and the coincidence interrupt is
// enabled.
func (p *PPU) checkCoincidence() {
	p.Status.Coincidence = p.currentLine == p.lyCompare
	if p.Status.Coincidence && p.Status.CoincidenceInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// renderScanline draws the current line into PreparedFrame.
func (p *PPU) renderScanline() {
	for x := range p.scanline {
		p.scanline[x] = 0
	}

	if p.Controller.BackgroundEnabled {
		p.renderBackground()
		if p.Controller.WindowEnabled {
			p.renderWindow()
		}
	} else {
		// background disabled renders as colour 0
		for x := 0; x < ScreenWidth; x++ {
			p.PreparedFrame[p.currentLine][x] = p.backgroundPalette.GetColour(0)
		}
	}

	if p.Controller.SpriteEnabled {
		p.renderSprites()
	}
}

// fetchTilePixel returns the colour number of the pixel at x, y
// of the tile map starting at mapAddress, honouring the tile
// data addressing mode.
func (p *PPU) fetchTilePixel(mapAddress uint16, x, y uint8) uint8 {
	tileID := p.vRAM[mapAddress-0x8000+uint16(y/8)*32+uint16(x/8)]

	var tileAddress uint16
	if p.Controller.UsingSignedTileData() {
		tileAddress = uint16(0x1000 + int32(int8(tileID))*16)
	} else {
		tileAddress = uint16(tileID) * 16
	}
	tileAddress += uint16(y%8) * 2

	low := p.vRAM[tileAddress]
	high := p.vRAM[tileAddress+1]
	bit := 7 - x%8
	return (high>>bit&1)<<1 | low>>bit&1
}

func (p *PPU) renderBackground() {
	y := p.scrollY + p.currentLine
	for x := uint8(0); x < ScreenWidth; x++ {
		colourNum := p.fetchTilePixel(p.Controller.BackgroundTileMapAddress, p.scrollX+x, y)
		p.scanline[x] = colourNum
		p.PreparedFrame[p.currentLine][x] = p.backgroundPalette.GetColour(colourNum)
	}
}

func (p *PPU) renderWindow() {
	if p.currentLine < p.windowY || p.windowX > 166 {
		return
	}

	startX := int(p.windowX) - 7
	for x := 0; x < ScreenWidth; x++ {
		if x < startX {
			continue
		}
		colourNum := p.fetchTilePixel(p.Controller.WindowTileMapAddress, uint8(x-startX), p.windowLine)
		p.scanline[x] = colourNum
		p.PreparedFrame[p.currentLine][x] = p.backgroundPalette.GetColour(colourNum)
	}

	// the window keeps its own line counter, which only advances
	// on lines it was rendered on
	p.windowLine++
}

func (p *PPU) renderSprites() {
	height := p.Controller.SpriteSize

	// the hardware scans OAM in order and keeps the first 10
	// sprites on the line
	var visible []int
	for i := 0; i < len(p.sprites) && len(visible) < 10; i++ {
		top := int(p.sprites[i].Y) - 16
		if int(p.currentLine) >= top && int(p.currentLine) < top+int(height) {
			visible = append(visible, i)
		}
	}

	// lower X wins overlaps, with the OAM index breaking ties, so
	// draw in reverse priority order and let winners overwrite
	sort.Slice(visible, func(a, b int) bool {
		if p.sprites[visible[a]].X != p.sprites[visible[b]].X {
			return p.sprites[visible[a]].X > p.sprites[visible[b]].X
		}
		return visible[a] > visible[b]
	})

	for _, i := range visible {
		s := p.sprites[i]

		line := int(p.currentLine) - (int(s.Y) - 16)
		if s.flipY {
			line = int(height) - 1 - line
		}

		tileID := s.TileID
		if height == 16 {
			tileID &= 0xFE // bit 0 is ignored for 8x16 sprites
		}
		tileAddress := uint16(tileID)*16 + uint16(line)*2
		low := p.vRAM[tileAddress]
		high := p.vRAM[tileAddress+1]

		for px := 0; px < 8; px++ {
			x := int(s.X) - 8 + px
			if x < 0 || x >= ScreenWidth {
				continue
			}

			bit := 7 - px
			if s.flipX {
				bit = px
			}
			colourNum := (high>>bit&1)<<1 | low>>bit&1
			if colourNum == 0 {
				continue // colour 0 is transparent
			}
			if s.behindBG && p.scanline[x] != 0 {
				continue
			}

			pal := p.spritePalettes[0]
			if s.useSecondPalette {
				pal = p.spritePalettes[1]
			}
			p.PreparedFrame[p.currentLine][x] = pal.GetColour(colourNum)
		}
	}
}
