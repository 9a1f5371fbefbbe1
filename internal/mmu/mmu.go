// Package mmu provides a memory management unit for the Game Boy.
// The MMU is unaware of the other components, and handles all the
// memory reads and writes via the IOBus interface.
package mmu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the
// other components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. It handles
// all memory reads and writes to the Game Boy's 64kB address
// space, and delegates to the other components through the IOBus
// interface. VRAM and OAM accesses are never blocked by the PPU
// mode, as the PPU renders whole scanlines at once.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB, banked)
	// 0xA000 - 0xBFFF - external RAM (8kB, banked)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - video RAM (8kB)
	// 0xFE00 - 0xFE9F - sprite attribute table (160B)
	Video IOBus

	// 0xC000 - 0xDFFF - work RAM (8kB)
	// 0xE000 - 0xFDFF - echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF7F & 0xFFFF - hardware registers
	registers *types.Registry

	// 0xFF80 - 0xFFFE - zero page RAM (127B)
	zRAM [0x7F]uint8

	dma uint8

	Log log.Logger
}

// NewMMU returns a new MMU mapping the given cartridge and
// registry. The video component is attached separately with
// AttachVideo, as the PPU is constructed against the same
// registry.
func NewMMU(cart cartridge.Cartridge, registry *types.Registry, logger log.Logger) *MMU {
	m := &MMU{
		Cart:      cart,
		wRAM:      NewWRAM(),
		registers: registry,
		Log:       logger,
	}
	m.init()

	return m
}

func (m *MMU) init() {
	// setup registers
	m.registers.RegisterHardware(
		types.DMA,
		func(v uint8) {
			m.dma = v
			m.doDMA(uint16(v) << 8)
		}, func() uint8 {
			return m.dma
		},
	)

	// setup raw memory
	addresses := []types.Address{
		{Read: m.readCart, Write: m.writeCart},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: readOffset(m.readZRAM, 0xFF80), Write: writeOffset(m.writeZRAM, 0xFF80)},
		{Read: m.registers.Read, Write: m.registers.Write},
		{Read: func(address uint16) uint8 {
			return 0xFF
		}, Write: func(address uint16, value uint8) {}},
	}

	// 0x0000 - 0x7FFF - ROM (32kB)
	for i := 0x0000; i < 0x8000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xA000 - 0xBFFF - external RAM (8kB)
	for i := 0xA000; i < 0xC000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xC000 - 0xFDFF - work RAM + echo (15.5kB)
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xFEA0 - 0xFEFF - unusable memory (96B)
	for i := 0xFEA0; i < 0xFF00; i++ {
		m.raw[i] = &addresses[4]
	}

	// 0xFF00 - 0xFF7F - I/O (128B)
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = &addresses[3]
	}

	// 0xFF80 - 0xFFFE - zero page RAM (127B)
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = &addresses[2]
	}

	// 0xFFFF - interrupt enable register
	m.raw[0xFFFF] = &addresses[3]
}

// AttachVideo attaches the video component to the MMU, mapping
// VRAM and OAM.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video

	address := &types.Address{Read: m.Video.Read, Write: m.Video.Write}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = address
	}

	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = address
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) readCart(address uint16) uint8 {
	return m.Cart.Read(address)
}

func (m *MMU) writeCart(address uint16, value uint8) {
	m.Cart.Write(address, value)
}

func (m *MMU) readZRAM(address uint16) uint8 {
	return m.zRAM[address]
}

func (m *MMU) writeZRAM(address uint16, value uint8) {
	m.zRAM[address] = value
}

// doDMA copies 160 bytes from the source address into OAM. The
// copy happens at write time; the 160 cycle bus occupancy of the
// hardware transfer is not modelled.
func (m *MMU) doDMA(source uint16) {
	m.Log.Debugf("dma transfer from 0x%04X", source)
	for i := uint16(0); i < 0xA0; i++ {
		m.Video.Write(0xFE00+i, m.Read(source+i))
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}
