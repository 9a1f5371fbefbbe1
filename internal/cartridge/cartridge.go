// Package cartridge provides a Cartridge interface for the DMG.
// The cartridge holds the game ROM and any external RAM, and maps
// them into the 0x0000-0x7FFF and 0xA000-0xBFFF windows of the
// address space.
package cartridge

import "fmt"

// Cartridge represents a basic game cartridge.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
	Title() string
}

// NewCartridge parses the header of the given ROM image, verifies
// it, and returns the Cartridge implementation for its mapper. An
// error is returned for images too small to hold a header, images
// whose header checksum does not match, and mapper types that are
// not supported.
func NewCartridge(rom []byte) (Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("cartridge: image of %d bytes is too small to hold a header", len(rom))
	}

	header := parseHeader(rom[0x100:0x150])
	if sum := checksum(rom); sum != header.HeaderChecksum {
		return nil, fmt.Errorf("cartridge: header checksum mismatch: computed 0x%02X, header declares 0x%02X", sum, header.HeaderChecksum)
	}
	if uint(len(rom)) < header.ROMSize {
		return nil, fmt.Errorf("cartridge: image of %d bytes is smaller than the %d bytes its header declares", len(rom), header.ROMSize)
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return &baseCartridge{
			rom:    rom,
			header: header,
		}, nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMemoryBankedCartridge1(rom, header), nil
	}

	return nil, fmt.Errorf("cartridge: unsupported cartridge type 0x%02X", uint8(header.CartridgeType))
}

// baseCartridge is a cartridge with no mapper; the 32kB ROM is
// mapped directly and writes are ignored.
type baseCartridge struct {
	rom    []byte
	header Header
}

func (c *baseCartridge) Header() Header {
	return c.header
}

func (c *baseCartridge) Title() string {
	return c.header.Title
}

func (c *baseCartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

func (c *baseCartridge) Write(address uint16, value uint8) {}
