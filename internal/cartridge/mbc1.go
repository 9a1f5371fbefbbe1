package cartridge

// MemoryBankedCartridge1 represents an MBC1 cartridge. This
// cartridge type supports up to 2MB of ROM in 16kB banks and up
// to 32kB of external RAM in 8kB banks.
type MemoryBankedCartridge1 struct {
	rom []byte
	ram []byte

	// bank select registers: the 5-bit lower and 2-bit upper
	// halves written at 0x2000-0x3FFF and 0x4000-0x5FFF
	lowerBank uint8
	upperBank uint8

	ramMode    bool
	ramEnabled bool

	header Header
}

// newMemoryBankedCartridge1 returns a new MemoryBankedCartridge1.
func newMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:       rom,
		ram:       make([]byte, header.RAMSize),
		lowerBank: 1,
		header:    header,
	}
}

func (m *MemoryBankedCartridge1) Header() Header {
	return m.header
}

func (m *MemoryBankedCartridge1) Title() string {
	return m.header.Title
}

// romBank composes the selected ROM bank from the two bank
// registers. In RAM banking mode the upper register selects the
// RAM bank instead, leaving only the lower 5 bits for ROM. Banks
// 0x00, 0x20, 0x40 and 0x60 are not selectable and map to the
// following bank, and the result is masked by the bank count.
func (m *MemoryBankedCartridge1) romBank() uint32 {
	bank := uint32(m.lowerBank)
	if !m.ramMode {
		bank |= uint32(m.upperBank) << 5
	}
	switch bank {
	case 0x00, 0x20, 0x40, 0x60:
		bank++
	}
	return bank & uint32(len(m.rom)/0x4000-1)
}

// ramBank returns the selected RAM bank; the upper bank register
// only applies in RAM banking mode.
func (m *MemoryBankedCartridge1) ramBank() uint32 {
	if m.ramMode {
		return uint32(m.upperBank)
	}
	return 0
}

// Read returns the value from the cartridge's ROM or RAM,
// depending on the banks selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // first bank is always fixed
	case address < 0x8000:
		return m.rom[uint32(address-0x4000)+m.romBank()*0x4000] // switchable bank
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			return m.ram[(uint32(address-0xA000)+m.ramBank()*0x2000)%uint32(len(m.ram))]
		}
	}

	return 0xFF
}

// Write updates the bank select registers, or writes to the
// selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		m.lowerBank = value & 0x1F
	case address < 0x6000:
		m.upperBank = value & 0x03
	case address < 0x8000:
		m.ramMode = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[(uint32(address-0xA000)+m.ramBank()*0x2000)%uint32(len(m.ram))] = value
		}
	}
}
