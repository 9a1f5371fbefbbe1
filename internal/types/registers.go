package types

import "fmt"

// Registry holds the hardware registers of a single emulated
// machine, indexed by the register address ANDed with 0x007F.
// Each component registers its own IO with RegisterHardware
// during construction, so several machines can coexist without
// sharing register state.
type Registry struct {
	registers [0x80]*HardwareRegister
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterHardware registers a hardware register with the given
// address and write/read functions. Either function may be nil,
// in which case the register is read-only or write-only,
// respectively, and the missing direction panics if exercised
// (use NoRead/NoWrite for registers that legitimately ignore a
// direction).
func (r *Registry) RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	r.registers[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Read returns the value of the hardware register for the given
// address. Unmapped registers read 0xFF.
func (r *Registry) Read(address uint16) uint8 {
	// the registry is indexed by address & 0x007F, which puts the
	// IE register (0xFFFF) at index 0x7F; 0xFF7F itself is unmapped
	if address == 0xFF7F {
		return 0xFF
	}
	if reg := r.registers[address&0x007F]; reg != nil {
		return reg.Read()
	}
	return 0xFF
}

// Write writes the given value to the hardware register for the
// given address. Writes to unmapped registers are ignored.
func (r *Registry) Write(address uint16, value uint8) {
	if address == 0xFF7F {
		return
	}
	if reg := r.registers[address&0x007F]; reg != nil {
		reg.Write(value)
	}
}

// HardwareRegister represents a single hardware register of the
// Game Boy, used to control and read the state of the hardware.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

func (h *HardwareRegister) Read() uint8 {
	if h.read == nil {
		panic(fmt.Sprintf("hardware: no read function for address 0x%04X", h.address))
	}
	return h.read()
}

func (h *HardwareRegister) Write(value uint8) {
	if h.write == nil {
		panic(fmt.Sprintf("hardware: no write function for address 0x%04X", h.address))
	}
	h.write(value)
}

// NoRead is a read function for hardware registers that are not
// readable; it always returns 0xFF.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is a write function for hardware registers that are not
// writable; it does nothing.
func NoWrite(v uint8) {
	// do nothing
}
