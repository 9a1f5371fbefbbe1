package cpu

// Register is an 8-bit register.
type Register = uint8

// RegisterPair is a pair of 8-bit registers viewed as a single
// 16-bit register, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as a uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair from a uint16.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers contains the 8-bit registers, as well as the 16-bit
// register pairs. The pairs alias the 8-bit registers, so writing
// through either view is visible through the other.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}
