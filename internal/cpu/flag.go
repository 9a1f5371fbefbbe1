package cpu

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// setFlags sets all four flags in a single write. The lower nibble
// of F is always zero.
func (c *CPU) setFlags(Z, N, H, CY bool) {
	v := uint8(0)
	if Z {
		v |= 1 << FlagZero
	}
	if N {
		v |= 1 << FlagSubtract
	}
	if H {
		v |= 1 << FlagHalfCarry
	}
	if CY {
		v |= 1 << FlagCarry
	}
	c.F = v
}
