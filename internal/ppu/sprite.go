package ppu

// Sprite mirrors one 4-byte OAM entry.
type Sprite struct {
	X      uint8
	Y      uint8
	TileID uint8
	spriteAttributes
}

// spriteAttributes represents the attribute byte of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	behindBG bool
	// Bit 6 - Y flip (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number (0=OBP0, 1=OBP1)
	useSecondPalette bool
}

// Update refreshes the mirrored fields from an OAM write.
func (s *Sprite) Update(address uint16, value uint8) {
	switch address % 4 {
	case 0:
		s.Y = value
	case 1:
		s.X = value
	case 2:
		s.TileID = value
	case 3:
		s.behindBG = value&0x80 != 0
		s.flipY = value&0x40 != 0
		s.flipX = value&0x20 != 0
		s.useSecondPalette = value&0x10 != 0
	}
}
