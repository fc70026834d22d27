package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opScreen  uint8 = 0x05
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg) // HUD backdrop

	// Targeted Modes
	BlendAlphaBg  = BlendMode(opAlpha | flagBg)  // globe body fill, keeps any glyph above
	BlendAddBg    = BlendMode(opAdd | flagBg)    // emissive glow on the body
	BlendScreenFg = BlendMode(opScreen | flagFg) // glyphs, overlaps brighten like additive lines
)

func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opReplace:
		return src
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	}
	return dst
}
