package dds

import (
	"fmt"
	"math/bits"
)

// Header flags (DDSD_*).
const (
	FlagCaps        = 0x1
	FlagHeight      = 0x2
	FlagWidth       = 0x4
	FlagPitch       = 0x8
	FlagPixelFormat = 0x1000
	FlagMipMapCount = 0x20000
	FlagLinearSize  = 0x80000
	FlagDepth       = 0x800000
)

// Surface capability flags (DDSCAPS_* and DDSCAPS2_*).
const (
	CapsComplex = 0x8
	CapsTexture = 0x1000
	CapsMipmap  = 0x400000

	Caps2Cubemap          = 0x200
	Caps2CubemapPositiveX = 0x400
	Caps2CubemapNegativeX = 0x800
	Caps2CubemapPositiveY = 0x1000
	Caps2CubemapNegativeY = 0x2000
	Caps2CubemapPositiveZ = 0x4000
	Caps2CubemapNegativeZ = 0x8000
	Caps2Volume           = 0x200000
)

// Pixel format flags (DDPF_*).
const (
	PFAlphaPixels = 0x1
	PFAlpha       = 0x2
	PFFourCC      = 0x4
	PFRGB         = 0x40
	PFYUV         = 0x200
	PFLuminance   = 0x20000
)

// DX10 header misc flag.
const MiscTextureCube = 0x4

// AlphaMode is the DX10 miscFlags2 alpha mode. The values are an
// enumeration in the low 3 bits, not single-bit flags.
type AlphaMode uint32

const (
	AlphaModeUnknown AlphaMode = iota
	AlphaModeStraight
	AlphaModePremultiplied
	AlphaModeOpaque
	AlphaModeCustom
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaModeUnknown:
		return "DDS_ALPHA_MODE_UNKNOWN"
	case AlphaModeStraight:
		return "DDS_ALPHA_MODE_STRAIGHT"
	case AlphaModePremultiplied:
		return "DDS_ALPHA_MODE_PREMULTIPLIED"
	case AlphaModeOpaque:
		return "DDS_ALPHA_MODE_OPAQUE"
	case AlphaModeCustom:
		return "DDS_ALPHA_MODE_CUSTOM"
	default:
		return fmt.Sprintf("DDS_ALPHA_MODE(%d)", uint32(m))
	}
}

// Flag names a single bit of a field. Value is a power of two.
type Flag struct {
	Field string
	Name  string
	Value uint32
}

// Bit returns the bit index of the flag, counted from the least significant bit.
func (f Flag) Bit() int {
	return bits.TrailingZeros32(f.Value)
}

var headerFlags = []Flag{
	{"flags", "DDSD_CAPS", FlagCaps},
	{"flags", "DDSD_HEIGHT", FlagHeight},
	{"flags", "DDSD_WIDTH", FlagWidth},
	{"flags", "DDSD_PITCH", FlagPitch},
	{"flags", "DDSD_PIXELFORMAT", FlagPixelFormat},
	{"flags", "DDSD_MIPMAPCOUNT", FlagMipMapCount},
	{"flags", "DDSD_LINEARSIZE", FlagLinearSize},
	{"flags", "DDSD_DEPTH", FlagDepth},
	{"caps", "DDSCAPS_COMPLEX", CapsComplex},
	{"caps", "DDSCAPS_MIPMAP", CapsMipmap},
	{"caps", "DDSCAPS_TEXTURE", CapsTexture},
	{"caps2", "DDSCAPS2_CUBEMAP", Caps2Cubemap},
	{"caps2", "DDSCAPS2_CUBEMAP_POSITIVEX", Caps2CubemapPositiveX},
	{"caps2", "DDSCAPS2_CUBEMAP_NEGATIVEX", Caps2CubemapNegativeX},
	{"caps2", "DDSCAPS2_CUBEMAP_POSITIVEY", Caps2CubemapPositiveY},
	{"caps2", "DDSCAPS2_CUBEMAP_NEGATIVEY", Caps2CubemapNegativeY},
	{"caps2", "DDSCAPS2_CUBEMAP_POSITIVEZ", Caps2CubemapPositiveZ},
	{"caps2", "DDSCAPS2_CUBEMAP_NEGATIVEZ", Caps2CubemapNegativeZ},
	{"caps2", "DDSCAPS2_VOLUME", Caps2Volume},
}

var pixelFormatFlags = []Flag{
	{"flags", "DDPF_ALPHAPIXELS", PFAlphaPixels},
	{"flags", "DDPF_ALPHA", PFAlpha},
	{"flags", "DDPF_FOURCC", PFFourCC},
	{"flags", "DDPF_RGB", PFRGB},
	{"flags", "DDPF_YUV", PFYUV},
	{"flags", "DDPF_LUMINANCE", PFLuminance},
}

var dx10Flags = []Flag{
	{"miscFlag", "DDS_RESOURCE_MISC_TEXTURECUBE", MiscTextureCube},
}

// flagBit reads one named flag out of a decoded record.
func flagBit(s Schema, flags []Flag, rec Record, field, name string) (uint8, error) {
	f, _, ok := s.Lookup(field)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Name, field)
	}

	for _, fl := range flags {
		if fl.Field != field || fl.Name != name {
			continue
		}
		bit := fl.Bit()
		if bit >= f.Bits() {
			return 0, fmt.Errorf("%w: %s.%s: %s bit %d beyond %d-bit field", ErrSchema, s.Name, field, name, bit, f.Bits())
		}
		return uint8((rec.Word(field) >> bit) & 1), nil
	}

	return 0, fmt.Errorf("%w: %s.%s: %q", ErrUnknownFlag, s.Name, field, name)
}

// flagsOf lists the flags declared for field, in table order.
func flagsOf(flags []Flag, field string) []Flag {
	var out []Flag
	for _, fl := range flags {
		if fl.Field == field {
			out = append(out, fl)
		}
	}
	return out
}
