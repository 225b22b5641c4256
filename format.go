package dds

import "fmt"

// FourCC is a four-character code stored as a little-endian word.
type FourCC uint32

// Well-known FourCC codes.
const (
	FourCCDXT1 FourCC = 'D' | 'X'<<8 | 'T'<<16 | '1'<<24
	FourCCDXT3 FourCC = 'D' | 'X'<<8 | 'T'<<16 | '3'<<24
	FourCCDXT5 FourCC = 'D' | 'X'<<8 | 'T'<<16 | '5'<<24
	FourCCDX10 FourCC = 'D' | 'X'<<8 | '1'<<16 | '0'<<24
)

// DXGIFormat is a DXGI_FORMAT value from the DX10 header.
type DXGIFormat uint32

// DXGI formats the package treats specially.
const (
	DXGIFormatUnknown           DXGIFormat = 0
	DXGIFormatR8G8B8A8Unorm     DXGIFormat = 28
	DXGIFormatR8G8B8A8UnormSRGB DXGIFormat = 29
	DXGIFormatBC1Typeless       DXGIFormat = 70
	DXGIFormatBC1Unorm          DXGIFormat = 71
	DXGIFormatBC1UnormSRGB      DXGIFormat = 72
	DXGIFormatBC2Unorm          DXGIFormat = 74
	DXGIFormatBC3Unorm          DXGIFormat = 77
	DXGIFormatB8G8R8A8Unorm     DXGIFormat = 87
	DXGIFormatB8G8R8X8Unorm     DXGIFormat = 88
	DXGIFormatB8G8R8A8UnormSRGB DXGIFormat = 91
)

// dxgiMasks describes the DXGI formats stored as plain 32-bit pixels.
var dxgiMasks = map[DXGIFormat]PixelFormat{
	DXGIFormatR8G8B8A8Unorm:     rgba32Masks(0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000),
	DXGIFormatR8G8B8A8UnormSRGB: rgba32Masks(0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000),
	DXGIFormatB8G8R8A8Unorm:     rgba32Masks(0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
	DXGIFormatB8G8R8A8UnormSRGB: rgba32Masks(0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
	DXGIFormatB8G8R8X8Unorm:     rgba32Masks(0x00ff0000, 0x0000ff00, 0x000000ff, 0),
}

func rgba32Masks(r, g, b, a uint32) PixelFormat {
	pf := PixelFormat{
		Size:        PixelFormatSize,
		Flags:       PFRGB,
		RGBBitCount: 32,
		RBitMask:    r,
		GBitMask:    g,
		BBitMask:    b,
		ABitMask:    a,
	}
	if a != 0 {
		pf.Flags |= PFAlphaPixels
	}
	return pf
}

// MakeFourCC packs the first four bytes of s; shorter strings are zero padded.
func MakeFourCC(s string) FourCC {
	var b [4]byte
	copy(b[:], s)
	return FourCC(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

// String returns the four characters in file order.
func (c FourCC) String() string {
	return string([]byte{
		byte(c & 0xff),
		byte((c >> 8) & 0xff),
		byte((c >> 16) & 0xff),
		byte((c >> 24) & 0xff),
	})
}

func (f DXGIFormat) String() string {
	if name, ok := DXGIName(f); ok {
		return name
	}
	return fmt.Sprintf("DXGI_FORMAT(%d)", uint32(f))
}

// Format is the resolved pixel encoding of a surface: a FourCC from the
// pixel format, or a DXGI format when the DX10 header is present.
// The zero value means no FourCC (uncompressed masks describe the pixels).
type Format struct {
	FourCC   FourCC
	DXGI     DXGIFormat
	Extended bool
}

// IsBC1 reports whether the payload is BC1/DXT1 blocks.
func (f Format) IsBC1() bool {
	if f.Extended {
		switch f.DXGI {
		case DXGIFormatBC1Typeless, DXGIFormatBC1Unorm, DXGIFormatBC1UnormSRGB:
			return true
		}
		return false
	}
	return f.FourCC == FourCCDXT1
}

// IsCompressed reports whether the payload needs a decoder other than
// the channel mask conversion. DXGI formats of plain 8-bit channels are
// not compressed.
func (f Format) IsCompressed() bool {
	if f.Extended {
		_, plain := dxgiMasks[f.DXGI]
		return !plain
	}
	return f.FourCC != 0
}

// DXGIEquivalent maps the format onto the DXGI enumeration.
func (f Format) DXGIEquivalent() DXGIFormat {
	if f.Extended {
		return f.DXGI
	}
	return fourCCDXGI[f.FourCC]
}

func (f Format) String() string {
	switch {
	case f.Extended:
		return f.DXGI.String()
	case f.FourCC == 0:
		return "UNCOMPRESSED"
	}
	if name, ok := FourCCName(f.FourCC); ok {
		return name
	}
	return fmt.Sprintf("FOURCC(%q)", f.FourCC.String())
}
