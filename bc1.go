package dds

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

const (
	// BC1BlockSize is the byte length of one compressed 4x4 block.
	BC1BlockSize = 8
	// TexelsPerBlock is the number of texels one block covers.
	TexelsPerBlock = 16
	// DecodedBlockSize is the byte length of one decoded block (RGBA per texel).
	DecodedBlockSize = TexelsPerBlock * 4
)

// RGB565 is a packed 16-bit color: red in bits 15..11, green in 10..5,
// blue in 4..0. The word is stored little-endian in the block.
type RGB565 uint16

// RGBA expands the packed color to 8 bits per component with
// floor(v / 2^bits * 2^8), which is a left shift. Alpha is opaque.
func (c RGB565) RGBA() color.RGBA {
	r := uint8((c >> 11) & 0x1f)
	g := uint8((c >> 5) & 0x3f)
	b := uint8(c & 0x1f)
	return color.RGBA{R: r << 3, G: g << 2, B: b << 3, A: 0xff}
}

// PackRGB565 packs the high bits of an 8-bit color with the same layout RGBA reads.
func PackRGB565(c color.RGBA) RGB565 {
	return RGB565(uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3))
}

// BC1Palette builds the four-entry color table of a block.
// When c0 <= c1 (compared as packed words) the block is in punch-through
// mode: entry 2 is the midpoint and entry 3 is transparent black.
// Otherwise entries 2 and 3 sit at 1/3 and 2/3 between the endpoints.
func BC1Palette(c0, c1 RGB565) [4]color.RGBA {
	p0, p1 := c0.RGBA(), c1.RGBA()

	var p [4]color.RGBA
	p[0], p[1] = p0, p1
	if c0 <= c1 {
		p[2] = color.RGBA{
			R: half(p0.R, p1.R),
			G: half(p0.G, p1.G),
			B: half(p0.B, p1.B),
			A: 0xff,
		}
		p[3] = color.RGBA{}
		return p
	}

	p[2] = color.RGBA{
		R: third(p0.R, p1.R),
		G: third(p0.G, p1.G),
		B: third(p0.B, p1.B),
		A: 0xff,
	}
	p[3] = color.RGBA{
		R: third(p1.R, p0.R),
		G: third(p1.G, p0.G),
		B: third(p1.B, p0.B),
		A: 0xff,
	}
	return p
}

// half is round(0.5*a + 0.5*b).
func half(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

// third is round(2/3*a + 1/3*b). 2a+b is never a half-integer multiple of 3.
func third(a, b uint8) uint8 {
	return uint8((2*uint16(a) + uint16(b) + 1) / 3)
}

// DecodeBC1Block decodes one 8-byte block into its 16 texels in
// row-major order, texel 0 at the top-left.
func DecodeBC1Block(block []byte) ([TexelsPerBlock]color.RGBA, error) {
	var out [TexelsPerBlock]color.RGBA
	if len(block) != BC1BlockSize {
		return out, fmt.Errorf("%w: block is %d bytes, want %d", ErrTruncatedBlock, len(block), BC1BlockSize)
	}

	c0 := RGB565(binary.LittleEndian.Uint16(block[0:2]))
	c1 := RGB565(binary.LittleEndian.Uint16(block[2:4]))
	indices := binary.LittleEndian.Uint32(block[4:8])

	palette := BC1Palette(c0, c1)
	for i := range out {
		idx := int((indices >> (2 * i)) & 0x3)
		if idx >= len(palette) {
			return out, fmt.Errorf("%w: texel %d index %d", ErrIndexRange, i, idx)
		}
		out[i] = palette[idx]
	}

	return out, nil
}

// DecompressBC1 decodes consecutive BC1 blocks into block-major RGBA:
// 64 bytes per block, texels in row-major order within the block.
// The input must hold whole blocks; nothing is returned otherwise.
func DecompressBC1(data []byte) ([]byte, error) {
	if len(data)%BC1BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedBlock, len(data), BC1BlockSize)
	}

	blocks := len(data) / BC1BlockSize
	out := make([]byte, 0, blocks*DecodedBlockSize)
	for b := 0; b < blocks; b++ {
		off := b * BC1BlockSize
		texels, err := DecodeBC1Block(data[off : off+BC1BlockSize])
		if err != nil {
			return nil, fmt.Errorf("block %d at offset %d: %w", b, off, err)
		}
		for _, c := range texels {
			out = append(out, c.R, c.G, c.B, c.A)
		}
	}

	return out, nil
}
