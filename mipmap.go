package dds

import (
	"fmt"
	"image"
)

// maxMipLevels bounds the declared mip count; 32 levels cover any
// dimension a 32-bit header can hold.
const maxMipLevels = 32

// blocksFor returns the number of 4-texel blocks covering n texels.
func blocksFor(n int) int {
	return (n + 3) / 4
}

// level0Size returns the payload length of mip level 0, or -1 when the
// format is not one the package decodes.
func level0Size(h *Header) int {
	width, height := int(h.Width), int(h.Height)
	format := h.ResolvedFormat()

	switch {
	case format.IsBC1():
		return blocksFor(width) * blocksFor(height) * BC1BlockSize
	case !format.IsCompressed():
		pf, ok := h.channelLayout()
		if !ok {
			return -1
		}
		switch pf.RGBBitCount {
		case 24, 32:
			return width * height * int(pf.RGBBitCount/8)
		}
	}

	return -1
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// mipCount returns the declared number of levels. Headers without
// DDSCAPS_MIPMAP hold one level.
func (h *Header) mipCount() (int, error) {
	if h.Caps&CapsMipmap == 0 || h.MipMapCount <= 1 {
		return 1, nil
	}
	if h.MipMapCount > maxMipLevels {
		return 0, fmt.Errorf("%w: %d levels, at most %d", ErrMipCount, h.MipMapCount, maxMipLevels)
	}
	return int(h.MipMapCount), nil
}

// MipLevels returns the dimensions of every level the header declares,
// largest first. A count above 32 yields ErrMipCount.
func (h *Header) MipLevels() ([]image.Point, error) {
	count, err := h.mipCount()
	if err != nil {
		return nil, err
	}

	levels := make([]image.Point, count)
	for i := range levels {
		levels[i] = image.Pt(mipDimension(int(h.Width), i), mipDimension(int(h.Height), i))
	}
	return levels, nil
}
