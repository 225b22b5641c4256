package dds

import (
	"fmt"
	"math/bits"
)

// channel extracts one masked component and scales it to 8 bits.
type channel struct {
	mask  uint32
	shift int
	max   uint32
}

func newChannel(mask uint32) channel {
	if mask == 0 {
		return channel{}
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	return channel{mask: mask, shift: shift, max: 1<<width - 1}
}

func (c channel) value(px uint32, fallback uint8) uint8 {
	if c.mask == 0 {
		return fallback
	}
	v := (px & c.mask) >> c.shift
	if c.max == 0xff {
		return uint8(v)
	}
	return uint8((uint64(v)*255 + uint64(c.max)/2) / uint64(c.max))
}

// channelLayout returns the masks describing uncompressed pixels: the
// pixel format itself, or the layout implied by a plain DXGI format.
func (h *Header) channelLayout() (*PixelFormat, bool) {
	format := h.ResolvedFormat()
	if format.Extended {
		pf, ok := dxgiMasks[format.DXGI]
		return &pf, ok
	}
	if format.FourCC != 0 || h.PixelFormat.Flags&PFRGB == 0 {
		return nil, false
	}
	return &h.PixelFormat, true
}

// rgbaFromMasks converts uncompressed 24/32-bit pixels, already in
// scanline order, to RGBA using the pixel format channel masks.
func rgbaFromMasks(data []byte, width, height int, pf *PixelFormat) ([]byte, error) {
	bpp := int(pf.RGBBitCount / 8)
	if bpp != 3 && bpp != 4 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, pf.RGBBitCount)
	}
	if len(data) < width*height*bpp {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrPayloadSize, width*height*bpp, len(data))
	}

	r, g, b := newChannel(pf.RBitMask), newChannel(pf.GBitMask), newChannel(pf.BBitMask)
	a := channel{}
	if pf.Flags&PFAlphaPixels != 0 {
		a = newChannel(pf.ABitMask)
	}

	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		src := data[i*bpp : i*bpp+bpp]
		px := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
		if bpp == 4 {
			px |= uint32(src[3]) << 24
		}
		o := i * 4
		out[o+0] = r.value(px, 0)
		out[o+1] = g.value(px, 0)
		out[o+2] = b.value(px, 0)
		out[o+3] = a.value(px, 0xff)
	}

	return out, nil
}
