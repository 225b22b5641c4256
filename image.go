package dds

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("dds", "DDS ", Decode, DecodeConfig)
}

// Decode reads a DDS file and returns level 0 as *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	s, err := Read(r, nil)
	if err != nil {
		return nil, err
	}
	return s.Image()
}

// DecodeConfig reads only the header regions.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// readHeader reads the header and, when announced, the DX10 header
// without touching the payload.
func readHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, MinFileSizeDX10)
	if _, err := io.ReadFull(r, buf[:MinFileSize]); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTooShort, headerSchema.Name, err)
	}

	n := MinFileSize
	if announcesDX10(buf[:MinFileSize]) {
		if _, err := io.ReadFull(r, buf[MinFileSize:]); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTooShort, dx10Schema.Name, err)
		}
		n = MinFileSizeDX10
	}

	h, err := ParseHeader(buf[:n])
	if err != nil {
		return nil, err
	}
	if err := h.Validate(n); err != nil {
		return nil, err
	}
	return h, nil
}

// announcesDX10 checks the pixel format of a bare 128-byte header.
func announcesDX10(buf []byte) bool {
	start := headerBeforeSchema.Size()
	rec, err := pixelFormatSchema.Decode(buf[start : start+pixelFormatSchema.Size()])
	if err != nil {
		return false
	}
	pf := pixelFormatFromRecord(rec)
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCDX10
}
