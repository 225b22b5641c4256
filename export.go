package dds

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/dblezek/tga"
	"golang.org/x/image/bmp"
)

// RowEncoder serializes RGBA rows to a raster file format. Each row is
// width*4 bytes in R, G, B, A order; there are height rows.
type RowEncoder interface {
	EncodeRows(w io.Writer, width, height int, hasAlpha bool, rows [][]byte) error
}

// ImageEncoderFunc adapts an image encoder such as png.Encode to RowEncoder.
type ImageEncoderFunc func(w io.Writer, m image.Image) error

// EncodeRows implements RowEncoder.
func (f ImageEncoderFunc) EncodeRows(w io.Writer, width, height int, hasAlpha bool, rows [][]byte) error {
	return f(w, imageFromRows(width, height, hasAlpha, rows))
}

// Raster encoders for Export.
var (
	PNGEncoder RowEncoder = ImageEncoderFunc(png.Encode)
	BMPEncoder RowEncoder = ImageEncoderFunc(bmp.Encode)
	TGAEncoder RowEncoder = ImageEncoderFunc(tga.Encode)
)

// EncoderFor returns the encoder for a file name or bare extension
// ("out.png", ".bmp", "tga").
func EncoderFor(name string) (RowEncoder, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = strings.ToLower(strings.TrimPrefix(name, "."))
	}

	switch ext {
	case "png":
		return PNGEncoder, true
	case "bmp":
		return BMPEncoder, true
	case "tga":
		return TGAEncoder, true
	default:
		return nil, false
	}
}

// imageFromRows copies rows into an image. Without alpha the rows are
// forced opaque so encoders pick an RGB layout.
func imageFromRows(width, height int, hasAlpha bool, rows [][]byte) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height && y < len(rows); y++ {
		line := img.Pix[y*img.Stride : y*img.Stride+width*4]
		copy(line, rows[y])
		if !hasAlpha {
			for x := 3; x < len(line); x += 4 {
				line[x] = 0xff
			}
		}
	}
	return img
}
