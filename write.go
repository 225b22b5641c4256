package dds

import (
	"fmt"
	"image"

	"github.com/apex/log"
	"github.com/woozymasta/bcn"
)

// EncodeOptions configures BC1 authoring. Nil uses defaults.
type EncodeOptions struct {
	// DX10 writes a DX10 header with DXGI_FORMAT_BC1_UNORM instead of the DXT1 FourCC.
	DX10 bool
	// BCN is passed to the block encoder (quality, workers).
	BCN *bcn.EncodeOptions
	// Logger receives diagnostics; nil uses log.Log.
	Logger log.Interface
}

// resourceDimensionTexture2D is D3D10_RESOURCE_DIMENSION_TEXTURE2D.
const resourceDimensionTexture2D = 3

// Encode compresses img into a single-level BC1 surface.
func Encode(img image.Image, opts *EncodeOptions) (*Surface, error) {
	if opts == nil {
		opts = &EncodeOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Log
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	w32, err := u32FromInt(bounds.Dx())
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(bounds.Dy())
	if err != nil {
		return nil, err
	}
	if err := checkDimensions(w32, h32); err != nil {
		return nil, fmt.Errorf("%w: %dx%d", err, w32, h32)
	}

	data, _, _, err := bcn.EncodeImageWithOptions(img, bcn.FormatDXT1, opts.BCN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeImage, err)
	}

	header := NewBC1Header(w32, h32, opts.DX10)
	if want := level0Size(header); len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes of blocks, got %d", ErrEncodeImage, want, len(data))
	}

	logger.WithFields(log.Fields{
		"op":     "encode",
		"width":  w32,
		"height": h32,
		"format": header.ResolvedFormat().String(),
		"bytes":  len(data),
	}).Debug("encoded surface")

	return &Surface{
		Header:    header,
		Payload:   data,
		Container: ContainerDDS,
		logger:    logger,
	}, nil
}

// NewBC1Header returns a single-level BC1 header. dx10 announces the
// format through a DX10 header instead of the DXT1 FourCC.
func NewBC1Header(width, height uint32, dx10 bool) *Header {
	linear := uint32(blocksFor(int(width)) * blocksFor(int(height)) * BC1BlockSize)

	h := &Header{
		Magic:             Magic,
		Size:              HeaderSize,
		Flags:             FlagCaps | FlagHeight | FlagWidth | FlagPixelFormat | FlagLinearSize,
		Height:            height,
		Width:             width,
		PitchOrLinearSize: linear,
		Depth:             1,
		MipMapCount:       1,
		Caps:              CapsTexture,
	}
	h.PixelFormat.Size = PixelFormatSize
	h.PixelFormat.Flags = PFFourCC
	h.PixelFormat.FourCC = FourCCDXT1

	if dx10 {
		h.PixelFormat.FourCC = FourCCDX10
		h.DX10 = &HeaderDX10{
			DXGIFormat:        DXGIFormatBC1Unorm,
			ResourceDimension: resourceDimensionTexture2D,
			ArraySize:         1,
		}
	}

	return h
}
