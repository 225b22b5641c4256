package dds

import (
	"fmt"
	"image"
	"io"

	"github.com/apex/log"
)

// Container is the payload layout following the header.
type Container int

const (
	// ContainerAuto detects EDDS block tables and falls back to plain DDS.
	ContainerAuto Container = iota
	// ContainerDDS is a plain payload: level 0 first, smaller levels after it.
	ContainerDDS
	// ContainerEDDS is an Enfusion block table with per-level bodies.
	ContainerEDDS
)

func (c Container) String() string {
	switch c {
	case ContainerAuto:
		return "auto"
	case ContainerDDS:
		return "dds"
	case ContainerEDDS:
		return "edds"
	default:
		return fmt.Sprintf("container(%d)", int(c))
	}
}

// ReadOptions configures surface reading.
type ReadOptions struct {
	// Logger receives diagnostics; nil uses log.Log.
	Logger log.Interface
	// Container forces a payload layout; zero value detects it.
	Container Container
}

func (o *ReadOptions) logger() log.Interface {
	if o == nil || o.Logger == nil {
		return log.Log
	}
	return o.Logger
}

func (o *ReadOptions) container() Container {
	if o == nil {
		return ContainerAuto
	}
	return o.Container
}

// Surface is one parsed DDS file. It is owned by a single caller:
// parse, optionally Decompress, then export or re-serialize.
type Surface struct {
	Header *Header
	// Payload is every byte after the header(s), kept verbatim for WriteTo.
	Payload []byte
	// Container is the resolved payload layout.
	Container Container

	decompressed   []byte
	isDecompressed bool
	logger         log.Interface
}

// Parse builds a surface from a complete file image. The surface keeps
// references into data.
func Parse(data []byte, opts *ReadOptions) (*Surface, error) {
	logger := opts.logger()

	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(len(data)); err != nil {
		logger.WithError(err).WithField("size", len(data)).Warn("invalid DDS header")
		return nil, err
	}

	s := &Surface{
		Header:    header,
		Payload:   data[header.Len():],
		Container: opts.container(),
		logger:    logger,
	}
	if s.Container == ContainerAuto {
		s.Container = ContainerDDS
		if isEDDSPayload(s.Payload) {
			s.Container = ContainerEDDS
		}
	}

	logger.WithFields(log.Fields{
		"op":        "parse",
		"width":     header.Width,
		"height":    header.Height,
		"format":    header.ResolvedFormat().String(),
		"dx10":      header.HasDX10(),
		"container": s.Container.String(),
		"offset":    header.Len(),
		"payload":   len(s.Payload),
	}).Debug("parsed surface")

	return s, nil
}

// Read parses a surface from r.
func Read(r io.Reader, opts *ReadOptions) (*Surface, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Parse(data, opts)
}

// Format returns the resolved pixel format.
func (s *Surface) Format() Format {
	return s.Header.ResolvedFormat()
}

// Bounds returns the level 0 rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.Header.Width), int(s.Header.Height))
}

// HasAlpha reports whether exported pixels may carry transparency.
// BC1 always may, through punch-through blocks.
func (s *Surface) HasAlpha() bool {
	if s.Format().IsBC1() {
		return true
	}
	pf, ok := s.Header.channelLayout()
	return ok && pf.Flags&PFAlphaPixels != 0 && pf.ABitMask != 0
}

// Level0 returns the stored bytes of mip level 0, unpacking EDDS blocks
// when needed. Smaller levels are ignored.
func (s *Surface) Level0() ([]byte, error) {
	if err := checkDimensions(s.Header.Width, s.Header.Height); err != nil {
		return nil, fmt.Errorf("%w: %dx%d", err, s.Header.Width, s.Header.Height)
	}

	size := level0Size(s.Header)
	if size < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.Format())
	}

	if s.Container == ContainerEDDS {
		count, err := s.Header.mipCount()
		if err != nil {
			return nil, err
		}
		return eddsLevel0(s.Payload, count, size)
	}

	if len(s.Payload) < size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrPayloadSize, size, len(s.Payload))
	}
	return s.Payload[:size], nil
}

// Decompress decodes BC1 level 0 into block-major RGBA and keeps it on the
// surface. Uncompressed surfaces need no decompression and are left as is.
func (s *Surface) Decompress() error {
	format := s.Format()
	if !format.IsCompressed() {
		return nil
	}
	if !format.IsBC1() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	level0, err := s.Level0()
	if err != nil {
		return err
	}
	out, err := DecompressBC1(level0)
	if err != nil {
		return err
	}

	s.decompressed = out
	s.isDecompressed = true

	s.log().WithFields(log.Fields{
		"op":     "decompress",
		"blocks": len(level0) / BC1BlockSize,
		"bytes":  len(out),
	}).Debug("decompressed BC1")

	return nil
}

// Decompressed reports whether Decompress has populated the decoded payload.
func (s *Surface) Decompressed() bool {
	return s.isDecompressed
}

// DecompressedPayload returns the block-major RGBA kept by Decompress.
func (s *Surface) DecompressedPayload() []byte {
	return s.decompressed
}

// Pixels returns level 0 as scanline-major RGBA, width*height*4 bytes.
// BC1 surfaces that were not decompressed are decoded without keeping
// the result.
func (s *Surface) Pixels() ([]byte, error) {
	width, height := int(s.Header.Width), int(s.Header.Height)

	format := s.Format()
	if !format.IsCompressed() {
		level0, err := s.Level0()
		if err != nil {
			return nil, err
		}
		pf, ok := s.Header.channelLayout()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
		return rgbaFromMasks(level0, width, height, pf)
	}
	if !format.IsBC1() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	blocks := s.decompressed
	if !s.isDecompressed {
		level0, err := s.Level0()
		if err != nil {
			return nil, err
		}
		if blocks, err = DecompressBC1(level0); err != nil {
			return nil, err
		}
	}

	paddedW, paddedH := blocksFor(width)*4, blocksFor(height)*4
	scan, err := ToScanlineOrder(blocks, paddedW)
	if err != nil {
		return nil, err
	}
	if paddedW == width && paddedH == height {
		return scan, nil
	}

	out := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		off := y * paddedW * 4
		out = append(out, scan[off:off+width*4]...)
	}
	return out, nil
}

// Rows returns level 0 as height rows of width*4 RGBA bytes.
func (s *Surface) Rows() ([][]byte, error) {
	pix, err := s.Pixels()
	if err != nil {
		return nil, err
	}
	return Rows(pix, int(s.Header.Width), int(s.Header.Height))
}

// Image returns level 0 as an image.
func (s *Surface) Image() (*image.NRGBA, error) {
	pix, err := s.Pixels()
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: int(s.Header.Width) * 4,
		Rect:   s.Bounds(),
	}, nil
}

// Export hands level 0 rows to enc.
func (s *Surface) Export(w io.Writer, enc RowEncoder) error {
	rows, err := s.Rows()
	if err != nil {
		return err
	}

	width, height := int(s.Header.Width), int(s.Header.Height)
	if err := enc.EncodeRows(w, width, height, s.HasAlpha(), rows); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	s.log().WithFields(log.Fields{
		"op":     "export",
		"width":  width,
		"height": height,
		"alpha":  s.HasAlpha(),
	}).Debug("exported surface")

	return nil
}

// WriteTo re-serializes header and payload unchanged.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	raw, err := s.Header.MarshalBinary()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, part := range [][]byte{raw, s.Payload} {
		n, err := w.Write(part)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return total, nil
}

// WriteEDDS writes level 0 as a single-level EDDS file. compress stores
// the body as an LZ4 chunk stream when that is smaller.
func (s *Surface) WriteEDDS(w io.Writer, compress bool) error {
	level0, err := s.Level0()
	if err != nil {
		return err
	}
	return writeEDDS(w, s.Header, level0, compress)
}

func (s *Surface) log() log.Interface {
	if s.logger == nil {
		return log.Log
	}
	return s.logger
}
