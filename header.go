package dds

import (
	"errors"
	"fmt"
)

const (
	// Magic is "DDS " read as a little-endian word.
	Magic = 0x20534444
	// HeaderSize is the value of the header size field (magic excluded).
	HeaderSize = 124
	// PixelFormatSize is the value of the pixel format size field.
	PixelFormatSize = 32
	// DX10HeaderSize is the byte length of the extended header.
	DX10HeaderSize = 20
	// MinFileSize is magic plus header.
	MinFileSize = 4 + HeaderSize
	// MinFileSizeDX10 is magic plus header plus extended header.
	MinFileSizeDX10 = MinFileSize + DX10HeaderSize
)

const dword = 4

var headerBeforeSchema = Schema{
	Name: "DDS_HEADER",
	Fields: []Field{
		{Name: "magic", Size: dword},
		{Name: "size", Size: dword},
		{Name: "flags", Size: dword},
		{Name: "height", Size: dword},
		{Name: "width", Size: dword},
		{Name: "pitchOrLinearSize", Size: dword},
		{Name: "depth", Size: dword},
		{Name: "mipMapCount", Size: dword},
		{Name: "reserved1", Size: dword, Count: 11},
	},
}

var pixelFormatSchema = Schema{
	Name: "DDS_PIXELFORMAT",
	Fields: []Field{
		{Name: "size", Size: dword},
		{Name: "flags", Size: dword},
		{Name: "fourCC", Size: dword},
		{Name: "rgbBitCount", Size: dword},
		{Name: "rBitMask", Size: dword},
		{Name: "gBitMask", Size: dword},
		{Name: "bBitMask", Size: dword},
		{Name: "aBitMask", Size: dword},
	},
}

var headerAfterSchema = Schema{
	Name: "DDS_HEADER",
	Fields: []Field{
		{Name: "caps", Size: dword},
		{Name: "caps2", Size: dword},
		{Name: "caps3", Size: dword},
		{Name: "caps4", Size: dword},
		{Name: "reserved2", Size: dword},
	},
}

// headerSchema is the header without the pixel format block, used for
// field and flag lookups across both regions.
var headerSchema = Schema{
	Name:   "DDS_HEADER",
	Fields: append(append([]Field{}, headerBeforeSchema.Fields...), headerAfterSchema.Fields...),
}

var dx10Schema = Schema{
	Name: "DDS_HEADER_DXT10",
	Fields: []Field{
		{Name: "format", Size: dword},
		{Name: "resourceDimension", Size: dword},
		{Name: "miscFlag", Size: dword},
		{Name: "arraySize", Size: dword},
		{Name: "miscFlags2", Size: dword},
	},
}

// PixelFormat is the 32-byte DDS_PIXELFORMAT block.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      FourCC
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// HeaderDX10 is the optional extended header.
type HeaderDX10 struct {
	DXGIFormat        DXGIFormat
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// Header is the DDS header including magic, with its pixel format and,
// when the pixel format announces it, the DX10 header.
type Header struct {
	Magic             uint32
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32

	// DX10 is set iff HasDX10 reports true.
	DX10 *HeaderDX10
}

// ParseHeader decodes the header regions at the start of data.
// Only the lengths are checked here; see Validate for content checks.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < MinFileSize {
		return nil, fmt.Errorf("%w: %s: need %d bytes, have %d", ErrTooShort, headerSchema.Name, MinFileSize, len(data))
	}

	pfStart := headerBeforeSchema.Size()
	pfEnd := pfStart + pixelFormatSchema.Size()

	before, err := headerBeforeSchema.Decode(data[:pfStart])
	if err != nil {
		return nil, err
	}
	pf, err := pixelFormatSchema.Decode(data[pfStart:pfEnd])
	if err != nil {
		return nil, err
	}
	after, err := headerAfterSchema.Decode(data[pfEnd:MinFileSize])
	if err != nil {
		return nil, err
	}

	h := headerFromRecords(before, after)
	h.PixelFormat = pixelFormatFromRecord(pf)

	if h.HasDX10() {
		if len(data) < MinFileSizeDX10 {
			return nil, fmt.Errorf("%w: %s: need %d bytes, have %d", ErrTooShort, dx10Schema.Name, MinFileSizeDX10, len(data))
		}
		ext, err := dx10Schema.Decode(data[MinFileSize:MinFileSizeDX10])
		if err != nil {
			return nil, err
		}
		h.DX10 = dx10FromRecord(ext)
	}

	return h, nil
}

// Len returns the number of bytes the header occupies on disk.
func (h *Header) Len() int {
	if h.HasDX10() {
		return MinFileSizeDX10
	}
	return MinFileSize
}

// HasDX10 reports whether the pixel format announces the DX10 header:
// DDPF_FOURCC set and FourCC "DX10".
func (h *Header) HasDX10() bool {
	return h.PixelFormat.Flags&PFFourCC != 0 && h.PixelFormat.FourCC == FourCCDX10
}

// ResolvedFormat returns the real pixel encoding. With a DX10 header the
// outer FourCC is only a marker and the DXGI format is returned instead.
func (h *Header) ResolvedFormat() Format {
	if h.HasDX10() && h.DX10 != nil {
		return Format{DXGI: h.DX10.DXGIFormat, Extended: true}
	}
	if h.PixelFormat.Flags&PFFourCC != 0 {
		return Format{FourCC: h.PixelFormat.FourCC}
	}
	return Format{}
}

// Validate runs every structural check and reports all violations.
// fileSize is the total length of the file the header was read from.
func (h *Header) Validate(fileSize int) error {
	var errs []error

	minSize := MinFileSize
	if h.HasDX10() {
		minSize = MinFileSizeDX10
	}
	if fileSize < minSize {
		errs = append(errs, fmt.Errorf("%w: file size: expected >= %d, got %d", ErrTooShort, minSize, fileSize))
	}
	if h.Magic != Magic {
		errs = append(errs, fmt.Errorf("%w: %s.magic: expected %q, got %q", ErrBadMagic, headerSchema.Name, FourCC(Magic), FourCC(h.Magic)))
	}
	if h.Size != HeaderSize {
		errs = append(errs, fmt.Errorf("%w: %s.size: expected %d, got %d", ErrHeaderSize, headerSchema.Name, HeaderSize, h.Size))
	}
	if h.PixelFormat.Size != PixelFormatSize {
		errs = append(errs, fmt.Errorf("%w: %s.size: expected %d, got %d", ErrPixelFormatSize, pixelFormatSchema.Name, PixelFormatSize, h.PixelFormat.Size))
	}

	return errors.Join(errs...)
}

// Flag returns one named flag bit of a header field, e.g. ("caps", "DDSCAPS_MIPMAP").
func (h *Header) Flag(field, name string) (uint8, error) {
	return flagBit(headerSchema, headerFlags, h.record(), field, name)
}

// Flag returns one named flag bit of a pixel format field.
func (pf *PixelFormat) Flag(field, name string) (uint8, error) {
	return flagBit(pixelFormatSchema, pixelFormatFlags, pf.record(), field, name)
}

// Flag returns one named flag bit of a DX10 header field.
func (x *HeaderDX10) Flag(field, name string) (uint8, error) {
	return flagBit(dx10Schema, dx10Flags, x.record(), field, name)
}

// AlphaMode returns the alpha mode carried in miscFlags2.
func (x *HeaderDX10) AlphaMode() AlphaMode {
	return AlphaMode(x.MiscFlags2 & 0x7)
}

// MarshalBinary serializes the header (and DX10 header) in on-disk layout.
func (h *Header) MarshalBinary() ([]byte, error) {
	if h.HasDX10() && h.DX10 == nil {
		return nil, fmt.Errorf("%w: %s: DX10 FourCC without extended header", ErrFormat, pixelFormatSchema.Name)
	}

	before, err := headerBeforeSchema.Encode(h.beforeRecord())
	if err != nil {
		return nil, err
	}
	pf, err := pixelFormatSchema.Encode(h.PixelFormat.record())
	if err != nil {
		return nil, err
	}
	after, err := headerAfterSchema.Encode(h.afterRecord())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, h.Len())
	out = append(out, before...)
	out = append(out, pf...)
	out = append(out, after...)

	if h.HasDX10() {
		ext, err := dx10Schema.Encode(h.DX10.record())
		if err != nil {
			return nil, err
		}
		out = append(out, ext...)
	}

	return out, nil
}

func headerFromRecords(before, after Record) *Header {
	h := &Header{
		Magic:             uint32(before.Word("magic")),
		Size:              uint32(before.Word("size")),
		Flags:             uint32(before.Word("flags")),
		Height:            uint32(before.Word("height")),
		Width:             uint32(before.Word("width")),
		PitchOrLinearSize: uint32(before.Word("pitchOrLinearSize")),
		Depth:             uint32(before.Word("depth")),
		MipMapCount:       uint32(before.Word("mipMapCount")),
		Caps:              uint32(after.Word("caps")),
		Caps2:             uint32(after.Word("caps2")),
		Caps3:             uint32(after.Word("caps3")),
		Caps4:             uint32(after.Word("caps4")),
		Reserved2:         uint32(after.Word("reserved2")),
	}
	for i, w := range before["reserved1"] {
		if i < len(h.Reserved1) {
			h.Reserved1[i] = uint32(w)
		}
	}
	return h
}

func pixelFormatFromRecord(rec Record) PixelFormat {
	return PixelFormat{
		Size:        uint32(rec.Word("size")),
		Flags:       uint32(rec.Word("flags")),
		FourCC:      FourCC(rec.Word("fourCC")),
		RGBBitCount: uint32(rec.Word("rgbBitCount")),
		RBitMask:    uint32(rec.Word("rBitMask")),
		GBitMask:    uint32(rec.Word("gBitMask")),
		BBitMask:    uint32(rec.Word("bBitMask")),
		ABitMask:    uint32(rec.Word("aBitMask")),
	}
}

func dx10FromRecord(rec Record) *HeaderDX10 {
	return &HeaderDX10{
		DXGIFormat:        DXGIFormat(rec.Word("format")),
		ResourceDimension: uint32(rec.Word("resourceDimension")),
		MiscFlag:          uint32(rec.Word("miscFlag")),
		ArraySize:         uint32(rec.Word("arraySize")),
		MiscFlags2:        uint32(rec.Word("miscFlags2")),
	}
}

func (h *Header) beforeRecord() Record {
	reserved := make([]uint64, len(h.Reserved1))
	for i, w := range h.Reserved1 {
		reserved[i] = uint64(w)
	}
	return Record{
		"magic":             {uint64(h.Magic)},
		"size":              {uint64(h.Size)},
		"flags":             {uint64(h.Flags)},
		"height":            {uint64(h.Height)},
		"width":             {uint64(h.Width)},
		"pitchOrLinearSize": {uint64(h.PitchOrLinearSize)},
		"depth":             {uint64(h.Depth)},
		"mipMapCount":       {uint64(h.MipMapCount)},
		"reserved1":         reserved,
	}
}

func (h *Header) afterRecord() Record {
	return Record{
		"caps":      {uint64(h.Caps)},
		"caps2":     {uint64(h.Caps2)},
		"caps3":     {uint64(h.Caps3)},
		"caps4":     {uint64(h.Caps4)},
		"reserved2": {uint64(h.Reserved2)},
	}
}

func (h *Header) record() Record {
	rec := h.beforeRecord()
	for k, v := range h.afterRecord() {
		rec[k] = v
	}
	return rec
}

func (pf *PixelFormat) record() Record {
	return Record{
		"size":        {uint64(pf.Size)},
		"flags":       {uint64(pf.Flags)},
		"fourCC":      {uint64(pf.FourCC)},
		"rgbBitCount": {uint64(pf.RGBBitCount)},
		"rBitMask":    {uint64(pf.RBitMask)},
		"gBitMask":    {uint64(pf.GBitMask)},
		"bBitMask":    {uint64(pf.BBitMask)},
		"aBitMask":    {uint64(pf.ABitMask)},
	}
}

func (x *HeaderDX10) record() Record {
	return Record{
		"format":            {uint64(x.DXGIFormat)},
		"resourceDimension": {uint64(x.ResourceDimension)},
		"miscFlag":          {uint64(x.MiscFlag)},
		"arraySize":         {uint64(x.ArraySize)},
		"miscFlags2":        {uint64(x.MiscFlags2)},
	}
}
