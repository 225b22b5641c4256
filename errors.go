package dds

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates the source or destination could not be read or written.
	ErrIO = errors.New("i/o failed")
	// ErrFormat indicates malformed container or payload data.
	ErrFormat = errors.New("invalid format")
	// ErrSchema indicates a field schema that does not fit the buffer it is applied to.
	ErrSchema = errors.New("schema mismatch")
	// ErrUnknownField indicates a field name not declared for the structure.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownFlag indicates a flag name not declared for the field.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrTooShort indicates the buffer is shorter than the header it must hold.
	ErrTooShort = fmt.Errorf("%w: data too short", ErrFormat)
	// ErrBadMagic indicates the magic field is not "DDS ".
	ErrBadMagic = fmt.Errorf("%w: bad magic", ErrFormat)
	// ErrHeaderSize indicates the header size field is not 124.
	ErrHeaderSize = fmt.Errorf("%w: header size mismatch", ErrFormat)
	// ErrPixelFormatSize indicates the pixel format size field is not 32.
	ErrPixelFormatSize = fmt.Errorf("%w: pixel format size mismatch", ErrFormat)
	// ErrTruncatedBlock indicates a compressed payload that does not hold whole blocks.
	ErrTruncatedBlock = fmt.Errorf("%w: truncated compressed block", ErrFormat)
	// ErrIndexRange indicates a texel index outside the block color table.
	ErrIndexRange = fmt.Errorf("%w: color index out of range", ErrFormat)
	// ErrInvalidWidth indicates a width that does not fit the block grid.
	ErrInvalidWidth = fmt.Errorf("%w: invalid width", ErrFormat)
	// ErrUnsupportedFormat indicates a pixel format the package cannot turn into RGBA.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported pixel format", ErrFormat)
	// ErrPayloadSize indicates a pixel payload smaller than level 0 requires.
	ErrPayloadSize = fmt.Errorf("%w: payload smaller than level 0", ErrFormat)
	// ErrMipCount indicates a declared mip count no texture can have.
	ErrMipCount = fmt.Errorf("%w: mip count out of range", ErrFormat)

	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrEmptyImage indicates an image with no pixels.
	ErrEmptyImage = errors.New("empty image")
	// ErrEncodeImage indicates BC1 encoding of an image failed.
	ErrEncodeImage = errors.New("encode image failed")
	// ErrExport indicates the raster encoder failed.
	ErrExport = errors.New("export failed")

	// ErrInputTooLarge indicates input data is too large to pack into an EDDS block.
	ErrInputTooLarge = errors.New("input data too large")
	// ErrCompressedDataTooLarge indicates compressed payload exceeds limits.
	ErrCompressedDataTooLarge = errors.New("compressed data too large")
	// ErrChunkTooLarge indicates a compressed chunk exceeds allowed size.
	ErrChunkTooLarge = errors.New("compressed chunk too large")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrLZ4Decode indicates LZ4 decode failed.
	ErrLZ4Decode = fmt.Errorf("%w: LZ4 decode failed", ErrFormat)
	// ErrCopySizeMismatch indicates COPY block data size mismatch.
	ErrCopySizeMismatch = fmt.Errorf("%w: COPY block size mismatch", ErrFormat)
	// ErrUnknownBlockMagic indicates an unknown block magic.
	ErrUnknownBlockMagic = fmt.Errorf("%w: unknown block magic", ErrFormat)
	// ErrChunkStreamTruncated indicates LZ4 chunk stream is truncated.
	ErrChunkStreamTruncated = fmt.Errorf("%w: LZ4 chunk-stream truncated", ErrFormat)
	// ErrUnknownLZ4Flags indicates unknown LZ4 chunk flags.
	ErrUnknownLZ4Flags = fmt.Errorf("%w: unknown LZ4 flags", ErrFormat)
	// ErrInvalidChunkSize indicates invalid LZ4 chunk size.
	ErrInvalidChunkSize = fmt.Errorf("%w: invalid compressed chunk size", ErrFormat)
	// ErrDecodeOverrun indicates decoded data overruns target buffer.
	ErrDecodeOverrun = fmt.Errorf("%w: decoded LZ4 overruns target buffer", ErrFormat)
	// ErrDecodedSizeMismatch indicates decoded size mismatch.
	ErrDecodedSizeMismatch = fmt.Errorf("%w: LZ4 decoded size mismatch", ErrFormat)
	// ErrBlockLengthMismatch indicates leftover bytes after decode.
	ErrBlockLengthMismatch = fmt.Errorf("%w: LZ4 block length mismatch", ErrFormat)
	// ErrBlockTableUnknownMagic indicates unknown block magic in table.
	ErrBlockTableUnknownMagic = fmt.Errorf("%w: unknown block magic in table", ErrFormat)
	// ErrBlockTableInvalidSize indicates invalid size in block table.
	ErrBlockTableInvalidSize = fmt.Errorf("%w: invalid block size in table", ErrFormat)
	// ErrBlockTableTruncated indicates the block table or a block body runs past the payload.
	ErrBlockTableTruncated = fmt.Errorf("%w: block table truncated", ErrFormat)
)
