package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// EDDS (Enfusion DDS) keeps the DDS header but replaces the payload with a
// block table followed by block bodies, one per mip level, smallest first.
// Bodies are stored raw (COPY) or as LZ4 chunk streams with a rolling 64KB
// dictionary.
const (
	// BlockMagicCOPY marks an uncompressed block.
	BlockMagicCOPY = "COPY"
	// BlockMagicLZ4 marks an LZ4-compressed block.
	BlockMagicLZ4 = "LZ4 "

	// ChunkSize is the Enfusion chunk size for LZ4 streams.
	ChunkSize = 64 * 1024

	// enfusionMarker is "ENF1", stored in reserved1[1] by Enfusion tools.
	enfusionMarker = 0x31464e45

	// minCompressSize is the smallest level worth an LZ4 attempt.
	minCompressSize = 1024
	// compressRatio is the largest compressed/raw ratio still stored as LZ4.
	compressRatio = 0.85
)

// Block is one level body of an EDDS payload.
type Block struct {
	Magic            string
	Data             []byte
	Size             int32
	UncompressedSize int32
}

type blockHeader struct {
	Magic string
	Size  int32
}

// isEDDSPayload reports whether a payload starts with an EDDS block table.
func isEDDSPayload(payload []byte) bool {
	if len(payload) < 8 {
		return false
	}
	magic := string(payload[:4])
	return magic == BlockMagicCOPY || magic == BlockMagicLZ4
}

// eddsLevel0 unpacks mip level 0 from an EDDS payload holding count levels.
func eddsLevel0(payload []byte, count int, expectedSize int) ([]byte, error) {
	if count < 1 {
		count = 1
	}

	r := bytes.NewReader(payload)
	table, err := readBlockTable(r, count)
	if err != nil {
		return nil, err
	}

	// level 0 is the last body
	for i, h := range table[:len(table)-1] {
		if int64(h.Size) > int64(r.Len()) {
			return nil, fmt.Errorf("%w: level %d body of %d bytes, %d left", ErrBlockTableTruncated, count-1-i, h.Size, r.Len())
		}
		if _, err := r.Seek(int64(h.Size), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w: skip level %d: %v", ErrBlockTableTruncated, count-1-i, err)
		}
	}

	last := table[len(table)-1]
	if int64(last.Size) > int64(r.Len()) {
		return nil, fmt.Errorf("%w: level 0 body of %d bytes, %d left", ErrBlockTableTruncated, last.Size, r.Len())
	}
	body := make([]byte, last.Size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: level 0 body: %v", ErrBlockTableTruncated, err)
	}

	return decompressBlock(&Block{Magic: last.Magic, Size: last.Size, Data: body}, expectedSize)
}

func readBlockTable(r io.Reader, count int) ([]blockHeader, error) {
	hdrs := make([]blockHeader, 0, count)
	for i := 0; i < count; i++ {
		var raw [8]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrBlockTableTruncated, i, err)
		}

		magic := string(raw[:4])
		size := int32(binary.LittleEndian.Uint32(raw[4:]))

		if magic != BlockMagicCOPY && magic != BlockMagicLZ4 {
			return nil, fmt.Errorf("%w: entry %d: %q", ErrBlockTableUnknownMagic, i, magic)
		}
		if size < 0 {
			return nil, fmt.Errorf("%w: entry %d: %d", ErrBlockTableInvalidSize, i, size)
		}

		hdrs = append(hdrs, blockHeader{Magic: magic, Size: size})
	}

	return hdrs, nil
}

// writeEDDS writes header and level 0 as a single-level EDDS file.
func writeEDDS(w io.Writer, header *Header, level0 []byte, compress bool) error {
	h := *header
	h.MipMapCount = 1
	h.Flags &^= FlagMipMapCount
	h.Caps &^= CapsMipmap | CapsComplex
	h.Reserved1[1] = enfusionMarker

	raw, err := h.MarshalBinary()
	if err != nil {
		return err
	}

	var block *Block
	if compress {
		if block, err = compressBlock(level0); err != nil {
			return err
		}
	} else {
		size, err := i32FromInt(len(level0))
		if err != nil {
			return err
		}
		block = &Block{Magic: BlockMagicCOPY, Size: size, Data: level0}
	}

	var entry [8]byte
	copy(entry[:4], block.Magic)
	binary.LittleEndian.PutUint32(entry[4:], uint32(block.Size))

	for _, part := range [][]byte{raw, entry[:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return writeBlockData(w, block)
}

// writeBlockData writes the block payload (no table entry).
func writeBlockData(w io.Writer, block *Block) error {
	if block.Magic == BlockMagicLZ4 {
		if err := binary.Write(w, binary.LittleEndian, block.UncompressedSize); err != nil {
			return fmt.Errorf("%w: uncompressed size: %v", ErrIO, err)
		}
	}
	if _, err := w.Write(block.Data); err != nil {
		return fmt.Errorf("%w: %s block body: %v", ErrIO, block.Magic, err)
	}
	return nil
}

// compressBlock packs raw level data into an LZ4 chunk stream, or a COPY
// block when compression does not pay.
func compressBlock(data []byte) (*Block, error) {
	if len(data) > maxInt32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(data))
	}
	uncompressedSize, err := i32FromInt(len(data))
	if err != nil {
		return nil, err
	}

	copyBlock := &Block{Magic: BlockMagicCOPY, Size: uncompressedSize, Data: data}
	if len(data) < minCompressSize {
		return copyBlock, nil
	}

	var chunkStream bytes.Buffer
	compressBuf := make([]byte, lz4.CompressBlockBound(ChunkSize))

	for i := 0; i < len(data); i += ChunkSize {
		end := min(i+ChunkSize, len(data))
		srcChunk := data[i:end]

		cn, err := lz4.CompressBlockHC(srcChunk, compressBuf, 0, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
		}
		if cn == 0 || float64(cn) > float64(len(srcChunk))*compressRatio {
			return copyBlock, nil
		}
		if cn > 0x7FFFFF {
			return nil, fmt.Errorf("%w: %d", ErrChunkTooLarge, cn)
		}

		var flags byte
		if end == len(data) {
			flags = 0x80
		}
		chunkStream.Write([]byte{byte(cn), byte(cn >> 8), byte(cn >> 16), flags})
		chunkStream.Write(compressBuf[:cn])
	}

	compressed := chunkStream.Bytes()
	total := 4 + len(compressed)
	if total > maxInt32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCompressedDataTooLarge, total)
	}
	if float64(total) > float64(len(data))*compressRatio {
		return copyBlock, nil
	}

	size, err := i32FromInt(total)
	if err != nil {
		return nil, err
	}

	return &Block{
		Magic:            BlockMagicLZ4,
		Size:             size,
		UncompressedSize: uncompressedSize,
		Data:             compressed,
	}, nil
}

// decompressBlock inflates a block body into expectedSize raw bytes.
func decompressBlock(block *Block, expectedSize int) ([]byte, error) {
	switch block.Magic {
	case BlockMagicCOPY:
		if len(block.Data) != expectedSize {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrCopySizeMismatch, expectedSize, len(block.Data))
		}
		out := make([]byte, len(block.Data))
		copy(out, block.Data)
		return out, nil
	case BlockMagicLZ4:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockMagic, block.Magic)
	}

	targetSize := expectedSize
	if block.UncompressedSize > 0 {
		targetSize = int(block.UncompressedSize)
	}
	if targetSize <= 0 {
		return nil, fmt.Errorf("%w: target size %d", ErrDecodedSizeMismatch, targetSize)
	}

	// bodies read from a table carry the uncompressed size in front
	data := block.Data
	if len(data) >= 8 {
		peek := int(binary.LittleEndian.Uint32(data[:4]))
		c0 := int(data[4]) | int(data[5])<<8 | int(data[6])<<16
		if (peek == expectedSize || peek == targetSize) && c0 > 0 && c0 < 1<<20 {
			targetSize = peek
			data = data[4:]
		}
	}

	const dictCap = 64 * 1024
	dict := make([]byte, dictCap)
	dictSize := 0

	target := make([]byte, targetSize)
	outIdx := 0
	r := bytes.NewReader(data)

	for {
		if r.Len() < 4 {
			return nil, fmt.Errorf("%w: need 4 bytes header, have %d", ErrChunkStreamTruncated, r.Len())
		}

		var hdr [4]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChunkStreamTruncated, err)
		}

		cSize := int(hdr[0]) | int(hdr[1])<<8 | int(hdr[2])<<16
		flags := hdr[3]
		if flags&^0x80 != 0 {
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownLZ4Flags, flags)
		}
		if cSize <= 0 || cSize > r.Len() {
			return nil, fmt.Errorf("%w: %d (remaining %d)", ErrInvalidChunkSize, cSize, r.Len())
		}

		compressed := make([]byte, cSize)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChunkStreamTruncated, err)
		}

		remaining := targetSize - outIdx
		if remaining <= 0 {
			return nil, ErrDecodeOverrun
		}
		dst := target[outIdx : outIdx+min(ChunkSize, remaining)]

		n, err := lz4.UncompressBlockWithDict(compressed, dst, dict[:dictSize])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Decode, err)
		}
		outIdx += n

		dictSize = slideDict(dict, dictSize, target[outIdx-n:outIdx])

		if flags&0x80 != 0 {
			break
		}
	}

	if outIdx != targetSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDecodedSizeMismatch, targetSize, outIdx)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after decode", ErrBlockLengthMismatch, r.Len())
	}

	return target, nil
}

// slideDict appends decoded to the rolling dictionary, keeping its tail.
func slideDict(dict []byte, size int, decoded []byte) int {
	dictCap := len(dict)
	if len(decoded) >= dictCap {
		copy(dict, decoded[len(decoded)-dictCap:])
		return dictCap
	}

	avail := dictCap - size
	if len(decoded) <= avail {
		copy(dict[size:], decoded)
		return size + len(decoded)
	}

	shift := len(decoded) - avail
	copy(dict, dict[shift:size])
	copy(dict[dictCap-len(decoded):], decoded)
	return dictCap
}
