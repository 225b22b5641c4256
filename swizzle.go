package dds

import "fmt"

const (
	blockRows      = 4
	blockRowStride = DecodedBlockSize / blockRows // 4 texels * 4 components
)

// ToScanlineOrder reorders block-major RGBA (as produced by DecompressBC1)
// into scanlines for an image width texels wide. Blocks are taken in
// groups of width/4; for each group row 0 of every block is emitted left
// to right, then row 1, row 2 and row 3. A trailing partial group is
// interleaved over the blocks it has, so the output is a permutation of
// the input.
func ToScanlineOrder(data []byte, width int) ([]byte, error) {
	if width <= 0 || width%4 != 0 {
		return nil, fmt.Errorf("%w: %d is not a positive multiple of 4", ErrInvalidWidth, width)
	}
	if len(data)%DecodedBlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedBlock, len(data), DecodedBlockSize)
	}

	blocksPerRow := width / 4
	chunk := blocksPerRow * DecodedBlockSize
	out := make([]byte, 0, len(data))

	for start := 0; start < len(data); start += chunk {
		end := min(start+chunk, len(data))
		for row := 0; row < blockRows; row++ {
			for blk := start; blk < end; blk += DecodedBlockSize {
				off := blk + row*blockRowStride
				out = append(out, data[off:off+blockRowStride]...)
			}
		}
	}

	return out, nil
}

// Rows splits scanline-major RGBA into height rows of width*4 bytes.
// The rows alias data.
func Rows(data []byte, width, height int) ([][]byte, error) {
	stride := width * 4
	if width <= 0 || height <= 0 || len(data) < stride*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d RGBA", ErrPayloadSize, len(data), width, height)
	}

	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = data[y*stride : (y+1)*stride : (y+1)*stride]
	}
	return rows, nil
}
