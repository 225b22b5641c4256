// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dds

package dds

const (
	maxInt32  = int(^uint32(0) >> 1)
	maxUint32 = uint64(^uint32(0))

	// maxDimension bounds width and height so width*height*4 fits an int32.
	maxDimension = 1 << 14
)

// i32FromInt converts an int to an int32.
func i32FromInt(n int) (int32, error) {
	if n < 0 || n > maxInt32 {
		return 0, ErrSizeOverflow
	}

	return int32(n), nil
}

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// checkDimensions rejects sizes the decoders cannot allocate for.
func checkDimensions(width, height uint32) error {
	if width == 0 || height == 0 || width > maxDimension || height > maxDimension {
		return ErrSizeOverflow
	}

	return nil
}
