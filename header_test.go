package dds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/woozymasta/bcn"
)

// headerBytes serializes a BC1 header after applying mutate.
func headerBytes(t *testing.T, w, h uint32, dx10 bool, mutate func(*Header)) []byte {
	t.Helper()

	hdr := NewBC1Header(w, h, dx10)
	if mutate != nil {
		mutate(hdr)
	}
	raw, err := hdr.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func TestParseHeaderTooShort(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 4, 4, false, nil)
	_, err := ParseHeader(raw[:MinFileSize-1])
	require.ErrorIs(t, err, ErrTooShort)
	require.ErrorIs(t, err, ErrFormat)
}

func TestParseHeaderLayout(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 16, 8, false, nil)
	require.Len(t, raw, MinFileSize)

	require.Equal(t, []byte("DDS "), raw[0:4])
	require.Equal(t, uint32(HeaderSize), binary.LittleEndian.Uint32(raw[4:8]))
	require.Equal(t, uint32(8), binary.LittleEndian.Uint32(raw[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(raw[16:20]))
	require.Equal(t, uint32(PixelFormatSize), binary.LittleEndian.Uint32(raw[76:80]))
	require.Equal(t, []byte("DXT1"), raw[84:88])
	require.Equal(t, uint32(CapsTexture), binary.LittleEndian.Uint32(raw[108:112]))

	h, err := ParseHeader(raw)
	require.NoError(t, err)
	require.False(t, h.HasDX10())
	require.Nil(t, h.DX10)
	require.Equal(t, MinFileSize, h.Len())
	require.True(t, h.ResolvedFormat().IsBC1())
	require.NoError(t, h.Validate(len(raw)))
}

func TestHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dx10 bool
	}{
		{name: "dxt1", dx10: false},
		{name: "dx10", dx10: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := headerBytes(t, 20, 12, tc.dx10, func(h *Header) {
				h.Reserved1[1] = enfusionMarker
				h.Reserved1[10] = 0xcafebabe
				h.Caps2 = Caps2Cubemap | Caps2CubemapPositiveX
				h.Reserved2 = 9
				if h.DX10 != nil {
					h.DX10.MiscFlag = MiscTextureCube
					h.DX10.MiscFlags2 = uint32(AlphaModePremultiplied)
				}
			})

			h, err := ParseHeader(raw)
			require.NoError(t, err)

			again, err := h.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, raw, again)

			h2, err := ParseHeader(again)
			require.NoError(t, err)
			require.Equal(t, h, h2)
		})
	}
}

func TestParseHeaderDX10(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 8, 8, true, nil)
	require.Len(t, raw, MinFileSizeDX10)

	// 128 bytes are not enough once DX10 is announced
	_, err := ParseHeader(raw[:MinFileSize])
	require.ErrorIs(t, err, ErrTooShort)

	h, err := ParseHeader(raw)
	require.NoError(t, err)
	require.True(t, h.HasDX10())
	require.Equal(t, FourCCDX10, h.PixelFormat.FourCC)
	require.Equal(t, MinFileSizeDX10, h.Len())

	format := h.ResolvedFormat()
	require.True(t, format.Extended)
	require.Equal(t, DXGIFormatBC1Unorm, format.DXGI)
	require.True(t, format.IsBC1())
	require.Equal(t, "DXGI_FORMAT_BC1_UNORM", format.String())

	// swapping the DXGI format changes the resolved format, not the FourCC
	h.DX10.DXGIFormat = DXGIFormatBC3Unorm
	require.False(t, h.ResolvedFormat().IsBC1())
}

func TestHeaderDX10RequiresFlag(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 8, 8, false, func(h *Header) {
		h.PixelFormat.FourCC = FourCCDX10
		h.PixelFormat.Flags = 0
	})

	h, err := ParseHeader(raw)
	require.NoError(t, err)
	require.False(t, h.HasDX10())
	require.False(t, h.ResolvedFormat().IsCompressed())
}

func TestValidateReportsEveryViolation(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 4, 4, false, func(h *Header) {
		h.Magic = uint32(MakeFourCC("XDS "))
		h.Size = 100
		h.PixelFormat.Size = 0
	})

	h, err := ParseHeader(raw)
	require.NoError(t, err)

	err = h.Validate(MinFileSize - 1)
	require.Error(t, err)
	for _, want := range []error{ErrTooShort, ErrBadMagic, ErrHeaderSize, ErrPixelFormatSize} {
		require.ErrorIs(t, err, want)
	}
	require.ErrorIs(t, err, ErrFormat)

	// unchanged header, same verdict
	again := h.Validate(MinFileSize - 1)
	require.Equal(t, err.Error(), again.Error())
}

func TestValidateDX10FileSize(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 4, 4, true, nil)
	h, err := ParseHeader(raw)
	require.NoError(t, err)

	require.ErrorIs(t, h.Validate(MinFileSize), ErrTooShort)
	require.NoError(t, h.Validate(MinFileSizeDX10))
	require.NoError(t, h.Validate(MinFileSizeDX10))
}

func TestHeaderFlags(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 4, 4, true, func(h *Header) {
		h.Caps |= CapsMipmap
		h.DX10.MiscFlag = MiscTextureCube
	})
	h, err := ParseHeader(raw)
	require.NoError(t, err)

	tests := []struct {
		name  string
		get   func() (uint8, error)
		want  uint8
		isErr error
	}{
		{name: "caps-texture", get: func() (uint8, error) { return h.Flag("caps", "DDSCAPS_TEXTURE") }, want: 1},
		{name: "caps-mipmap", get: func() (uint8, error) { return h.Flag("caps", "DDSCAPS_MIPMAP") }, want: 1},
		{name: "caps-complex", get: func() (uint8, error) { return h.Flag("caps", "DDSCAPS_COMPLEX") }, want: 0},
		{name: "flags-linear", get: func() (uint8, error) { return h.Flag("flags", "DDSD_LINEARSIZE") }, want: 1},
		{name: "flags-pitch", get: func() (uint8, error) { return h.Flag("flags", "DDSD_PITCH") }, want: 0},
		{name: "caps2-volume", get: func() (uint8, error) { return h.Flag("caps2", "DDSCAPS2_VOLUME") }, want: 0},
		{name: "pf-fourcc", get: func() (uint8, error) { return h.PixelFormat.Flag("flags", "DDPF_FOURCC") }, want: 1},
		{name: "pf-rgb", get: func() (uint8, error) { return h.PixelFormat.Flag("flags", "DDPF_RGB") }, want: 0},
		{name: "dx10-cube", get: func() (uint8, error) { return h.DX10.Flag("miscFlag", "DDS_RESOURCE_MISC_TEXTURECUBE") }, want: 1},
		{name: "unknown-field", get: func() (uint8, error) { return h.Flag("colour", "DDSD_CAPS") }, isErr: ErrUnknownField},
		{name: "unknown-flag", get: func() (uint8, error) { return h.Flag("caps", "DDSCAPS_NOPE") }, isErr: ErrUnknownFlag},
		{name: "flag-on-other-field", get: func() (uint8, error) { return h.Flag("caps", "DDSD_CAPS") }, isErr: ErrUnknownFlag},
		{name: "pf-field-on-header", get: func() (uint8, error) { return h.Flag("fourCC", "DDPF_FOURCC") }, isErr: ErrUnknownField},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.get()
			if tc.isErr != nil {
				if !errors.Is(err, tc.isErr) {
					t.Fatalf("expected error %v, got %v", tc.isErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFlagBitIndex(t *testing.T) {
	t.Parallel()

	for _, table := range [][]Flag{headerFlags, pixelFormatFlags, dx10Flags} {
		for _, fl := range table {
			if uint32(1)<<fl.Bit() != fl.Value {
				t.Fatalf("%s: 1<<%d != 0x%x", fl.Name, fl.Bit(), fl.Value)
			}
		}
	}
}

func TestAlphaMode(t *testing.T) {
	t.Parallel()

	x := &HeaderDX10{MiscFlags2: uint32(AlphaModeOpaque)}
	require.Equal(t, AlphaModeOpaque, x.AlphaMode())
	require.Equal(t, "DDS_ALPHA_MODE_OPAQUE", x.AlphaMode().String())
	require.Equal(t, "DDS_ALPHA_MODE(7)", AlphaMode(7).String())
}

func TestMarshalDX10WithoutExtendedHeader(t *testing.T) {
	t.Parallel()

	h := NewBC1Header(4, 4, true)
	h.DX10 = nil

	_, err := h.MarshalBinary()
	require.ErrorIs(t, err, ErrFormat)
}

func TestHeaderMatchesBCN(t *testing.T) {
	t.Parallel()

	raw := headerBytes(t, 24, 40, false, nil)

	other, err := bcn.ReadDDSHeader(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, uint32(24), other.Width)
	require.Equal(t, uint32(40), other.Height)
	require.Equal(t, uint32(FourCCDXT1), uint32(other.PixelFormat.FourCC))
	require.NotZero(t, other.PixelFormat.Flags&bcn.DDSPFFourCC)
}
