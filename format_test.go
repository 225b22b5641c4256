package dds

import "testing"

func TestRegistryBijective(t *testing.T) {
	t.Parallel()

	t.Run("dxgi", func(t *testing.T) {
		t.Parallel()

		formats := DXGIFormats()
		if len(formats) < 100 {
			t.Fatalf("only %d DXGI formats registered", len(formats))
		}
		for _, f := range formats {
			name, ok := DXGIName(f)
			if !ok {
				t.Fatalf("no name for %d", uint32(f))
			}
			back, ok := DXGIByName(name)
			if !ok || back != f {
				t.Fatalf("%s -> %d, want %d", name, uint32(back), uint32(f))
			}
		}
	})

	t.Run("fourcc", func(t *testing.T) {
		t.Parallel()

		for _, c := range FourCCs() {
			name, ok := FourCCName(c)
			if !ok {
				t.Fatalf("no name for 0x%08x", uint32(c))
			}
			back, ok := FourCCByName(name)
			if !ok || back != c {
				t.Fatalf("%s -> 0x%08x, want 0x%08x", name, uint32(back), uint32(c))
			}
		}
	})
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "dxgi-bc1", got: DXGIFormatBC1Unorm.String(), want: "DXGI_FORMAT_BC1_UNORM"},
		{name: "dxgi-bgra", got: DXGIFormatB8G8R8A8Unorm.String(), want: "DXGI_FORMAT_B8G8R8A8_UNORM"},
		{name: "dxgi-unregistered", got: DXGIFormat(200).String(), want: "DXGI_FORMAT(200)"},
		{name: "fourcc-dxt1", got: Format{FourCC: FourCCDXT1}.String(), want: "D3DFMT_DXT1"},
		{name: "fourcc-numeric", got: Format{FourCC: 113}.String(), want: "D3DFMT_A16B16G16R16F"},
		{name: "fourcc-unregistered", got: Format{FourCC: MakeFourCC("ZZZZ")}.String(), want: `FOURCC("ZZZZ")`},
		{name: "uncompressed", got: Format{}.String(), want: "UNCOMPRESSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestFourCC(t *testing.T) {
	t.Parallel()

	if MakeFourCC("DXT1") != FourCCDXT1 {
		t.Fatalf("MakeFourCC(DXT1) = 0x%08x", uint32(MakeFourCC("DXT1")))
	}
	if uint32(FourCCDXT1) != 0x31545844 {
		t.Fatalf("DXT1 = 0x%08x", uint32(FourCCDXT1))
	}
	if FourCCDX10.String() != "DX10" {
		t.Fatalf("String = %q", FourCCDX10.String())
	}
	if MakeFourCC("AB") != FourCC('A'|'B'<<8) {
		t.Fatalf("short code not zero padded")
	}
}

func TestFormatClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     Format
		bc1        bool
		compressed bool
		dxgi       DXGIFormat
	}{
		{name: "dxt1", format: Format{FourCC: FourCCDXT1}, bc1: true, compressed: true, dxgi: DXGIFormatBC1Unorm},
		{name: "dxt5", format: Format{FourCC: FourCCDXT5}, compressed: true, dxgi: DXGIFormatBC3Unorm},
		{name: "dx10-bc1-srgb", format: Format{DXGI: DXGIFormatBC1UnormSRGB, Extended: true}, bc1: true, compressed: true, dxgi: DXGIFormatBC1UnormSRGB},
		{name: "dx10-rgba", format: Format{DXGI: DXGIFormatR8G8B8A8Unorm, Extended: true}, dxgi: DXGIFormatR8G8B8A8Unorm},
		{name: "dx10-bgrx", format: Format{DXGI: DXGIFormatB8G8R8X8Unorm, Extended: true}, dxgi: DXGIFormatB8G8R8X8Unorm},
		{name: "dx10-bc3", format: Format{DXGI: DXGIFormatBC3Unorm, Extended: true}, compressed: true, dxgi: DXGIFormatBC3Unorm},
		{name: "masks", format: Format{}, dxgi: DXGIFormatUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.format.IsBC1(); got != tc.bc1 {
				t.Fatalf("IsBC1 = %v", got)
			}
			if got := tc.format.IsCompressed(); got != tc.compressed {
				t.Fatalf("IsCompressed = %v", got)
			}
			if got := tc.format.DXGIEquivalent(); got != tc.dxgi {
				t.Fatalf("DXGIEquivalent = %s, want %s", got, tc.dxgi)
			}
		})
	}
}
