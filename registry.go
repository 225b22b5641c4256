package dds

// dxgiTable lists every DXGI_FORMAT value with its canonical name.
var dxgiTable = []struct {
	id   DXGIFormat
	name string
}{
	{0, "DXGI_FORMAT_UNKNOWN"},
	{1, "DXGI_FORMAT_R32G32B32A32_TYPELESS"},
	{2, "DXGI_FORMAT_R32G32B32A32_FLOAT"},
	{3, "DXGI_FORMAT_R32G32B32A32_UINT"},
	{4, "DXGI_FORMAT_R32G32B32A32_SINT"},
	{5, "DXGI_FORMAT_R32G32B32_TYPELESS"},
	{6, "DXGI_FORMAT_R32G32B32_FLOAT"},
	{7, "DXGI_FORMAT_R32G32B32_UINT"},
	{8, "DXGI_FORMAT_R32G32B32_SINT"},
	{9, "DXGI_FORMAT_R16G16B16A16_TYPELESS"},
	{10, "DXGI_FORMAT_R16G16B16A16_FLOAT"},
	{11, "DXGI_FORMAT_R16G16B16A16_UNORM"},
	{12, "DXGI_FORMAT_R16G16B16A16_UINT"},
	{13, "DXGI_FORMAT_R16G16B16A16_SNORM"},
	{14, "DXGI_FORMAT_R16G16B16A16_SINT"},
	{15, "DXGI_FORMAT_R32G32_TYPELESS"},
	{16, "DXGI_FORMAT_R32G32_FLOAT"},
	{17, "DXGI_FORMAT_R32G32_UINT"},
	{18, "DXGI_FORMAT_R32G32_SINT"},
	{19, "DXGI_FORMAT_R32G8X24_TYPELESS"},
	{20, "DXGI_FORMAT_D32_FLOAT_S8X24_UINT"},
	{21, "DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS"},
	{22, "DXGI_FORMAT_X32_TYPELESS_G8X24_UINT"},
	{23, "DXGI_FORMAT_R10G10B10A2_TYPELESS"},
	{24, "DXGI_FORMAT_R10G10B10A2_UNORM"},
	{25, "DXGI_FORMAT_R10G10B10A2_UINT"},
	{26, "DXGI_FORMAT_R11G11B10_FLOAT"},
	{27, "DXGI_FORMAT_R8G8B8A8_TYPELESS"},
	{28, "DXGI_FORMAT_R8G8B8A8_UNORM"},
	{29, "DXGI_FORMAT_R8G8B8A8_UNORM_SRGB"},
	{30, "DXGI_FORMAT_R8G8B8A8_UINT"},
	{31, "DXGI_FORMAT_R8G8B8A8_SNORM"},
	{32, "DXGI_FORMAT_R8G8B8A8_SINT"},
	{33, "DXGI_FORMAT_R16G16_TYPELESS"},
	{34, "DXGI_FORMAT_R16G16_FLOAT"},
	{35, "DXGI_FORMAT_R16G16_UNORM"},
	{36, "DXGI_FORMAT_R16G16_UINT"},
	{37, "DXGI_FORMAT_R16G16_SNORM"},
	{38, "DXGI_FORMAT_R16G16_SINT"},
	{39, "DXGI_FORMAT_R32_TYPELESS"},
	{40, "DXGI_FORMAT_D32_FLOAT"},
	{41, "DXGI_FORMAT_R32_FLOAT"},
	{42, "DXGI_FORMAT_R32_UINT"},
	{43, "DXGI_FORMAT_R32_SINT"},
	{44, "DXGI_FORMAT_R24G8_TYPELESS"},
	{45, "DXGI_FORMAT_D24_UNORM_S8_UINT"},
	{46, "DXGI_FORMAT_R24_UNORM_X8_TYPELESS"},
	{47, "DXGI_FORMAT_X24_TYPELESS_G8_UINT"},
	{48, "DXGI_FORMAT_R8G8_TYPELESS"},
	{49, "DXGI_FORMAT_R8G8_UNORM"},
	{50, "DXGI_FORMAT_R8G8_UINT"},
	{51, "DXGI_FORMAT_R8G8_SNORM"},
	{52, "DXGI_FORMAT_R8G8_SINT"},
	{53, "DXGI_FORMAT_R16_TYPELESS"},
	{54, "DXGI_FORMAT_R16_FLOAT"},
	{55, "DXGI_FORMAT_D16_UNORM"},
	{56, "DXGI_FORMAT_R16_UNORM"},
	{57, "DXGI_FORMAT_R16_UINT"},
	{58, "DXGI_FORMAT_R16_SNORM"},
	{59, "DXGI_FORMAT_R16_SINT"},
	{60, "DXGI_FORMAT_R8_TYPELESS"},
	{61, "DXGI_FORMAT_R8_UNORM"},
	{62, "DXGI_FORMAT_R8_UINT"},
	{63, "DXGI_FORMAT_R8_SNORM"},
	{64, "DXGI_FORMAT_R8_SINT"},
	{65, "DXGI_FORMAT_A8_UNORM"},
	{66, "DXGI_FORMAT_R1_UNORM"},
	{67, "DXGI_FORMAT_R9G9B9E5_SHAREDEXP"},
	{68, "DXGI_FORMAT_R8G8_B8G8_UNORM"},
	{69, "DXGI_FORMAT_G8R8_G8B8_UNORM"},
	{70, "DXGI_FORMAT_BC1_TYPELESS"},
	{71, "DXGI_FORMAT_BC1_UNORM"},
	{72, "DXGI_FORMAT_BC1_UNORM_SRGB"},
	{73, "DXGI_FORMAT_BC2_TYPELESS"},
	{74, "DXGI_FORMAT_BC2_UNORM"},
	{75, "DXGI_FORMAT_BC2_UNORM_SRGB"},
	{76, "DXGI_FORMAT_BC3_TYPELESS"},
	{77, "DXGI_FORMAT_BC3_UNORM"},
	{78, "DXGI_FORMAT_BC3_UNORM_SRGB"},
	{79, "DXGI_FORMAT_BC4_TYPELESS"},
	{80, "DXGI_FORMAT_BC4_UNORM"},
	{81, "DXGI_FORMAT_BC4_SNORM"},
	{82, "DXGI_FORMAT_BC5_TYPELESS"},
	{83, "DXGI_FORMAT_BC5_UNORM"},
	{84, "DXGI_FORMAT_BC5_SNORM"},
	{85, "DXGI_FORMAT_B5G6R5_UNORM"},
	{86, "DXGI_FORMAT_B5G5R5A1_UNORM"},
	{87, "DXGI_FORMAT_B8G8R8A8_UNORM"},
	{88, "DXGI_FORMAT_B8G8R8X8_UNORM"},
	{89, "DXGI_FORMAT_R10G10B10_XR_BIAS_A2_UNORM"},
	{90, "DXGI_FORMAT_B8G8R8A8_TYPELESS"},
	{91, "DXGI_FORMAT_B8G8R8A8_UNORM_SRGB"},
	{92, "DXGI_FORMAT_B8G8R8X8_TYPELESS"},
	{93, "DXGI_FORMAT_B8G8R8X8_UNORM_SRGB"},
	{94, "DXGI_FORMAT_BC6H_TYPELESS"},
	{95, "DXGI_FORMAT_BC6H_UF16"},
	{96, "DXGI_FORMAT_BC6H_SF16"},
	{97, "DXGI_FORMAT_BC7_TYPELESS"},
	{98, "DXGI_FORMAT_BC7_UNORM"},
	{99, "DXGI_FORMAT_BC7_UNORM_SRGB"},
	{100, "DXGI_FORMAT_AYUV"},
	{101, "DXGI_FORMAT_Y410"},
	{102, "DXGI_FORMAT_Y416"},
	{103, "DXGI_FORMAT_NV12"},
	{104, "DXGI_FORMAT_P010"},
	{105, "DXGI_FORMAT_P016"},
	{106, "DXGI_FORMAT_420_OPAQUE"},
	{107, "DXGI_FORMAT_YUY2"},
	{108, "DXGI_FORMAT_Y210"},
	{109, "DXGI_FORMAT_Y216"},
	{110, "DXGI_FORMAT_NV11"},
	{111, "DXGI_FORMAT_AI44"},
	{112, "DXGI_FORMAT_IA44"},
	{113, "DXGI_FORMAT_P8"},
	{114, "DXGI_FORMAT_A8P8"},
	{115, "DXGI_FORMAT_B4G4R4A4_UNORM"},
	{130, "DXGI_FORMAT_P208"},
	{131, "DXGI_FORMAT_V208"},
	{132, "DXGI_FORMAT_V408"},
	{0xffffffff, "DXGI_FORMAT_FORCE_UINT"},
}

// fourCCTable lists the FourCC codes found in DDS_PIXELFORMAT, including
// the numeric D3DFORMAT values some writers store in the FourCC slot.
// dxgi is the equivalent DXGI format, or DXGIFormatUnknown.
var fourCCTable = []struct {
	code FourCC
	name string
	dxgi DXGIFormat
}{
	{MakeFourCC("DXT1"), "D3DFMT_DXT1", DXGIFormatBC1Unorm},
	{MakeFourCC("DXT2"), "D3DFMT_DXT2", DXGIFormatBC2Unorm},
	{MakeFourCC("DXT3"), "D3DFMT_DXT3", DXGIFormatBC2Unorm},
	{MakeFourCC("DXT4"), "D3DFMT_DXT4", DXGIFormatBC3Unorm},
	{MakeFourCC("DXT5"), "D3DFMT_DXT5", DXGIFormatBC3Unorm},
	{MakeFourCC("ATI1"), "ATI1", 80},
	{MakeFourCC("BC4U"), "BC4U", 80},
	{MakeFourCC("BC4S"), "BC4S", 81},
	{MakeFourCC("ATI2"), "ATI2", 83},
	{MakeFourCC("BC5U"), "BC5U", 83},
	{MakeFourCC("BC5S"), "BC5S", 84},
	{MakeFourCC("RGBG"), "D3DFMT_R8G8_B8G8", 68},
	{MakeFourCC("GRGB"), "D3DFMT_G8R8_G8B8", 69},
	{MakeFourCC("UYVY"), "D3DFMT_UYVY", DXGIFormatUnknown},
	{MakeFourCC("YUY2"), "D3DFMT_YUY2", DXGIFormatUnknown},
	{36, "D3DFMT_A16B16G16R16", 11},
	{110, "D3DFMT_Q16W16V16U16", 13},
	{111, "D3DFMT_R16F", 54},
	{112, "D3DFMT_G16R16F", 34},
	{113, "D3DFMT_A16B16G16R16F", 10},
	{114, "D3DFMT_R32F", 41},
	{115, "D3DFMT_G32R32F", 16},
	{116, "D3DFMT_A32B32G32R32F", 2},
	{117, "D3DFMT_CxV8U8", DXGIFormatUnknown},
	{FourCCDX10, "DX10", DXGIFormatUnknown},
}

var (
	dxgiNames    = make(map[DXGIFormat]string, len(dxgiTable))
	dxgiByName   = make(map[string]DXGIFormat, len(dxgiTable))
	fourCCNames  = make(map[FourCC]string, len(fourCCTable))
	fourCCByName = make(map[string]FourCC, len(fourCCTable))
	fourCCDXGI   = make(map[FourCC]DXGIFormat, len(fourCCTable))
)

func init() {
	for _, e := range dxgiTable {
		dxgiNames[e.id] = e.name
		dxgiByName[e.name] = e.id
	}
	for _, e := range fourCCTable {
		fourCCNames[e.code] = e.name
		fourCCByName[e.name] = e.code
		fourCCDXGI[e.code] = e.dxgi
	}
}

// DXGIName returns the canonical name of a DXGI format.
func DXGIName(f DXGIFormat) (string, bool) {
	name, ok := dxgiNames[f]
	return name, ok
}

// DXGIByName returns the DXGI format with the given canonical name.
func DXGIByName(name string) (DXGIFormat, bool) {
	f, ok := dxgiByName[name]
	return f, ok
}

// FourCCName returns the registry name of a FourCC code.
func FourCCName(c FourCC) (string, bool) {
	name, ok := fourCCNames[c]
	return name, ok
}

// FourCCByName returns the FourCC code registered under name.
func FourCCByName(name string) (FourCC, bool) {
	c, ok := fourCCByName[name]
	return c, ok
}

// DXGIFormats returns every registered DXGI format in table order.
func DXGIFormats() []DXGIFormat {
	out := make([]DXGIFormat, len(dxgiTable))
	for i, e := range dxgiTable {
		out[i] = e.id
	}
	return out
}

// FourCCs returns every registered FourCC code in table order.
func FourCCs() []FourCC {
	out := make([]FourCC, len(fourCCTable))
	for i, e := range fourCCTable {
		out[i] = e.code
	}
	return out
}
