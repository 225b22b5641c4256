/*
Package dds reads DirectDraw Surface (DDS) containers and decodes BC1 (DXT1)
block-compressed level 0 into RGBA rows for export to raster image formats.

A DDS file is a 4-byte "DDS " magic, a 124-byte header with an embedded
32-byte pixel format, an optional 20-byte DX10 header (present when the pixel
format carries the "DX10" FourCC), then the pixel payload. Header regions are
decoded through static field schemas, so the same tables drive parsing,
re-serialization and the field dump used by tooling.

BC1 payloads are decompressed block by block into block-major RGBA and then
reordered into scanlines. Uncompressed 24/32-bit RGB(A) payloads are mapped to
RGBA through their channel masks. Payloads stored as Enfusion EDDS block tables
(COPY or LZ4 chunk-stream blocks) are unpacked to level 0 first.

The package is offline tooling: a Surface is owned by a single caller and all
work happens in memory.
*/
package dds
