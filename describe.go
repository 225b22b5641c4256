package dds

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FieldInfo is one header field as shown by field dumps.
type FieldInfo struct {
	Structure string     `yaml:"structure"`
	Name      string     `yaml:"name"`
	Offset    int        `yaml:"offset"`
	Words     []uint64   `yaml:"words,flow"`
	Hex       string     `yaml:"hex"`
	ASCII     string     `yaml:"ascii,omitempty"`
	Flags     []FlagInfo `yaml:"flags,omitempty"`
}

// FlagInfo is the state of one declared flag of a field.
type FlagInfo struct {
	Name string `yaml:"name"`
	Bit  int    `yaml:"bit"`
	Set  bool   `yaml:"set"`
}

// Description is a structured dump of a header.
type Description struct {
	Format    string      `yaml:"format"`
	DXGI      string      `yaml:"dxgi,omitempty"`
	DX10      bool        `yaml:"dx10"`
	AlphaMode string      `yaml:"alphaMode,omitempty"`
	Levels    int         `yaml:"levels"`
	Fields    []FieldInfo `yaml:"fields"`
}

// Describe lists every field of every header region in file order.
func (h *Header) Describe() Description {
	format := h.ResolvedFormat()
	d := Description{
		Format: format.String(),
		DX10:   h.HasDX10(),
		Levels: 1,
	}
	if dxgi := format.DXGIEquivalent(); dxgi != DXGIFormatUnknown {
		d.DXGI = dxgi.String()
	}
	// declared count, shown even when it is out of range
	if h.Caps&CapsMipmap != 0 && h.MipMapCount > 1 {
		d.Levels = int(h.MipMapCount)
	}

	off := 0
	d.Fields = appendFields(d.Fields, headerBeforeSchema, headerFlags, h.record(), &off)
	d.Fields = appendFields(d.Fields, pixelFormatSchema, pixelFormatFlags, h.PixelFormat.record(), &off)
	d.Fields = appendFields(d.Fields, headerAfterSchema, headerFlags, h.record(), &off)

	if h.HasDX10() && h.DX10 != nil {
		d.AlphaMode = h.DX10.AlphaMode().String()
		d.Fields = appendFields(d.Fields, dx10Schema, dx10Flags, h.DX10.record(), &off)
	}

	return d
}

func appendFields(out []FieldInfo, s Schema, flags []Flag, rec Record, off *int) []FieldInfo {
	for _, f := range s.Fields {
		words := make([]uint64, f.Words())
		copy(words, rec[f.Name])

		info := FieldInfo{
			Structure: s.Name,
			Name:      f.Name,
			Offset:    *off,
			Words:     words,
			Hex:       hexWords(words, f.Size),
		}
		if f.Words() == 1 {
			info.ASCII = printable(words[0], f.Size)
		}
		for _, fl := range flagsOf(flags, f.Name) {
			info.Flags = append(info.Flags, FlagInfo{
				Name: fl.Name,
				Bit:  fl.Bit(),
				Set:  words[0]&uint64(fl.Value) != 0,
			})
		}

		out = append(out, info)
		*off += f.Len()
	}
	return out
}

func hexWords(words []uint64, size int) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("0x%0*x", size*2, w)
	}
	return strings.Join(parts, " ")
}

// printable renders a word in file byte order when every byte is printable ASCII.
func printable(w uint64, size int) string {
	b := make([]byte, size)
	putWord(b, size, w)
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return ""
		}
	}
	return string(b)
}

// YAML renders the description as a YAML document.
func (d Description) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// WriteText writes one line per field, with set flags listed after the value.
func (d Description) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "format\t%s\n", d.Format)
	if d.DXGI != "" {
		fmt.Fprintf(tw, "dxgi\t%s\n", d.DXGI)
	}
	fmt.Fprintf(tw, "dx10\t%t\n", d.DX10)
	if d.AlphaMode != "" {
		fmt.Fprintf(tw, "alpha mode\t%s\n", d.AlphaMode)
	}
	fmt.Fprintf(tw, "levels\t%d\n\n", d.Levels)

	for _, f := range d.Fields {
		var set []string
		for _, fl := range f.Flags {
			if fl.Set {
				set = append(set, fl.Name)
			}
		}

		value := fmt.Sprint(f.Words[0])
		if len(f.Words) > 1 {
			value = fmt.Sprint(f.Words)
		}

		fmt.Fprintf(tw, "%s.%s\t%d\t%s\t%s\t%s\t%s\n",
			f.Structure, f.Name, f.Offset, f.Hex, value, f.ASCII, strings.Join(set, "|"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
