package dds

import (
	"errors"
	"testing"
)

var testSchema = Schema{
	Name: "TEST",
	Fields: []Field{
		{Name: "tag", Size: 4},
		{Name: "short", Size: 2},
		{Name: "byte", Size: 1},
		{Name: "pad", Size: 1},
		{Name: "block", Size: 4, Count: 2},
	},
}

func TestSchemaDecodeLittleEndian(t *testing.T) {
	t.Parallel()

	buf := []byte{
		'D', 'D', 'S', ' ',
		0x34, 0x12,
		0xff,
		0x00,
		0x01, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80,
	}

	rec, err := testSchema.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := rec.Word("tag"); got != Magic {
		t.Fatalf("tag = 0x%x, want 0x%x", got, Magic)
	}
	if got := rec.Word("short"); got != 0x1234 {
		t.Fatalf("short = 0x%x, want 0x1234", got)
	}
	if got := rec.Word("byte"); got != 0xff {
		t.Fatalf("byte = 0x%x, want 0xff", got)
	}
	if got := rec["block"]; len(got) != 2 || got[0] != 1 || got[1] != 0x80000000 {
		t.Fatalf("block = %#v", got)
	}
}

func TestSchemaEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	rec := Record{
		"tag":   {uint64(MakeFourCC("DX10"))},
		"short": {0xbeef},
		"byte":  {7},
		"block": {0xdeadbeef, 2},
	}

	buf, err := testSchema.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(buf) != testSchema.Size() {
		t.Fatalf("len = %d, want %d", len(buf), testSchema.Size())
	}

	got, err := testSchema.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for name, words := range rec {
		for i, w := range words {
			if got[name][i] != w {
				t.Fatalf("%s[%d] = 0x%x, want 0x%x", name, i, got[name][i], w)
			}
		}
	}
	if got.Word("pad") != 0 {
		t.Fatalf("missing field not zero: %d", got.Word("pad"))
	}
}

func TestSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "short-buffer",
			run: func() error {
				_, err := testSchema.Decode(make([]byte, testSchema.Size()-1))
				return err
			},
			wantErr: ErrSchema,
		},
		{
			name: "long-buffer",
			run: func() error {
				_, err := testSchema.Decode(make([]byte, testSchema.Size()+1))
				return err
			},
			wantErr: ErrSchema,
		},
		{
			name: "unknown-field",
			run: func() error {
				_, err := testSchema.Encode(Record{"nope": {1}})
				return err
			},
			wantErr: ErrUnknownField,
		},
		{
			name: "value-overflow",
			run: func() error {
				_, err := testSchema.Encode(Record{"byte": {0x100}})
				return err
			},
			wantErr: ErrSchema,
		},
		{
			name: "too-many-words",
			run: func() error {
				_, err := testSchema.Encode(Record{"block": {1, 2, 3}})
				return err
			},
			wantErr: ErrSchema,
		},
		{
			name: "bad-word-size",
			run: func() error {
				s := Schema{Name: "BAD", Fields: []Field{{Name: "x", Size: 9}}}
				_, err := s.Decode(make([]byte, 9))
				return err
			},
			wantErr: ErrSchema,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if err := tc.run(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSchemaLookup(t *testing.T) {
	t.Parallel()

	f, off, ok := headerSchema.Lookup("caps")
	if !ok {
		t.Fatal("caps not found")
	}
	if f.Bits() != 32 {
		t.Fatalf("caps bits = %d", f.Bits())
	}
	// caps follows reserved1 in the combined schema; the pixel format is not part of it
	if off != 76 {
		t.Fatalf("caps offset = %d, want 76", off)
	}

	if _, _, ok := headerSchema.Lookup("fourCC"); ok {
		t.Fatal("fourCC must belong to the pixel format schema")
	}

	if got := headerBeforeSchema.Size() + pixelFormatSchema.Size() + headerAfterSchema.Size(); got != MinFileSize {
		t.Fatalf("header regions span %d bytes, want %d", got, MinFileSize)
	}
	if dx10Schema.Size() != DX10HeaderSize {
		t.Fatalf("dx10 schema spans %d bytes", dx10Schema.Size())
	}
}
