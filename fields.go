package dds

import "fmt"

// Field describes one fixed-width field of an on-disk structure.
// Count > 1 declares a block of Count consecutive words (e.g. reserved1).
type Field struct {
	Name  string
	Size  int // bytes per word, 1..8
	Count int // words; 0 is treated as 1
}

// Words returns the number of words the field holds.
func (f Field) Words() int {
	if f.Count < 1 {
		return 1
	}
	return f.Count
}

// Len returns the byte width of the whole field.
func (f Field) Len() int {
	return f.Size * f.Words()
}

// Bits returns the bit width of one word.
func (f Field) Bits() int {
	return f.Size * 8
}

// Schema is an ordered field list; order defines byte offsets.
type Schema struct {
	Name   string
	Fields []Field
}

// Size returns the byte length the schema spans.
func (s Schema) Size() int {
	n := 0
	for _, f := range s.Fields {
		n += f.Len()
	}
	return n
}

// Lookup finds a field and its byte offset by name.
func (s Schema) Lookup(name string) (Field, int, bool) {
	off := 0
	for _, f := range s.Fields {
		if f.Name == name {
			return f, off, true
		}
		off += f.Len()
	}
	return Field{}, 0, false
}

// Record maps field names to decoded words; scalar fields hold one word.
type Record map[string][]uint64

// Word returns word 0 of the named field, or 0 when absent.
func (r Record) Word(name string) uint64 {
	if v := r[name]; len(v) > 0 {
		return v[0]
	}
	return 0
}

// Decode splits buf into the schema fields. Every word is stored
// least-significant byte first on disk. The schema must span buf exactly.
func (s Schema) Decode(buf []byte) (Record, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if size := s.Size(); len(buf) != size {
		return nil, fmt.Errorf("%w: %s: fields span %d bytes, buffer has %d", ErrSchema, s.Name, size, len(buf))
	}

	rec := make(Record, len(s.Fields))
	off := 0
	for _, f := range s.Fields {
		words := make([]uint64, f.Words())
		for i := range words {
			words[i] = getWord(buf[off:off+f.Size], f.Size)
			off += f.Size
		}
		rec[f.Name] = words
	}

	return rec, nil
}

// Encode is the inverse of Decode. Missing fields are written as zero;
// values wider than their field fail.
func (s Schema) Encode(rec Record) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for name := range rec {
		if _, _, ok := s.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Name, name)
		}
	}

	buf := make([]byte, s.Size())
	off := 0
	for _, f := range s.Fields {
		words := rec[f.Name]
		if len(words) > f.Words() {
			return nil, fmt.Errorf("%w: %s.%s: %d words, field holds %d", ErrSchema, s.Name, f.Name, len(words), f.Words())
		}
		for i := 0; i < f.Words(); i++ {
			var v uint64
			if i < len(words) {
				v = words[i]
			}
			if f.Size < 8 && v>>f.Bits() != 0 {
				return nil, fmt.Errorf("%w: %s.%s: value 0x%x exceeds %d bits", ErrSchema, s.Name, f.Name, v, f.Bits())
			}
			putWord(buf[off:off+f.Size], f.Size, v)
			off += f.Size
		}
	}

	return buf, nil
}

func (s Schema) check() error {
	for _, f := range s.Fields {
		if f.Size < 1 || f.Size > 8 {
			return fmt.Errorf("%w: %s.%s: word size %d", ErrSchema, s.Name, f.Name, f.Size)
		}
	}
	return nil
}

func getWord(b []byte, size int) uint64 {
	var v uint64
	for i := 0; i < size; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func putWord(b []byte, size int, v uint64) {
	for i := 0; i < size; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
