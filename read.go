package dds

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/apex/log"
)

// ReadConfig reads DDS file configuration without loading the payload.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrIO, path, err)
	}
	defer func() { _ = f.Close() }()

	header, err := readHeader(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("%q: %w", path, err)
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// ReadFile reads and parses a DDS or EDDS file.
// Nil opts uses log.Log and container detection.
func ReadFile(path string, opts *ReadOptions) (*Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrIO, path, err)
	}

	opts.logger().WithFields(log.Fields{
		"op":   "read",
		"path": path,
		"size": len(data),
	}).Debug("read file")

	s, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return s, nil
}

// WriteFile re-serializes the surface to path, see WriteTo.
func (s *Surface) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIO, path, err)
	}

	n, err := s.WriteTo(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %q: %v", ErrIO, path, cerr)
	}
	if err != nil {
		return err
	}

	s.log().WithFields(log.Fields{
		"op":    "write",
		"path":  path,
		"bytes": n,
	}).Debug("wrote surface")

	return nil
}
