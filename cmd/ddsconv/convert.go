package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dblezek/tga"
	"github.com/spf13/pflag"
	"github.com/woozymasta/bcn"
	"go.coder.com/cli"
	"golang.org/x/image/bmp"

	"github.com/woozymasta/dds"
)

type encodeCmd struct {
	logFlags
	out  string
	dx10 bool
	fast bool
}

func (c *encodeCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "encode",
		Usage: "[flags] <image.png|bmp|tga>",
		Desc:  "Compress a raster image into a single-level BC1 DDS file.",
	}
}

func (c *encodeCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVarP(&c.out, "out", "o", "", "output file (default: input with .dds)")
	fl.BoolVar(&c.dx10, "dx10", false, "write a DX10 header with DXGI_FORMAT_BC1_UNORM")
	fl.BoolVar(&c.fast, "fast", false, "trade BC1 endpoint quality for speed")
}

func (c *encodeCmd) Run(fl *pflag.FlagSet) {
	requireArgs(fl, 1)
	logger := c.logger()
	in := fl.Arg(0)

	img, err := decodeImage(in)
	if err != nil {
		logger.WithError(err).WithField("path", in).Fatal("decode input")
	}

	opts := &dds.EncodeOptions{DX10: c.dx10, Logger: logger}
	if c.fast {
		opts.BCN = &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast}
	}

	s, err := dds.Encode(img, opts)
	if err != nil {
		logger.WithError(err).Fatal("encode")
	}

	out := c.out
	if out == "" {
		out = outputPath(in, "", "dds")
	}
	if err := s.WriteFile(out); err != nil {
		logger.WithError(err).Fatal("write")
	}
	logger.WithFields(log.Fields{"in": in, "out": out, "format": s.Format().String()}).Info("encoded")
}

// decodeImage picks the raster decoder by file extension.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dds.ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	case ".tga":
		return tga.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported input %q", filepath.Ext(path))
	}
}

type eddsCmd struct {
	logFlags
	out string
	raw bool
}

func (c *eddsCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "edds",
		Usage: "[flags] <file.dds>",
		Desc:  "Repack level 0 of a DDS file as a single-level Enfusion EDDS file.",
	}
}

func (c *eddsCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVarP(&c.out, "out", "o", "", "output file (default: input with .edds)")
	fl.BoolVar(&c.raw, "raw", false, "store a COPY block instead of trying LZ4")
}

func (c *eddsCmd) Run(fl *pflag.FlagSet) {
	requireArgs(fl, 1)
	logger := c.logger()
	in := fl.Arg(0)

	s, err := dds.ReadFile(in, &dds.ReadOptions{Logger: logger})
	if err != nil {
		logger.WithError(err).Fatal("read")
	}

	out := c.out
	if out == "" {
		out = outputPath(in, "", "edds")
	}
	f, err := os.Create(out)
	if err != nil {
		logger.WithError(err).Fatal("create")
	}
	if err := s.WriteEDDS(f, !c.raw); err != nil {
		_ = f.Close()
		logger.WithError(err).Fatal("write")
	}
	if err := f.Close(); err != nil {
		logger.WithError(err).Fatal("close")
	}
	logger.WithFields(log.Fields{"in": in, "out": out}).Info("packed")
}

type copyCmd struct {
	logFlags
}

func (c *copyCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "copy",
		Usage: "[flags] <in.dds> <out.dds>",
		Desc:  "Parse, validate and re-serialize a DDS file unchanged.",
	}
}

func (c *copyCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
}

func (c *copyCmd) Run(fl *pflag.FlagSet) {
	requireArgs(fl, 2)
	logger := c.logger()

	s, err := dds.ReadFile(fl.Arg(0), &dds.ReadOptions{Logger: logger})
	if err != nil {
		logger.WithError(err).Fatal("read")
	}
	if err := s.WriteFile(fl.Arg(1)); err != nil {
		logger.WithError(err).Fatal("write")
	}
}
