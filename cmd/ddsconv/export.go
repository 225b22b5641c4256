package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/pflag"
	"go.coder.com/cli"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/dds"
)

type exportCmd struct {
	logFlags
	format  string
	outDir  string
	workers int
}

func (c *exportCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "export",
		Usage: "[flags] <file.dds>...",
		Desc:  "Decode level 0 of each file and write it as PNG, BMP or TGA.",
	}
}

func (c *exportCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVarP(&c.format, "format", "f", "png", "output format: png, bmp or tga")
	fl.StringVarP(&c.outDir, "out", "o", "", "output directory (default: next to the input)")
	fl.IntVarP(&c.workers, "jobs", "j", runtime.GOMAXPROCS(0), "files converted in parallel")
}

func (c *exportCmd) Run(fl *pflag.FlagSet) {
	requireArgs(fl, 1)
	logger := c.logger()

	enc, ok := dds.EncoderFor(c.format)
	if !ok {
		logger.WithField("format", c.format).Fatal("unknown output format")
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(c.workers, 1))

	for _, path := range fl.Args() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := outputPath(path, c.outDir, c.format)
			if err := exportFile(path, out, enc, logger); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.WithFields(log.Fields{"in": path, "out": out}).Info("exported")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("export failed")
	}
}

// exportFile owns one Surface from read to export.
func exportFile(in, out string, enc dds.RowEncoder, logger log.Interface) error {
	s, err := dds.ReadFile(in, &dds.ReadOptions{Logger: logger})
	if err != nil {
		return err
	}
	if err := s.Decompress(); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%w: %v", dds.ErrIO, err)
	}
	if err := s.Export(f, enc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", dds.ErrIO, err)
	}
	return nil
}

// outputPath swaps the extension of in and moves it to dir when set.
func outputPath(in, dir, ext string) string {
	base := strings.TrimSuffix(in, filepath.Ext(in)) + "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	if dir == "" {
		return base
	}
	return filepath.Join(dir, filepath.Base(base))
}
