package main

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/pflag"
	"go.coder.com/cli"

	"github.com/woozymasta/dds"
)

type infoCmd struct {
	logFlags
	yaml bool
}

func (c *infoCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "info",
		Usage: "[flags] <file.dds>...",
		Desc:  "Print every header field with its hex value and decoded flags.",
	}
}

func (c *infoCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.BoolVar(&c.yaml, "yaml", false, "print YAML instead of a table")
}

func (c *infoCmd) Run(fl *pflag.FlagSet) {
	requireArgs(fl, 1)
	logger := c.logger()

	for _, path := range fl.Args() {
		s, err := dds.ReadFile(path, &dds.ReadOptions{Logger: logger})
		if err != nil {
			logger.WithError(err).Fatal("read failed")
		}

		d := s.Header.Describe()
		if fl.NArg() > 1 && !c.yaml {
			_, _ = os.Stdout.WriteString("== " + path + "\n")
		}

		if c.yaml {
			out, err := d.YAML()
			if err != nil {
				logger.WithError(err).Fatal("yaml")
			}
			_, _ = os.Stdout.WriteString("---\n")
			_, _ = os.Stdout.Write(out)
			continue
		}

		if err := d.WriteText(os.Stdout); err != nil {
			logger.WithError(err).Fatal("write")
		}

		logger.WithFields(log.Fields{
			"path":      path,
			"container": s.Container.String(),
			"payload":   len(s.Payload),
		}).Debug("described")
	}
}
