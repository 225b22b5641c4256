// Command ddsconv inspects DDS textures and converts them to and from raster images.
package main

import (
	"os"

	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/spf13/pflag"
	"go.coder.com/cli"
)

func main() {
	log.SetHandler(logcli.New(os.Stderr))
	log.SetLevel(log.InfoLevel)

	cli.RunRoot(&rootCmd{})
}

type rootCmd struct{}

func (r *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "ddsconv",
		Usage: "[subcommand] [flags]",
		Desc:  "Inspect DDS textures and convert them to and from PNG, BMP and TGA.",
	}
}

func (r *rootCmd) Run(fl *pflag.FlagSet) {
	fl.Usage()
}

func (r *rootCmd) Subcommands() []cli.Command {
	return []cli.Command{
		&infoCmd{},
		&exportCmd{},
		&encodeCmd{},
		&eddsCmd{},
		&copyCmd{},
	}
}

// logFlags is shared by every subcommand.
type logFlags struct {
	verbose bool
}

func (l *logFlags) register(fl *pflag.FlagSet) {
	fl.BoolVarP(&l.verbose, "verbose", "v", false, "log debug diagnostics")
}

// logger applies the level and returns the logger handed to the library.
func (l *logFlags) logger() log.Interface {
	if l.verbose {
		log.SetLevel(log.DebugLevel)
	}
	return log.Log
}

// requireArgs exits with usage when fewer than n positional args were given.
func requireArgs(fl *pflag.FlagSet, n int) {
	if fl.NArg() < n {
		fl.Usage()
		os.Exit(2)
	}
}
