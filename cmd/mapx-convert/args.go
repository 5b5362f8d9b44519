package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errHelp = errors.New("help requested")

type options struct {
	in  string
	out string

	configPath string
	verbose    bool
	debug      bool
	strict     bool
	strictSet  bool
	indent     int
	indentSet  bool
	noColor    bool
}

func parseArgs(name string, args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration `file`")
	fs.BoolVar(&o.verbose, "v", false, "log conversion progress")
	fs.BoolVar(&o.debug, "vv", false, "log debug details and dump parsed documents")
	fs.BoolVar(&o.strict, "strict", false, "fail when the conversion produces warnings")
	fs.IntVar(&o.indent, "indent", 0, "output indentation `width` (overrides the configuration)")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: mapx-convert %s [flags] IN [OUT]\n\nflags:\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, errHelp
		}

		return o, fmt.Errorf("bad arguments: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			o.strictSet = true
		case "indent":
			o.indentSet = true
		}
	})

	switch fs.NArg() {
	case 1:
		o.in = fs.Arg(0)
	case 2:
		o.in, o.out = fs.Arg(0), fs.Arg(1)
	default:
		return o, fmt.Errorf("%s needs IN and an optional OUT, got %d arguments", name, fs.NArg())
	}

	if o.indentSet && o.indent < 0 {
		return o, fmt.Errorf("negative indent %d", o.indent)
	}

	return o, nil
}
