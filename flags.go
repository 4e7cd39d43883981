package main

import (
	"flag"
	"fmt"
	"io"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = fmt.Errorf("invalid arguments")
)

// params holds all arguments for hilite.
type params struct {
	version bool

	Debug bool
	File  string
}

// cliParser parses the command line arguments for hilite.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

const _usage = `USAGE: hilite [OPTIONS] FILE

Highlights fenced code blocks in the HTML document FILE
and writes the result to stdout.

OPTIONS

  -debug
	log skipped code blocks to stderr
  -version
	print the version of hilite and exit
  -h, -help
	print this message and exit
`

func (p *cliParser) Parse(args []string) (*params, error) {
	flag := flag.NewFlagSet("hilite", flag.ContinueOnError)
	flag.SetOutput(p.Stderr)
	flag.Usage = func() {
		fmt.Fprint(p.Stderr, _usage)
	}

	var opts params
	flag.BoolVar(&opts.Debug, "debug", false, "")
	flag.BoolVar(&opts.version, "version", false, "")

	if err := flag.Parse(args); err != nil {
		return nil, err
	}

	if opts.version {
		fmt.Fprintln(p.Stdout, "hilite", _version)
		return nil, errHelp
	}

	args = flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(p.Stderr, "Please provide exactly one input file.")
		flag.Usage()
		return nil, errInvalidArguments
	}

	opts.File = args[0]
	return &opts, nil
}
