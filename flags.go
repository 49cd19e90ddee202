package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"

	"go.abhg.dev/src2html/internal/flagvalue"
	"go.abhg.dev/src2html/internal/mimetype"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _defaultStyle is the theme used when none is configured.
const _defaultStyle = "trac"

const _usage = `USAGE: src2html [OPTIONS] [FILE ...]

Renders the given files (or stdin) as syntax-highlighted HTML,
picking a lexer grammar from the MIME type given with -t.

Every flag may also be set with a SRC2HTML_* environment variable,
e.g. SRC2HTML_STYLE=monokai.

OPTIONS

	-t TYPE
		MIME type of the input, e.g. 'text/x-python'.
		Required unless -serve, -css, or -styles is given.
	-mode TYPE:GRAMMAR[:QUALITY]
		Override the grammar used for a MIME type.
		May be given multiple times.
	-style NAME
		Theme used by -css. Defaults to '` + _defaultStyle + `'.
	-styles
		List available themes and exit.
	-css
		Write the stylesheet for -style to stdout and exit.
	-serve ADDR
		Serve theme stylesheets over HTTP at ADDR.
	-debug[=FILE]
		Print debugging output to stderr or FILE.
	-version
		Report the tool version.
	-h, -help
		Prints this message.
`

// params holds all arguments for src2html.
type params struct {
	version bool

	MimeType string
	Modes    []mimetype.Mode

	Style      string
	ListStyles bool
	CSS        bool

	Serve string

	Debug flagvalue.FileSwitch

	Files []string
}

// cliParser parses the command line arguments for src2html.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("src2html", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		fmt.Fprint(cmd.Stderr, _usage)
	}

	var p params

	// Rendering:
	fset.StringVar(&p.MimeType, "t", "", "")
	fset.Var(flagvalue.ListOf(&p.Modes), "mode", "")

	// Themes:
	fset.StringVar(&p.Style, "style", _defaultStyle, "")
	fset.BoolVar(&p.ListStyles, "styles", false, "")
	fset.BoolVar(&p.CSS, "css", false, "")

	// Server:
	fset.StringVar(&p.Serve, "serve", "", "")

	// Program-level:
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("SRC2HTML")); err != nil {
		return nil, errtrace.Wrap(err)
	}
	p.Files = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "src2html", _version)
		return nil, errHelp
	}

	if p.MimeType == "" && !p.ListStyles && !p.CSS && p.Serve == "" {
		fmt.Fprintln(cmd.Stderr, "Please provide a MIME type with -t.")
		fset.Usage()
		return nil, errtrace.Wrap(errInvalidArguments)
	}

	return p, nil
}
