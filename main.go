// src2html renders source code as syntax-highlighted HTML.
//
// It reads files (or stdin), picks a lexer grammar from the content's
// MIME type, and writes markup annotated with CSS classes that the
// theme stylesheets target. It can also serve those stylesheets
// over HTTP, one per theme.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"braces.dev/errtrace"

	"go.abhg.dev/src2html/internal/errdefer"
	"go.abhg.dev/src2html/internal/highlight"
	"go.abhg.dev/src2html/internal/html"
	"go.abhg.dev/src2html/internal/mimetype"
	"go.abhg.dev/src2html/internal/render"
	"go.abhg.dev/src2html/internal/style"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("src2html: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, closerFunc(closeDebug))

	tokenizer := new(highlight.Chroma)
	svc := &render.Service{
		Types: &mimetype.Resolver{
			Tokenizer: tokenizer,
			Modes:     opts.Modes,
		},
		Tokenizer: tokenizer,
		Log:       log.New(debugw, "", 0),
	}

	switch {
	case opts.ListStyles:
		return errtrace.Wrap(cmd.listStyles())
	case opts.CSS:
		return errtrace.Wrap(cmd.writeCSS(opts.Style))
	case opts.Serve != "":
		return errtrace.Wrap(cmd.serve(opts.Serve))
	default:
		return errtrace.Wrap(cmd.highlight(svc, opts))
	}
}

// listStyles prints the name of every registered theme.
func (cmd *mainCmd) listStyles() error {
	for _, name := range style.List() {
		if _, err := fmt.Fprintln(cmd.Stdout, name); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// writeCSS prints the stylesheet for the chosen theme.
func (cmd *mainCmd) writeCSS(name string) error {
	sty, err := style.Resolve(name)
	if err != nil {
		return errtrace.Wrap(err)
	}

	body := style.Rules(sty, "div.code pre") + "\n" + style.Rules(sty, "table.code td")
	_, err = io.WriteString(cmd.Stdout, body)
	return errtrace.Wrap(err)
}

// serve runs the theme stylesheet server.
func (cmd *mainCmd) serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle(_stylePrefix+"/", &style.Handler{
		Prefix: _stylePrefix,
		Log:    cmd.log,
	})

	cmd.log.Printf("serving theme stylesheets on %v%v/<theme>.css", addr, _stylePrefix)
	return errtrace.Wrap(http.ListenAndServe(addr, mux))
}

const _stylePrefix = "/styles"

// highlight renders the requested files, or stdin if there are none.
func (cmd *mainCmd) highlight(svc *render.Service, opts *params) error {
	out := &html.Writer{W: cmd.Stdout}

	if len(opts.Files) == 0 {
		content, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(cmd.renderOne(svc, out, opts.MimeType, string(content)))
	}

	for _, file := range opts.Files {
		content, err := os.ReadFile(file)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := cmd.renderOne(svc, out, opts.MimeType, string(content)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (cmd *mainCmd) renderOne(svc *render.Service, out *html.Writer, mimeType, content string) error {
	events, err := svc.Render(mimeType, content)
	if err != nil {
		if errors.Is(err, render.ErrUnsupported) {
			// Plain fallback keeps the content readable.
			return errtrace.Wrap(out.WritePlain(content))
		}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(out.WriteBlock(events))
}

// closerFunc adapts a close function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }
