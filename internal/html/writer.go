// Package html writes markup event streams as HTML.
package html

import (
	"fmt"
	"html/template"
	"io"
	"iter"

	"braces.dev/errtrace"

	"go.abhg.dev/src2html/internal/highlight"
)

// Writer sinks markup events into an io.Writer as HTML.
//
// Text payloads are escaped; span events become <span> elements
// carrying the CSS class of their classification.
type Writer struct {
	W io.Writer
}

// WriteEvents writes a single event stream.
func (w *Writer) WriteEvents(events iter.Seq[highlight.Event]) error {
	for ev := range events {
		var err error
		switch e := ev.(type) {
		case highlight.OpenSpan:
			_, err = fmt.Fprintf(w.W, "<span class=%q>", e.Class)
		case highlight.CloseSpan:
			_, err = io.WriteString(w.W, "</span>")
		case highlight.Text:
			_, err = io.WriteString(w.W, template.HTMLEscapeString(e.Text))
		default:
			err = fmt.Errorf("unrecognized event type %T", e)
		}
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// WriteBlock writes an event stream wrapped in the code container
// that the theme stylesheets target.
func (w *Writer) WriteBlock(events iter.Seq[highlight.Event]) error {
	if _, err := io.WriteString(w.W, `<div class="code"><pre>`); err != nil {
		return errtrace.Wrap(err)
	}
	if err := w.WriteEvents(events); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := io.WriteString(w.W, "</pre></div>\n")
	return errtrace.Wrap(err)
}

// WritePlain writes content into the same container with no
// highlighting. It is the fallback for content no grammar covers.
func (w *Writer) WritePlain(content string) error {
	if _, err := io.WriteString(w.W, `<div class="code"><pre>`); err != nil {
		return errtrace.Wrap(err)
	}
	if _, err := io.WriteString(w.W, template.HTMLEscapeString(content)); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := io.WriteString(w.W, "</pre></div>\n")
	return errtrace.Wrap(err)
}
