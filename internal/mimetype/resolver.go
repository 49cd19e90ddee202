// Package mimetype maps MIME types to lexer grammars.
package mimetype

import (
	"errors"
	"sync"

	"braces.dev/errtrace"
	"go.abhg.dev/src2html/internal/highlight"
)

// DefaultQuality is the rank assigned to built-in MIME type mappings.
const DefaultQuality = 7

// ErrNotFound is reported when no grammar covers a MIME type.
var ErrNotFound = errors.New("no grammar for mime type")

// Entry is the grammar mapping for a single MIME type.
type Entry struct {
	// Grammar identifies the lexer grammar to tokenize with.
	Grammar string

	// Quality ranks this renderer against others
	// that can handle the same MIME type. Higher wins.
	Quality int
}

// Resolver maps MIME types to grammar entries.
//
// The table is built on first use from the tokenizer's registered
// grammars, with Modes applied on top, and is immutable afterwards.
// A Resolver is safe for concurrent use.
type Resolver struct {
	// Tokenizer supplies the built-in mappings.
	// If nil, only Modes are consulted.
	Tokenizer highlight.Grammarer

	// Modes override built-in mappings per MIME type.
	Modes []Mode

	once  sync.Once
	types map[string]Entry
}

func (r *Resolver) init() {
	r.once.Do(func() {
		types := make(map[string]Entry)
		if r.Tokenizer != nil {
			for _, g := range r.Tokenizer.Grammars() {
				id := g.Name
				if len(g.Aliases) > 0 {
					id = g.Aliases[0]
				}
				for _, mt := range g.MimeTypes {
					types[mt] = Entry{Grammar: id, Quality: DefaultQuality}
				}
			}
		}
		for _, m := range r.Modes {
			types[m.MimeType] = Entry{Grammar: m.Grammar, Quality: m.Quality}
		}
		r.types = types
	})
}

// Resolve returns the grammar entry for a MIME type,
// or [ErrNotFound] if no grammar covers it.
func (r *Resolver) Resolve(mimeType string) (Entry, error) {
	r.init()
	e, ok := r.types[mimeType]
	if !ok {
		return Entry{}, errtrace.Errorf("%q: %w", mimeType, ErrNotFound)
	}
	return e, nil
}

// Quality reports the rank for a MIME type.
// Unknown types report 0, never an error:
// zero is "no opinion", which is how callers rank candidates.
func (r *Resolver) Quality(mimeType string) int {
	r.init()
	return r.types[mimeType].Quality
}
