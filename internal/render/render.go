// Package render turns MIME-typed content into highlighted markup.
package render

import (
	"errors"
	"iter"
	"log"
	"strings"

	"braces.dev/errtrace"

	"go.abhg.dev/src2html/internal/highlight"
	"go.abhg.dev/src2html/internal/mimetype"
)

// ErrUnsupported is reported when content cannot be highlighted,
// whether because no grammar covers its MIME type or because the
// tokenizer rejected it. Either way the caller's recovery is the
// same: fall back to plain, unhighlighted rendering.
var ErrUnsupported = errors.New("cannot highlight mime type")

// Service renders source code as a stream of markup events.
type Service struct {
	// Types maps MIME types to grammars.
	Types *mimetype.Resolver

	// Tokenizer lexes source text.
	// If nil, highlighting is unavailable and every Render call
	// reports ErrUnsupported.
	Tokenizer highlight.Tokenizer

	// Log, if set, receives debug messages.
	Log *log.Logger
}

// Render highlights content of the given MIME type.
// Parameters after ';' in the MIME type are ignored.
//
// The returned sequence is lazy and must be consumed at most once.
func (s *Service) Render(mimeType, content string) (iter.Seq[highlight.Event], error) {
	if s.Tokenizer == nil {
		return nil, errtrace.Errorf("%q: %w", mimeType, ErrUnsupported)
	}

	mt := baseType(mimeType)
	entry, err := s.Types.Resolve(mt)
	if err != nil {
		return nil, errtrace.Errorf("%q: %w", mimeType, ErrUnsupported)
	}

	tokens, err := s.Tokenizer.Tokenize(entry.Grammar, content)
	if err != nil {
		if s.Log != nil {
			s.Log.Printf("tokenize %q as %q: %v", mt, entry.Grammar, err)
		}
		return nil, errtrace.Errorf("%q: %w", mimeType, ErrUnsupported)
	}

	return highlight.Coalesce(tokens), nil
}

// Quality reports how well this renderer handles the given MIME type.
// Zero means it has no opinion.
func (s *Service) Quality(mimeType string) int {
	if s.Tokenizer == nil {
		return 0
	}
	return s.Types.Quality(baseType(mimeType))
}

func baseType(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(mt)
}
