package highlight

import (
	"iter"

	chroma "github.com/alecthomas/chroma/v2"
)

// Coalesce converts a token stream into a stream of markup events,
// merging adjacent tokens that render with the same CSS class
// into a single span.
//
// Tokens with no CSS class produce bare Text events with no
// surrounding span. A token with empty text does not force a span
// boundary: it is absorbed, and any open span stays open.
//
// The returned sequence is lazy and single-use. It never adds,
// drops, or reorders source text: concatenating the Text events
// reproduces the token values exactly.
func Coalesce(tokens chroma.Iterator) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		var (
			class string // class of the current run
			run   bool   // a run is in progress
			open  bool   // the current run has an open span
		)
		for tok := tokens(); tok != chroma.EOF; tok = tokens() {
			c := ClassOf(tok.Type)

			if run && c == class {
				if !yield(Text{tok.Value}) {
					return
				}
				continue
			}

			// A class change carried by an empty token is invisible;
			// don't let it close a span that may still continue.
			if tok.Value == "" {
				continue
			}

			if open {
				if !yield(CloseSpan{}) {
					return
				}
				open = false
			}
			if c != "" {
				if !yield(OpenSpan{Class: c}) {
					return
				}
				open = true
			}
			class, run = c, true
			if !yield(Text{tok.Value}) {
				return
			}
		}
		if open {
			yield(CloseSpan{})
		}
	}
}
