package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Grammar describes a lexer grammar known to a tokenizer.
type Grammar struct {
	Name      string
	Aliases   []string
	MimeTypes []string
}

// Grammarer enumerates the grammars a tokenizer understands.
type Grammarer interface {
	Grammars() []Grammar
}

// Tokenizer analyzes source text and generates a stream of tokens.
type Tokenizer interface {
	Grammarer

	// Tokenize lexes text with the named grammar.
	Tokenize(grammar, text string) (chroma.Iterator, error)
}

// Chroma is a [Tokenizer] backed by the global Chroma lexer registry.
type Chroma struct{}

var _ Tokenizer = (*Chroma)(nil)

// Grammars lists every lexer registered with Chroma.
func (*Chroma) Grammars() []Grammar {
	all := lexers.GlobalLexerRegistry.Lexers
	grammars := make([]Grammar, 0, len(all))
	for _, l := range all {
		cfg := l.Config()
		grammars = append(grammars, Grammar{
			Name:      cfg.Name,
			Aliases:   cfg.Aliases,
			MimeTypes: cfg.MimeTypes,
		})
	}
	return grammars
}

// Tokenize lexes text with the named grammar using Chroma.
func (*Chroma) Tokenize(grammar, text string) (chroma.Iterator, error) {
	lexer := lexers.Get(grammar)
	if lexer == nil {
		return nil, errtrace.Errorf("no lexer for grammar %q", grammar)
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	return it, errtrace.Wrap(err)
}
