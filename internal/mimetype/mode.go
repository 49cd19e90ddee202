package mimetype

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Mode overrides the grammar used for a single MIME type.
//
// Its flag form is "mimetype:grammar" or "mimetype:grammar:quality".
// When the quality is omitted, [DefaultQuality] is used.
type Mode struct {
	MimeType string
	Grammar  string
	Quality  int
}

var _ flag.Getter = (*Mode)(nil)

// Get returns the mode.
func (m *Mode) Get() any { return *m }

// String returns the flag form of the mode.
func (m *Mode) String() string {
	if m.MimeType == "" && m.Grammar == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s:%d", m.MimeType, m.Grammar, m.Quality)
}

// Set parses the flag form into this mode.
func (m *Mode) Set(s string) error {
	parts := strings.Split(s, ":")
	quality := DefaultQuality
	switch len(parts) {
	case 2:
	case 3:
		q, err := strconv.Atoi(parts[2])
		if err != nil {
			return errtrace.Errorf("bad quality in %q: %w", s, err)
		}
		quality = q
	default:
		return errtrace.Errorf(`expected "mimetype:grammar" or "mimetype:grammar:quality", got %q`, s)
	}

	if parts[0] == "" || parts[1] == "" {
		return errtrace.Errorf("empty mime type or grammar in %q", s)
	}

	m.MimeType = parts[0]
	m.Grammar = parts[1]
	m.Quality = quality
	return nil
}
