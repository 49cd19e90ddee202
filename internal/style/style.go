// Package style resolves named themes to CSS.
//
// Themes come from the Chroma style registry. The CSS they produce
// targets the class names assigned by [highlight.ClassOf], scoped
// under a caller-chosen container selector.
package style

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"go.abhg.dev/src2html/internal/highlight"
)

// ErrNotFound is reported when no theme has the requested name.
var ErrNotFound = errors.New("no such theme")

// List returns the names of all registered themes.
func List() []string {
	return styles.Names()
}

// Resolve returns the theme with the given name,
// or [ErrNotFound] if it isn't registered.
func Resolve(name string) (*chroma.Style, error) {
	s, ok := styles.Registry[name]
	if !ok {
		return nil, errtrace.Errorf("%q: %w", name, ErrNotFound)
	}
	return s, nil
}

// Rules renders a theme's CSS rules scoped under a container selector.
// The container itself receives the theme's background rule.
func Rules(style *chroma.Style, selector string) string {
	var sb strings.Builder

	bg := style.Get(chroma.Background)
	if css := chromahtml.StyleEntryToCSS(bg); css != "" {
		fmt.Fprintf(&sb, "%s { %s }\n", selector, css)
	}

	types := style.Types()
	slices.Sort(types)

	seen := make(map[string]struct{})
	for _, tt := range types {
		if tt < 0 {
			// Formatter-level entries (background, line tables)
			// carry no token class.
			continue
		}
		class := highlight.ClassOf(tt)
		if class == "" {
			continue
		}
		if _, ok := seen[class]; ok {
			continue
		}
		seen[class] = struct{}{}

		// Entries inherit the background; subtract it so rules
		// carry only what differs from the container.
		css := chromahtml.StyleEntryToCSS(style.Get(tt).Sub(bg))
		if css == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s .%s { %s }\n", selector, class, css)
	}
	return sb.String()
}
