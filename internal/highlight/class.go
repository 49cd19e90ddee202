package highlight

import chroma "github.com/alecthomas/chroma/v2"

// ClassOf returns the CSS class for tokens of the given type,
// falling back from the exact type to its sub-category
// and then its category.
// An empty string means the token needs no styling.
func ClassOf(tt chroma.TokenType) string {
	if c, ok := chroma.StandardTypes[tt]; ok {
		return c
	}
	if c, ok := chroma.StandardTypes[tt.SubCategory()]; ok {
		return c
	}
	return chroma.StandardTypes[tt.Category()]
}
