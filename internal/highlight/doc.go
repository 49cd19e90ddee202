// Package highlight turns source code into a stream of markup events.
// It uses the Chroma library to tokenize the code.
//
// Tokenized code is reduced to a flat sequence of [Event]s:
// span boundaries annotated with CSS class names, and text.
// Runs of tokens that share a CSS class collapse into a single span,
// so the output carries as little structure as the styling allows.
package highlight
