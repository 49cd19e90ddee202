package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/src2html/internal/iotest"
	"go.abhg.dev/src2html/internal/mimetype"
)

func TestCliParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "mime type and files",
			give: []string{"-t", "text/x-python", "a.py", "b.py"},
			want: params{
				MimeType: "text/x-python",
				Style:    _defaultStyle,
				Files:    []string{"a.py", "b.py"},
			},
		},
		{
			desc: "modes",
			give: []string{
				"-t", "text/x-python",
				"-mode", "text/x-foo:bar",
				"-mode=text/x-baz:qux:9",
			},
			want: params{
				MimeType: "text/x-python",
				Style:    _defaultStyle,
				Modes: []mimetype.Mode{
					{MimeType: "text/x-foo", Grammar: "bar", Quality: 7},
					{MimeType: "text/x-baz", Grammar: "qux", Quality: 9},
				},
			},
		},
		{
			desc: "styles listing needs no mime type",
			give: []string{"-styles"},
			want: params{Style: _defaultStyle, ListStyles: true},
		},
		{
			desc: "css needs no mime type",
			give: []string{"-css", "-style", "monokai"},
			want: params{Style: "monokai", CSS: true},
		},
		{
			desc: "serve needs no mime type",
			give: []string{"-serve", ":8080"},
			want: params{Style: _defaultStyle, Serve: ":8080"},
		},
		{
			desc: "debug with file",
			give: []string{"-t", "text/x-python", "-debug=log.txt"},
			want: params{
				MimeType: "text/x-python",
				Style:    _defaultStyle,
				Debug:    "log.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestCliParser_missingMimeType(t *testing.T) {
	t.Parallel()

	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse(nil)
	assert.ErrorIs(t, err, errInvalidArguments)
}

func TestCliParser_badMode(t *testing.T) {
	t.Parallel()

	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-mode", "not-a-mode"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errHelp)
}

func TestCliParser_help(t *testing.T) {
	t.Parallel()

	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-h"})
	assert.ErrorIs(t, err, errHelp)
}

func TestCliParser_env(t *testing.T) {
	t.Setenv("SRC2HTML_STYLE", "monokai")

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-css"})
	require.NoError(t, err)
	assert.Equal(t, "monokai", got.Style)
}
