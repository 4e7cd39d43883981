package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/hilite/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"in.html"},
			want: params{File: "in.html"},
		},
		{
			desc: "debug",
			give: []string{"-debug", "in.html"},
			want: params{Debug: true, File: "in.html"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string // expected message
	}{
		{
			desc: "no file",
			want: "exactly one input file",
		},
		{
			desc: "too many files",
			give: []string{"a.html", "b.html"},
			want: "exactly one input file",
		},
		{
			desc: "unrecognized",
			give: []string{"-foo=bar", "in.html"},
			want: "flag provided but not defined: -foo",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
