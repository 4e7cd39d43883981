// Package iotest provides helpers to connect io to tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs everything written to it
// to the given testing.TB, one entry per line.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	lines := bytes.Split(bytes.TrimSuffix(b, []byte("\n")), []byte("\n"))
	for _, line := range lines {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
