// Package testutils provides helpers for testing the pybat runtime.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pybat/pybat"
)

// LineFile writes the given lines, newline-terminated, to a fresh file
// under the test's temporary directory and returns its path.
func LineFile(t *testing.T, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lines.txt")
	data := ""
	if len(lines) > 0 {
		data = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(p, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

// CaptureStdout runs fn with pybat.Stdout redirected to a scratch file
// and returns everything fn printed.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stdout.txt")
	out := pybat.Open(p, "w")
	old := pybat.Stdout
	pybat.Stdout = out
	func() {
		defer func() {
			pybat.Stdout = old
			out.Close()
		}()
		fn()
	}()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// WithStdin runs fn with pybat.Stdin reading the given text.
func WithStdin(t *testing.T, text string, fn func()) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stdin.txt")
	if err := os.WriteFile(p, []byte(text), 0600); err != nil {
		t.Fatal(err)
	}
	in := pybat.Open(p, "r")
	old := pybat.Stdin
	pybat.Stdin = in
	defer func() {
		pybat.Stdin = old
		in.Close()
	}()
	fn()
}

// ExpectRaise runs fn and fails the test unless fn panics with an
// exception whose class is c or a subclass of c.
func ExpectRaise(t *testing.T, c *pybat.Class, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no exception raised; want %s", c.Name())
		}
		if !pybat.IsPyError(r) {
			panic(r)
		}
		if !pybat.IsInstance(r, c) {
			t.Fatalf("raised %s (%v); want %s", pybat.ClassName(r), r, c.Name())
		}
	}()
	fn()
}
