package pybat

import (
	"fmt"
	"strings"
)

// Str renders v the way str does: True and False for booleans, None
// for nil, the text itself for strings, and the natural formatting of
// anything else.
func Str(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// Print writes its arguments to standard output, space-separated and
// newline-terminated.
func Print(args ...any) {
	Fprint(Stdout, args...)
}

// Fprint is Print aimed at an open write-mode file.
func Fprint(f *File, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Str(a)
	}
	f.Write(strings.Join(parts, " "))
	f.Write("\n")
	if f.std {
		f.Flush()
	}
}

// RawInput writes prompt to standard output and returns one line from
// standard input without its terminator. End of input raises
// *EOFError.
func RawInput(prompt string) string {
	if prompt != "" {
		Stdout.Write(prompt)
	}
	Stdout.Flush()
	line, ok := Stdin.ReadLine()
	if !ok {
		panic(&EOFError{Message: "EOF when reading a line"})
	}
	return line
}
