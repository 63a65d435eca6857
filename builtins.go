package pybat

import (
	"io"
	"strconv"
	"strings"
)

// Len returns the number of elements in xs.
func Len[E any](xs []E) int {
	return len(xs)
}

// LenString returns the length of s in bytes, the unit translated
// sources index strings by.
func LenString(s string) int {
	return len(s)
}

// Sum adds the elements of xs. The sequence must be nonempty; there is
// no identity element, and summing nothing raises *ValueError.
func Sum(xs []int) int {
	if len(xs) == 0 {
		panic(&ValueError{Message: "sum of empty sequence"})
	}
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

// Int parses s as a decimal integer. Surrounding whitespace is
// allowed; anything else raises *ValueError.
func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		panic(NewValueErrorf("invalid literal for int(): %q", s))
	}
	return n
}

// With invokes body with v and closes v on the way out, on every exit
// path. A panic from body still closes v and then propagates. A close
// failure raises *IOError, unless the body's own panic is already in
// flight, in which case that panic wins.
func With[C io.Closer](v C, body func(C)) {
	panicked := true
	defer func() {
		err := v.Close()
		if panicked || err == nil {
			return
		}
		if e, ok := err.(PyException); ok {
			panic(e)
		}
		panic(NewIOError(err))
	}()
	body(v)
	panicked = false
}
