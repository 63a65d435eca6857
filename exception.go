package pybat

import "fmt"

// PyException is the interface of every error value this runtime
// raises. Raised values travel by panic; recovered values can be
// classified with IsInstance or IsPyError.
type PyException interface {
	error
	Class() *Class
}

// An Exception is the base runtime exception. The concrete exceptions
// below are separate types rather than subclasses so Go code can match
// them with errors.As; their classes carry the hierarchy instead.
type Exception struct {
	Message string
}

func (e *Exception) Error() string { return e.Message }

// Class returns the Exception class.
func (e *Exception) Class() *Class { return ExceptionClass }

// NewExceptionf creates a base Exception with a formatted message.
func NewExceptionf(format string, args ...any) *Exception {
	return &Exception{Message: fmt.Sprintf(format, args...)}
}

// A ValueError signals an operation on a well-typed but unacceptable
// value: a failed int parse, a sum over nothing, use of a closed file.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }

// Class returns the ValueError class.
func (e *ValueError) Class() *Class { return ValueErrorClass }

// NewValueErrorf creates a ValueError with a formatted message.
func NewValueErrorf(format string, args ...any) *ValueError {
	return &ValueError{Message: fmt.Sprintf(format, args...)}
}

// An IOError carries a failure from the underlying stream or
// filesystem. The host error remains available through Unwrap.
type IOError struct {
	Message string
	Err     error
}

func (e *IOError) Error() string { return e.Message }

// Unwrap returns the host error that produced this one, if any.
func (e *IOError) Unwrap() error { return e.Err }

// Class returns the IOError class.
func (e *IOError) Class() *Class { return IOErrorClass }

// NewIOError wraps a host I/O error.
func NewIOError(err error) *IOError {
	return &IOError{Message: err.Error(), Err: err}
}

// A KeyError signals a dict subscript on a missing key.
type KeyError struct {
	Message string
}

func (e *KeyError) Error() string { return e.Message }

// Class returns the KeyError class.
func (e *KeyError) Class() *Class { return KeyErrorClass }

// NewKeyErrorf creates a KeyError with a formatted message.
func NewKeyErrorf(format string, args ...any) *KeyError {
	return &KeyError{Message: fmt.Sprintf(format, args...)}
}

// An EOFError signals reading past the end of standard input.
type EOFError struct {
	Message string
}

func (e *EOFError) Error() string { return e.Message }

// Class returns the EOFError class.
func (e *EOFError) Class() *Class { return EOFErrorClass }

// NewEOFErrorf creates an EOFError with a formatted message.
func NewEOFErrorf(format string, args ...any) *EOFError {
	return &EOFError{Message: fmt.Sprintf(format, args...)}
}

// A NotImplementedError marks a surface the translator declares but
// this runtime does not supply. It is a hard stop, not a condition to
// recover from.
type NotImplementedError struct {
	Message string
}

func (e *NotImplementedError) Error() string { return e.Message }

// Class returns the NotImplementedError class.
func (e *NotImplementedError) Class() *Class { return NotImplementedErrorClass }

// NewNotImplementedErrorf creates a NotImplementedError with a
// formatted message.
func NewNotImplementedErrorf(format string, args ...any) *NotImplementedError {
	return &NotImplementedError{Message: fmt.Sprintf(format, args...)}
}

// Raise panics with err. Translated throw statements compile to Raise
// so that the panic value is always a PyException.
func Raise(err PyException) {
	panic(err)
}

// IsPyError reports whether a recovered value is an exception raised
// by this runtime.
func IsPyError(v any) bool {
	_, ok := v.(PyException)
	return ok
}
