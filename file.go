package pybat

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A File wraps one open line-oriented stream. A file is open until the
// first Close and never reopens; reading or writing after Close raises
// *ValueError. A handle has a single owner and no locking discipline.
type File struct {
	file *os.File
	r    *bufio.Reader
	w    *bufio.Writer
	// tw is the encoding layer under w; it must be closed to flush any
	// state the encoder holds.
	tw     io.WriteCloser
	path   string
	mode   string
	eof    bool
	closed bool
	// std marks the process streams, whose descriptors Close must not
	// release.
	std bool
}

// Stdin, Stdout, and Stderr wrap the process's standard streams.
// Closing them flushes but leaves the descriptors open.
var (
	Stdin  = &File{file: os.Stdin, r: bufio.NewReader(os.Stdin), path: "<stdin>", mode: "r", std: true}
	Stdout = &File{file: os.Stdout, w: bufio.NewWriter(os.Stdout), path: "<stdout>", mode: "w", std: true}
	Stderr = &File{file: os.Stderr, w: bufio.NewWriter(os.Stderr), path: "<stderr>", mode: "w", std: true}
)

// Open opens the named text file. The mode is "r" to read, "w" to
// write with truncation, or "a" to append; a trailing "b" is accepted
// and ignored. Failures from the filesystem raise *IOError.
func Open(name, mode string) *File {
	return OpenEncoding(name, mode, "utf8")
}

// OpenEncoding is Open with an explicit text encoding: "utf8",
// "ascii" or "latin1" (decoded as Windows-1252), or "utf16" (little
// endian with a byte order mark). An unknown encoding raises
// *ValueError.
func OpenEncoding(name, mode, enc string) *File {
	var e encoding.Encoding
	switch enc {
	case "", "utf8", "utf-8":
		// Host strings are already UTF-8.
	case "ascii", "latin1", "latin-1":
		e = charmap.Windows1252
	case "utf16", "utf-16":
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	default:
		panic(&ValueError{Message: "unknown encoding: " + enc})
	}
	var f *os.File
	var err error
	switch strings.TrimSuffix(mode, "b") {
	case "r":
		f, err = os.Open(name)
	case "w":
		f, err = os.Create(name)
	case "a":
		f, err = os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	default:
		panic(&ValueError{Message: "invalid mode: " + mode})
	}
	if err != nil {
		panic(NewIOError(err))
	}
	fl := &File{file: f, path: name, mode: mode}
	if mode[0] == 'r' {
		var r io.Reader = f
		if e != nil {
			r = transform.NewReader(f, e.NewDecoder())
		}
		fl.r = bufio.NewReader(r)
	} else {
		var w io.Writer = f
		if e != nil {
			tw := transform.NewWriter(f, e.NewEncoder())
			fl.tw = tw
			w = tw
		}
		fl.w = bufio.NewWriter(w)
	}
	return fl
}

// Path returns the name the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Mode returns the mode the file was opened with.
func (f *File) Mode() string {
	return f.mode
}

// ReadLine returns the next line with its terminator stripped. Once
// the stream is exhausted ok is false and stays false.
func (f *File) ReadLine() (line string, ok bool) {
	f.readable()
	if f.eof {
		return "", false
	}
	s, err := f.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			panic(NewIOError(err))
		}
		f.eof = true
		if s == "" {
			return "", false
		}
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

// ReadLines drains the rest of the stream into a slice of lines. It is
// not restartable; a drained handle yields an empty slice.
func (f *File) ReadLines() []string {
	lines := []string{}
	for s, ok := f.ReadLine(); ok; s, ok = f.ReadLine() {
		lines = append(lines, s)
	}
	return lines
}

// Lines returns a lazy, forward-only iterator over the remaining
// lines. Each advance reads one line from the stream, so ranging over
// it consumes the handle the way ReadLines does.
func (f *File) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s, ok := f.ReadLine(); ok; s, ok = f.ReadLine() {
			if !yield(s) {
				return
			}
		}
	}
}

// Read returns everything remaining in the stream.
func (f *File) Read() string {
	f.readable()
	b, err := io.ReadAll(f.r)
	if err != nil {
		panic(NewIOError(err))
	}
	f.eof = true
	return string(b)
}

// Write appends s to the file's buffer. Written text reaches the OS on
// Flush or Close.
func (f *File) Write(s string) {
	f.writable()
	if _, err := f.w.WriteString(s); err != nil {
		panic(NewIOError(err))
	}
}

// Flush forces buffered writes to the OS.
func (f *File) Flush() {
	f.writable()
	if err := f.w.Flush(); err != nil {
		panic(NewIOError(err))
	}
}

// Close flushes any buffered writes and releases the descriptor. A
// second Close is a no-op, but any read or write after the first
// raises *ValueError.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.w != nil {
		if err := f.w.Flush(); err != nil {
			return NewIOError(err)
		}
	}
	if f.tw != nil {
		if err := f.tw.Close(); err != nil {
			return NewIOError(err)
		}
	}
	if f.std {
		return nil
	}
	if err := f.file.Close(); err != nil {
		return NewIOError(err)
	}
	return nil
}

func (f *File) readable() {
	if f.closed {
		panic(&ValueError{Message: "I/O operation on closed file"})
	}
	if f.r == nil {
		panic(&IOError{Message: "file not open for reading: " + f.path})
	}
}

func (f *File) writable() {
	if f.closed {
		panic(&ValueError{Message: "I/O operation on closed file"})
	}
	if f.w == nil {
		panic(&IOError{Message: "file not open for writing: " + f.path})
	}
}
