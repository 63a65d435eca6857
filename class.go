package pybat

import (
	"reflect"
	"sync"
)

// A Class identifies a class from a translated source. Translated
// isinstance tests and __class__ lookups resolve to Class values, so
// the set of classes is closed and known when a program is built; no
// reflection happens at a call site.
type Class struct {
	name string
	base *Class
}

// NewClass creates a class with the given name and base. A nil base
// means the class stands alone, outside the Exception hierarchy.
func NewClass(name string, base *Class) *Class {
	return &Class{name: name, base: base}
}

// Name returns the class name, as __name__ does.
func (c *Class) Name() string {
	return c.name
}

// Base returns the class this one derives from, or nil.
func (c *Class) Base() *Class {
	return c.base
}

// isa reports whether c is k or derives from k.
func (c *Class) isa(k *Class) bool {
	for ; c != nil; c = c.base {
		if c == k {
			return true
		}
	}
	return false
}

// Classer is implemented by translated types that carry their own
// class. The translator emits a PyClass method on every class it
// translates; Register covers types it cannot touch.
type Classer interface {
	PyClass() *Class
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*Class{}
)

// Register associates the Go type T with c in the class registry and
// returns c, so a generated registration can live in a var
// initializer. Later registrations for the same type win.
func Register[T any](c *Class) *Class {
	t := reflect.TypeOf((*T)(nil)).Elem()
	registryMu.Lock()
	registry[t] = c
	registryMu.Unlock()
	return c
}

// ClassOf returns the class of o, preferring the object's own PyClass
// method over the registry. It returns nil for values no translated
// class describes.
func ClassOf(o any) *Class {
	switch o := o.(type) {
	case nil:
		return nil
	case Classer:
		return o.PyClass()
	case PyException:
		return o.Class()
	}
	registryMu.RLock()
	c := registry[reflect.TypeOf(o)]
	registryMu.RUnlock()
	return c
}

// ClassName returns the name of o's class, or the empty string when o
// has none. It is the runtime behind __class__.__name__ chains.
func ClassName(o any) string {
	if c := ClassOf(o); c != nil {
		return c.Name()
	}
	return ""
}

// IsInstance reports whether the class of o is c or a subclass of c.
func IsInstance(o any, c *Class) bool {
	k := ClassOf(o)
	return k != nil && k.isa(c)
}

// Classes for the built-in exceptions, arranged so translated
// except-clauses can match on Exception and catch every runtime error.
var (
	ExceptionClass           = NewClass("Exception", nil)
	ValueErrorClass          = NewClass("ValueError", ExceptionClass)
	IOErrorClass             = NewClass("IOError", ExceptionClass)
	KeyErrorClass            = NewClass("KeyError", ExceptionClass)
	EOFErrorClass            = NewClass("EOFError", ExceptionClass)
	NotImplementedErrorClass = NewClass("NotImplementedError", ExceptionClass)
)
