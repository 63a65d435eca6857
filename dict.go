package pybat

import "fmt"

// A Dict is the mapping adapter behind translated dict literals and
// subscripts. Keys are unique; iteration order is not part of the
// surface.
type Dict[K comparable, V any] struct {
	items map[K]V
}

// An Item is one key-value pair of a dict literal.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// NewDict creates an empty dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{items: make(map[K]V)}
}

// DictOf creates a dict from literal pairs. A repeated key keeps the
// last value, as a literal with duplicate keys does.
func DictOf[K comparable, V any](pairs ...Item[K, V]) *Dict[K, V] {
	d := &Dict[K, V]{items: make(map[K]V, len(pairs))}
	for _, p := range pairs {
		d.items[p.Key] = p.Value
	}
	return d
}

// Get returns the value at key, or def if the key is missing. It never
// fails.
func (d *Dict[K, V]) Get(key K, def V) V {
	if v, ok := d.items[key]; ok {
		return v
	}
	return def
}

// At returns the value at key. A missing key raises *KeyError, which
// is what a translated subscript load requires.
func (d *Dict[K, V]) At(key K) V {
	v, ok := d.items[key]
	if !ok {
		panic(&KeyError{Message: fmt.Sprint(key)})
	}
	return v
}

// Put sets the value at key, inserting or overwriting. A zero-value
// Dict allocates on first insert, so the constructors are a
// convenience rather than a requirement.
func (d *Dict[K, V]) Put(key K, v V) {
	if d.items == nil {
		d.items = make(map[K]V)
	}
	d.items[key] = v
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.items[key]
	return ok
}

// Update merges every entry of other into d, overwriting on key
// collision. A nil other merges nothing.
func (d *Dict[K, V]) Update(other *Dict[K, V]) {
	if other == nil {
		return
	}
	if d.items == nil {
		d.items = make(map[K]V, len(other.items))
	}
	for k, v := range other.items {
		d.items[k] = v
	}
}

// Len returns the number of entries. Len of a nil dict is 0 so truth
// tests need no guard.
func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}
