package pybat

// Integer constrains the integer types a translated expression can
// produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Truth reports whether n tests true in a boolean context. Zero is the
// only false integer.
func Truth[T Integer](n T) bool {
	return n != 0
}

// TruthString reports whether s tests true. The empty string is false.
func TruthString(s string) bool {
	return s != ""
}

// TruthList reports whether xs tests true. Empty and nil are false.
func TruthList[E any](xs []E) bool {
	return len(xs) != 0
}

// TruthDict reports whether d tests true. Nil and empty dicts are
// false.
func TruthDict[K comparable, V any](d *Dict[K, V]) bool {
	return d.Len() != 0
}
