package pybat

import "iter"

// Range returns the ascending integers from lo through hi. The
// interval is closed at both ends; translated loops count on reaching
// hi itself. An empty slice results when hi is below lo.
func Range(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	xs := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		xs = append(xs, i)
	}
	return xs
}

// Enumerate yields (index, element) pairs over xs, counting from 0 in
// source order. The sequence is lazy; nothing is copied.
func Enumerate[E any](xs []E) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, x := range xs {
			if !yield(i, x) {
				return
			}
		}
	}
}
