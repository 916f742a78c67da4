// Package util provides common utility functions.
package util

// Compact returns s without zero elements. The original slice is not modified.
func Compact[S ~[]E, E comparable](s S) S {
	var zero E
	n := 0
	for _, v := range s {
		if v != zero {
			n++
		}
	}
	if n == len(s) {
		return s
	}
	s2 := make(S, 0, n)
	for _, v := range s {
		if v != zero {
			s2 = append(s2, v)
		}
	}
	return s2
}
