package util

import "iter"

// SeqFirst returns the first value yielded by seq.
func SeqFirst[V any](seq iter.Seq[V]) (V, bool) {
	for v := range seq {
		return v, true
	}
	var v V
	return v, false
}
