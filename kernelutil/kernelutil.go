// Package kernelutil holds small helpers for operator-kernel implementations
// that don't depend on any tensor representation: buffer alignment checks and
// thread-name sanitization.
package kernelutil

import (
	"strings"
)

// InnerDimsAligned reports whether the byte span of one outermost-dimension
// slice of a tensor with the given dimensions -- the distance in bytes between
// &tensor[i] and &tensor[i+1] -- is a multiple of alignBytes. Kernels use it
// to decide whether per-row vectorized paths are safe.
//
// A zero-rank shape, a zero first dimension or a non-positive alignment
// returns false.
func InnerDimsAligned(dims []int, elemBytes, alignBytes int) bool {
	if len(dims) == 0 || dims[0] == 0 || alignBytes <= 0 {
		return false
	}
	innerSize := 1
	for _, dim := range dims[1:] {
		innerSize *= dim
	}
	return (innerSize*elemBytes)%alignBytes == 0
}

// SanitizeThreadSuffix returns suffix with every character outside
// [a-zA-Z0-9_-] replaced by '_', so it can be appended to a thread or worker
// pool name.
func SanitizeThreadSuffix(suffix string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, suffix)
}
