// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build at_unchecked

package at

import "unsafe"

// Unchecked is true when the package is built with the at_unchecked tag.
//
// In this mode [At], [RefAt], [MutAt] and [ByteAt] skip the bounds
// comparison and address the element directly. Passing an index outside
// [-len, len) is undefined behavior: the access may read or corrupt
// unrelated memory. Callers must prove every index in bounds by
// construction. The Try variants still check.
const Unchecked = true

// At returns a copy of the element of s at idx without a bounds check.
func At[S ~[]E, E any, I Index](s S, idx I) E {
	return *elem([]E(s), offset(idx, uint(len(s))))
}

// RefAt returns a pointer to the element of s at idx without a bounds check.
func RefAt[S ~[]E, E any, I Index](s S, idx I) *E {
	return elem([]E(s), offset(idx, uint(len(s))))
}

// MutAt returns a pointer to the element of s at idx without a bounds check.
// The caller must hold exclusive access to s.
func MutAt[S ~[]E, E any, I Index](s S, idx I) *E {
	return elem([]E(s), offset(idx, uint(len(s))))
}

// ByteAt returns the byte of s at idx without a bounds check.
func ByteAt[S ~string, I Index](s S, idx I) byte {
	return *(*byte)(unsafe.Add(unsafe.Pointer(unsafe.StringData(string(s))), offset(idx, uint(len(s)))))
}

// offset returns the offset of idx with no range or representability check.
func offset[I Index](idx I, length uint) uint {
	if idx < 0 {
		return length + uint(idx)
	}
	return uint(idx)
}

// elem returns a pointer to s[i] without a bounds check.
func elem[E any](s []E, i uint) *E {
	var zero E
	// Equivalent to &s[i]
	return (*E)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), i*uint(unsafe.Sizeof(zero))))
}
