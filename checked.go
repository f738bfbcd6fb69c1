// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !at_unchecked

package at

// Unchecked is false when bounds checks are compiled in.
const Unchecked = false

// At returns a copy of the element of s at idx.
//
// Negative indices count from the end of s. At panics with an
// *OutOfBoundsError if idx is out of bounds. When built with the
// at_unchecked tag, an out-of-bounds idx is undefined behavior.
//
// Example:
//
//	v := []int{8, 2, 1, 0}
//	at.At(v, -1)        // 0
//	at.At(v, uint8(1))  // 2
func At[S ~[]E, E any, I Index](s S, idx I) E {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		panic(outOfBounds(idx, uint(len(s))))
	}
	// off < len(s) is known here, so the compiler drops the bounds check.
	return s[off]
}

// RefAt returns a pointer to the element of s at idx for reading.
//
// The pointer addresses the backing array of s, so repeated calls with the
// same idx return the same pointer. RefAt may be called concurrently with
// other reads of s. Bounds violations are handled as in [At].
func RefAt[S ~[]E, E any, I Index](s S, idx I) *E {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		panic(outOfBounds(idx, uint(len(s))))
	}
	return &s[off]
}

// MutAt returns a pointer to the element of s at idx for writing.
//
// The caller must hold exclusive access to s while the pointer is in use:
// no other goroutine may read or write s concurrently. Only the addressed
// element may be modified; the length of s never changes. Bounds violations
// are handled as in [At].
//
// Example:
//
//	v := []int{8, 2, 1, 0}
//	*at.MutAt(v, -3) = 7  // v is now [8 7 1 0]
func MutAt[S ~[]E, E any, I Index](s S, idx I) *E {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		panic(outOfBounds(idx, uint(len(s))))
	}
	return &s[off]
}

// ByteAt returns the byte of s at idx.
// Bounds violations are handled as in [At].
func ByteAt[S ~string, I Index](s S, idx I) byte {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		panic(outOfBounds(idx, uint(len(s))))
	}
	return s[off]
}
