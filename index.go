// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package at

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Index is the set of types accepted as an index.
//
// Every built-in integer type qualifies, signed or unsigned, of any width,
// along with named types whose underlying type is one of them. The set is
// closed: conversion to the native widths is done by this package, so there
// is nothing for other packages to implement.
type Index interface {
	constraints.Signed | constraints.Unsigned
}

// Resolve converts idx into an offset for a sequence of the given length.
//
// Non-negative indices are offsets from the start. Negative indices count
// from the end, so -1 is the last element and -length the first.
// Resolve reports false when idx lies outside [-length, length); the
// offset is then meaningless and must not be used.
//
// The returned offset is only meaningful for the length it was resolved
// against.
//
// length has the native unsigned width, so Resolve stays correct for
// lengths above math.MaxInt. Resolve is small enough to inline; for a
// constant idx the range checks fold away and what remains is one add
// and one comparison.
//
// Example:
//
//	off, ok := at.Resolve(-1, 4)         // 3, true
//	_, ok = at.Resolve(int8(-5), 4)      // false
//	off, ok = at.Resolve(uint64(2), 4)   // 2, true
func Resolve[I Index](idx I, length uint) (uint, bool) {
	var off uint
	if idx < 0 {
		// Only 64-bit indices on 32-bit platforms fall below math.MinInt.
		if int64(idx) < math.MinInt {
			return 0, false
		}
		// The sum wraps past math.MaxUint exactly when -idx > length, and
		// every wrapped result is >= length, so the comparison below
		// rejects it.
		off = length + uint(idx)
	} else {
		if uint64(idx) > math.MaxUint {
			return 0, false
		}
		off = uint(idx)
	}
	return off, off < length
}
