// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package at provides indexing helpers for slices and strings.
//
// Compared with the built-in index expression, the helpers:
//
//   - accept any integer type as the index, not just int
//   - accept negative indices counting from the end: -1 is the last element
//   - make the kind of access explicit: by value, by reference for reading,
//     or by reference for writing
//   - can drop every bounds check in the program with one build tag
//
// # Quick Start
//
//	v := []int{8, 2, 1, 0}
//
//	at.At(v, -1)        // 0 (copy of the last element)
//	*at.RefAt(v, 2)     // 1 (pointer for reading)
//	*at.MutAt(v, -3) = 7  // v is now [8 7 1 0]
//
// # Index Types
//
// The index may be any type in [Index]: int, int8 ... int64, uint, uint8 ...
// uint64, uintptr, and named types built on them. The same logical value
// resolves the same way regardless of width or signedness:
//
//	at.At(v, int8(-1)) == at.At(v, int64(-1))
//	at.At(v, uint8(2)) == at.At(v, uintptr(2))
//
// Handles stored as uintptr (pool indices from an indirect queue, for
// example) can index a slice without conversion:
//
//	idx, _ := freeList.Dequeue()
//	buf := at.RefAt(pool, idx)
//
// # Resolution
//
// [Resolve] is the algorithm behind every accessor. For a sequence of
// length n it maps idx in [0, n) to itself and idx in [-n, -1] to n+idx.
// Everything else, including indices that do not fit the native integer
// widths, is out of bounds.
//
// A negative index is added to the length with wrapping unsigned
// arithmetic. When the index is too negative, the sum wraps to a value
// greater than or equal to n, so one comparison against n rejects both
// ordinary and wrapped results. There is no separate overflow branch, and
// for a constant index the whole resolution folds to what the built-in
// index expression does.
//
// # Failure Policy
//
// By default an out-of-bounds index panics with an [*OutOfBoundsError]:
//
//	index out of bounds: the len is 1 but the index is -2
//
// The index in the message is the original argument, not the wrapped
// offset.
//
// Building with the at_unchecked tag removes the check:
//
//	go build -tags at_unchecked ./...
//
// In that mode an out-of-bounds index is undefined behavior. Use it only
// when every index is in bounds by construction and the checks show up in
// profiles. [Unchecked] reports which mode the package was built in.
//
// # Fallible Access
//
// [TryAt], [TryRefAt], [TryMutAt] and [TryByteAt] return an error instead
// of panicking and check bounds in both modes:
//
//	elem, err := at.TryAt(v, i)
//	if at.IsOutOfBounds(err) {
//	    // i is not a position in v
//	}
//
// # Thread Safety
//
// The helpers hold no state. [At], [RefAt], [ByteAt] and their Try variants
// only read, and may run concurrently against the same sequence. [MutAt]
// requires the caller to hold exclusive access to the sequence for as long
// as the returned pointer is used.
//
// # Dependencies
//
// This package uses [golang.org/x/exp/constraints] to describe the index
// type set.
package at
