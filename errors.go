// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package at

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrOutOfBounds indicates an index that does not resolve to an element.
//
// The index either lies outside [-len, len) or does not fit the native
// integer widths at all. Every *OutOfBoundsError matches it:
//
//	if _, err := at.TryAt(v, i); errors.Is(err, at.ErrOutOfBounds) {
//	    // i is not a valid position in v
//	}
var ErrOutOfBounds = errors.New("index out of bounds")

// OutOfBoundsError reports a failed index resolution.
//
// Panicking accessors panic with this value in checked builds; the Try
// variants return it.
type OutOfBoundsError struct {
	// Len is the length of the sequence at the time of the access.
	Len uint
	// Index is the original index as passed by the caller, not the
	// wrapped offset.
	Index any
}

// Error renders the message as
// "index out of bounds: the len is <len> but the index is <index>".
//
// Integer indices are rendered in decimal, ignoring any String method of a
// named index type. Other values use their default format.
func (e *OutOfBoundsError) Error() string {
	return "index out of bounds: the len is " + strconv.FormatUint(uint64(e.Len), 10) +
		" but the index is " + formatIndex(e.Index)
}

func formatIndex(idx any) string {
	v := reflect.ValueOf(idx)
	switch {
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprint(idx)
	}
}

// Unwrap returns ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// IsOutOfBounds reports whether err is or wraps ErrOutOfBounds.
func IsOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}

// outOfBounds must stay cheap enough to inline into the accessors.
// Formatting waits until Error is called.
func outOfBounds[I Index](idx I, length uint) *OutOfBoundsError {
	return &OutOfBoundsError{Len: length, Index: idx}
}
