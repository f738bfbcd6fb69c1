// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package at

// TryAt is like [At] but returns an *OutOfBoundsError instead of
// panicking. It checks bounds in every build mode.
func TryAt[S ~[]E, E any, I Index](s S, idx I) (E, error) {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		var zero E
		return zero, outOfBounds(idx, uint(len(s)))
	}
	return s[off], nil
}

// TryRefAt is like [RefAt] but returns (nil, *OutOfBoundsError) instead
// of panicking.
func TryRefAt[S ~[]E, E any, I Index](s S, idx I) (*E, error) {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		return nil, outOfBounds(idx, uint(len(s)))
	}
	return &s[off], nil
}

// TryMutAt is like [MutAt] but returns (nil, *OutOfBoundsError) instead
// of panicking. The exclusivity requirement of MutAt applies.
func TryMutAt[S ~[]E, E any, I Index](s S, idx I) (*E, error) {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		return nil, outOfBounds(idx, uint(len(s)))
	}
	return &s[off], nil
}

// TryByteAt is like [ByteAt] but returns (0, *OutOfBoundsError) instead
// of panicking.
func TryByteAt[S ~string, I Index](s S, idx I) (byte, error) {
	off, ok := Resolve(idx, uint(len(s)))
	if !ok {
		return 0, outOfBounds(idx, uint(len(s)))
	}
	return s[off], nil
}
