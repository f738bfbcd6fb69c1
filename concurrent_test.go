// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file shares elements between goroutines through atomix atomics.
// The race detector cannot observe their ordering, so the tests are
// excluded from race builds.

package at_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/at"
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Test Helpers
// =============================================================================

// waitForCount waits until counter reaches target or timeout expires.
func waitForCount(t *testing.T, timeout time.Duration, counter *atomix.Int64, target int64, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for counter.Load() < target {
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: %s (got %d, want %d)", timeout, msg, counter.Load(), target)
		}
		backoff.Wait()
	}
}

// =============================================================================
// Concurrent Reads
// =============================================================================

// TestConcurrentReaders runs At and RefAt from many goroutines against the
// same slice. Reads need no exclusivity.
func TestConcurrentReaders(t *testing.T) {
	v := make([]int, 256)
	for i := range v {
		v[i] = i * 3
	}

	numReaders := runtime.GOMAXPROCS(0) * 2
	var start atomix.Bool
	var ready, mismatches atomix.Int64
	var wg sync.WaitGroup

	for r := range numReaders {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ready.Add(1)
			sw := spin.Wait{}
			for !start.LoadAcquire() {
				sw.Once()
			}
			for round := range 1000 {
				i := (id + round) % len(v)
				if at.At(v, i) != i*3 {
					mismatches.Add(1)
				}
				if *at.RefAt(v, int16(i-len(v))) != i*3 {
					mismatches.Add(1)
				}
			}
		}(r)
	}

	waitForCount(t, 5*time.Second, &ready, int64(numReaders), "readers did not start")
	start.StoreRelease(true)
	wg.Wait()

	if n := mismatches.Load(); n != 0 {
		t.Fatalf("mismatched reads: %d", n)
	}
}

// =============================================================================
// Shared Atomic Slots
// =============================================================================

// TestAtomicSlots increments atomic counters reached through RefAt. Every
// goroutine must land on the same slot for the same index, whichever width
// and sign it uses.
func TestAtomicSlots(t *testing.T) {
	slots := make([]atomix.Int64, 4)

	const numWorkers = 8
	const perWorker = 10000
	var wg sync.WaitGroup

	for w := range numWorkers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range perWorker {
				switch id % 4 {
				case 0:
					at.RefAt(slots, -1).Add(1)
				case 1:
					at.RefAt(slots, uint8(3)).Add(1)
				case 2:
					at.RefAt(slots, int64(-1)).Add(1)
				default:
					at.RefAt(slots, uintptr(3)).Add(1)
				}
			}
		}(w)
	}
	wg.Wait()

	if got := slots[3].Load(); got != numWorkers*perWorker {
		t.Fatalf("slot 3: got %d, want %d", got, numWorkers*perWorker)
	}
	for i := range 3 {
		if got := slots[i].Load(); got != 0 {
			t.Fatalf("slot %d: got %d, want 0", i, got)
		}
	}
}

// TestExclusiveWriters partitions a slice so that each goroutine holds
// exclusive access to its own sub-slice for MutAt.
func TestExclusiveWriters(t *testing.T) {
	const numWorkers = 4
	const width = 64
	v := make([]int, numWorkers*width)
	var wg sync.WaitGroup

	for w := range numWorkers {
		part := v[w*width : (w+1)*width]
		wg.Add(1)
		go func(id int, part []int) {
			defer wg.Done()
			for i := range width {
				*at.MutAt(part, -1-i) = id*width + (width - 1 - i)
			}
		}(w, part)
	}
	wg.Wait()

	for i := range v {
		if v[i] != i {
			t.Fatalf("v[%d]: got %d, want %d", i, v[i], i)
		}
	}
}
