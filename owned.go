// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip

import (
	"sync/atomic"
)

// Owned wraps a value with one-shot consumption enforcement.
// The value can be taken at most once; subsequent attempts to take it
// panic (Take) or return false (TryTake).
//
// Go accepts reuse of a value after it has been moved into an operation
// that logically consumes it. Owned makes that discipline checkable at run
// time: wrap the value before the move, take it at the move site, and any
// later use of the stale wrapper fails loudly instead of aliasing.
type Owned[T any] struct {
	used  atomic.Uintptr
	value T
}

// Own wraps a value for one-shot consumption.
// The returned Owned can be taken at most once.
func Own[T any](v T) *Owned[T] {
	return &Owned[T]{value: v}
}

// Take yields the owned value, consuming the wrapper.
// Panics if the value has already been taken.
func (o *Owned[T]) Take() T {
	if o.used.Add(1) != 1 {
		panic("slip: owned value taken twice")
	}
	return o.value
}

// TryTake attempts to yield the owned value.
// Returns (value, true) on success, or (zero, false) if already taken.
func (o *Owned[T]) TryTake() (T, bool) {
	if o.used.Add(1) != 1 {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Discard marks the value as consumed without yielding it.
// This is useful for explicitly dropping a value that will not be used.
func (o *Owned[T]) Discard() {
	o.used.Store(1)
}
