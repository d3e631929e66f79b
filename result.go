// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip

// Result represents a computation that either succeeded with a value (Ok)
// or failed with error detail (Err). Chains built with [FlatMapResult]
// short-circuit at the first failing step.
type Result[T any] struct {
	ok    bool
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Err creates a failed Result carrying the error detail.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf lifts Go's native (value, error) pair into a Result.
// A non-nil error wins over the value.
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk returns true if the computation succeeded.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the computation failed.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Get returns the value and true, or zero and false.
func (r Result[T]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the error detail and true, or nil and false.
func (r Result[T]) GetErr() (error, bool) {
	if !r.ok {
		return r.err, true
	}
	return nil, false
}

// GetOr returns the value if the computation succeeded, or the fallback.
func (r Result[T]) GetOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MapResult applies a function to the success value.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.ok {
		return Ok(f(r.value))
	}
	return Err[U](r.err)
}

// FlatMapResult sequences two fallible computations. The second runs only
// if the first succeeded; an Err propagates unchanged.
func FlatMapResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

// MapErrResult applies a function to the error detail, leaving a success
// untouched.
func MapErrResult[T any](r Result[T], f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}
