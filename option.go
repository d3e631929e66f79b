// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip

// Option represents a value that is either present (Some) or absent (None).
// It replaces nil sentinels in collaborator code around the order core.
type Option[T any] struct {
	present bool
	value   T
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{present: true, value: v}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf lifts a nil-able pointer into an Option, dereferencing it when
// non-nil.
func OptionOf[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.present {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetOr returns the value if present, or the fallback otherwise.
func (o Option[T]) GetOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}
