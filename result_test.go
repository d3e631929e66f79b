// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip_test

import (
	"errors"
	"fmt"
	"testing"

	"code.soracloud.dev/slip"
)

var errDivisionByZero = errors.New("division by zero")

func divide(a, b int) slip.Result[int] {
	if b == 0 {
		return slip.Err[int](errDivisionByZero)
	}
	return slip.Ok(a / b)
}

func TestResultOk(t *testing.T) {
	r := slip.Ok(42)

	if r.IsErr() {
		t.Fatal("expected Ok, got Err")
	}
	v, ok := r.Get()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := r.GetErr(); ok {
		t.Fatal("expected no error detail on Ok")
	}
}

func TestResultErr(t *testing.T) {
	r := divide(1, 0)

	if r.IsOk() {
		t.Fatal("expected Err, got Ok")
	}
	err, ok := r.GetErr()
	if !ok || !errors.Is(err, errDivisionByZero) {
		t.Fatalf("got (%v, %v), want division by zero", err, ok)
	}
	if got := r.GetOr(-1); got != -1 {
		t.Fatalf("GetOr: got %d, want -1", got)
	}
}

func TestResultOf(t *testing.T) {
	if v := slip.ResultOf(5, nil).GetOr(0); v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
	if slip.ResultOf(5, errors.New("boom")).IsOk() {
		t.Fatal("expected Err when error is non-nil")
	}
}

func TestResultMatch(t *testing.T) {
	got := slip.MatchResult(divide(10, 2),
		func(v int) string { return fmt.Sprintf("ok:%d", v) },
		func(err error) string { return "err:" + err.Error() },
	)
	if got != "ok:5" {
		t.Fatalf("got %q, want %q", got, "ok:5")
	}

	got = slip.MatchResult(divide(10, 0),
		func(v int) string { return fmt.Sprintf("ok:%d", v) },
		func(err error) string { return "err:" + err.Error() },
	)
	if got != "err:division by zero" {
		t.Fatalf("got %q, want %q", got, "err:division by zero")
	}
}

func TestResultMap(t *testing.T) {
	r := slip.MapResult(slip.Ok(21), func(x int) int { return x * 2 })
	if v := r.GetOr(0); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	e := slip.MapResult(slip.Err[int](errDivisionByZero), func(x int) int { return x * 2 })
	if e.IsOk() {
		t.Fatal("expected Err to stay Err under Map")
	}
}

func TestResultFlatMapShortCircuits(t *testing.T) {
	// Err in the middle of a chain aborts the rest
	calls := 0
	r := slip.FlatMapResult(
		slip.FlatMapResult(divide(10, 0), func(v int) slip.Result[int] {
			calls++
			return divide(v, 2)
		}),
		func(v int) slip.Result[int] {
			calls++
			return slip.Ok(v + 1)
		},
	)

	if r.IsOk() {
		t.Fatal("expected Err to propagate through the chain")
	}
	err, _ := r.GetErr()
	if !errors.Is(err, errDivisionByZero) {
		t.Fatalf("got %v, want the first failing step's error", err)
	}
	if calls != 0 {
		t.Fatalf("later steps ran %d times, want 0", calls)
	}
}

func TestResultFlatMapChains(t *testing.T) {
	r := slip.FlatMapResult(divide(100, 5), func(v int) slip.Result[int] {
		return divide(v, 2)
	})

	if v := r.GetOr(0); v != 10 {
		t.Fatalf("got %d, want 10", v)
	}
}

func TestResultMapErr(t *testing.T) {
	wrapped := slip.MapErrResult(divide(1, 0), func(err error) error {
		return fmt.Errorf("compute: %w", err)
	})
	err, _ := wrapped.GetErr()
	if !errors.Is(err, errDivisionByZero) {
		t.Fatalf("got %v, want wrapped division by zero", err)
	}

	untouched := slip.MapErrResult(slip.Ok(1), func(err error) error { return errors.New("nope") })
	if untouched.IsErr() {
		t.Fatal("expected Ok to pass through MapErr")
	}
}
