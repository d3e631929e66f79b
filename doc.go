// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slip models order slips as plain in-memory values: an [Order]
// exclusively owns an ordered sequence of tagged line items and renders
// them through exhaustive case dispatch.
//
// # Design Philosophy
//
// slip provides:
//   - A closed sum type for line items instead of a class hierarchy
//   - Exhaustive dispatch instead of virtual-method override
//   - A single exclusive mutable handle per order instead of shared references
//
// [Item] is a sealed interface: exactly four variant types in this package
// implement it, and every variant is built through its own constructor so a
// partially initialized variant cannot exist. [Detail] dispatches over all
// four variants; an unknown variant is a programming error and panics rather
// than defaulting silently. The cost of the closed set is deliberate: adding
// a new variant becomes an obligation on every dispatch site instead of a
// silent subclass.
//
// # Orders
//
// An [Order] is created empty via [New] and mutated only through the *Order
// handle returned by it:
//
//   - [Order.AddItems]: append items, in input order
//   - [Order.MarkAccepted]: idempotent acceptance flag
//   - [Order.DetailLines]: one rendered line per item, in item order
//
// The Order owns its item sequence exclusively. Items carry no back-reference
// to their order, and DetailLines returns a fresh slice so the sequence never
// leaks through an alias.
//
// # Items
//
//   - [Apparel]: id, name, colour
//   - [Food]: id, name, originCountry
//   - [Beverage]: id, name, alcoholPercent
//   - [Publication]: id, name, isbn
//
// Constructed via [NewApparel], [NewFood], [NewBeverage], [NewPublication].
// Variants are immutable comparable values; [Detail] is pure.
//
// # Option and Result
//
// Collaborators embedding the core use two convention types instead of nil
// sentinels and (value, error) juggling:
//
//   - [Option]: value present ([Some]) or absent ([None])
//   - [Result]: succeeded with value ([Ok]) or failed with error detail ([Err])
//
// [FlatMapResult] short-circuits at the first failing step, so a chain of
// fallible operations reads top to bottom:
//
//	r := slip.FlatMapResult(parse(s), func(n int) slip.Result[int] {
//		return divide(100, n)
//	})
//
// # Ownership
//
// Moving a value into an operation that logically consumes it leaves the
// prior binding stale. Go cannot reject reuse at compile time, so [Owned]
// makes the discipline checkable at run time: [Own] wraps a value,
// [Owned.Take] yields it exactly once and panics on reuse.
//
//	seq := slip.Own([]slip.Item{slip.NewFood(1, "rice", "Japan")})
//	o.AddItems(seq.Take()...)
//	seq.Take() // panics: owned value taken twice
package slip
