// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip

import "fmt"

// Item is a line item on an order slip.
//
// Item is a closed sum: exactly [Apparel], [Food], [Beverage] and
// [Publication] implement it, all in this package. The unexported marker
// method seals the set, so [Detail] may dispatch exhaustively over the four
// variants without a meaningful default branch.
type Item interface {
	isItem()
}

// Apparel is a clothing line item.
type Apparel struct {
	id     int
	name   string
	colour string
}

// Food is a food line item tagged with its country of origin.
type Food struct {
	id            int
	name          string
	originCountry string
}

// Beverage is a drink line item carrying its alcohol strength in percent.
type Beverage struct {
	id             int
	name           string
	alcoholPercent int
}

// Publication is a printed-matter line item identified by its ISBN.
type Publication struct {
	id   int
	name string
	isbn string
}

func (Apparel) isItem()     {}
func (Food) isItem()        {}
func (Beverage) isItem()    {}
func (Publication) isItem() {}

// NewApparel creates an Apparel item. All fields are required;
// the constructors are the only way to build an item, so a partially
// initialized variant cannot exist.
func NewApparel(id int, name, colour string) Item {
	return Apparel{id: id, name: name, colour: colour}
}

// NewFood creates a Food item.
func NewFood(id int, name, originCountry string) Item {
	return Food{id: id, name: name, originCountry: originCountry}
}

// NewBeverage creates a Beverage item.
func NewBeverage(id int, name string, alcoholPercent int) Item {
	return Beverage{id: id, name: name, alcoholPercent: alcoholPercent}
}

// NewPublication creates a Publication item.
func NewPublication(id int, name, isbn string) Item {
	return Publication{id: id, name: name, isbn: isbn}
}

// Detail renders one line of text for the item: the variant tag followed by
// every field of that variant, in declared order. Detail is pure: equal
// items always render equal text.
//
// Dispatch covers all four variants. A value outside the closed set can only
// be produced from inside this package; hitting the default branch is a bug,
// not an input condition, and panics.
func Detail(it Item) string {
	switch v := it.(type) {
	case Apparel:
		return fmt.Sprintf("Apparel: id=%d, name=%s, colour=%s", v.id, v.name, v.colour)
	case Food:
		return fmt.Sprintf("Food: id=%d, name=%s, originCountry=%s", v.id, v.name, v.originCountry)
	case Beverage:
		return fmt.Sprintf("Beverage: id=%d, name=%s, alcoholPercent=%d", v.id, v.name, v.alcoholPercent)
	case Publication:
		return fmt.Sprintf("Publication: id=%d, name=%s, isbn=%s", v.id, v.name, v.isbn)
	default:
		nonExhaustive("Detail")
		return ""
	}
}

// nonExhaustive panics with a descriptive message for an unmatched variant.
// Extracted as a noinline function so that dispatch sites remain inlineable.
//
//go:noinline
func nonExhaustive(dispatch string) {
	panic("slip: non-exhaustive variant in " + dispatch)
}
