// ©Soracloud Inc. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slip

// Order is an order slip: identity, assignee, date, acceptance flag and an
// ordered sequence of line items.
//
// The *Order returned by [New] is the exclusive mutable handle to the slip.
// The item sequence is append-only through [Order.AddItems]; there is no
// removal. Items added to an Order belong to it; they hold no reference
// back, and the sequence never escapes through an alias.
type Order struct {
	id       int
	assignee string
	date     string
	items    []Item
	accepted bool
}

// New creates an Order with an empty item sequence. It never fails; no field
// is validated here, id uniqueness and date format are the caller's concern.
func New(id int, assignee, date string, accepted bool) *Order {
	return &Order{
		id:       id,
		assignee: assignee,
		date:     date,
		accepted: accepted,
	}
}

// ID returns the order identifier.
func (o *Order) ID() int { return o.id }

// Assignee returns who the order is assigned to.
func (o *Order) Assignee() string { return o.assignee }

// Date returns the order date as given to [New].
func (o *Order) Date() string { return o.date }

// Accepted reports whether the order has been accepted.
func (o *Order) Accepted() bool { return o.accepted }

// Len returns the number of line items on the order.
func (o *Order) Len() int { return len(o.items) }

// AddItems appends the given items to the order's sequence, in input order.
// The order takes ownership of the items. Calling AddItems with no items
// leaves the sequence unchanged.
func (o *Order) AddItems(items ...Item) {
	o.items = append(o.items, items...)
}

// MarkAccepted sets the acceptance flag. It is idempotent: a second call is
// a no-op and changes nothing else.
func (o *Order) MarkAccepted() {
	o.accepted = true
}

// DetailLines renders one line of text per item, in item order, delegating
// to [Detail]. It does not mutate the order and returns a fresh slice on
// every call.
func (o *Order) DetailLines() []string {
	lines := make([]string, len(o.items))
	for i, it := range o.items {
		lines[i] = Detail(it)
	}
	return lines
}
