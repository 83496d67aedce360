package kuku

import (
	"maps"
	"slices"
)

// Portfolio is a named collection of security holdings.
//
// Owner is a weak reference to a User by username: it is checked on
// mutation, not enforced by the store.
type Portfolio struct {
	ID       string
	Owner    string
	Name     string
	Strategy string
	// Holdings maps ticker to owned quantity. Entries are always
	// strictly positive; an absent ticker means a zero position.
	Holdings map[string]Quantity
}

// Holding returns the owned quantity for ticker, zero if absent.
func (p *Portfolio) Holding(ticker string) Quantity {
	return p.Holdings[ticker]
}

// setHolding records q units of ticker, removing the entry entirely when
// q is exactly zero so that zero positions are never persisted.
func (p *Portfolio) setHolding(ticker string, q Quantity) {
	if p.Holdings == nil {
		p.Holdings = make(map[string]Quantity)
	}
	if q.IsZero() {
		delete(p.Holdings, ticker)
		return
	}
	p.Holdings[ticker] = q
}

// Tickers returns the held tickers in alphabetical order.
func (p *Portfolio) Tickers() []string {
	return slices.Sorted(maps.Keys(p.Holdings))
}

// Clone returns a deep copy, so that callers can mutate holdings without
// aliasing the stored entity.
func (p Portfolio) Clone() Portfolio {
	p.Holdings = maps.Clone(p.Holdings)
	return p
}
