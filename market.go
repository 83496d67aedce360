package kuku

import (
	"sort"
	"strings"
)

// Catalog is the fixed, read-only list of tradable securities and their
// prices. It is built once at startup and never mutated afterwards.
type Catalog struct {
	index map[string]Security
}

// NewCatalog builds a catalog from the given securities.
func NewCatalog(securities ...Security) *Catalog {
	c := &Catalog{index: make(map[string]Security, len(securities))}
	for _, sec := range securities {
		c.index[sec.Ticker] = sec
	}
	return c
}

// DefaultCatalog returns the built-in marketplace.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Security{Ticker: "AAPL", Name: "Apple", Price: M(100.00)},
		Security{Ticker: "MSFT", Name: "Microsoft", Price: M(120.00)},
		Security{Ticker: "GOOG", Name: "Alphabet", Price: M(150.00)},
		Security{Ticker: "TSLA", Name: "Tesla", Price: M(180.00)},
		Security{Ticker: "NVDA", Name: "Nvidia", Price: M(200.00)},
	)
}

// Lookup finds a security by ticker, case-insensitively.
func (c *Catalog) Lookup(ticker string) (Security, bool) {
	sec, ok := c.index[strings.ToUpper(ticker)]
	return sec, ok
}

// Has reports whether the ticker is part of the catalog.
func (c *Catalog) Has(ticker string) bool {
	_, ok := c.Lookup(ticker)
	return ok
}

// Price returns the fixed unit price for ticker, or ErrNotFound when the
// ticker is not part of the catalog.
func (c *Catalog) Price(ticker string) (Money, error) {
	sec, ok := c.Lookup(ticker)
	if !ok {
		return Money{}, NotFoundf("unknown ticker: %s", ticker)
	}
	return sec.Price, nil
}

// List returns all securities sorted by ticker.
func (c *Catalog) List() []Security {
	list := make([]Security, 0, len(c.index))
	for _, sec := range c.index {
		list = append(list, sec)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Ticker < list[j].Ticker })
	return list
}
