package kuku

// Security is a tradable instrument from the catalog: a ticker, a
// display name, and a fixed unit price. Securities are read-only
// reference data; the running system never creates or mutates them.
type Security struct {
	Ticker string
	Name   string
	Price  Money
}
