// Package renderer turns simulator entities into markdown summaries for
// the terminal: user tables, portfolio listings, the marketplace, and
// buy/sell allocation tables.
package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/etnz/kuku"
)

// UsersMarkdown renders the user accounts table.
func UsersMarkdown(users []kuku.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Users")
	table := md.TableSet{
		Header: []string{"Username", "Name", "Admin", "Balance"},
	}
	for _, u := range users {
		admin := "no"
		if u.Admin {
			admin = "yes"
		}
		table.Rows = append(table.Rows, []string{u.Username, u.FullName(), admin, u.Balance.String()})
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	return doc.String()
}

// PortfoliosMarkdown renders the portfolio listing with live holdings.
func PortfoliosMarkdown(portfolios []kuku.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Your Portfolios")
	table := md.TableSet{
		Header: []string{"Name", "Strategy", "Holdings", "ID"},
	}
	for _, p := range portfolios {
		table.Rows = append(table.Rows, []string{p.Name, p.Strategy, holdings(&p), p.ID})
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	return doc.String()
}

// holdings formats a holdings map as "AAPL:2 MSFT:1.5", or "-" when empty.
func holdings(p *kuku.Portfolio) string {
	if len(p.Holdings) == 0 {
		return "-"
	}
	var parts []string
	for _, ticker := range p.Tickers() {
		parts = append(parts, ticker+":"+p.Holding(ticker).String())
	}
	return strings.Join(parts, " ")
}

// MarketMarkdown renders the securities catalog table.
func MarketMarkdown(securities []kuku.Security) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Marketplace")
	table := md.TableSet{
		Header: []string{"Ticker", "Name", "Price"},
	}
	for _, sec := range securities {
		table.Rows = append(table.Rows, []string{sec.Ticker, sec.Name, sec.Price.String()})
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	return doc.String()
}

// OrdersMarkdown renders an order summary table. The title and the label
// of the amount column differ between purchases ("Cost") and sales
// ("Proceeds").
func OrdersMarkdown(title, amountLabel string, orders []kuku.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Header: []string{"Ticker", "Qty", "Price", amountLabel},
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, []string{o.Ticker, o.Quantity.String(), o.Price.String(), o.Cost().String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", md.Bold(kuku.TotalCost(orders).String())})
	doc.CustomTable(table, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	return doc.String()
}
