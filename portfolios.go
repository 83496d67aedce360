package kuku

// Order is one line of a buy or sell: a ticker, a quantity, and a unit
// price. On buys the price comes from the catalog; on sells it is the
// seller's asking price, deliberately unconstrained by the catalog.
type Order struct {
	Ticker   string
	Quantity Quantity
	Price    Money
}

// Cost returns quantity times unit price for this line.
func (o Order) Cost() Money {
	return o.Price.Mul(o.Quantity)
}

// TotalCost sums the cost of all order lines.
func TotalCost(orders []Order) Money {
	var total Money
	for _, o := range orders {
		total = total.Add(o.Cost())
	}
	return total
}

// PortfolioService implements the portfolio use-cases, including the
// buy/sell operations that enforce the balance and holdings invariants.
type PortfolioService struct {
	repo    *PortfoliosRepo
	catalog *Catalog
}

// NewPortfolioService returns a portfolio service over the repository
// and the security catalog.
func NewPortfolioService(repo *PortfoliosRepo, catalog *Catalog) *PortfolioService {
	return &PortfolioService{repo: repo, catalog: catalog}
}

// ListFor returns the portfolios owned by username.
func (s *PortfolioService) ListFor(username string) []Portfolio {
	return s.repo.ForUser(username)
}

// Create allocates a new empty portfolio for owner. The owner is not
// checked against the user collection.
func (s *PortfolioService) Create(owner, name, strategy string) (Portfolio, error) {
	return s.repo.Create(owner, name, strategy)
}

// Delete removes a portfolio by id, failing with ErrNotFound if absent.
func (s *PortfolioService) Delete(pid string) error {
	return s.repo.Delete(pid)
}

// Buy validates the purchase and appends quantities to the portfolio
// holdings. totalCost is the caller-computed sum of the order lines and
// is trusted as the amount to debit; balance reports the buyer's cash at
// call time. On success the portfolio is persisted and the new balance
// (balance minus totalCost, rounded to 2 decimal places) is returned.
// Writing the new balance back to the user is the caller's job.
//
// Failures leave both the portfolio and the balance untouched:
//   - ErrDomain when the portfolio does not belong to username,
//   - ErrNotFound when a ticker is not in the catalog,
//   - ErrDomain when totalCost exceeds the balance,
//   - ErrDomain when an order quantity is not strictly positive.
func (s *PortfolioService) Buy(pid, username string, orders []Order, totalCost Money, balance func() Money) (Money, error) {
	p, err := s.repo.Get(pid)
	if err != nil {
		return Money{}, err
	}
	if p.Owner != username {
		return Money{}, Domainf("portfolio %s does not belong to %s", pid, username)
	}
	for _, o := range orders {
		if !s.catalog.Has(o.Ticker) {
			return Money{}, NotFoundf("unknown ticker: %s", o.Ticker)
		}
	}

	cash := balance()
	if totalCost.GreaterThan(cash) {
		return Money{}, Domainf("insufficient balance: cost is %s, balance is %s", totalCost, cash)
	}
	for _, o := range orders {
		if !o.Quantity.IsPositive() {
			return Money{}, Domainf("invalid quantity for %s: must be greater than 0", o.Ticker)
		}
	}

	for _, o := range orders {
		p.setHolding(o.Ticker, p.Holding(o.Ticker).Add(o.Quantity))
	}
	if err := s.repo.Update(p); err != nil {
		return Money{}, err
	}
	return cash.Sub(totalCost).Round(), nil
}

// Sell validates the sale, reduces holdings, and returns the total
// proceeds rounded to 2 decimal places. Selling a whole position removes
// the ticker from holdings entirely; a zero quantity is never stored.
// Crediting the proceeds to the seller is the caller's job.
//
// The sale price of each line is whatever the seller asked for; the
// catalog is not consulted, so an unknown ticker only fails through the
// owned-quantity check.
func (s *PortfolioService) Sell(pid, username string, orders []Order) (Money, error) {
	p, err := s.repo.Get(pid)
	if err != nil {
		return Money{}, err
	}
	if p.Owner != username {
		return Money{}, Domainf("portfolio %s does not belong to %s", pid, username)
	}

	var proceeds Money
	for _, o := range orders {
		owned := p.Holding(o.Ticker)
		if !o.Quantity.IsPositive() || o.Quantity.GreaterThan(owned) {
			return Money{}, Domainf("invalid quantity for %s: owned %s", o.Ticker, owned)
		}
		p.setHolding(o.Ticker, owned.Sub(o.Quantity))
		proceeds = proceeds.Add(o.Cost())
	}
	if err := s.repo.Update(p); err != nil {
		return Money{}, err
	}
	return proceeds.Round(), nil
}
