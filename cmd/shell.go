package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/kuku"
	"github.com/etnz/kuku/renderer"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive portfolio simulator" }
func (*shellCmd) Usage() string {
	return `kuku shell

  Starts the interactive menu. Login as a user or as the admin, manage
  portfolios, and trade against the fixed-price marketplace. All errors
  are displayed and the menu continues; exit with choice 0 on the
  welcome menu.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := OpenApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	shell := NewShell(app, NewConsole(os.Stdin, os.Stdout))
	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errInput marks boundary validation failures (non-numeric input, empty
// ticker lists). The loop shows a warning and pauses instead of the
// error display used for domain errors.
var errInput = errors.New("invalid input")

func inputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errInput}, args...)...)
}

// Shell runs the interactive menu loop over the wired services. It owns
// the single session of the process.
type Shell struct {
	console *Console
	app     *App
	session *kuku.Session
	current menu
}

// NewShell returns a shell over the app, reading and writing on console.
func NewShell(app *App, console *Console) *Shell {
	return &Shell{console: console, app: app, session: &kuku.Session{}}
}

// Run executes the menu loop until the user exits or the input stream
// ends. Domain, auth and not-found errors are displayed and the loop
// continues; any other error (e.g. storage failure) aborts.
func (s *Shell) Run() error {
	s.current = welcomeMenu
	for {
		if s.console.EOF() {
			return nil
		}
		done, err := s.step()
		if done {
			return nil
		}
		switch {
		case err == nil:
		case errors.Is(err, errInput):
			s.console.Warn(strings.TrimPrefix(err.Error(), errInput.Error()+": "))
			s.console.Pause()
		case errors.Is(err, kuku.ErrDomain):
			s.console.Error(err.Error())
			s.console.Pause()
		default:
			return err
		}
	}
}

// step renders the current menu and handles one choice.
func (s *Shell) step() (done bool, err error) {
	switch s.current {
	case welcomeMenu:
		return s.stepWelcome()
	case adminMenu:
		return false, s.stepAdmin()
	case userMenu:
		return false, s.stepUser()
	case portfoliosMenu:
		return false, s.stepPortfolios()
	case marketMenu:
		return false, s.stepMarket()
	}
	return false, nil
}

func (s *Shell) stepWelcome() (bool, error) {
	s.console.Title("Kuku")
	s.console.Menu("Welcome", welcomeChoices)

	switch choice := s.console.Ask(">"); choice {
	case "":
		return false, nil
	case "1": // Admin login
		username := s.console.Ask("Admin username")
		password := s.console.AskPassword("Password")
		if _, err := s.app.Auth.Login(s.session, username, password); err != nil {
			return false, err
		}
		if _, err := s.app.Auth.RequireAdmin(s.session); err != nil {
			return false, err
		}
		s.console.Ok("Welcome, admin.")
		s.current = adminMenu
	case "2": // User login
		username := s.console.Ask("Username")
		password := s.console.AskPassword("Password")
		u, err := s.app.Auth.Login(s.session, username, password)
		if err != nil {
			return false, err
		}
		s.console.Ok(fmt.Sprintf("Welcome, %s!", u.FirstName))
		s.current = userMenu
	case "3": // Create account
		s.console.Title("Create Account")
		username := s.console.Ask("Choose a username")
		password := s.console.AskPassword("Choose a password")
		first := s.console.Ask("First name")
		last := s.console.Ask("Last name")
		balance, err := parseAmount(s.console.Ask("Initial deposit (e.g., 1000)"))
		if err != nil || balance.IsNegative() {
			s.console.Warn("Please enter a positive numeric amount. Account not created.")
			s.console.Pause()
			return false, nil
		}
		if _, err := s.app.Users.Create(username, password, first, last, balance, false); err != nil {
			return false, err
		}
		s.console.Ok("Account created. You can now login as a user.")
		s.console.Pause()
	case "0":
		s.console.Info("Bye!")
		return true, nil
	default:
		s.console.Warn("Unknown option.")
	}
	return false, nil
}

func (s *Shell) stepAdmin() error {
	if _, err := s.app.Auth.RequireAdmin(s.session); err != nil {
		s.console.Warn("Admins only. Returning to welcome.")
		s.app.Auth.Logout(s.session)
		s.current = welcomeMenu
		return nil
	}

	s.console.Title("Admin")
	s.console.Menu("Manage users", adminChoices)

	switch choice := s.console.Ask(">"); choice {
	case "1": // view users
		s.console.Markdown(renderer.UsersMarkdown(s.app.Users.List()))
		s.console.Pause()
	case "2": // create user
		username := s.console.Ask("Username")
		password := s.console.AskPassword("Password")
		first := s.console.Ask("First name")
		last := s.console.Ask("Last name")
		balance, err := s.askAmount("Initial balance")
		if err != nil {
			return err
		}
		admin := strings.HasPrefix(strings.ToLower(s.console.Ask("Make admin? (y/n)")), "y")
		if _, err := s.app.Users.Create(username, password, first, last, balance, admin); err != nil {
			return err
		}
		s.console.Ok("User created.")
	case "3": // delete user
		if err := s.app.Users.Delete(s.console.Ask("Username to delete")); err != nil {
			return err
		}
		s.console.Ok("User deleted.")
	case "9":
		s.app.Auth.Logout(s.session)
		s.current = welcomeMenu
	default:
		s.console.Warn("Unknown option.")
	}
	return nil
}

func (s *Shell) stepUser() error {
	if _, err := s.requireLogin(); err != nil {
		return err
	}
	s.console.Title("User")
	s.console.Menu("Choose", userChoices)

	switch choice := s.console.Ask(">"); choice {
	case "1":
		s.current = portfoliosMenu
	case "2":
		s.current = marketMenu
	case "9":
		s.app.Auth.Logout(s.session)
		s.current = welcomeMenu
	default:
		s.console.Warn("Unknown option.")
	}
	return nil
}

func (s *Shell) stepPortfolios() error {
	u, err := s.requireLogin()
	if err != nil {
		return err
	}
	s.console.Title("Manage Portfolios")
	s.console.Menu("Options", portfoliosChoices)

	switch choice := s.console.Ask(">"); choice {
	case "1": // view portfolios with live holdings
		s.console.Markdown(renderer.PortfoliosMarkdown(s.app.Ports.ListFor(u.Username)))
		s.console.Pause()
	case "2": // create + optional initial guided buy
		name := s.console.Ask("Portfolio name")
		strategy := s.console.Ask("Strategy")
		p, err := s.app.Ports.Create(u.Username, name, strategy)
		if err != nil {
			return err
		}
		s.console.Ok(fmt.Sprintf("Created portfolio %s.", p.ID))
		if strings.HasPrefix(strings.ToLower(s.console.Ask("Add securities now? (y/n)")), "y") {
			return s.buyInto(p.ID, u, "Initial Purchase Allocation")
		}
	case "3": // delete
		if err := s.app.Ports.Delete(s.console.Ask("Portfolio ID")); err != nil {
			return err
		}
		s.console.Ok("Portfolio deleted.")
	case "4": // sell / liquidate
		pid := s.console.Ask("Portfolio ID")
		orders, _, err := s.collectOrders(false, "Quantity to sell for %s", "Sale price for %s")
		if err != nil {
			return err
		}
		proceeds, err := s.app.Ports.Sell(pid, u.Username, orders)
		if err != nil {
			return err
		}
		u.Balance = u.Balance.Add(proceeds)
		if err := s.app.UsersRepo.Upsert(u); err != nil {
			return err
		}
		s.session.Update(u)
		s.console.Markdown(renderer.OrdersMarkdown("Sale Summary", "Proceeds", orders))
		s.console.Ok(fmt.Sprintf("Proceeds: %s. New balance: %s", proceeds, u.Balance))
	case "9":
		s.current = userMenu
	default:
		s.console.Warn("Unknown option.")
	}
	return nil
}

func (s *Shell) stepMarket() error {
	u, err := s.requireLogin()
	if err != nil {
		return err
	}
	s.console.Title("Marketplace")
	s.console.Menu("Options", marketChoices)

	switch choice := s.console.Ask(">"); choice {
	case "1": // view securities
		s.console.Markdown(renderer.MarketMarkdown(s.app.Catalog.List()))
		s.console.Pause()
	case "2": // buy into an existing portfolio
		return s.buyInto(s.console.Ask("Portfolio ID"), u, "Purchase Allocation")
	case "9":
		s.current = userMenu
	default:
		s.console.Warn("Unknown option.")
	}
	return nil
}

// requireLogin gates the user menus; an anonymous session is sent back
// to the welcome menu with the auth error displayed by the loop.
func (s *Shell) requireLogin() (kuku.User, error) {
	u, err := s.app.Auth.RequireLogin(s.session)
	if err != nil {
		s.current = welcomeMenu
	}
	return u, err
}

// buyInto runs the guided purchase flow into portfolio pid, debits the
// buyer and persists the new balance.
func (s *Shell) buyInto(pid string, u kuku.User, title string) error {
	orders, total, err := s.collectOrders(true, "Quantity for %s", "Purchase price for %s")
	if err != nil {
		return err
	}
	newBalance, err := s.app.Ports.Buy(pid, u.Username, orders, total, func() kuku.Money { return u.Balance })
	if err != nil {
		return err
	}
	u.Balance = newBalance
	if err := s.app.UsersRepo.Upsert(u); err != nil {
		return err
	}
	s.session.Update(u)
	s.console.Markdown(renderer.OrdersMarkdown(title, "Cost", orders))
	s.console.Ok(fmt.Sprintf("Total spent: %s. New balance: %s", total, u.Balance))
	return nil
}

// collectOrders implements the guided order entry:
//  1. for purchases, show the marketplace,
//  2. ask the tickers (comma-separated),
//  3. ask a quantity per ticker,
//  4. ask a price per ticker.
//
// It returns the order lines and their total amount.
func (s *Shell) collectOrders(requireKnown bool, qtyLabel, priceLabel string) ([]kuku.Order, kuku.Money, error) {
	if requireKnown {
		s.console.Markdown(renderer.MarketMarkdown(s.app.Catalog.List()))
	}

	tickers, err := s.parseTickers(requireKnown)
	if err != nil {
		return nil, kuku.Money{}, err
	}

	quantities := make(map[string]kuku.Quantity, len(tickers))
	for _, t := range tickers {
		q, err := s.askQuantity(fmt.Sprintf(qtyLabel, t))
		if err != nil {
			return nil, kuku.Money{}, err
		}
		quantities[t] = q
	}

	orders := make([]kuku.Order, 0, len(tickers))
	for _, t := range tickers {
		price, err := s.askAmount(fmt.Sprintf(priceLabel, t))
		if err != nil {
			return nil, kuku.Money{}, err
		}
		orders = append(orders, kuku.Order{Ticker: t, Quantity: quantities[t], Price: price})
	}
	return orders, kuku.TotalCost(orders), nil
}

// parseTickers asks for comma-separated tickers and normalizes them:
// upper-cased, deduplicated, in entry order. When requireKnown is set,
// an unknown ticker aborts the entry.
func (s *Shell) parseTickers(requireKnown bool) ([]string, error) {
	raw := s.console.Ask("Securities to add (comma-separated), e.g. AAPL, MSFT")
	var out []string
	seen := make(map[string]bool)
	for part := range strings.SplitSeq(raw, ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		if t == "" {
			continue
		}
		if requireKnown && !s.app.Catalog.Has(t) {
			return nil, inputf("unknown ticker: %s", t)
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, inputf("no tickers provided")
	}
	return out, nil
}

// askQuantity prompts until it gets a strictly positive decimal.
func (s *Shell) askQuantity(label string) (kuku.Quantity, error) {
	d, err := s.askPositive(label)
	return kuku.Q(d), err
}

// askAmount prompts until it gets a strictly positive decimal amount.
func (s *Shell) askAmount(label string) (kuku.Money, error) {
	d, err := s.askPositive(label)
	return kuku.M(d), err
}

func (s *Shell) askPositive(label string) (decimal.Decimal, error) {
	for {
		if s.console.EOF() {
			return decimal.Decimal{}, inputf("input ended")
		}
		d, err := decimal.NewFromString(s.console.Ask(label))
		if err != nil {
			s.console.Warn("Enter a numeric value.")
			continue
		}
		if !d.IsPositive() {
			s.console.Warn("Enter a value greater than 0.")
			continue
		}
		return d, nil
	}
}

// parseAmount parses a non-negative amount typed at the prompt.
func parseAmount(raw string) (kuku.Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return kuku.Money{}, inputf("not a numeric amount: %q", raw)
	}
	return kuku.M(d), nil
}
