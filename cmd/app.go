// Package cmd implements the CLI application of the kuku portfolio
// simulator.
package cmd

import (
	"flag"

	"github.com/etnz/kuku"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
// A main package will call Register on each, then Execute the
// user-selected one.
var Commands = []subcommands.Command{
	&shellCmd{},
	&marketCmd{},
	&topicCmd{},
}

// as a CLI application with a short-lived lifecycle, shared paths are
// plain package flags.

var stateFile = flag.String("state-file", "data/state.jsonl", "Path to the state file holding users and portfolios (JSONL format)")

// App bundles the wired services the interactive shell works with.
type App struct {
	UsersRepo *kuku.UsersRepo
	Users     *kuku.UsersService
	Auth      *kuku.AuthService
	Ports     *kuku.PortfolioService
	Catalog   *kuku.Catalog
}

// OpenApp loads the durable state and wires the repositories and
// services, seeding the default admin account if it is missing.
func OpenApp() (*App, error) {
	store, err := kuku.Open(*stateFile)
	if err != nil {
		return nil, err
	}

	usersRepo := kuku.NewUsersRepo(store)
	portsRepo := kuku.NewPortfoliosRepo(store)
	catalog := kuku.DefaultCatalog()

	app := &App{
		UsersRepo: usersRepo,
		Users:     kuku.NewUsersService(usersRepo),
		Auth:      kuku.NewAuthService(usersRepo, nil),
		Ports:     kuku.NewPortfolioService(portsRepo, catalog),
		Catalog:   catalog,
	}
	if err := app.Users.SeedAdmin(); err != nil {
		return nil, err
	}
	return app, nil
}
