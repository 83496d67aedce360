package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/kuku"
	"github.com/etnz/kuku/renderer"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "list the securities catalog" }
func (*marketCmd) Usage() string {
	return `kuku market

  Prints the fixed-price securities catalog. The catalog is read-only
  reference data, so no login is required.
`
}

func (*marketCmd) SetFlags(*flag.FlagSet) {}

func (c *marketCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MarketMarkdown(kuku.DefaultCatalog().List()))
	return subcommands.ExitSuccess
}
