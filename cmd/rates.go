package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the current exchange rates and their daily trend" }
func (*ratesCmd) Usage() string {
	return `hl rates

  Displays the current exchange rates against the base currency, with an
  arrow showing how each currency moved since yesterday.
`
}

func (*ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates := newRates()
	current, err := rates.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rates: %v\n", err)
		return subcommands.ExitFailure
	}
	trends, err := rates.DailyTrend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing trends: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Rates(ledger.BaseCurrency, current, trends))
	return subcommands.ExitSuccess
}
