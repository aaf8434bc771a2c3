package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	sort       string
	desc       bool
	dateFrom   string
	dateTo     string
	amountFrom string
	amountTo   string
	summaries  string
	categories string
	accounts   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, with sorting and filtering" }
func (*txCmd) Usage() string {
	return `hl tx [-sort <key>] [-desc] [-from <date>] [-to <date>] [-min <amount>] [-max <amount>] [-summary <list>] [-category <list>] [-account <list>]

  Lists transactions. Filter bounds are inclusive; list flags take
  comma-separated values and match any of them. An account filter matches
  a transfer on either of its two accounts. The position printed in front
  of each row is only valid for 'hl delete' when no sorting or filtering
  is applied.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort key (date, amount, summary, category, account)")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order")
	f.StringVar(&c.dateFrom, "from", "", "Earliest date (DD/MM/YYYY)")
	f.StringVar(&c.dateTo, "to", "", "Latest date (DD/MM/YYYY)")
	f.StringVar(&c.amountFrom, "min", "", "Smallest amount")
	f.StringVar(&c.amountTo, "max", "", "Largest amount")
	f.StringVar(&c.summaries, "summary", "", "Summaries to keep (comma-separated)")
	f.StringVar(&c.categories, "category", "", "Categories to keep (comma-separated)")
	f.StringVar(&c.accounts, "account", "", "Accounts to keep (comma-separated)")
}

// splitList splits a comma-separated flag value, empty value means no filter.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	form := ledger.FilterForm{
		DateFrom:   c.dateFrom,
		DateTo:     c.dateTo,
		AmountFrom: c.amountFrom,
		AmountTo:   c.amountTo,
		Summaries:  splitList(c.summaries),
		Categories: splitList(c.categories),
		Accounts:   splitList(c.accounts),
	}
	criteria, err := ledger.ParseCriteria(form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	view := b.Ledger.Filter(criteria)
	if c.sort != "" {
		key, err := ledger.ParseSortKey(c.sort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		view.Sort(key)
		if c.desc {
			// sorting again on the same key reverses the order
			view.Sort(key)
		}
	}

	printMarkdown(renderer.Transactions(view.All()))
	return subcommands.ExitSuccess
}
