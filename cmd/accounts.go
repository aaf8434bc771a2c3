package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- Accounts Command ---

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `hl accounts

  Lists all accounts with their currency and current balance.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var accounts []*ledger.Account
	for a := range b.Accounts.All() {
		accounts = append(accounts, a)
	}
	printMarkdown(renderer.Accounts(accounts))
	return subcommands.ExitSuccess
}

// --- Add Account Command ---

type addAccountCmd struct {
	name     string
	currency string
	balance  string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `hl add-account -n <name> -c <currency> [-b <balance>]

  Creates a new account. The name must be unique. The optional opening
  balance defaults to zero.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account name")
	f.StringVar(&c.currency, "c", ledger.BaseCurrency, "Account currency (ISO 4217 code)")
	f.StringVar(&c.balance, "b", "0", "Opening balance")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.Accounts.Add(ledger.NewAccountWithBalance(c.name, c.currency, balance)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q created.\n", c.name)
	return subcommands.ExitSuccess
}

// --- Delete Account Command ---

type deleteAccountCmd struct {
	name string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and all its transactions" }
func (*deleteAccountCmd) Usage() string {
	return `hl delete-account -n <name>

  Deletes an account. Every transaction involving it, on either side of a
  transfer, is removed from the ledger. The balances of the other accounts
  are not modified.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account name")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteAccount(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}
