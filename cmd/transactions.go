package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

// record builds a transaction from the form, applies it to the book and
// saves the book. It is shared by the income, expense and transfer commands.
func record(form ledger.TransactionForm) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := b.MakeTransaction(form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := b.Add(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on account %q.\n", tx.Summary, tx.Amount, tx.Account.Name)
	return subcommands.ExitSuccess
}

// --- Income Command ---

type incomeCmd struct {
	date     string
	amount   string
	category string
	account  string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income, crediting an account" }
func (*incomeCmd) Usage() string {
	return `hl income -a <amount> -on <account> [-d <date>] [-c <category>]

  Records an income. The amount, in the account currency, is credited to
  the account balance.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", ledger.Today().String(), "Transaction date (DD/MM/YYYY)")
	f.StringVar(&c.amount, "a", "", "Amount, in the account currency")
	f.StringVar(&c.category, "c", "", "Optional category")
	f.StringVar(&c.account, "on", "", "Account receiving the income")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.account == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return record(ledger.TransactionForm{
		Date:     c.date,
		Amount:   c.amount,
		Summary:  string(ledger.Income),
		Category: c.category,
		Account:  c.account,
	})
}

// --- Expense Command ---

type expenseCmd struct {
	date     string
	amount   string
	category string
	account  string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense, debiting an account" }
func (*expenseCmd) Usage() string {
	return `hl expense -a <amount> -on <account> [-d <date>] [-c <category>]

  Records an expense. The amount, in the account currency, is debited from
  the account balance.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", ledger.Today().String(), "Transaction date (DD/MM/YYYY)")
	f.StringVar(&c.amount, "a", "", "Amount, in the account currency")
	f.StringVar(&c.category, "c", "", "Optional category")
	f.StringVar(&c.account, "on", "", "Account paying the expense")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.account == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return record(ledger.TransactionForm{
		Date:     c.date,
		Amount:   c.amount,
		Summary:  string(ledger.Expense),
		Category: c.category,
		Account:  c.account,
	})
}

// --- Transfer Command ---

type transferCmd struct {
	date     string
	amount   string
	category string
	from     string
	to       string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `hl transfer -a <amount> -from <account> -to <account> [-d <date>] [-c <category>]

  Moves money between two accounts. The amount, in the source account
  currency, is debited from the source; the destination is credited with
  the amount converted into its own currency at the current rate.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", ledger.Today().String(), "Transaction date (DD/MM/YYYY)")
	f.StringVar(&c.amount, "a", "", "Amount, in the source account currency")
	f.StringVar(&c.category, "c", "", "Optional category")
	f.StringVar(&c.from, "from", "", "Source account")
	f.StringVar(&c.to, "to", "", "Destination account")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return record(ledger.TransactionForm{
		Date:     c.date,
		Amount:   c.amount,
		Summary:  string(ledger.Transfer),
		Category: c.category,
		Account:  c.from,
		Account2: c.to,
	})
}

// --- Delete Command ---

type deleteCmd struct {
	index int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction, undoing its balance effects" }
func (*deleteCmd) Usage() string {
	return `hl delete -i <index>

  Deletes the transaction at the given position, as shown by 'hl tx'
  without sorting or filtering, and restores the account balances it had
  modified.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Position of the transaction in the list")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteTransactionAt(c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction %d: %v\n", c.index, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction %d deleted.\n", c.index)
	return subcommands.ExitSuccess
}
