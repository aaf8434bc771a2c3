// Package cmd implements the CLI application to manage a home ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&txCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&ratesCmd{}, "rates")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", "accounts.jsonl", "Path to the accounts file (JSONL format)")
var categoriesFile = flag.String("categories-file", "categories.jsonl", "Path to the categories file (JSONL format)")
var transactionsFile = flag.String("transactions-file", "transactions.jsonl", "Path to the transactions file (JSONL format)")

// newRates builds the rate service over the live provider. The current
// snapshot is fetched at most once per command run, and only by commands
// that actually convert.
func newRates() *ledger.Rates {
	return ledger.NewRates(ledger.NewExchangeRatesAPI())
}

// LoadBook reads the three data files into a book. A missing file yields the
// corresponding empty collection.
func LoadBook() (*ledger.Book, error) {
	b := ledger.NewBook(newRates())

	accounts, err := os.Open(*accountsFile)
	switch {
	case err == nil:
		defer accounts.Close()
		if b.Accounts, err = ledger.DecodeAccounts(*accountsFile, accounts); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, %q does not exist, starting with no accounts", *accountsFile)
	default:
		return nil, fmt.Errorf("cannot open %q: %w", *accountsFile, err)
	}

	categories, err := os.Open(*categoriesFile)
	switch {
	case err == nil:
		defer categories.Close()
		if b.Categories, err = ledger.DecodeCategories(*categoriesFile, categories); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, %q does not exist, starting with no categories", *categoriesFile)
	default:
		return nil, fmt.Errorf("cannot open %q: %w", *categoriesFile, err)
	}

	transactions, err := os.Open(*transactionsFile)
	switch {
	case err == nil:
		defer transactions.Close()
		if b.Ledger, err = ledger.DecodeTransactions(*transactionsFile, transactions, b.Accounts); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, %q does not exist, starting with no transactions", *transactionsFile)
	default:
		return nil, fmt.Errorf("cannot open %q: %w", *transactionsFile, err)
	}

	return b, nil
}

// SaveBook writes the book back into the three data files.
func SaveBook(b *ledger.Book) error {
	accounts, err := os.Create(*accountsFile)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", *accountsFile, err)
	}
	defer accounts.Close()

	categories, err := os.Create(*categoriesFile)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", *categoriesFile, err)
	}
	defer categories.Close()

	transactions, err := os.Create(*transactionsFile)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", *transactionsFile, err)
	}
	defer transactions.Close()

	return ledger.EncodeBook(accounts, categories, transactions, b)
}
