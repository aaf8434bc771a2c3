package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the book data files with the default categories" }
func (*initCmd) Usage() string {
	return `hl init

  Creates the accounts, categories and transactions files in the current
  directory. The categories file is seeded with a default set. Existing
  files are left untouched.
`
}

func (*initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, name := range []string{*accountsFile, *transactionsFile} {
		if err := touch(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
	}

	if _, err := os.Stat(*categoriesFile); err == nil {
		fmt.Printf("%q already exists, keeping its categories\n", *categoriesFile)
		return subcommands.ExitSuccess
	}
	w, err := os.Create(*categoriesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", *categoriesFile, err)
		return subcommands.ExitFailure
	}
	defer w.Close()
	if err := ledger.EncodeCategories(w, ledger.DefaultCategories()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *categoriesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Book initialized with the default categories.")
	return subcommands.ExitSuccess
}

// touch creates an empty file if it does not exist yet.
func touch(name string) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
