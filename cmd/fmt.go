package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `hl fmt

  Validates and formats the data files. This command reads the accounts,
  categories and transactions, validates them against each other, and
  writes them back in a canonical JSONL format, one object per line.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Book formatted.")
	return subcommands.ExitSuccess
}
