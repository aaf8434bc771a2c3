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

// --- Categories Command ---

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list all categories" }
func (*categoriesCmd) Usage() string {
	return `hl categories

  Lists all categories.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var categories []ledger.Category
	for cat := range b.Categories.All() {
		categories = append(categories, cat)
	}
	printMarkdown(renderer.Categories(categories))
	return subcommands.ExitSuccess
}

// --- Add Category Command ---

type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a new category" }
func (*addCategoryCmd) Usage() string {
	return `hl add-category -n <name>

  Creates a new category. The name must be unique.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Category name")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.Categories.Add(ledger.Category{Name: c.name}); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating category %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Category %q created.\n", c.name)
	return subcommands.ExitSuccess
}

// --- Delete Category Command ---

type deleteCategoryCmd struct {
	name string
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete a category and all its transactions" }
func (*deleteCategoryCmd) Usage() string {
	return `hl delete-category -n <name>

  Deletes a category. Every transaction carrying it is removed from the
  ledger. Account balances are not modified.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Category name")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteCategory(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting category %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Category %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}
