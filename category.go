package ledger

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Category labels a transaction. Identity, equality and order are by name.
type Category struct {
	Name string
}

func (c Category) String() string { return c.Name }

// Categories is the registry of all categories, keyed by name.
type Categories struct {
	byName map[string]Category
}

// NewCategories creates an empty registry.
func NewCategories() *Categories {
	return &Categories{byName: make(map[string]Category)}
}

// DefaultCategories returns a registry seeded with the starter set.
func DefaultCategories() *Categories {
	r := NewCategories()
	for _, name := range []string{
		"Travel",
		"Restaurants",
		"Shopping",
		"Online Shopping",
		"Other",
		"Living",
		"Entertainment",
		"Groceries",
	} {
		r.byName[name] = Category{Name: name}
	}
	return r
}

// Add registers a category, failing with ErrDuplicate on a name collision.
func (r *Categories) Add(c Category) error {
	if _, ok := r.byName[c.Name]; ok {
		return fmt.Errorf("category %q: %w", c.Name, ErrDuplicate)
	}
	r.byName[c.Name] = c
	return nil
}

// Find returns the category for that name.
func (r *Categories) Find(name string) (Category, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Remove deletes the entry. Cascading over transactions is the Book's job.
func (r *Categories) Remove(name string) {
	delete(r.byName, name)
}

// Len returns the number of registered categories.
func (r *Categories) Len() int { return len(r.byName) }

// All iterates over categories in name order.
func (r *Categories) All() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		names := slices.Collect(maps.Keys(r.byName))
		slices.Sort(names)
		for _, name := range names {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}
