package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// This file contains the validation entry points the boundary layer calls
// before anything reaches the Book. Validation fails closed: an invalid form
// is rejected before any state mutation is attempted.

// TransactionForm holds the raw text fields of an add-transaction request.
type TransactionForm struct {
	Date     string
	Amount   string
	Summary  string
	Category string
	Account  string
	Account2 string // only meaningful when Summary is Transfer
}

// FilterForm holds the raw text fields of a filter request. Empty fields
// mean "no bound".
type FilterForm struct {
	DateFrom   string
	DateTo     string
	AmountFrom string
	AmountTo   string
	Summaries  []string
	Categories []string
	Accounts   []string
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// ValidateTransaction checks that the date parses, the amount parses to a
// positive number, the summary is known, and a transfer names two distinct
// accounts.
func ValidateTransaction(form TransactionForm) error {
	if _, err := ParseDate(form.Date); err != nil {
		return err
	}
	amount, err := parseAmount(form.Amount)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	summary, err := ParseSummary(form.Summary)
	if err != nil {
		return err
	}
	if summary == Transfer && form.Account == form.Account2 {
		return fmt.Errorf("transfer needs two distinct accounts, got %q twice", form.Account)
	}
	return nil
}

// ValidateFilter checks that the non-empty date fields parse and the
// non-empty amount fields parse to non-negative numbers.
func ValidateFilter(form FilterForm) error {
	if form.DateFrom != "" {
		if _, err := ParseDate(form.DateFrom); err != nil {
			return err
		}
	}
	if form.DateTo != "" {
		if _, err := ParseDate(form.DateTo); err != nil {
			return err
		}
	}
	for _, s := range []string{form.AmountFrom, form.AmountTo} {
		if s == "" {
			continue
		}
		amount, err := parseAmount(s)
		if err != nil {
			return err
		}
		if amount.IsNegative() {
			return fmt.Errorf("amount bound must not be negative, got %s", amount)
		}
	}
	for _, s := range form.Summaries {
		if _, err := ParseSummary(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseCriteria validates a filter form and turns it into Criteria.
func ParseCriteria(form FilterForm) (Criteria, error) {
	if err := ValidateFilter(form); err != nil {
		return Criteria{}, err
	}
	var c Criteria
	if form.DateFrom != "" {
		d, _ := ParseDate(form.DateFrom)
		c.DateFrom = &d
	}
	if form.DateTo != "" {
		d, _ := ParseDate(form.DateTo)
		c.DateTo = &d
	}
	if form.AmountFrom != "" {
		a, _ := parseAmount(form.AmountFrom)
		c.AmountFrom = &a
	}
	if form.AmountTo != "" {
		a, _ := parseAmount(form.AmountTo)
		c.AmountTo = &a
	}
	for _, s := range form.Summaries {
		summary, _ := ParseSummary(s)
		c.Summaries = append(c.Summaries, summary)
	}
	c.Categories = form.Categories
	c.Accounts = form.Accounts
	return c, nil
}
