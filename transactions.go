package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary is a typed string identifying the kind of a transaction.
type Summary string

// The three kinds of ledger events.
const (
	Income   Summary = "Income"
	Expense  Summary = "Expense"
	Transfer Summary = "Transfer"
)

// ParseSummary parses a string into a Summary.
func ParseSummary(s string) (Summary, error) {
	switch Summary(s) {
	case Income, Expense, Transfer:
		return Summary(s), nil
	default:
		return "", fmt.Errorf("unknown summary: %q", s)
	}
}

// AccountRef is the snapshot of an account that a transaction embeds at
// creation time. The live account (for the current balance) must be looked
// up in the registry by name.
type AccountRef struct {
	Name     string
	Currency string
}

func (r AccountRef) String() string { return fmt.Sprintf("%s: %s", r.Name, r.Currency) }

// Transaction is an immutable record of one ledger event. Amount is always
// positive, in the currency of Account; the Summary decides the sign of the
// balance effects. Account2 is set iff Summary is Transfer.
//
// There is no edit operation: editing is delete-then-recreate at the
// boundary, so that balance reversal and re-application stay sequenced.
type Transaction struct {
	Date     Date
	Amount   decimal.Decimal
	Summary  Summary
	Category string
	Account  AccountRef
	Account2 *AccountRef
}

// NewTransaction creates an income or expense transaction.
func NewTransaction(day Date, amount decimal.Decimal, summary Summary, category string, account AccountRef) Transaction {
	return Transaction{
		Date:     day,
		Amount:   amount,
		Summary:  summary,
		Category: category,
		Account:  account,
	}
}

// NewTransfer creates a transfer transaction between two accounts. The
// amount is expressed in the currency of 'from'.
func NewTransfer(day Date, amount decimal.Decimal, category string, from, to AccountRef) Transaction {
	return Transaction{
		Date:     day,
		Amount:   amount,
		Summary:  Transfer,
		Category: category,
		Account:  from,
		Account2: &to,
	}
}

// Equal reports whether both transactions record the same event. All fields
// participate, including Account2: two halves of different transfers are not
// the same event even when everything else matches.
func (t Transaction) Equal(o Transaction) bool {
	if t.Date != o.Date ||
		!t.Amount.Equal(o.Amount) ||
		t.Summary != o.Summary ||
		t.Category != o.Category ||
		t.Account != o.Account {
		return false
	}
	if (t.Account2 == nil) != (o.Account2 == nil) {
		return false
	}
	return t.Account2 == nil || *t.Account2 == *o.Account2
}

func (t Transaction) String() string {
	switch t.Summary {
	case Transfer:
		return fmt.Sprintf("%s: transfer %s from %s to %s", t.Date, t.Amount, t.Account.Name, t.Account2.Name)
	case Income:
		return fmt.Sprintf("%s: income %s on %s", t.Date, t.Amount, t.Account.Name)
	default:
		return fmt.Sprintf("%s: expense %s on %s", t.Date, t.Amount, t.Account.Name)
	}
}

// noneAccount is the literal persisted in place of a missing second account.
const noneAccount = "None"

// MarshalJSON implements the json.Marshaler interface for Transaction,
// producing the data-file record: accounts appear by name only.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("Date", t.Date)
	w.Append("Amount", t.Amount)
	w.Append("Summary", t.Summary)
	w.Append("Category", t.Category)
	w.Append("Account", t.Account.Name)
	if t.Account2 != nil {
		w.Append("Account2", t.Account2.Name)
	} else {
		w.Append("Account2", noneAccount)
	}
	return w.MarshalJSON()
}
