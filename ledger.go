package ledger

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned when deleting a transaction at a position
// outside the current list bounds.
var ErrIndexOutOfRange = errors.New("index out of range")

// SortKey identifies the column a transaction list can be sorted by.
type SortKey string

const (
	ByDate     SortKey = "Date"
	ByAmount   SortKey = "Amount"
	BySummary  SortKey = "Summary"
	ByCategory SortKey = "Category"
	ByAccount  SortKey = "Account"
)

// ParseSortKey parses a string, case-insensitively, into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, key := range []SortKey{ByDate, ByAmount, BySummary, ByCategory, ByAccount} {
		if strings.EqualFold(s, string(key)) {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown sort key: %q", s)
}

// Ledger is the ordered collection of all transactions. Insertion order is
// preserved until a sort is requested; after that the list is considered
// sorted by that key until a different key is requested.
type Ledger struct {
	transactions []Transaction
	sortedBy     SortKey
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// At returns the transaction at position i.
func (l *Ledger) At(i int) (Transaction, error) {
	if i < 0 || i >= len(l.transactions) {
		return Transaction{}, fmt.Errorf("transaction %d of %d: %w", i, len(l.transactions), ErrIndexOutOfRange)
	}
	return l.transactions[i], nil
}

// Push appends a transaction at the end of the list. It does not mutate any
// balance: balance application is the caller's responsibility before pushing,
// so a failed validation never leaves a partially-applied transaction here.
func (l *Ledger) Push(tx Transaction) {
	l.transactions = append(l.transactions, tx)
}

// DeleteAt removes and returns the transaction at position i.
func (l *Ledger) DeleteAt(i int) (Transaction, error) {
	tx, err := l.At(i)
	if err != nil {
		return Transaction{}, err
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return tx, nil
}

// Sort orders the list by the given key. Asking twice in a row for the same
// key reverses the list in place instead of re-sorting: an O(n) way to get
// ascending/descending toggling without tracking a direction. Ties keep
// their original relative order (the sort is stable), which the toggle
// relies on to behave predictably.
func (l *Ledger) Sort(key SortKey) {
	if l.sortedBy == key {
		slices.Reverse(l.transactions)
		return
	}
	l.sortedBy = key

	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i], l.transactions[j]
		switch key {
		case ByDate:
			return a.Date.Before(b.Date)
		case ByAmount:
			return a.Amount.LessThan(b.Amount)
		case BySummary:
			return a.Summary < b.Summary
		case ByCategory:
			// a transaction with no category sorts as the empty string
			return a.Category < b.Category
		default: // ByAccount
			return a.Account.Name < b.Account.Name
		}
	})
}

// Criteria holds the optional predicates of a filter. A nil or empty
// predicate always passes; supplied predicates are ANDed.
type Criteria struct {
	DateFrom, DateTo     *Date            // inclusive bounds on the transaction date
	AmountFrom, AmountTo *decimal.Decimal // inclusive bounds on the amount
	Summaries            []Summary
	Categories           []string
	Accounts             []string // matches either leg of a transfer
}

// Match reports whether the transaction satisfies all supplied predicates.
func (c Criteria) Match(tx Transaction) bool {
	if c.DateFrom != nil && c.DateFrom.After(tx.Date) {
		return false
	}
	if c.DateTo != nil && c.DateTo.Before(tx.Date) {
		return false
	}
	if c.AmountFrom != nil && c.AmountFrom.GreaterThan(tx.Amount) {
		return false
	}
	if c.AmountTo != nil && c.AmountTo.LessThan(tx.Amount) {
		return false
	}
	if len(c.Summaries) > 0 && !slices.Contains(c.Summaries, tx.Summary) {
		return false
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, tx.Category) {
		return false
	}
	if len(c.Accounts) > 0 {
		if !slices.Contains(c.Accounts, tx.Account.Name) &&
			(tx.Account2 == nil || !slices.Contains(c.Accounts, tx.Account2.Name)) {
			return false
		}
	}
	return true
}

// Filter returns a derived ledger holding the transactions that satisfy the
// criteria, in their current order. The source list is left untouched.
func (l *Ledger) Filter(c Criteria) *Ledger {
	view := NewLedger()
	for _, tx := range l.transactions {
		if c.Match(tx) {
			view.transactions = append(view.transactions, tx)
		}
	}
	return view
}

// DeleteMatching removes every transaction satisfying the predicate, keeping
// the order of the survivors, and returns how many were removed. No balance
// is reversed: this is the primitive behind cascading deletes.
func (l *Ledger) DeleteMatching(pred func(Transaction) bool) int {
	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if !pred(tx) {
			kept = append(kept, tx)
		}
	}
	removed := len(l.transactions) - len(kept)
	l.transactions = kept
	return removed
}

// Transactions returns an iterator that yields each transaction in its
// current order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns a copy of the transaction list in its current order.
func (l *Ledger) All() []Transaction {
	return slices.Clone(l.transactions)
}
