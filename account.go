package ledger

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registry errors, returned wrapped with the offending name.
var (
	ErrDuplicate = errors.New("already exists")
	ErrNotFound  = errors.New("not found")
)

// Account is a place money lives: cash, card, or bank balance in a single
// currency. Accounts are keyed by name in their registry and in the data
// files; the id exists so that identity survives a rename and is never
// conflated with the currency attribute.
type Account struct {
	id       uuid.UUID
	Name     string
	Currency string
	balance  decimal.Decimal
}

// NewAccount creates an account with a zero balance and a fresh identity.
func NewAccount(name, currency string) *Account {
	return &Account{id: uuid.New(), Name: name, Currency: currency}
}

// NewAccountWithBalance creates an account with an opening balance, as read
// from a data file.
func NewAccountWithBalance(name, currency string, balance decimal.Decimal) *Account {
	a := NewAccount(name, currency)
	a.balance = balance
	return a
}

// ID returns the stable identity of the account.
func (a *Account) ID() uuid.UUID { return a.id }

// Same reports whether both pointers designate the same account, by identity.
func (a *Account) Same(b *Account) bool { return b != nil && a.id == b.id }

// Balance returns the current balance as a Money value.
func (a *Account) Balance() Money { return M(a.balance, a.Currency) }

// Ref returns the snapshot of the account that transactions embed.
func (a *Account) Ref() AccountRef { return AccountRef{Name: a.Name, Currency: a.Currency} }

func (a *Account) String() string { return fmt.Sprintf("%s: %s", a.Name, a.Currency) }

// Accounts is the registry of all accounts, keyed by name. It is a passive
// store: balance mutations all route through ApplyDelta.
type Accounts struct {
	byName map[string]*Account
}

// NewAccounts creates an empty registry.
func NewAccounts() *Accounts {
	return &Accounts{byName: make(map[string]*Account)}
}

// Add registers an account. Name equality only: adding a second account with
// the same name fails with ErrDuplicate whatever its currency.
func (r *Accounts) Add(a *Account) error {
	if _, ok := r.byName[a.Name]; ok {
		return fmt.Errorf("account %q: %w", a.Name, ErrDuplicate)
	}
	r.byName[a.Name] = a
	return nil
}

// Find returns the live account for that name.
func (r *Accounts) Find(name string) (*Account, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// ApplyDelta adds delta (positive or negative) to the named account's
// balance. This is the only balance-mutating primitive.
func (r *Accounts) ApplyDelta(name string, delta decimal.Decimal) error {
	a, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	a.balance = a.balance.Add(delta)
	return nil
}

// Remove deletes the entry. It does not touch transactions: cascading is
// orchestrated by the Book.
func (r *Accounts) Remove(name string) {
	delete(r.byName, name)
}

// Len returns the number of registered accounts.
func (r *Accounts) Len() int { return len(r.byName) }

// All iterates over accounts in name order.
func (r *Accounts) All() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		names := slices.Collect(maps.Keys(r.byName))
		slices.Sort(names)
		for _, name := range names {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}
