package ledger

import (
	"fmt"
)

// Book is the single owner of the three collections of the system: the
// account registry, the category registry and the transaction ledger, plus
// the rate service used to price cross-currency transfers. It is constructed
// once at startup and passed by reference to all operations.
//
// The Book is the only component that mutates account balances. Every
// operation runs to completion before the next one: the model is
// single-threaded and non-reentrant.
type Book struct {
	Accounts   *Accounts
	Categories *Categories
	Ledger     *Ledger
	Rates      *Rates
}

// NewBook creates an empty book on top of a rate service.
func NewBook(rates *Rates) *Book {
	return &Book{
		Accounts:   NewAccounts(),
		Categories: NewCategories(),
		Ledger:     NewLedger(),
		Rates:      rates,
	}
}

// Add applies the transaction's balance effects and then pushes it onto the
// ledger. If anything fails before the first balance mutation, the book is
// left untouched.
func (b *Book) Add(tx Transaction) error {
	if err := b.apply(tx); err != nil {
		return err
	}
	b.Ledger.Push(tx)
	return nil
}

// apply performs the balance side effects of a transaction creation:
//
//	Income:   account += amount
//	Expense:  account -= amount
//	Transfer: account -= amount; account2 += convert(amount) at today's rate
//
// For a transfer, the converted credit is computed before any debit is
// applied, so that a failed conversion can never leave one account debited
// without the other being credited.
func (b *Book) apply(tx Transaction) error {
	switch tx.Summary {
	case Income:
		return b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount)
	case Expense:
		return b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount.Neg())
	case Transfer:
		if tx.Account2 == nil {
			return fmt.Errorf("transfer on %s has no destination account", tx.Date)
		}
		if _, ok := b.Accounts.Find(tx.Account.Name); !ok {
			return fmt.Errorf("account %q: %w", tx.Account.Name, ErrNotFound)
		}
		if _, ok := b.Accounts.Find(tx.Account2.Name); !ok {
			return fmt.Errorf("account %q: %w", tx.Account2.Name, ErrNotFound)
		}
		credit, err := b.Rates.Convert(tx.Amount, tx.Account.Currency, tx.Account2.Currency)
		if err != nil {
			return fmt.Errorf("transfer %s -> %s: %w", tx.Account.Name, tx.Account2.Name, err)
		}
		if err := b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount.Neg()); err != nil {
			return err
		}
		return b.Accounts.ApplyDelta(tx.Account2.Name, credit)
	default:
		return fmt.Errorf("unknown summary: %q", tx.Summary)
	}
}

// reverse performs the exact inverse balance side effects of apply, for a
// transaction deletion.
//
// For a transfer, the destination debit is recomputed from the amount at the
// rate current at reversal time, not the rate recorded at apply time. When
// rates moved in between, round-tripping a transfer does not restore the
// original balances exactly. This is a known limitation of the contract, not
// a bug: the apply-time rate is deliberately not memoized.
func (b *Book) reverse(tx Transaction) error {
	switch tx.Summary {
	case Income:
		return b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount.Neg())
	case Expense:
		return b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount)
	case Transfer:
		if tx.Account2 == nil {
			return fmt.Errorf("transfer on %s has no destination account", tx.Date)
		}
		if _, ok := b.Accounts.Find(tx.Account.Name); !ok {
			return fmt.Errorf("account %q: %w", tx.Account.Name, ErrNotFound)
		}
		if _, ok := b.Accounts.Find(tx.Account2.Name); !ok {
			return fmt.Errorf("account %q: %w", tx.Account2.Name, ErrNotFound)
		}
		// compute the debit before mutating anything, same ordering rule as apply
		debit, err := b.Rates.Convert(tx.Amount, tx.Account.Currency, tx.Account2.Currency)
		if err != nil {
			return fmt.Errorf("transfer %s -> %s: %w", tx.Account.Name, tx.Account2.Name, err)
		}
		if err := b.Accounts.ApplyDelta(tx.Account2.Name, debit.Neg()); err != nil {
			return err
		}
		return b.Accounts.ApplyDelta(tx.Account.Name, tx.Amount)
	default:
		return fmt.Errorf("unknown summary: %q", tx.Summary)
	}
}

// DeleteTransactionAt reverses the balance effects of the transaction at
// position i and removes it from the ledger. The transaction's stored
// account snapshots and amount are read before removal.
func (b *Book) DeleteTransactionAt(i int) error {
	tx, err := b.Ledger.At(i)
	if err != nil {
		return err
	}
	if err := b.reverse(tx); err != nil {
		return err
	}
	_, err = b.Ledger.DeleteAt(i)
	return err
}

// DeleteCategory removes every transaction of that category and then the
// category itself. No balance is reversed: a deleted category does not
// retroactively alter any account.
func (b *Book) DeleteCategory(name string) error {
	if _, ok := b.Categories.Find(name); !ok {
		return fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	b.Ledger.DeleteMatching(func(tx Transaction) bool {
		return tx.Category == name
	})
	b.Categories.Remove(name)
	return nil
}

// DeleteAccount removes every transaction referencing the account on either
// leg and then the account itself. Balances of the other accounts it had
// transacted with are deliberately not refunded.
func (b *Book) DeleteAccount(name string) error {
	if _, ok := b.Accounts.Find(name); !ok {
		return fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	b.Ledger.DeleteMatching(func(tx Transaction) bool {
		return tx.Account.Name == name || (tx.Account2 != nil && tx.Account2.Name == name)
	})
	b.Accounts.Remove(name)
	return nil
}

// MakeTransaction validates the raw form fields and resolves them into a
// transaction carrying snapshots of the live accounts. Nothing is applied:
// the result is meant to be passed to Add.
func (b *Book) MakeTransaction(form TransactionForm) (Transaction, error) {
	if err := ValidateTransaction(form); err != nil {
		return Transaction{}, err
	}
	day, _ := ParseDate(form.Date)
	amount, _ := parseAmount(form.Amount)
	summary, _ := ParseSummary(form.Summary)

	account, ok := b.Accounts.Find(form.Account)
	if !ok {
		return Transaction{}, fmt.Errorf("account %q: %w", form.Account, ErrNotFound)
	}
	if summary != Transfer {
		return NewTransaction(day, amount, summary, form.Category, account.Ref()), nil
	}
	account2, ok := b.Accounts.Find(form.Account2)
	if !ok {
		return Transaction{}, fmt.Errorf("account %q: %w", form.Account2, ErrNotFound)
	}
	return NewTransfer(day, amount, form.Category, account.Ref(), account2.Ref()), nil
}
