package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the code to persist the book in a way that is still
// human-readable and git-friendly: three JSONL streams, one record per line,
// for accounts, categories and transactions.
//
// Balances are persisted with the accounts and restored verbatim: loading
// transactions never re-applies their balance effects.

// DecodeAccounts parses a JSONL stream of {Name, Balance, Currency} records.
// name is for error messages only.
func DecodeAccounts(name string, r io.Reader) (*Accounts, error) {
	// jaccount is the object read from the file using json parser.
	type jaccount struct {
		Name     string          `json:"Name"`
		Balance  decimal.Decimal `json:"Balance"`
		Currency string          `json:"Currency"`
	}

	accounts := NewAccounts()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var ja jaccount
		if err := json.Unmarshal(line, &ja); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
		}
		if err := accounts.Add(NewAccountWithBalance(ja.Name, ja.Currency, ja.Balance)); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", name, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	return accounts, nil
}

// EncodeAccounts writes the registry as a JSONL stream, in name order.
func EncodeAccounts(w io.Writer, accounts *Accounts) error {
	for a := range accounts.All() {
		var jw jsonObjectWriter
		jw.Append("Name", a.Name)
		jw.Append("Balance", a.Balance().Amount())
		jw.Append("Currency", a.Currency)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("persist error: cannot marshal account %q: %w", a.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write account: %w", err)
		}
	}
	return nil
}

// DecodeCategories parses a JSONL stream of {Name} records.
func DecodeCategories(name string, r io.Reader) (*Categories, error) {
	type jcategory struct {
		Name string `json:"Name"`
	}

	categories := NewCategories()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jc jcategory
		if err := json.Unmarshal(line, &jc); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
		}
		if err := categories.Add(Category{Name: jc.Name}); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", name, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	return categories, nil
}

// EncodeCategories writes the registry as a JSONL stream, in name order.
func EncodeCategories(w io.Writer, categories *Categories) error {
	for c := range categories.All() {
		var jw jsonObjectWriter
		jw.Append("Name", c.Name)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("persist error: cannot marshal category %q: %w", c.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write category: %w", err)
		}
	}
	return nil
}

// DecodeTransactions parses a JSONL stream of transaction records, resolving
// account names against the registry so that each transaction carries a
// snapshot with the right currency. Insertion order is the file order.
func DecodeTransactions(name string, r io.Reader, accounts *Accounts) (*Ledger, error) {
	// jtransaction is the object read from the file using json parser.
	type jtransaction struct {
		Date     Date            `json:"Date"`
		Amount   decimal.Decimal `json:"Amount"`
		Summary  string          `json:"Summary"`
		Category string          `json:"Category"`
		Account  string          `json:"Account"`
		Account2 string          `json:"Account2"`
	}

	resolve := func(accountName string) (AccountRef, error) {
		a, ok := accounts.Find(accountName)
		if !ok {
			return AccountRef{}, fmt.Errorf("account %q: %w", accountName, ErrNotFound)
		}
		return a.Ref(), nil
	}

	l := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jt jtransaction
		if err := json.Unmarshal(line, &jt); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
		}

		summary, err := ParseSummary(jt.Summary)
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
		}

		account, err := resolve(jt.Account)
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
		}

		tx := Transaction{
			Date:     jt.Date,
			Amount:   jt.Amount,
			Summary:  summary,
			Category: jt.Category,
			Account:  account,
		}
		if summary == Transfer {
			account2, err := resolve(jt.Account2)
			if err != nil {
				return nil, fmt.Errorf("format error in %q on line %q: %w", name, string(line), err)
			}
			tx.Account2 = &account2
		} else if jt.Account2 != "" && jt.Account2 != noneAccount {
			return nil, fmt.Errorf("format error in %q on line %q: second account on a non-transfer", name, string(line))
		}
		l.Push(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	return l, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	jsonData, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions persists the ledger to an io.Writer in JSONL format, in
// the list's current order.
func EncodeTransactions(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook assembles a book from the three streams.
func DecodeBook(accounts, categories, transactions io.Reader, rates *Rates) (*Book, error) {
	b := NewBook(rates)
	var err error
	if b.Accounts, err = DecodeAccounts("accounts", accounts); err != nil {
		return nil, err
	}
	if b.Categories, err = DecodeCategories("categories", categories); err != nil {
		return nil, err
	}
	if b.Ledger, err = DecodeTransactions("transactions", transactions, b.Accounts); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeBook persists a book to the three streams.
func EncodeBook(accounts, categories, transactions io.Writer, b *Book) error {
	if err := EncodeAccounts(accounts, b.Accounts); err != nil {
		return err
	}
	if err := EncodeCategories(categories, b.Categories); err != nil {
		return err
	}
	return EncodeTransactions(transactions, b.Ledger)
}
