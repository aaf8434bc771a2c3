package ledger

import (
	"strings"
	"testing"
)

const accountsStream = `{"Name":"Cash","Balance":100,"Currency":"EUR"}
{"Name":"Bank","Balance":"55.5","Currency":"USD"}
`

const categoriesStream = `{"Name":"Groceries"}
{"Name":"Travel"}
`

const transactionsStream = `{"Date":"01/01/2024","Amount":20,"Summary":"Income","Category":"Groceries","Account":"Cash","Account2":"None"}
{"Date":"02/01/2024","Amount":"12.5","Summary":"Expense","Category":"Travel","Account":"Cash","Account2":"None"}
{"Date":"03/01/2024","Amount":10,"Summary":"Transfer","Category":"","Account":"Cash","Account2":"Bank"}
`

func TestDecodeAccounts(t *testing.T) {
	accounts, err := DecodeAccounts("test", strings.NewReader(accountsStream))
	if err != nil {
		t.Fatalf("DecodeAccounts: %v", err)
	}
	if accounts.Len() != 2 {
		t.Fatalf("decoded %d accounts, want 2", accounts.Len())
	}

	cash, ok := accounts.Find("Cash")
	if !ok {
		t.Fatal("Cash not decoded")
	}
	if cash.Currency != "EUR" || !cash.Balance().Amount().Equal(dec("100")) {
		t.Errorf("Cash = %v %s", cash, cash.Balance())
	}
	// amounts are accepted both as json numbers and as strings
	bank, _ := accounts.Find("Bank")
	if !bank.Balance().Amount().Equal(dec("55.5")) {
		t.Errorf("Bank balance = %s, want 55.5", bank.Balance().Amount())
	}
}

func TestDecodeAccounts_Errors(t *testing.T) {
	if _, err := DecodeAccounts("test", strings.NewReader("{not json}\n")); err == nil {
		t.Error("malformed line accepted")
	}
	dup := `{"Name":"Cash","Balance":1,"Currency":"EUR"}
{"Name":"Cash","Balance":2,"Currency":"USD"}
`
	// name-only identity: the same name twice is a duplicate whatever the currency
	if _, err := DecodeAccounts("test", strings.NewReader(dup)); err == nil {
		t.Error("duplicate account name accepted")
	}
}

func TestDecodeTransactions(t *testing.T) {
	accounts, err := DecodeAccounts("test", strings.NewReader(accountsStream))
	if err != nil {
		t.Fatalf("DecodeAccounts: %v", err)
	}
	l, err := DecodeTransactions("test", strings.NewReader(transactionsStream), accounts)
	if err != nil {
		t.Fatalf("DecodeTransactions: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("decoded %d transactions, want 3", l.Len())
	}

	first, _ := l.At(0)
	if first.Summary != Income || first.Account.Currency != "EUR" {
		t.Errorf("first = %+v: the snapshot must resolve the registry currency", first)
	}
	if first.Account2 != nil {
		t.Error("income must have no second account")
	}

	transfer, _ := l.At(2)
	if transfer.Account2 == nil || transfer.Account2.Name != "Bank" || transfer.Account2.Currency != "USD" {
		t.Errorf("transfer second leg = %v", transfer.Account2)
	}
}

func TestDecodeTransactions_Errors(t *testing.T) {
	accounts, _ := DecodeAccounts("test", strings.NewReader(accountsStream))

	testCases := []struct {
		name string
		line string
	}{
		{
			name: "unknown account",
			line: `{"Date":"01/01/2024","Amount":1,"Summary":"Income","Category":"","Account":"Wallet","Account2":"None"}`,
		},
		{
			name: "unknown summary",
			line: `{"Date":"01/01/2024","Amount":1,"Summary":"Loan","Category":"","Account":"Cash","Account2":"None"}`,
		},
		{
			name: "impossible date",
			line: `{"Date":"31/02/2024","Amount":1,"Summary":"Income","Category":"","Account":"Cash","Account2":"None"}`,
		},
		{
			name: "transfer without destination",
			line: `{"Date":"01/01/2024","Amount":1,"Summary":"Transfer","Category":"","Account":"Cash","Account2":"None"}`,
		},
		{
			name: "second account on an expense",
			line: `{"Date":"01/01/2024","Amount":1,"Summary":"Expense","Category":"","Account":"Cash","Account2":"Bank"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeTransactions("test", strings.NewReader(tc.line+"\n"), accounts); err == nil {
				t.Errorf("line %s accepted", tc.line)
			}
		})
	}
}

func TestEncodeBook_RoundTrip(t *testing.T) {
	book, err := DecodeBook(
		strings.NewReader(accountsStream),
		strings.NewReader(categoriesStream),
		strings.NewReader(transactionsStream),
		NewRates(eurUsd(1.1)),
	)
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}

	var accounts, categories, transactions strings.Builder
	if err := EncodeBook(&accounts, &categories, &transactions, book); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}

	back, err := DecodeBook(
		strings.NewReader(accounts.String()),
		strings.NewReader(categories.String()),
		strings.NewReader(transactions.String()),
		NewRates(eurUsd(1.1)),
	)
	if err != nil {
		t.Fatalf("DecodeBook(round trip): %v", err)
	}

	if back.Accounts.Len() != book.Accounts.Len() ||
		back.Categories.Len() != book.Categories.Len() ||
		back.Ledger.Len() != book.Ledger.Len() {
		t.Fatal("round trip lost records")
	}
	for i, tx := range book.Ledger.Transactions() {
		o, _ := back.Ledger.At(i)
		if !tx.Equal(o) {
			t.Errorf("transaction %d changed: %v != %v", i, tx, o)
		}
	}
	// balances are restored verbatim, not recomputed from transactions
	cash, _ := back.Accounts.Find("Cash")
	if !cash.Balance().Amount().Equal(dec("100")) {
		t.Errorf("Cash balance = %s, want 100", cash.Balance().Amount())
	}
}

func TestDecode_SkipsBlankLines(t *testing.T) {
	in := "\n" + accountsStream + "\n\n"
	accounts, err := DecodeAccounts("test", strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeAccounts: %v", err)
	}
	if accounts.Len() != 2 {
		t.Errorf("decoded %d accounts, want 2", accounts.Len())
	}
}
