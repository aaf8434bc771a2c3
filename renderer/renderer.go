// Package renderer renders ledger values as markdown for the CLI.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/ledger"
	"github.com/shopspring/decimal"
)

// Transactions renders a transaction table, one row per transaction in the
// list's current order, with its position in front so rows can be addressed
// by the delete command.
func Transactions(txs []ledger.Transaction) string {
	var b strings.Builder
	b.WriteString("| # | Date | Amount | Summary | Category | Account | Account2 |\n")
	b.WriteString("|--:|------|-------:|---------|----------|---------|----------|\n")
	for i, tx := range txs {
		account2 := ""
		if tx.Account2 != nil {
			account2 = tx.Account2.Name
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			i, tx.Date, tx.Amount, tx.Summary, tx.Category, tx.Account.Name, account2)
	}
	return b.String()
}

// Accounts renders the account table with formatted balances.
func Accounts(accounts []*ledger.Account) string {
	var b strings.Builder
	b.WriteString("| Account | Currency | Balance |\n")
	b.WriteString("|---------|----------|--------:|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Name, a.Currency, a.Balance())
	}
	return b.String()
}

// Categories renders the category list.
func Categories(categories []ledger.Category) string {
	var b strings.Builder
	b.WriteString("| Category |\n")
	b.WriteString("|----------|\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "| %s |\n", c.Name)
	}
	return b.String()
}

// Rates renders the current rates against the base currency together with
// their daily trend.
func Rates(base string, rates map[string]decimal.Decimal, trends map[string]ledger.Trend) string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	fmt.Fprintf(&b, "| Currency | Rate (per %s) | Today |\n", base)
	b.WriteString("|----------|--------------:|:-----:|\n")
	for _, code := range codes {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", code, rates[code], trends[code])
	}
	return b.String()
}
