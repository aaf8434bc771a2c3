package ledger

import (
	"github.com/shopspring/decimal"
)

// stubProvider is an in-memory RateProvider for tests. It records how many
// calls were made so tests can assert the caching behavior.
type stubProvider struct {
	current      map[string]decimal.Decimal
	history      map[string]map[string]decimal.Decimal // keyed by Date.Key()
	currentCalls int
	historyCalls int
}

func (p *stubProvider) CurrentRates() (map[string]decimal.Decimal, error) {
	p.currentCalls++
	return p.current, nil
}

func (p *stubProvider) RatesAt(on Date, symbols []string) (map[string]decimal.Decimal, error) {
	p.historyCalls++
	rates := p.history[on.Key()]
	// restrict to the requested symbols, like the real provider does
	out := make(map[string]decimal.Decimal)
	for _, s := range symbols {
		if r, ok := rates[s]; ok {
			out[s] = r
		}
	}
	return out, nil
}

// eurUsd returns a provider quoting EUR as base with USD at the given rate.
func eurUsd(rate float64) *stubProvider {
	return &stubProvider{
		current: map[string]decimal.Decimal{
			"EUR": decimal.NewFromInt(1),
			"USD": decimal.NewFromFloat(rate),
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testBook builds a book over two accounts, Cash (EUR) and Bank (USD), with
// the given opening balances.
func testBook(rates *Rates, cash, bank string) *Book {
	b := NewBook(rates)
	b.Accounts.Add(NewAccountWithBalance("Cash", "EUR", dec(cash)))
	b.Accounts.Add(NewAccountWithBalance("Bank", "USD", dec(bank)))
	b.Categories.Add(Category{Name: "Other"})
	return b
}

func balanceOf(b *Book, name string) decimal.Decimal {
	a, ok := b.Accounts.Find(name)
	if !ok {
		return decimal.Decimal{}
	}
	return a.Balance().Amount()
}
