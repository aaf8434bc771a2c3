package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when a conversion cannot be priced: the
// currency code is absent from the rates snapshot, or the provider call
// itself failed. There is no retry and no fallback to a stale snapshot.
var ErrRateUnavailable = errors.New("rate unavailable")

// RateProvider is the capability the engine consumes to price conversions.
// Rates are quoted against a fixed base currency.
type RateProvider interface {
	// CurrentRates returns the latest currency-code to rate mapping.
	CurrentRates() (map[string]decimal.Decimal, error)
	// RatesAt returns the mapping for a specific past date, restricted to
	// the given currency codes.
	RatesAt(on Date, symbols []string) (map[string]decimal.Decimal, error)
}

// Rates converts amounts between currencies. The current snapshot is fetched
// from the provider once per process and reused for every conversion without
// a date; historical snapshots are fetched lazily per distinct date, since
// they are only needed to reverse old cross-currency transfers.
type Rates struct {
	provider RateProvider
	current  map[string]decimal.Decimal
}

// NewRates creates a rate service on top of a provider. No fetch happens
// until the first conversion.
func NewRates(p RateProvider) *Rates {
	return &Rates{provider: p}
}

// snapshot returns the process-wide current rates, fetching them on first use.
func (r *Rates) snapshot() (map[string]decimal.Decimal, error) {
	if r.current != nil {
		return r.current, nil
	}
	rates, err := r.provider.CurrentRates()
	if err != nil {
		return nil, fmt.Errorf("%w: fetching current rates: %v", ErrRateUnavailable, err)
	}
	r.current = rates
	return r.current, nil
}

// convert computes amount * rate[to] / rate[from] over a snapshot.
func convert(rates map[string]decimal.Decimal, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rfrom, ok := rates[from]
	if !ok || rfrom.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %q", ErrRateUnavailable, from)
	}
	rto, ok := rates[to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %q", ErrRateUnavailable, to)
	}
	return amount.Mul(rto).Div(rfrom), nil
}

// Convert converts an amount between two currencies at the current rate.
// A zero amount converts to zero without consulting any rate.
func (r *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Decimal{}, nil
	}
	if from == to {
		return amount, nil
	}
	rates, err := r.snapshot()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return convert(rates, amount, from, to)
}

// ConvertAt converts an amount between two currencies at the rate of a past
// date. Only the two currencies needed are requested from the provider.
func (r *Rates) ConvertAt(amount decimal.Decimal, from, to string, on Date) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Decimal{}, nil
	}
	if from == to {
		return amount, nil
	}
	rates, err := r.provider.RatesAt(on, []string{from, to})
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: fetching rates for %s: %v", ErrRateUnavailable, on.Key(), err)
	}
	return convert(rates, amount, from, to)
}

// Trend compares a currency's rate across two days.
type Trend int

const (
	TrendDown Trend = iota - 1
	TrendFlat
	TrendUp
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "="
	}
}

// DailyTrend compares yesterday's rates with the current snapshot and
// returns, per currency of the current snapshot, whether the currency got
// stronger (TrendUp), weaker (TrendDown) or stayed flat against the base.
// Currencies without a rate yesterday are reported flat.
func (r *Rates) DailyTrend() (map[string]Trend, error) {
	today, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(today))
	for code := range today {
		symbols = append(symbols, code)
	}
	yesterday, err := r.provider.RatesAt(Today().Add(-1), symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching yesterday's rates: %v", ErrRateUnavailable, err)
	}

	trends := make(map[string]Trend, len(today))
	for code, rate := range today {
		prev, ok := yesterday[code]
		switch {
		case !ok || rate.Equal(prev):
			trends[code] = TrendFlat
		case rate.LessThan(prev):
			// a lower rate buys fewer units per base: the currency got stronger
			trends[code] = TrendUp
		default:
			trends[code] = TrendDown
		}
	}
	return trends, nil
}

// Current returns the current snapshot, fetching it on first use.
func (r *Rates) Current() (map[string]decimal.Decimal, error) {
	return r.snapshot()
}
