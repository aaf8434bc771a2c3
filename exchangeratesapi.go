package ledger

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the exchangeratesapi.io rate provider.

const exchangerates_api_key = "EXCHANGERATES_API_KEY"

var exchangeratesApiFlag = flag.String("exchangerates-api-key", "", "exchangeratesapi.io API key to use for fetching currency rates.\n If missing it will read the environment variable \""+exchangerates_api_key+"\". You can get one at https://exchangeratesapi.io/")

func exchangeratesApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *exchangeratesApiFlag == "" {
		*exchangeratesApiFlag = os.Getenv(exchangerates_api_key)
	}
	return *exchangeratesApiFlag
}

// BaseCurrency is the base all rates are quoted against on the free plan.
const BaseCurrency = "EUR"

const exchangeratesEndpoint = "http://api.exchangeratesapi.io/v1/"

// ExchangeRatesAPI fetches currency rates from exchangeratesapi.io. It
// implements RateProvider. Responses are cached on disk with a daily expiry,
// so repeated runs within a day do not hit the network again.
type ExchangeRatesAPI struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewExchangeRatesAPI creates a provider using the API key from the flag or
// the environment.
func NewExchangeRatesAPI() *ExchangeRatesAPI {
	return &ExchangeRatesAPI{
		apiKey:   exchangeratesApiKey(),
		endpoint: exchangeratesEndpoint,
		client:   daily(),
	}
}

// fetch performs the request and extracts the rates object from the payload.
//
//	{
//	  "success": true,
//	  "base": "EUR",
//	  "date": "2024-03-01",
//	  "rates": { "USD": 1.0836, "GBP": 0.8552 }
//	}
func (p *ExchangeRatesAPI) fetch(addr string) (map[string]decimal.Decimal, error) {
	var payload interface{}
	if err := jwget(p.client, addr, &payload); err != nil {
		return nil, err
	}

	if ok, err := jsonpath.Get("$.success", payload); err == nil {
		if success, isBool := ok.(bool); isBool && !success {
			return nil, fmt.Errorf("exchangeratesapi.io refused the request: %v", payload)
		}
	}

	obj, err := jsonpath.Get("$.rates", payload)
	if err != nil {
		return nil, fmt.Errorf("no rates in exchangeratesapi.io response: %w", err)
	}
	raw, ok := obj.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("rates in exchangeratesapi.io response are not an object")
	}

	rates := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		rate, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("rate for %q is not a number", code)
		}
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates, nil
}

// CurrentRates returns the latest rates against BaseCurrency.
func (p *ExchangeRatesAPI) CurrentRates() (map[string]decimal.Decimal, error) {
	addr := fmt.Sprintf("%slatest?access_key=%s", p.endpoint, url.QueryEscape(p.apiKey))
	return p.fetch(addr)
}

// RatesAt returns the rates of a past date, restricted to the given symbols.
func (p *ExchangeRatesAPI) RatesAt(on Date, symbols []string) (map[string]decimal.Decimal, error) {
	addr := fmt.Sprintf("%s%s?access_key=%s&symbols=%s",
		p.endpoint, on.Key(), url.QueryEscape(p.apiKey), url.QueryEscape(strings.Join(symbols, ",")))
	return p.fetch(addr)
}

var _ RateProvider = (*ExchangeRatesAPI)(nil)
