package cmd

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/etnz/mtf"
	"github.com/etnz/mtf/quote"
	"github.com/shopspring/decimal"
)

// Environment variables configuring the quote service. They can be set in a
// .env file of the working directory.
const (
	EnvQuoteURL  = "MTF_QUOTE_URL"
	EnvQuotePath = "MTF_QUOTE_PATH"
)

// defaultClient is the http client of quote sources.
var defaultClient = &http.Client{Timeout: 30 * time.Second}

// quoteFlags are the flags of commands fetching quotes.
type quoteFlags struct {
	url  string
	path string
	ttl  time.Duration
}

func (q *quoteFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&q.url, "quote-url", os.Getenv(EnvQuoteURL), "Quote service address, {symbol} is replaced by the symbol (env "+EnvQuoteURL+")")
	f.StringVar(&q.path, "quote-path", os.Getenv(EnvQuotePath), "JSONPath of the price in the quote service response (env "+EnvQuotePath+")")
	f.DurationVar(&q.ttl, "quote-ttl", time.Minute, "Duration fetched quotes are reused for")
}

// source returns the configured quote source.
func (q *quoteFlags) source() (quote.Source, error) {
	if q.url == "" {
		return nil, fmt.Errorf("no quote service configured, set -quote-url or %s", EnvQuoteURL)
	}
	src, err := quote.NewHTTPSource(q.url, q.path)
	if err != nil {
		return nil, err
	}
	src.Client = defaultClient
	return quote.NewCached(src, q.ttl), nil
}

// priceFlags collects repeated SYMBOL=PRICE flags.
type priceFlags map[string]decimal.Decimal

func (p priceFlags) String() string {
	var parts []string
	for s, v := range p {
		parts = append(parts, s+"="+v.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (p priceFlags) Set(v string) error {
	symbol, price, ok := strings.Cut(v, "=")
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !ok || symbol == "" {
		return fmt.Errorf("invalid price %q, want SYMBOL=PRICE", v)
	}
	d := mtf.ParseNumber(price)
	if !d.IsPositive() {
		return fmt.Errorf("invalid price %q for %s, want a positive number", price, symbol)
	}
	p[symbol] = d
	return nil
}

// money converts prices to currency.
func money(prices map[string]decimal.Decimal, currency string) map[string]mtf.Money {
	res := make(map[string]mtf.Money, len(prices))
	for s, v := range prices {
		res[s] = mtf.M(v, currency)
	}
	return res
}

// symbols returns the symbols of the open positions.
func symbols(ps []mtf.Position) []string {
	res := make([]string, 0, len(ps))
	for _, p := range ps {
		res = append(res, p.Symbol)
	}
	return res
}
