// Package quote fetches the latest market price of symbols from a JSON
// quote service.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/mtf"
	"github.com/shopspring/decimal"
)

// ErrNoPrice is returned when a quote holds no usable price.
var ErrNoPrice = errors.New("no price")

// Source returns the latest price of a symbol.
type Source interface {
	Latest(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// HTTPSource reads prices from a JSON web service.
//
// For instance, with URL "https://example.com/quote/{symbol}.json" and Path
// "$.data.lastPrice", the price of INFY is read at $.data.lastPrice in the
// response to https://example.com/quote/INFY.json.
type HTTPSource struct {
	URL    string       // address of the quote, {symbol} is replaced by the escaped symbol
	Path   string       // JSONPath of the price in the response
	Client *http.Client // http.DefaultClient if nil
}

// NewHTTPSource returns a source for the quote service at addr.
func NewHTTPSource(addr, path string) (*HTTPSource, error) {
	if !strings.Contains(addr, "{symbol}") {
		return nil, fmt.Errorf("quote url %q has no {symbol} placeholder", addr)
	}
	if _, err := url.Parse(strings.ReplaceAll(addr, "{symbol}", "X")); err != nil {
		return nil, fmt.Errorf("invalid quote url %q: %w", addr, err)
	}
	if path == "" {
		return nil, errors.New("quote price path is empty")
	}
	return &HTTPSource{URL: addr, Path: path}, nil
}

// Latest returns the price of symbol. It fails with ErrNoPrice if the
// response has no value at Path, or if the value is not a positive number.
func (s *HTTPSource) Latest(ctx context.Context, symbol string) (decimal.Decimal, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	addr := strings.ReplaceAll(s.URL, "{symbol}", url.PathEscape(symbol))

	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	jval, err := jsonpath.Get(s.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w for %q at %q: %v", ErrNoPrice, symbol, s.Path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or
	// a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return decimal.Zero, fmt.Errorf("%w for %q at %q: empty result", ErrNoPrice, symbol, s.Path)
		}
		jval = jlist[0]
	}

	price, ok := toDecimal(jval)
	if !ok || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w for %q: %v is not a positive number", ErrNoPrice, symbol, jval)
	}
	return price, nil
}

// toDecimal reads JSON numbers and numeric strings. Sometimes quote services
// return the price as a string with grouping separators.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d := mtf.ParseNumber(v)
		return d, !d.IsZero()
	default:
		return decimal.Zero, false
	}
}

// jwget gets addr and decodes the JSON response into data, numbers being kept as json.Number.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	return dec.Decode(data)
}
