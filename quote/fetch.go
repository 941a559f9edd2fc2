package quote

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

// FetchAll returns the latest price of every symbol, each fetched once.
//
// Symbols whose price cannot be fetched are missing from the result, and
// their errors are joined in the returned error. Fetching stops early when
// ctx is done.
func FetchAll(ctx context.Context, src Source, symbols []string) (map[string]decimal.Decimal, error) {
	unique := slices.Clone(symbols)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	prices := make(map[string]decimal.Decimal, len(unique))
	var errs []error
	for _, symbol := range unique {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		price, err := src.Latest(ctx, symbol)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !price.IsPositive() {
			errs = append(errs, ErrNoPrice)
			continue
		}
		prices[symbol] = price
	}
	return prices, errors.Join(errs...)
}
