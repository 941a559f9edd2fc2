package quote

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// Cached is a Source that remembers prices for a while. Failures are not
// remembered.
type Cached struct {
	src   Source
	cache *cache.Cache
}

// NewCached returns a Source serving the prices of src for ttl.
func NewCached(src Source, ttl time.Duration) *Cached {
	return &Cached{src: src, cache: cache.New(ttl, 2*ttl)}
}

func (c *Cached) Latest(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if v, ok := c.cache.Get(symbol); ok {
		return v.(decimal.Decimal), nil
	}
	price, err := c.src.Latest(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	c.cache.Set(symbol, price, cache.DefaultExpiration)
	return price, nil
}

// Flush forgets every price.
func (c *Cached) Flush() { c.cache.Flush() }
