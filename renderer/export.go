package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/mtf"
)

// SellOrders returns one sell order line per open position, at its
// breakeven price:
//
//	EXCH,SYMBOL,SELL,QTY,BREAKEVEN,PRODUCT
//
// The breakeven price has two decimals. An empty product uses the order type
// of each position.
func SellOrders(ps []mtf.Position, product string) string {
	var b strings.Builder
	for _, p := range ps {
		prod := product
		if prod == "" {
			prod = p.OrderType
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s\n", p.Exchange, p.Symbol, mtf.Sell, p.Quantity, p.Breakeven.Fixed(), strings.ToUpper(prod))
	}
	return b.String()
}
