package mtf

import (
	"github.com/etnz/mtf/date"
	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, DefaultCurrency) }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// day0 is the reference date of the scenarios.
var day0 = date.New(2025, 1, 1)

// buy returns a buy trade on day0+day with explicit per-unit expenses.
func buy(symbol string, day int, qty, price, expenses float64) Trade {
	return Trade{
		Date:      day0.Add(day),
		Symbol:    symbol,
		Side:      Buy,
		Quantity:  Q(qty),
		Price:     INR(price),
		Expenses:  INR(expenses),
		Charges:   ChargesExplicit,
		OrderType: DefaultOrderType,
		Exchange:  DefaultExchange,
	}
}

// sell returns a sell trade on day0+day with explicit per-unit expenses.
func sell(symbol string, day int, qty, price, expenses float64) Trade {
	t := buy(symbol, day, qty, price, expenses)
	t.Side = Sell
	return t
}

// estimated returns t with its charges estimated from the rate table.
func estimated(t Trade) Trade {
	t.Charges = ChargesEstimated
	t.Expenses = INR(0)
	return t
}

// testConfig returns the default configuration accruing until day0+asOf.
func testConfig(asOf int) Config {
	return DefaultConfig(day0.Add(asOf))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
