package mtf

import "github.com/shopspring/decimal"

// Targets holds the sale prices that recover the total cost of a position,
// with or without a profit.
type Targets struct {
	TotalCost Money // cost basis + charges + interest
	Breakeven Money // per unit
	Prices    map[Percent]Money
}

// ComputeTargets derives the breakeven price and one price per target percentage.
//
// The proceeds of a sale are assumed to lose the flat fraction buffer to
// sell-side expenses, so the amount to sell for is
//
//	(costBasis + charges + interest + costBasis × p / 100) / (1 − buffer)
//
// divided by q to get a unit price. p is 0 for the breakeven price. A zero
// quantity gives zero prices.
func ComputeTargets(costBasis, charges, interest Money, q Quantity, buffer decimal.Decimal, percents []Percent) Targets {
	total := costBasis.Add(charges).Add(interest)
	t := Targets{
		TotalCost: total,
		Prices:    make(map[Percent]Money, len(percents)),
	}
	keep := decimal.NewFromInt(1).Sub(buffer)
	price := func(proceeds Money) Money {
		if q.IsZero() || keep.IsZero() {
			return Money{cur: total.cur}
		}
		return Money{value: proceeds.value.Div(keep).Div(q.value), cur: total.cur}
	}

	t.Breakeven = price(total)
	for _, p := range percents {
		profit := costBasis.Scale(p.decimal())
		t.Prices[p] = price(total.Add(profit))
	}
	return t
}
