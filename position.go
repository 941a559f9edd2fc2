package mtf

import (
	"maps"
	"slices"

	"github.com/etnz/mtf/date"
)

// LotDetail describes one open lot of a position.
type LotDetail struct {
	Date     date.Date
	RawDate  string
	Quantity Quantity
	Price    Money
	Charges  Money
	Source   ChargeSource
	Days     int // days accruing interest, after the interest delay
	Interest Money
}

// Position is the summary of the open lots of a symbol.
type Position struct {
	Symbol    string
	Exchange  string
	OrderType string
	Quantity  Quantity
	CostBasis Money     // Σ quantity × price
	Charges   Money     // charges still allocated to the open lots
	AvgPrice  Money     // (CostBasis + Charges) / Quantity
	BuyDate   date.Date // oldest lot
	DaysHeld  int       // age of the oldest lot
	Lots      []LotDetail

	Interest      Money // accrued on all lots
	DailyInterest Money // accrued per additional day
	Targets
}

// Target returns the price for the profit percentage p, if it was computed.
func (p Position) Target(pct Percent) (Money, bool) {
	for k, v := range p.Prices {
		if k.Equal(pct) {
			return v, true
		}
	}
	return Money{}, false
}

// Percents returns the computed target percentages in ascending order.
func (p Position) Percents() []Percent {
	return slices.Sorted(maps.Keys(p.Prices))
}

// Unrealized returns the profit of selling the whole position at price, measured against the effective average price.
func (p Position) Unrealized(price Money) Money {
	return price.Sub(p.AvgPrice).Mul(p.Quantity)
}

// ClosedLeg is a buy lot (or part of it) matched with a sell.
type ClosedLeg struct {
	Symbol      string
	Quantity    Quantity
	BuyDate     date.Date
	BuyPrice    Money
	SellDate    date.Date
	SellPrice   Money
	BuyCharges  Money
	SellCharges Money
	GrossPnL    Money // sale value − buy cost − buy charges − sell charges
	NetPnL      Money // GrossPnL − Interest
	DaysHeld    int
	Interest    Money
	OrderType   string
}

// ClosedPosition aggregates the closed legs of a symbol.
type ClosedPosition struct {
	Symbol   string
	Quantity Quantity
	GrossPnL Money
	NetPnL   Money
	Interest Money
	Legs     []ClosedLeg
}

func (c *ClosedPosition) add(leg ClosedLeg) {
	c.Quantity = c.Quantity.Add(leg.Quantity)
	c.GrossPnL = c.GrossPnL.Add(leg.GrossPnL)
	c.NetPnL = c.NetPnL.Add(leg.NetPnL)
	c.Interest = c.Interest.Add(leg.Interest)
	c.Legs = append(c.Legs, leg)
}

// UnmatchedSell is the part of a sell that found no open lot to close.
type UnmatchedSell struct {
	Symbol   string
	Date     date.Date
	Quantity Quantity
}

// Result is the outcome of a processing pass.
type Result struct {
	AsOf      date.Date
	Trades    int // trades processed
	Skipped   int // trades ignored because their quantity is zero
	Open      []Position
	Closed    []ClosedPosition
	Unmatched []UnmatchedSell
}

// IsEmpty reports whether there is nothing to show.
func (r *Result) IsEmpty() bool {
	return len(r.Open) == 0 && len(r.Closed) == 0
}

// Position returns the open position of symbol.
func (r *Result) Position(symbol string) (Position, bool) {
	i := slices.IndexFunc(r.Open, func(p Position) bool { return p.Symbol == symbol })
	if i < 0 {
		return Position{}, false
	}
	return r.Open[i], true
}

// ClosedPosition returns the closed position of symbol.
func (r *Result) ClosedPosition(symbol string) (ClosedPosition, bool) {
	i := slices.IndexFunc(r.Closed, func(c ClosedPosition) bool { return c.Symbol == symbol })
	if i < 0 {
		return ClosedPosition{}, false
	}
	return r.Closed[i], true
}

// Summary holds the totals of a Result.
type Summary struct {
	OpenPositions   int
	CapitalDeployed Money // Σ quantity × effective average price
	Interest        Money // accrued on open lots
	DailyInterest   Money
	ClosedPositions int
	GrossPnL        Money
	NetPnL          Money
	ClosedInterest  Money
	Unmatched       int
}

// Summary computes the totals of r.
func (r *Result) Summary() Summary {
	s := Summary{
		OpenPositions:   len(r.Open),
		ClosedPositions: len(r.Closed),
		Unmatched:       len(r.Unmatched),
	}
	for _, p := range r.Open {
		s.CapitalDeployed = s.CapitalDeployed.Add(p.AvgPrice.Mul(p.Quantity))
		s.Interest = s.Interest.Add(p.Interest)
		s.DailyInterest = s.DailyInterest.Add(p.DailyInterest)
	}
	for _, c := range r.Closed {
		s.GrossPnL = s.GrossPnL.Add(c.GrossPnL)
		s.NetPnL = s.NetPnL.Add(c.NetPnL)
		s.ClosedInterest = s.ClosedInterest.Add(c.Interest)
	}
	return s
}
