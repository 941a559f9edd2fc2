package mtf

import (
	"cmp"
	"slices"
)

// book is the per-symbol state of a processing pass.
type book struct {
	symbol string
	open   lots
	closed ClosedPosition
}

// ProcessRaw normalizes raws, using cfg.AsOf for dates that cannot be
// parsed, and processes them.
func ProcessRaw(raws []RawTrade, cfg Config) *Result {
	n := Normalizer{Now: cfg.AsOf, Currency: cfg.Currency}
	trades := make([]Trade, 0, len(raws))
	for _, raw := range raws {
		trades = append(trades, n.Normalize(raw))
	}
	return Process(trades, cfg)
}

// Process matches sells against buys first-in-first-out and summarizes
// open and closed positions.
//
// Trades are processed in date order, trades of the same day keep the input
// order. Sells consume the oldest open lots of their symbol first, splitting
// the last lot when needed. A sell larger than the open quantity closes
// everything and the excess is reported in Result.Unmatched.
//
// Process has no hidden inputs: open lots accrue interest until cfg.AsOf.
func Process(trades []Trade, cfg Config) *Result {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int { return a.Date.Compare(b.Date) })

	res := &Result{AsOf: cfg.AsOf}
	books := make(map[string]*book)
	for _, t := range sorted {
		if !t.Quantity.IsPositive() {
			res.Skipped++
			continue
		}
		res.Trades++
		b, ok := books[t.Symbol]
		if !ok {
			b = &book{symbol: t.Symbol, closed: ClosedPosition{Symbol: t.Symbol}}
			books[t.Symbol] = b
		}
		switch t.Side {
		case Buy:
			b.open = append(b.open, newLot(t, cfg.Rates.charges(t)))
		case Sell:
			if u, ok := b.sell(t, cfg); ok {
				res.Unmatched = append(res.Unmatched, u)
			}
		}
	}

	for _, b := range books {
		if b.open.quantity().IsPositive() {
			res.Open = append(res.Open, b.position(cfg))
		}
		if len(b.closed.Legs) > 0 {
			res.Closed = append(res.Closed, b.closed)
		}
	}
	slices.SortFunc(res.Open, func(a, b Position) int { return cmp.Compare(a.Symbol, b.Symbol) })
	slices.SortFunc(res.Closed, func(a, b ClosedPosition) int { return cmp.Compare(a.Symbol, b.Symbol) })
	return res
}

// sell closes lots for t and returns the quantity that could not be matched, if any.
func (b *book) sell(t Trade, cfg Config) (UnmatchedSell, bool) {
	sellPerUnit := cfg.Rates.charges(t).Div(t.Quantity)

	var matches []match
	var unmatched Quantity
	b.open, matches, unmatched = b.open.sell(t.Quantity)

	for _, m := range matches {
		buyCost := m.Lot.Price.Mul(m.Quantity)
		sellValue := t.Price.Mul(m.Quantity)
		sellCharges := sellPerUnit.Mul(m.Quantity)
		days := DaysHeld(m.Lot.Date, t.Date, 0)
		interest := Accrue(buyCost, m.Charges, cfg.FundedRatio, cfg.Rates.AnnualInterest, days)
		gross := sellValue.Sub(buyCost).Sub(m.Charges).Sub(sellCharges)

		b.closed.add(ClosedLeg{
			Symbol:      t.Symbol,
			Quantity:    m.Quantity,
			BuyDate:     m.Lot.Date,
			BuyPrice:    m.Lot.Price,
			SellDate:    t.Date,
			SellPrice:   t.Price,
			BuyCharges:  m.Charges,
			SellCharges: sellCharges,
			GrossPnL:    gross,
			NetPnL:      gross.Sub(interest),
			DaysHeld:    days,
			Interest:    interest,
			OrderType:   m.Lot.OrderType,
		})
	}
	if unmatched.IsPositive() {
		return UnmatchedSell{Symbol: t.Symbol, Date: t.Date, Quantity: unmatched}, true
	}
	return UnmatchedSell{}, false
}

// position summarizes the open lots of b as of cfg.AsOf.
func (b *book) position(cfg Config) Position {
	p := Position{
		Symbol:    b.symbol,
		Exchange:  b.open[0].Exchange,
		OrderType: b.open[0].OrderType,
		BuyDate:   b.open[0].Date,
	}
	rate := cfg.Rates.AnnualInterest
	for _, l := range b.open {
		cost := l.Price.Mul(l.Quantity)
		days := DaysHeld(l.Date, cfg.AsOf, cfg.InterestDelay)
		interest := Accrue(cost, l.Charges, cfg.FundedRatio, rate, days)

		p.Quantity = p.Quantity.Add(l.Quantity)
		p.CostBasis = p.CostBasis.Add(cost)
		p.Charges = p.Charges.Add(l.Charges)
		p.Interest = p.Interest.Add(interest)
		p.DailyInterest = p.DailyInterest.Add(Accrue(cost, l.Charges, cfg.FundedRatio, rate, 1))
		if l.Date.Before(p.BuyDate) {
			p.BuyDate = l.Date
		}
		p.Lots = append(p.Lots, LotDetail{
			Date:     l.Date,
			RawDate:  l.RawDate,
			Quantity: l.Quantity,
			Price:    l.Price,
			Charges:  l.Charges,
			Source:   l.Source,
			Days:     days,
			Interest: interest,
		})
	}
	p.AvgPrice = p.CostBasis.Add(p.Charges).Div(p.Quantity)
	p.DaysHeld = DaysHeld(p.BuyDate, cfg.AsOf, 0)
	p.Targets = ComputeTargets(p.CostBasis, p.Charges, p.Interest, p.Quantity, cfg.Rates.SellBuffer, cfg.TargetPercents())
	return p
}
