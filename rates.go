package mtf

import "github.com/shopspring/decimal"

// RateTable holds the fee, tax and financing rates used to estimate trade
// charges, accrue interest and derive target prices. All rates are fractions
// of turnover (quantity × price), except GST which applies to the sum of
// brokerage, transaction and SEBI charges.
type RateTable struct {
	Brokerage      decimal.Decimal // brokerage on delivery trades
	STTBuy         decimal.Decimal // securities transaction tax on delivery buys
	STTSell        decimal.Decimal // securities transaction tax on sells
	TxnCharge      decimal.Decimal // exchange transaction charge
	SEBICharge     decimal.Decimal // regulator turnover fee
	StampDuty      decimal.Decimal // buy side only
	GST            decimal.Decimal // tax on brokerage, transaction and SEBI charges
	AnnualInterest decimal.Decimal // MTF financing rate per annum
	// SellBuffer is the flat fraction of sale proceeds assumed lost to
	// sell-side expenses when deriving breakeven and target prices.
	SellBuffer decimal.Decimal
	// Targets is the standard set of profit percentages.
	Targets []Percent
}

// DefaultRates returns the standard rate table for delivery MTF trades on Indian exchanges.
func DefaultRates() RateTable {
	return RateTable{
		Brokerage:      decimal.RequireFromString("0.004"),
		STTBuy:         decimal.RequireFromString("0.001"),
		STTSell:        decimal.RequireFromString("0.001"),
		TxnCharge:      decimal.RequireFromString("0.0000325"),
		SEBICharge:     decimal.RequireFromString("0.000001"),
		StampDuty:      decimal.RequireFromString("0.00015"),
		GST:            decimal.RequireFromString("0.18"),
		AnnualInterest: decimal.RequireFromString("0.18"),
		SellBuffer:     decimal.RequireFromString("0.005"),
		Targets:        []Percent{1, 2, 3, 5, 10},
	}
}

// BuyCharges estimates the total charges of a delivery buy of q shares at price.
func (r RateTable) BuyCharges(q Quantity, price Money) Money {
	turnover := price.Mul(q)
	brokerage := turnover.Scale(r.Brokerage)
	txn := turnover.Scale(r.TxnCharge)
	sebi := turnover.Scale(r.SEBICharge)
	gst := brokerage.Add(txn).Add(sebi).Scale(r.GST)
	return brokerage.
		Add(turnover.Scale(r.STTBuy)).
		Add(txn).
		Add(sebi).
		Add(turnover.Scale(r.StampDuty)).
		Add(gst)
}

// SellCharges estimates the total charges of a sell of q shares at price. There is no stamp duty on sells.
func (r RateTable) SellCharges(q Quantity, price Money) Money {
	turnover := price.Mul(q)
	brokerage := turnover.Scale(r.Brokerage)
	txn := turnover.Scale(r.TxnCharge)
	sebi := turnover.Scale(r.SEBICharge)
	gst := brokerage.Add(txn).Add(sebi).Scale(r.GST)
	return brokerage.
		Add(turnover.Scale(r.STTSell)).
		Add(txn).
		Add(sebi).
		Add(gst)
}

// charges returns the total charges of t: its explicit per-unit expenses
// times its quantity, or the side specific estimate.
func (r RateTable) charges(t Trade) Money {
	if t.Charges == ChargesExplicit {
		return t.Expenses.Mul(t.Quantity)
	}
	if t.Side == Buy {
		return r.BuyCharges(t.Quantity, t.Price)
	}
	return r.SellCharges(t.Quantity, t.Price)
}
