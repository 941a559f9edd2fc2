package mtf

import (
	"encoding/json"
	"io"
	"strconv"
)

// this file contains the JSON export of processing results. Field order is
// stable so that exports can be diffed.

func (l LotDetail) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", l.Date)
	w.Optional("rawDate", l.RawDate)
	w.Append("qty", l.Quantity)
	w.Append("price", l.Price)
	w.Append("charges", l.Charges)
	w.Append("chargeSource", l.Source.String())
	w.Append("days", l.Days)
	w.Append("interest", l.Interest)
	return w.MarshalJSON()
}

// targetsJSON writes the target prices keyed by percentage, in ascending order.
func targetsJSON(p Position) ([]byte, error) {
	var w jsonObjectWriter
	for _, pct := range p.Percents() {
		w.Append(strconv.FormatFloat(float64(pct), 'f', -1, 64), p.Prices[pct])
	}
	return w.MarshalJSON()
}

func (p Position) MarshalJSON() ([]byte, error) {
	targets, err := targetsJSON(p)
	if err != nil {
		return nil, err
	}
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("exchange", p.Exchange)
	w.Append("orderType", p.OrderType)
	w.Append("currency", p.CostBasis.Currency())
	w.Append("qty", p.Quantity)
	w.Append("costBasis", p.CostBasis)
	w.Append("charges", p.Charges)
	w.Append("avgPrice", p.AvgPrice)
	w.Append("buyDate", p.BuyDate)
	w.Append("daysHeld", p.DaysHeld)
	w.Append("interest", p.Interest)
	w.Append("dailyInterest", p.DailyInterest)
	w.Append("totalCost", p.TotalCost)
	w.Append("breakeven", p.Breakeven)
	w.Append("targets", json.RawMessage(targets))
	w.Append("lots", p.Lots)
	return w.MarshalJSON()
}

func (l ClosedLeg) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("qty", l.Quantity)
	w.Append("buyDate", l.BuyDate)
	w.Append("buyPrice", l.BuyPrice)
	w.Append("sellDate", l.SellDate)
	w.Append("sellPrice", l.SellPrice)
	w.Append("buyCharges", l.BuyCharges)
	w.Append("sellCharges", l.SellCharges)
	w.Append("daysHeld", l.DaysHeld)
	w.Append("interest", l.Interest)
	w.Append("grossPnL", l.GrossPnL)
	w.Append("netPnL", l.NetPnL)
	w.Optional("orderType", l.OrderType)
	return w.MarshalJSON()
}

func (c ClosedPosition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", c.Symbol)
	w.Append("qty", c.Quantity)
	w.Append("grossPnL", c.GrossPnL)
	w.Append("interest", c.Interest)
	w.Append("netPnL", c.NetPnL)
	w.Append("legs", c.Legs)
	return w.MarshalJSON()
}

func (u UnmatchedSell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", u.Symbol)
	w.Append("date", u.Date)
	w.Append("qty", u.Quantity)
	return w.MarshalJSON()
}

func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asOf", r.AsOf)
	w.Append("trades", r.Trades)
	w.Optional("skipped", r.Skipped)
	w.Append("open", nonNil(r.Open))
	w.Append("closed", nonNil(r.Closed))
	w.Optional("unmatched", r.Unmatched)
	return w.MarshalJSON()
}

// nonNil makes empty collections marshal as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EncodeResult writes r as indented JSON.
func EncodeResult(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
