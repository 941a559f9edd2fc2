package mtf

import (
	"encoding/json"
	"testing"

	"github.com/etnz/mtf/date"
	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	now := date.New(2025, 6, 30)
	n := Normalizer{Now: now, Currency: DefaultCurrency}
	half := dec("0.5")
	zero := decimal.Zero

	testCases := []struct {
		name string
		raw  RawTrade
		want Trade
	}{
		{
			name: "typical buy",
			raw:  RawTrade{Date: "11/07/2025", Symbol: "infy", Side: "BUY", Qty: "25", Price: "1,363.40", Expenses: &half},
			want: Trade{Date: date.New(2025, 7, 11), Symbol: "INFY", Side: Buy, Quantity: Q(25), Price: INR(1363.4), Expenses: INR(0.5), Charges: ChargesExplicit},
		},
		{
			name: "short side and negative quantity",
			raw:  RawTrade{Date: "2025-07-11", Symbol: " tcs ", Side: "s", Qty: "-10", Price: "3400"},
			want: Trade{Date: date.New(2025, 7, 11), Symbol: "TCS", Side: Sell, Quantity: Q(10), Price: INR(3400), Charges: ChargesEstimated},
		},
		{
			name: "explicit zero expenses",
			raw:  RawTrade{Date: "1-7-25", Symbol: "ITC", Side: "b", Qty: "1", Price: "400", Expenses: &zero},
			want: Trade{Date: date.New(2025, 7, 1), Symbol: "ITC", Side: Buy, Quantity: Q(1), Price: INR(400), Charges: ChargesExplicit},
		},
		{
			name: "unparseable fields",
			raw:  RawTrade{Date: "someday", Symbol: "ITC", Side: "?", Qty: "many", Price: ""},
			want: Trade{Date: now, Symbol: "ITC", Side: Sell, Charges: ChargesEstimated, DateFallback: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.raw)
			if got.Date != tc.want.Date {
				t.Errorf("Date = %v, want %v", got.Date, tc.want.Date)
			}
			if got.Symbol != tc.want.Symbol {
				t.Errorf("Symbol = %q, want %q", got.Symbol, tc.want.Symbol)
			}
			if got.Side != tc.want.Side {
				t.Errorf("Side = %v, want %v", got.Side, tc.want.Side)
			}
			if !got.Quantity.Equal(tc.want.Quantity) {
				t.Errorf("Quantity = %v, want %v", got.Quantity, tc.want.Quantity)
			}
			if !got.Price.Equal(tc.want.Price) || got.Price.Currency() != DefaultCurrency {
				t.Errorf("Price = %v %s, want %v", got.Price.Decimal(), got.Price.Currency(), tc.want.Price.Decimal())
			}
			if !got.Expenses.Equal(tc.want.Expenses) {
				t.Errorf("Expenses = %v, want %v", got.Expenses.Decimal(), tc.want.Expenses.Decimal())
			}
			if got.Charges != tc.want.Charges {
				t.Errorf("Charges = %v, want %v", got.Charges, tc.want.Charges)
			}
			if got.DateFallback != tc.want.DateFallback {
				t.Errorf("DateFallback = %v, want %v", got.DateFallback, tc.want.DateFallback)
			}
			if got.RawDate != tc.raw.Date {
				t.Errorf("RawDate = %q, want %q", got.RawDate, tc.raw.Date)
			}
			if got.OrderType != DefaultOrderType || got.Exchange != DefaultExchange {
				t.Errorf("OrderType, Exchange = %q, %q; want defaults", got.OrderType, got.Exchange)
			}
		})
	}
}

func TestNormalizeKeepsProduct(t *testing.T) {
	got := Normalizer{Now: day0}.Normalize(RawTrade{Date: "01/01/2025", Symbol: "X", Side: "B", Qty: "1", Price: "1", OrderType: "cnc", Exchange: "bse"})
	if got.OrderType != "CNC" || got.Exchange != "BSE" {
		t.Errorf("OrderType, Exchange = %q, %q; want CNC, BSE", got.OrderType, got.Exchange)
	}
}

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"1,363.40", "1363.4"},
		{" 12 345,5 ", "123455"},
		{"1 000", "1000"},
		{"1_000.25", "1000.25"},
		{"-3.5", "-3.5"},
		{"", "0"},
		{"abc", "0"},
		{"NaN", "0"},
	}
	for _, tc := range testCases {
		if got := ParseNumber(tc.in); !got.Equal(dec(tc.want)) {
			t.Errorf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSide(t *testing.T) {
	testCases := map[string]Side{
		"B": Buy, "b": Buy, "buy": Buy, " Buy ": Buy,
		"S": Sell, "sell": Sell, "": Sell, "short": Sell,
	}
	for in, want := range testCases {
		if got := ParseSide(in); got != want {
			t.Errorf("ParseSide(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRawTradeJSON(t *testing.T) {
	var raws []RawTrade
	data := `[
		{"date":"11/07/2025","symbol":"INFY","side":"BUY","qty":25,"price":"1,363.40","expenses":0.81},
		{"date":"12/07/2025","symbol":"INFY","side":"SELL","qty":"5","price":1400,"expenses":null}
	]`
	if err := json.Unmarshal([]byte(data), &raws); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if raws[0].Qty != "25" || raws[0].Price != "1,363.40" {
		t.Errorf("Qty, Price = %q, %q; want 25, 1,363.40", raws[0].Qty, raws[0].Price)
	}
	if raws[0].Expenses == nil || !raws[0].Expenses.Equal(dec("0.81")) {
		t.Errorf("Expenses = %v, want 0.81", raws[0].Expenses)
	}
	if raws[1].Qty != "5" || raws[1].Price != "1400" {
		t.Errorf("Qty, Price = %q, %q; want 5, 1400", raws[1].Qty, raws[1].Price)
	}
	if raws[1].Expenses != nil {
		t.Errorf("Expenses = %v, want nil", raws[1].Expenses)
	}
}
