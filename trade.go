package mtf

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/etnz/mtf/date"
	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ChargeSource tells where the charges of a trade come from.
type ChargeSource int

const (
	// ChargesEstimated charges are computed from the rate table.
	ChargesEstimated ChargeSource = iota
	// ChargesExplicit charges were given per unit in the trade log.
	ChargesExplicit
)

func (s ChargeSource) String() string {
	switch s {
	case ChargesEstimated:
		return "estimated"
	case ChargesExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// DefaultOrderType is the product tag of trades that do not name one.
const DefaultOrderType = "MTF"

// DefaultExchange is the exchange of trades that do not name one.
const DefaultExchange = "NSE"

// Number is a loosely typed numeric field: it accepts both JSON numbers and
// strings, and keeps the text untouched until normalization.
type Number string

// UnmarshalJSON accepts a JSON string or a JSON number.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(b)
	return nil
}

// RawTrade is a trade record as produced by trade log parsers. Fields are
// kept as text; Expenses is nil when the log does not give per-unit costs.
type RawTrade struct {
	Date      string           `json:"date"`
	Symbol    string           `json:"symbol"`
	Side      string           `json:"side"`
	Qty       Number           `json:"qty"`
	Price     Number           `json:"price"`
	Expenses  *decimal.Decimal `json:"expenses,omitempty"`
	OrderType string           `json:"orderType,omitempty"`
	Exchange  string           `json:"exchange,omitempty"`
}

// Trade is a normalized trade.
type Trade struct {
	Date      date.Date
	Symbol    string
	Side      Side
	Quantity  Quantity
	Price     Money
	Expenses  Money // per unit, only meaningful for ChargesExplicit
	Charges   ChargeSource
	OrderType string
	Exchange  string

	RawDate      string // date as found in the trade log
	DateFallback bool   // RawDate could not be parsed and Date is the normalizer's Now
}

// Normalizer turns raw trade records into trades.
type Normalizer struct {
	// Now replaces dates that cannot be parsed.
	Now date.Date
	// Currency of prices and expenses.
	Currency string
}

// Normalize converts raw into a Trade. It never fails: unparseable numbers
// become zero and unparseable dates become n.Now.
func (n Normalizer) Normalize(raw RawTrade) Trade {
	t := Trade{
		Symbol:    strings.ToUpper(strings.TrimSpace(raw.Symbol)),
		Side:      ParseSide(raw.Side),
		Quantity:  Quantity{value: ParseNumber(string(raw.Qty)).Abs()},
		Price:     Money{value: ParseNumber(string(raw.Price)), cur: n.Currency},
		OrderType: strings.ToUpper(strings.TrimSpace(raw.OrderType)),
		Exchange:  strings.ToUpper(strings.TrimSpace(raw.Exchange)),
		RawDate:   raw.Date,
	}
	if t.OrderType == "" {
		t.OrderType = DefaultOrderType
	}
	if t.Exchange == "" {
		t.Exchange = DefaultExchange
	}
	if raw.Expenses != nil {
		t.Charges = ChargesExplicit
		t.Expenses = Money{value: *raw.Expenses, cur: n.Currency}
	} else {
		t.Expenses = Money{cur: n.Currency}
	}

	on, err := date.ParseTradeDate(raw.Date)
	if err != nil {
		on, t.DateFallback = n.Now, true
	}
	t.Date = on
	return t
}

// ParseSide reads B or BUY (any case) as Buy and everything else as Sell.
func ParseSide(s string) Side {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "BUY":
		return Buy
	default:
		return Sell
	}
}

// numberCleaner removes grouping separators and blanks from numeric text.
var numberCleaner = strings.NewReplacer(",", "", " ", "", "\u00a0", "", "_", "")

// ParseNumber parses numeric text such as "1,363.40", returning zero when it cannot.
func ParseNumber(s string) decimal.Decimal {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
