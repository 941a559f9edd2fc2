package tradelog

import (
	"regexp"
	"strings"

	"github.com/etnz/mtf"
	"github.com/shopspring/decimal"
)

// contract note fields, in the order of both the ledger columns and the
// vertical block lines.
const (
	colExchange = iota
	colDate
	colSymbol
	colType
	colSide
	colQty
	colPrice
	colUnused
	colNetRate
	minContractFields = colPrice + 1
)

var tabs = regexp.MustCompile(`\t+`)

// parseLedger reads one trade per line starting with NSE or BSE. Other lines
// are ignored.
func parseLedger(input string) []mtf.RawTrade {
	var trades []mtf.RawTrade
	for _, line := range lines(input) {
		if !isExchange(line) {
			continue
		}
		if t, ok := contractTrade(tabs.Split(line, -1)); ok {
			trades = append(trades, t)
		}
	}
	return trades
}

// parseBlocks reads trades laid out one field per line. A block starts on a
// line that is exactly NSE or BSE.
func parseBlocks(input string) []mtf.RawTrade {
	ls := lines(input)
	var trades []mtf.RawTrade
	for i := 0; i < len(ls); {
		if ls[i] != "NSE" && ls[i] != "BSE" || i+minContractFields > len(ls) {
			i++
			continue
		}
		end := min(i+colNetRate+1, len(ls))
		t, ok := contractTrade(ls[i:end])
		if !ok {
			i++
			continue
		}
		trades = append(trades, t)
		i += minContractFields
	}
	return trades
}

// contractTrade builds a trade from contract note fields. It fails when the
// quantity or the price is not a number.
//
// The net rate, when present, is the per unit price after charges: the
// difference with the trade price gives the per unit expenses.
func contractTrade(fields []string) (mtf.RawTrade, bool) {
	if len(fields) < minContractFields {
		return mtf.RawTrade{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if _, ok := number(fields[colQty]); !ok {
		return mtf.RawTrade{}, false
	}
	price, ok := number(fields[colPrice])
	if !ok {
		return mtf.RawTrade{}, false
	}

	buy := strings.EqualFold(fields[colSide], "B")
	t := mtf.RawTrade{
		Date:      fields[colDate],
		Symbol:    fields[colSymbol],
		Side:      string(mtf.Sell),
		Qty:       mtf.Number(fields[colQty]),
		Price:     mtf.Number(fields[colPrice]),
		OrderType: "MIS",
		Exchange:  fields[colExchange],
	}
	if buy {
		t.Side = string(mtf.Buy)
	}
	if strings.EqualFold(fields[colType], "D") {
		t.OrderType = mtf.DefaultOrderType
	}
	if len(fields) > colNetRate {
		if net, ok := number(fields[colNetRate]); ok {
			diff := net.Sub(price)
			if !buy {
				diff = diff.Neg()
			}
			expenses := decimal.Max(decimal.Zero, diff)
			t.Expenses = &expenses
		}
	}
	return t, true
}

// number parses numeric text the way the normalizer does, but reports failures.
func number(s string) (decimal.Decimal, bool) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, false
	}
	d := mtf.ParseNumber(s)
	if d.IsZero() && !isZero(s) {
		return d, false
	}
	return d, true
}

// isZero reports whether s spells a zero, like "0" or "0.00".
func isZero(s string) bool {
	s = strings.Trim(strings.TrimSpace(s), "+-")
	return s != "" && strings.Trim(s, "0.,") == ""
}
