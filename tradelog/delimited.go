package tradelog

import (
	"encoding/csv"
	"strings"

	"github.com/etnz/mtf"
)

// column identifies a trade field in a delimited table.
type column int

const (
	columnDate column = iota
	columnSymbol
	columnQty
	columnPrice
	columnSide
	columnOrderType
	columnExchange
	columnExpenses
	numColumns
)

// columnNames lists the header names recognized for each column, most
// specific first.
var columnNames = [numColumns][]string{
	columnDate:      {"date", "trade_date", "order_date", "time"},
	columnSymbol:    {"symbol", "scrip", "stock", "instrument"},
	columnQty:       {"qty", "quantity", "volume"},
	columnPrice:     {"price", "rate", "avg_price", "trade_price"},
	columnSide:      {"side", "buy/sell", "type", "txn_type"},
	columnOrderType: {"order_type", "product", "product_type"},
	columnExchange:  {"exchange", "exch"},
	columnExpenses:  {"expenses"},
}

// minDelimitedFields is the number of fields under which a row is ignored.
const minDelimitedFields = 5

// mapHeader returns the index of each column in header, or -1.
//
// Exact names are matched first, so that "product_type" is not taken for the
// side just because it contains "type". Remaining columns then take the
// first free header containing one of their names.
func mapHeader(header []string) [numColumns]int {
	var idx [numColumns]int
	taken := make([]bool, len(header))
	for c := range idx {
		idx[c] = -1
	}
	for i := range header {
		header[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header[i])), " ", "_")
	}
	match := func(exact bool) {
		for c, names := range columnNames {
			if idx[c] >= 0 {
				continue
			}
		search:
			for i, h := range header {
				if taken[i] {
					continue
				}
				for _, name := range names {
					if h == name || !exact && strings.Contains(h, name) {
						idx[c], taken[i] = i, true
						break search
					}
				}
			}
		}
	}
	match(true)
	match(false)
	return idx
}

// parseDelimited reads a table whose first row is a header. The delimiter is
// a tab if the header holds one, a comma otherwise.
func parseDelimited(input string) ([]mtf.RawTrade, error) {
	r := csv.NewReader(strings.NewReader(input))
	if strings.Contains(firstLine(input), "\t") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1 // rows may be ragged
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	idx := mapHeader(records[0])

	var trades []mtf.RawTrade
	for _, row := range records[1:] {
		if len(row) < minDelimitedFields {
			continue
		}
		get := func(c column, def string) string {
			if i := idx[c]; i >= 0 && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return def
		}
		t := mtf.RawTrade{
			Date:      get(columnDate, ""),
			Symbol:    get(columnSymbol, "UNKNOWN"),
			Side:      get(columnSide, string(mtf.Buy)),
			Qty:       mtf.Number(get(columnQty, "0")),
			Price:     mtf.Number(get(columnPrice, "0")),
			OrderType: get(columnOrderType, mtf.DefaultOrderType),
			Exchange:  get(columnExchange, ""),
		}
		if e, ok := number(get(columnExpenses, "")); ok {
			t.Expenses = &e
		}
		trades = append(trades, t)
	}
	return trades, nil
}
