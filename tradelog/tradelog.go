// Package tradelog reads the trade logs pasted from broker back offices or
// exported by spreadsheets, and turns them into raw trade records.
//
// Four formats are recognized, see [Detect]. Parsers are lenient: lines that
// cannot be read are skipped, and field values are kept as text so that
// [mtf.Normalizer] decides how to interpret them.
package tradelog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/mtf"
)

// ErrNoTrades is returned when an input holds no trade at all.
var ErrNoTrades = errors.New("no trades found")

// Format identifies a trade log layout.
type Format int

const (
	// FormatAuto asks Parse to detect the format.
	FormatAuto Format = iota
	// FormatJSON is a JSON array of records, or one JSON record per line.
	FormatJSON
	// FormatLedger is the tab separated contract note ledger, one trade per
	// line starting with the exchange.
	FormatLedger
	// FormatDelimited is a comma or tab separated table with a header row.
	FormatDelimited
	// FormatBlocks is the vertical layout where each field of a trade is on
	// its own line, blocks starting with the exchange.
	FormatBlocks
)

var formatNames = map[Format]string{
	FormatAuto:      "auto",
	FormatJSON:      "json",
	FormatLedger:    "ledger",
	FormatDelimited: "csv",
	FormatBlocks:    "blocks",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatAuto, fmt.Errorf("unknown trade log format %q, want one of auto, json, ledger, csv or blocks", s)
}

// Detect guesses the format of input.
//
// JSON comes first when the input starts with '[' or '{'. Then the ledger
// when the first line starts with NSE or BSE and holds a tab. Then a
// delimited table when the input holds a tab or a comma. Anything else is
// read as vertical blocks.
func Detect(input string) Format {
	s := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{"):
		return FormatJSON
	case isExchange(firstLine(s)) && strings.Contains(firstLine(s), "\t"):
		return FormatLedger
	case strings.ContainsAny(s, "\t,"):
		return FormatDelimited
	default:
		return FormatBlocks
	}
}

// Parse detects the format of input and reads its trades.
//
// A delimited input without any usable row is read again as vertical blocks,
// since blocks copied from a web page often carry commas in their prices.
func Parse(input string) ([]mtf.RawTrade, Format, error) {
	return ParseAs(input, FormatAuto)
}

// ParseAs reads the trades of input in format f, detecting it if f is FormatAuto.
func ParseAs(input string, f Format) ([]mtf.RawTrade, Format, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, f, ErrNoTrades
	}
	detected := f == FormatAuto
	if detected {
		f = Detect(input)
	}

	var trades []mtf.RawTrade
	var err error
	switch f {
	case FormatJSON:
		trades, err = parseJSON(input)
	case FormatLedger:
		trades = parseLedger(input)
	case FormatDelimited:
		trades, err = parseDelimited(input)
		if detected && err == nil && len(trades) == 0 {
			f = FormatBlocks
			trades = parseBlocks(input)
		}
	case FormatBlocks:
		trades = parseBlocks(input)
	default:
		return nil, f, fmt.Errorf("unsupported trade log format %v", f)
	}
	if err != nil {
		return nil, f, fmt.Errorf("reading %v trade log: %w", f, err)
	}
	if len(trades) == 0 {
		return nil, f, fmt.Errorf("%w in %v trade log", ErrNoTrades, f)
	}
	return trades, f, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// isExchange reports whether line starts with an exchange code.
func isExchange(line string) bool {
	return strings.HasPrefix(line, "NSE") || strings.HasPrefix(line, "BSE")
}

// lines splits s into trimmed, non blank lines.
func lines(s string) []string {
	var res []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}
	return res
}
