package renderer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/mtf"
)

// Sort keys.
const (
	BySymbol   = "symbol"
	ByInterest = "interest"
	ByDays     = "days"
	ByPnL      = "pnl"
)

// OpenKeys and ClosedKeys are the sort keys available to each table.
var (
	OpenKeys   = []string{BySymbol, ByInterest, ByDays}
	ClosedKeys = []string{BySymbol, ByInterest, ByPnL}
)

// Sort is a table ordering.
type Sort struct {
	Key  string
	Desc bool
}

func (s Sort) String() string {
	if s.Desc {
		return s.Key + ":desc"
	}
	return s.Key + ":asc"
}

// ParseSort reads orderings like "interest", "days:desc" or "pnl:asc". An
// empty string sorts by symbol. When keys is not empty, the key must be one
// of them.
func ParseSort(s string, keys ...string) (Sort, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Sort{Key: BySymbol}, nil
	}
	key, dir, _ := strings.Cut(s, ":")
	res := Sort{Key: key}
	switch dir {
	case "", "asc":
	case "desc":
		res.Desc = true
	default:
		return Sort{}, fmt.Errorf("invalid sort direction %q in %q, want asc or desc", dir, s)
	}
	if len(keys) > 0 && !slices.Contains(keys, key) {
		return Sort{}, fmt.Errorf("invalid sort key %q, want one of %s", key, strings.Join(keys, ", "))
	}
	return res, nil
}

// SortOpen orders ps in place by symbol, interest or days held. Unknown keys
// order by symbol.
func SortOpen(ps []mtf.Position, s Sort) {
	by := func(a, b mtf.Position) int {
		switch s.Key {
		case ByInterest:
			return a.Interest.Decimal().Cmp(b.Interest.Decimal())
		case ByDays:
			return cmp.Compare(a.DaysHeld, b.DaysHeld)
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	}
	slices.SortStableFunc(ps, func(a, b mtf.Position) int {
		return ordered(by(a, b), a.Symbol, b.Symbol, s.Desc)
	})
}

// SortClosed orders cs in place by symbol, interest or net profit. Unknown
// keys order by symbol.
func SortClosed(cs []mtf.ClosedPosition, s Sort) {
	by := func(a, b mtf.ClosedPosition) int {
		switch s.Key {
		case ByInterest:
			return a.Interest.Decimal().Cmp(b.Interest.Decimal())
		case ByPnL:
			return a.NetPnL.Decimal().Cmp(b.NetPnL.Decimal())
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	}
	slices.SortStableFunc(cs, func(a, b mtf.ClosedPosition) int {
		return ordered(by(a, b), a.Symbol, b.Symbol, s.Desc)
	})
}

// ordered applies the direction to the primary comparison c. Ties are
// always broken by ascending symbol.
func ordered(c int, symA, symB string, desc bool) int {
	if c == 0 {
		return cmp.Compare(symA, symB)
	}
	if desc {
		return -c
	}
	return c
}
