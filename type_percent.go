package mtf

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a profit percentage, 5 means 5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String returns the shortest representation of the percentage, like "5%" or "7.5%".
func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// decimal returns the percentage as a decimal fraction, 5% is 0.05.
func (p Percent) decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

// PercentSet returns the union of the given percentages, de-duplicated and sorted ascending.
func PercentSet(groups ...[]Percent) []Percent {
	var all []Percent
	for _, g := range groups {
		for _, p := range g {
			if !slices.ContainsFunc(all, p.Equal) {
				all = append(all, p)
			}
		}
	}
	slices.Sort(all)
	return all
}
