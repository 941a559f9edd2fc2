package mtf

import (
	"errors"
	"fmt"

	"github.com/etnz/mtf/date"
	"github.com/shopspring/decimal"
)

// Config holds everything a processing pass depends on besides the trades.
type Config struct {
	Rates RateTable
	// FundedRatio is the fraction of each purchase debit that is financed.
	FundedRatio decimal.Decimal
	// InterestDelay is the number of days subtracted from the holding period of open lots.
	InterestDelay int
	// CustomTarget is always part of the computed target percentages.
	CustomTarget Percent
	// AsOf is the date open lots accrue interest until.
	AsOf date.Date
	// Currency of the trade log prices.
	Currency string
}

// DefaultConfig returns a fully funded configuration with no interest delay
// and a 10% custom target, accruing interest until asOf.
func DefaultConfig(asOf date.Date) Config {
	return Config{
		Rates:        DefaultRates(),
		FundedRatio:  decimal.NewFromInt(1),
		CustomTarget: 10,
		AsOf:         asOf,
		Currency:     DefaultCurrency,
	}
}

// Validate reports configuration values that cannot be processed.
func (c Config) Validate() error {
	var errs []error
	if c.FundedRatio.IsNegative() || c.FundedRatio.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("funded ratio %v is outside [0, 1]", c.FundedRatio))
	}
	if c.InterestDelay < 0 {
		errs = append(errs, fmt.Errorf("interest delay %d is negative", c.InterestDelay))
	}
	if c.CustomTarget < 0 {
		errs = append(errs, fmt.Errorf("custom target %v is negative", c.CustomTarget))
	}
	if !c.Rates.SellBuffer.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("sell buffer %v must be lower than 1", c.Rates.SellBuffer))
	}
	if c.AsOf.IsZero() {
		errs = append(errs, errors.New("as-of date is not set"))
	}
	return errors.Join(errs...)
}

// TargetPercents returns the standard target percentages and the custom one, de-duplicated and sorted.
func (c Config) TargetPercents() []Percent {
	return PercentSet(c.Rates.Targets, []Percent{c.CustomTarget})
}
