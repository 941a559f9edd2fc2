package mtf

import (
	"github.com/etnz/mtf/date"
	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.NewFromInt(365)

// Accrue returns the simple interest on the financed part of a debit.
//
//	interest = (principal + charges) × fundedRatio × annualRate × days / 365
//
// A negative number of days accrues nothing. The result is not rounded.
func Accrue(principal, charges Money, fundedRatio, annualRate decimal.Decimal, days int) Money {
	if days <= 0 {
		return Money{cur: cur(principal, charges)}
	}
	loan := principal.Add(charges).Scale(fundedRatio)
	return Money{
		value: loan.value.Mul(annualRate).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear),
		cur:   loan.cur,
	}
}

// DaysHeld returns the whole days from acquisition to asOf, minus delay, floored at zero.
func DaysHeld(acquired, asOf date.Date, delay int) int {
	return max(0, asOf.Sub(acquired)-delay)
}
