package mtf

import "github.com/etnz/mtf/date"

// lot is the unsold part of a single buy.
type lot struct {
	Date      date.Date
	RawDate   string
	Quantity  Quantity
	Price     Money
	Charges   Money // charges still allocated to the remaining quantity
	perUnit   Money // Charges / Quantity at creation, never updated
	Source    ChargeSource
	OrderType string
	Exchange  string
}

func newLot(t Trade, charges Money) *lot {
	l := &lot{
		Date:      t.Date,
		RawDate:   t.RawDate,
		Quantity:  t.Quantity,
		Price:     t.Price,
		Charges:   charges,
		perUnit:   Money{cur: charges.cur},
		Source:    t.Charges,
		OrderType: t.OrderType,
		Exchange:  t.Exchange,
	}
	if !t.Quantity.IsZero() {
		l.perUnit = charges.Div(t.Quantity)
	}
	return l
}

// match is the part of a lot consumed by a sell.
type match struct {
	Lot      lot // snapshot taken before consumption
	Quantity Quantity
	Charges  Money // buy charges attributed to Quantity
}

// lots is a FIFO queue of open lots, oldest first.
type lots []*lot

// quantity returns the total open quantity.
func (l lots) quantity() Quantity {
	var q Quantity
	for _, current := range l {
		q = q.Add(current.Quantity)
	}
	return q
}

// sell consumes up to quantityToSell from the oldest lots and returns the
// remaining queue, the matches in consumption order, and the quantity
// that found no lot.
func (l lots) sell(quantityToSell Quantity) (remaining lots, matches []match, unmatched Quantity) {
	for len(l) > 0 && quantityToSell.IsPositive() {
		head := l[0]
		snapshot := *head
		if head.Quantity.LessThanOrEqual(quantityToSell) {
			// Full sale of this lot, all its remaining charges go with it.
			matches = append(matches, match{Lot: snapshot, Quantity: head.Quantity, Charges: head.Charges})
			quantityToSell = quantityToSell.Sub(head.Quantity)
			l = l[1:]
			continue
		}
		// Partial sale from this lot
		charges := head.perUnit.Mul(quantityToSell)
		matches = append(matches, match{Lot: snapshot, Quantity: quantityToSell, Charges: charges})
		head.Quantity = head.Quantity.Sub(quantityToSell)
		head.Charges = head.Charges.Sub(charges)
		quantityToSell = Quantity{}
	}
	return l, matches, quantityToSell
}
