package crowdfund

import "github.com/aldawood/crowdfund/date"

// Partner is an investor who contributes capital and holds a proportional
// share of the project. Partners are append-only: created once by the
// project, never mutated, and referenced by payments through their pointer
// identity. Name is a display attribute, not a key.
type Partner struct {
	Name       string
	Investment Money
}

// Expense is a cost item the project must cover, optionally paid off in
// installments by several payments.
type Expense struct {
	Description string
	Amount      Money
	Date        date.Date
}

// Sale is a revenue event, e.g. the sale of a built unit. Sales feed the
// net-sales pool distributed to partners.
type Sale struct {
	Description string
	Amount      Money
	Date        date.Date
}

// Payment is a money transfer that reduces an expense's outstanding balance.
// It is funded either by a partner or by sale proceeds (a reinvestment),
// never both.
type Payment struct {
	Amount    Money
	Date      date.Date
	Partner   *Partner // nil when FromSales
	Expense   *Expense // nil when not settling a specific expense
	FromSales bool
}

// SalesRevenueLabel is the display label for payments funded by sale proceeds.
const SalesRevenueLabel = "Sales Revenue"

// Source returns the display label of the payment's funding source.
func (p *Payment) Source() string {
	if p.FromSales {
		return SalesRevenueLabel
	}
	return p.Partner.Name
}

// PaymentStatus describes how much of an expense has been settled.
type PaymentStatus int

const (
	// Unpaid means no money has been paid against the expense.
	Unpaid PaymentStatus = iota
	// PartiallyPaid means some, but not all, of the expense is settled.
	PartiallyPaid
	// FullyPaid means the expense is completely settled.
	FullyPaid
)

func (s PaymentStatus) String() string {
	switch s {
	case Unpaid:
		return "Unpaid"
	case PartiallyPaid:
		return "Partially Paid"
	case FullyPaid:
		return "Fully Paid"
	default:
		return "unknown"
	}
}

// StatusOf derives the payment status of an expense from the amount paid so
// far and the expense total. The status is a pure function of the two values
// and is recomputed on every query, never stored.
//
// The remaining==0 check is evaluated first so that a zero-amount expense
// reports FullyPaid, not Unpaid.
func StatusOf(paid, total Money) PaymentStatus {
	remaining := total.Sub(paid)
	switch {
	case remaining.IsZero():
		return FullyPaid
	case paid.IsZero():
		return Unpaid
	default:
		return PartiallyPaid
	}
}
