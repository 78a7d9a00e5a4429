package crowdfund

import (
	"fmt"
	"iter"

	"github.com/aldawood/crowdfund/date"
)

// DefaultCurrency is the reporting currency used when a project does not
// declare one.
const DefaultCurrency = "SAR"

// Project is the single source of truth for a crowdfunding project's
// financial state: partners, expenses, sales, and the payments that settle
// expenses. Entities are append-only; all derived metrics are computed by a
// full re-scan of the collections on every query.
//
// A Project is built once per process run and then only read. It is not safe
// for concurrent use: if that ever changes, the add operations need a
// single-writer lock while the query methods can share a snapshot.
type Project struct {
	Name  string
	Start date.Date
	End   date.Date

	currency string
	partners []*Partner
	expenses []*Expense
	sales    []*Sale
	payments []*Payment
}

// NewProject creates an empty project ledger reporting in DefaultCurrency.
func NewProject(name string, start, end date.Date) *Project {
	return &Project{
		Name:     name,
		Start:    start,
		End:      end,
		currency: DefaultCurrency,
	}
}

// SetCurrency overrides the reporting currency. Call it before adding
// entities so that every amount carries the same currency.
func (p *Project) SetCurrency(currency string) {
	if currency != "" {
		p.currency = currency
	}
}

// Currency returns the project's reporting currency code.
func (p *Project) Currency() string { return p.currency }

// Amount creates a Money in the project's currency.
func (p *Project) Amount(value float64) Money { return M(value, p.currency) }

// AddPartner appends a new partner and returns it. A zero investment is
// legal (a partner can be declared before funding). The ledger does not check
// name uniqueness on direct calls; the config loader does when building from
// a file.
func (p *Project) AddPartner(name string, investment Money) *Partner {
	partner := &Partner{Name: name, Investment: investment}
	p.partners = append(p.partners, partner)
	return partner
}

// AddExpense appends a new expense and returns it.
func (p *Project) AddExpense(description string, amount Money, day date.Date) *Expense {
	expense := &Expense{Description: description, Amount: amount, Date: day}
	p.expenses = append(p.expenses, expense)
	return expense
}

// AddSale appends a new sale and returns it.
func (p *Project) AddSale(amount Money, day date.Date, description string) *Sale {
	sale := &Sale{Description: description, Amount: amount, Date: day}
	p.sales = append(p.sales, sale)
	return sale
}

// AddPayment validates and appends a new payment.
//
// A payment is funded either by a partner or by sale proceeds (fromSales),
// never both and never neither, and its amount must be strictly positive.
// When the payment settles an expense, the sum of all payments on that
// expense must not exceed the expense's original amount; the cap is shared by
// every funding source. On any violation the error wraps ErrValidation and
// the ledger is left unchanged.
func (p *Project) AddPayment(amount Money, day date.Date, partner *Partner, expense *Expense, fromSales bool) (*Payment, error) {
	if fromSales && partner != nil {
		return nil, fmt.Errorf("%w: payment from sales cannot have an associated partner", ErrValidation)
	}
	if !fromSales && partner == nil {
		return nil, fmt.Errorf("%w: payment not from sales must have an associated partner", ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", ErrValidation, amount)
	}
	if expense != nil {
		paid := p.PaidOn(expense)
		if paid.Add(amount).GreaterThan(expense.Amount) {
			return nil, &OverpaymentError{
				Description: expense.Description,
				Total:       expense.Amount,
				Paid:        paid,
				Attempted:   amount,
			}
		}
	}

	payment := &Payment{Amount: amount, Date: day, Partner: partner, Expense: expense, FromSales: fromSales}
	p.payments = append(p.payments, payment)
	return payment, nil
}

// PaidOn returns the sum of all payments settling the given expense,
// regardless of funding source.
func (p *Project) PaidOn(expense *Expense) Money {
	paid := M(0, p.currency)
	for _, payment := range p.payments {
		if payment.Expense == expense {
			paid = paid.Add(payment.Amount)
		}
	}
	return paid
}

// TotalExpenses returns the sum of all expense amounts.
func (p *Project) TotalExpenses() Money {
	total := M(0, p.currency)
	for _, expense := range p.expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// TotalPayments returns the sum of all payment amounts, any funding source.
func (p *Project) TotalPayments() Money {
	total := M(0, p.currency)
	for _, payment := range p.payments {
		total = total.Add(payment.Amount)
	}
	return total
}

// TotalInvestments returns the sum of all partner investments.
func (p *Project) TotalInvestments() Money {
	total := M(0, p.currency)
	for _, partner := range p.partners {
		total = total.Add(partner.Investment)
	}
	return total
}

// TargetAmount is the funding target, defined as the total of all expenses.
func (p *Project) TargetAmount() Money { return p.TotalExpenses() }

// GrossSales returns the sum of sale amounts. A non-zero since date restricts
// the sum to sales on or after that day.
func (p *Project) GrossSales(since date.Date) Money {
	total := M(0, p.currency)
	for _, sale := range p.sales {
		if !since.IsZero() && sale.Date.Before(since) {
			continue
		}
		total = total.Add(sale.Amount)
	}
	return total
}

// SalesReinvestments returns the sum of payments funded by sale proceeds,
// optionally restricted to payments on or after since.
func (p *Project) SalesReinvestments(since date.Date) Money {
	total := M(0, p.currency)
	for _, payment := range p.payments {
		if !payment.FromSales {
			continue
		}
		if !since.IsZero() && payment.Date.Before(since) {
			continue
		}
		total = total.Add(payment.Amount)
	}
	return total
}

// NetSales returns gross sales minus sales reinvestments. It can be negative
// when reinvestments exceed gross sales; that is a valid debt state, not an
// error.
func (p *Project) NetSales(since date.Date) Money {
	return p.GrossSales(since).Sub(p.SalesReinvestments(since))
}

// ProjectBalance returns the net sales minus all partner-funded payments.
// Reinvested sale proceeds are already accounted for inside NetSales, so they
// are excluded here to avoid double counting.
func (p *Project) ProjectBalance() Money {
	spent := M(0, p.currency)
	for _, payment := range p.payments {
		if !payment.FromSales {
			spent = spent.Add(payment.Amount)
		}
	}
	return p.NetSales(date.Date{}).Sub(spent)
}

// paymentsBy returns the sum of payments funded by the given partner.
func (p *Project) paymentsBy(partner *Partner) Money {
	total := M(0, p.currency)
	for _, payment := range p.payments {
		if payment.Partner == partner {
			total = total.Add(payment.Amount)
		}
	}
	return total
}

// Ownership is one partner's share of the total investment.
type Ownership struct {
	Partner    *Partner
	Percentage Percent
}

// OwnershipPercentages returns each partner's share of the total investment,
// in insertion order. When the total investment is zero every known partner
// gets a 0% entry; an empty project yields an empty slice. Both this method
// and PartnerSummaries go through the same computation, so the policy cannot
// diverge between call sites.
func (p *Project) OwnershipPercentages() []Ownership {
	total := p.TotalInvestments()
	shares := make([]Ownership, 0, len(p.partners))
	for _, partner := range p.partners {
		shares = append(shares, Ownership{
			Partner:    partner,
			Percentage: partner.Investment.ShareOf(total),
		})
	}
	return shares
}

// PartnerCount returns the number of declared partners.
func (p *Project) PartnerCount() int { return len(p.partners) }

// ExpenseCount returns the number of declared expenses.
func (p *Project) ExpenseCount() int { return len(p.expenses) }

// SaleCount returns the number of recorded sales.
func (p *Project) SaleCount() int { return len(p.sales) }

// PaymentCount returns the number of recorded payments.
func (p *Project) PaymentCount() int { return len(p.payments) }

// FindPartner returns the first partner with the given name, or nil.
func (p *Project) FindPartner(name string) *Partner {
	for _, partner := range p.partners {
		if partner.Name == name {
			return partner
		}
	}
	return nil
}

// FindExpense returns the first expense with the given description, or nil.
func (p *Project) FindExpense(description string) *Expense {
	for _, expense := range p.expenses {
		if expense.Description == description {
			return expense
		}
	}
	return nil
}

// Partners iterates over partners in insertion order.
func (p *Project) Partners() iter.Seq[*Partner] {
	return func(yield func(*Partner) bool) {
		for _, partner := range p.partners {
			if !yield(partner) {
				return
			}
		}
	}
}

// Expenses iterates over expenses in insertion order.
func (p *Project) Expenses() iter.Seq[*Expense] {
	return func(yield func(*Expense) bool) {
		for _, expense := range p.expenses {
			if !yield(expense) {
				return
			}
		}
	}
}

// Sales iterates over sales in insertion order.
func (p *Project) Sales() iter.Seq[*Sale] {
	return func(yield func(*Sale) bool) {
		for _, sale := range p.sales {
			if !yield(sale) {
				return
			}
		}
	}
}

// Payments iterates over payments in insertion order.
func (p *Project) Payments() iter.Seq[*Payment] {
	return func(yield func(*Payment) bool) {
		for _, payment := range p.payments {
			if !yield(payment) {
				return
			}
		}
	}
}
