package crowdfund

import "github.com/aldawood/crowdfund/date"

// Summary records are ordered slices keyed by entity identity, with the
// display string carried as an attribute. Keying a map by name or description
// would silently collapse duplicate entries into one row.

// PartnerSummary is one partner's line in the partners report.
type PartnerSummary struct {
	Name          string
	Investment    Money
	Ownership     Percent
	Payments      Money // total paid by this partner
	Balance       Money // investment minus payments
	NetSalesShare Money // partner's cut of the net sales pool
}

// ExpenseSummary is one expense's line in the expenses report.
type ExpenseSummary struct {
	Description string
	Date        date.Date
	Total       Money
	Paid        Money
	Remaining   Money
	Status      PaymentStatus
}

// PaymentSummary is one payment's line in the payments report, in insertion
// order and 1-indexed for display.
type PaymentSummary struct {
	Seq       int
	Date      date.Date
	Source    string // partner name, or SalesRevenueLabel
	FromSales bool
	Amount    Money
	Expense   string  // settled expense description, "" if none
	Share     Percent // amount as a share of the expense total, 0 if none
}

// SaleSummary is one sale's line in the sales report.
type SaleSummary struct {
	Description string
	Date        date.Date
	Total       Money
}

// ProjectSummary is the at-a-glance overview of the whole project.
type ProjectSummary struct {
	Name              string
	Currency          string
	Start             date.Date
	End               date.Date
	Target            Money // total expenses
	TotalInvestments  Money
	TotalExpenses     Money
	TotalPayments     Money
	GrossSales        Money
	Reinvested        Money
	NetSales          Money
	Balance           Money
	RemainingExpenses Money
}

// PartnerSummaries reports every partner's investment, ownership share,
// payments, outstanding balance, and cut of the net sales pool.
func (p *Project) PartnerSummaries() []PartnerSummary {
	netSales := p.NetSales(date.Date{})
	summaries := make([]PartnerSummary, 0, len(p.partners))
	for _, share := range p.OwnershipPercentages() {
		partner := share.Partner
		paid := p.paymentsBy(partner)
		summaries = append(summaries, PartnerSummary{
			Name:          partner.Name,
			Investment:    partner.Investment,
			Ownership:     share.Percentage,
			Payments:      paid,
			Balance:       partner.Investment.Sub(paid),
			NetSalesShare: netSales.Portion(share.Percentage),
		})
	}
	return summaries
}

// ExpenseSummaries reports every expense with its paid and remaining amounts
// and the derived payment status.
func (p *Project) ExpenseSummaries() []ExpenseSummary {
	summaries := make([]ExpenseSummary, 0, len(p.expenses))
	for _, expense := range p.expenses {
		paid := p.PaidOn(expense)
		summaries = append(summaries, ExpenseSummary{
			Description: expense.Description,
			Date:        expense.Date,
			Total:       expense.Amount,
			Paid:        paid,
			Remaining:   expense.Amount.Sub(paid),
			Status:      StatusOf(paid, expense.Amount),
		})
	}
	return summaries
}

// PaymentSummaries reports every payment in insertion order, 1-indexed.
func (p *Project) PaymentSummaries() []PaymentSummary {
	summaries := make([]PaymentSummary, 0, len(p.payments))
	for i, payment := range p.payments {
		s := PaymentSummary{
			Seq:       i + 1,
			Date:      payment.Date,
			Source:    payment.Source(),
			FromSales: payment.FromSales,
			Amount:    payment.Amount,
		}
		if payment.Expense != nil {
			s.Expense = payment.Expense.Description
			s.Share = payment.Amount.ShareOf(payment.Expense.Amount)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// SaleSummaries reports every sale in insertion order.
func (p *Project) SaleSummaries() []SaleSummary {
	summaries := make([]SaleSummary, 0, len(p.sales))
	for _, sale := range p.sales {
		summaries = append(summaries, SaleSummary{
			Description: sale.Description,
			Date:        sale.Date,
			Total:       sale.Amount,
		})
	}
	return summaries
}

// Summary computes the project overview.
func (p *Project) Summary() *ProjectSummary {
	totalExpenses := p.TotalExpenses()
	totalPayments := p.TotalPayments()
	return &ProjectSummary{
		Name:              p.Name,
		Currency:          p.currency,
		Start:             p.Start,
		End:               p.End,
		Target:            totalExpenses,
		TotalInvestments:  p.TotalInvestments(),
		TotalExpenses:     totalExpenses,
		TotalPayments:     totalPayments,
		GrossSales:        p.GrossSales(date.Date{}),
		Reinvested:        p.SalesReinvestments(date.Date{}),
		NetSales:          p.NetSales(date.Date{}),
		Balance:           p.ProjectBalance(),
		RemainingExpenses: totalExpenses.Sub(totalPayments),
	}
}
