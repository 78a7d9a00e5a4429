// Package renderer turns project summaries into markdown reports.
//
// Every function is a pure producer: it takes the summary records computed by
// the crowdfund package and a clock where relative dates are shown, and
// returns a markdown string. Nothing here reads the wall clock, so rendering
// is deterministic under test.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/aldawood/crowdfund"
	"github.com/aldawood/crowdfund/date"
)

// ProjectMarkdown renders the project overview card.
func ProjectMarkdown(s *crowdfund.ProjectSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("🏗️ Project: %s", s.Name))
	doc.PlainText(fmt.Sprintf("%s → %s, reporting in %s", s.Start, s.End, s.Currency))

	doc.H2("Financial Position")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Target (total expenses)", s.Target.String()},
			{"Total investments", s.TotalInvestments.String()},
			{"Total payments", s.TotalPayments.String()},
			{"Remaining expenses", s.RemainingExpenses.String()},
			{"Gross sales", s.GrossSales.String()},
			{"Reinvested from sales", s.Reinvested.String()},
			{"Net sales", s.NetSales.String()},
			{"Project balance", s.Balance.String()},
		},
	})

	return doc.String()
}

// PartnersMarkdown renders the partners report: investment, ownership,
// payments, balance, and net-sales share per partner.
func PartnersMarkdown(partners []crowdfund.PartnerSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("🤝 Partners Summary")
	if len(partners) == 0 {
		doc.PlainText("No partners declared.")
		return doc.String()
	}

	rows := make([][]string, 0, len(partners))
	for _, p := range partners {
		rows = append(rows, []string{
			p.Name,
			p.Investment.String(),
			p.Ownership.String(),
			p.Payments.String(),
			p.Balance.String(),
			p.NetSalesShare.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Partner", "Investment", "Ownership", "Payments", "Balance", "Net Sales Share"},
		Rows:   rows,
	})

	return doc.String()
}

// ExpensesMarkdown renders the expenses report with payment status glyphs.
func ExpensesMarkdown(expenses []crowdfund.ExpenseSummary, now date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("💸 Expenses Summary")
	if len(expenses) == 0 {
		doc.PlainText("No expenses declared.")
		return doc.String()
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Description,
			fmt.Sprintf("%s (%s)", e.Date, RelativeDate(e.Date, now)),
			e.Total.String(),
			e.Paid.String(),
			e.Remaining.String(),
			fmt.Sprintf("%s %s", statusGlyph(e.Status), e.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Expense", "Date", "Total", "Paid", "Remaining", "Status"},
		Rows:   rows,
	})

	return doc.String()
}

// PaymentsMarkdown renders the payments report in insertion order.
func PaymentsMarkdown(payments []crowdfund.PaymentSummary, now date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("💰 Payments Summary")
	if len(payments) == 0 {
		doc.PlainText("No payments recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		expense := p.Expense
		share := p.Share.String()
		if expense == "" {
			expense = "-"
			share = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", p.Seq),
			fmt.Sprintf("%s (%s)", p.Date, RelativeDate(p.Date, now)),
			p.Source,
			p.Amount.String(),
			expense,
			share,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Payment", "Date", "Source", "Amount", "Expense", "Of Expense"},
		Rows:   rows,
	})

	return doc.String()
}

// SalesTotals carries the sales accounting figures shown under the sales
// table, possibly restricted to a period.
type SalesTotals struct {
	Since      date.Date // zero when unrestricted
	Gross      crowdfund.Money
	Reinvested crowdfund.Money
	Net        crowdfund.Money
}

// SalesMarkdown renders the sales report and its accounting totals.
func SalesMarkdown(sales []crowdfund.SaleSummary, totals SalesTotals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("🏠 Sales Summary")
	if len(sales) == 0 {
		doc.PlainText("No sales recorded.")
	} else {
		rows := make([][]string, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, []string{s.Description, s.Date.String(), s.Total.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Sale", "Date", "Amount"},
			Rows:   rows,
		})
	}

	if totals.Since.IsZero() {
		doc.H2("Sales Accounting")
	} else {
		doc.H2(fmt.Sprintf("Sales Accounting since %s", totals.Since))
	}
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Gross sales", totals.Gross.String()},
			{"Reinvested", totals.Reinvested.String()},
			{"Net sales", totals.Net.String()},
		},
	})

	return doc.String()
}

func statusGlyph(s crowdfund.PaymentStatus) string {
	switch s {
	case crowdfund.FullyPaid:
		return "✅"
	case crowdfund.PartiallyPaid:
		return "🟡"
	default:
		return "🔴"
	}
}
