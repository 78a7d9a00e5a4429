package crowdfund

import (
	"errors"
	"testing"

	"github.com/aldawood/crowdfund/date"
)

func sar(v float64) Money { return M(v, "SAR") }

// newTestProject builds a small project with two partners, two expenses and no
// payments, used as the starting point of most scenarios.
func newTestProject(t *testing.T) *Project {
	t.Helper()
	p := NewProject("Ghadeer Land", date.New(2024, 1, 1), date.New(2025, 12, 31))
	p.AddPartner("Ahmed", sar(600_000))
	p.AddPartner("Fahad", sar(400_000))
	p.AddExpense("Land purchase", sar(800_000), date.New(2024, 2, 1))
	p.AddExpense("Permits", sar(50_000), date.New(2024, 3, 1))
	return p
}

func TestProjectTotals(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")
	land := p.FindExpense("Land purchase")

	if _, err := p.AddPayment(sar(500_000), date.New(2024, 2, 5), ahmed, land, false); err != nil {
		t.Fatal(err)
	}

	if got, want := p.TotalInvestments(), sar(1_000_000); !got.Equal(want) {
		t.Errorf("TotalInvestments() = %s, want %s", got, want)
	}
	if got, want := p.TotalExpenses(), sar(850_000); !got.Equal(want) {
		t.Errorf("TotalExpenses() = %s, want %s", got, want)
	}
	if got, want := p.TargetAmount(), sar(850_000); !got.Equal(want) {
		t.Errorf("TargetAmount() = %s, want %s", got, want)
	}
	if got, want := p.TotalPayments(), sar(500_000); !got.Equal(want) {
		t.Errorf("TotalPayments() = %s, want %s", got, want)
	}
	if got, want := p.PaidOn(land), sar(500_000); !got.Equal(want) {
		t.Errorf("PaidOn(land) = %s, want %s", got, want)
	}
}

func TestOwnershipPercentages(t *testing.T) {
	p := newTestProject(t)

	shares := p.OwnershipPercentages()
	if len(shares) != 2 {
		t.Fatalf("got %d ownership entries, want 2", len(shares))
	}
	if got := shares[0].Percentage; !got.Equal(60) {
		t.Errorf("Ahmed ownership = %s, want 60%%", got)
	}
	if got := shares[1].Percentage; !got.Equal(40) {
		t.Errorf("Fahad ownership = %s, want 40%%", got)
	}
}

func TestOwnershipZeroInvestment(t *testing.T) {
	p := NewProject("empty", date.New(2024, 1, 1), date.New(2025, 1, 1))
	p.AddPartner("Ahmed", sar(0))
	p.AddPartner("Fahad", sar(0))

	shares := p.OwnershipPercentages()
	if len(shares) != 2 {
		t.Fatalf("got %d ownership entries, want 2 zero entries", len(shares))
	}
	for _, s := range shares {
		if !s.Percentage.Equal(0) {
			t.Errorf("%s ownership = %s, want 0%%", s.Partner.Name, s.Percentage)
		}
	}
}

func TestAddPaymentFundingSource(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")
	land := p.FindExpense("Land purchase")

	tests := []struct {
		name      string
		partner   *Partner
		fromSales bool
		wantErr   bool
	}{
		{"partner funded", ahmed, false, false},
		{"sales funded", nil, true, false},
		{"both sources", ahmed, true, true},
		{"no source", nil, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.AddPayment(sar(1000), date.New(2024, 4, 1), tc.partner, land, tc.fromSales)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Fatalf("AddPayment() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v does not match ErrValidation", err)
			}
		})
	}
}

func TestAddPaymentRejectsNonPositive(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")

	for _, amount := range []Money{sar(0), sar(-10)} {
		if _, err := p.AddPayment(amount, date.New(2024, 4, 1), ahmed, nil, false); !errors.Is(err, ErrValidation) {
			t.Errorf("AddPayment(%s) error = %v, want ErrValidation", amount, err)
		}
	}
	if n := p.PaymentCount(); n != 0 {
		t.Errorf("rejected payments must not be recorded, got %d payments", n)
	}
}

func TestAddPaymentOverpayment(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")
	fahad := p.FindPartner("Fahad")
	land := p.FindExpense("Land purchase") // 800,000

	if _, err := p.AddPayment(sar(500_000), date.New(2024, 2, 5), ahmed, land, false); err != nil {
		t.Fatal(err)
	}

	// The cap is shared across funding sources: Fahad's payment counts
	// against the same headroom as Ahmed's.
	if _, err := p.AddPayment(sar(300_000.01), date.New(2024, 2, 6), fahad, land, false); err == nil {
		t.Fatal("one cent over the remaining amount must be rejected")
	} else {
		var over *OverpaymentError
		if !errors.As(err, &over) {
			t.Fatalf("error %v is not an OverpaymentError", err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("OverpaymentError must match ErrValidation")
		}
		if got, want := over.Remaining(), sar(300_000); !got.Equal(want) {
			t.Errorf("Remaining() = %s, want %s", got, want)
		}
	}
	if got, want := p.PaidOn(land), sar(500_000); !got.Equal(want) {
		t.Errorf("rejected payment mutated the ledger: PaidOn = %s, want %s", got, want)
	}

	// Paying the exact remainder succeeds and settles the expense.
	if _, err := p.AddPayment(sar(300_000), date.New(2024, 2, 7), fahad, land, false); err != nil {
		t.Fatalf("exact remainder payment rejected: %v", err)
	}
	if got := StatusOf(p.PaidOn(land), land.Amount); got != FullyPaid {
		t.Errorf("status = %s, want Fully Paid", got)
	}

	// A settled expense accepts nothing more.
	if _, err := p.AddPayment(sar(0.01), date.New(2024, 2, 8), ahmed, land, false); !errors.Is(err, ErrValidation) {
		t.Errorf("payment on a settled expense: error = %v, want ErrValidation", err)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name        string
		paid, total Money
		want        PaymentStatus
	}{
		{"nothing paid", sar(0), sar(100), Unpaid},
		{"partially paid", sar(40), sar(100), PartiallyPaid},
		{"fully paid", sar(100), sar(100), FullyPaid},
		{"zero amount expense", sar(0), sar(0), FullyPaid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOf(tc.paid, tc.total); got != tc.want {
				t.Errorf("StatusOf(%s, %s) = %s, want %s", tc.paid, tc.total, got, tc.want)
			}
		})
	}
}

func TestSalesAccounting(t *testing.T) {
	p := newTestProject(t)
	land := p.FindExpense("Land purchase")

	p.AddSale(sar(200_000), date.New(2024, 6, 1), "Unit A")
	p.AddSale(sar(150_000), date.New(2024, 9, 1), "Unit B")
	if _, err := p.AddPayment(sar(120_000), date.New(2024, 7, 1), nil, land, true); err != nil {
		t.Fatal(err)
	}

	if got, want := p.GrossSales(date.Date{}), sar(350_000); !got.Equal(want) {
		t.Errorf("GrossSales() = %s, want %s", got, want)
	}
	if got, want := p.SalesReinvestments(date.Date{}), sar(120_000); !got.Equal(want) {
		t.Errorf("SalesReinvestments() = %s, want %s", got, want)
	}
	if got, want := p.NetSales(date.Date{}), sar(230_000); !got.Equal(want) {
		t.Errorf("NetSales() = %s, want %s", got, want)
	}

	// Since-restricted: only Unit B, and the reinvestment predates the cut.
	since := date.New(2024, 8, 1)
	if got, want := p.GrossSales(since), sar(150_000); !got.Equal(want) {
		t.Errorf("GrossSales(since) = %s, want %s", got, want)
	}
	if got, want := p.NetSales(since), sar(150_000); !got.Equal(want) {
		t.Errorf("NetSales(since) = %s, want %s", got, want)
	}
}

func TestNetSalesCanBeNegative(t *testing.T) {
	p := newTestProject(t)
	land := p.FindExpense("Land purchase")

	p.AddSale(sar(100_000), date.New(2024, 6, 1), "Unit A")
	if _, err := p.AddPayment(sar(150_000), date.New(2024, 7, 1), nil, land, true); err != nil {
		t.Fatal(err)
	}

	if got, want := p.NetSales(date.Date{}), sar(-50_000); !got.Equal(want) {
		t.Errorf("NetSales() = %s, want %s", got, want)
	}
}

func TestProjectBalance(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")
	land := p.FindExpense("Land purchase")

	p.AddSale(sar(300_000), date.New(2024, 6, 1), "Unit A")
	if _, err := p.AddPayment(sar(100_000), date.New(2024, 7, 1), nil, land, true); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddPayment(sar(250_000), date.New(2024, 7, 2), ahmed, land, false); err != nil {
		t.Fatal(err)
	}

	// Balance = net sales (300k gross - 100k reinvested) minus the 250k of
	// partner-funded payments. Reinvestments are not double counted.
	if got, want := p.ProjectBalance(), sar(-50_000); !got.Equal(want) {
		t.Errorf("ProjectBalance() = %s, want %s", got, want)
	}
}

func TestEmptyProject(t *testing.T) {
	p := NewProject("empty", date.New(2024, 1, 1), date.New(2025, 1, 1))

	if got := p.TotalInvestments(); !got.IsZero() {
		t.Errorf("TotalInvestments() = %s, want zero", got)
	}
	if got := p.ProjectBalance(); !got.IsZero() {
		t.Errorf("ProjectBalance() = %s, want zero", got)
	}
	if got := p.OwnershipPercentages(); len(got) != 0 {
		t.Errorf("OwnershipPercentages() = %v, want empty", got)
	}
	if got := p.Summary(); !got.Target.IsZero() || !got.Balance.IsZero() {
		t.Errorf("Summary() of empty project has non-zero totals: %+v", got)
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	p := newTestProject(t)
	ahmed := p.FindPartner("Ahmed")
	land := p.FindExpense("Land purchase")
	if _, err := p.AddPayment(sar(500_000), date.New(2024, 2, 5), ahmed, land, false); err != nil {
		t.Fatal(err)
	}

	first := p.Summary()
	for i := 0; i < 3; i++ {
		again := p.Summary()
		if !again.Balance.Equal(first.Balance) ||
			!again.TotalPayments.Equal(first.TotalPayments) ||
			!again.RemainingExpenses.Equal(first.RemainingExpenses) {
			t.Fatalf("Summary() changed between calls: %+v != %+v", again, first)
		}
	}
}
