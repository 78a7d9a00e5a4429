package crowdfund

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aldawood/crowdfund/date"
)

// ErrConfig marks an invalid project file: bad syntax, missing fields, or
// references that do not resolve. Callers match it with errors.Is.
var ErrConfig = errors.New("invalid project file")

// File is the declarative form of a project: the same ledger the API builds,
// described in a YAML document. Amount fields accept a number or an
// addition-only expression string (see EvalAmount).
type File struct {
	Project  ProjectDecl   `yaml:"project"`
	Partners []PartnerDecl `yaml:"partners"`
	Expenses []ExpenseDecl `yaml:"expenses"`
	Sales    []SaleDecl    `yaml:"sales"`
	Payments []PaymentDecl `yaml:"payments"`
}

type ProjectDecl struct {
	Name      string `yaml:"name"`
	Currency  string `yaml:"currency"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type PartnerDecl struct {
	Name             string `yaml:"name"`
	InvestmentAmount any    `yaml:"investment_amount"`
}

type ExpenseDecl struct {
	Description string `yaml:"description"`
	Amount      any    `yaml:"amount"`
	Date        string `yaml:"date"`
}

type SaleDecl struct {
	Description string `yaml:"description"`
	Amount      any    `yaml:"amount"`
	Date        string `yaml:"date"`
}

type PaymentDecl struct {
	Amount    any    `yaml:"amount"`
	Date      string `yaml:"date"`
	Partner   string `yaml:"partner"`
	Expense   string `yaml:"expense"`
	FromSales bool   `yaml:"from_sales"`
}

// ParseFile decodes and validates a project file document.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: bad yaml syntax: %v", ErrConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadProject reads, validates, and builds a project from a YAML file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read project file: %w", err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// Validate checks the declarative document before any entity is built:
// required fields, date formats and ordering, duplicate names, positive
// amounts, and reference integrity of payments. The ledger API itself does
// not re-check uniqueness or references; this is where those rules live.
func (f *File) Validate() error {
	if err := f.validateProject(); err != nil {
		return err
	}
	if err := f.validatePartners(); err != nil {
		return err
	}
	if err := f.validateExpenses(); err != nil {
		return err
	}
	if err := f.validateSales(); err != nil {
		return err
	}
	return f.validatePayments()
}

func (f *File) validateProject() error {
	p := f.Project
	if p.Name == "" {
		return fmt.Errorf("%w: missing required project field: name", ErrConfig)
	}
	if p.StartDate == "" || p.EndDate == "" {
		return fmt.Errorf("%w: project start_date and end_date are required", ErrConfig)
	}
	start, err := date.Parse(p.StartDate)
	if err != nil {
		return fmt.Errorf("%w: project start_date: %v", ErrConfig, err)
	}
	end, err := date.Parse(p.EndDate)
	if err != nil {
		return fmt.Errorf("%w: project end_date: %v", ErrConfig, err)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: project end_date must be after start_date", ErrConfig)
	}
	return nil
}

func (f *File) validatePartners() error {
	if len(f.Partners) == 0 {
		return fmt.Errorf("%w: at least one partner is required", ErrConfig)
	}
	seen := make(map[string]bool)
	for i, partner := range f.Partners {
		if partner.Name == "" {
			return fmt.Errorf("%w: partner %d missing required field: name", ErrConfig, i+1)
		}
		if seen[partner.Name] {
			return fmt.Errorf("%w: duplicate partner name: %s", ErrConfig, partner.Name)
		}
		seen[partner.Name] = true

		amount, err := EvalAmount(partner.InvestmentAmount)
		if err != nil {
			return fmt.Errorf("%w: partner %q investment_amount: %v", ErrConfig, partner.Name, err)
		}
		if amount.Sign() <= 0 {
			return fmt.Errorf("%w: partner %q investment_amount must be positive", ErrConfig, partner.Name)
		}
	}
	return nil
}

func (f *File) validateExpenses() error {
	if len(f.Expenses) == 0 {
		return fmt.Errorf("%w: at least one expense is required", ErrConfig)
	}
	seen := make(map[string]bool)
	for i, expense := range f.Expenses {
		if expense.Description == "" {
			return fmt.Errorf("%w: expense %d missing required field: description", ErrConfig, i+1)
		}
		if seen[expense.Description] {
			return fmt.Errorf("%w: duplicate expense description: %s", ErrConfig, expense.Description)
		}
		seen[expense.Description] = true

		amount, err := EvalAmount(expense.Amount)
		if err != nil {
			return fmt.Errorf("%w: expense %q amount: %v", ErrConfig, expense.Description, err)
		}
		if amount.Sign() <= 0 {
			return fmt.Errorf("%w: expense %q amount must be positive", ErrConfig, expense.Description)
		}
		if _, err := date.Parse(expense.Date); err != nil {
			return fmt.Errorf("%w: expense %q: %v", ErrConfig, expense.Description, err)
		}
	}
	return nil
}

func (f *File) validateSales() error {
	for i, sale := range f.Sales {
		if sale.Description == "" {
			return fmt.Errorf("%w: sale %d missing required field: description", ErrConfig, i+1)
		}
		amount, err := EvalAmount(sale.Amount)
		if err != nil {
			return fmt.Errorf("%w: sale %q amount: %v", ErrConfig, sale.Description, err)
		}
		if amount.Sign() <= 0 {
			return fmt.Errorf("%w: sale %q amount must be positive", ErrConfig, sale.Description)
		}
		if _, err := date.Parse(sale.Date); err != nil {
			return fmt.Errorf("%w: sale %q: %v", ErrConfig, sale.Description, err)
		}
	}
	return nil
}

func (f *File) validatePayments() error {
	if len(f.Payments) == 0 {
		return fmt.Errorf("%w: at least one payment is required", ErrConfig)
	}
	partners := make(map[string]bool)
	for _, partner := range f.Partners {
		partners[partner.Name] = true
	}
	expenses := make(map[string]bool)
	for _, expense := range f.Expenses {
		expenses[expense.Description] = true
	}

	for i, payment := range f.Payments {
		amount, err := EvalAmount(payment.Amount)
		if err != nil {
			return fmt.Errorf("%w: payment %d amount: %v", ErrConfig, i+1, err)
		}
		if amount.Sign() <= 0 {
			return fmt.Errorf("%w: payment %d amount must be positive", ErrConfig, i+1)
		}
		if _, err := date.Parse(payment.Date); err != nil {
			return fmt.Errorf("%w: payment %d: %v", ErrConfig, i+1, err)
		}
		switch {
		case payment.FromSales && payment.Partner != "":
			return fmt.Errorf("%w: payment %d is from_sales and cannot name a partner", ErrConfig, i+1)
		case !payment.FromSales && payment.Partner == "":
			return fmt.Errorf("%w: payment %d missing required field: partner", ErrConfig, i+1)
		case !payment.FromSales && !partners[payment.Partner]:
			return fmt.Errorf("%w: payment %d references unknown partner: %s", ErrConfig, i+1, payment.Partner)
		}
		if payment.Expense == "" {
			return fmt.Errorf("%w: payment %d missing required field: expense", ErrConfig, i+1)
		}
		if !expenses[payment.Expense] {
			return fmt.Errorf("%w: payment %d references unknown expense: %s", ErrConfig, i+1, payment.Expense)
		}
	}
	return nil
}

// Build creates the fully populated project from a validated file. Ledger
// invariant violations (e.g. an over-payment) surface as the ledger's own
// validation errors.
func (f *File) Build() (*Project, error) {
	start, err := date.Parse(f.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: project start_date: %v", ErrConfig, err)
	}
	end, err := date.Parse(f.Project.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: project end_date: %v", ErrConfig, err)
	}

	project := NewProject(f.Project.Name, start, end)
	project.SetCurrency(f.Project.Currency)

	partners := make(map[string]*Partner, len(f.Partners))
	for _, decl := range f.Partners {
		amount, err := EvalAmount(decl.InvestmentAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: partner %q investment_amount: %v", ErrConfig, decl.Name, err)
		}
		partners[decl.Name] = project.AddPartner(decl.Name, M(amount, project.Currency()))
	}

	expenses := make(map[string]*Expense, len(f.Expenses))
	for _, decl := range f.Expenses {
		amount, err := EvalAmount(decl.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %q amount: %v", ErrConfig, decl.Description, err)
		}
		day := date.MustParse(decl.Date) // validated above
		expenses[decl.Description] = project.AddExpense(decl.Description, M(amount, project.Currency()), day)
	}

	for _, decl := range f.Sales {
		amount, err := EvalAmount(decl.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: sale %q amount: %v", ErrConfig, decl.Description, err)
		}
		project.AddSale(M(amount, project.Currency()), date.MustParse(decl.Date), decl.Description)
	}

	for i, decl := range f.Payments {
		amount, err := EvalAmount(decl.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: payment %d amount: %v", ErrConfig, i+1, err)
		}
		if _, err := project.AddPayment(
			M(amount, project.Currency()),
			date.MustParse(decl.Date),
			partners[decl.Partner],
			expenses[decl.Expense],
			decl.FromSales,
		); err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
	}
	return project, nil
}
