package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the project file" }
func (*checkCmd) Usage() string {
	return `cfd check

  Parses and validates the project file, reporting the first error
  found: bad yaml, missing declarations, unresolved references,
  conflicting funding sources, or over-payments.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%q is invalid: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%q is valid: %d partners, %d expenses, %d sales, %d payments.\n",
		*projectFile,
		project.PartnerCount(), project.ExpenseCount(), project.SaleCount(), project.PaymentCount())
	return subcommands.ExitSuccess
}
