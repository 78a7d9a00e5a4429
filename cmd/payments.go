package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aldawood/crowdfund/date"
	"github.com/aldawood/crowdfund/renderer"
)

type paymentsCmd struct{}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "display all recorded payments" }
func (*paymentsCmd) Usage() string {
	return `cfd payments

  Displays every payment in recording order, with its funding source
  (partner or sales revenue) and the expense it settles.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project %q: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PaymentsMarkdown(project.PaymentSummaries(), date.Today()))
	return subcommands.ExitSuccess
}
