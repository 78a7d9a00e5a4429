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

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display expenses and their payment status" }
func (*expensesCmd) Usage() string {
	return `cfd expenses

  Displays each expense with its total, the amount paid so far, the
  remaining amount, and its payment status.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project %q: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ExpensesMarkdown(project.ExpenseSummaries(), date.Today()))
	return subcommands.ExitSuccess
}
