package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aldawood/crowdfund/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the project financial overview" }
func (*summaryCmd) Usage() string {
	return `cfd summary

  Displays the project overview: target amount, total investments, payments,
  sales accounting and the project balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project %q: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProjectMarkdown(project.Summary()))
	return subcommands.ExitSuccess
}
