package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aldawood/crowdfund/renderer"
)

type partnersCmd struct{}

func (*partnersCmd) Name() string     { return "partners" }
func (*partnersCmd) Synopsis() string { return "display each partner's investment and ownership" }
func (*partnersCmd) Usage() string {
	return `cfd partners

  Displays each partner's investment, ownership percentage, payments,
  investment balance and share of net sales.
`
}

func (c *partnersCmd) SetFlags(f *flag.FlagSet) {}

func (c *partnersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project %q: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PartnersMarkdown(project.PartnerSummaries()))
	return subcommands.ExitSuccess
}
