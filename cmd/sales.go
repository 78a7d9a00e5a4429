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

type salesCmd struct {
	since string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display sales and the sales accounting totals" }
func (*salesCmd) Usage() string {
	return `cfd sales [-since YYYY-MM-DD]

  Displays every sale, then the sales accounting: gross revenue,
  the amount reinvested into expenses, and the distributable net sales.
  With -since, the accounting totals only count activity on or after
  that date.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "only count sales and reinvestments on or after this date")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var since date.Date
	if c.since != "" {
		var err error
		since, err = date.Parse(c.since)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -since date %q: %v\n", c.since, err)
			return subcommands.ExitUsageError
		}
	}

	project, err := loadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project %q: %v\n", *projectFile, err)
		return subcommands.ExitFailure
	}

	totals := renderer.SalesTotals{
		Since:      since,
		Gross:      project.GrossSales(since),
		Reinvested: project.SalesReinvestments(since),
		Net:        project.NetSales(since),
	}
	printMarkdown(renderer.SalesMarkdown(project.SaleSummaries(), totals))
	return subcommands.ExitSuccess
}
