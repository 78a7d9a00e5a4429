package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aldawood/crowdfund/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display help topics" }
func (*topicCmd) Usage() string {
	return `cfd topic [<name>...|*]

  Without arguments, displays the list of available topics.
  With topic names, displays those topics. '*' displays all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var content string
	var err error
	if f.NArg() == 0 {
		content, err = docs.GetTopic("readme")
	} else {
		content, err = docs.GetTopics(f.Args()...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(content)
	return subcommands.ExitSuccess
}
