// Package cmd implements the CLI application to inspect a crowdfunding project.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/aldawood/crowdfund"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&partnersCmd{}, "reports")
	c.Register(&expensesCmd{}, "reports")
	c.Register(&paymentsCmd{}, "reports")
	c.Register(&salesCmd{}, "reports")

	c.Register(&checkCmd{}, "project file")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var projectFile = flag.String("f", "project.yaml", "Path to the project YAML file")

// loadProject reads, validates, and builds the project from the app project file.
func loadProject() (*crowdfund.Project, error) {
	return crowdfund.LoadProject(*projectFile)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. no TTY).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
