package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

const usageText = `conform - validate JSON documents against concrete schemas

Usage:
  conform check <schema.json> [doc.json...]   Validate documents (stdin if none)
  conform check --diff <schema.json> <doc>    Also show input vs normalized diff
  conform check --patch <schema.json> <doc>   Also emit the JSON merge patch
  conform tokens                              List shorthand base tokens

Examples:
  conform check api-request.schema.json request.json
  cat request.json | conform check api-request.schema.json
  conform check --diff user.schema.json user.json`

// Root returns the root command for conform.
func Root() *cli.Command {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return cli.NewCommand("conform").
		WithSynopsis("conform - concrete schema validation").
		WithDescription(usageText).
		WithSubs(
			CheckCommand(),
			TokensCommand(),
		)
}
