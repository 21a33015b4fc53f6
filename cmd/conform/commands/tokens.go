package commands

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"

	"github.com/conformdev/conform"
)

// TokensCommand returns the tokens subcommand.
func TokensCommand() *cli.Command {
	return cli.NewCommand("tokens").
		WithSynopsis("tokens - list shorthand base tokens").
		WithRun(func(cc *cli.Context, args []string) error {
			names := conform.DefaultRegistry.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cc.Out, name)
			}
			return nil
		})
}
