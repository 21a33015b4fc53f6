package main

import (
	"context"

	"github.com/conformdev/conform/cmd/conform/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
