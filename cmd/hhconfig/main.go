package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Layr-Labs/hhconfig/internal/version"
	"github.com/Layr-Labs/hhconfig/pkg/commands"
	"github.com/Layr-Labs/hhconfig/pkg/hooks"

	"github.com/urfave/cli/v2"
)

func main() {
	cmds := commands.All()
	hooks.ApplyMiddleware(cmds, hooks.DefaultChain())

	app := &cli.App{
		Name:                   "hhconfig",
		Usage:                  "Assemble, check and export the build configuration of a contracts project",
		Version:                version.GetVersion(),
		Commands:               cmds,
		UseShortOptionHandling: true,
		Suggest:                true,
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
