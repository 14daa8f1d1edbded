package main

import (
	"github.com/alecthomas/kong"
	"github.com/lox/blackjack/cmd/blackjack/shared"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Debug    bool             `help:"Enable debug logging"`
	Round    RoundCmd         `cmd:"" help:"Play a single automated round"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many rounds and report outcome rates"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-round blackjack simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := shared.SetupLogger(cli.Debug)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
