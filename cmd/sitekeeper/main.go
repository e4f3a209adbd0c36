package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitekeeper/cmd/sitekeeper/commands"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("sitekeeper"),
		kong.Description("Maintenance tools for a static website: footer updates and link verification."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	err := parser.Run(&commands.Global{Out: os.Stdout})
	stop()

	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
