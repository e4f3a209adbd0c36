package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/linkcheck"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	SiteFlags `embed:""`

	Format string `short:"f" default:"text" help:"Output format (text, json or yaml)" enum:"text,json,yaml"`
}

// Run executes the verify command. It fails with a validation error when at
// least one broken link is found.
func (v *VerifyCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg := config.Verify{Site: v.site(), Format: v.Format}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m := newRunMetrics("verify", root.MetricsFile)
	slog.Info("Verifying links", logfields.Command("verify"), logfields.Root(cfg.Root))

	result, err := linkcheck.NewVerifier(cfg).WithRecorder(m.recorder).VerifyProject(ctx)
	if err != nil {
		_ = m.finish(metrics.RunFailed)
		return err
	}

	if err := linkcheck.NewFormatter(cfg.Format).Format(g.out(), result); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to write report").Build()
	}

	if result.Passed() {
		return m.finish(metrics.RunPassed)
	}
	if err := m.finish(metrics.RunFailed); err != nil {
		return err
	}
	return errors.ValidationError(fmt.Sprintf("%d broken links found", len(result.Broken))).
		WithContext("root", cfg.Root).
		WithContext("broken", len(result.Broken)).
		Build()
}
