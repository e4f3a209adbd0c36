package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/footer"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
)

// FooterCmd implements the 'footer' command.
type FooterCmd struct {
	SiteFlags `embed:""`

	Asset        string `default:"assets/logo.jpg" help:"Root-relative path of the logo referenced by the footer"`
	DryRun       bool   `help:"Show which documents would change without writing them"`
	RequireClean bool   `help:"Refuse to run when tracked files have uncommitted changes"`
}

// Run executes the footer command. Per-document failures are reported but do
// not make the command fail.
func (f *FooterCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg := config.Footer{
		Site:         f.site(),
		AssetPath:    f.Asset,
		DryRun:       f.DryRun,
		RequireClean: f.RequireClean,
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := g.out()
	m := newRunMetrics("footer", root.MetricsFile)
	slog.Info("Updating footers", logfields.Command("footer"), logfields.Root(cfg.Root))

	updater := footer.NewUpdater(cfg).
		WithRecorder(m.recorder).
		WithStart(func(total int) { _ = footer.WriteHeader(out, total) }).
		WithProgress(func(rep footer.Report) { _ = footer.WriteProgress(out, rep, cfg.DryRun) })

	result, err := updater.UpdateProject(ctx)
	if err != nil {
		_ = m.finish(metrics.RunFailed)
		return err
	}

	if err := footer.WriteSummary(out, result); err != nil {
		return err
	}

	outcome := metrics.RunPassed
	if result.HasErrors() {
		outcome = metrics.RunFailed
	}
	return m.finish(outcome)
}
