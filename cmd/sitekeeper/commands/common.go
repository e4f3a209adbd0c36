package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
)

// Global carries state shared by all subcommands.
type Global struct {
	// Out receives reports and progress lines. Defaults to os.Stdout.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in textfile-collector format to this path on completion"`

	Footer FooterCmd `cmd:"" help:"Replace the footer of every page with the canonical footer"`
	Verify VerifyCmd `cmd:"" help:"Report local links that point to missing files"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With(logfields.RunID(uuid.NewString())))
	return nil
}

// SiteFlags are the document selection flags shared by footer and verify.
type SiteFlags struct {
	Root        string   `arg:"" optional:"" help:"Project root (defaults to the working directory)"`
	Ext         string   `default:".html" help:"Extension of the documents to process"`
	Exclude     []string `short:"x" help:"Doublestar glob of root-relative paths to skip (repeatable)"`
	TrackedOnly bool     `help:"Only process documents tracked by the enclosing git repository"`
}

func (s SiteFlags) site() config.Site {
	return config.Site{
		Root:        s.Root,
		Extension:   s.Ext,
		Excludes:    s.Exclude,
		TrackedOnly: s.TrackedOnly,
	}
}

// runMetrics collects metrics for one command run and optionally writes them
// to a textfile when the run ends.
type runMetrics struct {
	command  string
	path     string
	start    time.Time
	registry *prom.Registry
	recorder metrics.Recorder
}

func newRunMetrics(command, path string) *runMetrics {
	m := &runMetrics{
		command:  command,
		path:     path,
		start:    time.Now(),
		recorder: metrics.NoopRecorder{},
	}
	if path != "" {
		m.registry = prom.NewRegistry()
		m.recorder = metrics.NewPrometheusRecorder(m.registry)
	}
	return m
}

func (m *runMetrics) finish(outcome metrics.RunOutcome) error {
	m.recorder.ObserveRunDuration(m.command, time.Since(m.start))
	m.recorder.IncRunOutcome(m.command, outcome)
	if m.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(m.path, m.registry); err != nil {
		return err
	}
	slog.Debug("Wrote metrics", logfields.Path(m.path))
	return nil
}
