// Package footer rewrites the shared footer block of static site pages.
//
// The Engine upgrades one document at a time: documents that already carry the
// canonical footer are left alone, otherwise the first recognized legacy
// footer block is replaced with the rendered canonical footer. The Updater
// drives the Engine over a whole project and collects one Report per page.
package footer

import (
	"os"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/discovery"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/sitepath"
)

// Outcome is the result of updating a single document.
type Outcome int

const (
	// OutcomeAlreadyUpdated means the document carries Marker; nothing was written.
	OutcomeAlreadyUpdated Outcome = iota
	// OutcomeUpdated means a footer block was replaced (and written unless dry-run).
	OutcomeUpdated
	// OutcomeNoFooter means no recognized footer block was found.
	OutcomeNoFooter
	// OutcomeError means the document could not be read or written.
	OutcomeError
)

// String returns the outcome label used in logs, metrics and reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyUpdated:
		return "already-updated"
	case OutcomeUpdated:
		return "updated"
	case OutcomeNoFooter:
		return "no-footer"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Report describes what happened to one document.
type Report struct {
	Document  discovery.Document
	Outcome   Outcome
	Pattern   string // name of the pattern that matched, if any
	AssetPath string // logo path embedded in the new footer, if any
	Err       error  // set only for OutcomeError
}

// Engine replaces footer blocks in individual documents.
type Engine struct {
	root      string
	assetPath string
	patterns  []Pattern
	dryRun    bool
}

// NewEngine creates an engine for the project described by cfg. cfg must be
// normalized.
func NewEngine(cfg config.Footer) *Engine {
	return &Engine{
		root:      cfg.Root,
		assetPath: cfg.AssetPath,
		patterns:  DefaultPatterns,
		dryRun:    cfg.DryRun,
	}
}

// UpdateDocument upgrades the footer of doc. It never panics or returns an
// error; failures are reported as OutcomeError with Err set.
func (e *Engine) UpdateDocument(doc discovery.Document) Report {
	report := Report{Document: doc}

	info, err := os.Stat(doc.Path)
	if err != nil {
		return e.fail(report, err, "failed to stat document")
	}

	// #nosec G304 -- doc.Path comes from discovery under the project root
	raw, err := os.ReadFile(doc.Path)
	if err != nil {
		return e.fail(report, err, "failed to read document")
	}
	if !utf8.Valid(raw) {
		return e.fail(report, nil, "document is not valid UTF-8")
	}
	content := string(raw)

	if strings.Contains(content, Marker) {
		report.Outcome = OutcomeAlreadyUpdated
		return report
	}

	assetPath, err := sitepath.RelativeAssetPath(doc.Path, e.root, e.assetPath)
	if err != nil {
		return e.fail(report, err, "failed to compute asset path")
	}
	report.AssetPath = assetPath

	updated, pattern, ok := e.Substitute(content, Render(assetPath))
	if !ok {
		report.Outcome = OutcomeNoFooter
		return report
	}
	report.Pattern = pattern

	if !e.dryRun {
		if err := os.WriteFile(doc.Path, []byte(updated), info.Mode().Perm()); err != nil {
			return e.fail(report, err, "failed to write document")
		}
	}

	report.Outcome = OutcomeUpdated
	return report
}

// Substitute replaces the first block matched by the highest-priority matching
// pattern with replacement. It reports the pattern name and whether anything
// matched. Lower-priority patterns are not consulted once one matches.
func (e *Engine) Substitute(content, replacement string) (string, string, bool) {
	for _, p := range e.patterns {
		loc := p.Find(content)
		if loc == nil {
			continue
		}
		return content[:loc[0]] + replacement + content[loc[1]:], p.Name, true
	}
	return content, "", false
}

func (e *Engine) fail(report Report, cause error, message string) Report {
	var b *errors.ErrorBuilder
	if cause != nil {
		b = errors.WrapError(cause, errors.CategoryFileSystem, message)
	} else {
		b = errors.FileSystemError(message)
	}
	report.Outcome = OutcomeError
	report.Err = b.WithContext("path", report.Document.Path).Build()
	return report
}
