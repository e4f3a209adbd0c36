package linkcheck

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/discovery"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
)

// Verifier checks the local links of every document in a project.
type Verifier struct {
	cfg      config.Verify
	recorder metrics.Recorder
}

// NewVerifier creates a verifier for a normalized configuration.
func NewVerifier(cfg config.Verify) *Verifier {
	return &Verifier{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (v *Verifier) WithRecorder(r metrics.Recorder) *Verifier {
	if r != nil {
		v.recorder = r
	}
	return v
}

// VerifyProject verifies every document under the configured root. All links
// are checked; the returned error is reserved for discovery failures and
// cancellation, never for broken links.
func (v *Verifier) VerifyProject(ctx context.Context) (*Result, error) {
	docs, err := discovery.Discover(ctx, v.cfg.Site)
	if err != nil {
		return nil, err
	}
	slog.Info("Found documents to analyze", logfields.Root(v.cfg.Root), logfields.Count(len(docs)))

	result := &Result{Root: v.cfg.Root, Broken: []Broken{}}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, errors.WrapError(err, errors.CategoryRuntime, "link verification interrupted").
				WithContext("processed", len(result.Documents)).
				Build()
		}
		v.verifyDocument(doc, result)
	}
	return result, nil
}

func (v *Verifier) verifyDocument(doc discovery.Document, result *Result) {
	// #nosec G304 -- doc.Path comes from discovery under the project root
	raw, err := os.ReadFile(doc.Path)
	if err == nil && !utf8.Valid(raw) {
		err = errors.FileSystemError("document is not valid UTF-8").Build()
	}
	if err != nil {
		slog.Warn("Skipping unreadable document", logfields.Document(doc.RelPath), logfields.Error(err))
		v.recorder.IncDocumentError("verify")
		result.Unreadable = append(result.Unreadable, Unreadable{Document: doc.RelPath, Error: err.Error()})
		result.addSummary(DocumentSummary{Document: doc.RelPath})
		return
	}

	summary := DocumentSummary{Document: doc.RelPath}
	for link := range ExtractLinks(string(raw)) {
		cl := Classify(doc.Path, link, v.cfg.Root)
		summary.Links++
		v.recorder.IncLinkKind(cl.Kind.String())
		slog.Debug("Classified link", logfields.Link(link), logfields.Kind(cl.Kind.String()), logfields.Target(cl.Target))

		switch cl.Kind {
		case KindExternal:
			summary.External++
		case KindFragment:
			summary.Fragment++
		case KindLocal:
			summary.Local++
			if pathExists(cl.Target) {
				continue
			}
			summary.Broken++
			v.recorder.IncBrokenLink()
			result.Broken = append(result.Broken, Broken{
				Document:       doc.RelPath,
				Link:           link,
				Target:         v.relativeTarget(cl.Target),
				AbsoluteTarget: cl.Target,
			})
			slog.Debug("Broken link", logfields.Document(doc.RelPath), logfields.Link(link))
		}
	}

	slog.Debug("Analyzed document",
		logfields.Document(doc.RelPath),
		logfields.Count(summary.Links),
		slog.Int("broken", summary.Broken))
	result.addSummary(summary)
}

func (v *Verifier) relativeTarget(target string) string {
	rel, err := filepath.Rel(v.cfg.Root, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
