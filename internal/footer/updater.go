package footer

import (
	"context"
	stderrors "errors"
	"log/slog"

	"git.home.luguber.info/inful/sitekeeper/internal/config"
	"git.home.luguber.info/inful/sitekeeper/internal/discovery"
	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
	"git.home.luguber.info/inful/sitekeeper/internal/gitrepo"
	"git.home.luguber.info/inful/sitekeeper/internal/logfields"
	"git.home.luguber.info/inful/sitekeeper/internal/metrics"
	"git.home.luguber.info/inful/sitekeeper/internal/sitepath"
)

// UpdateResult aggregates the per-document reports of one run.
type UpdateResult struct {
	Reports        []Report
	Updated        int
	AlreadyUpdated int
	NoFooter       int
	Failed         int
	DryRun         bool
}

// Total returns the number of documents processed.
func (r *UpdateResult) Total() int {
	return len(r.Reports)
}

// Succeeded counts documents that now carry the canonical footer.
func (r *UpdateResult) Succeeded() int {
	return r.Updated + r.AlreadyUpdated
}

// HasErrors reports whether any document could not be read or written.
func (r *UpdateResult) HasErrors() bool {
	return r.Failed > 0
}

// Errors returns the per-document errors in processing order.
func (r *UpdateResult) Errors() []error {
	var errs []error
	for _, rep := range r.Reports {
		if rep.Err != nil {
			errs = append(errs, rep.Err)
		}
	}
	return errs
}

func (r *UpdateResult) add(rep Report) {
	r.Reports = append(r.Reports, rep)
	switch rep.Outcome {
	case OutcomeUpdated:
		r.Updated++
	case OutcomeAlreadyUpdated:
		r.AlreadyUpdated++
	case OutcomeNoFooter:
		r.NoFooter++
	case OutcomeError:
		r.Failed++
	}
}

// Updater applies the Engine to every document of a project.
type Updater struct {
	cfg      config.Footer
	engine   *Engine
	recorder metrics.Recorder
	progress func(Report)
	started  func(total int)
}

// NewUpdater creates an updater for a normalized footer configuration.
func NewUpdater(cfg config.Footer) *Updater {
	return &Updater{
		cfg:      cfg,
		engine:   NewEngine(cfg),
		recorder: metrics.NoopRecorder{},
		progress: func(Report) {},
		started:  func(int) {},
	}
}

// WithRecorder sets the metrics recorder.
func (u *Updater) WithRecorder(r metrics.Recorder) *Updater {
	if r != nil {
		u.recorder = r
	}
	return u
}

// WithProgress registers fn to be called after each document is processed.
func (u *Updater) WithProgress(fn func(Report)) *Updater {
	if fn != nil {
		u.progress = fn
	}
	return u
}

// WithStart registers fn to be called with the document count once discovery
// has finished.
func (u *Updater) WithStart(fn func(total int)) *Updater {
	if fn != nil {
		u.started = fn
	}
	return u
}

// UpdateProject updates every document under the configured root. A failure on
// one document is recorded in its Report and does not stop the batch; the
// returned error is reserved for conditions that prevent the batch from running
// or from finishing (discovery failure, dirty worktree, cancellation).
func (u *Updater) UpdateProject(ctx context.Context) (*UpdateResult, error) {
	if u.cfg.RequireClean && !u.cfg.DryRun {
		if err := u.checkClean(); err != nil {
			return nil, err
		}
	}

	docs, err := discovery.Discover(ctx, u.cfg.Site)
	if err != nil {
		return nil, err
	}
	slog.Info("Found documents to process", logfields.Root(u.cfg.Root), logfields.Count(len(docs)))
	u.started(len(docs))

	result := &UpdateResult{DryRun: u.cfg.DryRun}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, errors.WrapError(err, errors.CategoryRuntime, "footer update interrupted").
				WithContext("processed", result.Total()).
				Build()
		}

		rep := u.engine.UpdateDocument(doc)
		result.add(rep)

		u.recorder.IncFooterOutcome(rep.Outcome.String())
		if rep.Outcome == OutcomeError {
			u.recorder.IncDocumentError("footer")
		}
		slog.Debug("Processed document",
			logfields.Document(doc.RelPath),
			logfields.Depth(sitepath.Depth(doc.Path, u.cfg.Root)),
			logfields.Outcome(rep.Outcome.String()),
			logfields.Pattern(rep.Pattern),
			logfields.Error(rep.Err))

		u.progress(rep)
	}

	return result, nil
}

func (u *Updater) checkClean() error {
	repo, err := gitrepo.Open(u.cfg.Root)
	if stderrors.Is(err, gitrepo.ErrNotRepository) {
		return errors.WrapError(err, errors.CategoryConfig, "--require-clean needs the project to be inside a git repository").
			Fatal().
			UserAction().
			WithContext("root", u.cfg.Root).
			Build()
	}
	if err != nil {
		return err
	}
	return repo.RequireClean()
}
