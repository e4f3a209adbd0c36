package metrics

import "time"

// RunOutcome enumerates the final status of a command run.
type RunOutcome string

const (
	RunPassed RunOutcome = "passed"
	RunFailed RunOutcome = "failed"
)

// Recorder defines observability hooks for the footer updater and the link
// verifier. NoopRecorder is the default when metrics are not requested.
type Recorder interface {
	IncFooterOutcome(outcome string)
	IncLinkKind(kind string)
	IncBrokenLink()
	IncDocumentError(command string)
	ObserveRunDuration(command string, d time.Duration)
	IncRunOutcome(command string, outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFooterOutcome(string) {}
func (NoopRecorder) IncLinkKind(string) {}
func (NoopRecorder) IncBrokenLink() {}
func (NoopRecorder) IncDocumentError(string) {}
func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
func (NoopRecorder) IncRunOutcome(string, RunOutcome) {}
