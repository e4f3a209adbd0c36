package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	footerOutcomes *prom.CounterVec
	linkKinds      *prom.CounterVec
	brokenLinks    prom.Counter
	documentErrors *prom.CounterVec
	runDuration    *prom.HistogramVec
	runOutcomes    *prom.CounterVec
}

// NewPrometheusRecorder constructs the sitekeeper metrics and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		footerOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitekeeper",
			Name:      "footer_documents_total",
			Help:      "Documents processed by the footer updater, by outcome",
		}, []string{"outcome"}),
		linkKinds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitekeeper",
			Name:      "links_total",
			Help:      "Links extracted by the verifier, by classification",
		}, []string{"kind"}),
		brokenLinks: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitekeeper",
			Name:      "broken_links_total",
			Help:      "Local links whose target does not exist",
		}),
		documentErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitekeeper",
			Name:      "document_errors_total",
			Help:      "Documents that could not be read or written",
		}, []string{"command"}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitekeeper",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a command run",
			Buckets:   prom.DefBuckets,
		}, []string{"command"}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitekeeper",
			Name:      "run_outcomes_total",
			Help:      "Command runs by final status",
		}, []string{"command", "outcome"}),
	}
	reg.MustRegister(pr.footerOutcomes, pr.linkKinds, pr.brokenLinks, pr.documentErrors, pr.runDuration, pr.runOutcomes)
	return pr
}

func (p *PrometheusRecorder) IncFooterOutcome(outcome string) {
	if p == nil {
		return
	}
	p.footerOutcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncLinkKind(kind string) {
	if p == nil {
		return
	}
	p.linkKinds.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncBrokenLink() {
	if p == nil {
		return
	}
	p.brokenLinks.Inc()
}

func (p *PrometheusRecorder) IncDocumentError(command string) {
	if p == nil {
		return
	}
	p.documentErrors.WithLabelValues(command).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(command string, d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.WithLabelValues(command).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(command string, outcome RunOutcome) {
	if p == nil {
		return
	}
	p.runOutcomes.WithLabelValues(command, string(outcome)).Inc()
}
