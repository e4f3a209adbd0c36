// Package metrics records what sitekeeper runs did: footer outcomes, link
// classifications, broken links and run durations.
//
// Components receive a Recorder and default to NoopRecorder, so metric calls
// need no nil checks. When --metrics-file is given the CLI swaps in a
// PrometheusRecorder on a private registry and, once the run completes, writes
// the registry with WriteTextfile for the node_exporter textfile collector:
//
//	reg := prometheus.NewRegistry()
//	updater := footer.NewUpdater(cfg).WithRecorder(metrics.NewPrometheusRecorder(reg))
//	...
//	_ = metrics.WriteTextfile(path, reg)
package metrics
