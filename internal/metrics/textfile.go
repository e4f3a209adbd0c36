package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitekeeper/internal/foundation/errors"
)

// WriteTextfile writes every metric gathered from reg to path in the text
// exposition format, for the node_exporter textfile collector. The file is
// replaced atomically.
func WriteTextfile(path string, reg prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
