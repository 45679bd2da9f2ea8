package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// a single CLI run has no use for go runtime or process collectors
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
	)

	return promRegistry
}

// WriteTextfile dumps everything gathered by reg into path, in the format
// the node exporter textfile collector picks up.
func WriteTextfile(path string, reg prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
