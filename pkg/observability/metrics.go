package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
	// RuntimeCollectors registers the Go runtime and process collectors.
	RuntimeCollectors bool
}

// InitMetrics creates a dedicated Prometheus registry for the service.
// Callers register their own collectors on the returned registry.
func InitMetrics(cfg MetricsConfig) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	if cfg.RuntimeCollectors {
		if err := reg.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("register go collector: %w", err)
		}
		if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: cfg.ServiceName,
		})); err != nil {
			return nil, fmt.Errorf("register process collector: %w", err)
		}
	}

	return reg, nil
}

// WriteTextfile dumps the registry in the Prometheus text format so a
// node-exporter textfile collector can pick it up. The write is atomic.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
