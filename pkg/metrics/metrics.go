// Package metrics exposes the severity table and the active configuration
// as Prometheus gauges on a private registry.
package metrics

import (
	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/internal/version"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "appconfig"

// Metrics owns the registry and the configuration gauges.
type Metrics struct {
	registry *prometheus.Registry

	levelSeverity *prometheus.GaugeVec
	environment   *prometheus.GaugeVec
	activeLevel   prometheus.Gauge
	buildInfo     *prometheus.GaugeVec
}

// New registers the gauges plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		levelSeverity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "log_level_severity",
			Help:      "Severity of each entry in the source log-level table.",
		}, []string{"level"}),
		environment: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "environment_info",
			Help:      "Deployment environment the service runs in; value is always 1.",
		}, []string{"environment"}),
		activeLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_log_level",
			Help:      "Severity threshold of the service's own logger.",
		}),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build metadata; value is always 1.",
		}, []string{"version", "commit"}),
	}

	m.registry.MustRegister(
		m.levelSeverity,
		m.environment,
		m.activeLevel,
		m.buildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records the severity table and the values selected by cfg.
func (m *Metrics) Observe(cfg *config.Config) {
	for name, sev := range config.SrcLogLevels() {
		m.levelSeverity.WithLabelValues(name).Set(float64(sev))
	}

	m.environment.Reset()
	m.environment.WithLabelValues(cfg.Env().String()).Set(1)
	m.activeLevel.Set(float64(cfg.Severity()))
	m.buildInfo.WithLabelValues(version.GetVersion(), version.BuildCommit).Set(1)
}

// Registry returns the registry backing the exposition endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
