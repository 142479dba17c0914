package metrics

import (
	"net/http"

	"github.com/Vinayak4780/Guard/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry   *prometheus.Registry
	scans      *prometheus.CounterVec
	scanErrors *prometheus.CounterVec
	distance   prometheus.Histogram
	exports    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "scans_total",
			Help:      "Processed scans by outcome.",
		}, []string{"outcome"}),
		scanErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "scan_errors_total",
			Help:      "Scans that ended without an outcome, by kind.",
		}, []string{"kind"}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guard",
			Name:      "scan_distance_meters",
			Help:      "Distance between device and bound location.",
			Buckets:   []float64{5, 10, 25, 50, 75, 100, 150, 250, 500, 1000, 5000},
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "exports_total",
			Help:      "Export webhook deliveries by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scans,
		m.scanErrors,
		m.distance,
		m.exports,
	)
	return m
}

func (m *Metrics) ObserveScan(outcome domain.ScanOutcome, distanceMeters *float64) {
	m.scans.WithLabelValues(string(outcome)).Inc()
	if distanceMeters != nil && outcome != domain.ScanBound {
		m.distance.Observe(*distanceMeters)
	}
}

func (m *Metrics) ObserveScanError(kind string) {
	m.scanErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveExport(result string) {
	m.exports.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
