package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/bigcalc/internal/sysmon"
)

// Run outcome labels.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder collects per-strategy run metrics on a private registry so
// several recorders (one per test, one per CLI invocation) never collide.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	limbs    *prometheus.GaugeVec
	cpu      prometheus.Gauge
	memory   prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigcalc",
			Name:      "runs_total",
			Help:      "Number of completed runs by strategy and status.",
		}, []string{"strategy", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bigcalc",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a run by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"strategy"}),
		limbs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bigcalc",
			Name:      "result_limbs",
			Help:      "Limb count of the last result by strategy.",
		}, []string{"strategy"}),
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigcalc",
			Name:      "system_cpu_percent",
			Help:      "Machine-wide CPU usage sampled at the end of the last run.",
		}),
		memory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigcalc",
			Name:      "system_memory_percent",
			Help:      "Machine-wide memory usage sampled at the end of the last run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.limbs, r.cpu, r.memory, collectors.NewGoCollector())
	return r
}

// ObserveRun records one finished run. limbs is ignored for failed runs.
func (r *Recorder) ObserveRun(strategy string, d time.Duration, limbs int, err error) {
	if r == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.runs.WithLabelValues(strategy, status).Inc()
	r.duration.WithLabelValues(strategy).Observe(d.Seconds())
	if err == nil {
		r.limbs.WithLabelValues(strategy).Set(float64(limbs))
	}
}

// ObserveSystem records a machine-wide load sample.
func (r *Recorder) ObserveSystem(l sysmon.Load) {
	if r == nil {
		return
	}
	r.cpu.Set(l.CPUPercent)
	r.memory.Set(l.MemPercent)
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Runs exposes the run counter for inspection.
func (r *Recorder) Runs() *prometheus.CounterVec { return r.runs }

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
