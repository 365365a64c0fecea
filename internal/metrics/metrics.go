// Package metrics records the outcome of a pruning run and exports it for the
// node_exporter textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/raoulx24/yabu-vacuum/internal/retention"
)

const namespace = "yabu_vacuum"

type Recorder struct {
	reg *prometheus.Registry

	found       prometheus.Gauge
	kept        prometheus.Gauge
	deleted     prometheus.Gauge
	bytesFreed  prometheus.Gauge
	success     prometheus.Gauge
	lastRun     prometheus.Gauge
	runDuration prometheus.Gauge
}

// New creates a recorder whose series all carry the given job label.
func New(job string) *Recorder {
	labels := prometheus.Labels{"job": job}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	r := &Recorder{
		reg:         prometheus.NewRegistry(),
		found:       gauge("files_found", "Files supplied to the last run."),
		kept:        gauge("files_kept", "Files left in place by the last run."),
		deleted:     gauge("files_deleted", "Files removed by the last run."),
		bytesFreed:  gauge("bytes_freed", "Bytes reclaimed by the last run."),
		success:     gauge("last_run_success", "1 if the last run completed without error, 0 otherwise."),
		lastRun:     gauge("last_run_timestamp_seconds", "Unix time the last run finished."),
		runDuration: gauge("run_duration_seconds", "Wall time of the last run."),
	}
	r.reg.MustRegister(r.found, r.kept, r.deleted, r.bytesFreed, r.success, r.lastRun, r.runDuration)
	return r
}

// Observe stores the outcome of one run. A partial result from a failed run
// is recorded as-is.
func (r *Recorder) Observe(res retention.Result, runErr error, finished time.Time, took time.Duration) {
	r.found.Set(float64(res.Found))
	r.kept.Set(float64(len(res.Kept)))
	r.deleted.Set(float64(len(res.Deleted)))
	r.bytesFreed.Set(float64(res.BytesFreed))
	r.lastRun.Set(float64(finished.Unix()))
	r.runDuration.Set(took.Seconds())
	if runErr == nil {
		r.success.Set(1)
	} else {
		r.success.Set(0)
	}
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile atomically replaces path with the current metrics.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
