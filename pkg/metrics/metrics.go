// Package metrics records operation counters in an embedded time-series
// store under the application workdir.
package metrics

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
	"github.com/pkg/errors"
)

// Metric names recorded by the storefront.
const (
	MetricInventoryOps = "inventory_ops"
	MetricCartOps      = "cart_ops"
	MetricCheckouts    = "checkouts"
	MetricHTTPRequests = "http_requests"
	MetricCPUUse       = "system_cpu_use"
	MetricMemUse       = "system_mem_use"
)

var (
	mu   sync.Mutex
	tsdb tstorage.Storage
)

// InitMetrics opens the time-series store under <workdir>/metrics.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	if tsdb != nil {
		return nil
	}

	dataPath := filepath.Join(workdir, "metrics")
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return errors.Wrap(err, "create metrics dir")
	}
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(dataPath),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(30*24*time.Hour),
	)
	if err != nil {
		return errors.Wrap(err, "open metrics storage")
	}
	tsdb = s
	return nil
}

// Incr appends a single count to the metric at the current time. A no-op
// when metrics were never initialized.
func Incr(metric string) {
	mu.Lock()
	s := tsdb
	mu.Unlock()
	if s == nil {
		return
	}
	_ = s.InsertRows([]tstorage.Row{
		{
			Metric:    metric,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: 1},
		},
	})
}

// Record appends a gauge sample to the metric at the current time.
func Record(metric string, value float64) {
	mu.Lock()
	s := tsdb
	mu.Unlock()
	if s == nil {
		return
	}
	_ = s.InsertRows([]tstorage.Row{
		{
			Metric:    metric,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: value},
		},
	})
}

// CountSince sums the metric's data points between since and now.
func CountSince(metric string, since time.Time) int {
	mu.Lock()
	s := tsdb
	mu.Unlock()
	if s == nil {
		return 0
	}
	points, err := s.Select(metric, nil, since.Unix(), time.Now().Unix()+1)
	if err != nil {
		return 0
	}
	n := 0
	for _, p := range points {
		n += int(p.Value)
	}
	return n
}

// Close flushes and closes the metrics store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if tsdb == nil {
		return nil
	}
	err := tsdb.Close()
	tsdb = nil
	return err
}
