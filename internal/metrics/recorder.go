// Package metrics provides observability hooks for dictionary loads,
// ladder searches and pool usage.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// collection costs nothing unless a real implementation is injected:
//
//	rec := metrics.NewPrometheusRecorder(prometheus.NewRegistry())
//	solver := golf.New(dict, golf.WithRecorder(rec))
//
// A one-shot command has no scrape endpoint; WriteTextfile dumps the
// registry in the text exposition format for node_exporter's textfile
// collector.
package metrics

import (
	"time"

	"github.com/feydor/semiotics/strpool"
)

// Outcome labels for ObserveSolve.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
)

// Recorder defines observability hooks. It is a superset of golf.Recorder.
type Recorder interface {
	ObserveLoad(words int, d time.Duration)
	ObserveSolve(state string, steps, explored int, d time.Duration)
	ObservePool(m strpool.PoolMetrics)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoad(int, time.Duration) {}
func (NoopRecorder) ObserveSolve(string, int, int, time.Duration) {}
func (NoopRecorder) ObservePool(strpool.PoolMetrics) {}
