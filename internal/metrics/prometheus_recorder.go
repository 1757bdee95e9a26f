package metrics

import (
	"fmt"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/feydor/semiotics/strpool"
)

const namespace = "wgolf"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	reg            *prom.Registry
	loadDuration   prom.Histogram
	loadedWords    prom.Gauge
	solveDuration  *prom.HistogramVec
	solveOutcomes  *prom.CounterVec
	ladderSteps    prom.Histogram
	wordsExplored  prom.Histogram
	poolBytes      prom.Gauge
	poolCapacity   prom.Gauge
	poolStrings    prom.Gauge
	poolGeneration prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.loadDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "dictionary_load_duration_seconds",
			Help:      "Duration of dictionary loads",
			Buckets:   prom.DefBuckets,
		})
		pr.loadedWords = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "dictionary_words",
			Help:      "Words accepted by the last dictionary load",
		})
		pr.solveDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of ladder searches",
			Buckets:   prom.DefBuckets,
		}, []string{"outcome"})
		pr.solveOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "solve_outcomes_total",
			Help:      "Ladder searches by outcome",
		}, []string{"outcome"})
		pr.ladderSteps = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "ladder_steps",
			Help:      "Links in found ladders",
			Buckets:   prom.LinearBuckets(1, 2, 10),
		})
		pr.wordsExplored = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "words_explored",
			Help:      "Words linked during one search",
			Buckets:   prom.ExponentialBuckets(1, 4, 8),
		})
		pr.poolBytes = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_bytes_in_use",
			Help:      "Bytes written to the string pool, terminators included",
		})
		pr.poolCapacity = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_capacity_bytes",
			Help:      "Size of the string pool buffer",
		})
		pr.poolStrings = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_strings",
			Help:      "Strings appended in the current pool epoch",
		})
		pr.poolGeneration = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_generation",
			Help:      "Current pool epoch",
		})
		reg.MustRegister(pr.loadDuration, pr.loadedWords, pr.solveDuration, pr.solveOutcomes,
			pr.ladderSteps, pr.wordsExplored, pr.poolBytes, pr.poolCapacity, pr.poolStrings, pr.poolGeneration)
	})
	return pr
}

// ObserveLoad records the duration and size of a dictionary load.
func (p *PrometheusRecorder) ObserveLoad(words int, d time.Duration) {
	if p == nil || p.loadDuration == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
	p.loadedWords.Set(float64(words))
}

// ObserveSolve counts a finished search by state and records its steps,
// explored words and duration.
func (p *PrometheusRecorder) ObserveSolve(state string, steps, explored int, d time.Duration) {
	if p == nil || p.solveDuration == nil {
		return
	}
	p.solveDuration.WithLabelValues(state).Observe(d.Seconds())
	p.solveOutcomes.WithLabelValues(state).Inc()
	p.wordsExplored.Observe(float64(explored))
	if state == OutcomeFound {
		p.ladderSteps.Observe(float64(steps))
	}
}

// ObservePool sets the pool gauges from m.
func (p *PrometheusRecorder) ObservePool(m strpool.PoolMetrics) {
	if p == nil || p.poolBytes == nil {
		return
	}
	p.poolBytes.Set(float64(m.SizeInUse))
	p.poolCapacity.Set(float64(m.Capacity))
	p.poolStrings.Set(float64(m.Count))
	p.poolGeneration.Set(float64(m.Generation))
}

// WriteTextfile writes every metric in the recorder's registry to path in
// the text exposition format. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
