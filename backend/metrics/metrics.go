// ABOUTME: Prometheus collectors for build generation, HTTP traffic, and caching
// ABOUTME: Recorder implements the generator's Observer interface

package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hrg"

// Recorder owns a private registry and the collectors registered on it
type Recorder struct {
	registry *prometheus.Registry

	builds        *prometheus.CounterVec
	failures      *prometheus.CounterVec
	outcomes      *prometheus.CounterVec
	warnings      *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	cacheResults  *prometheus.CounterVec
	catalogItems  *prometheus.GaugeVec
	catalogInfo   *prometheus.GaugeVec
}

// NewRecorder creates a recorder with Go runtime and process collectors attached
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_generated_total",
			Help:      "Builds produced, by preference.",
		}, []string{"preference"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures_total",
			Help:      "Generation passes that failed, by preference and exhausted category.",
		}, []string{"preference", "category"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_outcomes_total",
			Help:      "Category picks, by category and outcome.",
		}, []string{"category", "outcome"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_warnings_total",
			Help:      "Warnings attached to builds, by kind.",
		}, []string{"kind"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent in one generation pass.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"preference"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		cacheResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_cache_requests_total",
			Help:      "Build cache lookups, by result.",
		}, []string{"result"}),
		catalogItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Records in the loaded catalog, by category.",
		}, []string{"category"}),
		catalogInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_info",
			Help:      "Version of the loaded catalog; always 1.",
		}, []string{"version"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.builds, r.failures, r.outcomes, r.warnings, r.buildDuration,
		r.httpRequests, r.httpDuration, r.cacheResults,
		r.catalogItems, r.catalogInfo,
	)
	return r
}

// Registry exposes the underlying registry for tests and custom collectors
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveBuild records a finished generation pass
func (r *Recorder) ObserveBuild(b *models.Build, elapsed time.Duration) {
	pref := string(b.Preference)
	r.builds.WithLabelValues(pref).Inc()
	r.buildDuration.WithLabelValues(pref).Observe(elapsed.Seconds())
	for _, s := range b.Selections {
		r.outcomes.WithLabelValues(string(s.Category), string(s.Outcome)).Inc()
	}
	for _, w := range b.Warnings {
		r.warnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

// ObserveFailure records a failed generation pass
func (r *Recorder) ObserveFailure(preference models.Preference, err error) {
	category := "none"
	var exhausted *models.CategoryExhaustedError
	if errors.As(err, &exhausted) {
		category = string(exhausted.Category)
	}
	r.failures.WithLabelValues(string(preference), category).Inc()
}

// ObserveHTTP records one served request
func (r *Recorder) ObserveHTTP(route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// CacheHit counts a build served from cache
func (r *Recorder) CacheHit() {
	r.cacheResults.WithLabelValues("hit").Inc()
}

// CacheMiss counts a build that had to be generated
func (r *Recorder) CacheMiss() {
	r.cacheResults.WithLabelValues("miss").Inc()
}

// SetCatalog publishes the counts and version of the loaded catalog
func (r *Recorder) SetCatalog(version string, counts map[models.Category]int) {
	r.catalogInfo.Reset()
	r.catalogInfo.WithLabelValues(version).Set(1)
	for category, n := range counts {
		r.catalogItems.WithLabelValues(string(category)).Set(float64(n))
	}
}
