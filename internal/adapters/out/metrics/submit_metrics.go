// Package metrics exports the constructor's submit lifecycle and catalog state
// as Prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"burger/internal/core/application/store"
	"burger/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "burger"

// Outcome label values of burger_order_submissions_total.
const (
	OutcomeSucceeded  = "succeeded"
	OutcomeFailed     = "failed"
	OutcomeNoBase     = "rejected_no_base"
	OutcomeInProgress = "rejected_in_progress"
	OutcomeRejected   = "rejected"
)

// Collector implements ports.SubmitObserver and records catalog refreshes.
//
// Example:
//
//	m := metrics.New(prometheus.DefaultRegisterer)
//	s, _ := store.New(gateway, store.WithObserver(m))
type Collector struct {
	submissions *prometheus.CounterVec
	inFlight    prometheus.Gauge
	duration    *prometheus.HistogramVec
	ingredients prometheus.Histogram
	catalogSize prometheus.Gauge
	lastRefresh prometheus.Gauge
	refreshes   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_submissions_total",
				Help:      "Order submissions by outcome.",
			},
			[]string{"outcome"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "order_submissions_in_flight",
			Help:      "Order submissions waiting for the order endpoint.",
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_submission_duration_seconds",
				Help:      "Time spent waiting for the order endpoint.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),
		ingredients: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_ingredients",
			Help:      "Number of ingredient ids sent per submission.",
			Buckets:   prometheus.LinearBuckets(1, 2, 8),
		}),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_ingredients",
			Help:      "Ingredients currently held in the catalog cache.",
		}),
		lastRefresh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful catalog load.",
		}),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_refreshes_total",
				Help:      "Catalog cache refreshes by result.",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(c.submissions, c.inFlight, c.duration, c.ingredients, c.catalogSize, c.lastRefresh, c.refreshes)
	return c
}

// SubmitStarted implements ports.SubmitObserver.
func (c *Collector) SubmitStarted(ingredientCount int) {
	c.inFlight.Inc()
	c.ingredients.Observe(float64(ingredientCount))
}

// SubmitSucceeded implements ports.SubmitObserver.
func (c *Collector) SubmitSucceeded(_ *order.Record, elapsed time.Duration) {
	c.inFlight.Dec()
	c.submissions.WithLabelValues(OutcomeSucceeded).Inc()
	c.duration.WithLabelValues(OutcomeSucceeded).Observe(elapsed.Seconds())
}

// SubmitFailed implements ports.SubmitObserver.
func (c *Collector) SubmitFailed(_ error, elapsed time.Duration) {
	c.inFlight.Dec()
	c.submissions.WithLabelValues(OutcomeFailed).Inc()
	c.duration.WithLabelValues(OutcomeFailed).Observe(elapsed.Seconds())
}

// SubmitRejected implements ports.SubmitObserver.
func (c *Collector) SubmitRejected(reason error) {
	c.submissions.WithLabelValues(rejectionOutcome(reason)).Inc()
}

// CatalogRefreshed records a catalog cache refresh. The timestamp gauge
// follows the last successful load, so a failing database shows as staleness.
func (c *Collector) CatalogRefreshed(size int, refreshedAt time.Time, err error) {
	if !refreshedAt.IsZero() {
		c.lastRefresh.Set(float64(refreshedAt.UnixNano()) / float64(time.Second))
	}
	if err != nil {
		c.refreshes.WithLabelValues("error").Inc()
		return
	}
	c.refreshes.WithLabelValues("ok").Inc()
	c.catalogSize.Set(float64(size))
}

func rejectionOutcome(reason error) string {
	switch {
	case errors.Is(reason, store.ErrBaseIsRequired):
		return OutcomeNoBase
	case errors.Is(reason, store.ErrSubmissionInProgress):
		return OutcomeInProgress
	default:
		return OutcomeRejected
	}
}
