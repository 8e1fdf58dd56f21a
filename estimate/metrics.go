package estimate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "avgdist"

// Outcome label values for RunsTotal.
const (
	outcomeOK             = "ok"
	outcomeInsufficient   = "insufficient_reachable"
	outcomeNoPairs        = "no_pairs"
	outcomeAllUnreachable = "all_unreachable"
	outcomeCanceled       = "canceled"
)

// Metrics groups the Prometheus instruments updated by an Estimator.
type Metrics struct {
	RunsTotal        *prometheus.CounterVec
	PairsSampled     prometheus.Counter
	PairsCounted     prometheus.Counter
	PairsUnreachable prometheus.Counter
	QueryDuration    prometheus.Histogram
}

// NewMetrics creates the instruments and registers them with reg.
// A nil reg leaves them unregistered. Instruments already registered on
// reg by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Estimation runs by outcome.",
		}, []string{"outcome"}),
		PairsSampled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_sampled_total",
			Help:      "Distinct vertex pairs drawn by the sampler.",
		}),
		PairsCounted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_counted_total",
			Help:      "Sampled pairs with a finite shortest-path distance.",
		}),
		PairsUnreachable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_unreachable_total",
			Help:      "Sampled pairs with no path between them.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_duration_seconds",
			Help:      "Duration of single shortest-path BFS queries.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
	if reg == nil {
		return m
	}
	m.RunsTotal = register(reg, m.RunsTotal)
	m.PairsSampled = register(reg, m.PairsSampled)
	m.PairsCounted = register(reg, m.PairsCounted)
	m.PairsUnreachable = register(reg, m.PairsUnreachable)
	m.QueryDuration = register(reg, m.QueryDuration)
	return m
}

// register adds c to reg, returning the existing collector on conflict.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

// outcomeOf maps a Run error to its RunsTotal label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrInsufficientReachable):
		return outcomeInsufficient
	case errors.Is(err, ErrNoPairsFormed):
		return outcomeNoPairs
	case errors.Is(err, ErrAllPairsUnreachable):
		return outcomeAllUnreachable
	default:
		return outcomeCanceled
	}
}
