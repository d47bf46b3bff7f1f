package advisor

import "github.com/prometheus/client_golang/prometheus"

const outcomeFallback = "fallback"

func newOutcomeCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giftai",
		Name:      "refinement_outcomes_total",
		Help:      "Refinement replies by outcome: suggestions, discussion or fallback to discussion.",
	}, []string{"outcome"})
}
