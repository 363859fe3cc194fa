package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DiscoveryQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cuisto_discovery_query_duration_seconds",
			Help:    "Duration of discovery queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	DiscoveryQueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuisto_discovery_query_failures_total",
			Help: "Discovery queries that failed and were answered with an empty list",
		},
		[]string{"query"},
	)

	DiscoverySectionsHidden = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuisto_discovery_sections_hidden_total",
			Help: "Discovery sections dropped for having too few recipes",
		},
		[]string{"section"},
	)

	WaitlistSignups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuisto_waitlist_signups_total",
			Help: "Waitlist signups by outcome",
		},
		[]string{"result"}, // joined, duplicate, invalid, failed
	)

	MailFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cuisto_mail_failures_total",
			Help: "Outgoing mails that could not be delivered",
		},
	)
)

// ObserveDiscoveryQuery records the duration of a discovery query and,
// when failed is true, counts it as a failure.
func ObserveDiscoveryQuery(query string, start time.Time, failed bool) {
	DiscoveryQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if failed {
		DiscoveryQueryFailures.WithLabelValues(query).Inc()
	}
}
