// Package metrics holds the Prometheus instruments for the live hub and
// the background loops.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Live hub
	Subscribers         *prometheus.GaugeVec   // per topic
	UpdatesSent         *prometheus.CounterVec // per topic, per kind
	UpdatesDropped      *prometheus.CounterVec // per topic (slow subscribers)
	SubscriberEvictions *prometheus.CounterVec

	// Poller
	PollTicks      *prometheus.CounterVec // per topic
	PollDuration   *prometheus.HistogramVec
	UpstreamErrors *prometheus.CounterVec // per endpoint

	// Standings refresher
	StandingsRefreshes *prometheus.CounterVec // per league, per result
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Subscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "afcon_live_subscribers",
			Help: "Connected live-stream subscribers per topic",
		}, []string{"topic"}),
		UpdatesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_live_updates_sent_total",
			Help: "Updates delivered to subscriber buffers",
		}, []string{"topic", "kind"}),
		UpdatesDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_live_updates_dropped_total",
			Help: "Updates dropped due to full subscriber buffers",
		}, []string{"topic"}),
		SubscriberEvictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_live_subscriber_evictions_total",
			Help: "Subscribers evicted after repeated drops",
		}, []string{"topic"}),
		PollTicks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_poll_ticks_total",
			Help: "Upstream poll cycles per topic",
		}, []string{"topic"}),
		PollDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "afcon_poll_duration_seconds",
			Help:    "Duration of one poll cycle",
			Buckets: prometheus.DefBuckets,
		}, []string{"topic"}),
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_upstream_errors_total",
			Help: "Upstream call failures by endpoint",
		}, []string{"endpoint"}),
		StandingsRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "afcon_standings_refreshes_total",
			Help: "Standings refresh attempts by result",
		}, []string{"league", "result"}),
	}
}
