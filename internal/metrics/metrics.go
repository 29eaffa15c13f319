// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billsplitter"

var (
	// RPCDuration observes Connect RPC latency by procedure and result code.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Duration of Connect RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure", "code"})

	// StatsCacheLookups counts contact stats cache lookups by result.
	StatsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_lookups_total",
		Help:      "Contact stats cache lookups, labelled hit or miss.",
	}, []string{"result"})

	// StatsCacheEntries is the current number of cached contact ledgers.
	StatsCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stats_cache_entries",
		Help:      "Contact ledgers held in the stats cache.",
	})

	// BillValidationFailures counts rejected bills by validation message.
	BillValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bill_validation_failures_total",
		Help:      "Bill validation failures by message.",
	}, []string{"reason"})

	// PendingBills is the number of pending bills at the last digest run.
	PendingBills = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_bills",
		Help:      "Pending bills at the last digest run.",
	})

	// OutstandingAmount is the amount still owed to bill owners on pending
	// bills at the last digest run.
	OutstandingAmount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "outstanding_amount",
		Help:      "Amount owed to bill owners on pending bills at the last digest run.",
	})
)
