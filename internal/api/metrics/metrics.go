// Package metrics defines and registers the custom Prometheus metrics for
// the EcoShop API. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly through promauto at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecoshop"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ProductMutationsTotal counts catalog writes.
// Label:
//   - op: "create", "update" or "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of product catalog mutations, by operation.",
	},
	[]string{"op"},
)

// CartUpdatesTotal counts cart writes.
// Label:
//   - op: "upsert" or "remove"
var CartUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_updates_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)
