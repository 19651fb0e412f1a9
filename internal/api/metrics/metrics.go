// Package metrics defines and registers the custom Prometheus metrics of the
// record store API. HTTP request metrics come from the echoprometheus
// middleware; this package only holds business counters.
//
// Collectors are created on package init and registered explicitly with
// Register, so every router can own its registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "recordstore"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "weak_password", "invalid", "duplicate" or "error"
var SignupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_email", "wrong_password" or "error"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsDeletedTotal counts hard-deleted accounts.
var AccountsDeletedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts catalog entries added.
// Label:
//   - result: "created", "invalid", "duplicate" or "error"
var ProductsCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of product creation attempts, by result.",
	},
	[]string{"result"},
)

// Register adds every business counter to reg. Collectors already present in
// reg are accepted.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		SignupsTotal,
		LoginsTotal,
		AccountsDeletedTotal,
		ProductsCreatedTotal,
	} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
