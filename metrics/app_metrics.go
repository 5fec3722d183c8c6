package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AppMetrics counts the domain events the operators care about
type AppMetrics struct {
	FavoritesAdded       prometheus.Counter
	FavoritesRemoved     prometheus.Counter
	SupportSubmitted     prometheus.Counter
	SupportResponded     prometheus.Counter
	NotificationFailures *prometheus.CounterVec
}

var (
	appMetrics     *AppMetrics
	appMetricsOnce sync.Once
)

// GetAppMetrics returns the process-wide application metrics
func GetAppMetrics() *AppMetrics {
	appMetricsOnce.Do(func() {
		appMetrics = &AppMetrics{
			FavoritesAdded: promauto.NewCounter(prometheus.CounterOpts{
				Name: "favorites_added_total",
				Help: "The total number of favorites created",
			}),
			FavoritesRemoved: promauto.NewCounter(prometheus.CounterOpts{
				Name: "favorites_removed_total",
				Help: "The total number of favorites removed",
			}),
			SupportSubmitted: promauto.NewCounter(prometheus.CounterOpts{
				Name: "support_requests_submitted_total",
				Help: "The total number of support requests submitted",
			}),
			SupportResponded: promauto.NewCounter(prometheus.CounterOpts{
				Name: "support_requests_responded_total",
				Help: "The total number of support responses recorded",
			}),
			NotificationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "notification_failures_total",
				Help: "The total number of failed email notifications",
			}, []string{"path"}),
		}
	})
	return appMetrics
}
