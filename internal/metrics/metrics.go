package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FoodPostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_food_posts_created_total",
		Help: "Total number of surplus food posts successfully created.",
	})

	FoodPostsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_food_posts_expired_total",
		Help: "Total number of food posts moved to EXPIRED.",
	})

	MatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_matches_created_total",
		Help: "Total number of matches successfully created.",
	})

	DeliveriesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_deliveries_completed_total",
		Help: "Total number of matches that reached DELIVERED.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbridge_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	AuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_auth_failures_total",
		Help: "Total number of failed basic auth attempts.",
	})

	MatchCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "foodbridge_match_cache_items",
		Help: "Current number of items in the match cache.",
	})
)
