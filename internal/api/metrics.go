package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tasksCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frigosmart_tasks_completed_total",
			Help: "Number of cleaning tasks completed",
		},
	)

	shopPurchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frigosmart_shop_purchases_total",
			Help: "Number of shop purchases by category",
		},
		[]string{"category"},
	)

	gachaDraws = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frigosmart_gacha_draws_total",
			Help: "Number of daily gacha draws",
		},
	)

	advisorFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frigosmart_advisor_failures_total",
			Help: "Number of failed assistant calls by operation",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(tasksCompleted, shopPurchases, gachaDraws, advisorFailures)
}
