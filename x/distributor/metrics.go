package distributor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Accrual engine metrics. Counters are incremented by the controller, so
// operations that are later rolled back by the host are counted as well.
var (
	mIncomes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "revenue",
		Subsystem: "distributor",
		Name:      "incomes_total",
		Help:      "Number of registered incomes",
	})
	mIncomeAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "revenue",
		Subsystem: "distributor",
		Name:      "income_amount_total",
		Help:      "Sum of registered incomes",
	})
	mCatchUpIncomes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "revenue",
		Subsystem: "distributor",
		Name:      "catch_up_incomes",
		Help:      "Number of incomes integrated by a single holder catch-up",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
	mWithdrawals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "revenue",
		Subsystem: "distributor",
		Name:      "withdrawals_total",
		Help:      "Number of withdrawal attempts by result",
	}, []string{"result"})
	mPaid = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "revenue",
		Subsystem: "distributor",
		Name:      "paid_total",
		Help:      "Sum of payments made to holders",
	})
)
