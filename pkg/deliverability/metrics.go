package deliverability

import "github.com/zeromicro/go-zero/core/metric"

var (
	analysesTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "deliverability",
		Name:      "analyses_total",
		Help:      "Total markup analyses performed",
		Labels:    []string{"bucket"},
	})

	scoreObserved = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "deliverability",
		Name:      "score",
		Help:      "Distribution of deliverability scores",
		Buckets:   []float64{0, 25, 50, 70, 80, 90, 95, 100},
	})
)
