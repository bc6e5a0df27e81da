package delivery

import "github.com/zeromicro/go-zero/core/metric"

var (
	emailsSent = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "delivery",
		Name:      "emails_sent_total",
		Help:      "Total recipient emails sent successfully",
	})

	emailsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "delivery",
		Name:      "emails_failed_total",
		Help:      "Total send jobs failed permanently",
		Labels:    []string{"reason"},
	})

	emailsRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "delivery",
		Name:      "emails_retried_total",
		Help:      "Total send job delivery retries",
	})

	emailsSuppressed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "delivery",
		Name:      "emails_suppressed_total",
		Help:      "Total recipients skipped via the suppression list",
	})

	deliveryDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "delivery",
		Name:      "duration_milliseconds",
		Help:      "Send job delivery duration in milliseconds",
		Buckets:   []float64{100, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "plat_campaign",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current queue depth by status",
		Labels:    []string{"status"},
	})
)
