package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors for the metering core. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	MeteringEvents   *prometheus.CounterVec
	BilledAmount     *prometheus.CounterVec
	AutoPauses       *prometheus.CounterVec
	FraudRejections  *prometheus.CounterVec
	MeteringDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on a fresh registry so tests can build
// as many instances as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		MeteringEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ads_metering_events_total",
			Help: "Metering calls by event type and outcome",
		}, []string{"event_type", "outcome"}),
		BilledAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ads_billed_amount_total",
			Help: "Money debited from seller wallets by event type",
		}, []string{"event_type"}),
		AutoPauses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ads_auto_pauses_total",
			Help: "Ads auto-paused by reason",
		}, []string{"reason"}),
		FraudRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ads_fraud_rejections_total",
			Help: "Events dropped by the fraud guard by rule",
		}, []string{"rule"}),
		MeteringDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ads_metering_duration_seconds",
			Help:    "Latency of a metering call",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"event_type"}),
	}
	reg.MustRegister(
		m.MeteringEvents,
		m.BilledAmount,
		m.AutoPauses,
		m.FraudRejections,
		m.MeteringDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveEvent(eventType, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.MeteringEvents.WithLabelValues(eventType, outcome).Inc()
	m.MeteringDuration.WithLabelValues(eventType).Observe(seconds)
}

func (m *Metrics) AddBilled(eventType string, amount float64) {
	if m == nil {
		return
	}
	m.BilledAmount.WithLabelValues(eventType).Add(amount)
}

func (m *Metrics) IncAutoPause(reason string) {
	if m == nil {
		return
	}
	m.AutoPauses.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncFraudRejection(rule string) {
	if m == nil {
		return
	}
	m.FraudRejections.WithLabelValues(rule).Inc()
}
