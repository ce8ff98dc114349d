package metrics

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	commissionsCalculated *prometheus.CounterVec
	commissionsPaid       prometheus.Counter
	allocations           *prometheus.CounterVec
	engineErrors          *prometheus.CounterVec
}

func newMetrics(registry *prometheus.Registry) *metrics {
	m := &metrics{
		commissionsCalculated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voltgrid_commissions_calculated_total",
			Help: "Commissions calculated at consumer approval.",
		}, []string{"representative_id"}),
		commissionsPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voltgrid_commissions_paid_total",
			Help: "Commissions transitioned to PAID.",
		}),
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voltgrid_allocations_total",
			Help: "Consumer-to-generator allocation operations.",
		}, []string{"operation"}),
		engineErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voltgrid_engine_errors_total",
			Help: "Engine operations rejected or failed, by operation.",
		}, []string{"operation"}),
	}

	registry.MustRegister(
		m.commissionsCalculated,
		m.commissionsPaid,
		m.allocations,
		m.engineErrors,
	)

	return m
}
