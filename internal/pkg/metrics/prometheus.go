package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	unitOfWork      *prometheus.CounterVec
	repositoryWrite *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

var _ Metrics = (*Prometheus)(nil)

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		unitOfWork: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "shop_unit_of_work_total",
			Help:        "Units of work closed, by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"outcome"}),
		repositoryWrite: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "shop_repository_writes_total",
			Help:        "Repository write operations, by entity, operation and outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"entity", "operation", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "shop_http_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
	}

	reg.MustRegister(
		m.unitOfWork,
		m.repositoryWrite,
		m.httpDuration,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordUnitOfWork(outcome string) {
	p.unitOfWork.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) RecordRepositoryWrite(entity, operation, outcome string) {
	p.repositoryWrite.WithLabelValues(entity, operation, outcome).Inc()
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}
