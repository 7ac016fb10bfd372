package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_http_requests_total",
		Help: "Total HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	OrdersFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_finalized_total",
		Help: "Orders finalized since start",
	})

	InvoicesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_invoices_generated_total",
		Help: "Invoices generated by output category",
	}, []string{"category"})

	InvoiceRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_invoice_render_duration_seconds",
		Help:    "Time spent rendering one invoice document",
		Buckets: prometheus.DefBuckets,
	})
)
