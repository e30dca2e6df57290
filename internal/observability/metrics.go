package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "cv_api_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_api_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_api_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// RenderedDocuments tracks server-side CV renders per template
	RenderedDocuments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_api_rendered_documents_total",
			Help: "Number of server-side CV renders",
		},
		[]string{"template", "export_mode"},
	)

	// PDFConversions tracks PDF conversion attempts per stage outcome
	PDFConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_api_pdf_conversions_total",
			Help: "Number of PDF conversion attempts",
		},
		[]string{"stage", "status"},
	)

	// PDFConversionDuration tracks end-to-end conversion latency
	PDFConversionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "cv_api_pdf_conversion_duration_seconds",
			Help: "End-to-end duration of PDF conversions in seconds",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cv_api_active_connections",
			Help: "Number of active connections",
		},
	)
)
