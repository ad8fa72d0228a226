package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Payment metrics
	PaymentsApplied  prometheus.Counter
	PaymentsNoOp     prometheus.Counter
	PaymentDuration  prometheus.Histogram
	PaymentAmount    prometheus.Histogram
	UnappliedRemains prometheus.Counter
	PaymentErrors    *prometheus.CounterVec
	InstallmentsPaid prometheus.Counter

	// Loan metrics
	LoansOriginated prometheus.Counter
	LoanOperations  *prometheus.CounterVec

	// Bulk ingestion metrics
	BulkBatches  prometheus.Counter
	BulkRows     *prometheus.CounterVec
	BulkDuration prometheus.Histogram

	// Reconciliation metrics
	ReconciliationRuns  prometheus.Counter
	ReconciliationDrift prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Payment metrics
		PaymentsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_payments_applied_total",
			Help: "Total number of payments applied",
		}),
		PaymentsNoOp: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_payments_noop_total",
			Help: "Total number of payments ignored against fully paid loans",
		}),
		PaymentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_payment_duration_seconds",
			Help:    "Duration of payment application",
			Buckets: prometheus.DefBuckets,
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_payment_amount",
			Help:    "Applied payment amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		UnappliedRemains: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_payments_unapplied_total",
			Help: "Total number of payments with an unapplied remainder",
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),
		InstallmentsPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_installments_paid_total",
			Help: "Total number of installments fully settled",
		}),

		// Loan metrics
		LoansOriginated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_originated_total",
			Help: "Total number of loans originated",
		}),
		LoanOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_loan_operations_total",
				Help: "Total loan operations by type",
			},
			[]string{"operation"},
		),

		// Bulk ingestion metrics
		BulkBatches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_bulk_batches_total",
			Help: "Total number of bulk batches processed",
		}),
		BulkRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_bulk_rows_total",
				Help: "Total bulk rows by outcome",
			},
			[]string{"status"},
		),
		BulkDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_bulk_duration_seconds",
			Help:    "Duration of bulk batch processing",
			Buckets: prometheus.DefBuckets,
		}),

		// Reconciliation metrics
		ReconciliationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_reconciliation_runs_total",
			Help: "Total number of reconciliation runs",
		}),
		ReconciliationDrift: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_reconciliation_drift_total",
			Help: "Total number of loans found with balance drift",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loanledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loanledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loanledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Audit metrics
		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
