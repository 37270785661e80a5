package metrics

const (
	defaultMetricsEndpoint = "/metrics"
)

// Metric types
const (
	typeGauge     = "gauge"
	typeCounter   = "counter"
	typeHistogram = "histogram"
)

// Metric names and labels
const (
	prefix   = "ckusdc_deposit_"
	labelEnv = "env"

	prefixOperation         = prefix + "operation_"
	metricOperationCount    = prefixOperation + "count"
	metricOperationLatency  = prefixOperation + "latency_sec"
	metricOperationInFlight = prefixOperation + "in_flight"
	labelOperation          = "operation"
	labelPhase              = "phase"
	labelErrorKind          = "error_kind"

	prefixDeposit             = prefix + "deposit_"
	metricDepositCount        = prefixDeposit + "count"
	metricDepositTotalAmount  = prefixDeposit + "total_amount"
	metricDepositConfirmation = prefixDeposit + "confirmation_sec"
	labelToken                = "token"

	metricWorkflowStatus = prefix + "status"
	labelStatus          = "status"

	metricWorkflowGeneration = prefix + "generation"
)
