package metrics

import (
	"math/big"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/prometheus/client_golang/prometheus"
)

// statuses lists every status exported by the status gauge, exactly one of
// them is set to 1 at any time
var statuses = []workflow.Status{
	workflow.StatusIdle,
	workflow.StatusAddressFetched,
	workflow.StatusApproving,
	workflow.StatusApproved,
	workflow.StatusDepositing,
	workflow.StatusAwaitingConfirmation,
	workflow.StatusVerifying,
	workflow.StatusVerified,
	workflow.StatusErrored,
}

var env string

func initMetrics(reg prometheus.Registerer, environment string) {
	mutex.Lock()
	if !initialized {
		registerer = reg
		gauges = make(map[string]*prometheus.GaugeVec)
		counters = make(map[string]*prometheus.CounterVec)
		histograms = make(map[string]*prometheus.HistogramVec)
		env = environment
		initialized = true
	}
	mutex.Unlock()

	registerCounter(prometheus.CounterOpts{Name: metricOperationCount}, labelEnv, labelOperation, labelPhase, labelErrorKind)
	registerHistogram(prometheus.HistogramOpts{Name: metricOperationLatency, Buckets: prometheus.ExponentialBuckets(0.1, 2, 12)}, labelEnv, labelOperation, labelPhase) //nolint:gomnd
	registerGauge(prometheus.GaugeOpts{Name: metricOperationInFlight}, labelEnv, labelOperation)
	registerCounter(prometheus.CounterOpts{Name: metricDepositCount}, labelEnv, labelToken, labelStatus)
	registerCounter(prometheus.CounterOpts{Name: metricDepositTotalAmount}, labelEnv, labelToken)
	registerHistogram(prometheus.HistogramOpts{Name: metricDepositConfirmation, Buckets: prometheus.ExponentialBuckets(1, 2, 12)}, labelEnv, labelToken) //nolint:gomnd
	registerGauge(prometheus.GaugeOpts{Name: metricWorkflowStatus}, labelEnv, labelStatus)
	registerGauge(prometheus.GaugeOpts{Name: metricWorkflowGeneration}, labelEnv)
}

// RecordOperation increments the operation count for the phase. errKind is
// empty unless the phase is a failure.
func RecordOperation(op workflow.Operation, phase workflow.Phase, errKind workflow.Kind) {
	counterInc(metricOperationCount, map[string]string{
		labelEnv:       env,
		labelOperation: string(op),
		labelPhase:     string(phase),
		labelErrorKind: string(errKind),
	})
}

// RecordOperationLatency records how long the operation took to reach its final phase
func RecordOperationLatency(op workflow.Operation, phase workflow.Phase, latency time.Duration) {
	histogramObserve(metricOperationLatency, latency.Seconds(), map[string]string{labelEnv: env, labelOperation: string(op), labelPhase: string(phase)})
}

// RecordInFlight sets the in-flight gauge of every operation, only op is set to 1
func RecordInFlight(op workflow.Operation) {
	for _, o := range []workflow.Operation{workflow.OpRequestAddress, workflow.OpApprove, workflow.OpDeposit, workflow.OpVerify} {
		v := 0.0
		if o == op {
			v = 1
		}
		gaugeSet(metricOperationInFlight, v, map[string]string{labelEnv: env, labelOperation: string(o)})
	}
}

// RecordStatus sets the status gauge
func RecordStatus(status workflow.Status) {
	for _, s := range statuses {
		v := 0.0
		if s == status {
			v = 1
		}
		gaugeSet(metricWorkflowStatus, v, map[string]string{labelEnv: env, labelStatus: string(s)})
	}
}

// RecordGeneration sets the restart generation gauge
func RecordGeneration(generation uint64) {
	gaugeSet(metricWorkflowGeneration, float64(generation), map[string]string{labelEnv: env})
}

// RecordDeposit counts one deposit tx by its chain status. Confirmed deposits
// also add their amount, in token units, to the total deposited amount.
func RecordDeposit(tokenSymbol string, status workflow.TxStatus, amount *big.Int, decimals int32) {
	counterInc(metricDepositCount, map[string]string{labelEnv: env, labelToken: tokenSymbol, labelStatus: string(status)})
	if status != workflow.TxConfirmed || amount == nil {
		return
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(amount), new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))).Float64() //nolint:gomnd
	counterAdd(metricDepositTotalAmount, f, map[string]string{labelEnv: env, labelToken: tokenSymbol})
}

// RecordDepositConfirmation records the time between the deposit submission and its confirmation
func RecordDepositConfirmation(tokenSymbol string, dur time.Duration) {
	histogramObserve(metricDepositConfirmation, dur.Seconds(), map[string]string{labelEnv: env, labelToken: tokenSymbol})
}

// WorkflowObserver turns the workflow events into metrics
type WorkflowObserver struct {
	tokenSymbol string
	decimals    int32

	started   map[workflow.Operation]time.Time
	submitted map[string]time.Time
}

// NewWorkflowObserver creates an observer for the deposits of the given token
func NewWorkflowObserver(tokenSymbol string, decimals int32) *WorkflowObserver {
	return &WorkflowObserver{
		tokenSymbol: tokenSymbol,
		decimals:    decimals,
		started:     make(map[workflow.Operation]time.Time),
		submitted:   make(map[string]time.Time),
	}
}

// OnEvent implements workflow.Observer. The workflow delivers the events
// from a single goroutine at a time, so the observer keeps no lock.
func (o *WorkflowObserver) OnEvent(e workflow.Event) {
	var errKind workflow.Kind
	if e.Phase == workflow.PhaseFailed && e.State.Err != nil {
		errKind = e.State.Err.Kind
	}
	RecordOperation(e.Operation, e.Phase, errKind)
	RecordStatus(e.State.Status)
	RecordInFlight(e.State.InFlight)
	RecordGeneration(e.State.Generation)

	switch e.Phase {
	case workflow.PhaseStarted:
		o.started[e.Operation] = e.Time
	case workflow.PhaseSucceeded, workflow.PhaseFailed:
		if start, ok := o.started[e.Operation]; ok {
			RecordOperationLatency(e.Operation, e.Phase, e.Time.Sub(start))
			delete(o.started, e.Operation)
		}
	}
	if e.Operation == workflow.OpRestart {
		o.started = make(map[workflow.Operation]time.Time)
		o.submitted = make(map[string]time.Time)
		return
	}
	if e.Operation != workflow.OpDeposit || e.State.Deposit == nil {
		return
	}

	hash := e.TxHash.Hex()
	switch {
	case e.Phase == workflow.PhaseSubmitted:
		o.submitted[hash] = e.Time
		RecordDeposit(o.tokenSymbol, workflow.TxPending, nil, o.decimals)
	case e.Phase == workflow.PhaseConfirmed:
		if at, ok := o.submitted[hash]; ok {
			RecordDepositConfirmation(o.tokenSymbol, e.Time.Sub(at))
			delete(o.submitted, hash)
		}
		RecordDeposit(o.tokenSymbol, workflow.TxConfirmed, e.State.Deposit.Amount, o.decimals)
		log.Debugf("deposit %s of %s confirmed", hash, e.State.Deposit.Amount.String())
	case e.Phase == workflow.PhaseFailed && e.TxHash == e.State.Deposit.Hash && e.State.Deposit.Status == workflow.TxFailed:
		delete(o.submitted, hash)
		RecordDeposit(o.tokenSymbol, workflow.TxFailed, nil, o.decimals)
	}
}
