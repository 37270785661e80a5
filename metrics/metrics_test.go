package metrics

import (
	"math/big"
	"testing"
	"time"

	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func resetMetrics(t *testing.T) *prometheus.Registry {
	t.Helper()
	mutex.Lock()
	initialized = false
	mutex.Unlock()
	reg := prometheus.NewRegistry()
	initMetrics(reg, "test")
	return reg
}

func operationCount(op workflow.Operation, phase workflow.Phase, kind workflow.Kind) float64 {
	return testutil.ToFloat64(counters[metricOperationCount].With(map[string]string{
		labelEnv: "test", labelOperation: string(op), labelPhase: string(phase), labelErrorKind: string(kind),
	}))
}

func TestNotInitialized(t *testing.T) {
	mutex.Lock()
	initialized = false
	mutex.Unlock()
	require.NotPanics(t, func() {
		RecordOperation(workflow.OpApprove, workflow.PhaseStarted, "")
		RecordStatus(workflow.StatusApproving)
		RecordDeposit("ckUSDC", workflow.TxConfirmed, big.NewInt(1), 6)
	})
}

func TestRegisterTwice(t *testing.T) {
	reg := resetMetrics(t)
	initMetrics(reg, "test")
	families, err := reg.Gather()
	require.NoError(t, err)
	// nothing is exported before the first observation
	require.Empty(t, families)

	RecordGeneration(3)
	require.Equal(t, 3.0, testutil.ToFloat64(gauges[metricWorkflowGeneration].With(map[string]string{labelEnv: "test"})))
}

func TestWorkflowObserver(t *testing.T) {
	resetMetrics(t)
	o := NewWorkflowObserver("ckSepoliaUSDC", 6)
	now := time.Now()
	hash := common.HexToHash("0xabc")
	deposit := &workflow.DepositTransaction{
		DepositIntent: workflow.DepositIntent{Amount: big.NewInt(100000000)},
		Hash:          hash,
		Status:        workflow.TxPending,
	}

	o.OnEvent(workflow.Event{
		Operation: workflow.OpDeposit, Phase: workflow.PhaseStarted, Time: now,
		State: workflow.State{Status: workflow.StatusDepositing, InFlight: workflow.OpDeposit},
	})
	o.OnEvent(workflow.Event{
		Operation: workflow.OpDeposit, Phase: workflow.PhaseSubmitted, TxHash: hash, Time: now.Add(time.Second),
		State: workflow.State{Status: workflow.StatusAwaitingConfirmation, InFlight: workflow.OpDeposit, Deposit: deposit},
	})

	status := func(s workflow.Status) float64 {
		return testutil.ToFloat64(gauges[metricWorkflowStatus].With(map[string]string{labelEnv: "test", labelStatus: string(s)}))
	}
	require.Equal(t, 1.0, status(workflow.StatusAwaitingConfirmation))
	require.Equal(t, 0.0, status(workflow.StatusDepositing))
	require.Equal(t, 1.0, testutil.ToFloat64(gauges[metricOperationInFlight].With(map[string]string{labelEnv: "test", labelOperation: string(workflow.OpDeposit)})))

	confirmed := *deposit
	confirmed.Status = workflow.TxConfirmed
	o.OnEvent(workflow.Event{
		Operation: workflow.OpDeposit, Phase: workflow.PhaseConfirmed, TxHash: hash, Time: now.Add(30 * time.Second),
		State: workflow.State{Status: workflow.StatusVerifying, InFlight: workflow.OpDeposit, Deposit: &confirmed},
	})
	o.OnEvent(workflow.Event{
		Operation: workflow.OpDeposit, Phase: workflow.PhaseSucceeded, TxHash: hash, Time: now.Add(31 * time.Second),
		State: workflow.State{Status: workflow.StatusVerified, Deposit: &confirmed},
	})

	require.Equal(t, 1.0, operationCount(workflow.OpDeposit, workflow.PhaseStarted, ""))
	require.Equal(t, 1.0, operationCount(workflow.OpDeposit, workflow.PhaseSubmitted, ""))
	require.Equal(t, 1.0, operationCount(workflow.OpDeposit, workflow.PhaseSucceeded, ""))
	require.Equal(t, 1.0, status(workflow.StatusVerified))
	require.Equal(t, 0.0, testutil.ToFloat64(gauges[metricOperationInFlight].With(map[string]string{labelEnv: "test", labelOperation: string(workflow.OpDeposit)})))

	tokenLabels := map[string]string{labelEnv: "test", labelToken: "ckSepoliaUSDC"}
	require.Equal(t, 100.0, testutil.ToFloat64(counters[metricDepositTotalAmount].With(tokenLabels)))
	require.Equal(t, 1.0, testutil.ToFloat64(counters[metricDepositCount].With(map[string]string{labelEnv: "test", labelToken: "ckSepoliaUSDC", labelStatus: string(workflow.TxPending)})))
	require.Equal(t, 1.0, testutil.ToFloat64(counters[metricDepositCount].With(map[string]string{labelEnv: "test", labelToken: "ckSepoliaUSDC", labelStatus: string(workflow.TxConfirmed)})))
	require.Equal(t, 1, testutil.CollectAndCount(histograms[metricDepositConfirmation]))
	require.Equal(t, 1, testutil.CollectAndCount(histograms[metricOperationLatency]))
	require.Empty(t, o.started)
	require.Empty(t, o.submitted)
}

func TestWorkflowObserverFailure(t *testing.T) {
	resetMetrics(t)
	o := NewWorkflowObserver("ckUSDC", 6)
	now := time.Now()
	hash := common.HexToHash("0xdef")
	failed := &workflow.DepositTransaction{
		DepositIntent: workflow.DepositIntent{Amount: big.NewInt(5)},
		Hash:          hash,
		Status:        workflow.TxFailed,
	}

	o.OnEvent(workflow.Event{Operation: workflow.OpApprove, Phase: workflow.PhaseStarted, Time: now,
		State: workflow.State{Status: workflow.StatusApproving, InFlight: workflow.OpApprove}})
	o.OnEvent(workflow.Event{Operation: workflow.OpApprove, Phase: workflow.PhaseFailed, Time: now.Add(time.Second),
		State: workflow.State{Status: workflow.StatusErrored, Err: &workflow.Error{Kind: workflow.KindApprovalFailed}}})
	require.Equal(t, 1.0, operationCount(workflow.OpApprove, workflow.PhaseFailed, workflow.KindApprovalFailed))

	o.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseFailed, TxHash: hash, Time: now.Add(2 * time.Second),
		State: workflow.State{Status: workflow.StatusErrored, Deposit: failed, Err: &workflow.Error{Kind: workflow.KindTransactionFailed}}})
	require.Equal(t, 1.0, testutil.ToFloat64(counters[metricDepositCount].With(map[string]string{labelEnv: "test", labelToken: "ckUSDC", labelStatus: string(workflow.TxFailed)})))
	require.Equal(t, 0.0, testutil.ToFloat64(counters[metricDepositTotalAmount].With(map[string]string{labelEnv: "test", labelToken: "ckUSDC"})))

	o.OnEvent(workflow.Event{Operation: workflow.OpRestart, Phase: workflow.PhaseSucceeded, Time: now.Add(3 * time.Second),
		State: workflow.State{Status: workflow.StatusIdle, Generation: 1}})
	require.Equal(t, 1.0, testutil.ToFloat64(gauges[metricWorkflowGeneration].With(map[string]string{labelEnv: "test"})))
}
