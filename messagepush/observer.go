package messagepush

import (
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
)

// WorkflowPusher pushes every workflow event of a wallet to kafka
type WorkflowPusher struct {
	producer      KafkaProducer
	walletAddress string
}

// NewWorkflowPusher creates a workflow observer pushing through producer
func NewWorkflowPusher(producer KafkaProducer, wallet common.Address) *WorkflowPusher {
	return &WorkflowPusher{producer: producer, walletAddress: wallet.Hex()}
}

// OnEvent implements workflow.Observer. Push failures are logged, they never
// reach the workflow.
func (p *WorkflowPusher) OnEvent(e workflow.Event) {
	update := NewWorkflowUpdate(e)
	if err := p.producer.PushWorkflowUpdate(p.walletAddress, update); err != nil {
		log.WithFields("operation", e.Operation, "phase", e.Phase).Errorf("push workflow update error: %v", err)
	}
}

// NewWorkflowUpdate builds the pushed content of a workflow event
func NewWorkflowUpdate(e workflow.Event) *WorkflowUpdate {
	u := &WorkflowUpdate{
		Operation:      string(e.Operation),
		Phase:          string(e.Phase),
		Status:         string(e.State.Status),
		Generation:     e.State.Generation,
		DepositAddress: e.State.DepositAddress,
		Time:           e.Time.UnixMilli(),
	}
	if e.TxHash != (common.Hash{}) {
		u.TxHash = e.TxHash.Hex()
	}
	if d := e.State.Deposit; d != nil && d.Hash == e.TxHash {
		u.TxStatus = string(d.Status)
		if d.Amount != nil {
			u.Amount = d.Amount.String()
		}
	}
	if e.State.Err != nil {
		u.ErrorKind = string(e.State.Err.Kind)
		u.ErrorMessage = e.State.Err.Error()
	}
	return u
}
