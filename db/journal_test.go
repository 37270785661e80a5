package db

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/cketh-starter/ckusdc-depositor/models/journal"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/mock"
)

var (
	txHash = common.HexToHash("0xabc")
	asset  = common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238")
)

func depositState(status workflow.TxStatus) workflow.State {
	return workflow.State{
		Status: workflow.StatusAwaitingConfirmation,
		Deposit: &workflow.DepositTransaction{
			DepositIntent: workflow.DepositIntent{Asset: asset, Amount: big.NewInt(7), Destination: "0x01"},
			Hash:          txHash,
			Status:        status,
			BlockNumber:   12,
		},
	}
}

func TestJournalRecordsDeposit(t *testing.T) {
	storage := newStorageMock(t)
	j := NewJournal(storage)

	storage.On("AddDeposit", mock.Anything, mock.MatchedBy(func(d *journal.Deposit) bool {
		return d.TxHash == txHash && d.Asset == asset && d.Amount.Int64() == 7 && d.Status == journal.StatusPending
	}), pgx.Tx(nil)).Return(nil).Once()
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseSubmitted, TxHash: txHash, State: depositState(workflow.TxPending)})

	storage.On("UpdateDepositStatus", mock.Anything, txHash, journal.StatusConfirmed, uint64(12), pgx.Tx(nil)).Return(nil).Once()
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseConfirmed, TxHash: txHash, State: depositState(workflow.TxConfirmed)})

	storage.On("UpdateDepositStatus", mock.Anything, txHash, journal.StatusFailed, uint64(12), pgx.Tx(nil)).Return(errors.New("db down")).Once()
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseFailed, TxHash: txHash, State: depositState(workflow.TxFailed)})
}

func TestJournalRecordsVerification(t *testing.T) {
	storage := newStorageMock(t)
	j := NewJournal(storage)
	record := &verification.Record{TxHash: txHash, Outcome: json.RawMessage(`{}`), VerifiedAt: time.Now()}

	storage.On("AddVerification", mock.Anything, record, pgx.Tx(nil)).Return(nil).Once()
	j.OnEvent(workflow.Event{
		Operation: workflow.OpVerify,
		Phase:     workflow.PhaseSucceeded,
		TxHash:    txHash,
		State:     workflow.State{Status: workflow.StatusVerified, Verification: record},
	})
}

func TestJournalIgnoresOtherEvents(t *testing.T) {
	storage := newStorageMock(t)
	j := NewJournal(storage)

	j.OnEvent(workflow.Event{Operation: workflow.OpApprove, Phase: workflow.PhaseSucceeded, State: workflow.State{Status: workflow.StatusApproved}})
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseStarted, State: workflow.State{Status: workflow.StatusDepositing}})
	// a timed out watch keeps the deposit pending
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseFailed, State: depositState(workflow.TxPending)})
	// a submission failure after a failed round does not touch the old deposit
	j.OnEvent(workflow.Event{Operation: workflow.OpDeposit, Phase: workflow.PhaseFailed, State: depositState(workflow.TxFailed)})
	storage.AssertNotCalled(t, "UpdateDepositStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
