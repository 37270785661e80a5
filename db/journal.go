package db

import (
	"context"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/models/journal"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
)

const journalTimeout = 5 * time.Second

// Journal records the deposits and verifications published by a workflow
type Journal struct {
	storage Storage
	timeout time.Duration
}

// NewJournal creates a workflow observer writing to storage
func NewJournal(storage Storage) *Journal {
	return &Journal{storage: storage, timeout: journalTimeout}
}

// OnEvent implements workflow.Observer
func (j *Journal) OnEvent(e workflow.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	if err := j.record(ctx, e); err != nil {
		log.WithFields("operation", e.Operation, "phase", e.Phase, "txHash", e.TxHash.Hex()).
			Errorf("error writing the deposit journal: %v", err)
	}
}

func (j *Journal) record(ctx context.Context, e workflow.Event) error {
	s := e.State
	switch {
	case e.Operation == workflow.OpDeposit && e.Phase == workflow.PhaseSubmitted && s.Deposit != nil:
		return j.storage.AddDeposit(ctx, &journal.Deposit{
			TxHash:      s.Deposit.Hash,
			Asset:       s.Deposit.Asset,
			Amount:      s.Deposit.Amount,
			Destination: s.Deposit.Destination,
			Status:      journal.StatusPending,
		}, nil)
	case e.Operation == workflow.OpDeposit && e.Phase == workflow.PhaseConfirmed && s.Deposit != nil:
		return j.storage.UpdateDepositStatus(ctx, s.Deposit.Hash, journal.StatusConfirmed, s.Deposit.BlockNumber, nil)
	case e.Operation == workflow.OpDeposit && e.Phase == workflow.PhaseFailed &&
		s.Deposit != nil && s.Deposit.Hash == e.TxHash && s.Deposit.Status == workflow.TxFailed:
		return j.storage.UpdateDepositStatus(ctx, s.Deposit.Hash, journal.StatusFailed, s.Deposit.BlockNumber, nil)
	case e.Phase == workflow.PhaseSucceeded && s.Status == workflow.StatusVerified && s.Verification != nil:
		return j.storage.AddVerification(ctx, s.Verification, nil)
	}
	return nil
}
