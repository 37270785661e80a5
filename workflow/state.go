package workflow

import (
	"math/big"

	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
)

// TxStatus is the chain status of the deposit tx
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// DepositIntent is what the user asked to deposit, in base units
type DepositIntent struct {
	Asset       common.Address
	Amount      *big.Int
	Destination string
}

// ApprovalGrant is an allowance known from a confirmed approval tx
type ApprovalGrant struct {
	Spender common.Address
	Amount  *big.Int
	TxHash  common.Hash
}

// Covers reports whether the grant lets spender move amount
func (g *ApprovalGrant) Covers(spender common.Address, amount *big.Int) bool {
	return g != nil && g.Spender == spender && g.Amount != nil && g.Amount.Cmp(amount) >= 0
}

// DepositTransaction is the submitted deposit tx
type DepositTransaction struct {
	DepositIntent
	Hash        common.Hash
	Status      TxStatus
	BlockNumber uint64
}

// State is a snapshot of the workflow
type State struct {
	Status Status
	// Generation is bumped on every restart, results of older generations are dropped
	Generation uint64
	// InFlight is the operation holding the in-flight guard, if any
	InFlight       Operation
	DepositAddress string
	Grant          *ApprovalGrant
	ApprovalTxHash common.Hash
	Deposit        *DepositTransaction
	Verification   *verification.Record
	Err            *Error
}

// restingStatus derives the status of a state with no operation in flight
func (s *State) restingStatus() Status {
	switch {
	case s.Grant != nil:
		return StatusApproved
	case s.DepositAddress != "":
		return StatusAddressFetched
	default:
		return StatusIdle
	}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	c := s
	if s.Grant != nil {
		g := *s.Grant
		g.Amount = cloneInt(s.Grant.Amount)
		c.Grant = &g
	}
	if s.Deposit != nil {
		d := *s.Deposit
		d.Amount = cloneInt(s.Deposit.Amount)
		c.Deposit = &d
	}
	c.Verification = s.Verification.Clone()
	c.Err = s.Err.clone()
	return c
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
