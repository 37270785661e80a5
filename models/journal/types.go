package journal

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Deposit status values stored in the journal
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Deposit is a submitted deposit tx as recorded in the journal
type Deposit struct {
	TxHash      common.Hash
	Asset       common.Address
	Amount      *big.Int
	Destination string
	Status      string
	BlockNumber uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
