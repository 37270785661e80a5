package verification

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DepositAddressResponse is the body returned by GET /deposit-address
type DepositAddressResponse struct {
	Address string `json:"address"`
}

// VerifyRequest is the body of POST /verify
type VerifyRequest struct {
	TxHash string `json:"tx_hash"`
}

// Record is the outcome of verifying a deposit tx. The verifier never changes
// it once returned, so it can be cached forever.
type Record struct {
	TxHash     common.Hash     `json:"tx_hash"`
	Outcome    json.RawMessage `json:"outcome"`
	VerifiedAt time.Time       `json:"verified_at"`
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Outcome = append(json.RawMessage(nil), r.Outcome...)
	return &c
}
