package workflow

import (
	"context"
	"math/big"

	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainClient submits and watches the approval and deposit txs
type ChainClient interface {
	FetchDepositAddress(ctx context.Context) (string, error)
	Allowance(ctx context.Context, spender common.Address) (*big.Int, error)
	SubmitApproval(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error)
	SubmitDeposit(ctx context.Context, asset common.Address, amount *big.Int, destination string) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// VerifierClient talks to the remote verifier
type VerifierClient interface {
	GetDepositAddress(ctx context.Context) (string, error)
	Verify(ctx context.Context, txHash string) (*verification.Record, error)
}
