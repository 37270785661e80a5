package etherman

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/utils"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

const (
	defaultPollInterval = time.Second

	// PurposeApprove and PurposeDeposit are shown to the wallet owner when signing
	PurposeApprove = "approve token spending"
	PurposeDeposit = "deposit into minter helper"
)

type ethClienter interface {
	bind.ContractBackend
	ethereum.TransactionReader
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Signer is the subset of the wallet used to authorize and sign txs
type Signer interface {
	Address() common.Address
	SignTx(ctx context.Context, purpose string, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Client submits the deposit flow txs to L1 and watches them until they are final
type Client struct {
	EtherClient ethClienter
	cfg         Config
	chainID     *big.Int
	signer      Signer
	token       *bind.BoundContract
	helper      *bind.BoundContract
	tokenAddr   common.Address
	helperAddr  common.Address
}

// NewClient dials the L1 node and binds the token and minter helper contracts
func NewClient(ctx context.Context, cfg Config, tokenAddr, helperAddr common.Address, signer Signer) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	return newClient(ctx, ethClient, cfg, tokenAddr, helperAddr, signer)
}

func newClient(ctx context.Context, ethClient ethClienter, cfg Config, tokenAddr, helperAddr common.Address, signer Signer) (*Client, error) {
	if signer == nil {
		return nil, fmt.Errorf("a signer is required")
	}
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting chain id: %w", err)
	}
	if cfg.PollInterval.Duration <= 0 {
		cfg.PollInterval.Duration = defaultPollInterval
	}
	return &Client{
		EtherClient: ethClient,
		cfg:         cfg,
		chainID:     chainID,
		signer:      signer,
		token:       bind.NewBoundContract(tokenAddr, erc20Parsed, ethClient, ethClient, ethClient),
		helper:      bind.NewBoundContract(helperAddr, minterHelperParsed, ethClient, ethClient, ethClient),
		tokenAddr:   tokenAddr,
		helperAddr:  helperAddr,
	}, nil
}

// ChainID returns the chain id reported by the node at start up
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// HelperAddress returns the minter helper contract, the spender of every approval
func (c *Client) HelperAddress() common.Address {
	return c.helperAddr
}

// FetchDepositAddress derives the bytes32 deposit address from the configured custodial principal
func (c *Client) FetchDepositAddress(ctx context.Context) (string, error) {
	if c.cfg.DepositPrincipal == "" {
		return "", fmt.Errorf("%w: no deposit principal configured", gerror.ErrAddressFetchFailed)
	}
	addr, err := utils.PrincipalToDepositAddress(c.cfg.DepositPrincipal)
	if err != nil {
		return "", fmt.Errorf("%w: %v", gerror.ErrAddressFetchFailed, err)
	}
	log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx)).Debugf("deposit address %s derived from principal %s", addr, c.cfg.DepositPrincipal)
	return addr, nil
}

// Allowance returns how much of the signer's tokens the spender may still move
func (c *Client) Allowance(ctx context.Context, spender common.Address) (*big.Int, error) {
	var out []interface{}
	owner := c.signer.Address()
	err := c.token.Call(&bind.CallOpts{Context: ctx, From: owner}, &out, "allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("error reading allowance: %w", err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// SubmitApproval sends the ERC20 approve(spender, amount) tx and returns its hash
func (c *Client) SubmitApproval(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error) {
	tx, err := c.token.Transact(c.transactOpts(ctx, PurposeApprove), methodApprove, spender, amount)
	if err != nil {
		return common.Hash{}, submissionError(err)
	}
	log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx), "txHash", tx.Hash().String()).
		Infof("approval of %s for spender %s sent", amount.String(), spender.String())
	return tx.Hash(), nil
}

// SubmitDeposit sends the helper deposit(asset, amount, destination) tx and returns its hash
func (c *Client) SubmitDeposit(ctx context.Context, asset common.Address, amount *big.Int, destination string) (common.Hash, error) {
	dest, err := utils.HexToBytes32(destination)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: destination %q: %v", gerror.ErrSubmissionFailed, destination, err)
	}
	tx, err := c.helper.Transact(c.transactOpts(ctx, PurposeDeposit), methodDeposit, asset, amount, dest)
	if err != nil {
		return common.Hash{}, submissionError(err)
	}
	log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx), "txHash", tx.Hash().String()).
		Infof("deposit of %s of token %s to %s sent", amount.String(), asset.String(), destination)
	return tx.Hash(), nil
}

// AwaitConfirmation blocks until the tx is mined with enough confirmations, reverted or dropped
func (c *Client) AwaitConfirmation(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	logger := log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx), "txHash", txHash.String())
	ticker := time.NewTicker(c.cfg.PollInterval.Duration)
	defer ticker.Stop()

	missing := 0
	for {
		receipt, err := c.EtherClient.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			missing = 0
			if receipt.Status == types.ReceiptStatusFailed {
				logger.Warnf("tx reverted in block %d", receipt.BlockNumber.Uint64())
				return receipt, fmt.Errorf("%w: block %d", gerror.ErrTransactionReverted, receipt.BlockNumber.Uint64())
			}
			confirmed, err := c.isConfirmed(ctx, receipt)
			if err != nil {
				logger.Warnf("error getting the block number: %v", err)
			} else if confirmed {
				logger.Infof("tx confirmed in block %d", receipt.BlockNumber.Uint64())
				return receipt, nil
			}
		case errors.Is(err, ethereum.NotFound):
			dropped, err := c.isDropped(ctx, txHash, &missing)
			if err != nil {
				logger.Warnf("error getting tx by hash: %v", err)
			} else if dropped {
				logger.Warnf("tx not found after %d retries, considered dropped", missing)
				return nil, fmt.Errorf("%w: not found after %d retries", gerror.ErrTransactionDropped, missing)
			}
		default:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warnf("error getting tx receipt: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) isConfirmed(ctx context.Context, receipt *types.Receipt) (bool, error) {
	if c.cfg.Confirmations == 0 {
		return true, nil
	}
	head, err := c.EtherClient.BlockNumber(ctx)
	if err != nil {
		return false, err
	}
	mined := receipt.BlockNumber.Uint64()
	return head >= mined && head-mined >= c.cfg.Confirmations, nil
}

// isDropped checks the pool once the receipt is missing, a tx absent from both
// for DropRetries consecutive polls is dropped
func (c *Client) isDropped(ctx context.Context, txHash common.Hash, missing *int) (bool, error) {
	_, _, err := c.EtherClient.TransactionByHash(ctx, txHash)
	if err == nil {
		*missing = 0
		return false, nil
	}
	if !errors.Is(err, ethereum.NotFound) {
		return false, err
	}
	*missing++
	return c.cfg.DropRetries > 0 && *missing >= c.cfg.DropRetries, nil
}

func (c *Client) transactOpts(ctx context.Context, purpose string) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:     c.signer.Address(),
		Context:  ctx,
		GasLimit: c.cfg.GasLimit,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return c.signer.SignTx(ctx, purpose, tx, c.chainID)
		},
	}
}

func submissionError(err error) error {
	if errors.Is(err, gerror.ErrSigningRejected) {
		return err
	}
	return fmt.Errorf("%w: %w", gerror.ErrSubmissionFailed, err)
}
