package pgstorage

import (
	"context"
	"math/big"

	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/models/journal"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type execQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PostgresStorage implements the journal storage
type PostgresStorage struct {
	*pgxpool.Pool
}

// NewPostgresStorage creates a new journal storage
func NewPostgresStorage(cfg Config) (*PostgresStorage, error) {
	config, err := pgxpool.ParseConfig(cfg.connString())
	if err != nil {
		return nil, errors.Wrap(err, "parse db config")
	}
	if cfg.MaxConns > 0 {
		config.MaxConns = int32(cfg.MaxConns)
	}
	db, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, errors.Wrap(err, "connect to db")
	}
	return &PostgresStorage{db}, nil
}

func (p *PostgresStorage) getExecQuerier(dbTx pgx.Tx) execQuerier {
	if dbTx != nil {
		return &execQuerierWrapper{dbTx}
	}
	return &execQuerierWrapper{p}
}

// AddDeposit records a submitted deposit tx, a known hash is left untouched
func (p *PostgresStorage) AddDeposit(ctx context.Context, deposit *journal.Deposit, dbTx pgx.Tx) error {
	const addDepositSQL = `INSERT INTO journal.deposit (tx_hash, asset, amount, destination, status, block_num)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (tx_hash) DO NOTHING`
	amount := "0"
	if deposit.Amount != nil {
		amount = deposit.Amount.String()
	}
	_, err := p.getExecQuerier(dbTx).Exec(ctx, addDepositSQL, deposit.TxHash.Bytes(), deposit.Asset.Bytes(), amount,
		deposit.Destination, deposit.Status, deposit.BlockNumber)
	return err
}

// UpdateDepositStatus moves a recorded deposit to a new status
func (p *PostgresStorage) UpdateDepositStatus(ctx context.Context, txHash common.Hash, status string, blockNumber uint64, dbTx pgx.Tx) error {
	const updateDepositStatusSQL = `UPDATE journal.deposit SET status = $2, block_num = $3, updated_at = NOW() WHERE tx_hash = $1`
	tag, err := p.getExecQuerier(dbTx).Exec(ctx, updateDepositStatusSQL, txHash.Bytes(), status, blockNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return gerror.ErrStorageNotFound
	}
	return nil
}

// AddVerification records the verifier outcome of a tx
func (p *PostgresStorage) AddVerification(ctx context.Context, record *verification.Record, dbTx pgx.Tx) error {
	const addVerificationSQL = `INSERT INTO journal.verification (tx_hash, outcome, verified_at)
		VALUES ($1, $2, $3) ON CONFLICT (tx_hash) DO NOTHING`
	_, err := p.getExecQuerier(dbTx).Exec(ctx, addVerificationSQL, record.TxHash.Bytes(), string(record.Outcome), record.VerifiedAt)
	return err
}

// GetDeposit returns the recorded deposit of a tx
func (p *PostgresStorage) GetDeposit(ctx context.Context, txHash common.Hash, dbTx pgx.Tx) (*journal.Deposit, error) {
	const getDepositSQL = `SELECT tx_hash, asset, amount, destination, status, block_num, created_at, updated_at
		FROM journal.deposit WHERE tx_hash = $1`
	deposit, err := scanDeposit(p.getExecQuerier(dbTx).QueryRow(ctx, getDepositSQL, txHash.Bytes()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, gerror.ErrStorageNotFound
	}
	return deposit, err
}

// GetDepositsByStatus returns the recorded deposits in a status, newest first
func (p *PostgresStorage) GetDepositsByStatus(ctx context.Context, status string, limit, offset uint, dbTx pgx.Tx) ([]*journal.Deposit, error) {
	const getDepositsByStatusSQL = `SELECT tx_hash, asset, amount, destination, status, block_num, created_at, updated_at
		FROM journal.deposit WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := p.getExecQuerier(dbTx).Query(ctx, getDepositsByStatusSQL, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deposits := make([]*journal.Deposit, 0, limit)
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, rows.Err()
}

func scanDeposit(row pgx.Row) (*journal.Deposit, error) {
	var (
		deposit     journal.Deposit
		hash, asset []byte
		amount      string
	)
	err := row.Scan(&hash, &asset, &amount, &deposit.Destination, &deposit.Status, &deposit.BlockNumber,
		&deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		return nil, err
	}
	deposit.TxHash = common.BytesToHash(hash)
	deposit.Asset = common.BytesToAddress(asset)
	var ok bool
	deposit.Amount, ok = new(big.Int).SetString(amount, 10) //nolint:gomnd
	if !ok {
		return nil, errors.Errorf("invalid amount %q for deposit %s", amount, deposit.TxHash.Hex())
	}
	return &deposit, nil
}
