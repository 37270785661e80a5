package db

import (
	"context"

	"github.com/cketh-starter/ckusdc-depositor/db/pgstorage"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/models/journal"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
)

// Storage is the deposit journal
type Storage interface {
	AddDeposit(ctx context.Context, deposit *journal.Deposit, dbTx pgx.Tx) error
	UpdateDepositStatus(ctx context.Context, txHash common.Hash, status string, blockNumber uint64, dbTx pgx.Tx) error
	AddVerification(ctx context.Context, record *verification.Record, dbTx pgx.Tx) error
	GetDeposit(ctx context.Context, txHash common.Hash, dbTx pgx.Tx) (*journal.Deposit, error)
	GetDepositsByStatus(ctx context.Context, status string, limit, offset uint, dbTx pgx.Tx) ([]*journal.Deposit, error)
	Close()
}

// NewStorage creates a new Storage
func NewStorage(cfg Config) (Storage, error) {
	if cfg.Database == "postgres" {
		return pgstorage.NewPostgresStorage(toPgConfig(cfg))
	}
	return nil, gerror.ErrStorageNotRegister
}

// RunMigrations will execute pending migrations if needed to keep
// the database updated with the latest changes
func RunMigrations(cfg Config) error {
	if cfg.Database != "postgres" {
		return gerror.ErrStorageNotRegister
	}
	return pgstorage.RunMigrations(toPgConfig(cfg))
}

func toPgConfig(cfg Config) pgstorage.Config {
	return pgstorage.Config{
		Name:     cfg.Name,
		User:     cfg.User,
		Password: cfg.Password,
		Host:     cfg.Host,
		Port:     cfg.Port,
		MaxConns: cfg.MaxConns,
	}
}
