package redisstorage

import (
	"context"

	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the verification records shared by every session
type RedisStorage interface {
	SetVerification(ctx context.Context, record *verification.Record) error
	GetVerification(ctx context.Context, txHash common.Hash) (*verification.Record, error)
}

// RedisClient is the subset of the go-redis client used by the storage
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}
