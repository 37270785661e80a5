package redisstorage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	verificationHashKey = "ckusdc_deposit_verifications"
)

// redisStorageImpl implements RedisStorage interface
type redisStorageImpl struct {
	client    RedisClient
	keyPrefix string
}

// NewRedisStorage connects to redis and checks the connection
func NewRedisStorage(cfg Config) (RedisStorage, error) {
	if len(cfg.Addrs) == 0 {
		return nil, errors.New("redis address is empty")
	}
	var client RedisClient
	if cfg.IsClusterMode {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addrs[0],
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}
	return newRedisStorage(client, cfg.KeyPrefix)
}

func newRedisStorage(client RedisClient, keyPrefix string) (RedisStorage, error) {
	res, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to redis server")
	}
	log.Debugf("redis health check done, result: %v", res)
	return &redisStorageImpl{client: client, keyPrefix: keyPrefix}, nil
}

func (s *redisStorageImpl) SetVerification(ctx context.Context, record *verification.Record) error {
	if s == nil || s.client == nil {
		return errors.New("redis client is nil")
	}
	if record == nil {
		return nil
	}
	val, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "marshal verification record error")
	}
	err = s.client.HSet(ctx, s.hashKey(), getVerificationField(record.TxHash), val).Err()
	if err != nil {
		return errors.Wrap(err, "SetVerification redis HSet error")
	}
	return nil
}

func (s *redisStorageImpl) GetVerification(ctx context.Context, txHash common.Hash) (*verification.Record, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("redis client is nil")
	}
	res, err := s.client.HGet(ctx, s.hashKey(), getVerificationField(txHash)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, gerror.ErrStorageNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetVerification redis HGet error")
	}
	record := &verification.Record{}
	if err := json.Unmarshal([]byte(res), record); err != nil {
		log.Infof("cannot unmarshal verification record[%v] error[%v]", res, err)
		return nil, errors.Wrap(err, "unmarshal verification record error")
	}
	return record, nil
}

func (s *redisStorageImpl) hashKey() string {
	if s.keyPrefix == "" {
		return verificationHashKey
	}
	return s.keyPrefix + ":" + verificationHashKey
}

func getVerificationField(txHash common.Hash) string {
	return strings.ToLower(txHash.Hex())
}
