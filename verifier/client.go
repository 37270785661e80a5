package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/cketh-starter/ckusdc-depositor/nacos"
	"github.com/cketh-starter/ckusdc-depositor/redisstorage"
	"github.com/cketh-starter/ckusdc-depositor/utils"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

const (
	endpointDepositAddress = "/deposit-address"
	endpointVerify         = "/verify"

	defaultCacheSize = 128
	defaultTimeout   = 30 * time.Second
	maxBodySize      = 1 << 20
)

// Client talks to the remote verifier service
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      *lru.Cache[common.Hash, *verification.Record]
	store      redisstorage.RedisStorage
	baseURL    func() (string, error)
}

// NewClient creates a verifier client. store is optional and shares the
// verified records between sessions.
func NewClient(cfg Config, store redisstorage.RedisStorage) (*Client, error) {
	if cfg.URL == "" && cfg.NacosServiceName == "" {
		return nil, errors.New("verifier URL or nacos service name is required")
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[common.Hash, *verification.Record](size)
	if err != nil {
		return nil, errors.Wrap(err, "create verification cache")
	}
	timeout := cfg.Timeout.Duration
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		store:      store,
	}
	c.baseURL = c.resolveBaseURL
	return c, nil
}

func (c *Client) resolveBaseURL() (string, error) {
	if c.cfg.NacosServiceName == "" {
		return c.cfg.URL, nil
	}
	host, err := nacos.GetOneURL(c.cfg.NacosServiceName)
	if err != nil {
		log.Errorf("[verifier] cannot get URL from nacos service, name[%v] err[%v]", c.cfg.NacosServiceName, err)
		return "", err
	}
	return host, nil
}

// GetDepositAddress asks the verifier for the custodial deposit address
func (c *Client) GetDepositAddress(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, endpointDepositAddress, nil)
	if err != nil {
		return "", err
	}
	resp := &verification.DepositAddressResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		log.Errorf("[GetDepositAddress] failed to convert resp to struct, resp [%v] err[%v]", string(body), err)
		return "", fmt.Errorf("%w: malformed response: %v", gerror.ErrServiceUnavailable, err)
	}
	addr := strings.TrimSpace(resp.Address)
	if addr == "" {
		return "", fmt.Errorf("%w: verifier returned an empty address", gerror.ErrAddressFetchFailed)
	}
	return addr, nil
}

// Verify asks the verifier to check the deposit tx. Records are immutable, so
// a hash verified before is answered from the caches.
func (c *Client) Verify(ctx context.Context, txHash string) (*verification.Record, error) {
	txHash = strings.TrimSpace(txHash)
	if !utils.IsTxHash(txHash) {
		return nil, fmt.Errorf("%w: %q", gerror.ErrInvalidHash, txHash)
	}
	hash := common.HexToHash(txHash)
	if record, ok := c.cachedRecord(ctx, hash); ok {
		return record, nil
	}

	reqBody, err := json.Marshal(verification.VerifyRequest{TxHash: strings.ToLower(txHash)})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, endpointVerify, reqBody)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		log.Errorf("[Verify] verifier returned a non json outcome [%v]", string(body))
		return nil, fmt.Errorf("%w: malformed outcome", gerror.ErrServiceUnavailable)
	}
	record := &verification.Record{
		TxHash:     hash,
		Outcome:    json.RawMessage(body),
		VerifiedAt: time.Now().UTC(),
	}
	c.cache.Add(hash, record)
	if c.store != nil {
		if err := c.store.SetVerification(ctx, record); err != nil {
			log.Warnf("[Verify] cannot store verification record of %s: %v", hash.Hex(), err)
		}
	}
	return record.Clone(), nil
}

func (c *Client) cachedRecord(ctx context.Context, hash common.Hash) (*verification.Record, bool) {
	if record, ok := c.cache.Get(hash); ok {
		return record.Clone(), true
	}
	if c.store == nil {
		return nil, false
	}
	record, err := c.store.GetVerification(ctx, hash)
	if err != nil {
		if !errors.Is(err, gerror.ErrStorageNotFound) {
			log.Warnf("[Verify] cannot read verification record of %s: %v", hash.Hex(), err)
		}
		return nil, false
	}
	c.cache.Add(hash, record)
	return record.Clone(), true
}

func (c *Client) do(ctx context.Context, method, endpoint string, reqBody []byte) ([]byte, error) {
	host, err := c.baseURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gerror.ErrServiceUnavailable, err)
	}
	fullPath, err := url.JoinPath(host, endpoint)
	if err != nil {
		log.Errorf("[verifier] JoinPath err[%v] host[%v] endpoint[%v]", err, host, endpoint)
		return nil, fmt.Errorf("%w: %v", gerror.ErrServiceUnavailable, err)
	}
	var body io.Reader
	if reqBody != nil {
		body = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullPath, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gerror.ErrServiceUnavailable, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if traceID := utils.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-Id", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnf("[verifier] call failed err[%v] full path[%v]", err, fullPath)
		return nil, fmt.Errorf("%w: %v", gerror.ErrServiceUnavailable, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Errorf("[verifier] close response body failed, err [%v]", err)
		}
	}(resp.Body)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", gerror.ErrServiceUnavailable, err)
	}
	if err := statusError(resp.StatusCode, respBody); err != nil {
		log.Infof("[verifier] http status code [%v] url[%v] body[%v]", resp.StatusCode, fullPath, string(respBody))
		return nil, err
	}
	return respBody, nil
}

func statusError(code int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", gerror.ErrInvalidHash, detail)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", gerror.ErrNotFound, detail)
	default:
		return fmt.Errorf("%w: http status %d: %s", gerror.ErrServiceUnavailable, code, detail)
	}
}
