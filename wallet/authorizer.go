package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrDenied is returned by authorizers when the owner declines a signature
var ErrDenied = errors.New("denied by wallet owner")

// SigningRequest describes the transaction the wallet is about to sign
type SigningRequest struct {
	Purpose string
	From    common.Address
	To      *common.Address
	Value   *big.Int
	Nonce   uint64
	Gas     uint64
	ChainID *big.Int
}

// String renders the request for a human prompt
func (r SigningRequest) String() string {
	to := "<contract creation>"
	if r.To != nil {
		to = r.To.Hex()
	}
	return fmt.Sprintf("%s: from %s to %s, nonce %d, gas %d, chain %v", r.Purpose, r.From.Hex(), to, r.Nonce, r.Gas, r.ChainID)
}

// Authorizer decides whether a transaction may be signed
type Authorizer interface {
	Authorize(ctx context.Context, req SigningRequest) error
}

// AuthorizerFunc adapts a function to the Authorizer interface
type AuthorizerFunc func(ctx context.Context, req SigningRequest) error

// Authorize calls f
func (f AuthorizerFunc) Authorize(ctx context.Context, req SigningRequest) error {
	return f(ctx, req)
}

// AutoApprove authorizes every request. Only used when the operator opted in explicitly.
type AutoApprove struct{}

// Authorize implements Authorizer
func (AutoApprove) Authorize(ctx context.Context, _ SigningRequest) error {
	return ctx.Err()
}

// DenyAll refuses every request
type DenyAll struct{}

// Authorize implements Authorizer
func (DenyAll) Authorize(context.Context, SigningRequest) error {
	return ErrDenied
}

// PromptAuthorizer asks on Out and reads a y/N answer from In
type PromptAuthorizer struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// Authorize implements Authorizer
func (p *PromptAuthorizer) Authorize(ctx context.Context, req SigningRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	if _, err := fmt.Fprintf(p.Out, "Sign %s? [y/N]: ", req); err != nil {
		return err
	}
	answer, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read answer")
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return ErrDenied
	}
}
