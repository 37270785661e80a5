package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Kind classifies the workflow errors
type Kind string

const (
	KindAddressFetchFailed  Kind = "address_fetch_failed"
	KindApprovalFailed      Kind = "approval_failed"
	KindDepositFailed       Kind = "deposit_failed"
	KindTransactionFailed   Kind = "transaction_failed"
	KindVerificationFailed  Kind = "verification_failed"
	KindOperationInProgress Kind = "operation_in_progress"
	KindInvalidInput        Kind = "invalid_input"
)

// ErrSuperseded is returned to the caller of an operation whose result was
// discarded because the flow was restarted meanwhile
var ErrSuperseded = errors.New("operation superseded by a restart")

// Error is a typed workflow failure. Failed operations store it in the state,
// rejected calls only return it.
type Error struct {
	Kind   Kind
	Detail string
	// TxHash is set when the failure concerns a submitted tx
	TxHash common.Hash
	Err    error
}

func newError(kind Kind, detail string, txHash common.Hash, err error) *Error {
	return &Error{Kind: kind, Detail: detail, TxHash: txHash, Err: err}
}

func (e *Error) Error() string {
	parts := []string{strings.ReplaceAll(string(e.Kind), "_", " ")}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.TxHash != (common.Hash{}) {
		parts = append(parts, "tx "+e.TxHash.Hex())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) clone() *Error {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// IsKind reports whether err is a workflow error of the given kind
func IsKind(err error, kind Kind) bool {
	var wErr *Error
	return errors.As(err, &wErr) && wErr.Kind == kind
}

// KindOf returns the kind of a workflow error, or an empty kind
func KindOf(err error) Kind {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Kind
	}
	return ""
}

func errInProgress(op Operation) *Error {
	return newError(KindOperationInProgress, fmt.Sprintf("%s is in progress", op), common.Hash{}, nil)
}
