package gerror

import "errors"

var (
	// ErrStorageNotFound is used when the object is not found in the storage
	ErrStorageNotFound = errors.New("not found in the storage")

	// ErrStorageNotRegister is used when the configured storage is not supported
	ErrStorageNotRegister = errors.New("not registered storage")

	// ErrAddressFetchFailed is used when no deposit address can be obtained
	ErrAddressFetchFailed = errors.New("deposit address fetch failed")

	// ErrSigningRejected is used when the wallet owner refuses, or the wallet fails, to sign a tx
	ErrSigningRejected = errors.New("signing rejected")

	// ErrSubmissionFailed is used when a signed tx cannot be built or sent to the network
	ErrSubmissionFailed = errors.New("transaction submission failed")

	// ErrTransactionReverted is used when a tx was mined with a failed receipt
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrTransactionDropped is used when a tx disappears from both the chain and the pool
	ErrTransactionDropped = errors.New("transaction dropped")

	// ErrNotFound is used when the verifier does not know the tx hash
	ErrNotFound = errors.New("not found")

	// ErrServiceUnavailable is used when the verifier cannot be reached or fails
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidHash is used when a tx hash is malformed or refused by the verifier
	ErrInvalidHash = errors.New("invalid transaction hash")
)
