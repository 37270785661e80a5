package workflow

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
)

const (
	// AddressSourceVerifier asks the verifier for the deposit address
	AddressSourceVerifier = "verifier"
	// AddressSourceChain derives the deposit address from the configured principal
	AddressSourceChain = "chain"
)

// Config is the workflow configuration
type Config struct {
	// AddressSource is either "verifier" or "chain"
	AddressSource string `mapstructure:"AddressSource"`
	// ConfirmationTimeout bounds the background wait for the deposit tx, 0 waits forever
	ConfirmationTimeout types.Duration `mapstructure:"ConfirmationTimeout"`
}
