package etherman

import "github.com/0xPolygonHermez/zkevm-node/config/types"

// Config represents the configuration of the etherman
type Config struct {
	// URL is the JSON-RPC endpoint of the L1 node
	URL string `mapstructure:"URL"`

	// PollInterval is the delay between two receipt checks
	PollInterval types.Duration `mapstructure:"PollInterval"`

	// Confirmations is the number of blocks mined on top of the receipt block
	// before a tx is reported as confirmed
	Confirmations uint64 `mapstructure:"Confirmations"`

	// DropRetries is the number of consecutive polls a tx may be missing from
	// both the chain and the pool before it is reported as dropped
	DropRetries int `mapstructure:"DropRetries"`

	// GasLimit forces the gas limit of the submitted txs, 0 means estimate
	GasLimit uint64 `mapstructure:"GasLimit"`

	// DepositPrincipal is the custodial principal whose subaccount receives the
	// deposits. Used to derive the deposit address without asking the verifier
	DepositPrincipal string `mapstructure:"DepositPrincipal"`
}
