package wallet

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
	"github.com/pkg/errors"
)

// Config selects the key the wallet signs with. The keystore wins when both are set.
type Config struct {
	// Keystore is the encrypted key file and its password
	Keystore types.KeystoreFileConfig `mapstructure:"Keystore"`
	// PrivateKey is a hex key, meant for test networks only
	PrivateKey string `mapstructure:"PrivateKey"`
}

// New loads the wallet described by cfg
func New(cfg Config, authorizer Authorizer) (*KeyWallet, error) {
	switch {
	case cfg.Keystore.Path != "":
		return NewFromKeystore(cfg.Keystore, authorizer)
	case cfg.PrivateKey != "":
		return NewFromHexKey(cfg.PrivateKey, authorizer)
	default:
		return nil, errors.New("no wallet configured, set Wallet.Keystore.Path or Wallet.PrivateKey")
	}
}
