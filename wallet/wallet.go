package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/config/types"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Wallet is the signing capability handed to the chain client. It never exposes
// the key, and every signature goes through the Authorizer first.
type Wallet interface {
	Address() common.Address
	SignTx(ctx context.Context, purpose string, tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error)
}

// KeyWallet signs with a local private key loaded from a keystore file or a hex string.
type KeyWallet struct {
	key        *ecdsa.PrivateKey
	address    common.Address
	authorizer Authorizer
}

// NewKeyWallet wraps an already loaded key.
func NewKeyWallet(key *ecdsa.PrivateKey, authorizer Authorizer) (*KeyWallet, error) {
	if key == nil {
		return nil, errors.New("nil private key")
	}
	if authorizer == nil {
		return nil, errors.New("an authorizer is required, transactions are never signed silently")
	}
	return &KeyWallet{
		key:        key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
		authorizer: authorizer,
	}, nil
}

// NewFromKeystore decrypts the keystore file described by ks.
func NewFromKeystore(ks types.KeystoreFileConfig, authorizer Authorizer) (*KeyWallet, error) {
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(ks.Path))
	if err != nil {
		return nil, errors.Wrap(err, "read keystore")
	}
	key, err := keystore.DecryptKey(keystoreEncrypted, ks.Password)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt keystore")
	}
	return NewKeyWallet(key.PrivateKey, authorizer)
}

// NewFromHexKey parses a 0x prefixed (or bare) hex private key.
func NewFromHexKey(hexKey string, authorizer Authorizer) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}
	return NewKeyWallet(key, authorizer)
}

// Address returns the account address of the wallet
func (w *KeyWallet) Address() common.Address {
	return w.address
}

// SignTx asks the authorizer for permission and signs tx for chainID.
func (w *KeyWallet) SignTx(ctx context.Context, purpose string, tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	req := SigningRequest{
		Purpose: purpose,
		From:    w.address,
		To:      tx.To(),
		Value:   tx.Value(),
		Nonce:   tx.Nonce(),
		Gas:     tx.Gas(),
		ChainID: chainID,
	}
	if err := w.authorizer.Authorize(ctx, req); err != nil {
		log.WithFields("purpose", purpose, "from", w.address.Hex()).Infof("signature refused: %v", err)
		return nil, fmt.Errorf("%w: %v", gerror.ErrSigningRejected, err)
	}
	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gerror.ErrSigningRejected, err)
	}
	return signed, nil
}
