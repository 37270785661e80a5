package config

import (
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// NetworkConfig is the configuration struct for the different environments
type NetworkConfig struct {
	L1ChainID     uint64
	TokenSymbol   string
	TokenAddr     common.Address
	TokenDecimals int32
	// HelperAddr is the minter helper contract, spender of the approvals
	HelperAddr common.Address
}

const (
	sepolia = "sepolia"
	mainnet = "mainnet"
)

var (
	sepoliaConfig = NetworkConfig{
		L1ChainID:     token.SepoliaUSDC.ChainID,
		TokenSymbol:   token.SepoliaUSDC.Symbol,
		TokenAddr:     token.SepoliaUSDC.Address,
		TokenDecimals: token.SepoliaUSDC.Decimals,
		HelperAddr:    common.HexToAddress("0x2D39863d30716aaf2B7fFFd85Dd03Dda2BFC2E38"),
	}
	mainnetConfig = NetworkConfig{
		L1ChainID:     token.MainnetUSDC.ChainID,
		TokenSymbol:   token.MainnetUSDC.Symbol,
		TokenAddr:     token.MainnetUSDC.Address,
		TokenDecimals: token.MainnetUSDC.Decimals,
		HelperAddr:    common.HexToAddress("0x6abDA0438307733FC299e9C229FD3cc074bD8cC0"),
	}
)

func (cfg *Config) loadNetworkConfig(network string) error {
	switch network {
	case sepolia:
		log.Debug("Sepolia network selected")
		cfg.NetworkConfig = sepoliaConfig
	case mainnet:
		log.Debug("Mainnet network selected")
		cfg.NetworkConfig = mainnetConfig
	default:
		return errors.Errorf("unknown network %q, expected %s or %s", network, sepolia, mainnet)
	}
	return nil
}

// Asset returns the token described by the network config
func (n NetworkConfig) Asset() token.Asset {
	return token.Asset{
		Symbol:   n.TokenSymbol,
		Address:  n.TokenAddr,
		ChainID:  n.L1ChainID,
		Decimals: n.TokenDecimals,
	}
}
