package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/db"
	"github.com/cketh-starter/ckusdc-depositor/etherman"
	"github.com/cketh-starter/ckusdc-depositor/messagepush"
	"github.com/cketh-starter/ckusdc-depositor/metrics"
	"github.com/cketh-starter/ckusdc-depositor/nacos"
	"github.com/cketh-starter/ckusdc-depositor/redisstorage"
	"github.com/cketh-starter/ckusdc-depositor/token"
	"github.com/cketh-starter/ckusdc-depositor/verifier"
	"github.com/cketh-starter/ckusdc-depositor/wallet"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "CKUSDC_DEPOSIT"

// Config struct
type Config struct {
	Log         log.Config
	Etherman    etherman.Config
	Wallet      wallet.Config
	Verifier    verifier.Config
	Workflow    workflow.Config
	Journal     db.Config
	Redis       redisstorage.Config
	MessagePush messagepush.Config
	Metrics     metrics.Config
	Nacos       nacos.Config
	NetworkConfig
}

// Load loads the configuration. The network details come either from the
// [NetworkConfig] section or from the network preset name, never both.
func Load(configFilePath string, network string) (*Config, error) {
	var cfg Config
	v := viper.New()
	v.SetConfigType("toml")

	err := v.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, err
	}
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)

		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		v.AddConfigPath(dirName)
		v.SetConfigName(fileNameWithoutExtension)
		v.SetConfigType(fileExtension)
	}
	v.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix(envPrefix)
	if configFilePath != "" {
		err = v.MergeInConfig()
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Errorf("error reading config file: %v", err)
				return nil, err
			}
			log.Infof("config file not found")
		}
	}

	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}

	if v.IsSet("NetworkConfig") && network != "" {
		return nil, errors.New("Network details are provided in the config file (the [NetworkConfig] section) and as a flag (the --network or -n). Configure it only once and try again please.")
	}
	if !v.IsSet("NetworkConfig") && network == "" {
		return nil, errors.New("Network details are not provided. Please configure the [NetworkConfig] section in your config file, or provide a --network flag.")
	}
	if !v.IsSet("NetworkConfig") {
		if err := cfg.loadNetworkConfig(network); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Workflow.AddressSource {
	case workflow.AddressSourceVerifier:
	case workflow.AddressSourceChain:
		if cfg.Etherman.DepositPrincipal == "" {
			return errors.New("Workflow.AddressSource is chain but Etherman.DepositPrincipal is empty")
		}
	default:
		return errors.Errorf("unknown Workflow.AddressSource %q", cfg.Workflow.AddressSource)
	}
	if cfg.NetworkConfig.TokenDecimals == 0 {
		cfg.NetworkConfig.TokenDecimals = token.USDCDecimals
	}
	if cfg.NetworkConfig.TokenDecimals < 0 {
		return errors.New("NetworkConfig.TokenDecimals must be positive")
	}
	if cfg.NetworkConfig.TokenAddr == (common.Address{}) || cfg.NetworkConfig.HelperAddr == (common.Address{}) {
		return errors.New("NetworkConfig.TokenAddr and NetworkConfig.HelperAddr are required")
	}
	return nil
}
