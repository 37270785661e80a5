package verifier

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
)

// Config is the verifier service client configuration
type Config struct {
	// URL is the verifier base URL, ignored when NacosServiceName is set
	URL string `mapstructure:"URL"`
	// NacosServiceName resolves the base URL through nacos on every request
	NacosServiceName string         `mapstructure:"NacosServiceName"`
	Timeout          types.Duration `mapstructure:"Timeout"`
	// CacheSize is the number of verification records kept in memory
	CacheSize int `mapstructure:"CacheSize"`
}
