package nacos

// Config is the nacos discovery configuration
type Config struct {
	// NacosUrls is a comma separated list of host:port nacos servers
	NacosUrls   string `mapstructure:"NacosUrls"`
	NamespaceId string `mapstructure:"NamespaceId"`
	// Scheme is prepended to the discovered instances, nacos does not store it
	Scheme string `mapstructure:"Scheme"`
}
