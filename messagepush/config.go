package messagepush

// Config is the config for the Kafka producer
type Config struct {
	Enabled bool `mapstructure:"Enabled"`

	// UseFakeProducer keeps the messages in memory instead of sending them,
	// for environments without a reachable broker
	UseFakeProducer bool `mapstructure:"UseFakeProducer"`

	// Brokers is the list of address of the kafka brokers
	Brokers []string `mapstructure:"Brokers"`

	// Topic is the default topic name to send message to
	Topic string `mapstructure:"Topic"`
	// PushKey is the default message key, the wallet address is used when empty
	PushKey string `mapstructure:"PushKey"`
	// BizCode tags the messages of this service on a shared topic
	BizCode string `mapstructure:"BizCode"`

	// Username and Password are used for SASL_SSL authentication
	Username string `mapstructure:"Username"`
	Password string `mapstructure:"Password"`

	// RootCAPath points to the CA cert used for authentication
	RootCAPath string `mapstructure:"RootCAPath"`
}
