package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Level = "info"
Outputs = ["stderr"]

[Etherman]
URL = "http://localhost:8545"
PollInterval = "2s"
Confirmations = 1
DropRetries = 30
GasLimit = 0
DepositPrincipal = ""

[Wallet]
PrivateKey = ""
	[Wallet.Keystore]
	Path = ""
	Password = ""

[Verifier]
URL = "http://localhost:8080"
NacosServiceName = ""
Timeout = "30s"
CacheSize = 1024

[Workflow]
AddressSource = "verifier"
ConfirmationTimeout = "30m"

[Journal]
Enabled = false
Database = "postgres"
User = "test_user"
Password = "test_password"
Name = "test_db"
Host = "localhost"
Port = "5432"
MaxConns = 20

[Redis]
Enabled = false
IsClusterMode = false
Addrs = ["localhost:6379"]
Username = ""
Password = ""
DB = 0
KeyPrefix = ""

[MessagePush]
Enabled = false
UseFakeProducer = false
Brokers = ["localhost:9092"]
Topic = "ckusdc_deposit_workflow"
PushKey = ""
BizCode = "ckusdc_deposit_workflow"

[Metrics]
Enabled = false
Port = "9091"
Endpoint = "/metrics"
Env = "local"

[Nacos]
NacosUrls = ""
NamespaceId = "public"
Scheme = "https"
`
