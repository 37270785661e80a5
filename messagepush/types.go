package messagepush

const (
	BizCodeDepositWorkflow = "ckusdc_deposit_workflow"
)

type PushMessage struct {
	BizCode       string `json:"bizCode"`
	WalletAddress string `json:"walletAddress"`
	RequestID     string `json:"requestId"`
	PushContent   string `json:"pushContent"`
	Time          int64  `json:"time"`
}

// WorkflowUpdate is the content pushed for every workflow event
type WorkflowUpdate struct {
	Operation      string `json:"operation"`
	Phase          string `json:"phase"`
	Status         string `json:"status"`
	Generation     uint64 `json:"generation"`
	TxHash         string `json:"txHash,omitempty"`
	DepositAddress string `json:"depositAddress,omitempty"`
	Amount         string `json:"amount,omitempty"`
	TxStatus       string `json:"txStatus,omitempty"`
	ErrorKind      string `json:"errorKind,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	Time           int64  `json:"time"`
}
