package workflow

// Status is the tag of the workflow state
type Status string

const (
	// StatusIdle no deposit address known yet
	StatusIdle Status = "idle"
	// StatusAddressFetched the deposit address is known
	StatusAddressFetched Status = "address_fetched"
	// StatusApproving the approval tx is being signed or mined
	StatusApproving Status = "approving"
	// StatusApproved a confirmed approval grant is available
	StatusApproved Status = "approved"
	// StatusDepositing the deposit tx is being signed and sent
	StatusDepositing Status = "depositing"
	// StatusAwaitingConfirmation the deposit tx was sent and is being watched
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	// StatusVerifying the verifier is checking a tx hash
	StatusVerifying Status = "verifying"
	// StatusVerified the verifier returned a record
	StatusVerified Status = "verified"
	// StatusErrored the last operation failed, see State.Err
	StatusErrored Status = "errored"
)

// Operation names the user triggered operations guarded by the in-flight check
type Operation string

const (
	OpNone           Operation = ""
	OpRequestAddress Operation = "request_address"
	OpApprove        Operation = "approve"
	OpDeposit        Operation = "deposit"
	OpVerify         Operation = "verify"
	OpRestart        Operation = "restart"
)

// Phase is the step of an operation reported to observers
type Phase string

const (
	PhaseStarted   Phase = "started"
	PhaseSubmitted Phase = "submitted"
	PhaseConfirmed Phase = "confirmed"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)
