package workflow

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/gerror"
	"github.com/cketh-starter/ckusdc-depositor/models/verification"
	"github.com/cketh-starter/ckusdc-depositor/utils"
	"github.com/ethereum/go-ethereum/common"
)

// DepositWorkflow sequences address fetch, approval, deposit, confirmation and
// verification for one user session. All methods are safe for concurrent use,
// only one operation runs at a time.
type DepositWorkflow struct {
	cfg      Config
	asset    common.Address
	spender  common.Address
	chain    ChainClient
	verifier VerifierClient
	clock    utils.Clock

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	settled chan struct{}

	observers      []observerEntry
	nextObserverID int
	queue          []queuedEvent
	draining       bool
}

// queuedEvent carries the settled channel of the operation it ends, closed
// once the observers got the event
type queuedEvent struct {
	event   Event
	settled chan struct{}
}

type observerEntry struct {
	id       int
	observer Observer
}

// operation is the handle of the operation holding the in-flight guard
type operation struct {
	name       Operation
	ctx        context.Context
	generation uint64
	cancel     context.CancelFunc
	detach     func() bool
}

func (o *operation) release() {
	o.detach()
	o.cancel()
}

// New creates a workflow depositing asset through the spender helper contract
func New(cfg Config, asset, spender common.Address, chain ChainClient, verifier VerifierClient) (*DepositWorkflow, error) {
	if chain == nil || verifier == nil {
		return nil, errors.New("chain and verifier clients are required")
	}
	switch cfg.AddressSource {
	case "":
		cfg.AddressSource = AddressSourceVerifier
	case AddressSourceVerifier, AddressSourceChain:
	default:
		return nil, fmt.Errorf("unknown deposit address source %q", cfg.AddressSource)
	}
	return &DepositWorkflow{
		cfg:      cfg,
		asset:    asset,
		spender:  spender,
		chain:    chain,
		verifier: verifier,
		clock:    utils.SystemClock{},
		state:    State{Status: StatusIdle},
	}, nil
}

// Snapshot returns a copy of the current state
func (w *DepositWorkflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// Subscribe registers an observer. Events are delivered in order, outside the
// state lock, on the goroutine that produced them or one that is already
// delivering. The returned func removes the observer.
func (w *DepositWorkflow) Subscribe(o Observer) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextObserverID++
	id := w.nextObserverID
	w.observers = append(w.observers, observerEntry{id: id, observer: o})
	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			for i, e := range w.observers {
				if e.id == id {
					w.observers = append(w.observers[:i:i], w.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// WaitSettled blocks until no operation is in flight, including the
// background confirmation watch and the automatic verification, and the
// observers got the final event. Observers must not call it from OnEvent.
func (w *DepositWorkflow) WaitSettled(ctx context.Context) error {
	w.mu.Lock()
	settled := w.settled
	w.mu.Unlock()
	if settled == nil {
		return nil
	}
	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestDepositAddress obtains the deposit address from the configured source
func (w *DepositWorkflow) RequestDepositAddress(ctx context.Context) (string, error) {
	op, err := w.begin(ctx, OpRequestAddress, "", nil)
	if err != nil {
		return "", err
	}
	var addr string
	if w.cfg.AddressSource == AddressSourceChain {
		addr, err = w.chain.FetchDepositAddress(op.ctx)
	} else {
		addr, err = w.verifier.GetDepositAddress(op.ctx)
	}
	addr = strings.TrimSpace(addr)
	if err == nil && addr == "" {
		err = gerror.ErrAddressFetchFailed
	}
	if err != nil {
		return "", w.fail(op, KindAddressFetchFailed, "deposit address not obtained from "+w.cfg.AddressSource, common.Hash{}, err)
	}
	if !w.finish(op, PhaseSucceeded, common.Hash{}, func(s *State) {
		s.DepositAddress = addr
		s.Status = s.restingStatus()
	}) {
		return "", ErrSuperseded
	}
	w.logger(op).Infof("deposit address %s obtained", addr)
	return addr, nil
}

// SetDepositAddress restarts the flow with a user supplied deposit address. A
// pending operation is canceled and its result discarded, a known grant is
// kept unless an approval was pending.
func (w *DepositWorkflow) SetDepositAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if _, err := utils.HexToBytes32(addr); err != nil {
		return newError(KindInvalidInput, fmt.Sprintf("deposit address %q", addr), common.Hash{}, err)
	}
	w.restart(func(s *State) {
		if s.InFlight == OpApprove {
			s.Grant = nil
		}
		s.DepositAddress = addr
		s.Deposit = nil
		s.Verification = nil
	})
	return nil
}

// Reset cancels any pending operation and returns to idle
func (w *DepositWorkflow) Reset() {
	w.restart(func(s *State) {
		*s = State{Generation: s.Generation}
	})
}

// Approve lets the helper contract spend amount base units of the asset and
// waits for the approval receipt
func (w *DepositWorkflow) Approve(ctx context.Context, amount *big.Int) (common.Hash, error) {
	if amount == nil || amount.Sign() <= 0 {
		return common.Hash{}, newError(KindInvalidInput, "approval amount must be greater than zero", common.Hash{}, nil)
	}
	amount = cloneInt(amount)
	op, err := w.begin(ctx, OpApprove, StatusApproving, nil)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := w.chain.SubmitApproval(op.ctx, w.spender, amount)
	if err != nil {
		return common.Hash{}, w.failWith(op, KindApprovalFailed, "approval not submitted", common.Hash{}, err, dropGrant)
	}
	if !w.update(op, PhaseSubmitted, hash, func(s *State) { s.ApprovalTxHash = hash }) {
		return hash, ErrSuperseded
	}
	if _, err := w.chain.AwaitConfirmation(op.ctx, hash); err != nil {
		return hash, w.failWith(op, KindApprovalFailed, "approval not confirmed", hash, err, dropGrant)
	}
	if !w.finish(op, PhaseSucceeded, hash, func(s *State) {
		s.Grant = &ApprovalGrant{Spender: w.spender, Amount: amount, TxHash: hash}
		s.Status = StatusApproved
	}) {
		return hash, ErrSuperseded
	}
	w.logger(op).Infof("approval of %s confirmed, tx %s", amount.String(), hash.Hex())
	return hash, nil
}

// Deposit submits the helper deposit of amount base units to the deposit
// address. It returns once the tx is sent, the confirmation and the automatic
// verification run in background, see WaitSettled.
func (w *DepositWorkflow) Deposit(ctx context.Context, amount *big.Int) (common.Hash, error) {
	if amount == nil || amount.Sign() <= 0 {
		return common.Hash{}, newError(KindInvalidInput, "deposit amount must be greater than zero", common.Hash{}, nil)
	}
	amount = cloneInt(amount)
	var intent DepositIntent
	op, err := w.begin(ctx, OpDeposit, StatusDepositing, func(s *State) *Error {
		if !s.Grant.Covers(w.spender, amount) {
			return newError(KindApprovalFailed,
				fmt.Sprintf("no confirmed approval of at least %s for %s", amount.String(), w.spender.Hex()), common.Hash{}, nil)
		}
		if s.DepositAddress == "" {
			return newError(KindInvalidInput, "no deposit address", common.Hash{}, nil)
		}
		intent = DepositIntent{Asset: w.asset, Amount: amount, Destination: s.DepositAddress}
		return nil
	})
	if err != nil {
		return common.Hash{}, err
	}
	allowance, err := w.chain.Allowance(op.ctx, w.spender)
	if err != nil {
		return common.Hash{}, w.fail(op, KindDepositFailed, "allowance not read", common.Hash{}, err)
	}
	if allowance == nil || allowance.Cmp(amount) < 0 {
		return common.Hash{}, w.failWith(op, KindApprovalFailed,
			fmt.Sprintf("on-chain allowance %s below %s", bigString(allowance), amount.String()), common.Hash{}, nil, dropGrant)
	}
	hash, err := w.chain.SubmitDeposit(op.ctx, intent.Asset, intent.Amount, intent.Destination)
	if err != nil {
		return common.Hash{}, w.fail(op, KindDepositFailed, "deposit not submitted", common.Hash{}, err)
	}
	if !w.update(op, PhaseSubmitted, hash, func(s *State) {
		s.Deposit = &DepositTransaction{DepositIntent: intent, Hash: hash, Status: TxPending}
		s.Verification = nil
		s.Status = StatusAwaitingConfirmation
	}) {
		return hash, ErrSuperseded
	}
	w.logger(op).Infof("deposit of %s to %s sent, tx %s", amount.String(), intent.Destination, hash.Hex())
	// the watch outlives the caller context, only a restart stops it
	if !w.keep(op) {
		return hash, ErrSuperseded
	}
	go w.watchDeposit(op, intent, hash)
	return hash, nil
}

// keep unbinds op from the caller context. When the caller already canceled,
// op gets a fresh context unless a restart superseded it.
func (w *DepositWorkflow) keep(op *operation) bool {
	if op.detach() {
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if op.generation != w.state.Generation {
		return false
	}
	op.ctx, op.cancel = context.WithCancel(context.WithoutCancel(op.ctx))
	w.cancel = op.cancel
	return true
}

// Verify asks the verifier about any tx hash, whatever the current state
func (w *DepositWorkflow) Verify(ctx context.Context, txHash string) (*verification.Record, error) {
	txHash = strings.TrimSpace(txHash)
	if !utils.IsTxHash(txHash) {
		return nil, newError(KindInvalidInput, fmt.Sprintf("malformed tx hash %q", txHash), common.Hash{}, gerror.ErrInvalidHash)
	}
	op, err := w.begin(ctx, OpVerify, StatusVerifying, nil)
	if err != nil {
		return nil, err
	}
	return w.runVerify(op, common.HexToHash(txHash))
}

func (w *DepositWorkflow) watchDeposit(op *operation, intent DepositIntent, hash common.Hash) {
	ctx := op.ctx
	if timeout := w.cfg.ConfirmationTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	receipt, err := w.chain.AwaitConfirmation(ctx, hash)
	if err != nil {
		wErr := newError(KindTransactionFailed, "deposit not confirmed", hash, err)
		if w.finish(op, PhaseFailed, hash, func(s *State) {
			// the tx may still be mined
			if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				s.Deposit.Status = TxFailed
			}
			s.Status = StatusErrored
			s.Err = wErr
		}) {
			w.logger(op).Warnf("%v", wErr)
		}
		return
	}
	if !w.update(op, PhaseConfirmed, hash, func(s *State) {
		s.Deposit.Status = TxConfirmed
		if receipt != nil && receipt.BlockNumber != nil {
			s.Deposit.BlockNumber = receipt.BlockNumber.Uint64()
		}
		s.Grant = consumeGrant(s.Grant, intent.Amount)
		s.Status = StatusVerifying
	}) {
		return
	}
	w.logger(op).Infof("deposit tx %s confirmed, verifying", hash.Hex())
	_, _ = w.runVerify(op, hash)
}

func (w *DepositWorkflow) runVerify(op *operation, hash common.Hash) (*verification.Record, error) {
	record, err := w.verifier.Verify(op.ctx, hash.Hex())
	if err == nil && record == nil {
		err = gerror.ErrServiceUnavailable
	}
	if err != nil {
		return nil, w.fail(op, KindVerificationFailed, "verification failed", hash, err)
	}
	record = record.Clone()
	if !w.finish(op, PhaseSucceeded, hash, func(s *State) {
		s.Verification = record
		s.Status = StatusVerified
	}) {
		return nil, ErrSuperseded
	}
	w.logger(op).Infof("tx %s verified", hash.Hex())
	return record.Clone(), nil
}

func dropGrant(s *State) {
	s.Grant = nil
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func consumeGrant(g *ApprovalGrant, amount *big.Int) *ApprovalGrant {
	if g == nil {
		return nil
	}
	left := new(big.Int).Sub(g.Amount, amount)
	if left.Sign() <= 0 {
		return nil
	}
	c := *g
	c.Amount = left
	return &c
}

// begin takes the in-flight guard. check runs under the lock and may reject
// the call without touching the state. An empty status keeps the resting one.
func (w *DepositWorkflow) begin(ctx context.Context, name Operation, status Status, check func(*State) *Error) (*operation, error) {
	w.mu.Lock()
	if inFlight := w.state.InFlight; inFlight != OpNone {
		w.mu.Unlock()
		return nil, errInProgress(inFlight)
	}
	if check != nil {
		if err := check(&w.state); err != nil {
			w.mu.Unlock()
			return nil, err
		}
	}
	opCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	op := &operation{
		name:       name,
		ctx:        opCtx,
		generation: w.state.Generation,
		cancel:     cancel,
		detach:     context.AfterFunc(ctx, cancel),
	}
	w.cancel = cancel
	w.settled = make(chan struct{})
	w.state.InFlight = name
	w.state.Err = nil
	if status == "" {
		status = w.state.restingStatus()
	}
	w.state.Status = status
	w.enqueue(name, PhaseStarted, common.Hash{})
	w.mu.Unlock()

	w.drain()
	w.logger(op).Debugf("%s started", name)
	return op, nil
}

// update applies an intermediate result, it returns false and releases the
// operation when its generation is stale
func (w *DepositWorkflow) update(op *operation, phase Phase, txHash common.Hash, mutate func(*State)) bool {
	w.mu.Lock()
	if op.generation != w.state.Generation {
		w.mu.Unlock()
		op.release()
		w.logger(op).Debugf("stale %s result discarded, phase %s", op.name, phase)
		return false
	}
	mutate(&w.state)
	w.enqueue(op.name, phase, txHash)
	w.mu.Unlock()

	w.drain()
	return true
}

// finish applies the final result and releases the in-flight guard
func (w *DepositWorkflow) finish(op *operation, phase Phase, txHash common.Hash, mutate func(*State)) bool {
	defer op.release()
	w.mu.Lock()
	if op.generation != w.state.Generation {
		w.mu.Unlock()
		w.logger(op).Debugf("stale %s result discarded, phase %s", op.name, phase)
		return false
	}
	mutate(&w.state)
	w.state.InFlight = OpNone
	w.cancel = nil
	w.enqueue(op.name, phase, txHash)
	w.queue[len(w.queue)-1].settled = w.settled
	w.mu.Unlock()

	w.drain()
	return true
}

func (w *DepositWorkflow) fail(op *operation, kind Kind, detail string, txHash common.Hash, cause error) error {
	return w.failWith(op, kind, detail, txHash, cause, nil)
}

// failWith is fail with an extra state change applied with the error
func (w *DepositWorkflow) failWith(op *operation, kind Kind, detail string, txHash common.Hash, cause error, mutate func(*State)) error {
	wErr := newError(kind, detail, txHash, cause)
	if !w.finish(op, PhaseFailed, txHash, func(s *State) {
		if mutate != nil {
			mutate(s)
		}
		s.Status = StatusErrored
		s.Err = wErr
	}) {
		return ErrSuperseded
	}
	w.logger(op).Warnf("%v", wErr)
	return wErr.clone()
}

func (w *DepositWorkflow) restart(mutate func(*State)) {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	// a finished operation already queued its settled channel
	pending := w.state.InFlight != OpNone
	w.state.Generation++
	mutate(&w.state)
	w.state.InFlight = OpNone
	w.state.Err = nil
	w.state.Status = w.state.restingStatus()
	generation := w.state.Generation
	w.enqueue(OpRestart, PhaseSucceeded, common.Hash{})
	if pending {
		w.queue[len(w.queue)-1].settled = w.settled
	}
	w.mu.Unlock()

	w.drain()
	log.WithFields("operation", OpRestart, "generation", generation).Infof("workflow restarted")
}

// enqueue must be called with the lock held
func (w *DepositWorkflow) enqueue(op Operation, phase Phase, txHash common.Hash) {
	w.queue = append(w.queue, queuedEvent{event: Event{
		Operation: op,
		Phase:     phase,
		TxHash:    txHash,
		State:     w.state.Clone(),
		Time:      w.clock.Now(),
	}})
}

// drain delivers the queued events unless another goroutine already does.
// An operation is settled once its last event has been delivered.
func (w *DepositWorkflow) drain() {
	w.mu.Lock()
	if w.draining {
		w.mu.Unlock()
		return
	}
	w.draining = true
	for len(w.queue) > 0 {
		q := w.queue[0]
		w.queue = w.queue[1:]
		observers := append([]observerEntry(nil), w.observers...)
		w.mu.Unlock()
		for _, e := range observers {
			e.observer.OnEvent(q.event)
		}
		w.mu.Lock()
		if q.settled != nil {
			if w.settled == q.settled {
				w.settled = nil
			}
			close(q.settled)
		}
	}
	w.draining = false
	w.mu.Unlock()
}

func (w *DepositWorkflow) logger(op *operation) *log.Logger {
	return log.WithFields("operation", op.name, "generation", op.generation, utils.TraceID, utils.TraceIDFromContext(op.ctx))
}
