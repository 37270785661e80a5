package main

import (
	"fmt"
	"io"

	"github.com/cketh-starter/ckusdc-depositor/token"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
)

// printer reports the workflow progress on the terminal
type printer struct {
	out   io.Writer
	asset token.Asset
}

func newPrinter(out io.Writer, asset token.Asset) *printer {
	return &printer{out: out, asset: asset}
}

// OnEvent implements workflow.Observer
func (p *printer) OnEvent(e workflow.Event) {
	st := e.State
	switch {
	case e.Operation == workflow.OpRestart:
		fmt.Fprintf(p.out, "[%s] flow restarted\n", st.Status)
	case e.Phase == workflow.PhaseStarted:
		fmt.Fprintf(p.out, "[%s] %s...\n", st.Status, e.Operation)
	case e.Phase == workflow.PhaseSubmitted:
		fmt.Fprintf(p.out, "[%s] %s tx sent: %s\n", st.Status, e.Operation, e.TxHash.Hex())
	case e.Phase == workflow.PhaseConfirmed:
		fmt.Fprintf(p.out, "[%s] %s tx confirmed in block %d\n", st.Status, e.Operation, st.Deposit.BlockNumber)
	case e.Phase == workflow.PhaseFailed:
		fmt.Fprintf(p.out, "[%s] %s failed: %v\n", st.Status, e.Operation, st.Err)
	case e.Phase == workflow.PhaseSucceeded:
		p.succeeded(e)
	}
}

func (p *printer) succeeded(e workflow.Event) {
	st := e.State
	switch e.Operation {
	case workflow.OpRequestAddress:
		fmt.Fprintf(p.out, "[%s] deposit address: %s\n", st.Status, st.DepositAddress)
	case workflow.OpApprove:
		if st.Grant != nil {
			fmt.Fprintf(p.out, "[%s] %s %s approved for %s\n", st.Status, p.asset.Format(st.Grant.Amount), p.asset.Symbol, st.Grant.Spender.Hex())
		}
	default:
		if st.Verification != nil {
			hash := st.Verification.TxHash
			if hash == (common.Hash{}) {
				hash = e.TxHash
			}
			fmt.Fprintf(p.out, "[%s] tx %s verified: %s\n", st.Status, hash.Hex(), compactJSON(st.Verification.Outcome))
		}
	}
}
