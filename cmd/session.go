package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cketh-starter/ckusdc-depositor/token"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
)

const sessionHelp = `commands:
  address               fetch the deposit address
  set-address <addr>    use another deposit address, restarts the flow
  approve <amount>      approve the helper to spend amount
  deposit <amount>      deposit amount, confirmation and verification run in background
  verify <hash>         verify any deposit tx hash
  wait                  wait for the background confirmation and verification
  status                print the current state
  reset                 cancel pending work and start over
  quit                  leave the session
`

// lineReader owns the input. It serves lines to the session and, through
// Read, to the signing prompt, so both never race on the same file.
type lineReader struct {
	lines   <-chan string
	done    <-chan struct{}
	pending []byte
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return &lineReader{lines: lines, done: ctx.Done()}
}

// ReadLine blocks until a line is entered, the input ends or the context is done
func (r *lineReader) ReadLine() (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-r.done:
		return "", context.Canceled
	}
}

// Read implements io.Reader, one line at a time
func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		line, err := r.ReadLine()
		if err != nil {
			return 0, io.EOF
		}
		r.pending = []byte(line + "\n")
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

type session struct {
	wf    *workflow.DepositWorkflow
	asset token.Asset
	in    *lineReader
	out   io.Writer
}

func newSession(wf *workflow.DepositWorkflow, asset token.Asset, in *lineReader, out io.Writer) *session {
	return &session{wf: wf, asset: asset, in: in, out: out}
}

func (s *session) run(ctx context.Context) error {
	fmt.Fprint(s.out, sessionHelp)
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadLine()
		if err != nil {
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		quit, err := s.exec(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one session command. Operation errors are already in the state,
// they are returned only to be printed.
func (s *session) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	arg := func() (string, error) {
		if len(fields) != 2 { //nolint:gomnd
			return "", fmt.Errorf("usage: %s <value>", fields[0])
		}
		return fields[1], nil
	}

	switch fields[0] {
	case "help":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit":
		return true, nil
	case "address":
		addr, err := s.wf.RequestDepositAddress(ctx)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "deposit address: %s\n", addr)
	case "set-address":
		addr, err := arg()
		if err != nil {
			return false, err
		}
		return false, s.wf.SetDepositAddress(addr)
	case "approve":
		raw, err := arg()
		if err != nil {
			return false, err
		}
		_, err = s.wf.Approve(ctx, s.asset.ToBaseUnits(raw))
		return false, err
	case "deposit":
		raw, err := arg()
		if err != nil {
			return false, err
		}
		_, err = s.wf.Deposit(ctx, s.asset.ToBaseUnits(raw))
		return false, err
	case "verify":
		hash, err := arg()
		if err != nil {
			return false, err
		}
		_, err = s.wf.Verify(ctx, hash)
		return false, err
	case "wait":
		if err := s.wf.WaitSettled(ctx); err != nil {
			return false, err
		}
		return false, stateError(s.wf.Snapshot())
	case "status":
		printState(s.out, s.asset, s.wf.Snapshot())
	case "reset":
		s.wf.Reset()
	default:
		return false, fmt.Errorf("unknown command %q, try help", fields[0])
	}
	return false, nil
}

// stateError returns the error stored in an errored state
func stateError(st workflow.State) error {
	if st.Status == workflow.StatusErrored && st.Err != nil {
		return st.Err
	}
	return nil
}

func printState(out io.Writer, asset token.Asset, st workflow.State) {
	fmt.Fprintf(out, "status:          %s\n", st.Status)
	if st.InFlight != workflow.OpNone {
		fmt.Fprintf(out, "in flight:       %s\n", st.InFlight)
	}
	if st.DepositAddress != "" {
		fmt.Fprintf(out, "deposit address: %s\n", st.DepositAddress)
	}
	if st.Grant != nil {
		fmt.Fprintf(out, "approved:        %s %s (tx %s)\n", asset.Format(st.Grant.Amount), asset.Symbol, st.Grant.TxHash.Hex())
	}
	if st.Deposit != nil {
		fmt.Fprintf(out, "deposit:         %s %s, %s (tx %s)\n", asset.Format(st.Deposit.Amount), asset.Symbol, st.Deposit.Status, st.Deposit.Hash.Hex())
	}
	if st.Verification != nil {
		fmt.Fprintf(out, "verification:    %s\n", compactJSON(st.Verification.Outcome))
	}
	if st.Err != nil {
		fmt.Fprintf(out, "error:           %v\n", st.Err)
	}
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
