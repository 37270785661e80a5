package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/models/journal"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func withDepositor(cliCtx *cli.Context, action func(*cli.Context, *depositor) error) error {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	cliCtx.Context = ctx

	d, err := newDepositor(ctx, c, newAuthorizer(cliCtx, newLineReader(ctx, os.Stdin)), os.Stderr)
	if err != nil {
		return err
	}
	defer d.close()
	return action(cliCtx, d)
}

func addressCmd(cliCtx *cli.Context) error {
	return withDepositor(cliCtx, func(cliCtx *cli.Context, d *depositor) error {
		addr, err := d.workflow.RequestDepositAddress(cliCtx.Context)
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	})
}

func approveCmd(cliCtx *cli.Context) error {
	return withDepositor(cliCtx, func(cliCtx *cli.Context, d *depositor) error {
		hash, err := d.workflow.Approve(cliCtx.Context, d.asset.ToBaseUnits(cliCtx.String(flagAmount)))
		if err != nil {
			return err
		}
		fmt.Println(hash.Hex())
		return nil
	})
}

// depositCmd runs the whole flow: address, approval, deposit, confirmation and verification
func depositCmd(cliCtx *cli.Context) error {
	return withDepositor(cliCtx, func(cliCtx *cli.Context, d *depositor) error {
		ctx := cliCtx.Context
		amount := d.asset.ToBaseUnits(cliCtx.String(flagAmount))
		if amount.Sign() <= 0 {
			return errors.Errorf("invalid amount %q", cliCtx.String(flagAmount))
		}

		if addr := cliCtx.String(flagAddress); addr != "" {
			if err := d.workflow.SetDepositAddress(addr); err != nil {
				return err
			}
		} else if _, err := d.workflow.RequestDepositAddress(ctx); err != nil {
			return err
		}
		if _, err := d.workflow.Approve(ctx, amount); err != nil {
			return err
		}
		hash, err := d.workflow.Deposit(ctx, amount)
		if err != nil {
			return err
		}
		log.Infof("waiting for deposit tx %s", hash.Hex())
		if err := d.workflow.WaitSettled(ctx); err != nil {
			return err
		}
		st := d.workflow.Snapshot()
		if err := stateError(st); err != nil {
			return err
		}
		printState(os.Stdout, d.asset, st)
		return nil
	})
}

func verifyCmd(cliCtx *cli.Context) error {
	return withDepositor(cliCtx, func(cliCtx *cli.Context, d *depositor) error {
		record, err := d.workflow.Verify(cliCtx.Context, cliCtx.String(flagHash))
		if err != nil {
			return err
		}
		fmt.Println(compactJSON(record.Outcome))
		return nil
	})
}

// depositsCmd lists the journal, it needs neither the node nor the wallet
func depositsCmd(cliCtx *cli.Context) error {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	if !c.Journal.Enabled {
		return errors.New("the deposit journal is disabled, set [Journal] Enabled = true")
	}
	status := cliCtx.String(flagStatus)
	switch status {
	case journal.StatusPending, journal.StatusConfirmed, journal.StatusFailed:
	default:
		return errors.Errorf("unknown deposit status %q", status)
	}
	ctx, cancel := signalContext()
	defer cancel()

	storage, err := newJournalStorage(c.Journal)
	if err != nil {
		return err
	}
	defer storage.Close()

	deposits, err := storage.GetDepositsByStatus(ctx, status, cliCtx.Uint(flagLimit), 0, nil)
	if err != nil {
		return err
	}
	asset := c.NetworkConfig.Asset()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0) //nolint:gomnd
	fmt.Fprintln(w, "TX HASH\tAMOUNT\tDESTINATION\tSTATUS\tBLOCK\tCREATED")
	for _, dep := range deposits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", dep.TxHash.Hex(), asset.Format(dep.Amount), dep.Destination, dep.Status, dep.BlockNumber, dep.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
