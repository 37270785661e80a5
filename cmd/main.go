package main

import (
	"fmt"
	"os"

	ckusdcdepositor "github.com/cketh-starter/ckusdc-depositor"
	"github.com/urfave/cli/v2"
)

const (
	flagCfg     = "cfg"
	flagNetwork = "network"
	flagYes     = "yes"
	flagAmount  = "amount"
	flagAddress = "address"
	flagHash    = "hash"
	flagStatus  = "status"
	flagLimit   = "limit"
)

const (
	// App name
	appName = "ckusdc-depositor"
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Deposit USDC into ckUSDC through the minter helper contract"
	app.Version = ckusdcdepositor.Version
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagCfg,
			Aliases:  []string{"c"},
			Usage:    "Configuration `FILE`",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagNetwork,
			Aliases:  []string{"n"},
			Usage:    "Network preset: sepolia, mainnet. Exclusive with the [NetworkConfig] section",
			Required: false,
		},
		&cli.BoolFlag{
			Name:    flagYes,
			Aliases: []string{"y"},
			Usage:   "Sign every transaction without asking",
		},
	}
	amountFlag := &cli.StringFlag{
		Name:     flagAmount,
		Aliases:  []string{"a"},
		Usage:    "Amount in token units, e.g. 100.5",
		Required: true,
	}
	addressFlag := &cli.StringFlag{
		Name:  flagAddress,
		Usage: "Deposit address to use instead of the fetched one",
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run an interactive deposit session",
			Action:  start,
			Flags:   flags,
		},
		{
			Name:   "address",
			Usage:  "Print the deposit address",
			Action: addressCmd,
			Flags:  flags,
		},
		{
			Name:   "approve",
			Usage:  "Approve the minter helper to spend an amount",
			Action: approveCmd,
			Flags:  append(append([]cli.Flag{}, flags...), amountFlag),
		},
		{
			Name:   "deposit",
			Usage:  "Approve, deposit and verify an amount",
			Action: depositCmd,
			Flags:  append(append([]cli.Flag{}, flags...), amountFlag, addressFlag),
		},
		{
			Name:   "verify",
			Usage:  "Verify a deposit tx hash",
			Action: verifyCmd,
			Flags: append(append([]cli.Flag{}, flags...), &cli.StringFlag{
				Name:     flagHash,
				Usage:    "Deposit tx hash",
				Required: true,
			}),
		},
		{
			Name:   "deposits",
			Usage:  "List the journaled deposits",
			Action: depositsCmd,
			Flags: append(append([]cli.Flag{}, flags...),
				&cli.StringFlag{
					Name:  flagStatus,
					Usage: "Deposit status: pending, confirmed, failed",
					Value: "pending",
				},
				&cli.UintFlag{
					Name:  flagLimit,
					Usage: "Maximum number of deposits",
					Value: 25, //nolint:gomnd
				},
			),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}
}
