package main

import (
	"os"

	ckusdcdepositor "github.com/cketh-starter/ckusdc-depositor"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	ckusdcdepositor.PrintVersion(os.Stdout)
	return nil
}
