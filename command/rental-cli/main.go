// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const (
	defaultConnect = "127.0.0.1:2130"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rental-cli"
	app.Usage = "hook and URIToken rental client for rentald"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	accountFlags := []cli.Flag{
		cli.StringFlag{
			Name:   "address, a",
			Value:  "",
			Usage:  "*account `ADDRESS`",
			EnvVar: "RENTAL_CLI_ADDRESS",
		},
		cli.StringFlag{
			Name:   "secret, s",
			Value:  "",
			Usage:  "*account family seed `SECRET`",
			EnvVar: "RENTAL_CLI_SECRET",
		},
	}
	addressFlag := cli.StringFlag{
		Name:   "address, a",
		Value:  "",
		Usage:  "*account `ADDRESS`",
		EnvVar: "RENTAL_CLI_ADDRESS",
	}
	tokenFlag := cli.StringFlag{
		Name:  "token, t",
		Value: "",
		Usage: "*URIToken `ID`",
	}
	txFlag := cli.StringFlag{
		Name:  "txid, t",
		Value: "",
		Usage: "*transaction `HASH`",
	}
	termsFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "amount, m",
			Value: "",
			Usage: "*total rental amount in XAH `AMOUNT`",
		},
		cli.StringFlag{
			Name:  "deadline, d",
			Value: "",
			Usage: "*rental end as RFC3339 `TIME`",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " rentald RPC `HOST:PORT`",
			EnvVar: "RENTAL_CLI_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display rentald and ledger status",
			Action: runInfo,
		},
		{
			Name:      "account",
			Usage:     "display account balance and sequence",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{addressFlag},
			Action:    runAccount,
		},
		{
			Name:      "namespace",
			Usage:     "display hook state of an account namespace",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag,
				cli.StringFlag{
					Name:  "namespace, n",
					Value: "",
					Usage: " namespace `HEX` [default rental hook namespace]",
				},
			},
			Action: runNamespace,
		},
		{
			Name:      "hooks",
			Usage:     "list hooks installed on an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{addressFlag},
			Action:    runHooks,
		},
		{
			Name:      "install",
			Usage:     "install the rental hook",
			ArgsUsage: "\n   (* = required)",
			Flags: append(accountFlags,
				cli.StringSliceFlag{
					Name:  "grant, g",
					Usage: " account permitted to modify the namespace `ADDRESS` (repeatable)",
				},
				cli.BoolFlag{
					Name:  "update, u",
					Usage: " replace the grants of an installed hook",
				},
			),
			Action: runInstall,
		},
		{
			Name:      "grant",
			Usage:     "grant another account access to the hook namespace",
			ArgsUsage: "\n   (* = required)",
			Flags: append(accountFlags,
				cli.StringFlag{
					Name:  "grantee, r",
					Value: "",
					Usage: "*account to grant `ADDRESS`",
				},
			),
			Action: runGrant,
		},
		{
			Name:      "reset",
			Usage:     "delete the state of a hook namespace",
			ArgsUsage: "\n   (* = required)",
			Flags: append(accountFlags,
				cli.StringFlag{
					Name:  "namespace, n",
					Value: "",
					Usage: "*namespace `HEX`",
				},
			),
			Action: runReset,
		},
		{
			Name:      "remove",
			Usage:     "uninstall the rental hook",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags,
			Action:    runRemove,
		},
		{
			Name:      "mint",
			Usage:     "mint a URIToken",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(accountFlags,
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "+token URI `TEXT`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "+token URI as `HEX`",
				},
			),
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "burn a URIToken",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(accountFlags, tokenFlag),
			Action:    runBurn,
		},
		{
			Name:      "tokens",
			Usage:     "list URITokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag,
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " only this URIToken `ID`",
				},
			},
			Action: runTokens,
		},
		{
			Name:      "offer",
			Usage:     "offer a token to start or finish a rental",
			ArgsUsage: "\n   (* = required)",
			Flags: append(append(accountFlags, termsFlags...),
				cli.StringFlag{
					Name:  "type, y",
					Value: "START",
					Usage: " offer `TYPE` [START|FINISH]",
				},
				cli.StringFlag{
					Name:  "destination, r",
					Value: "",
					Usage: "*account receiving the offer `ADDRESS`",
				},
				tokenFlag,
				cli.StringFlag{
					Name:  "rental-type, k",
					Value: "COLLATERAL_FREE",
					Usage: " `KIND` [COLLATERAL_FREE|COLLATERAL]",
				},
			),
			Action: runOffer,
		},
		{
			Name:      "accept",
			Usage:     "accept a rental offer",
			ArgsUsage: "\n   (* = required)",
			Flags: append(append(accountFlags, termsFlags...),
				cli.StringFlag{
					Name:  "type, y",
					Value: "START",
					Usage: " offer `TYPE` [START|FINISH]",
				},
				tokenFlag,
			),
			Action: runAccept,
		},
		{
			Name:      "cancel",
			Usage:     "cancel an outstanding offer",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(accountFlags, tokenFlag),
			Action:    runCancel,
		},
		{
			Name:      "status",
			Usage:     "display the journal record of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{txFlag},
			Action:    runStatus,
		},
		{
			Name:      "recent",
			Usage:     "list recent submissions of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{addressFlag},
			Action:    runRecent,
		},
		{
			Name:      "resubmit",
			Usage:     "submit a retained transaction again",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{txFlag},
			Action:    runResubmit,
		},
		{
			Name:  "version",
			Usage: "display rental-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintln(c.App.Writer, version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
