// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/command/note-cli/configuration"
	"github.com/bitmark-inc/noteprogram/util"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if loggingStarted {
		logger.Finalise()
	}
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "note-cli"
	app.Usage = "manage notes on the local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: defaultConfigFile(),
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed and key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise note-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ledger, l",
					Value: "",
					Usage: "*ledger configuration `FILE`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "account",
			Usage:  "display the accounts of all identities",
			Action: runAccount,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports to the identity account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*amount to credit `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account `ADDRESS` default is the identity account",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "create",
			Usage:     "create a new note paid for by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: " note `TITLE`",
				},
				cli.StringFlag{
					Name:  "body, b",
					Value: "",
					Usage: " note `BODY`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: " authority `ADDRESS` default is the identity account",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "update",
			Usage:     "replace the title and body of a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "note, n",
					Value: "",
					Usage: "*note `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: " note `TITLE`",
				},
				cli.StringFlag{
					Name:  "body, b",
					Value: "",
					Usage: " note `BODY`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "delete a note and recover its balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "note, n",
					Value: "",
					Usage: "*note `ADDRESS`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "show",
			Usage:     "display a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "note, n",
					Value: "",
					Usage: "*note `ADDRESS`",
				},
			},
			Action: runShow,
		},
		{
			Name:  "version",
			Usage: "display note-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate":
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if util.EnsureFileExists(file) {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	return app
}

// $XDG_CONFIG_HOME/note-cli/note-cli.json
func defaultConfigFile() string {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		home, err := os.UserHomeDir()
		if nil != err {
			return ""
		}
		p = filepath.Join(home, ".config")
	}
	return filepath.Join(p, "note-cli", "note-cli.json")
}
