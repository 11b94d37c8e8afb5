// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/config"
	"github.com/drushgo/drush/internal/environ"
	"github.com/drushgo/drush/internal/log"
	"github.com/drushgo/drush/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup; the environment keeps the canonical form
	// for the rest of the process even if a command chdirs later.
	sd, _ := os.Getwd()

	// Home is not validated here. An unresolvable home yields an empty
	// string and the derived user paths surface that downstream.
	home, _ := os.UserHomeDir()

	// The binary itself is the marker inside the install tree: its parent
	// is the vendor dir and its grandparent the application base dir.
	marker, err := os.Executable()
	if err != nil {
		marker = args[0]
	}

	env := environ.New(home, sd, marker).ApplyEnvironment()

	// The arg[1] immediately following the binary is the drush subcommand
	// and also the namespace key used when retrieving config values.
	// arg[1] could be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Debugf("no config file loaded: %v", cfgErr)
	}
	cfg.Namespace = ns
	config.Config.Namespace = ns

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Env:         env,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "drush",
		Usage: "runtime environment resolver",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "drush version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		envCommandBuilder(m),
		whichCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
