// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/config"
	"github.com/drushgo/drush/internal/log"
	"github.com/drushgo/drush/internal/meta"
	"github.com/drushgo/drush/internal/output"
)

// envCommandAction is the action handler for the "env" subcommand. It
// applies any prefix overrides, exports the environment snapshot, feeds
// it to the configuration overlay, and emits it per common flags.
func envCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	applyPrefixFlags(cmd, m.Env)

	// Note that exporting runs the terminal width probes.
	snapshot := m.Env.ExportSnapshot()
	config.Overlay(snapshot)

	if key := cmd.String("get"); key != "" {
		value, ok := output.Lookup(snapshot, key)
		if !ok {
			return fmt.Errorf("unknown snapshot key: %s", key)
		}
		fmt.Println(value)
		return nil
	}

	output.Spit(snapshot, cmd, os.Stdout)
	return nil
}

// envCommandBuilder constructs the cli.Command for "env", wiring
// metadata, flags, and the action handler.
func envCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "env",
		Usage:     "show the resolved runtime environment",
		UsageText: "drush env [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "get",
				Aliases: []string{"g"},
				Usage:   "print a single snapshot value by dotted key",
			},
			NewEtcPrefixFlag(meta.Config.Source),
			NewSharePrefixFlag(meta.Config.Source),
		}, NewGlobalFlags()...),
		Action: envCommandAction,
	}
}
