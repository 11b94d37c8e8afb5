// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/log"
	"github.com/drushgo/drush/internal/meta"
)

// whichCommandAction prints a single resolved path. The docs path is the
// only one that can legitimately be absent; that case is reported to the
// caller instead of printing an empty line.
func whichCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	applyPrefixFlags(cmd, m.Env)

	target := cmd.Args().First()
	var path string
	switch target {
	case "base":
		path = m.Env.BasePath()
	case "vendor":
		path = m.Env.VendorPath()
	case "user":
		path = m.Env.UserConfigPath()
	case "system":
		path = m.Env.SystemConfigPath()
	case "commands":
		path = m.Env.SystemCommandFilePath()
	case "docs":
		path = m.Env.DocsPath()
		if path == "" {
			return fmt.Errorf("no documentation directory found")
		}
	default:
		return fmt.Errorf("unknown path %q (want base, vendor, user, system, commands or docs)", target)
	}

	fmt.Println(path)
	return nil
}

// whichCommandBuilder constructs the cli.Command for "which".
func whichCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "which",
		Usage:     "print one resolved path",
		UsageText: "drush which <base|vendor|user|system|commands|docs> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewEtcPrefixFlag(meta.Config.Source),
			NewSharePrefixFlag(meta.Config.Source),
		},
		Action: whichCommandAction,
	}
}
