// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/environ"
	"github.com/drushgo/drush/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// applyPrefixFlags feeds the prefix override flags into the environment.
// Empty flag values are no-ops, so unset flags leave the env-var or
// config-file sourced values (already applied at bootstrap) intact.
func applyPrefixFlags(cmd *cli.Command, env *environ.Environment) {
	env.
		SetEtcPrefix(cmd.String("etc-prefix")).
		SetSharePrefix(cmd.String("share-prefix"))
}
