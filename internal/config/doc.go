// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for drush's user
// configuration. The configuration is expected to be a YAML document
// located in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/drush.yaml or $HOME/.config/drush.yaml
//   - Windows: %APPDATA%/drush/drush.yaml
//
// The resolved environment snapshot is overlaid onto the loaded tree at
// bootstrap, so keys such as "env.cwd" or "drush.user-dir" resolve
// through the same getters as file-backed settings.
package config
