// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the urfave/cli application: the env command
// printing the resolved environment snapshot and the which command
// printing a single resolved path.
package command
