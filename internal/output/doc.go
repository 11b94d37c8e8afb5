// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders the resolved environment snapshot as a text
// table, JSON, or YAML, and resolves single dotted keys for --get.
package output
