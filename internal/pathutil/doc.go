// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pathutil provides filesystem path normalization helpers shared
// by the environment resolver and the command layer.
package pathutil
