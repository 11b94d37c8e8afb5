// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pathutil

import (
	"path/filepath"
)

// Canonicalize converts path to its canonical absolute form: relative
// segments are resolved against the current working directory and
// symlinks are expanded when the path exists on disk. A syntactically
// well-formed path that does not exist is still returned in cleaned
// absolute form rather than failing; callers of this package compute
// path strings, not guarantees of existence.
//
// Canonicalize is idempotent: applying it to its own output is a no-op.
func Canonicalize(path string) string {
	if path == "" {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		// filepath.Abs only fails when the cwd is unavailable; fall
		// back to a lexical cleanup.
		return filepath.Clean(path)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
