// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package environ resolves the runtime environment for the drush binary:
// the user's home directory, the install and base paths derived from a
// marker file inside the dependency tree, the per-platform system config
// and command-file directories, the documentation directory, and the
// terminal width. The resolved values are exported as a nested map that
// the configuration layer overlays onto its own tree.
//
// All derivations are pure string computations; nothing here validates
// that a directory actually exists except the documentation lookup, which
// performs existence checks only.
package environ
