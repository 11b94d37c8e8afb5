// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package environ

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/drushgo/drush/internal/log"
	"github.com/drushgo/drush/internal/pathutil"
)

const (
	// AppName is the well-known application name used in derived paths
	// (~/.drush, /etc/drush, /usr/share/drush/...).
	AppName = "drush"

	// EtcPrefixEnvVar and SharePrefixEnvVar override the system prefix
	// defaults when set and non-empty.
	EtcPrefixEnvVar   = "DRUSH_ETC_PREFIX"
	SharePrefixEnvVar = "DRUSH_SHARE_PREFIX"
)

// Environment holds the resolved runtime environment. Construct one per
// process with New; the home, cwd and marker-derived paths are fixed at
// construction, while the etc/share prefixes may be adjusted during
// bootstrap via the setters.
type Environment struct {
	homeDir    string
	cwd        string
	basePath   string
	vendorPath string

	// Empty means "use the platform default".
	etcPrefix   string
	sharePrefix string

	// Docs directory is recomputed whenever docsStale is set, which
	// happens at construction and on every share-prefix change.
	docsPath  string
	docsStale bool

	// osName is runtime.GOOS except in tests.
	osName string

	probe Prober
}

// New builds an Environment from the ambient process state. home is the
// user's home directory (not validated), cwd is the working directory at
// startup (canonicalized here), and markerPath is a file inside the
// application's own dependency tree: its parent directory becomes the
// vendor path and its grandparent the application base path.
func New(home string, cwd string, markerPath string) *Environment {
	e := &Environment{
		homeDir:    home,
		cwd:        pathutil.Canonicalize(cwd),
		basePath:   filepath.Dir(filepath.Dir(markerPath)),
		vendorPath: filepath.Dir(markerPath),
		docsStale:  true,
		osName:     runtime.GOOS,
		probe:      execProber{},
	}
	log.Tracef("environ: home=%s cwd=%s base=%s vendor=%s",
		e.homeDir, e.cwd, e.basePath, e.vendorPath)
	return e
}

// HomeDir returns the user's home directory as supplied at construction.
func (e *Environment) HomeDir() string {
	return e.homeDir
}

// Cwd returns the canonical working directory captured at startup.
func (e *Environment) Cwd() string {
	return e.cwd
}

// BasePath returns the application base directory, two levels up from the
// marker path.
func (e *Environment) BasePath() string {
	return e.basePath
}

// VendorPath returns the install root, the directory containing the
// marker path.
func (e *Environment) VendorPath() string {
	return e.vendorPath
}

// UserConfigPath returns the per-user configuration directory,
// ~/.drush by convention.
func (e *Environment) UserConfigPath() string {
	return e.homeDir + "/." + AppName
}

// SystemConfigPath returns the system-wide configuration directory,
// <etc-prefix>/etc/drush. The prefix is the override when set, otherwise
// empty on POSIX systems and %ALLUSERSPROFILE%/Drush on Windows.
func (e *Environment) SystemConfigPath() string {
	prefix := e.etcPrefix
	if prefix == "" && IsWindows(e.osName) {
		prefix = e.windowsPrefix()
	}
	return prefix + "/etc/" + AppName
}

// SystemCommandFilePath returns the directory holding system-wide command
// files, <share-prefix>/share/drush/commands. The prefix defaults to /usr
// on POSIX systems and %ALLUSERSPROFILE%/Drush on Windows.
func (e *Environment) SystemCommandFilePath() string {
	return e.resolvedSharePrefix() + "/share/" + AppName + "/commands"
}

// DocsPath returns the directory containing the application README, or ""
// when no candidate exists. The result is cached until the share prefix
// changes, since the second candidate lives under it.
func (e *Environment) DocsPath() string {
	if !e.docsStale {
		return e.docsPath
	}

	candidates := []string{
		e.basePath + "/README.md",
		e.resolvedSharePrefix() + "/share/doc/" + AppName + "/README.md",
	}

	e.docsPath = ""
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			e.docsPath = filepath.Dir(candidate)
			break
		}
	}
	e.docsStale = false

	log.Tracef("environ: docs path resolved to %q", e.docsPath)
	return e.docsPath
}

// SetEtcPrefix overrides the etc prefix. An empty value is a no-op so the
// setter can be fed straight from a possibly-unset environment variable.
// Returns the receiver for chaining.
func (e *Environment) SetEtcPrefix(prefix string) *Environment {
	if prefix != "" {
		e.etcPrefix = prefix
	}
	return e
}

// SetSharePrefix overrides the share prefix with the same empty-is-no-op
// semantics as SetEtcPrefix. A change invalidates the cached docs path.
func (e *Environment) SetSharePrefix(prefix string) *Environment {
	if prefix != "" {
		e.sharePrefix = prefix
		e.docsStale = true
	}
	return e
}

// ApplyEnvironment feeds the prefix setters from the process environment.
// Unset variables leave the prior values untouched.
func (e *Environment) ApplyEnvironment() *Environment {
	return e.
		SetEtcPrefix(os.Getenv(EtcPrefixEnvVar)).
		SetSharePrefix(os.Getenv(SharePrefixEnvVar))
}

// resolvedSharePrefix returns the share prefix honoring the override.
func (e *Environment) resolvedSharePrefix() string {
	if e.sharePrefix != "" {
		return e.sharePrefix
	}
	if IsWindows(e.osName) {
		return e.windowsPrefix()
	}
	return "/usr"
}

// windowsPrefix is the shared default prefix on Windows-family systems.
func (e *Environment) windowsPrefix() string {
	return os.Getenv("ALLUSERSPROFILE") + "/Drush"
}
