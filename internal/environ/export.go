// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package environ

// ExportSnapshot returns the resolved environment as a nested map. The
// group and key names are consumed by the configuration overlay and by
// external tooling; they are part of the contract and must not be
// renamed. A missing docs directory exports as the empty string.
//
// Calling this runs the terminal width probes, so it spawns external
// processes unless DRUSH_COLUMNS is set.
func (e *Environment) ExportSnapshot() map[string]interface{} {
	return map[string]interface{}{
		"env": map[string]interface{}{
			"cwd":        e.Cwd(),
			"home":       e.HomeDir(),
			"is-windows": IsWindows(e.osName),
		},
		"options": map[string]interface{}{
			"width": e.CalculateColumns(),
		},
		AppName: map[string]interface{}{
			"base-dir":           e.BasePath(),
			"vendor-dir":         e.VendorPath(),
			"docs-dir":           e.DocsPath(),
			"user-dir":           e.UserConfigPath(),
			"system-dir":         e.SystemConfigPath(),
			"system-command-dir": e.SystemCommandFilePath(),
		},
	}
}
