// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package environ

import "strings"

// IsWindows reports whether the given OS name denotes a Windows-family
// system. The comparison is case-insensitive and only considers the first
// three characters, so "windows", "Windows_NT" and "win32" all match.
// Callers pass runtime.GOOS for the live platform.
func IsWindows(osName string) bool {
	return len(osName) >= 3 && strings.EqualFold(osName[:3], "win")
}
