// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWindows(t *testing.T) {
	tests := []struct {
		osName string
		want   bool
	}{
		{osName: "windows", want: true},
		{osName: "Windows_NT", want: true},
		{osName: "win32", want: true},
		{osName: "WIN", want: true},
		{osName: "Linux", want: false},
		{osName: "linux", want: false},
		{osName: "Darwin", want: false},
		{osName: "darwin", want: false},
		{osName: "freebsd", want: false},
		{osName: "wi", want: false},
		{osName: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.osName, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWindows(tt.osName))
		})
	}
}
