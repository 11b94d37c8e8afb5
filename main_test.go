// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no version flag",
			args: []string{"drush", "env"},
			want: false,
		},
		{
			name: "long flag",
			args: []string{"drush", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"drush", "-v"},
			want: true,
		},
		{
			name: "flag after command",
			args: []string{"drush", "env", "--version"},
			want: true,
		},
		{
			name: "empty args",
			args: []string{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bare binary gets help",
			args:     []string{"drush"},
			expected: []string{"drush", "--help"},
		},
		{
			name:     "command present is untouched",
			args:     []string{"drush", "env"},
			expected: []string{"drush", "env"},
		},
		{
			name:     "command and flags untouched",
			args:     []string{"drush", "env", "--output", "json"},
			expected: []string{"drush", "env", "--output", "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleNakedCommand(tt.args); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}
