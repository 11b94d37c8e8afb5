// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/environ"
	"github.com/drushgo/drush/internal/meta"
)

// captureStdout redirects os.Stdout around fn and returns what was
// written. The command actions print with fmt.Println, so tests read the
// process-level stream.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		os.Stdout = old
	}()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func fixtureMeta(t *testing.T) meta.Meta {
	t.Helper()

	// Keep the width probes from spawning anything.
	t.Setenv(environ.ColumnsEnvVar, "100")
	t.Setenv(environ.EtcPrefixEnvVar, "")
	t.Setenv(environ.SharePrefixEnvVar, "")

	return meta.Meta{
		Args:        []string{"drush", "env"},
		Context:     context.Background(),
		Env:         environ.New("/home/u", "/home/u/project", "/opt/drush/vendor/drush"),
		StartingDir: "/home/u/project",
	}
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))

	m := fixtureMeta(t)
	cmd := envCommandBuilder(m)
	got := GetMeta(cmd)
	assert.Equal(t, m.StartingDir, got.StartingDir)
	assert.Same(t, m.Env, got.Env)
}

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, OutputValidator("csv"))
}

func TestEnvCommand_Get(t *testing.T) {
	m := fixtureMeta(t)
	cmd := envCommandBuilder(m)

	out := captureStdout(t, func() {
		err := cmd.Run(context.Background(), []string{"env", "--get", "env.home"})
		assert.NoError(t, err)
	})
	assert.Equal(t, "/home/u", strings.TrimSpace(out))
}

func TestEnvCommand_GetWidth(t *testing.T) {
	m := fixtureMeta(t)
	cmd := envCommandBuilder(m)

	out := captureStdout(t, func() {
		err := cmd.Run(context.Background(), []string{"env", "--get", "options.width"})
		assert.NoError(t, err)
	})
	assert.Equal(t, "100", strings.TrimSpace(out))
}

func TestEnvCommand_GetUnknownKey(t *testing.T) {
	m := fixtureMeta(t)
	cmd := envCommandBuilder(m)

	err := cmd.Run(context.Background(), []string{"env", "--get", "nope.nothing"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown snapshot key")
}

func TestEnvCommand_EtcPrefixFlag(t *testing.T) {
	m := fixtureMeta(t)
	cmd := envCommandBuilder(m)

	out := captureStdout(t, func() {
		err := cmd.Run(context.Background(),
			[]string{"env", "--etc-prefix", "/custom", "--get", "drush.system-dir"})
		assert.NoError(t, err)
	})
	assert.Equal(t, "/custom/etc/drush", strings.TrimSpace(out))
}

func TestEnvCommand_SharePrefixFromEnvVar(t *testing.T) {
	m := fixtureMeta(t)
	t.Setenv(environ.SharePrefixEnvVar, "/opt/local")
	cmd := envCommandBuilder(m)

	out := captureStdout(t, func() {
		err := cmd.Run(context.Background(),
			[]string{"env", "--get", "drush.system-command-dir"})
		assert.NoError(t, err)
	})
	assert.Equal(t, "/opt/local/share/drush/commands", strings.TrimSpace(out))
}

func TestWhichCommand(t *testing.T) {
	tests := []struct {
		target  string
		want    string
		wantErr bool
	}{
		{target: "base", want: "/opt/drush"},
		{target: "vendor", want: "/opt/drush/vendor"},
		{target: "user", want: "/home/u/.drush"},
		{target: "commands", want: "/usr/share/drush/commands"},
		{target: "docs", wantErr: true},
		{target: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			m := fixtureMeta(t)
			cmd := whichCommandBuilder(m)

			var err error
			out := captureStdout(t, func() {
				err = cmd.Run(context.Background(), []string{"which", tt.target})
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestInitApp(t *testing.T) {
	t.Setenv(environ.ColumnsEnvVar, "100")
	t.Setenv("DRUSH_CFG_FILE", "/nonexistent/drush.yaml")

	app, err := InitApp(context.Background(), []string{"drush", "env"})
	require.NoError(t, err)
	assert.Equal(t, "drush", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "env")
	assert.Contains(t, names, "which")
}
