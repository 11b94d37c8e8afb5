// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package environ

import (
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/drushgo/drush/internal/log"
)

const (
	// ColumnsEnvVar short-circuits the terminal width probes when set to a
	// non-zero numeric value.
	ColumnsEnvVar = "DRUSH_COLUMNS"

	// DefaultColumns is the width assumed when every probe fails.
	DefaultColumns = 80
)

// Prober runs an external command and returns its combined stdout. It
// exists so tests can substitute canned probe output for the real
// stty/mode invocations.
type Prober interface {
	Output(name string, args ...string) (string, error)
}

// execProber is the live Prober backed by os/exec.
type execProber struct{}

func (execProber) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

var nonDigits = regexp.MustCompile(`\D`)

// CalculateColumns resolves the terminal width through a fallback chain:
// the DRUSH_COLUMNS variable, then `stty size`, then `mode con` on
// Windows, and finally DefaultColumns. Probe failures are absorbed; this
// never returns an error and never returns zero.
func (e *Environment) CalculateColumns() int {
	if v := os.Getenv(ColumnsEnvVar); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
		log.Debugf("environ: ignoring unusable %s=%q", ColumnsEnvVar, v)
	}

	if cols, ok := e.sttyColumns(); ok {
		return cols
	}

	if IsWindows(e.osName) {
		if cols, ok := e.modeConColumns(); ok {
			return cols
		}
	}

	return DefaultColumns
}

// sttyColumns probes `stty size`, whose first line is "<rows> <cols>".
func (e *Environment) sttyColumns() (int, bool) {
	out, err := e.probe.Output("stty", "size")
	if err != nil {
		log.Tracef("environ: stty probe failed: %v", err)
		return 0, false
	}

	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}

	cols, err := strconv.Atoi(fields[1])
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// modeConColumns probes `mode con`, whose fifth output line carries the
// column count. Everything but digits is stripped before parsing.
func (e *Environment) modeConColumns() (int, bool) {
	out, err := e.probe.Output("mode", "con")
	if err != nil {
		log.Tracef("environ: mode con probe failed: %v", err)
		return 0, false
	}

	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		return 0, false
	}

	cols, err := strconv.Atoi(nonDigits.ReplaceAllString(lines[4], ""))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}
