// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/drushgo/drush/internal/config"
)

// Row is one flattened snapshot entry: a dotted key and its display value.
type Row struct {
	Key   string
	Value string
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch v := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if v == "" {
			return emptyValue[0]
		}
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	case bool:
		return strconv.FormatBool(v)
	default:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(jsonBytes)
	}
}

// Flatten walks the nested snapshot and returns sorted dotted-key rows,
// e.g. {"env": {"cwd": "/x"}} becomes one row with key "env.cwd".
func Flatten(snapshot map[string]interface{}) []Row {
	var rows []Row
	flattenWalker("", snapshot, &rows)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key < rows[j].Key
	})
	return rows
}

func flattenWalker(prefix string, tree map[string]interface{}, rows *[]Row) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			flattenWalker(full, nested, rows)
			continue
		}
		*rows = append(*rows, Row{Key: full, Value: InterfaceToString(value, "-")})
	}
}

// Lookup resolves one dotted key from the snapshot and returns its string
// form, plus whether the key exists at all.
func Lookup(snapshot map[string]interface{}, key string) (string, bool) {
	jsonBytes, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("Lookup marshal: %v", err)
		return "", false
	}

	result := gjson.GetBytes(jsonBytes, key)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// Spit renders the snapshot to w according to the command's --output flag:
// "json" and "yaml" emit the nested structure verbatim, anything else is
// the flattened text table. Output is written to w; if w is nil, os.Stdout
// is used.
func Spit(snapshot map[string]interface{}, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(snapshot)
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(Flatten(snapshot), cmd, w)
	}
}

// TableWriter renders the flattened rows in tabular form honoring the
// color and titles options. Color is only applied when stdout is an
// actual terminal.
func TableWriter(rows []Row, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		keyStyle    = cellStyle
		valueStyle  = cellStyle
	)

	if cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd())) {
		headerColor, keyColor, valueColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		keyStyle = keyStyle.Foreground(keyColor)
		valueStyle = valueStyle.Foreground(valueColor)
	}

	var cells [][]string
	for _, row := range rows {
		cells = append(cells, []string{row.Key, row.Value})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case col == 0:
				style = keyStyle
			default:
				style = valueStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("key", "value").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering. Explicit
// colors from the config win; otherwise defaults are picked per terminal
// background so output stays visible on light and dark themes.
func getColors(key string) (header, keyCol, valueCol color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	keyCol = resolveColor(key+".key", "#0088a0", "#00c8f0")
	valueCol = resolveColor(key+".value", "#333333", "#ffffff")

	return
}
