// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drushgo/drush/internal/log"
)

// Type is the in-memory representation of the loaded configuration plus
// the overlaid environment snapshot.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, if any.
//   - Namespace: optional dot-prefixed keyspace preferred on lookups
//     (e.g. "drush" makes "user-dir" resolve as "drush.user-dir" first).
//   - Data: raw key/value tree; YAML values first, then any overlays.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the global configuration instance for the process.
var Config Type

// Load reads the YAML configuration file and populates the global Config.
// A missing config file is not an error for the application as a whole;
// callers typically ignore the error and work with an empty tree that the
// environment snapshot is overlaid onto.
func Load() (Type, error) {
	path, err := configFile()
	if err != nil {
		Config = Type{Data: map[string]interface{}{}}
		return Config, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		Config = Type{Data: map[string]interface{}{}}
		return Config, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		Config = Type{Data: map[string]interface{}{}}
		return Config, err
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// Overlay deep-merges the given tree into the global Config. Scalar
// values in the overlay win over values already present; nested maps are
// merged key by key. The environment snapshot is applied this way at
// bootstrap so resolved paths are reachable through the same dotted-key
// lookups as file-backed settings.
func Overlay(tree map[string]interface{}) {
	if Config.Data == nil {
		Config.Data = map[string]interface{}{}
	}
	merge(Config.Data, tree)
}

func merge(dst, src map[string]interface{}) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]interface{}); ok {
			if dstMap, ok := dst[key].(map[string]interface{}); ok {
				merge(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

// GetString returns the string value for the given dotted key path. If
// the key is not found and a single defaultValue is provided, the default
// is returned. Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetInt returns the integer value for the given dotted key path. YAML
// numbers may decode as int, int64, or float64; common cases are handled.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetBool returns the boolean value for the given dotted key path.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}
	return b, nil
}

// get traverses the configuration tree using a dotted key path. If
// Namespace is set, a namespaced candidate key is attempted first
// (Namespace + "." + kspec), then the unnamespaced key.
func (cfg *Type) get(kspec string) (interface{}, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// configFile returns the absolute path to the YAML config file. If the
// DRUSH_CFG_FILE environment variable is set, it is treated as the full
// path to the config file. Otherwise the OS-specific user configuration
// directory returned by os.UserConfigDir is used with the filename
// "drush.yaml". The file must exist and not be a directory.
func configFile() (string, error) {
	if cfgPath := os.Getenv("DRUSH_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from DRUSH_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("DRUSH_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at DRUSH_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "drush.yaml")
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("no config file found in standard locations")
}
