// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/drushgo/drush/internal/environ"
)

// NewGlobalFlags returns the flags shared by every snapshot-emitting
// command.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewEtcPrefixFlag constructs the "etc-prefix" flag. Values come from the
// explicit flag, then the DRUSH_ETC_PREFIX env var, then the config file
// when one was loaded. An empty value keeps the platform default.
func NewEtcPrefixFlag(cfgFile string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "etc-prefix",
		Usage: "prefix for the system configuration directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(environ.EtcPrefixEnvVar),
		),
		Value: "",
	}

	if cfgFile != "" {
		flag = valueChainFlagFromConfigFile(cfgFile, flag)
	}

	return
}

// NewSharePrefixFlag constructs the "share-prefix" flag with the same
// sourcing chain as NewEtcPrefixFlag.
func NewSharePrefixFlag(cfgFile string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "share-prefix",
		Usage: "prefix for the system share directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(environ.SharePrefixEnvVar),
		),
		Value: "",
	}

	if cfgFile != "" {
		flag = valueChainFlagFromConfigFile(cfgFile, flag)
	}

	return
}

// valueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func valueChainFlagFromConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML("env."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
