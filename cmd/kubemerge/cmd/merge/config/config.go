// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/siemens-healthineers/kubemerge/internal/host"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// MergeOptions are the effective options of a merge run. Precedence, lowest to
// highest: built-in defaults, options file, environment, explicit CLI flags.
type MergeOptions struct {
	InputDir    string   `mapstructure:"inputDir"`
	OutputFile  string   `mapstructure:"outputFile"`
	Exclude     []string `mapstructure:"exclude"`
	SkipInvalid bool     `mapstructure:"skipInvalid"`
	DryRun      bool     `mapstructure:"dryRun"`
}

const (
	InputDirFlagName      = "input"
	InputDirFlagShorthand = "i"
	InputDirFlagUsage     = "Input directory containing kubeconfig files"

	OutputFileFlagName  = "out"
	OutputFileFlagUsage = "Output file path"

	ExcludeFlagName      = "exclude"
	ExcludeFlagShorthand = "e"
	ExcludeFlagUsage     = "Exclude files whose name contains the given pattern (repeatable)"

	SkipInvalidFlagName  = "skip-invalid"
	SkipInvalidFlagUsage = "Skip files that cannot be parsed instead of aborting the merge"

	DryRunFlagName  = "dry-run"
	DryRunFlagUsage = "Merge and validate without writing the output file or creating a backup"

	ConfigFileFlagName      = "config"
	ConfigFileFlagShorthand = "c"
	ConfigFileFlagUsage     = "Path to an options file; explicit CLI flags overwrite its values"

	envPrefix = "KUBEMERGE"
)

// Load builds the effective merge options from defaults, the optional options
// file, environment variables and the given CLI flags.
func Load(filePath string, flags *pflag.FlagSet) (*MergeOptions, error) {
	kubeDir, err := host.KubeDir()
	if err != nil {
		return nil, err
	}

	vConfig := viper.New()
	vConfig.SetDefault("inputDir", kubeDir)
	vConfig.SetDefault("outputFile", filepath.Join(kubeDir, "config"))
	vConfig.SetEnvPrefix(envPrefix)
	vConfig.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vConfig.AutomaticEnv()

	if filePath != "" {
		vConfig.SetConfigFile(filePath)

		if err := vConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read options file '%s': %w", filePath, err)
		}
		slog.Debug("Options file loaded", "path", vConfig.ConfigFileUsed())
	}

	var options MergeOptions
	if err := vConfig.Unmarshal(&options); err != nil {
		return nil, fmt.Errorf("could not unmarshal merge options: %w", err)
	}

	overwriteFromFlags(&options, flags)

	slog.Debug("Merge options determined", "options", fmt.Sprintf("%+v", options))

	return &options, nil
}

func overwriteFromFlags(options *MergeOptions, flags *pflag.FlagSet) {
	if flags.Changed(InputDirFlagName) {
		options.InputDir, _ = flags.GetString(InputDirFlagName)
	}
	if flags.Changed(OutputFileFlagName) {
		options.OutputFile, _ = flags.GetString(OutputFileFlagName)
	}
	if flags.Changed(ExcludeFlagName) {
		options.Exclude, _ = flags.GetStringArray(ExcludeFlagName)
	}
	if flags.Changed(SkipInvalidFlagName) {
		options.SkipInvalid, _ = flags.GetBool(SkipInvalidFlagName)
	}
	if flags.Changed(DryRunFlagName) {
		options.DryRun, _ = flags.GetBool(DryRunFlagName)
	}
}
