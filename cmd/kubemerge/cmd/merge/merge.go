// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package merge

import (
	"errors"
	"fmt"
	"time"

	"github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/common"
	"github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/merge/config"
	core "github.com/siemens-healthineers/kubemerge/internal/core/merge"
	"github.com/siemens-healthineers/kubemerge/internal/core/validate"
	"github.com/siemens-healthineers/kubemerge/internal/host"
	"github.com/siemens-healthineers/kubemerge/internal/os"
	"github.com/siemens-healthineers/kubemerge/internal/providers/kubeconfig"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const mergeCommandExample = `
  # Merge all kubeconfig files in ~/.kube into ~/.kube/config
  kubemerge merge

  # Merge a specific directory into a specific file
  kubemerge merge -i ./configs --out ./merged.yaml

  # Leave backup files and the current config out of the merge
  kubemerge merge -e backup -e config

  # Inspect the merge result without writing anything
  kubemerge merge --dry-run
`

var MergeCmd = &cobra.Command{
	Use:     "merge",
	Short:   "Merge all kubeconfig files of a directory into one canonical kubeconfig",
	Example: mergeCommandExample,
	RunE:    mergeConfigFiles,
}

func init() {
	MergeCmd.Flags().StringP(config.InputDirFlagName, config.InputDirFlagShorthand, "", config.InputDirFlagUsage)
	MergeCmd.Flags().String(config.OutputFileFlagName, "", config.OutputFileFlagUsage)
	MergeCmd.Flags().StringArrayP(config.ExcludeFlagName, config.ExcludeFlagShorthand, nil, config.ExcludeFlagUsage)
	MergeCmd.Flags().Bool(config.SkipInvalidFlagName, false, config.SkipInvalidFlagUsage)
	MergeCmd.Flags().Bool(config.DryRunFlagName, false, config.DryRunFlagUsage)
	MergeCmd.Flags().StringP(config.ConfigFileFlagName, config.ConfigFileFlagShorthand, "", config.ConfigFileFlagUsage)
	MergeCmd.Flags().SortFlags = false
	MergeCmd.Flags().PrintDefaults()
}

func mergeConfigFiles(cmd *cobra.Command, args []string) error {
	start := time.Now()

	configFile, _ := cmd.Flags().GetString(config.ConfigFileFlagName)

	options, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	inputDir, err := host.ResolveTildePrefix(options.InputDir)
	if err != nil {
		return err
	}

	outputFile, err := host.ResolveTildePrefix(options.OutputFile)
	if err != nil {
		return err
	}

	if !os.PathExists(inputDir) {
		return &common.CmdFailure{
			Severity: common.SeverityError,
			Code:     "input-dir-not-found",
			Message:  fmt.Sprintf("Input directory does not exist: %s", inputDir),
		}
	}

	paths, err := kubeconfig.FindConfigFiles(inputDir, options.Exclude)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return &common.CmdFailure{
			Severity: common.SeverityWarning,
			Code:     "no-config-files-found",
			Message:  fmt.Sprintf("No kubeconfig YAML files found in '%s'", inputDir),
		}
	}

	pterm.Printfln("Found %d kubeconfig files:", len(paths))
	for _, path := range paths {
		pterm.Printfln("  - %s", path)
	}

	documents, err := loadDocuments(paths, options.SkipInvalid)
	if err != nil {
		var parseError *kubeconfig.ParseError
		if errors.As(err, &parseError) {
			return &common.CmdFailure{
				Severity: common.SeverityError,
				Code:     "parse-failed",
				Message:  parseError.Error(),
			}
		}
		return err
	}

	merged, err := core.Merge(documents)
	if err != nil {
		if errors.Is(err, core.ErrNothingToMerge) {
			return &common.CmdFailure{
				Severity: common.SeverityWarning,
				Code:     "nothing-to-merge",
				Message:  fmt.Sprintf("No valid kubeconfig content found in '%s'", inputDir),
			}
		}
		return err
	}

	warnings, err := validate.Validate(merged)
	if err != nil {
		return &common.CmdFailure{
			Severity: common.SeverityError,
			Code:     "validation-failed",
			Message:  err.Error(),
		}
	}

	for _, warning := range warnings {
		pterm.Warning.Println(warning.String())
	}

	if options.DryRun {
		pterm.Info.Println("Dry run, not writing any files")
		printSummary(merged)
		return nil
	}

	if os.PathExists(outputFile) {
		backupPath, err := kubeconfig.Backup(outputFile)
		if err != nil {
			return err
		}
		pterm.Printfln("Created backup: %s", backupPath)
	}

	if err := kubeconfig.WriteFile(outputFile, merged); err != nil {
		return err
	}

	pterm.Success.Printfln("Merged %d files into '%s'", len(paths), outputFile)
	printSummary(merged)

	common.PrintCompletedMessage(time.Since(start), "merge")

	return nil
}
