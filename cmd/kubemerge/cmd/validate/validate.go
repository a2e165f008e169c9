// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package validate

import (
	"errors"

	"github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/common"
	"github.com/siemens-healthineers/kubemerge/internal/core/validate"
	"github.com/siemens-healthineers/kubemerge/internal/host"
	"github.com/siemens-healthineers/kubemerge/internal/providers/kubeconfig"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	fileFlagName      = "file"
	fileFlagShorthand = "f"
	fileFlagUsage     = "Kubeconfig file to validate"

	defaultFile = "~/.kube/config"
)

const validateCommandExample = `
  # Validate the default kubeconfig
  kubemerge validate

  # Validate a specific file
  kubemerge validate -f ./merged.yaml
`

var ValidateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Validate the referential integrity of a kubeconfig file",
	Example: validateCommandExample,
	RunE:    validateConfigFile,
}

func init() {
	ValidateCmd.Flags().StringP(fileFlagName, fileFlagShorthand, defaultFile, fileFlagUsage)
	ValidateCmd.Flags().SortFlags = false
	ValidateCmd.Flags().PrintDefaults()
}

func validateConfigFile(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString(fileFlagName)

	path, err := host.ResolveTildePrefix(filePath)
	if err != nil {
		return err
	}

	config, err := kubeconfig.ReadFile(path)
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

	warnings, err := validate.Validate(config)
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

	if len(warnings) > 0 {
		pterm.Info.Printfln("'%s' is valid, but has %d warning(s)", path, len(warnings))
		return nil
	}

	pterm.Success.Printfln("'%s' is valid", path)

	if config.CurrentContext != "" {
		context, err := config.FindContext(config.CurrentContext)
		if err != nil {
			return err
		}
		pterm.Printfln("Current context: %s (cluster '%s', user '%s')", context.Name, context.Details.Cluster, context.Details.User)
	}

	return nil
}
