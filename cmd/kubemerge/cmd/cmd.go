// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package cmd

import (
	"log/slog"

	cc "github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/common"
	me "github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/merge"
	va "github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/validate"
	ve "github.com/siemens-healthineers/kubemerge/cmd/kubemerge/cmd/version"
	"github.com/siemens-healthineers/kubemerge/cmd/kubemerge/common"
	"github.com/siemens-healthineers/kubemerge/cmd/kubemerge/utils/logging"
	"github.com/siemens-healthineers/kubemerge/internal/cli"
	bl "github.com/siemens-healthineers/kubemerge/internal/logging"

	"github.com/spf13/cobra"
)

func CreateRootCmd(logger *logging.Slogger) (*cobra.Command, error) {
	verbosity := bl.LevelToLowerString(slog.LevelInfo)
	showLog := false

	cmd := &cobra.Command{
		Use:               common.CliName,
		Short:             "kubemerge – command-line tool to consolidate kubeconfig files",
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetVerbosity(verbosity); err != nil {
				return err
			}

			logHandlers := []logging.HandlerBuilder{logging.NewFileHandler(bl.GlobalLogFilePath())}
			if showLog {
				logHandlers = append(logHandlers, logging.NewCliPtermHandler())
			}
			logger.SetHandlers(logHandlers...).SetGlobally()

			slog.Debug("log level set", "level", verbosity)

			return nil
		},
	}

	cmd.AddCommand(me.MergeCmd)
	cmd.AddCommand(va.ValidateCmd)
	cmd.AddCommand(ve.VersionCmd)

	persistentFlags := cmd.PersistentFlags()
	persistentFlags.BoolVarP(&showLog, cc.OutputFlagName, cc.OutputFlagShorthand, showLog, cc.OutputFlagUsage)
	persistentFlags.StringVarP(&verbosity, cli.VerbosityFlagName, cli.VerbosityFlagShorthand, verbosity, cli.VerbosityFlagHelp())

	return cmd, nil
}
