// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package merge

import (
	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"

	"github.com/pterm/pterm"
)

// printSummary prints the content counts of the merged config.
// If no print function is provided, it defaults to pterm.Printfln.
func printSummary(config *kubeconfig.Kubeconfig, printFuncs ...func(format string, a ...any)) {
	printFunc := func(format string, a ...any) {
		pterm.Printfln(format, a...)
	}
	if len(printFuncs) > 0 {
		printFunc = printFuncs[0]
	}

	printFunc("Merged config contains:")
	printFunc("  - %d clusters", len(config.Clusters))
	printFunc("  - %d contexts", len(config.Contexts))
	printFunc("  - %d users", len(config.Users))

	if config.CurrentContext != "" {
		printFunc("  - Current context: %s", config.CurrentContext)
	} else {
		printFunc("  - No current context set")
	}
}
