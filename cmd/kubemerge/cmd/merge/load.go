// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package merge

import (
	"errors"
	"log/slog"

	core "github.com/siemens-healthineers/kubemerge/internal/core/merge"
	"github.com/siemens-healthineers/kubemerge/internal/providers/kubeconfig"

	"github.com/pterm/pterm"
)

// loadDocuments reads and parses the given files, preserving their order.
// The first parse failure aborts loading unless skipInvalid is set.
func loadDocuments(paths []string, skipInvalid bool) ([]core.Document, error) {
	var documents []core.Document

	for _, path := range paths {
		slog.Info("Processing kubeconfig file", "path", path)

		config, err := kubeconfig.ReadFile(path)
		if err != nil {
			var parseError *kubeconfig.ParseError
			if skipInvalid && errors.As(err, &parseError) {
				slog.Warn("Skipping invalid kubeconfig file", "path", path, "error", err)
				pterm.Warning.Printfln("Skipping invalid kubeconfig file '%s'", path)
				continue
			}
			return nil, err
		}

		documents = append(documents, core.Document{Source: path, Config: config})
	}
	return documents, nil
}
