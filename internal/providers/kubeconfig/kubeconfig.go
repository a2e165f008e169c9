// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package kubeconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"
	bos "github.com/siemens-healthineers/kubemerge/internal/os"
	"github.com/siemens-healthineers/kubemerge/internal/yaml"
)

// ParseError indicates a kubeconfig document that is either not well-formed yaml
// or missing a structurally required field. Source carries the provenance identifier.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse kubeconfig '%s': %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes one kubeconfig document and checks its structural requirements,
// i.e. every cluster entry must declare a server endpoint.
func Parse(source string, data []byte) (*kubeconfig.Kubeconfig, error) {
	config, err := yaml.FromBytes[kubeconfig.Kubeconfig](data)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if config == nil {
		// blank document, not an error
		return &kubeconfig.Kubeconfig{}, nil
	}

	for _, cluster := range config.Clusters {
		if cluster.Details.Server == "" {
			return nil, &ParseError{
				Source: source,
				Err:    fmt.Errorf("cluster '%s' is missing the server endpoint", cluster.Name),
			}
		}
	}
	return config, nil
}

func ReadFile(path string) (*kubeconfig.Kubeconfig, error) {
	slog.Debug("Reading kubeconfig", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read kubeconfig '%s': %w", path, err)
	}
	return Parse(path, data)
}

// WriteFile serializes the given config to the given path, creating the parent
// directory if necessary. Absent optional collections are omitted entirely.
func WriteFile(path string, config *kubeconfig.Kubeconfig) error {
	slog.Debug("Writing kubeconfig", "path", path)

	if err := bos.CreateDirIfNotExisting(filepath.Dir(path)); err != nil {
		return err
	}

	if err := yaml.ToFile(path, config); err != nil {
		return fmt.Errorf("could not write kubeconfig '%s': %w", path, err)
	}
	return nil
}
