// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KubeDir returns the user's default kubeconfig directory, i.e. '~/.kube'.
func KubeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user home dir: %w", err)
	}
	return filepath.Join(homeDir, ".kube"), nil
}

// ResolveTildePrefix replaces the leading tilde ('~') in the given path with the current user's home directory.
func ResolveTildePrefix(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user home dir: %w", err)
	}
	return filepath.Clean(strings.Replace(path, "~", homeDir, 1)), nil
}
