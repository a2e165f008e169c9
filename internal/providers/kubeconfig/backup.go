// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package kubeconfig

import (
	"fmt"
	"log/slog"
	"time"

	bos "github.com/siemens-healthineers/kubemerge/internal/os"
)

const backupTimestampFormat = "20060102-150405"

// Backup copies the given kubeconfig file to a timestamped sibling file
// and returns the backup path.
func Backup(path string) (string, error) {
	backupPath := fmt.Sprintf("%s.backup.%s", path, time.Now().Format(backupTimestampFormat))

	if err := bos.CopyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("could not create backup of '%s': %w", path, err)
	}

	slog.Info("Created backup", "path", backupPath)

	return backupPath, nil
}
