// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package kubeconfig

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	bos "github.com/siemens-healthineers/kubemerge/internal/os"
)

// FindConfigFiles scans the given directory (non-recursively) for kubeconfig yaml files,
// skipping files whose name contains any of the given exclusion patterns.
// The result is sorted lexicographically, which defines the merge precedence order.
func FindConfigFiles(dir string, excludePatterns []string) ([]string, error) {
	slog.Debug("Scanning directory for kubeconfig files", "dir", dir)

	files, err := bos.FilesInDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, file := range files {
		if !isYamlFile(file.Name()) {
			continue
		}
		if isExcluded(file.Name(), excludePatterns) {
			slog.Debug("Excluded file", "name", file.Name())
			continue
		}
		paths = append(paths, filepath.Join(dir, file.Name()))
	}

	sort.Strings(paths)

	slog.Debug("Found kubeconfig files", "count", len(paths))

	return paths, nil
}

func isYamlFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

func isExcluded(name string, excludePatterns []string) bool {
	return lo.SomeBy(excludePatterns, func(pattern string) bool {
		return strings.Contains(name, pattern)
	})
}
