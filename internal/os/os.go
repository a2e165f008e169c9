// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package os

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	bos "os"
	"path/filepath"
)

type Files []fs.FileInfo
type Paths []string

func CreateDirIfNotExisting(path string) error {
	if PathExists(path) {
		return nil
	}
	slog.Debug("Dir not existing, creating it", "path", path)

	if err := bos.MkdirAll(path, bos.ModePerm); err != nil {
		return fmt.Errorf("could not create directory '%s': %w", path, err)
	}
	return nil
}

func PathExists(path string) bool {
	_, err := bos.Stat(path)
	if err == nil {
		slog.Debug("Path exists", "path", path)
		return true
	}

	if !errors.Is(err, fs.ErrNotExist) {
		slog.Error("could not check existence of path", "path", path, "error", err)
	}
	return false
}

func CopyFile(source string, target string) error {
	slog.Debug("Copying file", "source-path", source, "target-path", target)

	data, err := bos.ReadFile(source)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", source, err)
	}

	if err = bos.WriteFile(target, data, bos.ModePerm); err != nil {
		return fmt.Errorf("could not write file '%s': %w", target, err)
	}
	return nil
}

// FilesInDir returns a list of files in the given directory.
// It does not check sub-directories (no recursion).
func FilesInDir(dir string) (files Files, err error) {
	paths, err := bos.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory '%s': %w", dir, err)
	}

	for _, path := range paths {
		if path.IsDir() {
			continue
		}

		file, err := path.Info()
		if err != nil {
			return nil, fmt.Errorf("could not get file info '%s': %w", path.Name(), err)
		}
		files = append(files, file)
	}
	return files, nil
}

// Join maps the given file infos to full paths within the given directory.
func (files Files) Join(dir string) Paths {
	paths := make(Paths, 0, len(files))
	for _, file := range files {
		paths = append(paths, filepath.Join(dir, file.Name()))
	}
	return paths
}
