// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package yaml

import (
	"fmt"
	"os"

	y "gopkg.in/yaml.v3"
)

func FromFile[T any](path string) (v *T, err error) {
	binaries, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file '%s': %w", path, err)
	}
	return FromBytes[T](binaries)
}

func FromBytes[T any](binaries []byte) (v *T, err error) {
	err = y.Unmarshal(binaries, &v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshall binary data to yaml: %w", err)
	}
	return v, nil
}

func ToBytes[T any](v *T) ([]byte, error) {
	binaries, err := y.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshall data to yaml: %w", err)
	}
	return binaries, nil
}

func ToFile[T any](path string, v *T) error {
	binaries, err := ToBytes(v)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, binaries, os.ModePerm); err != nil {
		return fmt.Errorf("could not write file '%s': %w", path, err)
	}
	return nil
}
