// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sdkroot

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHome is returned when HOME is not set and DEVELOPER_DIR is not set either.
	ErrNoHome = errors.New("cannot determine home directory")
	// ErrReadConfig is returned when the configuration file cannot be opened or read.
	ErrReadConfig = errors.New("unable to read configuration file")
	// ErrEmptyConfig is returned when the configuration file holds no path.
	ErrEmptyConfig = errors.New("configuration file is empty")
	// ErrInvalidRoot is returned when selecting a path that is not a directory.
	ErrInvalidRoot = errors.New("invalid developer directory")
	// ErrWriteConfig is returned when the configuration file cannot be written or removed.
	ErrWriteConfig = errors.New("unable to write configuration file")
)

// ConfigError describes a failure to obtain the SDK root from the configuration file.
type ConfigError struct {
	Path string // Path of the configuration file, empty if it could not be determined.
	Err  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
