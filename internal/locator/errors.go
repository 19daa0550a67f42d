// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package locator

import (
	"errors"
	"fmt"
)

// ErrNoSearchPath is returned when PATH is not set.
var ErrNoSearchPath = errors.New("failed to read PATH variable")

// NotFoundError is returned when no executable candidate was found.
type NotFoundError struct {
	Name string
	Err  error // Last error observed while probing candidates.
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("can't exec '%s': %v", e.Name, e.Err)
}

// Unwrap returns the last probe error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
