// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diag writes user facing error lines of the form "<tool>: error: <message>".
// These lines are the tools' interface on stderr and are kept apart from ctxlog,
// which is for tracing only.
package diag

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/xcrun/internal/dispatch"
	"github.com/matt-FFFFFF/xcrun/internal/locator"
	"github.com/matt-FFFFFF/xcrun/internal/sdkroot"
	"golang.org/x/sys/unix"
)

const (
	// ToolXcrun prefixes diagnostics about command lookup and execution.
	ToolXcrun = "xcrun"
	// ToolSelect prefixes diagnostics about the developer directory configuration.
	ToolSelect = "xcode-select"
)

// Errorf writes a single diagnostic line for tool.
func Errorf(w io.Writer, tool, format string, args ...any) {
	fmt.Fprintf(w, "%s: error: %s\n", tool, fmt.Sprintf(format, args...)) //nolint:errcheck
}

// Report writes one diagnostic line per error, expanding a *multierror.Error in order.
// Errors Describe does not recognise are attributed to tool.
func Report(w io.Writer, tool string, err error) {
	if err == nil {
		return
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			Report(w, tool, e)
		}

		return
	}

	prefix, msg := Describe(err)
	if prefix == "" {
		prefix = tool
	}

	Errorf(w, prefix, "%s", msg)
}

// Describe returns the tool prefix and message used to report err.
// The prefix is empty when err is not one of the lookup or configuration errors.
func Describe(err error) (string, string) {
	var (
		cfgErr   *sdkroot.ConfigError
		notFound *locator.NotFoundError
		execErr  *dispatch.ExecError
	)

	switch {
	case errors.Is(err, sdkroot.ErrNoHome):
		return ToolSelect, "cannot determine home directory."
	case errors.Is(err, sdkroot.ErrEmptyConfig):
		return ToolSelect, "configuration file is empty."
	case errors.Is(err, sdkroot.ErrReadConfig) && errors.As(err, &cfgErr):
		return ToolSelect, fmt.Sprintf("unable to read configuration file. (errno=%s)", Errno(cfgErr.Err))
	case errors.Is(err, sdkroot.ErrWriteConfig) && errors.As(err, &cfgErr):
		return ToolSelect, fmt.Sprintf("unable to write configuration file. (errno=%s)", Errno(cfgErr.Err))
	case errors.Is(err, sdkroot.ErrInvalidRoot):
		return ToolSelect, err.Error()
	case errors.Is(err, locator.ErrNoSearchPath):
		return ToolXcrun, "failed to read PATH variable."
	case errors.As(err, &execErr):
		return ToolXcrun, fmt.Sprintf("can't exec '%s' (errno=%s)", execErr.Path, Errno(execErr.Err))
	case errors.As(err, &notFound):
		return ToolXcrun, fmt.Sprintf("can't exec '%s' (errno=%s)", notFound.Name, Errno(notFound.Err))
	}

	return "", err.Error()
}

// Errno returns the system error text carried by err, the way strerror would.
func Errno(err error) string {
	if err == nil {
		return ""
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		return Errno(errs[len(errs)-1])
	}

	return err.Error()
}
