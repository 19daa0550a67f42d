// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch replaces the running process with a resolved executable.
//
// The check made by the locator and the exec here are separate system calls, so the
// file can change in between. When exec fails the error is returned as-is and no
// other candidate is tried.
package dispatch

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"github.com/matt-FFFFFF/xcrun/internal/locator"
	"golang.org/x/sys/unix"
)

// ExecFunc performs the process replacement. On success it does not return.
// It is a variable so tests can replace it.
var ExecFunc = unix.Exec

// ExecError is returned when a resolved executable could not be executed.
type ExecError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("can't exec '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying system error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Exec replaces the current process with res, passing env unchanged.
// It only returns if the replacement failed.
func Exec(ctx context.Context, res locator.Resolution, env environ.Env) error {
	ctxlog.Debug(ctx, "exec", "path", res.Path, "args", res.Args, "via", res.Via.String())

	if err := ExecFunc(res.Path, res.Args, env.List()); err != nil {
		return &ExecError{Path: res.Path, Err: err}
	}

	return nil
}

// LocateAndExec resolves req with l and replaces the current process with the result.
// It only returns on failure, with either the lookup error or an *ExecError.
func LocateAndExec(ctx context.Context, l *locator.Locator, req locator.Request) error {
	res, err := l.Locate(ctx, req)
	if err != nil {
		return err
	}

	return Exec(ctx, res, l.Env())
}
