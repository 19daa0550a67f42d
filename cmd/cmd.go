// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for xcrun.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/diag"
	"github.com/matt-FFFFFF/xcrun/internal/dispatch"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"github.com/matt-FFFFFF/xcrun/internal/locator"
	"github.com/matt-FFFFFF/xcrun/internal/version"
	"github.com/urfave/cli/v3"
)

const usageFormat = "Usage: %s <program>\n"

// NewRootCmd creates the xcrun command.
// Flags are not parsed: every argument after the program name is passed to it untouched.
func NewRootCmd(env environ.Env, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      diag.ToolXcrun,
		Usage:     "Find and run a developer tool",
		UsageText: "xcrun <program> [args...]",
		Description: `xcrun looks up <program> in each directory of PATH, in order, and then in
the bin directory of the active developer directory (DEVELOPER_DIR, or the
path stored in ~/.darwinsdk.dat by xcode-select). The first executable found
replaces the xcrun process and receives the remaining arguments.`,
		Version:         version.Version,
		Writer:          stdout,
		ErrWriter:       stderr,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		ExitErrHandler:  func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, env, cmd)
		},
	}
}

func run(ctx context.Context, env environ.Env, cmd *cli.Command) error {
	argv := cmd.Args().Slice()
	if len(argv) == 0 {
		fmt.Fprintf(cmd.ErrWriter, usageFormat, cmd.Name) //nolint:errcheck
		return cli.Exit("", 1)
	}

	req := locator.NewRequest(argv)
	ctxlog.Debug(ctx, "xcrun", "version", version.String(), "program", req.Name)

	err := dispatch.LocateAndExec(ctx, locator.New(env), req)
	if err == nil {
		return nil
	}

	diag.Report(cmd.ErrWriter, diag.ToolXcrun, err)
	diag.Errorf(cmd.ErrWriter, diag.ToolXcrun, "failed to execute command '%s'. aborting.", req.Name)

	return cli.Exit("", 1)
}

// Execute runs xcrun with the given process arguments and returns the exit status.
// It only returns when the program could not be run.
func Execute(ctx context.Context, args []string, env environ.Env, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		prog := diag.ToolXcrun
		if len(args) > 0 {
			prog = args[0]
		}

		fmt.Fprintf(stderr, usageFormat, prog) //nolint:errcheck

		return 1
	}

	return exitCode(NewRootCmd(env, stdout, stderr).Run(ctx, args))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return 1
}
