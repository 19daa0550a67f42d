// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package xcodeselect implements the xcode-select command, which shows and
// changes the developer directory that xcrun falls back on.
package xcodeselect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/xcrun/internal/diag"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"github.com/matt-FFFFFF/xcrun/internal/sdkroot"
	"github.com/matt-FFFFFF/xcrun/internal/version"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	printPathFlag = "print-path"
	switchFlag    = "switch"
	resetFlag     = "reset"
	versionFlag   = "version"
)

var (
	// ErrNoAction is returned when no action flag is given.
	ErrNoAction = errors.New("no action specified, see --help")
	// ErrTooManyActions is returned when more than one action flag is given.
	ErrTooManyActions = errors.New("only one of --print-path, --switch, --reset or --version may be given")
)

// FsFactory returns the filesystem holding the configuration file.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// NewCmd creates the xcode-select command.
func NewCmd(env environ.Env, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      diag.ToolSelect,
		Usage:     "Manage the active developer directory",
		UsageText: "xcode-select [--print-path | --switch <path> | --reset | --version]",
		Description: `The active developer directory is where xcrun looks for tools that are not
found in PATH. DEVELOPER_DIR overrides it when set.`,
		Writer:         stdout,
		ErrWriter:      stderr,
		HideVersion:    true,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    printPathFlag,
				Aliases: []string{"p"},
				Usage:   "Print the path of the active developer directory",
			},
			&cli.StringFlag{
				Name:      switchFlag,
				Aliases:   []string{"s"},
				Usage:     "Set the active developer directory",
				TakesFile: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    resetFlag,
				Aliases: []string{"r"},
				Usage:   "Forget the configured developer directory",
			},
			&cli.BoolFlag{
				Name:    versionFlag,
				Aliases: []string{"v"},
				Usage:   "Print the xcode-select version",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return actionFunc(ctx, cmd, sdkroot.NewResolver(env, FsFactory()))
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command, r *sdkroot.Resolver) error {
	n := 0

	for _, set := range []bool{
		cmd.Bool(printPathFlag),
		cmd.IsSet(switchFlag),
		cmd.Bool(resetFlag),
		cmd.Bool(versionFlag),
	} {
		if set {
			n++
		}
	}

	switch {
	case n == 0:
		return ErrNoAction
	case n > 1:
		return ErrTooManyActions
	case cmd.Bool(versionFlag):
		_, err := fmt.Fprintf(cmd.Writer, "%s version %s.\n", diag.ToolSelect, version.Version)
		return err
	case cmd.Bool(printPathFlag):
		root, err := r.Resolve(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.Writer, root.Path)

		return err
	case cmd.IsSet(switchFlag):
		return r.Select(ctx, cmd.String(switchFlag))
	default:
		return r.Reset(ctx)
	}
}

// Execute runs xcode-select with the given process arguments and returns the exit status.
func Execute(ctx context.Context, args []string, env environ.Env, stdout, stderr io.Writer) int {
	if err := NewCmd(env, stdout, stderr).Run(ctx, args); err != nil {
		diag.Report(stderr, diag.ToolSelect, err)
		return 1
	}

	return 0
}
