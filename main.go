// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for xcrun.
// On success the process is replaced by the requested program and main never returns.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/xcrun/cmd"
	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
)

func main() {
	env := environ.OS()
	ctx := ctxlog.New(context.Background(), ctxlog.LoggerFromEnv(env, os.Args[0]))
	os.Exit(cmd.Execute(ctx, os.Args, env, os.Stdout, os.Stderr))
}
