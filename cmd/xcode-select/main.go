// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Command xcode-select shows and changes the active developer directory used by xcrun.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/xcrun/cmd/xcodeselect"
	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
)

func main() {
	env := environ.OS()
	ctx := ctxlog.New(context.Background(), ctxlog.LoggerFromEnv(env, os.Args[0]))
	os.Exit(xcodeselect.Execute(ctx, os.Args, env, os.Stdout, os.Stderr))
}
