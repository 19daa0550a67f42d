// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version holds build information, set with -ldflags -X.
package version

var (
	// Version is set during the build process.
	Version = "0.0.1"
	// Commit is set during the build process.
	Commit = "unknown"
)

// String returns the version and commit for display.
func String() string {
	return Version + " (" + Commit + ")"
}
