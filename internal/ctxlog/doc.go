// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context.
//
// The default logger writes to stderr with a pretty console handler so log lines never
// mix with the standard output of the program that replaces us. The level comes from
// <EXECUTABLE>_LOG_LEVEL, e.g. XCRUN_LOG_LEVEL or XCODE_SELECT_LOG_LEVEL, and may be
// DEBUG, INFO, WARN or ERROR. Anything else means WARN.
package ctxlog
