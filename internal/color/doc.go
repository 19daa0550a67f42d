// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color paints log output with ANSI escape codes.
// Colour is used when stderr is a terminal, unless NO_COLOR is set.
// FORCE_COLOR turns it on for non-terminals.
package color
