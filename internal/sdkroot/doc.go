// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sdkroot determines the active developer tools root.
//
// The DEVELOPER_DIR environment variable always wins, even when it is empty or
// points nowhere. Otherwise the root is read from a single-line file,
// $HOME/.darwinsdk.dat, which is maintained by the xcode-select command.
//
// Failing to determine a root is never fatal to callers; it only means there is
// no SDK location to fall back on.
package sdkroot
