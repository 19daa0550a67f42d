// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package locator resolves a program name to an executable path.
//
// The directories in PATH are searched in order and the first executable match wins.
// Only when PATH yields nothing is the SDK root consulted, looking in <root>/bin.
// If PATH is not set at all the search fails immediately, without trying the SDK root.
//
// Candidates are built by plain concatenation, directory + "/" + name. Nothing is
// cleaned or normalised, empty PATH segments are used as-is and a name containing
// a slash is accepted.
//
// The locator never executes anything. It returns a Resolution that the dispatch
// package hands to the operating system.
package locator
