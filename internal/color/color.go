// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code is an ANSI SGR parameter.
type Code int

// Foreground colours used by the log handler.
const (
	FgRed    Code = 31
	FgYellow Code = 33
	FgBlue   Code = 34
	FgCyan   Code = 36
	FgWhite  Code = 37

	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = Detect(environ.OS(), os.Stderr.Fd())

// Enabled reports whether colour was detected for stderr at start-up.
func Enabled() bool {
	return enabled
}

// Detect decides whether output to fd should be coloured.
// NO_COLOR wins over FORCE_COLOR; otherwise fd must be a terminal.
func Detect(env environ.Env, fd uintptr) bool {
	if env.Get(NoColor) != "" {
		return false
	}

	if env.Get(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(fd))
}

// Paint wraps str in the given codes followed by a reset.
func Paint(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + 4*len(codes))
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}
