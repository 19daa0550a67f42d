// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package locator

import (
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const anyExecBit = 0o111

// executable reports, as an error, why path cannot be executed.
// On the OS filesystem the kernel decides using access(2) with the real uid.
// Other filesystems have no notion of the caller, so any execute bit is enough.
// Directories are never executable.
func executable(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return unix.EACCES
	}

	if _, ok := fs.(*afero.OsFs); ok {
		return unix.Access(path, unix.X_OK)
	}

	if info.Mode()&anyExecBit == 0 {
		return unix.EACCES
	}

	return nil
}
