// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sdkroot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"github.com/spf13/afero"
)

const (
	// DeveloperDirEnv overrides the configured SDK root.
	DeveloperDirEnv = "DEVELOPER_DIR"
	// HomeEnv locates the per-user configuration file.
	HomeEnv = "HOME"
	// ConfigFileName is the name of the configuration file under HOME.
	ConfigFileName = ".darwinsdk.dat"
	// MaxPathLen is the largest number of bytes read from the configuration file.
	MaxPathLen = 4096
	// configFileMode is the mode the configuration file is written with.
	configFileMode = 0o644
)

// trailingJunk is stripped from the end of the configuration file contents.
const trailingJunk = " \t\r\n\x00"

// Source records where an SDK root came from.
type Source int

const (
	// SourceEnvironment means the root came from DEVELOPER_DIR.
	SourceEnvironment Source = iota
	// SourceConfigFile means the root was read from the configuration file.
	SourceConfigFile
)

func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return DeveloperDirEnv
	case SourceConfigFile:
		return ConfigFileName
	default:
		return "unknown"
	}
}

// Root is a resolved SDK root directory.
type Root struct {
	Path   string
	Source Source
}

// Resolver finds the SDK root for an environment.
type Resolver struct {
	env environ.Env
	fs  afero.Fs
}

// NewResolver creates a resolver reading files through fs.
// If fs is nil the OS filesystem is used.
func NewResolver(env environ.Env, fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Resolver{env: env, fs: fs}
}

// ConfigPath returns the path of the per-user configuration file.
func (r *Resolver) ConfigPath() (string, error) {
	home, ok := r.env.Lookup(HomeEnv)
	if !ok {
		return "", &ConfigError{Err: ErrNoHome}
	}

	return home + "/" + ConfigFileName, nil
}

// Resolve returns the active SDK root.
// DEVELOPER_DIR is returned verbatim whenever it is set. Otherwise the
// configuration file is read; any failure there is returned as a *ConfigError.
func (r *Resolver) Resolve(ctx context.Context) (Root, error) {
	if dir, ok := r.env.Lookup(DeveloperDirEnv); ok {
		ctxlog.Debug(ctx, "sdk root from environment", "path", dir)
		return Root{Path: dir, Source: SourceEnvironment}, nil
	}

	cfg, err := r.ConfigPath()
	if err != nil {
		return Root{}, err
	}

	dir, err := r.read(cfg)
	if err != nil {
		return Root{}, err
	}

	ctxlog.Debug(ctx, "sdk root from configuration file", "path", dir, "config", cfg)

	return Root{Path: dir, Source: SourceConfigFile}, nil
}

func (r *Resolver) read(cfg string) (string, error) {
	f, err := r.fs.Open(cfg)
	if err != nil {
		return "", &ConfigError{Path: cfg, Err: errors.Join(ErrReadConfig, err)}
	}
	defer f.Close() //nolint:errcheck

	b, err := io.ReadAll(io.LimitReader(f, MaxPathLen))
	if err != nil {
		return "", &ConfigError{Path: cfg, Err: errors.Join(ErrReadConfig, err)}
	}

	b = bytes.TrimRight(b, trailingJunk)
	if len(b) == 0 {
		return "", &ConfigError{Path: cfg, Err: ErrEmptyConfig}
	}

	return string(b), nil
}

// Select records dir as the active SDK root in the configuration file.
// dir must be an existing directory.
func (r *Resolver) Select(ctx context.Context, dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}

	info, err := r.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrInvalidRoot, dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w '%s': not a directory", ErrInvalidRoot, dir)
	}

	cfg, err := r.ConfigPath()
	if err != nil {
		return err
	}

	if err := afero.WriteFile(r.fs, cfg, []byte(dir+"\n"), configFileMode); err != nil {
		return &ConfigError{Path: cfg, Err: errors.Join(ErrWriteConfig, err)}
	}

	ctxlog.Info(ctx, "developer directory selected", "path", dir, "config", cfg)

	return nil
}

// Reset removes the configuration file. A missing file is not an error.
func (r *Resolver) Reset(ctx context.Context) error {
	cfg, err := r.ConfigPath()
	if err != nil {
		return err
	}

	if err := r.fs.Remove(cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &ConfigError{Path: cfg, Err: errors.Join(ErrWriteConfig, err)}
	}

	ctxlog.Info(ctx, "developer directory reset", "config", cfg)

	return nil
}
