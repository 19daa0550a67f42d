// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package locator

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/xcrun/internal/ctxlog"
	"github.com/matt-FFFFFF/xcrun/internal/environ"
	"github.com/matt-FFFFFF/xcrun/internal/sdkroot"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const (
	// SearchPathEnv is the variable holding the search path.
	SearchPathEnv = "PATH"
	// SearchPathSeparator separates entries in the search path.
	SearchPathSeparator = ":"
	// sdkBinDir is the directory under the SDK root holding executables.
	sdkBinDir = "/bin/"
)

// FsFactory returns the filesystem used by locators created with New.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Via records which strategy produced a candidate.
type Via int

const (
	// ViaSearchPath is a candidate built from a PATH entry.
	ViaSearchPath Via = iota
	// ViaSDKRoot is a candidate built from the SDK root's bin directory.
	ViaSDKRoot
)

func (v Via) String() string {
	switch v {
	case ViaSearchPath:
		return "PATH"
	case ViaSDKRoot:
		return "SDK"
	default:
		return "unknown"
	}
}

// Request is a program name and the argument vector to hand over.
// By convention Args[0] is the program name.
type Request struct {
	Name string
	Args []string
}

// NewRequest builds a request from an argument vector whose first element names the program.
func NewRequest(argv []string) Request {
	if len(argv) == 0 {
		return Request{}
	}

	return Request{Name: argv[0], Args: argv}
}

// Probe is one candidate that was tested.
type Probe struct {
	Path string
	Via  Via
	Err  error // nil when the candidate is executable.
}

// Resolution is the outcome of a lookup.
// Path and Via are only meaningful when Locate returned no error.
type Resolution struct {
	Path   string
	Args   []string
	Via    Via
	Probes []Probe // Every candidate tested, in order.
}

// Locator finds executables.
type Locator struct {
	env      environ.Env
	fs       afero.Fs
	resolver *sdkroot.Resolver
}

// Option configures a Locator.
type Option func(l *Locator)

// WithFs sets the filesystem used to test candidates.
func WithFs(fs afero.Fs) Option {
	return func(l *Locator) {
		l.fs = fs
	}
}

// WithResolver sets the SDK root resolver used for the fallback lookup.
func WithResolver(r *sdkroot.Resolver) Option {
	return func(l *Locator) {
		l.resolver = r
	}
}

// New creates a Locator for env.
// Unless overridden, the filesystem comes from FsFactory and the SDK resolver shares it.
func New(env environ.Env, opts ...Option) *Locator {
	l := &Locator{env: env}

	for _, opt := range opts {
		opt(l)
	}

	if l.fs == nil {
		l.fs = FsFactory()
	}

	if l.resolver == nil {
		l.resolver = sdkroot.NewResolver(env, l.fs)
	}

	return l
}

// Env returns the environment the locator resolves against.
func (l *Locator) Env() environ.Env {
	return l.env
}

// SplitSearchPath splits a search path into its entries.
// Empty entries are preserved.
func SplitSearchPath(s string) []string {
	return strings.Split(s, SearchPathSeparator)
}

// Locate finds the executable for req.
//
// It returns ErrNoSearchPath if PATH is unset. If nothing matches, the error
// is a *multierror.Error whose last element is a *NotFoundError; any failure
// to determine the SDK root precedes it.
func (l *Locator) Locate(ctx context.Context, req Request) (Resolution, error) {
	res := Resolution{Args: req.Args}
	logger := ctxlog.Logger(ctx).With("name", req.Name)

	searchPath, ok := l.env.Lookup(SearchPathEnv)
	if !ok {
		logger.Debug("search path not set")
		return res, ErrNoSearchPath
	}

	var lastErr error

	for _, dir := range SplitSearchPath(searchPath) {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if l.probe(ctx, &res, dir+"/"+req.Name, ViaSearchPath) {
			return res, nil
		}

		lastErr = res.Probes[len(res.Probes)-1].Err
	}

	var result *multierror.Error

	root, err := l.resolver.Resolve(ctx)
	if err != nil {
		logger.Debug("no sdk root available", "error", err)
		result = multierror.Append(result, err)
	} else {
		if l.probe(ctx, &res, root.Path+sdkBinDir+req.Name, ViaSDKRoot) {
			return res, nil
		}

		lastErr = res.Probes[len(res.Probes)-1].Err
	}

	if lastErr == nil {
		lastErr = unix.ENOENT
	}

	result = multierror.Append(result, &NotFoundError{Name: req.Name, Err: lastErr})

	return res, result.ErrorOrNil()
}

// probe tests candidate and records it. On success res is updated to point at it.
func (l *Locator) probe(ctx context.Context, res *Resolution, candidate string, via Via) bool {
	err := executable(l.fs, candidate)
	res.Probes = append(res.Probes, Probe{Path: candidate, Via: via, Err: err})

	ctxlog.Debug(ctx, "probe", "candidate", candidate, "via", via.String(), "error", err)

	if err != nil {
		return false
	}

	res.Path = candidate
	res.Via = via

	return true
}
