// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package environ provides an immutable view of a process environment.
// Everything that resolves commands receives an Env rather than calling os.Getenv,
// so the resolution logic can be exercised without touching the real environment.
package environ

import (
	"os"
	"slices"
	"sort"
	"strings"
)

// Env is a read-only set of environment variables.
// The zero value is an empty environment.
type Env struct {
	vars map[string]string
	list []string
}

// FromList builds an Env from KEY=VALUE pairs, as returned by os.Environ.
// Entries without an '=' are ignored. When a key repeats the first value wins,
// which is what getenv(3) returns.
func FromList(list []string) Env {
	e := Env{
		vars: make(map[string]string, len(list)),
		list: slices.Clone(list),
	}

	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		if _, seen := e.vars[k]; seen {
			continue
		}

		e.vars[k] = v
	}

	return e
}

// FromMap builds an Env from a map. The list form is sorted by key.
func FromMap(m map[string]string) Env {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+m[k])
	}

	return FromList(list)
}

// OS returns the environment of the current process.
func OS() Env {
	return FromList(os.Environ())
}

// Lookup returns the value of key and whether it is set.
// A variable set to the empty string is reported as set.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the value of key, or the empty string if unset.
func (e Env) Get(key string) string {
	return e.vars[key]
}

// List returns a copy of the KEY=VALUE pairs the Env was built from.
func (e Env) List() []string {
	return slices.Clone(e.list)
}

// With returns a copy of e with key set to value.
func (e Env) With(key, value string) Env {
	m := make(map[string]string, len(e.vars)+1)
	for k, v := range e.vars {
		m[k] = v
	}

	m[key] = value

	return FromMap(m)
}

// Without returns a copy of e with key removed.
func (e Env) Without(key string) Env {
	m := make(map[string]string, len(e.vars))
	for k, v := range e.vars {
		if k != key {
			m[k] = v
		}
	}

	return FromMap(m)
}
