// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/rf-vivanovs/salt/internal/serial"
)

// contextSubdir is the fixed subdirectory under the cache root that holds
// one snapshot file per scope.
const contextSubdir = "context"

// ContextCache persists a caller-owned context mapping under a named scope,
// so expensive per-module initialization can be amortized across process
// invocations. The cache only reads and writes the mapping; it never
// interprets or owns it.
type ContextCache struct {
	scope string
	path  string
	codec serial.Codec
}

// ContextOption customizes a ContextCache at construction.
type ContextOption func(*ContextCache)

// WithContextCodec injects the serialization codec. Passing nil declares
// the codec unavailable.
func WithContextCodec(c serial.Codec) ContextOption {
	return func(cc *ContextCache) { cc.codec = c }
}

// NewContextCache constructs a snapshot unit for scope rooted at cachedir.
// The snapshot file lives at cachedir/context/<scope> with the codec's
// extension.
func NewContextCache(cachedir, scope string, opts ...ContextOption) *ContextCache {
	cc := &ContextCache{
		scope: scope,
		path:  filepath.Join(cachedir, contextSubdir, scope+serial.Ext),
		codec: serial.Default(),
	}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}

// Scope returns the logical name this snapshot is stored under.
func (cc *ContextCache) Scope() string { return cc.scope }

// Path returns the snapshot file location.
func (cc *ContextCache) Path() string { return cc.path }

// CacheContext serializes context and writes it to the scope's file, fully
// replacing any prior snapshot. The context directory is created on first
// use.
func (cc *ContextCache) CacheContext(context map[string]any) error {
	if !serial.Available(cc.codec) {
		return ErrCodecUnavailable
	}
	if err := os.MkdirAll(filepath.Dir(cc.path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create context cache directory: %w", err)
	}
	blob, err := cc.codec.Dump(context)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cc.path, blob, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write context cache to %s: %w", cc.path, err)
	}
	return nil
}

// GetCacheContext reads back the scope's snapshot. It returns
// ErrContextNotFound when no snapshot exists; callers treat that, and any
// deserialization failure, as "no cached context available".
func (cc *ContextCache) GetCacheContext() (map[string]any, error) {
	if !serial.Available(cc.codec) {
		return nil, ErrCodecUnavailable
	}
	data, err := os.ReadFile(cc.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read context cache from %s: %w", cc.path, err)
	}
	raw, err := cc.codec.Load(data)
	if err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &serial.Error{Op: "load", Err: errors.New("context payload is not a mapping")}
	}
	return m, nil
}

// Wrap decorates fn with warm-start behavior over the live context mapping.
// Before the call, an empty live mapping is refilled in place from the
// snapshot when one exists (a miss is silent, since cold starts are
// normal). After the call the current state of live is persisted for the
// next invocation, possibly in a different process. fn's result and error
// pass through unchanged; a failed persist is only surfaced when fn itself
// succeeded.
func Wrap[T any](cc *ContextCache, live map[string]any, fn func() (T, error)) func() (T, error) {
	return func() (T, error) {
		if len(live) == 0 {
			if restored, err := cc.GetCacheContext(); err == nil {
				maps.Copy(live, restored)
			}
		}

		out, err := fn()

		if flushErr := cc.CacheContext(live); err == nil && flushErr != nil {
			return out, flushErr
		}
		return out, err
	}
}
