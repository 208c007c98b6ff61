// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"time"

	"github.com/apex/log"

	saltlog "github.com/rf-vivanovs/salt/internal/log"
	"github.com/rf-vivanovs/salt/internal/serial"
)

// Disk is a Dict persisted to a single file. The file is read once at
// construction to seed the in-memory store; every write rewrites it whole.
// Read-side failures (missing codec, missing path, I/O errors, undecodable
// payloads) degrade to an empty cache, while write failures are returned to
// the caller.
type Disk struct {
	*Dict
	path  string
	codec serial.Codec
	fresh map[string]time.Time
	log   log.Interface
}

// DiskOption customizes a Disk at construction.
type DiskOption func(*Disk)

// WithCodec injects the serialization codec. Passing nil declares the codec
// unavailable, which puts the cache in memory-only mode.
func WithCodec(c serial.Codec) DiskOption {
	return func(d *Disk) { d.codec = c }
}

// WithLogger injects the logger the cache reports read failures through.
func WithLogger(l log.Interface) DiskOption {
	return func(d *Disk) { d.log = l }
}

// NewDisk constructs a Disk over path and seeds it from the file if one is
// there. Construction never fails: every read-side problem is logged and
// leaves the cache empty.
func NewDisk(ttl time.Duration, path string, opts ...DiskOption) *Disk {
	d := &Disk{
		Dict:  NewDict(ttl),
		path:  path,
		codec: serial.Default(),
		fresh: make(map[string]time.Time),
		log:   log.Log,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.read()
	return d
}

// read seeds the store from the cache file.
func (d *Disk) read() {
	if !serial.Available(d.codec) {
		d.log.Error("Cache cannot be read from the disk: msgpack is missing")
		return
	}

	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		d.log.Debugf("Cache path does not exist for reading: %s", d.path)
		return
	}
	if err != nil {
		d.log.Errorf("Error while reading disk cache from %s: %s", d.path, err)
		return
	}

	raw, err := d.codec.Load(data)
	if err != nil {
		// An undecodable payload is recoverable the same way a failed
		// read is: start empty.
		d.log.Errorf("Error while reading disk cache from %s: %s", d.path, err)
		return
	}

	payload := decodePayload(raw)

	// The file's mtime stands in for "last confirmed fresh" for every key
	// it holds. TTL eviction runs off the flush time instead; for legacy
	// files that is unknown, so construction time is used.
	mtime := time.Now()
	if fi, err := os.Stat(d.path); err == nil {
		mtime = fi.ModTime()
	}
	stamp := payload.CacheTime
	if payload.Legacy {
		stamp = time.Now()
	}

	for key, value := range payload.Entries {
		d.store[key] = value
		d.stamps[key] = stamp
		d.fresh[key] = mtime
	}

	// Formatting the retrieved contents is not free, so only do it when
	// the sink will actually emit debug records.
	if saltlog.DebugEnabled(d.log) {
		d.log.Debugf("Disk cache retrieved: %v", payload.Entries)
	}
}

// flush serializes the entire store and overwrites the cache file. In
// memory-only mode it is a no-op.
func (d *Disk) flush() error {
	if !serial.Available(d.codec) {
		return nil
	}
	// The flush time is stored as float seconds so sub-second TTLs survive
	// a round trip through the file.
	blob, err := d.codec.Dump(map[string]any{
		entriesKey:   d.store,
		cachetimeKey: float64(time.Now().UnixNano()) / float64(time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize disk cache: %w", err)
	}
	if err := os.WriteFile(d.path, blob, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write disk cache to %s: %w", d.path, err)
	}
	return nil
}

// Set stores value under key and persists the whole cache. A failed persist
// is returned to the caller; the in-memory write still took effect.
func (d *Disk) Set(key string, value any) error {
	d.Dict.Set(key, value)
	d.fresh[key] = time.Now()
	return d.flush()
}

// Delete removes key and persists the whole cache. It returns
// ErrKeyNotFound when the key is absent.
func (d *Disk) Delete(key string) error {
	if err := d.Dict.Delete(key); err != nil {
		return err
	}
	delete(d.fresh, key)
	return d.flush()
}

// Freshness returns the last time key was known good on disk. It is
// informational only and never drives eviction.
func (d *Disk) Freshness(key string) (time.Time, bool) {
	ts, ok := d.fresh[key]
	return ts, ok
}

// Items returns a shallow copy of the current in-memory entries.
func (d *Disk) Items() map[string]any {
	out := make(map[string]any, len(d.store))
	maps.Copy(out, d.store)
	return out
}

// String renders the cache for debugging, e.g. <Disk of 3 entries at
// 0xc000123456>. Informational only.
func (d *Disk) String() string {
	return fmt.Sprintf("<Disk of %d entries at %p>", len(d.store), d)
}
