// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "time"

// Dict is an in-memory mapping whose entries expire a fixed ttl after they
// were last written. Expired entries are evicted lazily by the read that
// observes them; nothing sweeps the map proactively.
type Dict struct {
	ttl    time.Duration
	store  map[string]any
	stamps map[string]time.Time
}

// NewDict constructs a Dict with the given ttl. A ttl of zero makes every
// entry eligible for eviction on the next read, which effectively disables
// the cache.
func NewDict(ttl time.Duration) *Dict {
	return &Dict{
		ttl:    ttl,
		store:  make(map[string]any),
		stamps: make(map[string]time.Time),
	}
}

// enforceTTL drops key from both maps if its entry has outlived the ttl.
func (d *Dict) enforceTTL(key string) {
	ts, ok := d.stamps[key]
	if !ok {
		return
	}
	if time.Since(ts) > d.ttl {
		delete(d.store, key)
		delete(d.stamps, key)
	}
}

// Contains reports whether key is present and not expired.
func (d *Dict) Contains(key string) bool {
	d.enforceTTL(key)
	_, ok := d.store[key]
	return ok
}

// Get returns the value for key, or ErrKeyNotFound when the key is absent
// or has expired.
func (d *Dict) Get(key string) (any, error) {
	d.enforceTTL(key)
	v, ok := d.store[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key and refreshes the key's timestamp.
func (d *Dict) Set(key string, value any) {
	d.store[key] = value
	d.stamps[key] = time.Now()
}

// Delete removes key. It returns ErrKeyNotFound when the key is absent.
func (d *Dict) Delete(key string) error {
	if _, ok := d.store[key]; !ok {
		return ErrKeyNotFound
	}
	delete(d.store, key)
	delete(d.stamps, key)
	return nil
}

// Len returns the number of entries currently held, including any that are
// expired but not yet evicted.
func (d *Dict) Len() int {
	return len(d.store)
}
