// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "time"

// Marker keys of the current on-disk envelope. Older cache files are a flat
// key-to-value mapping with no envelope at all.
const (
	entriesKey   = "entries"
	cachetimeKey = "cachetime"
)

// diskPayload is the decoded shape of a cache file. Exactly one of the two
// layouts applies: the current envelope carrying the last flush time, or
// the legacy flat mapping where every top-level key is a cache entry.
type diskPayload struct {
	Entries   map[string]any
	CacheTime time.Time
	Legacy    bool
}

// decodePayload interprets a deserialized cache blob. It first tries the
// current envelope; anything structurally inconsistent with it falls back
// to the legacy interpretation. Legacy files need no version marker.
func decodePayload(raw any) diskPayload {
	m, ok := raw.(map[string]any)
	if !ok {
		return diskPayload{Entries: make(map[string]any), Legacy: true}
	}
	if len(m) == 2 {
		entries, okEntries := m[entriesKey].(map[string]any)
		cachetime, okTime := asUnixSeconds(m[cachetimeKey])
		if okEntries && okTime {
			return diskPayload{Entries: entries, CacheTime: cachetime}
		}
	}
	return diskPayload{Entries: m, Legacy: true}
}

// asUnixSeconds normalizes the numeric types the codec may hand back for
// the flush timestamp.
func asUnixSeconds(v any) (time.Time, bool) {
	switch n := v.(type) {
	case int:
		return time.Unix(int64(n), 0), true
	case int8:
		return time.Unix(int64(n), 0), true
	case int16:
		return time.Unix(int64(n), 0), true
	case int32:
		return time.Unix(int64(n), 0), true
	case int64:
		return time.Unix(n, 0), true
	case uint8:
		return time.Unix(int64(n), 0), true
	case uint16:
		return time.Unix(int64(n), 0), true
	case uint32:
		return time.Unix(int64(n), 0), true
	case uint64:
		return time.Unix(int64(n), 0), true
	case float32:
		return time.Unix(0, int64(float64(n)*float64(time.Second))), true
	case float64:
		return time.Unix(0, int64(n*float64(time.Second))), true
	default:
		return time.Time{}, false
	}
}
