// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

// Package cache provides the in-memory and disk-backed caches used to avoid
// repeated expensive operations: a TTL-bounded dictionary (Dict), a
// file-persisted variant of it (Disk), and a named context snapshot
// (ContextCache) that persists a unit of caller-owned state across process
// invocations.
//
// Cache instances assume single-goroutine access; they carry no internal
// locking. Two processes writing the same cache file concurrently can lose
// entries, which is an accepted limitation of the whole-file write model.
package cache
